package graph

// Cypher executed by the engine. Everything is projected as scalar
// properties so rows come back flat; aliases are stable because the
// reshaping helpers key off them (author, q for the quoted post, qa for its
// author).

const cypherUserTaken = `
MATCH (u:User)
WHERE u.username = $username OR u.email = $email
RETURN u.id`

const cypherCreateUser = `
CREATE (u:User {id: $id, username: $username, email: $email, firstName: $firstName, lastName: $lastName, bio: $bio, password: $password})
RETURN u.id, u.username, u.email, u.firstName, u.lastName, u.bio`

const cypherUserByID = `
MATCH (u:User {id: $id})
RETURN u.id, u.username, u.email, u.firstName, u.lastName, u.bio`

const cypherUserByUsername = `
MATCH (u:User {username: $username})
RETURN u.id, u.username, u.email, u.firstName, u.lastName, u.bio, u.password`

const cypherUpdateUserBio = `
MATCH (u:User {id: $id})
SET u.bio = $bio
RETURN u.id, u.username, u.email, u.firstName, u.lastName, u.bio`

const cypherUpdateUserDetails = `
MATCH (u:User {id: $id})
SET u.firstName = $firstName, u.lastName = $lastName, u.bio = $bio
RETURN u.id, u.username, u.email, u.firstName, u.lastName, u.bio`

const cypherAllUsers = `
MATCH (u:User)
WHERE u.id <> $excludeId
RETURN u.id, u.username, u.email, u.firstName, u.lastName, u.bio
ORDER BY u.username`

const cypherFollowers = `
MATCH (u:User)-[:FOLLOWS]->(t:User {id: $id})
RETURN u.id, u.username, u.email, u.firstName, u.lastName, u.bio
ORDER BY u.username`

const cypherFollow = `
MATCH (u:User {id: $userId})
MATCH (t:User {id: $targetId})
MERGE (u)-[f:FOLLOWS]->(t)
ON CREATE SET f.createdAt = $createdAt
RETURN f.createdAt`

const cypherUnfollow = `
MATCH (u:User {id: $userId})-[f:FOLLOWS]->(t:User {id: $targetId})
DELETE f`

const cypherIsFollowing = `
MATCH (u:User {id: $userId})-[f:FOLLOWS]->(t:User {id: $targetId})
RETURN f.createdAt`

const cypherCreatePost = `
MATCH (author:User {id: $authorId})
CREATE (p:Post {id: $id, content: $content, createdAt: $createdAt})
MERGE (author)-[:POSTED]->(p)
RETURN p.id, p.content, p.createdAt`

const cypherAttachQuote = `
MATCH (p:Post {id: $id})
MATCH (q:Post {id: $quotedId})<-[:POSTED]-(qa:User)
MERGE (p)-[:QUOTES]->(q)
RETURN q.id, q.content, q.createdAt,
       qa.id, qa.username, qa.email, qa.firstName, qa.lastName, qa.bio`

const cypherCreateReply = `
MATCH (author:User {id: $authorId})
MATCH (parent:Post {id: $parentId})
CREATE (p:Post {id: $id, content: $content, createdAt: $createdAt})
MERGE (author)-[:POSTED]->(p)
MERGE (p)-[:REPLIES]->(parent)
RETURN p.id, p.content, p.createdAt,
       author.id, author.username, author.email, author.firstName, author.lastName, author.bio`

const cypherPostByID = `
MATCH (p:Post {id: $id})<-[:POSTED]-(author:User)
OPTIONAL MATCH (p)-[:QUOTES]->(q:Post)<-[:POSTED]-(qa:User)
RETURN p.id, p.content, p.createdAt,
       author.id, author.username, author.email, author.firstName, author.lastName, author.bio,
       q.id, q.content, q.createdAt,
       qa.id, qa.username, qa.email, qa.firstName, qa.lastName, qa.bio`

const cypherPostReplies = `
MATCH (p:Post)-[:REPLIES]->(parent:Post {id: $id})
MATCH (p)<-[:POSTED]-(author:User)
OPTIONAL MATCH (p)-[:QUOTES]->(q:Post)<-[:POSTED]-(qa:User)
RETURN p.id, p.content, p.createdAt,
       author.id, author.username, author.email, author.firstName, author.lastName, author.bio,
       q.id, q.content, q.createdAt,
       qa.id, qa.username, qa.email, qa.firstName, qa.lastName, qa.bio
ORDER BY p.createdAt`

const cypherDeletePost = `
MATCH (p:Post {id: $id})
WITH p, p.id AS id
DETACH DELETE p
RETURN id`

const cypherUserPosts = `
MATCH (author:User {id: $userId})-[:POSTED]->(p:Post)
OPTIONAL MATCH (p)-[:QUOTES]->(q:Post)<-[:POSTED]-(qa:User)
RETURN p.id, p.content, p.createdAt,
       author.id, author.username, author.email, author.firstName, author.lastName, author.bio,
       q.id, q.content, q.createdAt,
       qa.id, qa.username, qa.email, qa.firstName, qa.lastName, qa.bio
ORDER BY p.createdAt DESC`

// The home feed fans out across every followed user. The follow edge's
// createdAt is the visibility cursor: posts older than the follow never show.
const cypherHome = `
MATCH (me:User {id: $userId})-[f:FOLLOWS]->(author:User)-[:POSTED]->(p:Post)
WHERE p.createdAt >= f.createdAt
OPTIONAL MATCH (p)-[:QUOTES]->(q:Post)<-[:POSTED]-(qa:User)
RETURN p.id, p.content, p.createdAt,
       author.id, author.username, author.email, author.firstName, author.lastName, author.bio,
       q.id, q.content, q.createdAt,
       qa.id, qa.username, qa.email, qa.firstName, qa.lastName, qa.bio
ORDER BY p.createdAt DESC`

const cypherHomeEarlier = `
MATCH (me:User {id: $userId})-[f:FOLLOWS]->(author:User)-[:POSTED]->(p:Post)
WHERE p.createdAt >= f.createdAt AND p.createdAt < $date
OPTIONAL MATCH (p)-[:QUOTES]->(q:Post)<-[:POSTED]-(qa:User)
RETURN p.id, p.content, p.createdAt,
       author.id, author.username, author.email, author.firstName, author.lastName, author.bio,
       q.id, q.content, q.createdAt,
       qa.id, qa.username, qa.email, qa.firstName, qa.lastName, qa.bio
ORDER BY p.createdAt DESC`

const cypherHomeLater = `
MATCH (me:User {id: $userId})-[f:FOLLOWS]->(author:User)-[:POSTED]->(p:Post)
WHERE p.createdAt >= f.createdAt AND p.createdAt > $date
OPTIONAL MATCH (p)-[:QUOTES]->(q:Post)<-[:POSTED]-(qa:User)
RETURN p.id, p.content, p.createdAt,
       author.id, author.username, author.email, author.firstName, author.lastName, author.bio,
       q.id, q.content, q.createdAt,
       qa.id, qa.username, qa.email, qa.firstName, qa.lastName, qa.bio
ORDER BY p.createdAt ASC`
