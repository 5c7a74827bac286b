package graph

import (
	"context"
	"fmt"
	"sort"
	"time"

	"wren/database"
)

// fakeStore interprets the engine's queries over plain maps and edge sets,
// so engine behavior can be tested without a running database. Unknown
// queries fail the test loudly.
type fakeUser struct {
	id, username, email, firstName, lastName, bio, password string
}

type fakePost struct {
	id, content string
	createdAt   time.Time
	authorID    string
}

type followEdge struct {
	from, to string
}

type fakeStore struct {
	users   map[string]*fakeUser
	posts   map[string]*fakePost
	follows map[followEdge]time.Time
	replies map[string]string // reply id -> parent id
	quotes  map[string]string // quoting id -> quoted id
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:   make(map[string]*fakeUser),
		posts:   make(map[string]*fakePost),
		follows: make(map[followEdge]time.Time),
		replies: make(map[string]string),
		quotes:  make(map[string]string),
	}
}

func (s *fakeStore) addUser(id, username string) *fakeUser {
	u := &fakeUser{
		id:        id,
		username:  username,
		email:     username + "@example.com",
		firstName: "First",
		lastName:  "Last",
	}
	s.users[id] = u
	return u
}

func (s *fakeStore) userByUsername(username string) *fakeUser {
	for _, u := range s.users {
		if u.username == username {
			return u
		}
	}
	return nil
}

func (s *fakeStore) ReadTx(_ context.Context, fn func(database.Runner) error) error {
	return fn(s)
}

func (s *fakeStore) WriteTx(_ context.Context, fn func(database.Runner) error) error {
	return fn(s)
}

func putUser(row database.Row, alias string, u *fakeUser) {
	row[alias+".id"] = u.id
	row[alias+".username"] = u.username
	row[alias+".email"] = u.email
	row[alias+".firstName"] = u.firstName
	row[alias+".lastName"] = u.lastName
	row[alias+".bio"] = u.bio
}

func putPost(row database.Row, alias string, p *fakePost) {
	row[alias+".id"] = p.id
	row[alias+".content"] = p.content
	row[alias+".createdAt"] = p.createdAt
}

// feedRow builds the full p/author/q/qa projection for one post.
func (s *fakeStore) feedRow(p *fakePost) database.Row {
	row := database.Row{}
	putPost(row, "p", p)
	putUser(row, "author", s.users[p.authorID])
	if quotedID, ok := s.quotes[p.id]; ok {
		if quoted, ok := s.posts[quotedID]; ok {
			putPost(row, "q", quoted)
			putUser(row, "qa", s.users[quoted.authorID])
		}
	}
	return row
}

func str(params map[string]any, key string) string {
	v, _ := params[key].(string)
	return v
}

func (s *fakeStore) Run(_ context.Context, query string, params map[string]any) ([]database.Row, error) {
	switch query {
	case cypherUserTaken:
		var rows []database.Row
		for _, u := range s.users {
			if u.username == str(params, "username") || u.email == str(params, "email") {
				rows = append(rows, database.Row{"u.id": u.id})
			}
		}
		return rows, nil

	case cypherCreateUser:
		u := &fakeUser{
			id:        str(params, "id"),
			username:  str(params, "username"),
			email:     str(params, "email"),
			firstName: str(params, "firstName"),
			lastName:  str(params, "lastName"),
			bio:       str(params, "bio"),
			password:  str(params, "password"),
		}
		s.users[u.id] = u
		row := database.Row{}
		putUser(row, "u", u)
		return []database.Row{row}, nil

	case cypherUserByID:
		u, ok := s.users[str(params, "id")]
		if !ok {
			return nil, nil
		}
		row := database.Row{}
		putUser(row, "u", u)
		return []database.Row{row}, nil

	case cypherUserByUsername:
		u := s.userByUsername(str(params, "username"))
		if u == nil {
			return nil, nil
		}
		row := database.Row{}
		putUser(row, "u", u)
		row["u.password"] = u.password
		return []database.Row{row}, nil

	case cypherUpdateUserBio:
		u, ok := s.users[str(params, "id")]
		if !ok {
			return nil, nil
		}
		u.bio = str(params, "bio")
		row := database.Row{}
		putUser(row, "u", u)
		return []database.Row{row}, nil

	case cypherUpdateUserDetails:
		u, ok := s.users[str(params, "id")]
		if !ok {
			return nil, nil
		}
		u.firstName = str(params, "firstName")
		u.lastName = str(params, "lastName")
		u.bio = str(params, "bio")
		row := database.Row{}
		putUser(row, "u", u)
		return []database.Row{row}, nil

	case cypherAllUsers:
		var users []*fakeUser
		for _, u := range s.users {
			if u.id != str(params, "excludeId") {
				users = append(users, u)
			}
		}
		sort.Slice(users, func(i, j int) bool { return users[i].username < users[j].username })
		rows := make([]database.Row, 0, len(users))
		for _, u := range users {
			row := database.Row{}
			putUser(row, "u", u)
			rows = append(rows, row)
		}
		return rows, nil

	case cypherFollowers:
		var users []*fakeUser
		for edge := range s.follows {
			if edge.to == str(params, "id") {
				users = append(users, s.users[edge.from])
			}
		}
		sort.Slice(users, func(i, j int) bool { return users[i].username < users[j].username })
		rows := make([]database.Row, 0, len(users))
		for _, u := range users {
			row := database.Row{}
			putUser(row, "u", u)
			rows = append(rows, row)
		}
		return rows, nil

	case cypherFollow:
		if _, ok := s.users[str(params, "userId")]; !ok {
			return nil, nil
		}
		if _, ok := s.users[str(params, "targetId")]; !ok {
			return nil, nil
		}
		edge := followEdge{from: str(params, "userId"), to: str(params, "targetId")}
		createdAt, ok := s.follows[edge]
		if !ok {
			createdAt = params["createdAt"].(time.Time)
			s.follows[edge] = createdAt
		}
		return []database.Row{{"f.createdAt": createdAt}}, nil

	case cypherUnfollow:
		delete(s.follows, followEdge{from: str(params, "userId"), to: str(params, "targetId")})
		return nil, nil

	case cypherIsFollowing:
		edge := followEdge{from: str(params, "userId"), to: str(params, "targetId")}
		if createdAt, ok := s.follows[edge]; ok {
			return []database.Row{{"f.createdAt": createdAt}}, nil
		}
		return nil, nil

	case cypherCreatePost:
		if _, ok := s.users[str(params, "authorId")]; !ok {
			return nil, nil
		}
		p := &fakePost{
			id:        str(params, "id"),
			content:   str(params, "content"),
			createdAt: params["createdAt"].(time.Time),
			authorID:  str(params, "authorId"),
		}
		s.posts[p.id] = p
		row := database.Row{}
		putPost(row, "p", p)
		return []database.Row{row}, nil

	case cypherAttachQuote:
		if _, ok := s.posts[str(params, "id")]; !ok {
			return nil, nil
		}
		quoted, ok := s.posts[str(params, "quotedId")]
		if !ok {
			return nil, nil
		}
		s.quotes[str(params, "id")] = quoted.id
		row := database.Row{}
		putPost(row, "q", quoted)
		putUser(row, "qa", s.users[quoted.authorID])
		return []database.Row{row}, nil

	case cypherCreateReply:
		author, ok := s.users[str(params, "authorId")]
		if !ok {
			return nil, nil
		}
		if _, ok := s.posts[str(params, "parentId")]; !ok {
			return nil, nil
		}
		p := &fakePost{
			id:        str(params, "id"),
			content:   str(params, "content"),
			createdAt: params["createdAt"].(time.Time),
			authorID:  author.id,
		}
		s.posts[p.id] = p
		s.replies[p.id] = str(params, "parentId")
		row := database.Row{}
		putPost(row, "p", p)
		putUser(row, "author", author)
		return []database.Row{row}, nil

	case cypherPostByID:
		p, ok := s.posts[str(params, "id")]
		if !ok {
			return nil, nil
		}
		return []database.Row{s.feedRow(p)}, nil

	case cypherPostReplies:
		var children []*fakePost
		for replyID, parentID := range s.replies {
			if parentID == str(params, "id") {
				children = append(children, s.posts[replyID])
			}
		}
		sort.Slice(children, func(i, j int) bool { return children[i].createdAt.Before(children[j].createdAt) })
		rows := make([]database.Row, 0, len(children))
		for _, p := range children {
			rows = append(rows, s.feedRow(p))
		}
		return rows, nil

	case cypherDeletePost:
		p, ok := s.posts[str(params, "id")]
		if !ok {
			return nil, nil
		}
		delete(s.posts, p.id)
		delete(s.replies, p.id)
		delete(s.quotes, p.id)
		for replyID, parentID := range s.replies {
			if parentID == p.id {
				delete(s.replies, replyID)
			}
		}
		for quotingID, quotedID := range s.quotes {
			if quotedID == p.id {
				delete(s.quotes, quotingID)
			}
		}
		return []database.Row{{"id": p.id}}, nil

	case cypherUserPosts:
		var posts []*fakePost
		for _, p := range s.posts {
			if p.authorID == str(params, "userId") {
				posts = append(posts, p)
			}
		}
		sort.Slice(posts, func(i, j int) bool { return posts[i].createdAt.After(posts[j].createdAt) })
		rows := make([]database.Row, 0, len(posts))
		for _, p := range posts {
			rows = append(rows, s.feedRow(p))
		}
		return rows, nil

	case cypherHome, cypherHomeEarlier, cypherHomeLater:
		me := str(params, "userId")
		var posts []*fakePost
		for edge, followedAt := range s.follows {
			if edge.from != me {
				continue
			}
			for _, p := range s.posts {
				if p.authorID != edge.to || p.createdAt.Before(followedAt) {
					continue
				}
				if query == cypherHomeEarlier && !p.createdAt.Before(params["date"].(time.Time)) {
					continue
				}
				if query == cypherHomeLater && !p.createdAt.After(params["date"].(time.Time)) {
					continue
				}
				posts = append(posts, p)
			}
		}
		ascending := query == cypherHomeLater
		sort.Slice(posts, func(i, j int) bool {
			if ascending {
				return posts[i].createdAt.Before(posts[j].createdAt)
			}
			return posts[i].createdAt.After(posts[j].createdAt)
		})
		rows := make([]database.Row, 0, len(posts))
		for _, p := range posts {
			rows = append(rows, s.feedRow(p))
		}
		return rows, nil
	}

	return nil, fmt.Errorf("fake store: unexpected query:\n%s", query)
}
