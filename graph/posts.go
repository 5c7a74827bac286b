package graph

import (
	"context"
	"time"

	"go.uber.org/zap"

	"wren/database"
	"wren/models"
)

// CreatePost stores a new post and links it to its author. Returns
// ErrNotFound when the author id does not resolve to a user.
func (e *Engine) CreatePost(ctx context.Context, authorID, content string) (*models.Post, error) {
	if err := models.ValidatePostContent(content); err != nil {
		return nil, err
	}

	rows, err := e.store.Run(ctx, cypherCreatePost, map[string]any{
		"authorId":  authorID,
		"id":        e.newID(),
		"content":   content,
		"createdAt": e.now(),
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	post := rowPost(rows[0], "p")
	e.log.Debug("post created", zap.String("postId", post.ID), zap.String("authorId", authorID))
	return &post, nil
}

// CreateQuote creates a post that quotes another. Creation and linking run
// in one write transaction so a crash cannot leave an orphaned post. A
// quoted post that does not exist is not an error: the new post simply
// carries no quote.
func (e *Engine) CreateQuote(ctx context.Context, authorID, quotedPostID, content string) (*models.Post, error) {
	if err := models.ValidatePostContent(content); err != nil {
		return nil, err
	}

	params := map[string]any{
		"authorId":  authorID,
		"id":        e.newID(),
		"content":   content,
		"createdAt": e.now(),
	}

	var post models.Post
	err := e.store.WriteTx(ctx, func(tx database.Runner) error {
		rows, err := tx.Run(ctx, cypherCreatePost, params)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return ErrNotFound
		}
		post = rowPost(rows[0], "p")

		rows, err = tx.Run(ctx, cypherAttachQuote, map[string]any{
			"id":       post.ID,
			"quotedId": quotedPostID,
		})
		if err != nil {
			return err
		}
		if len(rows) > 0 {
			quoted := rowPost(rows[0], "q")
			author := rowUser(rows[0], "qa")
			quoted.User = &author
			post.QuotedPost = &quoted
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ReplyToPost creates a post replying to parentID. Returns ErrNotFound when
// the parent post does not exist.
func (e *Engine) ReplyToPost(ctx context.Context, authorID, parentID, content string) (*models.UserPost, error) {
	if err := models.ValidatePostContent(content); err != nil {
		return nil, err
	}

	rows, err := e.store.Run(ctx, cypherCreateReply, map[string]any{
		"authorId":  authorID,
		"parentId":  parentID,
		"id":        e.newID(),
		"content":   content,
		"createdAt": e.now(),
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	return &models.UserPost{
		User: rowUser(rows[0], "author"),
		Post: rowPost(rows[0], "p"),
	}, nil
}

// GetPostByID assembles a thread: the post with its author and one-level
// quote, plus its direct replies oldest first, each with author and their
// own one-level quote. Both reads happen in a single read transaction.
func (e *Engine) GetPostByID(ctx context.Context, id string) (*models.Thread, error) {
	var thread models.Thread
	err := e.store.ReadTx(ctx, func(tx database.Runner) error {
		rows, err := tx.Run(ctx, cypherPostByID, map[string]any{"id": id})
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return ErrNotFound
		}

		post := rowPost(rows[0], "p")
		author := rowUser(rows[0], "author")
		post.User = &author
		post.QuotedPost = rowQuote(rows[0])
		thread.Post = post

		replyRows, err := tx.Run(ctx, cypherPostReplies, map[string]any{"id": id})
		if err != nil {
			return err
		}
		thread.Replies = userPostsFromRows(replyRows)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &thread, nil
}

// GetPostReplies lists the direct replies of a post, oldest first, each with
// its author.
func (e *Engine) GetPostReplies(ctx context.Context, postID string) ([]models.UserPost, error) {
	rows, err := e.store.Run(ctx, cypherPostReplies, map[string]any{"id": postID})
	if err != nil {
		return nil, err
	}
	return userPostsFromRows(rows), nil
}

// DeletePost detaches and removes a post, severing every relationship edge
// with it. Returns ErrNotFound when the post does not exist.
func (e *Engine) DeletePost(ctx context.Context, id string) error {
	rows, err := e.store.Run(ctx, cypherDeletePost, map[string]any{"id": id})
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return ErrNotFound
	}
	e.log.Debug("post deleted", zap.String("postId", id))
	return nil
}

// GetUserPosts lists every post authored by userID, newest first, with
// one-level quote resolution.
func (e *Engine) GetUserPosts(ctx context.Context, userID string) ([]models.UserPost, error) {
	rows, err := e.store.Run(ctx, cypherUserPosts, map[string]any{"userId": userID})
	if err != nil {
		return nil, err
	}
	return userPostsFromRows(rows), nil
}

// HomeOptions bound the home timeline. A zero Date means no bound;
// EarlierThan picks which side of the bound to load, supporting incremental
// loading in either direction.
type HomeOptions struct {
	Date        time.Time
	EarlierThan bool
}

// GetUserHome computes the home timeline: for every followed user, their
// posts created at or after the follow edge's createdAt. Posts from before
// the follow never appear.
func (e *Engine) GetUserHome(ctx context.Context, userID string, opts HomeOptions) ([]models.UserPost, error) {
	query := cypherHome
	params := map[string]any{"userId": userID}
	if !opts.Date.IsZero() {
		params["date"] = opts.Date
		if opts.EarlierThan {
			query = cypherHomeEarlier
		} else {
			query = cypherHomeLater
		}
	}

	rows, err := e.store.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}
	return userPostsFromRows(rows), nil
}

func userPostsFromRows(rows []database.Row) []models.UserPost {
	posts := make([]models.UserPost, 0, len(rows))
	for _, row := range rows {
		post := rowPost(row, "p")
		post.QuotedPost = rowQuote(row)
		posts = append(posts, models.UserPost{
			User: rowUser(row, "author"),
			Post: post,
		})
	}
	return posts
}
