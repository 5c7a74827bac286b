package models

import "time"

// Post is a Post node in the graph. User is the author and QuotedPost the
// one-level quote target; both are populated on reads only.
type Post struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
	User       *User     `json:"user,omitempty"`
	QuotedPost *Post     `json:"quotedPost,omitempty"`
}

// UserPost pairs a post with its author, the shape feed and reply listings use.
type UserPost struct {
	User User `json:"user"`
	Post Post `json:"post"`
}

// Thread is a post together with its direct replies.
type Thread struct {
	Post    Post       `json:"post"`
	Replies []UserPost `json:"replies"`
}

// ValidatePostContent checks the only shape rule posts have.
func ValidatePostContent(content string) error {
	if len(content) < 1 {
		return &ValidationError{Field: "content", Message: "should have at least 1 character"}
	}
	return nil
}
