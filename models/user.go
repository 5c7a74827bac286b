package models

import (
	"fmt"
	"net/mail"
	"strings"
)

// User is a User node in the graph. Password carries the bcrypt hash and is
// never serialized outward.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Bio       string `json:"bio,omitempty"`
	Password  string `json:"-"`
}

// ValidationError reports a user-correctable shape problem with a single field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the registration shape of a user. The password field is
// expected to already be hashed and is not checked here.
func (u *User) Validate() error {
	if len(u.Username) < 3 {
		return &ValidationError{Field: "username", Message: "has to be longer than 3 characters"}
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return &ValidationError{Field: "email", Message: "is not a valid email address"}
	}
	if strings.TrimSpace(u.FirstName) == "" {
		return &ValidationError{Field: "firstName", Message: "is required"}
	}
	if strings.TrimSpace(u.LastName) == "" {
		return &ValidationError{Field: "lastName", Message: "is required"}
	}
	return nil
}
