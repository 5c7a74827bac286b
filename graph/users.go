package graph

import (
	"context"

	"go.uber.org/zap"

	"wren/database"
	"wren/models"
)

// NewUser is the registration input. PasswordHash is an already-hashed
// credential; the engine never sees the raw password.
type NewUser struct {
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
}

// CreateUser registers a user. The uniqueness check and the create run in
// one write transaction; a taken username or email surfaces as
// ErrAlreadyRegistered.
func (e *Engine) CreateUser(ctx context.Context, newUser NewUser) (*models.User, error) {
	user := models.User{
		Username:  newUser.Username,
		Email:     newUser.Email,
		FirstName: newUser.FirstName,
		LastName:  newUser.LastName,
		Password:  newUser.PasswordHash,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	var created models.User
	err := e.store.WriteTx(ctx, func(tx database.Runner) error {
		rows, err := tx.Run(ctx, cypherUserTaken, map[string]any{
			"username": newUser.Username,
			"email":    newUser.Email,
		})
		if err != nil {
			return err
		}
		if len(rows) > 0 {
			return ErrAlreadyRegistered
		}

		rows, err = tx.Run(ctx, cypherCreateUser, map[string]any{
			"id":        e.newID(),
			"username":  newUser.Username,
			"email":     newUser.Email,
			"firstName": newUser.FirstName,
			"lastName":  newUser.LastName,
			"bio":       "",
			"password":  newUser.PasswordHash,
		})
		if err != nil {
			return err
		}
		created = rowUser(rows[0], "u")
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.log.Info("user registered", zap.String("userId", created.ID), zap.String("username", created.Username))
	return &created, nil
}

// GetUserByID returns a user without their credential hash.
func (e *Engine) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	rows, err := e.store.Run(ctx, cypherUserByID, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	user := rowUser(rows[0], "u")
	return &user, nil
}

// GetUserByUsername returns a user including their credential hash, for the
// identity gateway's login comparison.
func (e *Engine) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	rows, err := e.store.Run(ctx, cypherUserByUsername, map[string]any{"username": username})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	user := rowUser(rows[0], "u")
	user.Password = rows[0].String("u.password")
	return &user, nil
}

// UpdateUserBio replaces the bio field.
func (e *Engine) UpdateUserBio(ctx context.Context, userID, bio string) (*models.User, error) {
	rows, err := e.store.Run(ctx, cypherUpdateUserBio, map[string]any{"id": userID, "bio": bio})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	user := rowUser(rows[0], "u")
	return &user, nil
}

// UpdateUserDetails replaces the mutable profile fields in one go.
func (e *Engine) UpdateUserDetails(ctx context.Context, userID, firstName, lastName, bio string) (*models.User, error) {
	rows, err := e.store.Run(ctx, cypherUpdateUserDetails, map[string]any{
		"id":        userID,
		"firstName": firstName,
		"lastName":  lastName,
		"bio":       bio,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	user := rowUser(rows[0], "u")
	return &user, nil
}

// GetAllUsers lists every user except the given one, for the directory view.
func (e *Engine) GetAllUsers(ctx context.Context, excludingUserID string) ([]models.User, error) {
	rows, err := e.store.Run(ctx, cypherAllUsers, map[string]any{"excludeId": excludingUserID})
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, rowUser(row, "u"))
	}
	return users, nil
}

// GetUserFollowers lists the users following userID.
func (e *Engine) GetUserFollowers(ctx context.Context, userID string) ([]models.User, error) {
	rows, err := e.store.Run(ctx, cypherFollowers, map[string]any{"id": userID})
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, rowUser(row, "u"))
	}
	return users, nil
}

// FollowUser creates a follow edge. Idempotent: a second follow keeps the
// original edge and its createdAt, so the visibility cursor never moves.
func (e *Engine) FollowUser(ctx context.Context, userID, targetID string) error {
	if userID == targetID {
		return ErrSelfFollow
	}

	rows, err := e.store.Run(ctx, cypherFollow, map[string]any{
		"userId":    userID,
		"targetId":  targetID,
		"createdAt": e.now(),
	})
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return ErrNotFound
	}
	return nil
}

// UnfollowUser removes the follow edge if present. Idempotent.
func (e *Engine) UnfollowUser(ctx context.Context, userID, targetID string) error {
	_, err := e.store.Run(ctx, cypherUnfollow, map[string]any{
		"userId":   userID,
		"targetId": targetID,
	})
	return err
}

// IsFollowing reports whether a FOLLOWS edge exists from userID to targetID.
func (e *Engine) IsFollowing(ctx context.Context, userID, targetID string) (bool, error) {
	rows, err := e.store.Run(ctx, cypherIsFollowing, map[string]any{
		"userId":   userID,
		"targetId": targetID,
	})
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}
