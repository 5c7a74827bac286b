// Package graph implements the social graph engine: how posts, users,
// follows, replies and quotes relate, and how timelines and threads are
// assembled from the graph.
package graph

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wren/database"
	"wren/models"
)

// Store is the slice of the store adapter the engine depends on. It is an
// explicit dependency so tests can substitute an in-memory store.
type Store interface {
	database.Runner
	ReadTx(ctx context.Context, fn func(database.Runner) error) error
	WriteTx(ctx context.Context, fn func(database.Runner) error) error
}

// Engine executes graph operations. Callers are assumed to be authenticated
// already; the engine never re-checks identity.
type Engine struct {
	store Store
	log   *zap.Logger

	// Overridable in tests for deterministic timestamps and ids.
	now   func() time.Time
	newID func() string
}

// New creates an engine bound to a store.
func New(store Store, log *zap.Logger) *Engine {
	return &Engine{
		store: store,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// rowUser reads a user projection with the given alias out of a row.
func rowUser(row database.Row, alias string) models.User {
	return models.User{
		ID:        row.String(alias + ".id"),
		Username:  row.String(alias + ".username"),
		Email:     row.String(alias + ".email"),
		FirstName: row.String(alias + ".firstName"),
		LastName:  row.String(alias + ".lastName"),
		Bio:       row.String(alias + ".bio"),
	}
}

// rowPost reads a post projection with the given alias out of a row.
func rowPost(row database.Row, alias string) models.Post {
	return models.Post{
		ID:        row.String(alias + ".id"),
		Content:   row.String(alias + ".content"),
		CreatedAt: row.Time(alias + ".createdAt"),
	}
}

// rowQuote reads the optional quoted-post projection (aliases q and qa);
// nil when the OPTIONAL MATCH found nothing.
func rowQuote(row database.Row) *models.Post {
	if !row.Has("q.id") {
		return nil
	}
	quoted := rowPost(row, "q")
	author := rowUser(row, "qa")
	quoted.User = &author
	return &quoted
}
