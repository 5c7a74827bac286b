package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
)

// ErrUnavailable is returned when the graph store cannot be reached or a
// query cannot be executed against it. The adapter never retries; that is
// the caller's business.
var ErrUnavailable = errors.New("database: store unavailable")

// Config holds the bolt connection settings, read from the environment in main.
type Config struct {
	URI      string
	Username string
	Password string
	Database string
}

// Store wraps the Neo4j driver. Each Run/ReadTx/WriteTx call opens its own
// session and closes it on every exit path; the store itself is safe for
// concurrent use.
type Store struct {
	driver   neo4j.DriverWithContext
	database string
	log      *zap.Logger
}

// Connect creates the driver and verifies connectivity before returning.
func Connect(ctx context.Context, cfg Config, log *zap.Logger) (*Store, error) {
	auth := neo4j.NoAuth()
	if cfg.Username != "" {
		auth = neo4j.BasicAuth(cfg.Username, cfg.Password, "")
	}

	driver, err := neo4j.NewDriverWithContext(cfg.URI, auth)
	if err != nil {
		return nil, fmt.Errorf("%w: creating driver: %v", ErrUnavailable, err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	log.Info("connected to graph store", zap.String("uri", cfg.URI))

	return &Store{driver: driver, database: cfg.Database, log: log}, nil
}

// Close releases the driver and all pooled connections.
func (s *Store) Close(ctx context.Context) error {
	if s.driver == nil {
		return nil
	}
	if err := s.driver.Close(ctx); err != nil {
		return fmt.Errorf("database: closing driver: %w", err)
	}
	s.log.Info("disconnected from graph store")
	return nil
}

// Runner executes a single parametrized query. Both the store itself
// (auto-commit, one session per call) and an open transaction satisfy it.
type Runner interface {
	Run(ctx context.Context, query string, params map[string]any) ([]Row, error)
}

func (s *Store) session(ctx context.Context, mode neo4j.AccessMode) neo4j.SessionWithContext {
	cfg := neo4j.SessionConfig{AccessMode: mode}
	if s.database != "" {
		cfg.DatabaseName = s.database
	}
	return s.driver.NewSession(ctx, cfg)
}

// Run executes one query in its own session and returns the projected rows.
func (s *Store) Run(ctx context.Context, query string, params map[string]any) ([]Row, error) {
	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	result, err := session.Run(ctx, query, params)
	if err != nil {
		s.log.Error("query failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	records, err := result.Collect(ctx)
	if err != nil {
		s.log.Error("collecting results failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	rows := make([]Row, len(records))
	for i, record := range records {
		rows[i] = flattenRecord(record.Keys, record.Values)
	}
	return rows, nil
}

// ReadTx runs fn inside a single managed read transaction.
func (s *Store) ReadTx(ctx context.Context, fn func(Runner) error) error {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	_, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return nil, fn(&txRunner{tx: tx})
	})
	return err
}

// WriteTx runs fn inside a single managed write transaction; fn returning an
// error rolls the whole unit back.
func (s *Store) WriteTx(ctx context.Context, fn func(Runner) error) error {
	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return nil, fn(&txRunner{tx: tx})
	})
	return err
}

type txRunner struct {
	tx neo4j.ManagedTransaction
}

func (r *txRunner) Run(ctx context.Context, query string, params map[string]any) ([]Row, error) {
	result, err := r.tx.Run(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	records, err := result.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	rows := make([]Row, len(records))
	for i, record := range records {
		rows[i] = flattenRecord(record.Keys, record.Values)
	}
	return rows, nil
}
