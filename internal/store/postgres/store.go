// Package postgres implements the state store on a relational backend.
// Single-station read-modify-write sequences run inside row-locking
// transactions so concurrent mutations of the same station serialize.
package postgres

import (
	"context"
	"log/slog"

	"stations-server/internal/shared/database"
	apperrors "stations-server/internal/shared/errors"
)

type Store struct {
	db     *database.DB
	logger *slog.Logger
}

func New(db *database.DB, logger *slog.Logger) *Store {
	logger.Debug("Initializing postgres store")

	return &Store{
		db:     db,
		logger: logger,
	}
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return apperrors.WrapStorage("database unreachable", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
