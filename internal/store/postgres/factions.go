package postgres

import (
	"context"
	"database/sql"
	"errors"

	"stations-server/internal/domain"
	apperrors "stations-server/internal/shared/errors"
)

func (s *Store) UpsertFaction(ctx context.Context, faction domain.Faction) error {
	logger := s.logger.With("component", "postgres_store", "operation", "upsert_faction", "faction_key", faction.Key)
	logger.Debug("Upserting faction")

	query := `
		INSERT INTO factions (key, name, side, playable, description)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (key) DO UPDATE SET
			name = EXCLUDED.name,
			side = EXCLUDED.side,
			playable = EXCLUDED.playable,
			description = EXCLUDED.description
	`

	if _, err := s.db.ExecContext(ctx, query, faction.Key, faction.Name, faction.Side, faction.Playable, faction.Description); err != nil {
		logger.Error("Failed to upsert faction", "error", err)
		return apperrors.WrapStorage("failed to upsert faction", err)
	}

	return nil
}

func (s *Store) ListFactions(ctx context.Context) ([]domain.Faction, error) {
	logger := s.logger.With("component", "postgres_store", "operation", "list_factions")
	logger.Debug("Listing factions")

	query := `
		SELECT key, name, side, playable, description
		FROM factions
		ORDER BY key
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("Failed to query factions", "error", err)
		return nil, apperrors.WrapStorage("failed to query factions", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	var factions []domain.Faction
	for rows.Next() {
		var faction domain.Faction
		if err := rows.Scan(&faction.Key, &faction.Name, &faction.Side, &faction.Playable, &faction.Description); err != nil {
			logger.Error("Failed to scan faction row", "error", err)
			return nil, apperrors.WrapStorage("failed to scan faction", err)
		}
		factions = append(factions, faction)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Error during rows iteration", "error", err)
		return nil, apperrors.WrapStorage("error iterating factions", err)
	}

	logger.Debug("Factions retrieved", "count", len(factions))
	return factions, nil
}

func (s *Store) GetFaction(ctx context.Context, key string) (*domain.Faction, error) {
	logger := s.logger.With("component", "postgres_store", "operation", "get_faction", "faction_key", key)
	logger.Debug("Getting faction")

	query := `
		SELECT key, name, side, playable, description
		FROM factions
		WHERE key = $1
	`

	var faction domain.Faction
	err := s.db.QueryRowContext(ctx, query, key).Scan(&faction.Key, &faction.Name, &faction.Side, &faction.Playable, &faction.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Debug("No faction found with key")
			return nil, nil
		}
		logger.Error("Database error getting faction", "error", err)
		return nil, apperrors.WrapStorage("failed to get faction", err)
	}

	return &faction, nil
}
