package postgres

import (
	"context"
	"database/sql"
	"errors"

	"stations-server/internal/domain"
	apperrors "stations-server/internal/shared/errors"
)

func (s *Store) GetPlayer(ctx context.Context, userID string) (*domain.Player, error) {
	logger := s.logger.With("component", "postgres_store", "operation", "get_player", "user_id", userID)
	logger.Debug("Getting player")

	query := `
		SELECT user_id, name, faction_key, updated_at
		FROM players
		WHERE user_id = $1
	`

	var player domain.Player
	err := s.db.QueryRowContext(ctx, query, userID).Scan(&player.UserID, &player.Name, &player.FactionKey, &player.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Debug("No player found with user id")
			return nil, nil
		}
		logger.Error("Database error getting player", "error", err)
		return nil, apperrors.WrapStorage("failed to get player", err)
	}

	return &player, nil
}

func (s *Store) AssignPlayerFaction(ctx context.Context, userID, name, factionKey string) (*domain.Player, error) {
	logger := s.logger.With(
		"component", "postgres_store",
		"operation", "assign_player_faction",
		"user_id", userID,
		"faction_key", factionKey,
	)
	logger.Debug("Assigning player faction")

	query := `
		INSERT INTO players (user_id, name, faction_key, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			faction_key = EXCLUDED.faction_key,
			updated_at = NOW()
		RETURNING user_id, name, faction_key, updated_at
	`

	var player domain.Player
	err := s.db.QueryRowContext(ctx, query, userID, name, factionKey).Scan(&player.UserID, &player.Name, &player.FactionKey, &player.UpdatedAt)
	if err != nil {
		logger.Error("Failed to assign player faction", "error", err)
		return nil, apperrors.WrapStorage("failed to assign player faction", err)
	}

	logger.Info("Player faction assigned", "user_id", player.UserID, "faction_key", player.FactionKey)
	return &player, nil
}
