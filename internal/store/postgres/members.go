package postgres

import (
	"context"

	apperrors "stations-server/internal/shared/errors"
)

func (s *Store) ListMembers(ctx context.Context, stationID string) ([]string, error) {
	logger := s.logger.With("component", "postgres_store", "operation", "list_members", "station_id", stationID)
	logger.Debug("Listing station members")

	exists, err := s.StationExists(ctx, stationID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFoundf("station %q not found", stationID)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT user_id FROM station_members WHERE station_id = $1 ORDER BY user_id", stationID)
	if err != nil {
		logger.Error("Failed to query station members", "error", err)
		return nil, apperrors.WrapStorage("failed to query station members", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	var members []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			logger.Error("Failed to scan member row", "error", err)
			return nil, apperrors.WrapStorage("failed to scan member", err)
		}
		members = append(members, userID)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Error during rows iteration", "error", err)
		return nil, apperrors.WrapStorage("error iterating members", err)
	}

	logger.Debug("Members retrieved", "count", len(members))
	return members, nil
}

func (s *Store) AddMember(ctx context.Context, stationID, userID string) error {
	logger := s.logger.With("component", "postgres_store", "operation", "add_member", "station_id", stationID, "user_id", userID)
	logger.Debug("Adding station member")

	exists, err := s.StationExists(ctx, stationID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFoundf("station %q not found", stationID)
	}

	query := `
		INSERT INTO station_members (station_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	if _, err := s.db.ExecContext(ctx, query, stationID, userID); err != nil {
		logger.Error("Failed to add station member", "error", err)
		return apperrors.WrapStorage("failed to add station member", err)
	}

	logger.Info("Station member added")
	return nil
}

func (s *Store) RemoveMember(ctx context.Context, stationID, userID string) error {
	logger := s.logger.With("component", "postgres_store", "operation", "remove_member", "station_id", stationID, "user_id", userID)
	logger.Debug("Removing station member")

	exists, err := s.StationExists(ctx, stationID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFoundf("station %q not found", stationID)
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM station_members WHERE station_id = $1 AND user_id = $2", stationID, userID); err != nil {
		logger.Error("Failed to remove station member", "error", err)
		return apperrors.WrapStorage("failed to remove station member", err)
	}

	logger.Info("Station member removed")
	return nil
}
