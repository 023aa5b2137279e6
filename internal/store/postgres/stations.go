package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"stations-server/internal/domain"
	apperrors "stations-server/internal/shared/errors"
)

const stationColumns = "station_id, name, type, owner_faction, condition, protection_hours, resources, created_at"

func scanStation(row interface{ Scan(...interface{}) error }) (*domain.Station, error) {
	var station domain.Station
	var resources []byte

	err := row.Scan(
		&station.ID,
		&station.Name,
		&station.Type,
		&station.OwnerFaction,
		&station.Condition,
		&station.ProtectionHours,
		&resources,
		&station.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	var ledger domain.Ledger
	if err := json.Unmarshal(resources, &ledger); err != nil {
		return nil, apperrors.WrapStorage("malformed resources document", err)
	}
	station.Resources = ledger.Normalize()

	return &station, nil
}

func (s *Store) StationExists(ctx context.Context, stationID string) (bool, error) {
	logger := s.logger.With("component", "postgres_store", "operation", "station_exists", "station_id", stationID)

	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM stations WHERE station_id = $1)", stationID).Scan(&exists)
	if err != nil {
		logger.Error("Failed to check station existence", "error", err)
		return false, apperrors.WrapStorage("failed to check station existence", err)
	}

	return exists, nil
}

func (s *Store) CreateStation(ctx context.Context, station domain.Station) (*domain.Station, error) {
	logger := s.logger.With(
		"component", "postgres_store",
		"operation", "create_station",
		"station_id", station.ID,
		"type", station.Type,
	)
	logger.Debug("Creating station")

	resources, err := json.Marshal(station.Resources)
	if err != nil {
		logger.Error("Failed to marshal resources", "error", err)
		return nil, apperrors.WrapStorage("failed to marshal resources", err)
	}

	query := `
		INSERT INTO stations (station_id, name, type, owner_faction, condition, protection_hours, resources)
		VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb)
		ON CONFLICT (station_id) DO NOTHING
		RETURNING ` + stationColumns

	created, err := scanStation(s.db.QueryRowContext(ctx, query,
		station.ID, station.Name, station.Type, station.OwnerFaction,
		station.Condition, station.ProtectionHours, resources))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Debug("Station id already taken")
			return nil, apperrors.Conflictf("station %q already exists", station.ID)
		}
		logger.Error("Failed to create station", "error", err)
		return nil, apperrors.WrapStorage("failed to create station", err)
	}

	logger.Info("Station created", "station_id", created.ID)
	return created, nil
}

func (s *Store) GetStation(ctx context.Context, stationID string) (*domain.Station, error) {
	logger := s.logger.With("component", "postgres_store", "operation", "get_station", "station_id", stationID)
	logger.Debug("Getting station")

	query := "SELECT " + stationColumns + " FROM stations WHERE station_id = $1"

	station, err := scanStation(s.db.QueryRowContext(ctx, query, stationID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Debug("No station found with id")
			return nil, nil
		}
		logger.Error("Database error getting station", "error", err)
		return nil, apperrors.WrapStorage("failed to get station", err)
	}

	return station, nil
}

func (s *Store) ListStations(ctx context.Context) ([]domain.StationSummary, error) {
	logger := s.logger.With("component", "postgres_store", "operation", "list_stations")
	logger.Debug("Listing stations")

	query := `
		SELECT s.station_id, s.name, s.type, s.owner_faction,
		       (SELECT COUNT(*) FROM station_members m WHERE m.station_id = s.station_id) AS member_count
		FROM stations s
		ORDER BY s.station_id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("Failed to query stations", "error", err)
		return nil, apperrors.WrapStorage("failed to query stations", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	var stations []domain.StationSummary
	for rows.Next() {
		var summary domain.StationSummary
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.Type, &summary.OwnerFaction, &summary.MemberCount); err != nil {
			logger.Error("Failed to scan station row", "error", err)
			return nil, apperrors.WrapStorage("failed to scan station", err)
		}
		stations = append(stations, summary)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Error during rows iteration", "error", err)
		return nil, apperrors.WrapStorage("error iterating stations", err)
	}

	logger.Debug("Stations retrieved", "count", len(stations))
	return stations, nil
}

// MutateStation locks the station row, applies fn and writes the
// result back in one transaction. The row lock serializes concurrent
// mutations of the same station without blocking other stations.
func (s *Store) MutateStation(ctx context.Context, stationID string, fn func(*domain.Station) error) (*domain.Station, error) {
	logger := s.logger.With("component", "postgres_store", "operation", "mutate_station", "station_id", stationID)
	logger.Debug("Mutating station")

	tx, err := s.db.BeginTxContext(ctx)
	if err != nil {
		logger.Error("Failed to begin transaction", "error", err)
		return nil, apperrors.WrapStorage("failed to begin transaction", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			logger.Error("Failed to rollback transaction", "error", err)
		}
	}()

	query := "SELECT " + stationColumns + " FROM stations WHERE station_id = $1 FOR UPDATE"

	station, err := scanStation(tx.QueryRowContext(ctx, query, stationID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Debug("No station found with id")
			return nil, apperrors.NotFoundf("station %q not found", stationID)
		}
		logger.Error("Failed to lock station row", "error", err)
		return nil, apperrors.WrapStorage("failed to read station", err)
	}

	if err := fn(station); err != nil {
		return nil, err
	}

	resources, err := json.Marshal(station.Resources)
	if err != nil {
		logger.Error("Failed to marshal resources", "error", err)
		return nil, apperrors.WrapStorage("failed to marshal resources", err)
	}

	update := `
		UPDATE stations
		SET name = $2, type = $3, owner_faction = $4, condition = $5, protection_hours = $6, resources = $7::jsonb
		WHERE station_id = $1
	`

	if _, err := tx.ExecContext(ctx, update,
		station.ID, station.Name, station.Type, station.OwnerFaction,
		station.Condition, station.ProtectionHours, resources); err != nil {
		logger.Error("Failed to update station", "error", err)
		return nil, apperrors.WrapStorage("failed to update station", err)
	}

	if err := tx.Commit(); err != nil {
		logger.Error("Failed to commit station mutation", "error", err)
		return nil, apperrors.WrapStorage("failed to commit station mutation", err)
	}

	logger.Debug("Station mutated", "type", station.Type, "condition", station.Condition, "protection_hours", station.ProtectionHours)
	return station, nil
}

func (s *Store) DeleteStation(ctx context.Context, stationID string) error {
	logger := s.logger.With("component", "postgres_store", "operation", "delete_station", "station_id", stationID)
	logger.Debug("Deleting station")

	// Memberships cascade via the station_members foreign key.
	result, err := s.db.ExecContext(ctx, "DELETE FROM stations WHERE station_id = $1", stationID)
	if err != nil {
		logger.Error("Failed to delete station", "error", err)
		return apperrors.WrapStorage("failed to delete station", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.Error("Failed to read delete result", "error", err)
		return apperrors.WrapStorage("failed to delete station", err)
	}
	if affected == 0 {
		return apperrors.NotFoundf("station %q not found", stationID)
	}

	logger.Info("Station deleted", "station_id", stationID)
	return nil
}
