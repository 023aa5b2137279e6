package jsonfile

import (
	"context"
	"sort"

	"stations-server/internal/domain"
	apperrors "stations-server/internal/shared/errors"
)

func (s *Store) StationExists(ctx context.Context, stationID string) (bool, error) {
	s.mu.RLock()
	_, ok := s.stations[stationID]
	s.mu.RUnlock()
	return ok, nil
}

func (s *Store) CreateStation(ctx context.Context, station domain.Station) (*domain.Station, error) {
	logger := s.logger.With("operation", "create_station", "station_id", station.ID, "type", station.Type)
	logger.Debug("Creating station")

	unlock := s.stationLocks.lock(station.ID)
	defer unlock()

	if station.CreatedAt.IsZero() {
		station.CreatedAt = s.now()
	}

	s.mu.Lock()
	if _, exists := s.stations[station.ID]; exists {
		s.mu.Unlock()
		logger.Debug("Station id already taken")
		return nil, apperrors.Conflictf("station %q already exists", station.ID)
	}
	s.stations[station.ID] = recordFromStation(station, nil)
	s.mu.Unlock()

	if err := s.persistStations(); err != nil {
		s.mu.Lock()
		delete(s.stations, station.ID)
		s.mu.Unlock()
		logger.Error("Failed to persist stations document", "error", err)
		return nil, apperrors.WrapStorage("failed to persist stations", err)
	}

	logger.Info("Station created")
	created := stationFromRecord(station.ID, recordFromStation(station, nil))
	return &created, nil
}

func (s *Store) GetStation(ctx context.Context, stationID string) (*domain.Station, error) {
	s.mu.RLock()
	rec, ok := s.stations[stationID]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}

	station := stationFromRecord(stationID, rec)
	return &station, nil
}

func (s *Store) ListStations(ctx context.Context) ([]domain.StationSummary, error) {
	logger := s.logger.With("operation", "list_stations")
	logger.Debug("Listing stations")

	s.mu.RLock()
	summaries := make([]domain.StationSummary, 0, len(s.stations))
	for id, rec := range s.stations {
		summaries = append(summaries, domain.StationSummary{
			ID:           id,
			Name:         rec.Name,
			Type:         rec.Type,
			OwnerFaction: rec.OwnerFaction,
			MemberCount:  len(rec.Members),
		})
	}
	s.mu.RUnlock()

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })

	logger.Debug("Stations retrieved", "count", len(summaries))
	return summaries, nil
}

// MutateStation serializes read-modify-write sequences per station via
// the key lock, so concurrent mutations of the same station never lose
// an update while different stations proceed in parallel.
func (s *Store) MutateStation(ctx context.Context, stationID string, fn func(*domain.Station) error) (*domain.Station, error) {
	logger := s.logger.With("operation", "mutate_station", "station_id", stationID)
	logger.Debug("Mutating station")

	unlock := s.stationLocks.lock(stationID)
	defer unlock()

	s.mu.RLock()
	previous, ok := s.stations[stationID]
	s.mu.RUnlock()

	if !ok {
		logger.Debug("No station found with id")
		return nil, apperrors.NotFoundf("station %q not found", stationID)
	}

	station := stationFromRecord(stationID, previous)
	if err := fn(&station); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.stations[stationID] = recordFromStation(station, previous.Members)
	s.mu.Unlock()

	if err := s.persistStations(); err != nil {
		s.mu.Lock()
		s.stations[stationID] = previous
		s.mu.Unlock()
		logger.Error("Failed to persist stations document", "error", err)
		return nil, apperrors.WrapStorage("failed to persist stations", err)
	}

	logger.Debug("Station mutated", "type", station.Type, "condition", station.Condition, "protection_hours", station.ProtectionHours)
	return &station, nil
}

func (s *Store) DeleteStation(ctx context.Context, stationID string) error {
	logger := s.logger.With("operation", "delete_station", "station_id", stationID)
	logger.Debug("Deleting station")

	unlock := s.stationLocks.lock(stationID)
	defer unlock()

	s.mu.Lock()
	previous, ok := s.stations[stationID]
	if !ok {
		s.mu.Unlock()
		return apperrors.NotFoundf("station %q not found", stationID)
	}
	// Membership and the ledger live inside the record, so removing it
	// cascades both.
	delete(s.stations, stationID)
	s.mu.Unlock()

	if err := s.persistStations(); err != nil {
		s.mu.Lock()
		s.stations[stationID] = previous
		s.mu.Unlock()
		logger.Error("Failed to persist stations document", "error", err)
		return apperrors.WrapStorage("failed to persist stations", err)
	}

	logger.Info("Station deleted")
	return nil
}
