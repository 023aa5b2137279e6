package jsonfile

import (
	"context"
	"sort"

	apperrors "stations-server/internal/shared/errors"
)

func (s *Store) ListMembers(ctx context.Context, stationID string) ([]string, error) {
	s.mu.RLock()
	rec, ok := s.stations[stationID]
	s.mu.RUnlock()

	if !ok {
		return nil, apperrors.NotFoundf("station %q not found", stationID)
	}

	members := append([]string(nil), rec.Members...)
	sort.Strings(members)
	return members, nil
}

func (s *Store) AddMember(ctx context.Context, stationID, userID string) error {
	logger := s.logger.With("operation", "add_member", "station_id", stationID, "user_id", userID)
	logger.Debug("Adding station member")

	unlock := s.stationLocks.lock(stationID)
	defer unlock()

	s.mu.Lock()
	previous, ok := s.stations[stationID]
	if !ok {
		s.mu.Unlock()
		return apperrors.NotFoundf("station %q not found", stationID)
	}

	for _, member := range previous.Members {
		if member == userID {
			s.mu.Unlock()
			return nil
		}
	}

	updated := previous
	updated.Members = append(append([]string(nil), previous.Members...), userID)
	s.stations[stationID] = updated
	s.mu.Unlock()

	if err := s.persistStations(); err != nil {
		s.mu.Lock()
		s.stations[stationID] = previous
		s.mu.Unlock()
		logger.Error("Failed to persist stations document", "error", err)
		return apperrors.WrapStorage("failed to persist stations", err)
	}

	logger.Info("Station member added")
	return nil
}

func (s *Store) RemoveMember(ctx context.Context, stationID, userID string) error {
	logger := s.logger.With("operation", "remove_member", "station_id", stationID, "user_id", userID)
	logger.Debug("Removing station member")

	unlock := s.stationLocks.lock(stationID)
	defer unlock()

	s.mu.Lock()
	previous, ok := s.stations[stationID]
	if !ok {
		s.mu.Unlock()
		return apperrors.NotFoundf("station %q not found", stationID)
	}

	members := make([]string, 0, len(previous.Members))
	found := false
	for _, member := range previous.Members {
		if member == userID {
			found = true
			continue
		}
		members = append(members, member)
	}

	if !found {
		s.mu.Unlock()
		return nil
	}

	updated := previous
	updated.Members = members
	s.stations[stationID] = updated
	s.mu.Unlock()

	if err := s.persistStations(); err != nil {
		s.mu.Lock()
		s.stations[stationID] = previous
		s.mu.Unlock()
		logger.Error("Failed to persist stations document", "error", err)
		return apperrors.WrapStorage("failed to persist stations", err)
	}

	logger.Info("Station member removed")
	return nil
}
