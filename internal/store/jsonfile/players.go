package jsonfile

import (
	"context"

	"stations-server/internal/domain"
	apperrors "stations-server/internal/shared/errors"
)

func (s *Store) GetPlayer(ctx context.Context, userID string) (*domain.Player, error) {
	s.mu.RLock()
	rec, ok := s.players[userID]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}

	player := playerFromRecord(userID, rec)
	return &player, nil
}

func (s *Store) AssignPlayerFaction(ctx context.Context, userID, name, factionKey string) (*domain.Player, error) {
	logger := s.logger.With("operation", "assign_player_faction", "user_id", userID, "faction_key", factionKey)
	logger.Debug("Assigning player faction")

	rec := playerRecord{
		Name:       name,
		FactionKey: factionKey,
		UpdatedAt:  s.now(),
	}

	s.mu.Lock()
	previous, existed := s.players[userID]
	s.players[userID] = rec
	s.mu.Unlock()

	if err := s.persistPlayers(); err != nil {
		s.mu.Lock()
		if existed {
			s.players[userID] = previous
		} else {
			delete(s.players, userID)
		}
		s.mu.Unlock()
		logger.Error("Failed to persist players document", "error", err)
		return nil, apperrors.WrapStorage("failed to persist players", err)
	}

	logger.Info("Player faction assigned")
	player := playerFromRecord(userID, rec)
	return &player, nil
}
