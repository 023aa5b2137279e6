package jsonfile

import (
	"context"
	"sort"

	"stations-server/internal/domain"
	apperrors "stations-server/internal/shared/errors"
)

func (s *Store) UpsertFaction(ctx context.Context, faction domain.Faction) error {
	logger := s.logger.With("operation", "upsert_faction", "faction_key", faction.Key)
	logger.Debug("Upserting faction")

	s.mu.Lock()
	previous, existed := s.factions[faction.Key]
	s.factions[faction.Key] = recordFromFaction(faction)
	s.mu.Unlock()

	if err := s.persistFactions(); err != nil {
		s.mu.Lock()
		if existed {
			s.factions[faction.Key] = previous
		} else {
			delete(s.factions, faction.Key)
		}
		s.mu.Unlock()
		logger.Error("Failed to persist factions document", "error", err)
		return apperrors.WrapStorage("failed to persist factions", err)
	}

	return nil
}

func (s *Store) ListFactions(ctx context.Context) ([]domain.Faction, error) {
	logger := s.logger.With("operation", "list_factions")
	logger.Debug("Listing factions")

	s.mu.RLock()
	factions := make([]domain.Faction, 0, len(s.factions))
	for key, rec := range s.factions {
		factions = append(factions, factionFromRecord(key, rec))
	}
	s.mu.RUnlock()

	sort.Slice(factions, func(i, j int) bool { return factions[i].Key < factions[j].Key })

	logger.Debug("Factions retrieved", "count", len(factions))
	return factions, nil
}

func (s *Store) GetFaction(ctx context.Context, key string) (*domain.Faction, error) {
	s.mu.RLock()
	rec, ok := s.factions[key]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}

	faction := factionFromRecord(key, rec)
	return &faction, nil
}
