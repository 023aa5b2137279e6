package player

import (
	"context"
	"log/slog"
	"strings"

	"stations-server/internal/domain"
	"stations-server/internal/faction"
	apperrors "stations-server/internal/shared/errors"
	"stations-server/internal/store"
)

type Service struct {
	store    store.Store
	factions *faction.Service
	logger   *slog.Logger
}

func NewService(store store.Store, factions *faction.Service, logger *slog.Logger) *Service {
	logger.Debug("Initializing player service")

	return &Service{
		store:    store,
		factions: factions,
		logger:   logger,
	}
}

// JoinFaction assigns the player to the given faction, replacing any
// previous assignment. A failed validation leaves the previous
// assignment untouched.
func (s *Service) JoinFaction(ctx context.Context, userID, displayName, factionKey string) (*domain.Player, error) {
	key := domain.NormalizeFactionKey(factionKey)
	logger := s.logger.With("component", "player_service", "operation", "join_faction", "user_id", userID, "faction_key", key)
	logger.Debug("Joining faction")

	f, err := s.factions.Get(ctx, key)
	if err != nil {
		logger.Error("Failed to look up faction", "error", err)
		return nil, err
	}
	if f == nil {
		logger.Debug("Unknown faction key")
		return nil, apperrors.Validationf("faction %q does not exist", key)
	}
	if !f.Playable {
		logger.Debug("Faction is not playable")
		return nil, apperrors.Validationf("faction %q is not playable", key)
	}

	player, err := s.store.AssignPlayerFaction(ctx, userID, strings.TrimSpace(displayName), key)
	if err != nil {
		logger.Error("Failed to assign faction", "error", err)
		return nil, err
	}

	logger.Info("Player joined faction")
	return player, nil
}

// WhoAmI returns the player's current assignment, or nil without error
// when the player has never joined a faction.
func (s *Service) WhoAmI(ctx context.Context, userID string) (*domain.Player, error) {
	return s.store.GetPlayer(ctx, userID)
}
