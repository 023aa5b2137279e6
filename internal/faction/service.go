package faction

import (
	"context"
	"log/slog"

	"stations-server/internal/domain"
	"stations-server/internal/store"
)

type Service struct {
	store  store.Store
	logger *slog.Logger
}

func NewService(store store.Store, logger *slog.Logger) *Service {
	logger.Debug("Initializing faction service")

	return &Service{
		store:  store,
		logger: logger,
	}
}

// Seed writes the default catalogue into the store. Upserts are
// idempotent, so running this on every startup is safe and also
// refreshes names and descriptions after an update.
func (s *Service) Seed(ctx context.Context) error {
	logger := s.logger.With("component", "faction_service", "operation", "seed")
	logger.Debug("Seeding faction catalogue")

	for _, f := range domain.DefaultFactions() {
		if err := s.store.UpsertFaction(ctx, f); err != nil {
			logger.Error("Failed to seed faction", "error", err, "faction_key", f.Key)
			return err
		}
	}

	logger.Info("Faction catalogue seeded", "count", len(domain.DefaultFactions()))
	return nil
}

// List returns the catalogue ordered by key.
func (s *Service) List(ctx context.Context) ([]domain.Faction, error) {
	return s.store.ListFactions(ctx)
}

// Get looks up a faction by key, case-insensitively. Returns nil
// without error when the key is unknown.
func (s *Service) Get(ctx context.Context, key string) (*domain.Faction, error) {
	return s.store.GetFaction(ctx, domain.NormalizeFactionKey(key))
}
