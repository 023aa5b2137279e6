package station

import (
	"context"

	"stations-server/internal/domain"
	apperrors "stations-server/internal/shared/errors"
)

// ShowResources returns the full ledger of a station. Every zone is
// present in the result even when empty.
func (s *Service) ShowResources(ctx context.Context, stationID string) (domain.Ledger, error) {
	id := domain.NormalizeStationID(stationID)

	st, err := s.store.GetStation(ctx, id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, apperrors.NotFoundf("station %q not found", id)
	}

	return st.Resources, nil
}

// AddResource books amount of item into the zone and returns the new
// quantity. Negative amounts are treated as zero.
func (s *Service) AddResource(ctx context.Context, actor domain.Actor, stationID, zone, item string, amount int) (int, error) {
	logger := s.logger.With("component", "station_service", "operation", "add_resource", "user_id", actor.UserID)
	logger.Debug("Adding resource")

	if err := requireStaff(actor); err != nil {
		return 0, err
	}

	id, zone, item, err := normalizeResourceArgs(stationID, zone, item)
	if err != nil {
		return 0, err
	}

	var quantity int
	_, err = s.store.MutateStation(ctx, id, func(st *domain.Station) error {
		quantity = st.Resources.Add(zone, item, amount)
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.cache.Invalidate(ctx, id)
	logger.Info("Resource added", "station_id", id, "zone", zone, "item", item, "quantity", quantity)
	return quantity, nil
}

// TakeResource books amount of item out of the zone and returns the new
// quantity. The counter never goes below zero; taking more than is
// stored empties it.
func (s *Service) TakeResource(ctx context.Context, actor domain.Actor, stationID, zone, item string, amount int) (int, error) {
	logger := s.logger.With("component", "station_service", "operation", "take_resource", "user_id", actor.UserID)
	logger.Debug("Taking resource")

	if err := requireStaff(actor); err != nil {
		return 0, err
	}

	id, zone, item, err := normalizeResourceArgs(stationID, zone, item)
	if err != nil {
		return 0, err
	}

	var quantity int
	_, err = s.store.MutateStation(ctx, id, func(st *domain.Station) error {
		quantity = st.Resources.Take(zone, item, amount)
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.cache.Invalidate(ctx, id)
	logger.Info("Resource taken", "station_id", id, "zone", zone, "item", item, "quantity", quantity)
	return quantity, nil
}

func normalizeResourceArgs(stationID, zone, item string) (string, string, string, error) {
	id := domain.NormalizeStationID(stationID)
	zone = domain.NormalizeZone(zone)
	item = domain.NormalizeItem(item)

	if !domain.ValidZone(zone) {
		return "", "", "", apperrors.Validationf("unknown zone %q", zone)
	}
	if item == "" {
		return "", "", "", apperrors.Validation("item must not be empty")
	}

	return id, zone, item, nil
}
