package station

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"stations-server/internal/domain"
	apperrors "stations-server/internal/shared/errors"
	"stations-server/internal/store"
)

type Service struct {
	store  store.Store
	cache  *Cache
	logger *slog.Logger
}

func NewService(store store.Store, cache *Cache, logger *slog.Logger) *Service {
	logger.Debug("Initializing station service")

	return &Service{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// Snapshot is the info projection served for a single station.
type Snapshot struct {
	ID              string             `json:"station_id"`
	Name            string             `json:"name"`
	Type            domain.StationType `json:"type"`
	OwnerFaction    string             `json:"owner_faction"`
	MemberCount     int                `json:"member_count"`
	Condition       int                `json:"condition"`
	ProtectionHours int                `json:"protection_hours"`
	CreatedAt       time.Time          `json:"created_at"`
}

// CreateInput carries the raw, unnormalized fields of a create command.
// ReportedMemberCount is what the founding group claims to have; it is
// checked against the type threshold once, at creation, and not stored.
type CreateInput struct {
	ID                  string
	Name                string
	Type                string
	OwnerFaction        string
	ReportedMemberCount int
}

func requireStaff(actor domain.Actor) error {
	if !actor.Staff {
		return apperrors.Forbidden("staff permission required")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, actor domain.Actor, input CreateInput) (*domain.Station, error) {
	logger := s.logger.With("component", "station_service", "operation", "create", "user_id", actor.UserID)
	logger.Debug("Creating station")

	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	id := domain.NormalizeStationID(input.ID)
	if id == "" {
		return nil, apperrors.Validation("station id must not be empty")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = id
	}

	stationType := domain.NormalizeStationType(input.Type)
	if !stationType.Valid() {
		return nil, apperrors.Validationf("unknown station type %q", input.Type)
	}

	owner := domain.NormalizeFactionKey(input.OwnerFaction)
	f, err := s.store.GetFaction(ctx, owner)
	if err != nil {
		logger.Error("Failed to look up owner faction", "error", err)
		return nil, err
	}
	if f == nil {
		return nil, apperrors.Validationf("faction %q does not exist", owner)
	}

	if input.ReportedMemberCount < stationType.MinMembers() {
		return nil, apperrors.Validationf("type %s requires at least %d members, got %d",
			stationType, stationType.MinMembers(), input.ReportedMemberCount)
	}

	created, err := s.store.CreateStation(ctx, domain.Station{
		ID:              id,
		Name:            name,
		Type:            stationType,
		OwnerFaction:    owner,
		Condition:       domain.DefaultCondition,
		ProtectionHours: domain.DefaultProtection(stationType),
		Resources:       domain.NewLedger(),
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, id)
	logger.Info("Station created", "station_id", id, "type", stationType, "owner_faction", owner)
	return created, nil
}

// SetType reclassifies a station. Protection is ratcheted, never reset:
// a station that becomes STRATEGISCH while unprotected gains the
// strategic grant, but existing protection is left as it is.
func (s *Service) SetType(ctx context.Context, actor domain.Actor, stationID, rawType string) (*domain.Station, error) {
	logger := s.logger.With("component", "station_service", "operation", "set_type", "user_id", actor.UserID)
	logger.Debug("Setting station type")

	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	stationType := domain.NormalizeStationType(rawType)
	if !stationType.Valid() {
		return nil, apperrors.Validationf("unknown station type %q", rawType)
	}

	id := domain.NormalizeStationID(stationID)
	updated, err := s.store.MutateStation(ctx, id, func(st *domain.Station) error {
		st.Type = stationType
		if stationType == domain.TypeStrategisch && st.ProtectionHours == 0 {
			st.ProtectionHours = domain.StrategicProtectionHours
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, id)
	logger.Info("Station type set", "station_id", id, "type", stationType)
	return updated, nil
}

// SetCondition stores the condition clamped to [0, 100]. Out-of-range
// values are clamped, not rejected.
func (s *Service) SetCondition(ctx context.Context, actor domain.Actor, stationID string, condition int) (*domain.Station, error) {
	logger := s.logger.With("component", "station_service", "operation", "set_condition", "user_id", actor.UserID)
	logger.Debug("Setting station condition")

	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	id := domain.NormalizeStationID(stationID)
	updated, err := s.store.MutateStation(ctx, id, func(st *domain.Station) error {
		st.Condition = domain.ClampCondition(condition)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, id)
	logger.Info("Station condition set", "station_id", id, "condition", updated.Condition)
	return updated, nil
}

// SetProtection stores the protection timer clamped to >= 0.
func (s *Service) SetProtection(ctx context.Context, actor domain.Actor, stationID string, hours int) (*domain.Station, error) {
	logger := s.logger.With("component", "station_service", "operation", "set_protection", "user_id", actor.UserID)
	logger.Debug("Setting station protection")

	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	id := domain.NormalizeStationID(stationID)
	updated, err := s.store.MutateStation(ctx, id, func(st *domain.Station) error {
		st.ProtectionHours = domain.ClampProtection(hours)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, id)
	logger.Info("Station protection set", "station_id", id, "protection_hours", updated.ProtectionHours)
	return updated, nil
}

// AddMember puts a user on the station roster. Adding an existing
// member is a no-op, not an error.
func (s *Service) AddMember(ctx context.Context, actor domain.Actor, stationID, userID string) error {
	logger := s.logger.With("component", "station_service", "operation", "add_member", "user_id", actor.UserID)
	logger.Debug("Adding station member")

	if err := requireStaff(actor); err != nil {
		return err
	}

	id := domain.NormalizeStationID(stationID)
	if err := s.store.AddMember(ctx, id, userID); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, id)
	return nil
}

// RemoveMember takes a user off the roster. Removing an absent member
// is a no-op, not an error.
func (s *Service) RemoveMember(ctx context.Context, actor domain.Actor, stationID, userID string) error {
	logger := s.logger.With("component", "station_service", "operation", "remove_member", "user_id", actor.UserID)
	logger.Debug("Removing station member")

	if err := requireStaff(actor); err != nil {
		return err
	}

	id := domain.NormalizeStationID(stationID)
	if err := s.store.RemoveMember(ctx, id, userID); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, id)
	return nil
}

// Delete removes a station with its roster and ledger.
func (s *Service) Delete(ctx context.Context, actor domain.Actor, stationID string) error {
	logger := s.logger.With("component", "station_service", "operation", "delete", "user_id", actor.UserID)
	logger.Debug("Deleting station")

	if err := requireStaff(actor); err != nil {
		return err
	}

	id := domain.NormalizeStationID(stationID)
	if err := s.store.DeleteStation(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, id)
	return nil
}

// Info returns the station snapshot, served from the cache when fresh.
func (s *Service) Info(ctx context.Context, stationID string) (*Snapshot, error) {
	logger := s.logger.With("component", "station_service", "operation", "info")

	id := domain.NormalizeStationID(stationID)
	if snap := s.cache.GetInfo(ctx, id); snap != nil {
		logger.Debug("Station snapshot served from cache", "station_id", id)
		return snap, nil
	}

	st, err := s.store.GetStation(ctx, id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, apperrors.NotFoundf("station %q not found", id)
	}

	members, err := s.store.ListMembers(ctx, id)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		ID:              st.ID,
		Name:            st.Name,
		Type:            st.Type,
		OwnerFaction:    st.OwnerFaction,
		MemberCount:     len(members),
		Condition:       st.Condition,
		ProtectionHours: st.ProtectionHours,
		CreatedAt:       st.CreatedAt,
	}

	s.cache.SetInfo(ctx, id, snap)
	return snap, nil
}

// List returns summaries of all stations ordered by id.
func (s *Service) List(ctx context.Context) ([]domain.StationSummary, error) {
	return s.store.ListStations(ctx)
}

// ListMembers returns the station roster ordered by user id.
func (s *Service) ListMembers(ctx context.Context, stationID string) ([]string, error) {
	return s.store.ListMembers(ctx, domain.NormalizeStationID(stationID))
}
