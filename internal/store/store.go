// Package store defines the persistence contract of the state engine.
// Two backends implement it with equivalent semantics: a transactional
// postgres store and a whole-document JSON file store. Every method is
// atomic with respect to other operations on the same entity key; a
// failed write leaves the previously persisted state intact.
package store

import (
	"context"

	"stations-server/internal/domain"
)

// Store is the durable state behind the engine. Lookup methods return
// (nil, nil) when the entity is absent; mutation methods return typed
// application errors (not_found, conflict, storage_unavailable).
type Store interface {
	Ping(ctx context.Context) error
	Close() error

	// Factions
	UpsertFaction(ctx context.Context, faction domain.Faction) error
	ListFactions(ctx context.Context) ([]domain.Faction, error)
	GetFaction(ctx context.Context, key string) (*domain.Faction, error)

	// Players
	GetPlayer(ctx context.Context, userID string) (*domain.Player, error)
	AssignPlayerFaction(ctx context.Context, userID, name, factionKey string) (*domain.Player, error)

	// Stations
	StationExists(ctx context.Context, stationID string) (bool, error)
	CreateStation(ctx context.Context, station domain.Station) (*domain.Station, error)
	GetStation(ctx context.Context, stationID string) (*domain.Station, error)
	ListStations(ctx context.Context) ([]domain.StationSummary, error)
	DeleteStation(ctx context.Context, stationID string) error

	// MutateStation runs fn inside the station's read-modify-write
	// critical section and persists the result. Concurrent mutations
	// of the same station serialize; different stations do not block
	// each other.
	MutateStation(ctx context.Context, stationID string, fn func(*domain.Station) error) (*domain.Station, error)

	// Membership
	ListMembers(ctx context.Context, stationID string) ([]string, error)
	AddMember(ctx context.Context, stationID, userID string) error
	RemoveMember(ctx context.Context, stationID, userID string) error
}
