// Package jsonfile implements the state store on flat JSON documents,
// one file per entity class. Documents are held in memory and written
// back whole on every mutation via temp-file-and-rename, so a failed
// write leaves the previous file intact. Per-station key locks give
// the same isolation the relational backend gets from row locks.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	apperrors "stations-server/internal/shared/errors"
)

const (
	factionsFile = "factions.json"
	playersFile  = "players.json"
	stationsFile = "stations.json"
)

type Store struct {
	dir    string
	logger *slog.Logger
	now    func() time.Time

	// mu guards the three in-memory documents.
	mu       sync.RWMutex
	factions map[string]factionRecord
	players  map[string]playerRecord
	stations map[string]stationRecord

	stationLocks *keyLocks
	persistMu    sync.Mutex
}

func Open(dir string, logger *slog.Logger) (*Store, error) {
	logger = logger.With("component", "jsonfile_store", "dir", dir)
	logger.Debug("Opening jsonfile store")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error("Failed to create data directory", "error", err)
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Store{
		dir:          dir,
		logger:       logger,
		now:          time.Now,
		factions:     make(map[string]factionRecord),
		players:      make(map[string]playerRecord),
		stations:     make(map[string]stationRecord),
		stationLocks: newKeyLocks(),
	}

	if err := loadDocument(dir, factionsFile, &s.factions); err != nil {
		return nil, err
	}
	if err := loadDocument(dir, playersFile, &s.players); err != nil {
		return nil, err
	}
	if err := loadDocument(dir, stationsFile, &s.stations); err != nil {
		return nil, err
	}

	logger.Info("Jsonfile store opened",
		"factions", len(s.factions),
		"players", len(s.players),
		"stations", len(s.stations),
	)

	return s, nil
}

func loadDocument(dir, name string, v interface{}) error {
	path := filepath.Join(dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return apperrors.WrapStorage(fmt.Sprintf("failed to read %s", name), err)
	}

	if err := decodeDocument(data, v); err != nil {
		return apperrors.WrapStorage(fmt.Sprintf("failed to decode %s", name), err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := os.Stat(s.dir); err != nil {
		return apperrors.WrapStorage("data directory unavailable", err)
	}
	return nil
}

func (s *Store) Close() error {
	return nil
}

// persist writes a snapshot of one document to disk. The persist mutex
// orders concurrent writers so the last file on disk always contains
// every previously committed change.
func (s *Store) persist(name string, snapshot func() interface{}) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.RLock()
	doc := snapshot()
	s.mu.RUnlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}

	return nil
}

func (s *Store) persistFactions() error {
	return s.persist(factionsFile, func() interface{} {
		out := make(map[string]factionRecord, len(s.factions))
		for k, v := range s.factions {
			out[k] = v
		}
		return out
	})
}

func (s *Store) persistPlayers() error {
	return s.persist(playersFile, func() interface{} {
		out := make(map[string]playerRecord, len(s.players))
		for k, v := range s.players {
			out[k] = v
		}
		return out
	})
}

func (s *Store) persistStations() error {
	return s.persist(stationsFile, func() interface{} {
		out := make(map[string]stationRecord, len(s.stations))
		for k, v := range s.stations {
			out[k] = v
		}
		return out
	})
}
