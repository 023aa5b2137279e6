package jsonfile

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"stations-server/internal/domain"
	apperrors "stations-server/internal/shared/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openStore(t *testing.T, dir string) *Store {
	t.Helper()
	s, err := Open(dir, testLogger())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func testStation(id string) domain.Station {
	return domain.Station{
		ID:              id,
		Name:            "Alpha Base",
		Type:            domain.TypeDorf,
		OwnerFaction:    "LDF",
		Condition:       100,
		ProtectionHours: 0,
		Resources:       domain.NewLedger(),
	}
}

func TestStationPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s := openStore(t, dir)
	if _, err := s.CreateStation(ctx, testStation("alpha")); err != nil {
		t.Fatalf("create station: %v", err)
	}
	if err := s.AddMember(ctx, "alpha", "user-1"); err != nil {
		t.Fatalf("add member: %v", err)
	}
	if _, err := s.MutateStation(ctx, "alpha", func(st *domain.Station) error {
		st.Condition = 80
		st.Resources.Add("lager", "holz", 12)
		return nil
	}); err != nil {
		t.Fatalf("mutate station: %v", err)
	}

	reopened := openStore(t, dir)
	st, err := reopened.GetStation(ctx, "alpha")
	if err != nil {
		t.Fatalf("get station: %v", err)
	}
	if st == nil {
		t.Fatal("station lost across reopen")
	}
	if st.Condition != 80 {
		t.Errorf("condition = %d, want 80", st.Condition)
	}
	if got := st.Resources.Quantity("lager", "holz"); got != 12 {
		t.Errorf("resource quantity = %d, want 12", got)
	}

	members, err := reopened.ListMembers(ctx, "alpha")
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	if len(members) != 1 || members[0] != "user-1" {
		t.Errorf("members = %v, want [user-1]", members)
	}
}

func TestCreateStationConflict(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, t.TempDir())

	if _, err := s.CreateStation(ctx, testStation("alpha")); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := s.CreateStation(ctx, testStation("alpha"))
	if apperrors.GetType(err) != apperrors.ErrorTypeConflict {
		t.Errorf("duplicate create error type = %v, want conflict", apperrors.GetType(err))
	}
}

func TestGetAbsentReturnsNil(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, t.TempDir())

	st, err := s.GetStation(ctx, "nope")
	if err != nil || st != nil {
		t.Errorf("GetStation = (%v, %v), want (nil, nil)", st, err)
	}

	p, err := s.GetPlayer(ctx, "nope")
	if err != nil || p != nil {
		t.Errorf("GetPlayer = (%v, %v), want (nil, nil)", p, err)
	}

	f, err := s.GetFaction(ctx, "NOPE")
	if err != nil || f != nil {
		t.Errorf("GetFaction = (%v, %v), want (nil, nil)", f, err)
	}
}

func TestMutateStationNotFound(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, t.TempDir())

	_, err := s.MutateStation(ctx, "ghost", func(st *domain.Station) error { return nil })
	if apperrors.GetType(err) != apperrors.ErrorTypeNotFound {
		t.Errorf("error type = %v, want not_found", apperrors.GetType(err))
	}
}

func TestConcurrentMutationsLoseNoUpdates(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, t.TempDir())

	if _, err := s.CreateStation(ctx, testStation("alpha")); err != nil {
		t.Fatalf("create station: %v", err)
	}

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := s.MutateStation(ctx, "alpha", func(st *domain.Station) error {
				st.Resources.Add("lager", "holz", 1)
				return nil
			})
			if err != nil {
				t.Errorf("mutate station: %v", err)
			}
		}()
	}
	wg.Wait()

	st, err := s.GetStation(ctx, "alpha")
	if err != nil || st == nil {
		t.Fatalf("get station: (%v, %v)", st, err)
	}
	if got := st.Resources.Quantity("lager", "holz"); got != workers {
		t.Errorf("quantity after %d concurrent adds = %d", workers, got)
	}
}

func TestMembersIdempotent(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, t.TempDir())

	if _, err := s.CreateStation(ctx, testStation("alpha")); err != nil {
		t.Fatalf("create station: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := s.AddMember(ctx, "alpha", "user-1"); err != nil {
			t.Fatalf("add member: %v", err)
		}
	}

	members, err := s.ListMembers(ctx, "alpha")
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	if len(members) != 1 {
		t.Errorf("members = %v, want exactly one entry", members)
	}

	if err := s.RemoveMember(ctx, "alpha", "never-joined"); err != nil {
		t.Errorf("removing absent member should be a no-op, got %v", err)
	}

	if err := s.AddMember(ctx, "ghost", "user-1"); apperrors.GetType(err) != apperrors.ErrorTypeNotFound {
		t.Errorf("add to missing station error type = %v, want not_found", apperrors.GetType(err))
	}
}

func TestDeleteStationCascades(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, t.TempDir())

	if _, err := s.CreateStation(ctx, testStation("alpha")); err != nil {
		t.Fatalf("create station: %v", err)
	}
	if err := s.AddMember(ctx, "alpha", "user-1"); err != nil {
		t.Fatalf("add member: %v", err)
	}

	if err := s.DeleteStation(ctx, "alpha"); err != nil {
		t.Fatalf("delete station: %v", err)
	}

	st, err := s.GetStation(ctx, "alpha")
	if err != nil || st != nil {
		t.Errorf("station survived deletion: (%v, %v)", st, err)
	}
	if _, err := s.ListMembers(ctx, "alpha"); apperrors.GetType(err) != apperrors.ErrorTypeNotFound {
		t.Errorf("roster survived deletion, error type = %v", apperrors.GetType(err))
	}

	if err := s.DeleteStation(ctx, "alpha"); apperrors.GetType(err) != apperrors.ErrorTypeNotFound {
		t.Errorf("second delete error type = %v, want not_found", apperrors.GetType(err))
	}
}

func TestOpenRecoversWindows1252Document(t *testing.T) {
	dir := t.TempDir()

	// "Bär" with the umlaut as the single Windows-1252 byte 0xE4.
	raw := []byte(`{"alpha":{"name":"B` + "\xe4" + `r","type":"DORF","owner_faction":"LDF","condition":100,"protection_hours":0,"resources":{},"members":[],"created_at":"2024-01-01T00:00:00Z"}}`)
	if err := os.WriteFile(filepath.Join(dir, stationsFile), raw, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	s := openStore(t, dir)

	st, err := s.GetStation(context.Background(), "alpha")
	if err != nil {
		t.Fatalf("get station: %v", err)
	}
	if st == nil {
		t.Fatal("station missing after legacy decode")
	}
	if st.Name != "Bär" {
		t.Errorf("name = %q, want %q", st.Name, "Bär")
	}
}

func TestOpenRejectsGarbageDocument(t *testing.T) {
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, stationsFile), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := Open(dir, testLogger())
	if apperrors.GetType(err) != apperrors.ErrorTypeStorage {
		t.Errorf("error type = %v, want storage_unavailable", apperrors.GetType(err))
	}
}
