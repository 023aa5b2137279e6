package player

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"stations-server/internal/faction"
	apperrors "stations-server/internal/shared/errors"
	"stations-server/internal/store/jsonfile"
)

func newService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := jsonfile.Open(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	factions := faction.NewService(store, logger)
	if err := factions.Seed(ctx); err != nil {
		t.Fatalf("seed factions: %v", err)
	}

	return NewService(store, factions, logger)
}

func TestJoinFaction(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	p, err := svc.JoinFaction(ctx, "user-1", "Anna", "ldf")
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if p.FactionKey != "LDF" {
		t.Errorf("faction key = %q, want LDF", p.FactionKey)
	}

	// Switching factions replaces the previous assignment.
	p, err = svc.JoinFaction(ctx, "user-1", "Anna", "CMC")
	if err != nil {
		t.Fatalf("rejoin: %v", err)
	}
	if p.FactionKey != "CMC" {
		t.Errorf("faction key after switch = %q, want CMC", p.FactionKey)
	}
}

func TestJoinUnknownFactionLeavesAssignmentUntouched(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	if _, err := svc.JoinFaction(ctx, "user-1", "Anna", "LDF"); err != nil {
		t.Fatalf("join: %v", err)
	}

	_, err := svc.JoinFaction(ctx, "user-1", "Anna", "NVA")
	if apperrors.GetType(err) != apperrors.ErrorTypeValidation {
		t.Errorf("error type = %v, want validation", apperrors.GetType(err))
	}

	p, err := svc.WhoAmI(ctx, "user-1")
	if err != nil {
		t.Fatalf("whoami: %v", err)
	}
	if p == nil || p.FactionKey != "LDF" {
		t.Errorf("assignment after failed join = %+v, want LDF", p)
	}
}

func TestJoinUnplayableFactionRejected(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.JoinFaction(ctx, "user-1", "Anna", "UN")
	if apperrors.GetType(err) != apperrors.ErrorTypeValidation {
		t.Errorf("error type = %v, want validation", apperrors.GetType(err))
	}

	p, err := svc.WhoAmI(ctx, "user-1")
	if err != nil {
		t.Fatalf("whoami: %v", err)
	}
	if p != nil {
		t.Errorf("assignment created despite rejection: %+v", p)
	}
}

func TestWhoAmIUnassigned(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	p, err := svc.WhoAmI(ctx, "stranger")
	if err != nil || p != nil {
		t.Errorf("WhoAmI = (%v, %v), want (nil, nil)", p, err)
	}
}
