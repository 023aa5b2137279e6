package faction

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"stations-server/internal/store/jsonfile"
)

func newService(t *testing.T) *Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := jsonfile.Open(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return NewService(store, logger)
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	for i := 0; i < 2; i++ {
		if err := svc.Seed(ctx); err != nil {
			t.Fatalf("seed run %d: %v", i+1, err)
		}
	}

	factions, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(factions) != 4 {
		t.Fatalf("catalogue has %d entries after double seed, want 4", len(factions))
	}

	wantKeys := []string{"CMC", "IND", "LDF", "UN"}
	for i, key := range wantKeys {
		if factions[i].Key != key {
			t.Errorf("catalogue[%d].Key = %q, want %q", i, factions[i].Key, key)
		}
	}
}

func TestGetIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	if err := svc.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	f, err := svc.Get(ctx, " ldf ")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if f == nil || f.Key != "LDF" {
		t.Fatalf("Get(\" ldf \") = %+v, want LDF entry", f)
	}
	if !f.Playable {
		t.Error("LDF should be playable")
	}
}

func TestGetUnknownReturnsNil(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	if err := svc.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	f, err := svc.Get(ctx, "NVA")
	if err != nil || f != nil {
		t.Errorf("Get(NVA) = (%v, %v), want (nil, nil)", f, err)
	}
}
