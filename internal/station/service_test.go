package station

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"stations-server/internal/domain"
	"stations-server/internal/faction"
	apperrors "stations-server/internal/shared/errors"
	"stations-server/internal/store/jsonfile"
)

var (
	staff  = domain.Actor{UserID: "staff-1", Staff: true}
	member = domain.Actor{UserID: "user-1"}
)

func newService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := jsonfile.Open(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	if err := faction.NewService(store, logger).Seed(ctx); err != nil {
		t.Fatalf("seed factions: %v", err)
	}

	// nil cache: methods are no-ops, same as running without Redis
	return NewService(store, nil, logger)
}

func create(t *testing.T, svc *Service, input CreateInput) *domain.Station {
	t.Helper()
	st, err := svc.Create(context.Background(), staff, input)
	if err != nil {
		t.Fatalf("create %q: %v", input.ID, err)
	}
	return st
}

func dorfInput(id string) CreateInput {
	return CreateInput{ID: id, Name: "Dorf " + id, Type: "DORF", OwnerFaction: "LDF", ReportedMemberCount: 4}
}

func TestCreateDefaults(t *testing.T) {
	svc := newService(t)

	st := create(t, svc, CreateInput{
		ID:                  " Alpha ",
		Name:                "Alpha Base",
		Type:                "dorf",
		OwnerFaction:        "ldf",
		ReportedMemberCount: 4,
	})

	if st.ID != "alpha" {
		t.Errorf("id = %q, want %q", st.ID, "alpha")
	}
	if st.Type != domain.TypeDorf {
		t.Errorf("type = %q, want DORF", st.Type)
	}
	if st.OwnerFaction != "LDF" {
		t.Errorf("owner = %q, want LDF", st.OwnerFaction)
	}
	if st.Condition != domain.DefaultCondition {
		t.Errorf("condition = %d, want %d", st.Condition, domain.DefaultCondition)
	}
	if st.ProtectionHours != 0 {
		t.Errorf("protection = %d, want 0", st.ProtectionHours)
	}
	for _, zone := range domain.Zones {
		if _, ok := st.Resources[zone]; !ok {
			t.Errorf("zone %q missing from new ledger", zone)
		}
	}
}

func TestCreateMemberThreshold(t *testing.T) {
	svc := newService(t)

	_, err := svc.Create(context.Background(), staff, CreateInput{
		ID: "sied", Type: "SIEDLUNG", OwnerFaction: "LDF", ReportedMemberCount: 9,
	})
	if apperrors.GetType(err) != apperrors.ErrorTypeValidation {
		t.Errorf("9 members for SIEDLUNG: error type = %v, want validation", apperrors.GetType(err))
	}

	st := create(t, svc, CreateInput{
		ID: "sied", Type: "SIEDLUNG", OwnerFaction: "LDF", ReportedMemberCount: 10,
	})
	if st.ProtectionHours != 0 {
		t.Errorf("SIEDLUNG protection = %d, want 0", st.ProtectionHours)
	}
}

func TestCreateStrategischGetsProtection(t *testing.T) {
	svc := newService(t)

	st := create(t, svc, CreateInput{
		ID: "fort", Type: "STRATEGISCH", OwnerFaction: "CMC", ReportedMemberCount: 5,
	})
	if st.ProtectionHours != domain.StrategicProtectionHours {
		t.Errorf("protection = %d, want %d", st.ProtectionHours, domain.StrategicProtectionHours)
	}
}

func TestCreateRejections(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	tests := []struct {
		name  string
		actor domain.Actor
		input CreateInput
		want  apperrors.ErrorType
	}{
		{"non-staff", member, dorfInput("a"), apperrors.ErrorTypeForbidden},
		{"empty id", staff, CreateInput{Type: "DORF", OwnerFaction: "LDF", ReportedMemberCount: 4}, apperrors.ErrorTypeValidation},
		{"unknown type", staff, CreateInput{ID: "a", Type: "FESTUNG", OwnerFaction: "LDF", ReportedMemberCount: 4}, apperrors.ErrorTypeValidation},
		{"unknown faction", staff, CreateInput{ID: "a", Type: "DORF", OwnerFaction: "NVA", ReportedMemberCount: 4}, apperrors.ErrorTypeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.actor, tt.input)
			if apperrors.GetType(err) != tt.want {
				t.Errorf("error type = %v, want %v", apperrors.GetType(err), tt.want)
			}
		})
	}

	create(t, svc, dorfInput("taken"))
	_, err := svc.Create(ctx, staff, dorfInput("taken"))
	if apperrors.GetType(err) != apperrors.ErrorTypeConflict {
		t.Errorf("duplicate create error type = %v, want conflict", apperrors.GetType(err))
	}
}

func TestSetTypeProtectionRatchet(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	// Unprotected station gains the strategic grant.
	create(t, svc, dorfInput("alpha"))
	st, err := svc.SetType(ctx, staff, "alpha", "strategisch")
	if err != nil {
		t.Fatalf("set type: %v", err)
	}
	if st.ProtectionHours != domain.StrategicProtectionHours {
		t.Errorf("protection = %d, want %d", st.ProtectionHours, domain.StrategicProtectionHours)
	}

	// Existing protection is never overwritten.
	create(t, svc, dorfInput("beta"))
	if _, err := svc.SetProtection(ctx, staff, "beta", 12); err != nil {
		t.Fatalf("set protection: %v", err)
	}
	st, err = svc.SetType(ctx, staff, "beta", "STRATEGISCH")
	if err != nil {
		t.Fatalf("set type: %v", err)
	}
	if st.ProtectionHours != 12 {
		t.Errorf("protection after ratchet = %d, want 12", st.ProtectionHours)
	}

	if _, err := svc.SetType(ctx, staff, "alpha", "BURG"); apperrors.GetType(err) != apperrors.ErrorTypeValidation {
		t.Errorf("unknown type error = %v, want validation", apperrors.GetType(err))
	}
	if _, err := svc.SetType(ctx, member, "alpha", "CAMP"); apperrors.GetType(err) != apperrors.ErrorTypeForbidden {
		t.Errorf("non-staff error = %v, want forbidden", apperrors.GetType(err))
	}
}

func TestSetConditionClamps(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	create(t, svc, dorfInput("alpha"))

	st, err := svc.SetCondition(ctx, staff, "alpha", 150)
	if err != nil {
		t.Fatalf("set condition: %v", err)
	}
	if st.Condition != 100 {
		t.Errorf("condition = %d, want 100", st.Condition)
	}

	st, err = svc.SetCondition(ctx, staff, "alpha", -5)
	if err != nil {
		t.Fatalf("set condition: %v", err)
	}
	if st.Condition != 0 {
		t.Errorf("condition = %d, want 0", st.Condition)
	}
}

func TestSetProtectionClamps(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	create(t, svc, dorfInput("alpha"))

	st, err := svc.SetProtection(ctx, staff, "alpha", -3)
	if err != nil {
		t.Fatalf("set protection: %v", err)
	}
	if st.ProtectionHours != 0 {
		t.Errorf("protection = %d, want 0", st.ProtectionHours)
	}
}

func TestMembershipFlow(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	create(t, svc, dorfInput("alpha"))

	for i := 0; i < 2; i++ {
		if err := svc.AddMember(ctx, staff, "alpha", "user-7"); err != nil {
			t.Fatalf("add member: %v", err)
		}
	}

	members, err := svc.ListMembers(ctx, "alpha")
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	if len(members) != 1 {
		t.Errorf("members = %v, want one entry", members)
	}

	if err := svc.RemoveMember(ctx, staff, "alpha", "never-there"); err != nil {
		t.Errorf("removing absent member should be a no-op, got %v", err)
	}
	if err := svc.AddMember(ctx, member, "alpha", "user-8"); apperrors.GetType(err) != apperrors.ErrorTypeForbidden {
		t.Errorf("non-staff add error = %v, want forbidden", apperrors.GetType(err))
	}
	if err := svc.AddMember(ctx, staff, "ghost", "user-7"); apperrors.GetType(err) != apperrors.ErrorTypeNotFound {
		t.Errorf("add to missing station error = %v, want not_found", apperrors.GetType(err))
	}
}

func TestResourceFlow(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	create(t, svc, dorfInput("alpha"))

	qty, err := svc.AddResource(ctx, staff, "alpha", " LAGER ", " Holz ", 5)
	if err != nil {
		t.Fatalf("add resource: %v", err)
	}
	if qty != 5 {
		t.Errorf("quantity after add = %d, want 5", qty)
	}

	qty, err = svc.TakeResource(ctx, staff, "alpha", "lager", "holz", 2)
	if err != nil {
		t.Fatalf("take resource: %v", err)
	}
	if qty != 3 {
		t.Errorf("quantity after take = %d, want 3", qty)
	}

	qty, err = svc.TakeResource(ctx, staff, "alpha", "lager", "holz", 10)
	if err != nil {
		t.Fatalf("take resource: %v", err)
	}
	if qty != 0 {
		t.Errorf("quantity floored = %d, want 0", qty)
	}

	if _, err := svc.AddResource(ctx, staff, "alpha", "keller", "wein", 1); apperrors.GetType(err) != apperrors.ErrorTypeValidation {
		t.Errorf("unknown zone error = %v, want validation", apperrors.GetType(err))
	}
	if _, err := svc.AddResource(ctx, member, "alpha", "lager", "holz", 1); apperrors.GetType(err) != apperrors.ErrorTypeForbidden {
		t.Errorf("non-staff error = %v, want forbidden", apperrors.GetType(err))
	}

	ledger, err := svc.ShowResources(ctx, "ALPHA")
	if err != nil {
		t.Fatalf("show resources: %v", err)
	}
	for _, zone := range domain.Zones {
		if _, ok := ledger[zone]; !ok {
			t.Errorf("zone %q missing from ledger view", zone)
		}
	}
}

func TestInfoAndList(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	create(t, svc, dorfInput("alpha"))
	create(t, svc, dorfInput("beta"))

	if err := svc.AddMember(ctx, staff, "alpha", "user-1"); err != nil {
		t.Fatalf("add member: %v", err)
	}
	if err := svc.AddMember(ctx, staff, "alpha", "user-2"); err != nil {
		t.Fatalf("add member: %v", err)
	}

	snap, err := svc.Info(ctx, " Alpha ")
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	if snap.MemberCount != 2 {
		t.Errorf("member count = %d, want 2", snap.MemberCount)
	}
	if snap.Type != domain.TypeDorf {
		t.Errorf("type = %q, want DORF", snap.Type)
	}

	if _, err := svc.Info(ctx, "ghost"); apperrors.GetType(err) != apperrors.ErrorTypeNotFound {
		t.Errorf("info of missing station error = %v, want not_found", apperrors.GetType(err))
	}

	summaries, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("list has %d entries, want 2", len(summaries))
	}
	if summaries[0].ID != "alpha" || summaries[1].ID != "beta" {
		t.Errorf("list order = [%s %s], want [alpha beta]", summaries[0].ID, summaries[1].ID)
	}
	if summaries[0].MemberCount != 2 {
		t.Errorf("alpha member count = %d, want 2", summaries[0].MemberCount)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	create(t, svc, dorfInput("alpha"))

	if err := svc.Delete(ctx, member, "alpha"); apperrors.GetType(err) != apperrors.ErrorTypeForbidden {
		t.Errorf("non-staff delete error = %v, want forbidden", apperrors.GetType(err))
	}

	if err := svc.Delete(ctx, staff, "alpha"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.Info(ctx, "alpha"); apperrors.GetType(err) != apperrors.ErrorTypeNotFound {
		t.Errorf("info after delete error = %v, want not_found", apperrors.GetType(err))
	}
}
