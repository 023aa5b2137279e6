package domain

import "testing"

func TestNewLedgerHasAllZones(t *testing.T) {
	l := NewLedger()

	if len(l) != len(Zones) {
		t.Fatalf("ledger has %d zones, want %d", len(l), len(Zones))
	}
	for _, zone := range Zones {
		if _, ok := l[zone]; !ok {
			t.Errorf("zone %q missing from new ledger", zone)
		}
	}
}

func TestLedgerAddTakeRoundTrip(t *testing.T) {
	l := NewLedger()

	if got := l.Add("lager", "holz", 5); got != 5 {
		t.Errorf("Add = %d, want 5", got)
	}
	if got := l.Take("lager", "holz", 2); got != 3 {
		t.Errorf("Take = %d, want 3", got)
	}
	if got := l.Quantity("lager", "holz"); got != 3 {
		t.Errorf("Quantity = %d, want 3", got)
	}
}

func TestLedgerTakeFloorsAtZero(t *testing.T) {
	l := NewLedger()
	l.Add("produktion", "stahl", 3)

	if got := l.Take("produktion", "stahl", 10); got != 0 {
		t.Errorf("Take past zero = %d, want 0", got)
	}
	if got := l.Take("produktion", "nie-gesehen", 4); got != 0 {
		t.Errorf("Take of absent item = %d, want 0", got)
	}
}

func TestLedgerNegativeAmountsIgnored(t *testing.T) {
	l := NewLedger()
	l.Add("bauhaus", "ziegel", 7)

	if got := l.Add("bauhaus", "ziegel", -5); got != 7 {
		t.Errorf("Add(-5) = %d, want 7", got)
	}
	if got := l.Take("bauhaus", "ziegel", -5); got != 7 {
		t.Errorf("Take(-5) = %d, want 7", got)
	}
}

func TestLedgerNormalize(t *testing.T) {
	l := Ledger{
		"lager":    {"holz": 4, "nagel": -2},
		"keller":   {"wein": 9},
		"bauhaus":  nil,
		"sonstige": {"x": 1},
	}

	out := l.Normalize()

	if got := out.Quantity("lager", "holz"); got != 4 {
		t.Errorf("kept quantity = %d, want 4", got)
	}
	if got := out.Quantity("lager", "nagel"); got != 0 {
		t.Errorf("negative quantity normalized to %d, want 0", got)
	}
	if _, ok := out["keller"]; ok {
		t.Error("unknown zone survived normalization")
	}
	for _, zone := range Zones {
		if _, ok := out[zone]; !ok {
			t.Errorf("zone %q missing after normalization", zone)
		}
	}
}

func TestNormalizeZoneAndItem(t *testing.T) {
	if got := NormalizeZone(" LAGER "); got != "lager" {
		t.Errorf("NormalizeZone = %q, want %q", got, "lager")
	}
	if got := NormalizeItem(" Holz "); got != "holz" {
		t.Errorf("NormalizeItem = %q, want %q", got, "holz")
	}
	if ValidZone("keller") {
		t.Error("ValidZone accepted unknown zone")
	}
}
