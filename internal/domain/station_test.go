package domain

import "testing"

func TestStationTypeMinMembers(t *testing.T) {
	tests := []struct {
		typ  StationType
		want int
	}{
		{TypeCamp, 1},
		{TypeDorf, 4},
		{TypeSiedlung, 10},
		{TypeAussenposten, 5},
		{TypeStrategisch, 5},
	}

	for _, tt := range tests {
		if !tt.typ.Valid() {
			t.Errorf("%s.Valid() = false, want true", tt.typ)
		}
		if got := tt.typ.MinMembers(); got != tt.want {
			t.Errorf("%s.MinMembers() = %d, want %d", tt.typ, got, tt.want)
		}
	}

	if StationType("FESTUNG").Valid() {
		t.Error("unknown type reported valid")
	}
}

func TestNormalizeStationType(t *testing.T) {
	if got := NormalizeStationType("  siedlung "); got != TypeSiedlung {
		t.Errorf("NormalizeStationType = %q, want %q", got, TypeSiedlung)
	}
}

func TestNormalizeStationID(t *testing.T) {
	if got := NormalizeStationID(" Alpha-Base "); got != "alpha-base" {
		t.Errorf("NormalizeStationID = %q, want %q", got, "alpha-base")
	}
}

func TestClampCondition(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-10, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{150, 100},
	}

	for _, tt := range tests {
		if got := ClampCondition(tt.in); got != tt.want {
			t.Errorf("ClampCondition(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampProtection(t *testing.T) {
	if got := ClampProtection(-3); got != 0 {
		t.Errorf("ClampProtection(-3) = %d, want 0", got)
	}
	if got := ClampProtection(72); got != 72 {
		t.Errorf("ClampProtection(72) = %d, want 72", got)
	}
}

func TestDefaultProtection(t *testing.T) {
	if got := DefaultProtection(TypeStrategisch); got != StrategicProtectionHours {
		t.Errorf("DefaultProtection(STRATEGISCH) = %d, want %d", got, StrategicProtectionHours)
	}
	if got := DefaultProtection(TypeCamp); got != 0 {
		t.Errorf("DefaultProtection(CAMP) = %d, want 0", got)
	}
}
