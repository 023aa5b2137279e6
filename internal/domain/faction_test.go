package domain

import "testing"

func TestDefaultFactions(t *testing.T) {
	factions := DefaultFactions()

	if len(factions) != 4 {
		t.Fatalf("catalogue has %d entries, want 4", len(factions))
	}

	for i := 1; i < len(factions); i++ {
		if factions[i-1].Key >= factions[i].Key {
			t.Errorf("catalogue not ordered by key: %q before %q", factions[i-1].Key, factions[i].Key)
		}
	}

	playable := map[string]bool{}
	for _, f := range factions {
		playable[f.Key] = f.Playable
	}

	for _, key := range []string{"LDF", "CMC", "IND"} {
		if !playable[key] {
			t.Errorf("faction %s should be playable", key)
		}
	}
	if playable["UN"] {
		t.Error("faction UN should not be playable")
	}
}

func TestNormalizeFactionKey(t *testing.T) {
	if got := NormalizeFactionKey(" ldf "); got != "LDF" {
		t.Errorf("NormalizeFactionKey = %q, want %q", got, "LDF")
	}
}
