package domain

import "strings"

// Side is the allegiance of a faction in the conflict.
type Side string

const (
	SideState       Side = "state"
	SideInvader     Side = "invader"
	SideIndependent Side = "independent"
	SideNeutralTeam Side = "neutral_team"
)

// Faction is a catalogue entry a player can join. The catalogue is
// seeded at startup and only changed by re-seeding.
type Faction struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Side        Side   `json:"side"`
	Playable    bool   `json:"playable"`
	Description string `json:"description"`
}

// DefaultFactions returns the seed catalogue, ordered by key.
func DefaultFactions() []Faction {
	return []Faction{
		{
			Key:         "CMC",
			Name:        "Chernarus Mining Corporation",
			Side:        SideInvader,
			Playable:    true,
			Description: "Invasoren/Corporate. Expansion, Kontrolle, Ressourcen.",
		},
		{
			Key:         "IND",
			Name:        "Unabhängige",
			Side:        SideIndependent,
			Playable:    true,
			Description: "Weder Staat noch CMC. Eigene Agenda, flexibel.",
		},
		{
			Key:         "LDF",
			Name:        "Livonian Defence Forces",
			Side:        SideState,
			Playable:    true,
			Description: "Staat/Verteidiger. Ordnung, Versorgung, Struktur.",
		},
		{
			Key:         "UN",
			Name:        "United Nations",
			Side:        SideNeutralTeam,
			Playable:    false,
			Description: "Team-Fraktion. Neutral, fördert Spawn & IC-Aktionen.",
		},
	}
}

// NormalizeFactionKey uppercases and trims a faction key so "ldf" and
// "LDF " address the same catalogue entry.
func NormalizeFactionKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}
