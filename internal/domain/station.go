package domain

import (
	"strings"
	"time"
)

// StationType classifies a station. Each type carries a minimum member
// threshold that is checked only at creation and type-change time.
type StationType string

const (
	TypeCamp         StationType = "CAMP"
	TypeDorf         StationType = "DORF"
	TypeSiedlung     StationType = "SIEDLUNG"
	TypeAussenposten StationType = "AUSSENPOSTEN"
	TypeStrategisch  StationType = "STRATEGISCH"
)

// StationTypes lists the known types in display order.
var StationTypes = []StationType{
	TypeCamp,
	TypeDorf,
	TypeSiedlung,
	TypeAussenposten,
	TypeStrategisch,
}

var minMembers = map[StationType]int{
	TypeCamp:         1,
	TypeDorf:         4,
	TypeSiedlung:     10,
	TypeAussenposten: 5,
	TypeStrategisch:  5,
}

func (t StationType) Valid() bool {
	_, ok := minMembers[t]
	return ok
}

// MinMembers returns the member threshold required to establish a
// station of this type.
func (t StationType) MinMembers() int {
	return minMembers[t]
}

const (
	// DefaultCondition is the condition of a freshly created station.
	DefaultCondition = 100

	// StrategicProtectionHours is granted when a station becomes
	// STRATEGISCH and carries no protection yet.
	StrategicProtectionHours = 48
)

// Station is a player-established base owned by a faction.
type Station struct {
	ID              string      `json:"station_id"`
	Name            string      `json:"name"`
	Type            StationType `json:"type"`
	OwnerFaction    string      `json:"owner_faction"`
	Condition       int         `json:"condition"`
	ProtectionHours int         `json:"protection_hours"`
	Resources       Ledger      `json:"resources"`
	CreatedAt       time.Time   `json:"created_at"`
}

// StationSummary is the listing projection: identity plus the live
// roster count.
type StationSummary struct {
	ID           string      `json:"station_id"`
	Name         string      `json:"name"`
	Type         StationType `json:"type"`
	OwnerFaction string      `json:"owner_faction"`
	MemberCount  int         `json:"member_count"`
}

// NormalizeStationID lowercases and trims a station id so lookups are
// case-insensitive.
func NormalizeStationID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// NormalizeStationType uppercases and trims a type name before
// validation.
func NormalizeStationType(t string) StationType {
	return StationType(strings.ToUpper(strings.TrimSpace(t)))
}

// ClampCondition bounds a condition value to [0, 100].
func ClampCondition(v int) int {
	if v < 0 {
		return 0
	}
	if v > DefaultCondition {
		return DefaultCondition
	}
	return v
}

// ClampProtection bounds protection hours to >= 0.
func ClampProtection(hours int) int {
	if hours < 0 {
		return 0
	}
	return hours
}

// DefaultProtection returns the protection a new station of the given
// type starts with.
func DefaultProtection(t StationType) int {
	if t == TypeStrategisch {
		return StrategicProtectionHours
	}
	return 0
}
