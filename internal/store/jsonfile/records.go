package jsonfile

import (
	"time"

	"stations-server/internal/domain"
)

// On-disk record shapes. The map key carries the primary key, so the
// records themselves do not repeat it. Station membership and the
// resource ledger are embedded fields of the station record.

type factionRecord struct {
	Name        string      `json:"name"`
	Side        domain.Side `json:"side"`
	Playable    bool        `json:"playable"`
	Description string      `json:"description"`
}

type playerRecord struct {
	Name       string    `json:"name"`
	FactionKey string    `json:"faction_key"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type stationRecord struct {
	Name            string             `json:"name"`
	Type            domain.StationType `json:"type"`
	OwnerFaction    string             `json:"owner_faction"`
	Condition       int                `json:"condition"`
	ProtectionHours int                `json:"protection_hours"`
	Resources       domain.Ledger      `json:"resources"`
	Members         []string           `json:"members"`
	CreatedAt       time.Time          `json:"created_at"`
}

func factionFromRecord(key string, rec factionRecord) domain.Faction {
	return domain.Faction{
		Key:         key,
		Name:        rec.Name,
		Side:        rec.Side,
		Playable:    rec.Playable,
		Description: rec.Description,
	}
}

func recordFromFaction(f domain.Faction) factionRecord {
	return factionRecord{
		Name:        f.Name,
		Side:        f.Side,
		Playable:    f.Playable,
		Description: f.Description,
	}
}

func playerFromRecord(userID string, rec playerRecord) domain.Player {
	return domain.Player{
		UserID:     userID,
		Name:       rec.Name,
		FactionKey: rec.FactionKey,
		UpdatedAt:  rec.UpdatedAt,
	}
}

func stationFromRecord(id string, rec stationRecord) domain.Station {
	return domain.Station{
		ID:              id,
		Name:            rec.Name,
		Type:            rec.Type,
		OwnerFaction:    rec.OwnerFaction,
		Condition:       rec.Condition,
		ProtectionHours: rec.ProtectionHours,
		Resources:       rec.Resources.Normalize(),
		CreatedAt:       rec.CreatedAt,
	}
}

func recordFromStation(st domain.Station, members []string) stationRecord {
	return stationRecord{
		Name:            st.Name,
		Type:            st.Type,
		OwnerFaction:    st.OwnerFaction,
		Condition:       st.Condition,
		ProtectionHours: st.ProtectionHours,
		Resources:       st.Resources.Normalize(),
		Members:         members,
		CreatedAt:       st.CreatedAt,
	}
}
