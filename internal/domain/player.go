package domain

import "time"

// Player binds an external user identity to at most one faction.
// Players are created on first faction join and updated on re-join,
// never deleted. Name is the last-seen display name.
type Player struct {
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	FactionKey string    `json:"faction_key"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Actor identifies the caller of an engine operation. Staff is a
// capability flag derived outside the engine (guild role, token claim);
// the engine only ever consults the boolean.
type Actor struct {
	UserID string
	Staff  bool
}
