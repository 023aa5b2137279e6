package domain

import "strings"

// Zones is the fixed set of resource zones every station carries.
var Zones = []string{"lager", "verarbeitung", "bauhaus", "produktion"}

// Ledger maps zone -> item -> quantity. All four zones are always
// present, quantities never go negative.
type Ledger map[string]map[string]int

// NewLedger returns an empty ledger with all zones present.
func NewLedger() Ledger {
	l := make(Ledger, len(Zones))
	for _, zone := range Zones {
		l[zone] = map[string]int{}
	}
	return l
}

// ValidZone reports whether zone is one of the fixed zones. The zone
// must already be normalized.
func ValidZone(zone string) bool {
	for _, z := range Zones {
		if z == zone {
			return true
		}
	}
	return false
}

// NormalizeZone lowercases and trims a zone name.
func NormalizeZone(zone string) string {
	return strings.ToLower(strings.TrimSpace(zone))
}

// NormalizeItem lowercases and trims an item key so "Wood" and "wood"
// address the same counter.
func NormalizeItem(item string) string {
	return strings.ToLower(strings.TrimSpace(item))
}

// Normalize returns a copy with every fixed zone present and any
// negative quantities floored to zero. Used when loading persisted
// documents that may predate the invariants.
func (l Ledger) Normalize() Ledger {
	out := NewLedger()
	for zone, items := range l {
		if !ValidZone(zone) {
			continue
		}
		for item, qty := range items {
			if qty < 0 {
				qty = 0
			}
			out[zone][item] = qty
		}
	}
	return out
}

// Clone deep-copies the ledger.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for zone, items := range l {
		copied := make(map[string]int, len(items))
		for item, qty := range items {
			copied[item] = qty
		}
		out[zone] = copied
	}
	return out
}

// Quantity returns the current amount of item in zone.
func (l Ledger) Quantity(zone, item string) int {
	return l[zone][item]
}

// Add increases the item counter by amount (floored to >= 0) and
// returns the new quantity. Zone and item must be normalized and the
// zone valid.
func (l Ledger) Add(zone, item string, amount int) int {
	if amount < 0 {
		amount = 0
	}
	if l[zone] == nil {
		l[zone] = map[string]int{}
	}
	l[zone][item] += amount
	return l[zone][item]
}

// Take decreases the item counter by amount (floored to >= 0), never
// below zero, and returns the new quantity.
func (l Ledger) Take(zone, item string, amount int) int {
	if amount < 0 {
		amount = 0
	}
	if l[zone] == nil {
		l[zone] = map[string]int{}
	}
	next := l[zone][item] - amount
	if next < 0 {
		next = 0
	}
	l[zone][item] = next
	return next
}
