package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Location is where a monsters row lives: incubator_N, slot_N, field or sanctuary_N
type Location string

// LocationKind is the prefix part of a Location
type LocationKind string

const (
	LocationKindIncubator LocationKind = "incubator"
	LocationKindSlot      LocationKind = "slot"
	LocationKindField     LocationKind = "field"
	LocationKindSanctuary LocationKind = "sanctuary"

	LocationField Location = "field"
)

// IncubatorLocation returns incubator_i
func IncubatorLocation(i int) Location {
	return Location(fmt.Sprintf("%s_%d", LocationKindIncubator, i))
}

// SlotLocation returns slot_i
func SlotLocation(i int) Location {
	return Location(fmt.Sprintf("%s_%d", LocationKindSlot, i))
}

// SanctuaryLocation returns sanctuary_i
func SanctuaryLocation(i int) Location {
	return Location(fmt.Sprintf("%s_%d", LocationKindSanctuary, i))
}

// Parse splits a location into its kind and index.
// The field has index 0. Unknown or out-of-range locations return ok=false.
func (l Location) Parse() (kind LocationKind, index int, ok bool) {
	if l == LocationField {
		return LocationKindField, 0, true
	}
	prefix, idx, found := strings.Cut(string(l), "_")
	if !found {
		return "", 0, false
	}
	n, err := strconv.Atoi(idx)
	if err != nil || n < 0 {
		return "", 0, false
	}

	kind = LocationKind(prefix)
	switch kind {
	case LocationKindIncubator:
		ok = n < IncubatorCount
	case LocationKindSlot:
		ok = n < InventorySlotCount
	case LocationKindSanctuary:
		ok = n < SanctuarySlotCount
	}
	return kind, n, ok
}
