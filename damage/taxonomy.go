// Package damage reconciles the three damage sources of an inspection (legacy body-part statuses, the tire
// record, and the part-key overlay) into one canonical record per part, and projects edits back into the legacy
// storage shape. Everything here is a pure, synchronous transformation over in-memory values.
package damage

import (
	"strings"

	"github.com/silinternational/inspection-api/api"
)

type legacyPart uint8

const (
	legacyPartUnknown legacyPart = iota

	legacyFrontBumper
	legacyRearBumper
	legacyHood
	legacyRoof
	legacyTrunk
	legacyFrontLeftDoor
	legacyFrontRightDoor
	legacyRearLeftDoor
	legacyRearRightDoor
	legacyLeftFender
	legacyRightFender
	legacyLeftQuarterPanel
	legacyRightQuarterPanel

	legacyPartCount
)

var legacyPartIDs = [...]api.LegacyPartID{
	legacyFrontBumper:       api.LegacyPartFrontBumper,
	legacyRearBumper:        api.LegacyPartRearBumper,
	legacyHood:              api.LegacyPartHood,
	legacyRoof:              api.LegacyPartRoof,
	legacyTrunk:             api.LegacyPartTrunk,
	legacyFrontLeftDoor:     api.LegacyPartFrontLeftDoor,
	legacyFrontRightDoor:    api.LegacyPartFrontRightDoor,
	legacyRearLeftDoor:      api.LegacyPartRearLeftDoor,
	legacyRearRightDoor:     api.LegacyPartRearRightDoor,
	legacyLeftFender:        api.LegacyPartLeftFender,
	legacyRightFender:       api.LegacyPartRightFender,
	legacyLeftQuarterPanel:  api.LegacyPartLeftQuarterPanel,
	legacyRightQuarterPanel: api.LegacyPartRightQuarterPanel,
}

var legacyPartKeys = [...]api.PartKey{
	legacyFrontBumper:       api.PartKeyFrontBumper,
	legacyRearBumper:        api.PartKeyRearBumper,
	legacyHood:              api.PartKeyHood,
	legacyRoof:              api.PartKeyRoof,
	legacyTrunk:             api.PartKeyTrunk,
	legacyFrontLeftDoor:     api.PartKeyDoorFrontLeft,
	legacyFrontRightDoor:    api.PartKeyDoorFrontRight,
	legacyRearLeftDoor:      api.PartKeyDoorRearLeft,
	legacyRearRightDoor:     api.PartKeyDoorRearRight,
	legacyLeftFender:        api.PartKeyFenderFrontLeft,
	legacyRightFender:       api.PartKeyFenderFrontRight,
	legacyLeftQuarterPanel:  api.PartKeyQuarterPanelRearLeft,
	legacyRightQuarterPanel: api.PartKeyQuarterPanelRearRight,
}

type wheelPosition uint8

const (
	wheelPositionUnknown wheelPosition = iota

	wheelFrontLeft
	wheelFrontRight
	wheelRearLeft
	wheelRearRight

	wheelPositionCount
)

// The spare has no part-key and is not in these tables.
var wheelTirePositions = [...]api.TirePosition{
	wheelFrontLeft:  api.TirePositionFrontLeft,
	wheelFrontRight: api.TirePositionFrontRight,
	wheelRearLeft:   api.TirePositionRearLeft,
	wheelRearRight:  api.TirePositionRearRight,
}

var wheelPartKeys = [...]api.PartKey{
	wheelFrontLeft:  api.PartKeyWheelFrontLeft,
	wheelFrontRight: api.PartKeyWheelFrontRight,
	wheelRearLeft:   api.PartKeyWheelRearLeft,
	wheelRearRight:  api.PartKeyWheelRearRight,
}

// Adding a legacy part or wheel position without extending every table above fails to compile here.
var (
	_ = [1]struct{}{}[len(legacyPartIDs)-int(legacyPartCount)]
	_ = [1]struct{}{}[len(legacyPartKeys)-int(legacyPartCount)]
	_ = [1]struct{}{}[len(wheelTirePositions)-int(wheelPositionCount)]
	_ = [1]struct{}{}[len(wheelPartKeys)-int(wheelPositionCount)]
)

type catalogEntry struct {
	key      api.PartKey
	category api.PartCategory
	view     api.DiagramView
}

// catalog lists every known part-key in display order
var catalog = []catalogEntry{
	{api.PartKeyFrontBumper, api.PartCategoryPanel, api.DiagramViewFront},
	{api.PartKeyHood, api.PartCategoryPanel, api.DiagramViewTop},
	{api.PartKeyRoof, api.PartCategoryPanel, api.DiagramViewTop},
	{api.PartKeyTrunk, api.PartCategoryPanel, api.DiagramViewTop},
	{api.PartKeyRearBumper, api.PartCategoryPanel, api.DiagramViewRear},
	{api.PartKeyFenderFrontLeft, api.PartCategoryPanel, api.DiagramViewLeft},
	{api.PartKeyDoorFrontLeft, api.PartCategoryPanel, api.DiagramViewLeft},
	{api.PartKeyDoorRearLeft, api.PartCategoryPanel, api.DiagramViewLeft},
	{api.PartKeyQuarterPanelRearLeft, api.PartCategoryPanel, api.DiagramViewLeft},
	{api.PartKeyFenderFrontRight, api.PartCategoryPanel, api.DiagramViewRight},
	{api.PartKeyDoorFrontRight, api.PartCategoryPanel, api.DiagramViewRight},
	{api.PartKeyDoorRearRight, api.PartCategoryPanel, api.DiagramViewRight},
	{api.PartKeyQuarterPanelRearRight, api.PartCategoryPanel, api.DiagramViewRight},

	{api.PartKeyWheelFrontLeft, api.PartCategoryWheel, api.DiagramViewLeft},
	{api.PartKeyWheelRearLeft, api.PartCategoryWheel, api.DiagramViewLeft},
	{api.PartKeyWheelFrontRight, api.PartCategoryWheel, api.DiagramViewRight},
	{api.PartKeyWheelRearRight, api.PartCategoryWheel, api.DiagramViewRight},

	{api.PartKeyHeadlightLeft, api.PartCategoryLight, api.DiagramViewFront},
	{api.PartKeyHeadlightRight, api.PartCategoryLight, api.DiagramViewFront},
	{api.PartKeyTaillightLeft, api.PartCategoryLight, api.DiagramViewRear},
	{api.PartKeyTaillightRight, api.PartCategoryLight, api.DiagramViewRear},

	{api.PartKeyWindshieldFront, api.PartCategoryGlass, api.DiagramViewFront},
	{api.PartKeyWindshieldRear, api.PartCategoryGlass, api.DiagramViewRear},
	{api.PartKeyWindowFrontLeft, api.PartCategoryGlass, api.DiagramViewLeft},
	{api.PartKeyWindowRearLeft, api.PartCategoryGlass, api.DiagramViewLeft},
	{api.PartKeyWindowFrontRight, api.PartCategoryGlass, api.DiagramViewRight},
	{api.PartKeyWindowRearRight, api.PartCategoryGlass, api.DiagramViewRight},

	{api.PartKeyMirrorLeft, api.PartCategoryMirror, api.DiagramViewLeft},
	{api.PartKeyMirrorRight, api.PartCategoryMirror, api.DiagramViewRight},
}

var (
	legacyPartsByID      = reverseIndex[api.LegacyPartID, legacyPart](legacyPartIDs[:])
	legacyPartsByKey     = reverseIndex[api.PartKey, legacyPart](legacyPartKeys[:])
	wheelsByTirePosition = reverseIndex[api.TirePosition, wheelPosition](wheelTirePositions[:])
	wheelsByPartKey      = reverseIndex[api.PartKey, wheelPosition](wheelPartKeys[:])
	catalogEntriesByKey  = indexCatalog(catalog)
)

// reverseIndex maps each table value back to its ordinal, skipping the reserved unknown slot
func reverseIndex[V comparable, E ~uint8](table []V) map[V]E {
	index := make(map[V]E, len(table))
	for i, v := range table {
		if i == 0 {
			continue
		}
		index[v] = E(i)
	}
	return index
}

func indexCatalog(entries []catalogEntry) map[api.PartKey]catalogEntry {
	index := make(map[api.PartKey]catalogEntry, len(entries))
	for _, e := range entries {
		index[e.key] = e
	}
	return index
}

// LegacyPartIDs returns the fixed legacy body-part set in canonical order
func LegacyPartIDs() []api.LegacyPartID {
	return append([]api.LegacyPartID{}, legacyPartIDs[1:]...)
}

// WheelPositions returns the four primary wheel positions. The spare is not included.
func WheelPositions() []api.TirePosition {
	return append([]api.TirePosition{}, wheelTirePositions[1:]...)
}

// Catalog returns every known part-key in display order
func Catalog() []api.PartKey {
	keys := make([]api.PartKey, len(catalog))
	for i, e := range catalog {
		keys[i] = e.key
	}
	return keys
}

// IsLegacyPartID reports whether id belongs to the fixed legacy body-part set
func IsLegacyPartID(id api.LegacyPartID) bool {
	_, ok := legacyPartsByID[id]
	return ok
}

// IsCatalogPart reports whether key is a known part-key
func IsCatalogPart(key api.PartKey) bool {
	_, ok := catalogEntriesByKey[key]
	return ok
}

// LegacyToPartKey returns the part-key for a legacy id. Unrecognized ids pass through unchanged.
func LegacyToPartKey(id api.LegacyPartID) api.PartKey {
	if lp, ok := legacyPartsByID[id]; ok {
		return legacyPartKeys[lp]
	}
	return api.PartKey(id)
}

// PartKeyToLegacy returns the legacy id for a part-key, if the part existed in the legacy taxonomy
func PartKeyToLegacy(key api.PartKey) (api.LegacyPartID, bool) {
	lp, ok := legacyPartsByKey[key]
	if !ok {
		return "", false
	}
	return legacyPartIDs[lp], true
}

// IsWheelPart reports whether the part-key follows the wheel/tire naming convention
func IsWheelPart(key api.PartKey) bool {
	k := string(key)
	return strings.HasPrefix(k, api.WheelPartKeyPrefix) || strings.HasPrefix(k, "tire_")
}

// WheelPositionToPartKey returns the wheel part-key for a primary wheel position. The spare has no part-key.
func WheelPositionToPartKey(position api.TirePosition) (api.PartKey, bool) {
	w, ok := wheelsByTirePosition[position]
	if !ok {
		return "", false
	}
	return wheelPartKeys[w], true
}

// PartKeyToWheelPosition returns the tire position that a wheel part-key stands for
func PartKeyToWheelPosition(key api.PartKey) (api.TirePosition, bool) {
	w, ok := wheelsByPartKey[key]
	if !ok {
		return "", false
	}
	return wheelTirePositions[w], true
}

// CategoryOf returns the catalog category of a part-key, or PartCategoryOther for keys outside the catalog
func CategoryOf(key api.PartKey) api.PartCategory {
	if e, ok := catalogEntriesByKey[key]; ok {
		return e.category
	}
	return api.PartCategoryOther
}

// ViewOf returns the diagram view on which a catalog part is drawn
func ViewOf(key api.PartKey) (api.DiagramView, bool) {
	e, ok := catalogEntriesByKey[key]
	return e.view, ok
}
