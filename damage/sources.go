package damage

import (
	"github.com/silinternational/inspection-api/api"
)

// legacyStatusOf is the single place where a missing legacy entry takes its baseline value
func legacyStatusOf(parts api.BodyParts, id api.LegacyPartID) api.LegacyStatus {
	if s, ok := parts[id]; ok && s != "" {
		return s
	}
	return BaselineLegacyStatus
}

// tireStatusOf is the single place where a missing tire entry takes its baseline value
func tireStatusOf(tires api.Tires, position api.TirePosition) api.TireStatus {
	if s, ok := tires[position]; ok && s != "" {
		return s
	}
	return BaselineTireStatus
}

// Normalize returns a copy of the inspection in which every legacy id and every primary wheel position is
// present, missing ones taking the baseline value. Unrecognized legacy ids and tire positions, including the
// spare, are kept as they are.
func Normalize(inspection api.InspectionDamage) api.InspectionDamage {
	n := inspection.Clone()

	if n.BodyParts == nil {
		n.BodyParts = api.BodyParts{}
	}
	for _, id := range legacyPartIDs[1:] {
		n.BodyParts[id] = legacyStatusOf(n.BodyParts, id)
	}

	if n.Mechanical.Tires == nil {
		n.Mechanical.Tires = api.Tires{}
	}
	for _, position := range wheelTirePositions[1:] {
		n.Mechanical.Tires[position] = tireStatusOf(n.Mechanical.Tires, position)
	}

	if n.DamageDetails == nil {
		n.DamageDetails = api.DamageDetails{}
	}

	return n
}

// NewInspectionDamage returns a fresh inspection with every source at its baseline and an empty overlay
func NewInspectionDamage(bodyType api.BodyType) api.InspectionDamage {
	return Normalize(api.InspectionDamage{BodyType: bodyType})
}
