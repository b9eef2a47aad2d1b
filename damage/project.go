package damage

import (
	"github.com/silinternational/inspection-api/api"
)

// Update is the minimal change that an edit or a reset of one part makes to the persisted sources
type Update struct {
	PartKey api.PartKey

	// set when the legacy body parts map changes
	LegacyPartID api.LegacyPartID
	LegacyStatus api.LegacyStatus

	// set when the tire record changes
	TirePosition api.TirePosition
	TireStatus   api.TireStatus

	// the overlay entry to write; nil removes the entry
	Detail *api.DamageDetail
}

// TouchesBodyParts reports whether the update writes to the legacy body parts map
func (u Update) TouchesBodyParts() bool {
	return u.LegacyPartID != ""
}

// TouchesTires reports whether the update writes to the tire record
func (u Update) TouchesTires() bool {
	return u.TirePosition != ""
}

// ProjectEdit computes the update for an edited canonical record. The overlay entry is always written so that no
// detail is lost; the matching tire position or legacy body part receives the coarse equivalent of the condition.
func ProjectEdit(rec api.PartDamage) Update {
	detail := rec.Detail()
	detail.Condition = NormalizeCondition(detail.Condition)

	u := Update{PartKey: rec.PartKey, Detail: &detail}

	if position, ok := PartKeyToWheelPosition(rec.PartKey); ok {
		u.TirePosition = position
		u.TireStatus = ConditionToTireStatus(detail.Condition)
		return u
	}

	if id, ok := PartKeyToLegacy(rec.PartKey); ok {
		u.LegacyPartID = id
		u.LegacyStatus = ConditionToLegacyStatus(detail.Condition)
	}

	return u
}

// ProjectReset computes the update that deletes the overlay entry of a part and returns its legacy field, if any,
// to the baseline of that field's taxonomy
func ProjectReset(key api.PartKey) Update {
	u := Update{PartKey: key}

	if position, ok := PartKeyToWheelPosition(key); ok {
		u.TirePosition = position
		u.TireStatus = BaselineTireStatus
		return u
	}

	if id, ok := PartKeyToLegacy(key); ok {
		u.LegacyPartID = id
		u.LegacyStatus = BaselineLegacyStatus
	}

	return u
}

// Apply returns a copy of the inspection with the update applied. Parts other than u.PartKey are not changed.
func (u Update) Apply(inspection api.InspectionDamage) api.InspectionDamage {
	out := inspection.Clone()

	if u.TouchesBodyParts() {
		if out.BodyParts == nil {
			out.BodyParts = api.BodyParts{}
		}
		out.BodyParts[u.LegacyPartID] = u.LegacyStatus
	}

	if u.TouchesTires() {
		if out.Mechanical.Tires == nil {
			out.Mechanical.Tires = api.Tires{}
		}
		out.Mechanical.Tires[u.TirePosition] = u.TireStatus
	}

	if u.Detail == nil {
		delete(out.DamageDetails, u.PartKey)
		return out
	}

	if out.DamageDetails == nil {
		out.DamageDetails = api.DamageDetails{}
	}
	out.DamageDetails[u.PartKey] = u.Detail.Clone()

	return out
}

// RemovedPhotos returns the photo references of the overlay entry that the update drops or replaces and that
// are no longer referenced by the part afterwards
func (u Update) RemovedPhotos(before api.InspectionDamage) []string {
	old, ok := before.DamageDetails[u.PartKey]
	if !ok {
		return nil
	}

	kept := map[string]struct{}{}
	if u.Detail != nil {
		for _, p := range u.Detail.Photos {
			kept[p] = struct{}{}
		}
	}

	var removed []string
	for _, p := range old.Photos {
		if _, ok := kept[p]; !ok {
			removed = append(removed, p)
		}
	}
	return removed
}
