package damage

import (
	"time"

	"github.com/silinternational/inspection-api/api"
)

// resolver produces a canonical record for a part-key from one source, or reports that the source has nothing
// to say about that part
type resolver func(key api.PartKey) (api.PartDamage, bool)

type reconciler struct {
	inspection api.InspectionDamage
	at         time.Time
}

// Reconcile merges the legacy body parts, the tire record and the overlay of an inspection into one canonical
// record per part-key. Records derived from the legacy or tire sources are stamped with at. The result depends
// only on the arguments.
func Reconcile(inspection api.InspectionDamage, at time.Time) api.DamageMap {
	r := reconciler{inspection: inspection, at: at}

	canonical := api.DamageMap{}
	for _, key := range r.partKeys() {
		if rec, ok := r.resolve(key); ok {
			canonical[key] = rec
		}
	}
	return canonical
}

// ReconcilePart reconciles a single part-key, e.g. after an edit. The second result is false when no source
// knows the part.
func ReconcilePart(inspection api.InspectionDamage, key api.PartKey, at time.Time) (api.PartDamage, bool) {
	r := reconciler{inspection: inspection, at: at}
	return r.resolve(key)
}

// resolve applies the precedence rule: overlay, then tire record, then legacy body parts
func (r reconciler) resolve(key api.PartKey) (api.PartDamage, bool) {
	return firstOf(key, r.fromOverlay, r.fromTire, r.fromLegacy)
}

func firstOf(key api.PartKey, sources ...resolver) (api.PartDamage, bool) {
	for _, source := range sources {
		if rec, ok := source(key); ok {
			return rec, true
		}
	}
	return api.PartDamage{}, false
}

// partKeys is the union of the legacy-reachable part-keys, the wheel part-keys and the overlay keys
func (r reconciler) partKeys() []api.PartKey {
	keys := make([]api.PartKey, 0, len(legacyPartKeys)+len(wheelPartKeys)+len(r.inspection.DamageDetails))
	keys = append(keys, legacyPartKeys[1:]...)
	keys = append(keys, wheelPartKeys[1:]...)
	for key := range r.inspection.DamageDetails {
		keys = append(keys, key)
	}
	return keys
}

func (r reconciler) fromOverlay(key api.PartKey) (api.PartDamage, bool) {
	detail, ok := r.inspection.DamageDetails[key]
	if !ok {
		return api.PartDamage{}, false
	}

	detail = detail.Clone()
	return api.PartDamage{
		PartKey:   key,
		Condition: NormalizeCondition(detail.Condition),
		Severity:  detail.Severity,
		Notes:     detail.Notes,
		Photos:    detail.Photos,
		UpdatedAt: detail.UpdatedAt,
	}, true
}

func (r reconciler) fromTire(key api.PartKey) (api.PartDamage, bool) {
	position, ok := PartKeyToWheelPosition(key)
	if !ok {
		return api.PartDamage{}, false
	}

	status := tireStatusOf(r.inspection.Mechanical.Tires, position)
	return api.PartDamage{
		PartKey:   key,
		Condition: TireStatusToCondition(status),
		UpdatedAt: r.at,
	}, true
}

func (r reconciler) fromLegacy(key api.PartKey) (api.PartDamage, bool) {
	id, ok := PartKeyToLegacy(key)
	if !ok {
		return api.PartDamage{}, false
	}

	status := legacyStatusOf(r.inspection.BodyParts, id)
	return api.PartDamage{
		PartKey:   key,
		Condition: LegacyStatusToCondition(status),
		UpdatedAt: r.at,
	}, true
}
