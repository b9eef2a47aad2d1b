package listeners

import (
	"time"

	"github.com/gobuffalo/events"

	"github.com/silinternational/inspection-api/damage"
	"github.com/silinternational/inspection-api/domain"
	"github.com/silinternational/inspection-api/storage"
)

func damageSavedRemovePhotos(e events.Event) {
	if e.Kind != domain.EventApiInspectionDamageSaved {
		return
	}

	defer panicRecover(e.Kind)

	removeOrphanedPhotos(e)
}

func damageResetRemovePhotos(e events.Event) {
	if e.Kind != domain.EventApiInspectionDamageReset {
		return
	}

	defer panicRecover(e.Kind)

	removeOrphanedPhotos(e)
}

func inspectionDeletedRemovePhotos(e events.Event) {
	if e.Kind != domain.EventApiInspectionDeleted {
		return
	}

	defer panicRecover(e.Kind)

	removeOrphanedPhotos(e)
}

// removeOrphanedPhotos deletes the stored photos that an edit, reset or delete dropped from the overlay. Only keys under
// the inspection's own prefix are deleted.
func removeOrphanedPhotos(e events.Event) {
	id, err := getID(e.Payload)
	if err != nil {
		domain.ErrLogger.Printf("Failed to get inspection ID in %s, %s", e.Kind, err)
		return
	}

	var keys []string
	for _, key := range getPhotos(e.Payload) {
		if storage.IsPhotoKey(id, key) {
			keys = append(keys, key)
			continue
		}
		eventLogger(e).Warnf("not removing photo %q, it does not belong to the inspection", key)
	}
	if len(keys) == 0 {
		return
	}

	for i := 1; i <= domain.Env.ListenerMaxRetries; i++ {
		if err = removePhotos(keys); err == nil {
			eventLogger(e).Infof("removed %d photo(s)", len(keys))
			return
		}
		time.Sleep(getDelayDuration(i))
	}

	domain.ErrLogger.Printf("Failed to remove photos %v in %s, %s", keys, e.Kind, err)
}

// damageSavedLogSummary logs the body-condition summary of the inspection after a save
func damageSavedLogSummary(e events.Event) {
	if e.Kind != domain.EventApiInspectionDamageSaved {
		return
	}

	defer panicRecover(e.Kind)

	inspection, err := findInspection(e.Payload, e.Kind)
	if err != nil {
		return
	}

	summary := damage.Summarize(damage.Reconcile(inspection, time.Now().UTC()))
	eventLogger(e).WithField("damaged_parts", summary.DamagedParts).
		Infof("%d of %d parts damaged", len(summary.DamagedParts), summary.TotalParts)
}
