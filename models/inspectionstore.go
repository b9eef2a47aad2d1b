package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/gobuffalo/events"
	"github.com/gobuffalo/pop/v6"
	"github.com/gofrs/uuid"

	"github.com/silinternational/inspection-api/api"
	"github.com/silinternational/inspection-api/damage"
	"github.com/silinternational/inspection-api/domain"
	"github.com/silinternational/inspection-api/log"
)

// InspectionStore persists the damage triple of inspections. It satisfies damage.Persister. When the context
// carries a transaction (see WithTx) the store works inside it; otherwise every save runs in its own transaction.
type InspectionStore struct{}

var _ damage.Persister = InspectionStore{}

// SaveInspectionDamage replaces the stored body parts, tire record and overlay of the inspection in one
// transaction. The inspection is created if it does not exist yet.
func (s InspectionStore) SaveInspectionDamage(ctx context.Context, inspection api.InspectionDamage) error {
	if inspection.ID == uuid.Nil {
		err := errors.New("inspection has no ID")
		return api.NewAppError(err, api.ErrorInspectionInvalidInput, api.CategoryUser)
	}

	if tx, ok := ctx.Value(domain.ContextKeyTx).(*pop.Connection); ok {
		return saveInspectionDamage(tx.WithContext(ctx), inspection)
	}

	return DB.WithContext(ctx).Transaction(func(tx *pop.Connection) error {
		return saveInspectionDamage(tx, inspection)
	})
}

func saveInspectionDamage(tx *pop.Connection, inspection api.InspectionDamage) error {
	i := NewInspection(inspection)

	exists, err := tx.Where("id = ?", i.ID).Exists(&Inspection{})
	if err != nil {
		return appErrorFromDB(err, api.ErrorQueryFailure)
	}

	if exists {
		err = i.Update(tx)
	} else {
		err = i.Create(tx)
	}
	if err != nil {
		return err
	}

	for _, table := range []string{"inspection_body_parts", "inspection_damage_details"} {
		q := fmt.Sprintf("DELETE FROM %s WHERE inspection_id = ?", table)
		if err := tx.RawQuery(q, i.ID).Exec(); err != nil {
			return appErrorFromDB(err, api.ErrorDestroyFailure)
		}
	}

	for n := range i.BodyParts {
		if err := i.BodyParts[n].Create(tx); err != nil {
			return err
		}
	}
	for n := range i.DamageDetails {
		if err := i.DamageDetails[n].Create(tx); err != nil {
			return err
		}
	}

	return nil
}

// LoadInspectionDamage reads an inspection and its child rows
func (s InspectionStore) LoadInspectionDamage(ctx context.Context, id uuid.UUID) (api.InspectionDamage, error) {
	tx := Tx(ctx).WithContext(ctx)

	var i Inspection
	if err := i.FindByID(tx, id); err != nil {
		var appErr *api.AppError
		if errors.As(err, &appErr) && appErr.Key == api.ErrorNoRows {
			appErr.Key = api.ErrorInspectionNotFound
		}
		return api.InspectionDamage{}, err
	}
	i.LoadChildren(tx)

	return i.ConvertToAPI(), nil
}

// CreateInspection stores a fresh inspection with every source at its baseline
func (s InspectionStore) CreateInspection(ctx context.Context, bodyType api.BodyType) (api.InspectionDamage, error) {
	inspection := damage.NewInspectionDamage(bodyType)
	inspection.ID = domain.GetUUID()

	if err := s.SaveInspectionDamage(ctx, inspection); err != nil {
		return api.InspectionDamage{}, err
	}
	return inspection, nil
}

// SavePart saves the part open in the session and announces the change, including any photo references that the
// edit dropped
func (s InspectionStore) SavePart(ctx context.Context, session *damage.Session) (api.PartDamage, error) {
	before := session.Inspection()

	rec, err := session.Save(ctx, s)
	if err != nil {
		return api.PartDamage{}, err
	}

	removed := damage.ProjectEdit(rec).RemovedPhotos(before)
	domain.Logger.WithFields(map[string]any{
		log.FieldInspectionID: before.ID,
		log.FieldPartKey:      rec.PartKey,
	}).Infof("saved %s as %s", rec.PartKey, rec.Condition)

	emitEvent(events.Event{
		Kind:    domain.EventApiInspectionDamageSaved,
		Message: fmt.Sprintf("damage saved for %s", rec.PartKey),
		Payload: events.Payload{
			domain.EventPayloadID:      before.ID,
			domain.EventPayloadPartKey: rec.PartKey,
			domain.EventPayloadPhotos:  removed,
		},
	})
	return rec, nil
}

// ResetPart resets one part through the session and announces the removed photo references
func (s InspectionStore) ResetPart(ctx context.Context, session *damage.Session, key api.PartKey) error {
	before := session.Inspection()

	u, err := session.Reset(ctx, key, s)
	if err != nil {
		return err
	}

	domain.Logger.WithFields(map[string]any{
		log.FieldInspectionID: before.ID,
		log.FieldPartKey:      key,
	}).Info("reset part")

	emitEvent(events.Event{
		Kind:    domain.EventApiInspectionDamageReset,
		Message: fmt.Sprintf("damage reset for %s", key),
		Payload: events.Payload{
			domain.EventPayloadID:      before.ID,
			domain.EventPayloadPartKey: key,
			domain.EventPayloadPhotos:  u.RemovedPhotos(before),
		},
	})
	return nil
}

// DeleteInspection removes an inspection with its child rows and announces every photo reference it held
func (s InspectionStore) DeleteInspection(ctx context.Context, id uuid.UUID) error {
	inspection, err := s.LoadInspectionDamage(ctx, id)
	if err != nil {
		return err
	}

	i := Inspection{ID: id}
	if err := i.Destroy(Tx(ctx).WithContext(ctx)); err != nil {
		return err
	}

	var photos []string
	for _, detail := range inspection.DamageDetails {
		photos = append(photos, detail.Photos...)
	}

	domain.Logger.WithField(log.FieldInspectionID, id).Info("deleted inspection")

	emitEvent(events.Event{
		Kind:    domain.EventApiInspectionDeleted,
		Message: fmt.Sprintf("inspection %s deleted", id),
		Payload: events.Payload{
			domain.EventPayloadID:     id,
			domain.EventPayloadPhotos: photos,
		},
	})
	return nil
}
