package damage

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/silinternational/inspection-api/api"
)

// Persister stores the full damage triple of an inspection. A failed call must leave the stored record unchanged.
type Persister interface {
	SaveInspectionDamage(ctx context.Context, inspection api.InspectionDamage) error
}

// Session is the edit session of one inspection record. At most one part is open for edit at a time. A Session
// is not safe for concurrent use; separate inspections use separate sessions.
type Session struct {
	inspection api.InspectionDamage
	draft      *api.PartDamage
	now        func() time.Time
}

type SessionOption func(*Session)

// WithClock sets the clock used for reconciliation and edit timestamps
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		s.now = now
	}
}

// NewSession starts an edit session over a copy of the inspection
func NewSession(inspection api.InspectionDamage, options ...SessionOption) *Session {
	s := &Session{
		inspection: inspection.Clone(),
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, o := range options {
		o(s)
	}
	return s
}

// Inspection returns a copy of the inspection as last saved through the session
func (s *Session) Inspection() api.InspectionDamage {
	return s.inspection.Clone()
}

// Canonical reconciles the session's inspection at the current time
func (s *Session) Canonical() api.DamageMap {
	return Reconcile(s.inspection, s.now())
}

// Open starts editing a part, discarding any unsaved draft of another part. The draft starts from the part's
// canonical record, or as not_inspected when no source knows the part.
func (s *Session) Open(key api.PartKey) api.PartDamage {
	rec, ok := ReconcilePart(s.inspection, key, s.now())
	if !ok {
		rec = api.PartDamage{PartKey: key, Condition: api.ConditionNotInspected}
	}
	s.draft = &rec
	return s.Draft()
}

// Draft returns a copy of the open draft
func (s *Session) Draft() api.PartDamage {
	if s.draft == nil {
		return api.PartDamage{}
	}
	return copyRecord(*s.draft)
}

// HasDraft reports whether a part is open for edit
func (s *Session) HasDraft() bool {
	return s.draft != nil
}

// Update changes the open draft. The part-key of the draft cannot be changed.
func (s *Session) Update(change func(rec *api.PartDamage)) error {
	if s.draft == nil {
		return errNoDraft()
	}

	rec := copyRecord(*s.draft)
	change(&rec)
	rec.PartKey = s.draft.PartKey
	s.draft = &rec
	return nil
}

// Cancel drops the open draft without touching the inspection
func (s *Session) Cancel() {
	s.draft = nil
}

// Save projects the draft onto a copy of the inspection and hands the whole result to the persister. Only when
// the persister succeeds does the session adopt the new inspection and close the draft; otherwise nothing
// changes and the draft stays open.
func (s *Session) Save(ctx context.Context, p Persister) (api.PartDamage, error) {
	if s.draft == nil {
		return api.PartDamage{}, errNoDraft()
	}

	rec := copyRecord(*s.draft)
	rec.Condition = NormalizeCondition(rec.Condition)
	rec.UpdatedAt = s.now()

	next := ProjectEdit(rec).Apply(s.inspection)
	if err := p.SaveInspectionDamage(ctx, next); err != nil {
		return api.PartDamage{}, errors.Wrapf(err, "saving damage for part %s", rec.PartKey)
	}

	s.inspection = next
	s.draft = nil
	return rec, nil
}

// Reset deletes the overlay entry of a part and returns its legacy field to baseline, with the same
// all-or-nothing behavior as Save. An open draft for the same part is discarded on success.
func (s *Session) Reset(ctx context.Context, key api.PartKey, p Persister) (Update, error) {
	u := ProjectReset(key)
	next := u.Apply(s.inspection)
	if err := p.SaveInspectionDamage(ctx, next); err != nil {
		return Update{}, errors.Wrapf(err, "resetting damage for part %s", key)
	}

	s.inspection = next
	if s.draft != nil && s.draft.PartKey == key {
		s.draft = nil
	}
	return u, nil
}

func copyRecord(rec api.PartDamage) api.PartDamage {
	d := rec.Detail()
	return api.PartDamage{
		PartKey:   rec.PartKey,
		Condition: d.Condition,
		Severity:  d.Severity,
		Notes:     d.Notes,
		Photos:    d.Photos,
		UpdatedAt: d.UpdatedAt,
	}
}

func errNoDraft() error {
	return api.NewAppError(
		errors.New("no part is open for edit"),
		api.ErrorInspectionNoOpenDraft,
		api.CategoryUser,
	)
}
