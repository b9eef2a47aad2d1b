package models

import (
	"encoding/json"
	"time"

	"github.com/gobuffalo/nulls"
	"github.com/gobuffalo/pop/v6"
	"github.com/gobuffalo/pop/v6/slices"
	"github.com/gobuffalo/validate/v3"
	"github.com/gofrs/uuid"

	"github.com/silinternational/inspection-api/api"
)

type Inspections []Inspection

// Inspection is the damage portion of an inspection record. The tire record is kept in one column per wheel
// position; the legacy body parts and the overlay are kept in child tables.
type Inspection struct {
	ID             uuid.UUID      `db:"id"`
	BodyType       api.BodyType   `db:"body_type" validate:"max=255,pgtext"`
	TireFrontLeft  api.TireStatus `db:"tire_front_left" validate:"max=255,pgtext"`
	TireFrontRight api.TireStatus `db:"tire_front_right" validate:"max=255,pgtext"`
	TireRearLeft   api.TireStatus `db:"tire_rear_left" validate:"max=255,pgtext"`
	TireRearRight  api.TireStatus `db:"tire_rear_right" validate:"max=255,pgtext"`
	TireSpare      nulls.String   `db:"tire_spare" validate:"omitempty,max=255,pgtext"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`

	BodyParts     InspectionBodyParts     `has_many:"inspection_body_parts" fk_id:"inspection_id" order_by:"legacy_id asc" validate:"-"`
	DamageDetails InspectionDamageDetails `has_many:"inspection_damage_details" fk_id:"inspection_id" order_by:"part_key asc" validate:"-"`
}

type InspectionBodyParts []InspectionBodyPart

// InspectionBodyPart is one entry of the legacy body parts map
type InspectionBodyPart struct {
	ID           uuid.UUID        `db:"id"`
	InspectionID uuid.UUID        `db:"inspection_id" validate:"required"`
	LegacyID     api.LegacyPartID `db:"legacy_id" validate:"required,max=255,pgtext"`
	Status       api.LegacyStatus `db:"status" validate:"max=255,pgtext"`
	CreatedAt    time.Time        `db:"created_at"`
	UpdatedAt    time.Time        `db:"updated_at"`
}

type InspectionDamageDetails []InspectionDamageDetail

// InspectionDamageDetail is one overlay entry. Conditions, severities and part-keys are stored as given; the
// reconciliation resolves values it does not know.
type InspectionDamageDetail struct {
	ID              uuid.UUID     `db:"id"`
	InspectionID    uuid.UUID     `db:"inspection_id" validate:"required"`
	PartKey         api.PartKey   `db:"part_key" validate:"required,max=255,pgtext"`
	Condition       api.Condition `db:"condition" validate:"max=255,pgtext"`
	Severity        nulls.String  `db:"severity" validate:"omitempty,max=255,pgtext"`
	Notes           nulls.String  `db:"notes" validate:"omitempty,pgtext"`
	Photos          slices.String `db:"photos" validate:"dive,pgtext"`
	DetailUpdatedAt time.Time     `db:"detail_updated_at"`
	CreatedAt       time.Time     `db:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at"`
}

// String can be helpful for serializing the model
func (i Inspection) String() string {
	ji, _ := json.Marshal(i)
	return string(ji)
}

// Validate gets run every time you call a "pop.Validate*" (pop.ValidateAndSave, pop.ValidateAndCreate, pop.ValidateAndUpdate) method.
func (i *Inspection) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(i), nil
}

// Create stores the Inspection data as a new record in the database.
func (i *Inspection) Create(tx *pop.Connection) error {
	return create(tx, i)
}

// Update writes the Inspection data to an existing database record.
func (i *Inspection) Update(tx *pop.Connection) error {
	return update(tx, i)
}

// Destroy removes the Inspection record; its child rows go with it
func (i *Inspection) Destroy(tx *pop.Connection) error {
	return destroy(tx, i)
}

func (i *Inspection) FindByID(tx *pop.Connection, id uuid.UUID) error {
	return find(tx, i, id)
}

// LoadChildren loads the body parts and the overlay entries
func (i *Inspection) LoadChildren(tx *pop.Connection) {
	if err := tx.Load(i, "BodyParts", "DamageDetails"); err != nil {
		panic("database error loading Inspection children, " + err.Error())
	}
}

// All loads every inspection, oldest first
func (i *Inspections) All(tx *pop.Connection) error {
	return appErrorFromDB(tx.Order("created_at asc").All(i), api.ErrorQueryFailure)
}

func (p *InspectionBodyPart) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(p), nil
}

func (p *InspectionBodyPart) Create(tx *pop.Connection) error {
	return create(tx, p)
}

func (d *InspectionDamageDetail) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(d), nil
}

func (d *InspectionDamageDetail) Create(tx *pop.Connection) error {
	return create(tx, d)
}

// NewInspection converts an api.InspectionDamage to its database rows. Tire positions other than the five wheel
// columns are not kept.
func NewInspection(in api.InspectionDamage) Inspection {
	i := Inspection{
		ID:             in.ID,
		BodyType:       in.BodyType,
		TireFrontLeft:  in.Mechanical.Tires[api.TirePositionFrontLeft],
		TireFrontRight: in.Mechanical.Tires[api.TirePositionFrontRight],
		TireRearLeft:   in.Mechanical.Tires[api.TirePositionRearLeft],
		TireRearRight:  in.Mechanical.Tires[api.TirePositionRearRight],
	}
	if spare, ok := in.Mechanical.Tires[api.TirePositionSpare]; ok {
		i.TireSpare = nulls.NewString(string(spare))
	}

	for id, status := range in.BodyParts {
		i.BodyParts = append(i.BodyParts, InspectionBodyPart{
			InspectionID: in.ID,
			LegacyID:     id,
			Status:       status,
		})
	}

	for key, detail := range in.DamageDetails {
		row := InspectionDamageDetail{
			InspectionID:    in.ID,
			PartKey:         key,
			Condition:       detail.Condition,
			Photos:          slices.String(append([]string{}, detail.Photos...)),
			DetailUpdatedAt: detail.UpdatedAt,
		}
		if detail.Severity != nil {
			row.Severity = nulls.NewString(string(*detail.Severity))
		}
		if detail.Notes != nil {
			row.Notes = nulls.NewString(*detail.Notes)
		}
		i.DamageDetails = append(i.DamageDetails, row)
	}

	return i
}

// ConvertToAPI converts an Inspection and its loaded child rows to an api.InspectionDamage
func (i *Inspection) ConvertToAPI() api.InspectionDamage {
	out := api.InspectionDamage{
		ID:            i.ID,
		BodyType:      i.BodyType,
		BodyParts:     api.BodyParts{},
		Mechanical:    api.Mechanical{Tires: api.Tires{}},
		DamageDetails: api.DamageDetails{},
	}

	tires := map[api.TirePosition]api.TireStatus{
		api.TirePositionFrontLeft:  i.TireFrontLeft,
		api.TirePositionFrontRight: i.TireFrontRight,
		api.TirePositionRearLeft:   i.TireRearLeft,
		api.TirePositionRearRight:  i.TireRearRight,
	}
	for position, status := range tires {
		if status != "" {
			out.Mechanical.Tires[position] = status
		}
	}
	if i.TireSpare.Valid {
		out.Mechanical.Tires[api.TirePositionSpare] = api.TireStatus(i.TireSpare.String)
	}

	for _, p := range i.BodyParts {
		out.BodyParts[p.LegacyID] = p.Status
	}

	for _, d := range i.DamageDetails {
		detail := api.DamageDetail{
			Condition: d.Condition,
			UpdatedAt: d.DetailUpdatedAt.UTC(),
		}
		if d.Severity.Valid {
			s := api.Severity(d.Severity.String)
			detail.Severity = &s
		}
		if d.Notes.Valid {
			n := d.Notes.String
			detail.Notes = &n
		}
		if len(d.Photos) > 0 {
			detail.Photos = append([]string{}, d.Photos...)
		}
		out.DamageDetails[d.PartKey] = detail
	}

	return out
}
