package api

import (
	"bytes"
	"encoding/json"
	"sort"
	"time"

	"github.com/gofrs/uuid"
)

// BodyParts is the legacy body-part status map. Every legacy id is expected to be present; absent entries take
// the baseline status.
//
// swagger:model
type BodyParts map[LegacyPartID]LegacyStatus

// UnmarshalJSON keeps entries whose value is not a JSON string as unrecognized statuses instead of failing
func (b *BodyParts) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parts := make(BodyParts, len(raw))
	for k, v := range raw {
		parts[LegacyPartID(k)] = LegacyStatus(rawString(v))
	}
	*b = parts
	return nil
}

// Clone returns a copy that shares no storage with b
func (b BodyParts) Clone() BodyParts {
	if b == nil {
		return nil
	}
	c := make(BodyParts, len(b))
	for k, v := range b {
		c[k] = v
	}
	return c
}

// Tires is the mechanical tire record, keyed by wheel position
//
// swagger:model
type Tires map[TirePosition]TireStatus

// UnmarshalJSON keeps entries whose value is not a JSON string as unrecognized statuses instead of failing
func (t *Tires) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	tires := make(Tires, len(raw))
	for k, v := range raw {
		tires[TirePosition(k)] = TireStatus(rawString(v))
	}
	*t = tires
	return nil
}

// Clone returns a copy that shares no storage with t
func (t Tires) Clone() Tires {
	if t == nil {
		return nil
	}
	c := make(Tires, len(t))
	for k, v := range t {
		c[k] = v
	}
	return c
}

// swagger:model
type Mechanical struct {
	Tires Tires `json:"tires"`
}

// DamageDetail is one overlay entry: a detailed edit recorded against a part-key
//
// swagger:model
type DamageDetail struct {
	Condition Condition `json:"condition"`
	Severity  *Severity `json:"severity,omitempty"`
	Notes     *string   `json:"notes,omitempty"`

	// storage keys of photos documenting the damage
	Photos []string `json:"photos,omitempty"`

	// ISO-8601 timestamp of the last edit
	UpdatedAt time.Time `json:"updatedAt"`
}

// UnmarshalJSON decodes a damage detail leniently: an unparseable timestamp becomes the zero time and photo
// references that are not strings are dropped.
func (d *DamageDetail) UnmarshalJSON(data []byte) error {
	var raw struct {
		Condition json.RawMessage   `json:"condition"`
		Severity  json.RawMessage   `json:"severity"`
		Notes     json.RawMessage   `json:"notes"`
		Photos    []json.RawMessage `json:"photos"`
		UpdatedAt json.RawMessage   `json:"updatedAt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	detail := DamageDetail{
		Condition: Condition(rawString(raw.Condition)),
	}

	if !isRawNull(raw.Severity) {
		s := Severity(rawString(raw.Severity))
		detail.Severity = &s
	}

	if !isRawNull(raw.Notes) {
		n := rawString(raw.Notes)
		detail.Notes = &n
	}

	for _, p := range raw.Photos {
		var photo string
		if err := json.Unmarshal(p, &photo); err == nil {
			detail.Photos = append(detail.Photos, photo)
		}
	}

	if !isRawNull(raw.UpdatedAt) {
		var t time.Time
		if err := json.Unmarshal(raw.UpdatedAt, &t); err == nil {
			detail.UpdatedAt = t
		}
	}

	*d = detail
	return nil
}

// Clone returns a deep copy of the detail
func (d DamageDetail) Clone() DamageDetail {
	c := d
	if d.Severity != nil {
		s := *d.Severity
		c.Severity = &s
	}
	if d.Notes != nil {
		n := *d.Notes
		c.Notes = &n
	}
	if d.Photos != nil {
		c.Photos = append([]string{}, d.Photos...)
	}
	return c
}

// DamageDetails is the sparse overlay map, keyed by part-key
//
// swagger:model
type DamageDetails map[PartKey]DamageDetail

// Clone returns a deep copy of the overlay map
func (d DamageDetails) Clone() DamageDetails {
	if d == nil {
		return nil
	}
	c := make(DamageDetails, len(d))
	for k, v := range d {
		c[k] = v.Clone()
	}
	return c
}

// InspectionDamage is the persisted damage portion of one inspection record
//
// swagger:model
type InspectionDamage struct {
	// inspection ID
	//
	// swagger:strfmt uuid4
	ID uuid.UUID `json:"id"`

	BodyType      BodyType      `json:"bodyType"`
	BodyParts     BodyParts     `json:"bodyParts"`
	Mechanical    Mechanical    `json:"mechanical"`
	DamageDetails DamageDetails `json:"damageDetails,omitempty"`
}

// Clone returns a deep copy of the inspection damage record
func (i InspectionDamage) Clone() InspectionDamage {
	c := i
	c.BodyParts = i.BodyParts.Clone()
	c.Mechanical.Tires = i.Mechanical.Tires.Clone()
	c.DamageDetails = i.DamageDetails.Clone()
	return c
}

// PartDamage is the canonical, reconciled damage record for one part-key
//
// swagger:model
type PartDamage struct {
	PartKey   PartKey   `json:"partKey"`
	Condition Condition `json:"condition"`
	Severity  *Severity `json:"severity,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	Photos    []string  `json:"photos,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Detail returns the overlay entry that carries all of the record's data
func (p PartDamage) Detail() DamageDetail {
	return DamageDetail{
		Condition: p.Condition,
		Severity:  p.Severity,
		Notes:     p.Notes,
		Photos:    p.Photos,
		UpdatedAt: p.UpdatedAt,
	}.Clone()
}

// DamageMap is the read-only canonical map handed to renderers and report generators
//
// swagger:model
type DamageMap map[PartKey]PartDamage

// Keys returns the part-keys of the map in ascending order
func (d DamageMap) Keys() []PartKey {
	keys := make([]PartKey, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// DamageSummary holds the counts shown on body-condition summaries
//
// swagger:model
type DamageSummary struct {
	// counts per legacy status across the fixed legacy body-part set
	LegacyStatusCounts map[LegacyStatus]int `json:"legacyStatusCounts"`

	// counts per condition across every canonical record
	ConditionCounts map[Condition]int `json:"conditionCounts"`

	// part-keys whose condition is damaged, in ascending order
	DamagedParts []PartKey `json:"damagedParts"`

	TotalParts int `json:"totalParts"`
}

// PartGroup is a caller-supplied grouping of part-keys, e.g. one view of the vehicle diagram
//
// swagger:model
type PartGroup struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	PartKeys []PartKey `json:"partKeys"`
}

// swagger:model
type PartGroupSummary struct {
	Name            string            `json:"name"`
	Label           string            `json:"label"`
	ConditionCounts map[Condition]int `json:"conditionCounts"`

	// number of part-keys in the group that have no canonical record
	Missing int `json:"missing"`

	Damaged int `json:"damaged"`
}

func rawString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}

func isRawNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
