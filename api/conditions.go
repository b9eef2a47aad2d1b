package api

// LegacyStatus is the six-value body-part status stored in the legacy body parts map
//
// may be one of: original, painted, bodywork, accident, replaced, needs_check
//
// swagger:model
type LegacyStatus string

const (
	LegacyStatusOriginal   = LegacyStatus("original")
	LegacyStatusPainted    = LegacyStatus("painted")
	LegacyStatusBodywork   = LegacyStatus("bodywork")
	LegacyStatusAccident   = LegacyStatus("accident")
	LegacyStatusReplaced   = LegacyStatus("replaced")
	LegacyStatusNeedsCheck = LegacyStatus("needs_check")
)

func (l LegacyStatus) String() string {
	return string(l)
}

// Condition is the detailed damage vocabulary used by the part-key catalog
//
// may be one of: good, scratch, painted, bodywork, broken, replaced, not_inspected
//
// swagger:model
type Condition string

const (
	ConditionGood         = Condition("good")
	ConditionScratch      = Condition("scratch")
	ConditionPainted      = Condition("painted")
	ConditionBodywork     = Condition("bodywork")
	ConditionBroken       = Condition("broken")
	ConditionReplaced     = Condition("replaced")
	ConditionNotInspected = Condition("not_inspected")
)

func (c Condition) String() string {
	return string(c)
}

// IsDamaged reports whether the condition describes visible damage or repair work
func (c Condition) IsDamaged() bool {
	return c != ConditionGood && c != ConditionNotInspected
}

// TireStatus is the coarse tire status stored per wheel position
//
// may be one of: new, used_50, damaged
//
// swagger:model
type TireStatus string

const (
	TireStatusNew     = TireStatus("new")
	TireStatusUsed50  = TireStatus("used_50")
	TireStatusDamaged = TireStatus("damaged")
)

func (t TireStatus) String() string {
	return string(t)
}

// Severity qualifies a damage condition
//
// may be one of: minor, moderate, severe
//
// swagger:model
type Severity string

const (
	SeverityMinor    = Severity("minor")
	SeverityModerate = Severity("moderate")
	SeveritySevere   = Severity("severe")
)

func (s Severity) String() string {
	return string(s)
}
