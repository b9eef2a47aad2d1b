package damage

import (
	"github.com/silinternational/inspection-api/api"
)

// Baseline values for a freshly created inspection. Missing legacy or tire entries take these values.
const (
	BaselineLegacyStatus = api.LegacyStatusOriginal
	BaselineTireStatus   = api.TireStatusNew
)

type legacyStatus uint8

const (
	legacyStatusUnknown legacyStatus = iota

	legacyOriginal
	legacyPainted
	legacyBodywork
	legacyAccident
	legacyReplaced
	legacyNeedsCheck

	legacyStatusCount
)

type condition uint8

const (
	conditionUnknown condition = iota

	conditionGood
	conditionScratch
	conditionPainted
	conditionBodywork
	conditionBroken
	conditionReplaced
	conditionNotInspected

	conditionCount
)

type tireStatus uint8

const (
	tireStatusUnknown tireStatus = iota

	tireNew
	tireUsed50
	tireDamaged

	tireStatusCount
)

var legacyStatusNames = [...]api.LegacyStatus{
	legacyOriginal:   api.LegacyStatusOriginal,
	legacyPainted:    api.LegacyStatusPainted,
	legacyBodywork:   api.LegacyStatusBodywork,
	legacyAccident:   api.LegacyStatusAccident,
	legacyReplaced:   api.LegacyStatusReplaced,
	legacyNeedsCheck: api.LegacyStatusNeedsCheck,
}

var conditionNames = [...]api.Condition{
	conditionGood:         api.ConditionGood,
	conditionScratch:      api.ConditionScratch,
	conditionPainted:      api.ConditionPainted,
	conditionBodywork:     api.ConditionBodywork,
	conditionBroken:       api.ConditionBroken,
	conditionReplaced:     api.ConditionReplaced,
	conditionNotInspected: api.ConditionNotInspected,
}

var tireStatusNames = [...]api.TireStatus{
	tireNew:     api.TireStatusNew,
	tireUsed50:  api.TireStatusUsed50,
	tireDamaged: api.TireStatusDamaged,
}

// The unknown slot of each conversion table holds that direction's fallback.

var legacyStatusConditions = [...]condition{
	legacyStatusUnknown: conditionNotInspected,
	legacyOriginal:      conditionGood,
	legacyPainted:       conditionPainted,
	legacyBodywork:      conditionBodywork,
	legacyAccident:      conditionBroken,
	legacyReplaced:      conditionReplaced,
	legacyNeedsCheck:    conditionNotInspected,
}

// scratch and painted both collapse to painted, so a scratch does not survive a legacy-only save and reload.
// Kept as is until product decides how scratches should be stored in the legacy shape.
var conditionLegacyStatuses = [...]legacyStatus{
	conditionUnknown:      legacyNeedsCheck,
	conditionGood:         legacyOriginal,
	conditionScratch:      legacyPainted,
	conditionPainted:      legacyPainted,
	conditionBodywork:     legacyBodywork,
	conditionBroken:       legacyAccident,
	conditionReplaced:     legacyReplaced,
	conditionNotInspected: legacyNeedsCheck,
}

var tireStatusConditions = [...]condition{
	tireStatusUnknown: conditionNotInspected,
	tireNew:           conditionGood,
	tireUsed50:        conditionScratch,
	tireDamaged:       conditionBroken,
}

var conditionTireStatuses = [...]tireStatus{
	conditionUnknown:      tireNew,
	conditionGood:         tireNew,
	conditionScratch:      tireUsed50,
	conditionPainted:      tireUsed50,
	conditionBodywork:     tireUsed50,
	conditionBroken:       tireDamaged,
	conditionReplaced:     tireNew,
	conditionNotInspected: tireNew,
}

// Appending a value to one of the enums above without extending its tables fails to compile here.
var (
	_ = [1]struct{}{}[len(legacyStatusNames)-int(legacyStatusCount)]
	_ = [1]struct{}{}[len(conditionNames)-int(conditionCount)]
	_ = [1]struct{}{}[len(tireStatusNames)-int(tireStatusCount)]
	_ = [1]struct{}{}[len(legacyStatusConditions)-int(legacyStatusCount)]
	_ = [1]struct{}{}[len(conditionLegacyStatuses)-int(conditionCount)]
	_ = [1]struct{}{}[len(tireStatusConditions)-int(tireStatusCount)]
	_ = [1]struct{}{}[len(conditionTireStatuses)-int(conditionCount)]
)

var (
	legacyStatusesByName = reverseIndex[api.LegacyStatus, legacyStatus](legacyStatusNames[:])
	conditionsByName     = reverseIndex[api.Condition, condition](conditionNames[:])
	tireStatusesByName   = reverseIndex[api.TireStatus, tireStatus](tireStatusNames[:])
)

// parse functions return the unknown ordinal for anything outside the vocabulary

func parseLegacyStatus(s api.LegacyStatus) legacyStatus {
	return legacyStatusesByName[s]
}

func parseCondition(c api.Condition) condition {
	return conditionsByName[c]
}

func parseTireStatus(s api.TireStatus) tireStatus {
	return tireStatusesByName[s]
}

// LegacyStatusToCondition converts a legacy body-part status. Unrecognized statuses become not_inspected.
func LegacyStatusToCondition(s api.LegacyStatus) api.Condition {
	return conditionNames[legacyStatusConditions[parseLegacyStatus(s)]]
}

// ConditionToLegacyStatus converts a condition into the legacy vocabulary. Unrecognized conditions become
// needs_check. This direction is lossy: scratch and painted both become painted.
func ConditionToLegacyStatus(c api.Condition) api.LegacyStatus {
	return legacyStatusNames[conditionLegacyStatuses[parseCondition(c)]]
}

// TireStatusToCondition converts a tire status. Unrecognized statuses become not_inspected.
func TireStatusToCondition(s api.TireStatus) api.Condition {
	return conditionNames[tireStatusConditions[parseTireStatus(s)]]
}

// ConditionToTireStatus converts a condition into the tire vocabulary. Unrecognized conditions become new.
func ConditionToTireStatus(c api.Condition) api.TireStatus {
	return tireStatusNames[conditionTireStatuses[parseCondition(c)]]
}

// NormalizeCondition returns c when it is part of the condition vocabulary and not_inspected otherwise
func NormalizeCondition(c api.Condition) api.Condition {
	return conditionNames[normalizedCondition(parseCondition(c))]
}

func normalizedCondition(c condition) condition {
	if c == conditionUnknown {
		return conditionNotInspected
	}
	return c
}

func IsKnownLegacyStatus(s api.LegacyStatus) bool {
	return parseLegacyStatus(s) != legacyStatusUnknown
}

func IsKnownCondition(c api.Condition) bool {
	return parseCondition(c) != conditionUnknown
}

func IsKnownTireStatus(s api.TireStatus) bool {
	return parseTireStatus(s) != tireStatusUnknown
}

// LegacyStatuses returns the legacy status vocabulary in canonical order
func LegacyStatuses() []api.LegacyStatus {
	return append([]api.LegacyStatus{}, legacyStatusNames[1:]...)
}

// Conditions returns the condition vocabulary in canonical order
func Conditions() []api.Condition {
	return append([]api.Condition{}, conditionNames[1:]...)
}

// TireStatuses returns the tire status vocabulary in canonical order
func TireStatuses() []api.TireStatus {
	return append([]api.TireStatus{}, tireStatusNames[1:]...)
}
