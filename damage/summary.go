package damage

import (
	"github.com/silinternational/inspection-api/api"
)

// Summarize counts the canonical records for body-condition summaries. Legacy status counts cover exactly the
// fixed legacy body-part set; a legacy part with no canonical record counts as needs_check.
func Summarize(canonical api.DamageMap) api.DamageSummary {
	summary := api.DamageSummary{
		LegacyStatusCounts: map[api.LegacyStatus]int{},
		ConditionCounts:    map[api.Condition]int{},
		DamagedParts:       []api.PartKey{},
		TotalParts:         len(canonical),
	}

	for _, s := range LegacyStatuses() {
		summary.LegacyStatusCounts[s] = 0
	}
	for _, c := range Conditions() {
		summary.ConditionCounts[c] = 0
	}

	for _, key := range legacyPartKeys[1:] {
		c := api.ConditionNotInspected
		if rec, ok := canonical[key]; ok {
			c = rec.Condition
		}
		summary.LegacyStatusCounts[ConditionToLegacyStatus(c)]++
	}

	for _, key := range canonical.Keys() {
		c := NormalizeCondition(canonical[key].Condition)
		summary.ConditionCounts[c]++
		if c.IsDamaged() {
			summary.DamagedParts = append(summary.DamagedParts, key)
		}
	}

	return summary
}

// GroupBy counts the canonical records of each caller-supplied group. The groups are returned in the order given.
func GroupBy(canonical api.DamageMap, groups []api.PartGroup) []api.PartGroupSummary {
	summaries := make([]api.PartGroupSummary, 0, len(groups))

	for _, g := range groups {
		s := api.PartGroupSummary{
			Name:            g.Name,
			Label:           g.Label,
			ConditionCounts: map[api.Condition]int{},
		}

		for _, key := range g.PartKeys {
			rec, ok := canonical[key]
			if !ok {
				s.Missing++
				continue
			}
			c := NormalizeCondition(rec.Condition)
			s.ConditionCounts[c]++
			if c.IsDamaged() {
				s.Damaged++
			}
		}

		summaries = append(summaries, s)
	}

	return summaries
}

var diagramViewLabels = []struct {
	view  api.DiagramView
	label string
}{
	{api.DiagramViewFront, "Front"},
	{api.DiagramViewRear, "Rear"},
	{api.DiagramViewLeft, "Left side"},
	{api.DiagramViewRight, "Right side"},
	{api.DiagramViewTop, "Top"},
}

// DefaultDiagramGroups groups the catalog by diagram view, for renderers that do not supply their own grouping
func DefaultDiagramGroups() []api.PartGroup {
	groups := make([]api.PartGroup, 0, len(diagramViewLabels))
	for _, v := range diagramViewLabels {
		g := api.PartGroup{Name: string(v.view), Label: v.label, PartKeys: []api.PartKey{}}
		for _, e := range catalog {
			if e.view == v.view {
				g.PartKeys = append(g.PartKeys, e.key)
			}
		}
		groups = append(groups, g)
	}
	return groups
}
