package damage

import (
	"github.com/silinternational/inspection-api/api"
)

func (ts *TestSuite) Test_Summarize_Fresh() {
	summary := Summarize(Reconcile(NewInspectionDamage(api.BodyTypeSedan), testTime))

	ts.Equal(17, summary.TotalParts)
	ts.Equal(13, summary.LegacyStatusCounts[api.LegacyStatusOriginal])
	ts.Equal(17, summary.ConditionCounts[api.ConditionGood])
	ts.Empty(summary.DamagedParts)
	ts.NotNil(summary.DamagedParts)

	for _, s := range LegacyStatuses() {
		_, ok := summary.LegacyStatusCounts[s]
		ts.True(ok, "no count for %s", s)
	}
	for _, c := range Conditions() {
		_, ok := summary.ConditionCounts[c]
		ts.True(ok, "no count for %s", c)
	}
}

func (ts *TestSuite) Test_Summarize() {
	inspection := NewInspectionDamage(api.BodyTypeSedan)
	inspection.BodyParts[api.LegacyPartFrontBumper] = api.LegacyStatusAccident
	inspection.BodyParts[api.LegacyPartHood] = api.LegacyStatusPainted
	inspection.Mechanical.Tires[api.TirePositionRearLeft] = api.TireStatusUsed50
	inspection.DamageDetails[api.PartKeyRoof] = api.DamageDetail{Condition: api.ConditionScratch}
	inspection.DamageDetails[api.PartKeyHeadlightLeft] = api.DamageDetail{Condition: api.ConditionBroken}
	inspection.DamageDetails[api.PartKeyMirrorLeft] = api.DamageDetail{Condition: api.ConditionNotInspected}

	summary := Summarize(Reconcile(inspection, testTime))

	ts.Equal(19, summary.TotalParts)

	ts.Equal(1, summary.LegacyStatusCounts[api.LegacyStatusAccident])
	ts.Equal(2, summary.LegacyStatusCounts[api.LegacyStatusPainted], "hood, plus the roof scratch")
	ts.Equal(10, summary.LegacyStatusCounts[api.LegacyStatusOriginal])

	ts.Equal(2, summary.ConditionCounts[api.ConditionBroken])
	ts.Equal(2, summary.ConditionCounts[api.ConditionScratch])
	ts.Equal(1, summary.ConditionCounts[api.ConditionPainted])
	ts.Equal(1, summary.ConditionCounts[api.ConditionNotInspected])
	ts.Equal(13, summary.ConditionCounts[api.ConditionGood])

	ts.Equal([]api.PartKey{
		api.PartKeyFrontBumper,
		api.PartKeyHeadlightLeft,
		api.PartKeyHood,
		api.PartKeyRoof,
		api.PartKeyWheelRearLeft,
	}, summary.DamagedParts)
}

func (ts *TestSuite) Test_Summarize_MissingLegacyPart() {
	summary := Summarize(api.DamageMap{
		api.PartKeyHood: {PartKey: api.PartKeyHood, Condition: api.ConditionGood},
	})

	ts.Equal(1, summary.TotalParts)
	ts.Equal(1, summary.LegacyStatusCounts[api.LegacyStatusOriginal])
	ts.Equal(12, summary.LegacyStatusCounts[api.LegacyStatusNeedsCheck])
}

func (ts *TestSuite) Test_GroupBy() {
	inspection := NewInspectionDamage(api.BodyTypeSedan)
	inspection.BodyParts[api.LegacyPartRearBumper] = api.LegacyStatusBodywork
	inspection.DamageDetails[api.PartKeyTaillightLeft] = api.DamageDetail{Condition: api.ConditionBroken}
	canonical := Reconcile(inspection, testTime)

	groups := []api.PartGroup{
		{
			Name:     "rear",
			Label:    "Rear",
			PartKeys: []api.PartKey{api.PartKeyRearBumper, api.PartKeyTrunk, api.PartKeyTaillightLeft, api.PartKeyTaillightRight},
		},
		{
			Name:     "empty",
			Label:    "Nothing",
			PartKeys: nil,
		},
	}

	got := GroupBy(canonical, groups)

	ts.Len(got, 2)
	ts.Equal("rear", got[0].Name)
	ts.Equal("Rear", got[0].Label)
	ts.Equal(1, got[0].ConditionCounts[api.ConditionBodywork])
	ts.Equal(1, got[0].ConditionCounts[api.ConditionBroken])
	ts.Equal(1, got[0].ConditionCounts[api.ConditionGood])
	ts.Equal(1, got[0].Missing, "taillight_right has no record")
	ts.Equal(2, got[0].Damaged)

	ts.Equal("empty", got[1].Name)
	ts.Equal(0, got[1].Missing)
	ts.Empty(got[1].ConditionCounts)
}

func (ts *TestSuite) Test_DefaultDiagramGroups() {
	groups := DefaultDiagramGroups()
	ts.Len(groups, 5)

	total := 0
	for _, g := range groups {
		ts.NotEmpty(g.Label)
		total += len(g.PartKeys)
		for _, key := range g.PartKeys {
			view, ok := ViewOf(key)
			ts.True(ok)
			ts.Equal(g.Name, string(view))
		}
	}
	ts.Equal(len(Catalog()), total, "every catalog part belongs to exactly one view")

	summaries := GroupBy(Reconcile(NewInspectionDamage(api.BodyTypeSedan), testTime), groups)
	missing := 0
	for _, s := range summaries {
		missing += s.Missing
	}
	ts.Equal(len(Catalog())-17, missing, "only the legacy parts and the wheels exist on a fresh inspection")
}
