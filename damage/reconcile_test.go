package damage

import (
	"time"

	"github.com/silinternational/inspection-api/api"
)

func (ts *TestSuite) Test_Reconcile_FreshInspection() {
	canonical := Reconcile(NewInspectionDamage(api.BodyTypeSedan), testTime)

	ts.Len(canonical, 13+4, "a fresh inspection has the legacy parts and the wheels only")
	for _, id := range LegacyPartIDs() {
		rec, ok := canonical[LegacyToPartKey(id)]
		ts.True(ok, "missing %s", id)
		ts.Equal(api.ConditionGood, rec.Condition)
		ts.Equal(testTime, rec.UpdatedAt)
		ts.Nil(rec.Severity)
		ts.Nil(rec.Notes)
		ts.Nil(rec.Photos)
	}
	for _, position := range WheelPositions() {
		key, _ := WheelPositionToPartKey(position)
		ts.Equal(api.ConditionGood, canonical[key].Condition, "wheel %s", key)
	}
}

func (ts *TestSuite) Test_Reconcile_FrontBumperAccident() {
	inspection := NewInspectionDamage(api.BodyTypeSedan)
	inspection.BodyParts[api.LegacyPartFrontBumper] = api.LegacyStatusAccident

	canonical := Reconcile(inspection, testTime)

	for key, rec := range canonical {
		if key == api.PartKeyFrontBumper {
			ts.Equal(api.ConditionBroken, rec.Condition)
			continue
		}
		ts.Equal(api.ConditionGood, rec.Condition, "part %s", key)
	}
}

func (ts *TestSuite) Test_Reconcile_OverlayOnlyPart() {
	inspection := NewInspectionDamage(api.BodyTypeSUV)
	inspection.DamageDetails[api.PartKeyHeadlightLeft] = api.DamageDetail{
		Condition: api.ConditionBroken,
		Notes:     strPtr("cracked lens"),
		UpdatedAt: testTime.Add(-24 * time.Hour),
	}

	canonical := Reconcile(inspection, testTime)

	rec, ok := canonical[api.PartKeyHeadlightLeft]
	ts.True(ok)
	ts.Equal(api.ConditionBroken, rec.Condition)
	ts.Equal("cracked lens", *rec.Notes)
	ts.Equal(testTime.Add(-24 * time.Hour), rec.UpdatedAt)
	ts.Len(canonical, 13+4+1)
}

func (ts *TestSuite) Test_Reconcile_OverlayWins() {
	tests := []struct {
		name    string
		key     api.PartKey
		setup   func(*api.InspectionDamage)
		overlay api.Condition
	}{
		{
			name: "legacy body part",
			key:  api.PartKeyDoorFrontLeft,
			setup: func(i *api.InspectionDamage) {
				i.BodyParts[api.LegacyPartFrontLeftDoor] = api.LegacyStatusAccident
			},
			overlay: api.ConditionScratch,
		},
		{
			name: "wheel",
			key:  api.PartKeyWheelRearLeft,
			setup: func(i *api.InspectionDamage) {
				i.Mechanical.Tires[api.TirePositionRearLeft] = api.TireStatusDamaged
			},
			overlay: api.ConditionGood,
		},
		{
			name: "baseline legacy value",
			key:  api.PartKeyRoof,
			setup: func(i *api.InspectionDamage) {
			},
			overlay: api.ConditionBodywork,
		},
	}
	for _, tt := range tests {
		ts.Run(tt.name, func() {
			inspection := NewInspectionDamage(api.BodyTypeSedan)
			tt.setup(&inspection)
			inspection.DamageDetails[tt.key] = api.DamageDetail{Condition: tt.overlay, UpdatedAt: testTime}

			rec, ok := Reconcile(inspection, testTime)[tt.key]
			ts.True(ok)
			ts.Equal(tt.overlay, rec.Condition)
		})
	}
}

func (ts *TestSuite) Test_Reconcile_MissingSourceFields() {
	// no body parts, no tires, no overlay at all
	canonical := Reconcile(api.InspectionDamage{}, testTime)

	ts.Len(canonical, 13+4)
	for key, rec := range canonical {
		ts.Equal(api.ConditionGood, rec.Condition, "part %s", key)
	}
}

func (ts *TestSuite) Test_Reconcile_MalformedValues() {
	inspection := api.InspectionDamage{
		BodyParts: api.BodyParts{
			api.LegacyPartHood: "dented",
			"fuel_door":        api.LegacyStatusAccident,
		},
		Mechanical: api.Mechanical{Tires: api.Tires{
			api.TirePositionFrontRight: "bald",
			api.TirePositionSpare:      api.TireStatusDamaged,
		}},
		DamageDetails: api.DamageDetails{
			api.PartKeyMirrorLeft: {Condition: "smashed", UpdatedAt: testTime},
		},
	}

	canonical := Reconcile(inspection, testTime)

	ts.Equal(api.ConditionNotInspected, canonical[api.PartKeyHood].Condition)
	ts.Equal(api.ConditionNotInspected, canonical[api.PartKeyWheelFrontRight].Condition)
	ts.Equal(api.ConditionNotInspected, canonical[api.PartKeyMirrorLeft].Condition)

	_, ok := canonical["fuel_door"]
	ts.False(ok, "unknown legacy ids do not reach the canonical set")
	_, ok = canonical["wheel_spare"]
	ts.False(ok, "the spare is never projected as a part")
}

func (ts *TestSuite) Test_Reconcile_UnknownOverlayKeyPassesThrough() {
	inspection := NewInspectionDamage(api.BodyTypeVan)
	inspection.DamageDetails["sliding_door_left"] = api.DamageDetail{
		Condition: api.ConditionScratch,
		Severity:  severityPtr(api.SeverityMinor),
		Photos:    []string{"photos/1.jpg"},
		UpdatedAt: testTime,
	}

	rec, ok := Reconcile(inspection, testTime)["sliding_door_left"]
	ts.True(ok)
	ts.Equal(api.ConditionScratch, rec.Condition)
	ts.Equal(api.SeverityMinor, *rec.Severity)
	ts.Equal([]string{"photos/1.jpg"}, rec.Photos)
}

func (ts *TestSuite) Test_Reconcile_Idempotent() {
	inspection := NewInspectionDamage(api.BodyTypeCoupe)
	inspection.BodyParts[api.LegacyPartTrunk] = api.LegacyStatusPainted
	inspection.Mechanical.Tires[api.TirePositionFrontLeft] = api.TireStatusUsed50
	inspection.DamageDetails[api.PartKeyWindshieldFront] = api.DamageDetail{
		Condition: api.ConditionBroken,
		Photos:    []string{"a.jpg", "b.jpg"},
		UpdatedAt: testTime,
	}
	before := inspection.Clone()

	first := Reconcile(inspection, testTime)
	second := Reconcile(inspection, testTime)

	ts.Equal(first, second)
	ts.Equal(first.Keys(), second.Keys())
	ts.Equal(before, inspection, "reconciliation must not modify its input")
}

func (ts *TestSuite) Test_Reconcile_DoesNotAliasOverlay() {
	inspection := NewInspectionDamage(api.BodyTypeSedan)
	inspection.DamageDetails[api.PartKeyHood] = api.DamageDetail{
		Condition: api.ConditionScratch,
		Photos:    []string{"a.jpg"},
		UpdatedAt: testTime,
	}

	canonical := Reconcile(inspection, testTime)
	canonical[api.PartKeyHood].Photos[0] = "changed.jpg"

	ts.Equal("a.jpg", inspection.DamageDetails[api.PartKeyHood].Photos[0])
}

func (ts *TestSuite) Test_ReconcilePart() {
	inspection := NewInspectionDamage(api.BodyTypeSedan)
	inspection.Mechanical.Tires[api.TirePositionRearRight] = api.TireStatusDamaged

	rec, ok := ReconcilePart(inspection, api.PartKeyWheelRearRight, testTime)
	ts.True(ok)
	ts.Equal(api.ConditionBroken, rec.Condition)

	_, ok = ReconcilePart(inspection, api.PartKeyTaillightRight, testTime)
	ts.False(ok, "a catalog part with no overlay entry and no legacy equivalent is not fabricated")
}
