package api

import (
	"encoding/json"
	"time"
)

func (ts *TestSuite) TestInspectionDamage_UnmarshalJSON() {
	in := `{
		"id": "6c4a7d8e-5b3f-4a8e-9c1d-2e7f0a9b3c5d",
		"bodyType": "sedan",
		"bodyParts": {"front_bumper": "accident", "hood": 3, "roof": null},
		"mechanical": {"tires": {"front_left": "used_50", "spare": true}},
		"damageDetails": {
			"headlight_left": {
				"condition": "broken",
				"severity": "severe",
				"notes": "cracked lens",
				"photos": ["a.jpg", 7, "b.jpg"],
				"updatedAt": "2024-03-14T09:30:00Z"
			},
			"hood": {"condition": 12, "updatedAt": "yesterday"}
		}
	}`

	var got InspectionDamage
	ts.NoError(json.Unmarshal([]byte(in), &got))

	ts.Equal("6c4a7d8e-5b3f-4a8e-9c1d-2e7f0a9b3c5d", got.ID.String())
	ts.Equal(BodyTypeSedan, got.BodyType)

	ts.Equal(LegacyStatusAccident, got.BodyParts[LegacyPartFrontBumper])
	ts.Equal(LegacyStatus("3"), got.BodyParts[LegacyPartHood], "non-string values are kept as unrecognized text")
	ts.Equal(LegacyStatus(""), got.BodyParts[LegacyPartRoof], "null reads as a missing status")

	ts.Equal(TireStatusUsed50, got.Mechanical.Tires[TirePositionFrontLeft])
	ts.Equal(TireStatus("true"), got.Mechanical.Tires[TirePositionSpare])

	headlight := got.DamageDetails[PartKeyHeadlightLeft]
	ts.Equal(ConditionBroken, headlight.Condition)
	ts.Equal(SeveritySevere, *headlight.Severity)
	ts.Equal("cracked lens", *headlight.Notes)
	ts.Equal([]string{"a.jpg", "b.jpg"}, headlight.Photos)
	ts.Equal(time.Date(2024, time.March, 14, 9, 30, 0, 0, time.UTC), headlight.UpdatedAt.UTC())

	hood := got.DamageDetails[PartKeyHood]
	ts.Equal(Condition("12"), hood.Condition)
	ts.True(hood.UpdatedAt.IsZero())
	ts.Nil(hood.Severity)
	ts.Nil(hood.Notes)
}

func (ts *TestSuite) TestInspectionDamage_MarshalJSON() {
	notes := "scuffed"
	in := InspectionDamage{
		BodyType:   BodyTypeSUV,
		BodyParts:  BodyParts{LegacyPartTrunk: LegacyStatusPainted},
		Mechanical: Mechanical{Tires: Tires{TirePositionRearLeft: TireStatusDamaged}},
		DamageDetails: DamageDetails{
			PartKeyMirrorLeft: {
				Condition: ConditionScratch,
				Notes:     &notes,
				UpdatedAt: time.Date(2024, time.March, 14, 9, 30, 0, 0, time.UTC),
			},
		},
	}

	b, err := json.Marshal(in)
	ts.NoError(err)

	var raw map[string]any
	ts.NoError(json.Unmarshal(b, &raw))
	ts.Equal("suv", raw["bodyType"])
	ts.Equal(map[string]any{"trunk": "painted"}, raw["bodyParts"])
	ts.Equal(map[string]any{"tires": map[string]any{"rear_left": "damaged"}}, raw["mechanical"])

	details := raw["damageDetails"].(map[string]any)
	mirror := details["mirror_left"].(map[string]any)
	ts.Equal("scratch", mirror["condition"])
	ts.Equal("scuffed", mirror["notes"])
	ts.Equal("2024-03-14T09:30:00Z", mirror["updatedAt"])
	ts.NotContains(mirror, "severity")
	ts.NotContains(mirror, "photos")
}

func (ts *TestSuite) TestInspectionDamage_Clone() {
	severity := SeverityMinor
	notes := "original"
	in := InspectionDamage{
		BodyParts:  BodyParts{LegacyPartHood: LegacyStatusOriginal},
		Mechanical: Mechanical{Tires: Tires{TirePositionFrontLeft: TireStatusNew}},
		DamageDetails: DamageDetails{
			PartKeyHood: {Condition: ConditionScratch, Severity: &severity, Notes: &notes, Photos: []string{"a.jpg"}},
		},
	}

	c := in.Clone()
	ts.Equal(in, c)

	c.BodyParts[LegacyPartHood] = LegacyStatusAccident
	c.Mechanical.Tires[TirePositionFrontLeft] = TireStatusDamaged
	detail := c.DamageDetails[PartKeyHood]
	*detail.Severity = SeveritySevere
	*detail.Notes = "changed"
	detail.Photos[0] = "changed.jpg"

	ts.Equal(LegacyStatusOriginal, in.BodyParts[LegacyPartHood])
	ts.Equal(TireStatusNew, in.Mechanical.Tires[TirePositionFrontLeft])
	ts.Equal(SeverityMinor, *in.DamageDetails[PartKeyHood].Severity)
	ts.Equal("original", *in.DamageDetails[PartKeyHood].Notes)
	ts.Equal("a.jpg", in.DamageDetails[PartKeyHood].Photos[0])

	var empty InspectionDamage
	ts.Equal(empty, empty.Clone())
}

func (ts *TestSuite) TestDamageMap_Keys() {
	m := DamageMap{
		PartKeyWheelRearLeft: {},
		PartKeyFrontBumper:   {},
		PartKeyHood:          {},
	}
	ts.Equal([]PartKey{PartKeyFrontBumper, PartKeyHood, PartKeyWheelRearLeft}, m.Keys())
	ts.Empty(DamageMap{}.Keys())
}

func (ts *TestSuite) TestCondition_IsDamaged() {
	tests := []struct {
		condition Condition
		want      bool
	}{
		{condition: ConditionGood, want: false},
		{condition: ConditionNotInspected, want: false},
		{condition: ConditionScratch, want: true},
		{condition: ConditionPainted, want: true},
		{condition: ConditionBodywork, want: true},
		{condition: ConditionBroken, want: true},
		{condition: ConditionReplaced, want: true},
	}
	for _, tt := range tests {
		ts.Run(string(tt.condition), func() {
			ts.Equal(tt.want, tt.condition.IsDamaged())
		})
	}
}
