package damage

import (
	"github.com/silinternational/inspection-api/api"
)

func (ts *TestSuite) Test_ProjectEdit_WheelIsolation() {
	inspection := NewInspectionDamage(api.BodyTypeSedan)
	before := inspection.Clone()

	u := ProjectEdit(api.PartDamage{
		PartKey:   api.PartKeyWheelFrontLeft,
		Condition: api.ConditionBroken,
		UpdatedAt: testTime,
	})
	ts.True(u.TouchesTires())
	ts.False(u.TouchesBodyParts())

	after := u.Apply(inspection)

	ts.Equal(api.TireStatusDamaged, after.Mechanical.Tires[api.TirePositionFrontLeft])
	for position, status := range before.Mechanical.Tires {
		if position == api.TirePositionFrontLeft {
			continue
		}
		ts.Equal(status, after.Mechanical.Tires[position], "tire %s", position)
	}
	ts.Equal(before.BodyParts, after.BodyParts)
	ts.Equal(api.ConditionBroken, after.DamageDetails[api.PartKeyWheelFrontLeft].Condition)
	ts.Equal(before, inspection, "Apply must not modify its input")
}

func (ts *TestSuite) Test_ProjectEdit_LegacyPart() {
	inspection := NewInspectionDamage(api.BodyTypeHatchback)

	u := ProjectEdit(api.PartDamage{
		PartKey:   api.PartKeyFenderFrontLeft,
		Condition: api.ConditionScratch,
		Notes:     strPtr("light scratch above the wheel arch"),
		UpdatedAt: testTime,
	})
	ts.True(u.TouchesBodyParts())
	ts.False(u.TouchesTires())
	ts.Equal(api.LegacyPartLeftFender, u.LegacyPartID)
	ts.Equal(api.LegacyStatusPainted, u.LegacyStatus)

	after := u.Apply(inspection)

	ts.Equal(api.LegacyStatusPainted, after.BodyParts[api.LegacyPartLeftFender])
	ts.Equal(inspection.Mechanical.Tires, after.Mechanical.Tires)

	// the overlay keeps the finer condition that the legacy shape cannot express
	rec := Reconcile(after, testTime)[api.PartKeyFenderFrontLeft]
	ts.Equal(api.ConditionScratch, rec.Condition)
	ts.Equal("light scratch above the wheel arch", *rec.Notes)
}

func (ts *TestSuite) Test_ProjectEdit_OverlayOnlyPart() {
	inspection := NewInspectionDamage(api.BodyTypeSedan)
	before := inspection.Clone()

	u := ProjectEdit(api.PartDamage{
		PartKey:   api.PartKeyHeadlightRight,
		Condition: api.ConditionBroken,
		Severity:  severityPtr(api.SeveritySevere),
		Photos:    []string{"photos/headlight.jpg"},
		UpdatedAt: testTime,
	})
	ts.False(u.TouchesBodyParts())
	ts.False(u.TouchesTires())

	after := u.Apply(inspection)

	ts.Equal(before.BodyParts, after.BodyParts)
	ts.Equal(before.Mechanical.Tires, after.Mechanical.Tires)
	ts.Len(after.DamageDetails, 1)

	detail := after.DamageDetails[api.PartKeyHeadlightRight]
	ts.Equal(api.ConditionBroken, detail.Condition)
	ts.Equal(api.SeveritySevere, *detail.Severity)
	ts.Equal([]string{"photos/headlight.jpg"}, detail.Photos)
	ts.Equal(testTime, detail.UpdatedAt)
}

func (ts *TestSuite) Test_ProjectEdit_NormalizesCondition() {
	u := ProjectEdit(api.PartDamage{PartKey: api.PartKeyHood, Condition: "cracked", UpdatedAt: testTime})

	ts.Equal(api.ConditionNotInspected, u.Detail.Condition)
	ts.Equal(api.LegacyStatusNeedsCheck, u.LegacyStatus)
}

func (ts *TestSuite) Test_ProjectEdit_RoundTrip() {
	keys := append(Catalog(), "sliding_door_left")
	for _, key := range keys {
		for _, c := range Conditions() {
			inspection := NewInspectionDamage(api.BodyTypeSedan)
			edited := ProjectEdit(api.PartDamage{
				PartKey:   key,
				Condition: c,
				Notes:     strPtr("note"),
				Photos:    []string{"p.jpg"},
				UpdatedAt: testTime,
			}).Apply(inspection)

			rec, ok := Reconcile(edited, testTime)[key]
			ts.True(ok, "part %s, condition %s", key, c)
			ts.Equal(c, rec.Condition, "part %s", key)
			ts.Equal("note", *rec.Notes, "part %s", key)
			ts.Equal([]string{"p.jpg"}, rec.Photos, "part %s", key)
		}
	}
}

// the projected legacy field must agree with the overlay once the overlay is gone
func (ts *TestSuite) Test_ProjectEdit_CoarseFieldsAgree() {
	for _, c := range Conditions() {
		inspection := NewInspectionDamage(api.BodyTypeSedan)
		for _, key := range []api.PartKey{api.PartKeyTrunk, api.PartKeyWheelRearLeft} {
			inspection = ProjectEdit(api.PartDamage{PartKey: key, Condition: c, UpdatedAt: testTime}).Apply(inspection)
		}
		inspection.DamageDetails = nil

		canonical := Reconcile(inspection, testTime)
		ts.Equal(LegacyStatusToCondition(ConditionToLegacyStatus(c)), canonical[api.PartKeyTrunk].Condition)
		ts.Equal(TireStatusToCondition(ConditionToTireStatus(c)), canonical[api.PartKeyWheelRearLeft].Condition)
	}
}

func (ts *TestSuite) Test_ProjectReset_Wheel() {
	inspection := NewInspectionDamage(api.BodyTypePickup)
	inspection.Mechanical.Tires[api.TirePositionRearRight] = api.TireStatusDamaged
	inspection.DamageDetails[api.PartKeyWheelRearRight] = api.DamageDetail{
		Condition: api.ConditionBroken,
		Photos:    []string{"photos/tire.jpg"},
		UpdatedAt: testTime,
	}

	u := ProjectReset(api.PartKeyWheelRearRight)
	ts.Nil(u.Detail)
	ts.Equal(api.TireStatusNew, u.TireStatus)

	after := u.Apply(inspection)

	ts.Equal(api.TireStatusNew, after.Mechanical.Tires[api.TirePositionRearRight])
	_, ok := after.DamageDetails[api.PartKeyWheelRearRight]
	ts.False(ok)
	ts.Equal(api.ConditionGood, Reconcile(after, testTime)[api.PartKeyWheelRearRight].Condition)
	ts.Equal([]string{"photos/tire.jpg"}, u.RemovedPhotos(inspection))
}

func (ts *TestSuite) Test_ProjectReset_BodyPart() {
	inspection := NewInspectionDamage(api.BodyTypeSedan)
	inspection.BodyParts[api.LegacyPartRearRightDoor] = api.LegacyStatusAccident
	inspection.BodyParts[api.LegacyPartRoof] = api.LegacyStatusBodywork
	inspection.DamageDetails[api.PartKeyDoorRearRight] = api.DamageDetail{Condition: api.ConditionBroken}

	after := ProjectReset(api.PartKeyDoorRearRight).Apply(inspection)

	ts.Equal(api.LegacyStatusOriginal, after.BodyParts[api.LegacyPartRearRightDoor])
	ts.Equal(api.LegacyStatusBodywork, after.BodyParts[api.LegacyPartRoof])
	ts.Empty(after.DamageDetails)
}

func (ts *TestSuite) Test_ProjectReset_OverlayOnlyPart() {
	inspection := NewInspectionDamage(api.BodyTypeSedan)
	inspection.DamageDetails[api.PartKeyMirrorRight] = api.DamageDetail{Condition: api.ConditionBroken}

	u := ProjectReset(api.PartKeyMirrorRight)
	ts.False(u.TouchesBodyParts())
	ts.False(u.TouchesTires())

	after := u.Apply(inspection)
	_, ok := Reconcile(after, testTime)[api.PartKeyMirrorRight]
	ts.False(ok)
}

func (ts *TestSuite) Test_Apply_NilMaps() {
	after := ProjectEdit(api.PartDamage{
		PartKey:   api.PartKeyHood,
		Condition: api.ConditionPainted,
		UpdatedAt: testTime,
	}).Apply(api.InspectionDamage{})

	ts.Equal(api.LegacyStatusPainted, after.BodyParts[api.LegacyPartHood])
	ts.Equal(api.ConditionPainted, after.DamageDetails[api.PartKeyHood].Condition)

	after = ProjectReset(api.PartKeyWheelFrontRight).Apply(api.InspectionDamage{})
	ts.Equal(api.TireStatusNew, after.Mechanical.Tires[api.TirePositionFrontRight])
}

func (ts *TestSuite) Test_RemovedPhotos() {
	inspection := NewInspectionDamage(api.BodyTypeSedan)
	inspection.DamageDetails[api.PartKeyHood] = api.DamageDetail{
		Condition: api.ConditionScratch,
		Photos:    []string{"a.jpg", "b.jpg", "c.jpg"},
	}

	tests := []struct {
		name   string
		update Update
		want   []string
	}{
		{
			name:   "reset drops every photo",
			update: ProjectReset(api.PartKeyHood),
			want:   []string{"a.jpg", "b.jpg", "c.jpg"},
		},
		{
			name: "edit keeps some photos",
			update: ProjectEdit(api.PartDamage{
				PartKey:   api.PartKeyHood,
				Condition: api.ConditionScratch,
				Photos:    []string{"b.jpg", "d.jpg"},
			}),
			want: []string{"a.jpg", "c.jpg"},
		},
		{
			name:   "part without an overlay entry",
			update: ProjectReset(api.PartKeyRoof),
			want:   nil,
		},
	}
	for _, tt := range tests {
		ts.Run(tt.name, func() {
			ts.Equal(tt.want, tt.update.RemovedPhotos(inspection))
		})
	}
}
