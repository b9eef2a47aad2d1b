package grifts

import (
	"fmt"
	"time"

	"github.com/gobuffalo/grift/grift"
	"github.com/gobuffalo/pop/v6"
	"github.com/gofrs/uuid"

	"github.com/silinternational/inspection-api/api"
	"github.com/silinternational/inspection-api/damage"
	"github.com/silinternational/inspection-api/models"
)

var _ = grift.Namespace("db", func() {
	_ = grift.Desc("seed", "Seeds a database")
	_ = grift.Add("seed", func(c *grift.Context) error {
		count, err := models.DB.Count(models.Inspections{})
		if err != nil {
			return err
		}

		if count > 0 {
			fmt.Printf("\nINFO: It appears that the grifts have already been run, "+
				"since there are already %v inspections.\n", count)
			return nil
		}

		return models.DB.Transaction(func(tx *pop.Connection) error {
			_, err := createInspectionFixtures(tx)
			return err
		})
	})
})

func createInspectionFixtures(tx *pop.Connection) ([]api.InspectionDamage, error) {
	inspectionUUIDs := []string{
		"a1147366-26b2-4256-b2ab-58c92c3d54c1",
		"a1247366-26b2-4256-b2ab-58c92c3d54c2",
		"a1347366-26b2-4256-b2ab-58c92c3d54c3",
		"a249902f-c204-4922-b479-57f0ec41eab4",
	}

	severe := api.SeveritySevere
	minor := api.SeverityMinor
	notes := "cracked from a stone chip"
	edited := time.Now().UTC().Add(time.Hour * -24)

	// a fresh inspection, one in legacy form only, one with overlay edits and one with a worn set of tires
	fixtures := []api.InspectionDamage{
		damage.NewInspectionDamage(api.BodyTypeSedan),
		damage.NewInspectionDamage(api.BodyTypeHatchback),
		damage.NewInspectionDamage(api.BodyTypeSUV),
		damage.NewInspectionDamage(api.BodyTypePickup),
	}

	fixtures[1].BodyParts[api.LegacyPartFrontBumper] = api.LegacyStatusAccident
	fixtures[1].BodyParts[api.LegacyPartHood] = api.LegacyStatusPainted
	fixtures[1].BodyParts[api.LegacyPartLeftFender] = api.LegacyStatusBodywork

	fixtures[2].BodyParts[api.LegacyPartRoof] = api.LegacyStatusPainted
	fixtures[2].BodyParts[api.LegacyPartTrunk] = api.LegacyStatusReplaced
	fixtures[2].DamageDetails[api.PartKeyRoof] = api.DamageDetail{
		Condition: api.ConditionScratch,
		Severity:  &minor,
		UpdatedAt: edited,
	}
	fixtures[2].DamageDetails[api.PartKeyWindshieldFront] = api.DamageDetail{
		Condition: api.ConditionBroken,
		Severity:  &severe,
		Notes:     &notes,
		UpdatedAt: edited,
	}

	for _, position := range damage.WheelPositions() {
		fixtures[3].Mechanical.Tires[position] = api.TireStatusUsed50
	}
	fixtures[3].Mechanical.Tires[api.TirePositionRearRight] = api.TireStatusDamaged
	fixtures[3].Mechanical.Tires[api.TirePositionSpare] = api.TireStatusNew

	ctx := models.WithTx(tx.Context(), tx)
	store := models.InspectionStore{}
	for i := range fixtures {
		fixtures[i].ID = uuid.FromStringOrNil(inspectionUUIDs[i])
		if err := store.SaveInspectionDamage(ctx, fixtures[i]); err != nil {
			return nil, fmt.Errorf("error creating inspection fixture: %w", err)
		}
	}
	return fixtures, nil
}
