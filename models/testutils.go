package models

import (
	"context"
	"fmt"
	"time"

	"github.com/gobuffalo/pop/v6"

	"github.com/silinternational/inspection-api/api"
	"github.com/silinternational/inspection-api/damage"
)

type FixturesConfig struct {
	NumberOfInspections int

	// every n-th legacy body part is marked as an accident
	AccidentEvery int

	// overlay entries per inspection, taken from the start of the part catalog
	DetailsPerInspection int
}

// Fixtures hold slices of model objects created for test fixtures
type Fixtures struct {
	Inspections []api.InspectionDamage
}

// CreateInspectionFixtures generates any number of inspection records for testing
func CreateInspectionFixtures(tx *pop.Connection, config FixturesConfig) Fixtures {
	ctx := WithTx(context.Background(), tx)
	store := InspectionStore{}
	catalog := damage.Catalog()
	updatedAt := time.Date(2024, time.March, 14, 9, 30, 0, 0, time.UTC)

	inspections := make([]api.InspectionDamage, config.NumberOfInspections)
	for i := range inspections {
		inspection, err := store.CreateInspection(ctx, api.BodyTypeSedan)
		if err != nil {
			panic(fmt.Sprintf("failed to create inspection fixture, %s", err))
		}

		if config.AccidentEvery > 0 {
			for n, id := range damage.LegacyPartIDs() {
				if n%config.AccidentEvery == 0 {
					inspection.BodyParts[id] = api.LegacyStatusAccident
				}
			}
		}

		for n := 0; n < config.DetailsPerInspection && n < len(catalog); n++ {
			inspection.DamageDetails[catalog[n]] = api.DamageDetail{
				Condition: api.ConditionScratch,
				Photos:    []string{fmt.Sprintf("fixtures/%d/%s.jpg", i, catalog[n])},
				UpdatedAt: updatedAt,
			}
		}

		if err := store.SaveInspectionDamage(ctx, inspection); err != nil {
			panic(fmt.Sprintf("failed to save inspection fixture, %s", err))
		}
		inspections[i] = inspection
	}

	return Fixtures{Inspections: inspections}
}

// DestroyAll removes every inspection; child rows are removed by the database
func DestroyAll() {
	var inspections Inspections
	destroyTable(&inspections)
}

func destroyTable(i any) {
	if err := DB.All(i); err != nil {
		panic(err.Error())
	}
	if err := DB.Destroy(i); err != nil {
		panic(err.Error())
	}
}
