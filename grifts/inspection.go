package grifts

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/gobuffalo/grift/grift"
	"github.com/gofrs/uuid"

	"github.com/silinternational/inspection-api/api"
	"github.com/silinternational/inspection-api/damage"
	"github.com/silinternational/inspection-api/models"
	"github.com/silinternational/inspection-api/storage"
)

var _ = grift.Namespace("inspection", func() {
	_ = grift.Desc("summary", "Prints the body-condition summary of one inspection, or of all of them")
	_ = grift.Add("summary", func(c *grift.Context) error {
		var ids []uuid.UUID
		if len(c.Args) > 0 {
			id, err := uuid.FromString(c.Args[0])
			if err != nil {
				return fmt.Errorf("invalid inspection ID %q: %w", c.Args[0], err)
			}
			ids = append(ids, id)
		} else {
			var inspections models.Inspections
			if err := inspections.All(models.DB); err != nil {
				return err
			}
			for _, i := range inspections {
				ids = append(ids, i.ID)
			}
		}

		store := models.InspectionStore{}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		for _, id := range ids {
			inspection, err := store.LoadInspectionDamage(c, id)
			if err != nil {
				return err
			}
			if err := enc.Encode(inspectionSummary(inspection, time.Now().UTC())); err != nil {
				return err
			}
		}
		return nil
	})

	_ = grift.Desc("photos", "Prints a URL for every photo of an inspection's overlay")
	_ = grift.Add("photos", func(c *grift.Context) error {
		id, err := inspectionIDArg(c)
		if err != nil {
			return err
		}

		inspection, err := models.InspectionStore{}.LoadInspectionDamage(c, id)
		if err != nil {
			return err
		}

		for _, key := range overlayKeys(inspection) {
			for _, photo := range inspection.DamageDetails[key].Photos {
				u, err := storage.GetPhotoURL(photo)
				if err != nil {
					return err
				}
				fmt.Printf("%s\t%s\t%s\n", key, photo, u.Url)
			}
		}
		return nil
	})

	_ = grift.Desc("delete", "Deletes an inspection and its stored photos")
	_ = grift.Add("delete", func(c *grift.Context) error {
		id, err := inspectionIDArg(c)
		if err != nil {
			return err
		}

		store := models.InspectionStore{}
		if err := store.DeleteInspection(c, id); err != nil {
			return err
		}
		fmt.Printf("deleted inspection %s\n", id)
		return nil
	})
})

// overlayKeys returns the part-keys of the overlay in order, including keys outside the catalog
func overlayKeys(inspection api.InspectionDamage) []api.PartKey {
	keys := make([]api.PartKey, 0, len(inspection.DamageDetails))
	for key := range inspection.DamageDetails {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func inspectionIDArg(c *grift.Context) (uuid.UUID, error) {
	if len(c.Args) < 1 {
		return uuid.Nil, errors.New("an inspection ID is required")
	}
	id, err := uuid.FromString(c.Args[0])
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid inspection ID %q: %w", c.Args[0], err)
	}
	return id, nil
}

type summaryOutput struct {
	ID      uuid.UUID              `json:"id"`
	Summary api.DamageSummary      `json:"summary"`
	Groups  []api.PartGroupSummary `json:"groups"`
}

func inspectionSummary(inspection api.InspectionDamage, at time.Time) summaryOutput {
	canonical := damage.Reconcile(inspection, at)
	return summaryOutput{
		ID:      inspection.ID,
		Summary: damage.Summarize(canonical),
		Groups:  damage.GroupBy(canonical, damage.DefaultDiagramGroups()),
	}
}
