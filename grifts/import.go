package grifts

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gobuffalo/grift/grift"
	"github.com/gobuffalo/pop/v6"
	"github.com/gofrs/uuid"

	"github.com/silinternational/inspection-api/api"
	"github.com/silinternational/inspection-api/damage"
	"github.com/silinternational/inspection-api/domain"
	"github.com/silinternational/inspection-api/log"
	"github.com/silinternational/inspection-api/models"
)

/*
	Reads a JSON file of inspection records saved by earlier versions of the inspection app and stores them.

	The input file has a single top-level `inspections` list, as defined in `ImportData`. Each record is read
	leniently and normalized; records without an ID get a new one. Every record is stored in one transaction.
*/

var _ = grift.Namespace("db", func() {
	_ = grift.Desc("import", "Imports inspection records from a JSON file")
	_ = grift.Add("import", func(c *grift.Context) error {
		if len(c.Args) < 1 {
			return errors.New("the import file name is required")
		}

		obj, err := readImportFile(c.Args[0])
		if err != nil {
			return err
		}

		fmt.Println("record counts: ")
		fmt.Printf("  Inspections: %d\n", len(obj.Inspections))
		fmt.Println("")

		return models.DB.Transaction(func(tx *pop.Connection) error {
			n, err := importInspections(tx, obj)
			if err != nil {
				return err
			}
			fmt.Printf("imported %d inspection(s)\n", n)
			return nil
		})
	})
})

func readImportFile(name string) (ImportData, error) {
	var obj ImportData

	f, err := os.Open(name)
	if err != nil {
		return obj, fmt.Errorf("error opening file %s: %w", name, err)
	}
	defer func(f *os.File) {
		if err := f.Close(); err != nil {
			domain.ErrLogger.Printf("failed to close file, %s", err)
		}
	}(f)

	dec := json.NewDecoder(bufio.NewReader(f))
	if err := dec.Decode(&obj); err != nil {
		return obj, errors.New("json decode error: " + err.Error())
	}
	return obj, nil
}

func importInspections(tx *pop.Connection, obj ImportData) (int, error) {
	ctx := models.WithTx(tx.Context(), tx)
	store := models.InspectionStore{}

	for n, in := range obj.Inspections {
		inspection := damage.Normalize(in)
		if inspection.ID == uuid.Nil {
			inspection.ID = domain.GetUUID()
		}
		if unknown := unknownParts(inspection); len(unknown) > 0 {
			domain.Logger.WithField(log.FieldInspectionID, inspection.ID).
				Warnf("keeping %d unrecognized part(s) as given: %s", len(unknown), strings.Join(unknown, ", "))
		}
		if err := store.SaveInspectionDamage(ctx, inspection); err != nil {
			return n, fmt.Errorf("failed to import inspection %s: %w", inspection.ID, err)
		}
	}
	return len(obj.Inspections), nil
}

// unknownParts lists the legacy ids and overlay part-keys of the inspection that are not in the taxonomy
func unknownParts(inspection api.InspectionDamage) []string {
	var unknown []string
	for id := range inspection.BodyParts {
		if !damage.IsLegacyPartID(id) {
			unknown = append(unknown, string(id))
		}
	}
	for key := range inspection.DamageDetails {
		if !damage.IsCatalogPart(key) {
			unknown = append(unknown, string(key))
		}
	}
	sort.Strings(unknown)
	return unknown
}
