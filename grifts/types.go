package grifts

import (
	"github.com/silinternational/inspection-api/api"
)

// ImportData is the layout of an inspection import file
type ImportData struct {
	Inspections []api.InspectionDamage `json:"inspections"`
}
