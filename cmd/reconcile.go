package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/silinternational/inspection-api/api"
	"github.com/silinternational/inspection-api/damage"
)

func newReconcileCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "reconcile FILE|ID",
		Short: "Prints the canonical damage map of an inspection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inspection, err := loadInspection(cmd, args[0])
			if err != nil {
				return err
			}

			part, _ := cmd.Flags().GetString("part")
			if part == "" {
				return writeJSON(cmd.OutOrStdout(), damage.Reconcile(inspection, at()))
			}

			rec, ok := damage.ReconcilePart(inspection, api.PartKey(part), at())
			if !ok {
				return fmt.Errorf("no source knows the part %q", part)
			}
			return writeJSON(cmd.OutOrStdout(), rec)
		},
	}
	c.Flags().String("part", "", "Only print the record of this part-key")
	return c
}

func newSummaryCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "summary FILE|ID",
		Short: "Prints the body-condition summary of an inspection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inspection, err := loadInspection(cmd, args[0])
			if err != nil {
				return err
			}

			canonical := damage.Reconcile(inspection, at())
			out := struct {
				Summary api.DamageSummary      `json:"summary"`
				Groups  []api.PartGroupSummary `json:"groups,omitempty"`
			}{
				Summary: damage.Summarize(canonical),
			}
			if grouped, _ := cmd.Flags().GetBool("groups"); grouped {
				out.Groups = damage.GroupBy(canonical, damage.DefaultDiagramGroups())
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	c.Flags().Bool("groups", false, "Include per-view counts of the vehicle diagram")
	return c
}

type catalogEntry struct {
	PartKey  api.PartKey      `json:"partKey"`
	Category api.PartCategory `json:"category"`
	View     api.DiagramView  `json:"view,omitempty"`
	LegacyID api.LegacyPartID `json:"legacyId,omitempty"`
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Lists the part-keys of the diagram catalog with their category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var entries []catalogEntry
			for _, key := range damage.Catalog() {
				e := catalogEntry{PartKey: key, Category: damage.CategoryOf(key)}
				e.View, _ = damage.ViewOf(key)
				e.LegacyID, _ = damage.PartKeyToLegacy(key)
				entries = append(entries, e)
			}
			return writeJSON(cmd.OutOrStdout(), entries)
		},
	}
}

func loadInspection(cmd *cobra.Command, arg string) (api.InspectionDamage, error) {
	src, err := openSource(arg)
	if err != nil {
		return api.InspectionDamage{}, err
	}
	return src.load(cmd.Context())
}
