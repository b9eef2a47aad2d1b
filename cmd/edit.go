package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/silinternational/inspection-api/api"
	"github.com/silinternational/inspection-api/damage"
	"github.com/silinternational/inspection-api/domain"
	"github.com/silinternational/inspection-api/models"
)

func newEditCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "edit FILE|ID",
		Short: "Edits the damage record of one part and saves the inspection",
		Long: "Opens the part for edit, applies the given changes and saves the whole inspection. Flags that are " +
			"not given leave the field as it is; an empty --severity or --notes clears the field.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := openSource(args[0])
			if err != nil {
				return err
			}
			inspection, err := src.load(cmd.Context())
			if err != nil {
				return err
			}

			part, _ := cmd.Flags().GetString("part")
			session := damage.NewSession(inspection, damage.WithClock(at))
			session.Open(api.PartKey(part))

			if err := session.Update(func(rec *api.PartDamage) { applyEditFlags(cmd, rec) }); err != nil {
				return err
			}

			photos, _ := cmd.Flags().GetStringSlice("photo")
			for _, name := range photos {
				if err := attachPhoto(src, session, name); err != nil {
					return err
				}
			}

			rec, err := src.savePart(cmd.Context(), session)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), rec)
		},
	}

	c.Flags().String("part", "", "Part-key to edit")
	c.Flags().String("condition", "", "New condition of the part")
	c.Flags().String("severity", "", "Severity of the damage: minor, moderate or severe")
	c.Flags().String("notes", "", "Free-text notes")
	c.Flags().StringSlice("photo", nil, "Photo to attach; uploaded for database records")
	c.Flags().StringSlice("remove-photo", nil, "Photo reference to remove")
	_ = c.MarkFlagRequired("part")
	return c
}

func newResetCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "reset FILE|ID",
		Short: "Returns one part to its baseline and saves the inspection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := openSource(args[0])
			if err != nil {
				return err
			}
			inspection, err := src.load(cmd.Context())
			if err != nil {
				return err
			}

			part, _ := cmd.Flags().GetString("part")
			session := damage.NewSession(inspection, damage.WithClock(at))
			if err := src.resetPart(cmd.Context(), session, api.PartKey(part)); err != nil {
				return err
			}

			rec, _ := damage.ReconcilePart(session.Inspection(), api.PartKey(part), at())
			return writeJSON(cmd.OutOrStdout(), rec)
		},
	}

	c.Flags().String("part", "", "Part-key to reset")
	_ = c.MarkFlagRequired("part")
	return c
}

func applyEditFlags(cmd *cobra.Command, rec *api.PartDamage) {
	flags := cmd.Flags()

	if flags.Changed("condition") {
		condition, _ := flags.GetString("condition")
		rec.Condition = api.Condition(condition)
	}

	if flags.Changed("severity") {
		severity, _ := flags.GetString("severity")
		rec.Severity = nil
		if severity != "" {
			s := api.Severity(severity)
			rec.Severity = &s
		}
	}

	if flags.Changed("notes") {
		notes, _ := flags.GetString("notes")
		rec.Notes = nil
		if notes != "" {
			rec.Notes = &notes
		}
	}

	removed, _ := flags.GetStringSlice("remove-photo")
	if len(removed) > 0 {
		var kept []string
		for _, p := range rec.Photos {
			if !domain.IsStringInSlice(p, removed) {
				kept = append(kept, p)
			}
		}
		rec.Photos = kept
	}
}

// attachPhoto uploads the photo for a database record. File records only keep the reference as given.
func attachPhoto(src source, session *damage.Session, name string) error {
	if !src.isDB() {
		return session.Update(func(rec *api.PartDamage) {
			if !domain.IsStringInSlice(name, rec.Photos) {
				rec.Photos = append(rec.Photos, name)
			}
		})
	}

	content, err := os.ReadFile(name)
	if err != nil {
		return fmt.Errorf("error reading photo %s: %w", name, err)
	}
	_, err = models.AttachPhoto(session, models.Photo{Name: filepath.Base(name), Content: content})
	return err
}
