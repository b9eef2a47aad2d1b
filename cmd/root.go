package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/silinternational/inspection-api/domain"
)

// at is the clock used for reconciliation and edit timestamps
var at = func() time.Time { return time.Now().UTC() }

// newRootCmd builds the base command with all of its subcommands
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Reconciles and edits the damage records of vehicle inspections",
		Long: "Reads inspection damage records from JSON files or the database, reports the canonical damage map " +
			"and edits one part at a time.",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newReconcileCmd(),
		newSummaryCmd(),
		newCatalogCmd(),
		newEditCmd(),
		newResetCmd(),
		newTaskCmd(),
	)
	return rootCmd
}

// Execute runs the command named by the program arguments. This is called by main.main().
func Execute(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		domain.ErrLogger.WithField("command", rootCmd.Name()).Errorf("command execution failed: %s", err)
		return err
	}
	return nil
}
