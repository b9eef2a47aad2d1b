package cmd

import (
	"fmt"
	"strings"

	"github.com/gobuffalo/grift/grift"
	"github.com/spf13/cobra"

	"github.com/silinternational/inspection-api/domain"
	_ "github.com/silinternational/inspection-api/grifts" // register the tasks
	"github.com/silinternational/inspection-api/models"
)

func newTaskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "task NAME [ARGS...]",
		Short: "Runs a maintenance task, e.g. db:seed, db:import, inspection:summary or minio:seed",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(grift.List(), "\n"))
				return err
			}

			name := args[0]
			if !strings.HasPrefix(name, "minio:") && models.DB == nil {
				if err := models.Connect(domain.Env.GoEnv); err != nil {
					return err
				}
			}

			c := grift.NewContextWithContext(name, cmd.Context())
			c.Args = args[1:]
			return grift.Run(name, c)
		},
	}
}
