package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// BootstrapCmd returns the bootstrap command.
func BootstrapCmd() *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:     "bootstrap",
		Aliases: []string{"seed"},
		Short:   "Found a new fiefdom for the given owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := flags.buildApp()
			if err != nil {
				return err
			}
			res, err := app.Engine.Bootstrap(context.Background(), flags.owner)
			if err != nil {
				return fmt.Errorf("bootstrap %s: %w", flags.owner, err)
			}

			verb := "already founded"
			if res.Founded {
				verb = "founded"
			}
			fmt.Printf("%s %s\n", color.New(color.FgHiGreen).Sprint(res.OwnerID), verb)
			fmt.Printf("  treasury:   %d gold\n", res.Treasury)
			fmt.Printf("  population: %d\n", res.Population)
			fmt.Printf("  buildings:  %d across %d districts\n", res.Buildings, res.Areas)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
