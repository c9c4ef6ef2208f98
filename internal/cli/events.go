package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// EventsCmd returns the events command.
func EventsCmd() *cobra.Command {
	var (
		flags globalFlags
		limit int
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Show the most recent chronicle entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := flags.buildApp()
			if err != nil {
				return err
			}
			events, err := app.Engine.Events.ListRecent(context.Background(), flags.owner, limit)
			if err != nil {
				return fmt.Errorf("events %s: %w", flags.owner, err)
			}

			for _, ev := range events {
				fmt.Printf("%s y%d d%-3d %-20s %s\n",
					categoryMark(ev.Category), ev.Year, ev.Day, ev.Type, ev.Message)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries to show")
	return cmd
}
