package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// TriggerCmd returns the trigger command.
func TriggerCmd() *cobra.Command {
	var (
		flags   globalFlags
		eventID string
	)

	cmd := &cobra.Command{
		Use:   "trigger",
		Short: "Force a world event to fire immediately",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := flags.buildApp()
			if err != nil {
				return err
			}
			events, err := app.Engine.TriggerEvent(context.Background(), flags.owner, eventID)
			if err != nil {
				return fmt.Errorf("trigger %s: %w", eventID, err)
			}

			for _, ev := range events {
				fmt.Printf("%s %s\n", categoryMark(ev.Category), ev.Message)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&eventID, "event", "", "event id, e.g. royal_favor")
	_ = cmd.MarkFlagRequired("event")
	return cmd
}
