package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fiefforge/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fiefctl",
		Short: "fiefctl - manage and inspect fiefforge fiefdoms",
		Long: `fiefctl drives the fiefdom simulation directly against the database
the server uses: found fiefdoms, advance the calendar, inspect the
realm, and fire world events without going through the HTTP API.`,
	}

	rootCmd.AddCommand(cli.BootstrapCmd())
	rootCmd.AddCommand(cli.AdvanceCmd())
	rootCmd.AddCommand(cli.DashboardCmd())
	rootCmd.AddCommand(cli.EventsCmd())
	rootCmd.AddCommand(cli.TriggerCmd())
	rootCmd.AddCommand(cli.SimulateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
