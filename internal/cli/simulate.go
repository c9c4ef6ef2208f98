package cli

import (
	"context"
	"fmt"

	"fiefforge/internal/domain/fief"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// SimulateCmd returns the simulate command. It runs a throwaway
// fiefdom entirely in memory, which is handy for balancing work and
// needs no database.
func SimulateCmd() *cobra.Command {
	var (
		days int
		seed int64
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a fresh in-memory fiefdom for a number of days",
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 {
				return fmt.Errorf("--days must be at least 1")
			}

			app := newMemoryApp(seed)
			ctx := context.Background()
			const owner = "simulation"

			if _, err := app.Engine.Bootstrap(ctx, owner); err != nil {
				return fmt.Errorf("bootstrap: %w", err)
			}

			var births, deaths int
			remaining := days
			for remaining > 0 {
				step := remaining
				if step > fief.DaysPerSeason {
					step = fief.DaysPerSeason
				}
				reports, err := app.Engine.AdvanceDays(ctx, owner, step)
				if err != nil {
					return fmt.Errorf("advance: %w", err)
				}
				for _, r := range reports {
					births += r.Births
					deaths += r.Deaths
				}
				remaining -= step
			}

			d, err := app.Stats.Dashboard(ctx, owner)
			if err != nil {
				return fmt.Errorf("dashboard: %w", err)
			}

			fmt.Printf("%s after %d days\n", color.New(color.FgHiWhite).Sprint("simulation"), days)
			fmt.Printf("  calendar:   %s\n", seasonColor(d.Season).Sprintf("year %d, %s", d.Year, d.Season))
			fmt.Printf("  treasury:   %d gold\n", d.Treasury)
			fmt.Printf("  population: %d (born %d, died %d)\n", d.Population.Total, births, deaths)
			fmt.Printf("  happiness %d, health %d\n", d.Population.AvgHappiness, d.Population.AvgHealth)
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", fief.DaysPerYear, "number of days to simulate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 means time-based)")
	return cmd
}
