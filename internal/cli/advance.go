package cli

import (
	"context"
	"fmt"

	"fiefforge/internal/domain/fief"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// AdvanceCmd returns the advance command.
func AdvanceCmd() *cobra.Command {
	var (
		flags globalFlags
		days  int
	)

	cmd := &cobra.Command{
		Use:   "advance",
		Short: "Advance the simulation by one or more days",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := flags.buildApp()
			if err != nil {
				return err
			}
			reports, err := app.Engine.AdvanceDays(context.Background(), flags.owner, days)
			if err != nil {
				return fmt.Errorf("advance %s: %w", flags.owner, err)
			}

			for _, r := range reports {
				fmt.Printf("%s day %d — treasury %d, births %d, deaths %d\n",
					seasonColor(r.Season).Sprintf("year %d %s", r.Year, r.Season),
					r.Day, r.Treasury, r.Births, r.Deaths)
				for _, ev := range r.Events {
					fmt.Printf("  %s %s\n", categoryMark(ev.Category), ev.Message)
				}
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&days, "days", 1, "number of days to advance")
	return cmd
}

func seasonColor(season string) *color.Color {
	switch season {
	case "Spring":
		return color.New(color.FgHiGreen)
	case "Summer":
		return color.New(color.FgHiYellow)
	case "Autumn":
		return color.New(color.FgHiRed)
	default:
		return color.New(color.FgHiCyan)
	}
}

func categoryMark(category string) string {
	switch category {
	case fief.CategoryPositive:
		return color.New(color.FgGreen).Sprint("+")
	case fief.CategoryNegative:
		return color.New(color.FgRed).Sprint("-")
	default:
		return color.New(color.FgWhite).Sprint("·")
	}
}
