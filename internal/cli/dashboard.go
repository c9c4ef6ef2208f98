package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// DashboardCmd returns the dashboard command.
func DashboardCmd() *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"stats"},
		Short:   "Show the realm overview for the given owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := flags.buildApp()
			if err != nil {
				return err
			}
			d, err := app.Stats.Dashboard(context.Background(), flags.owner)
			if err != nil {
				return fmt.Errorf("dashboard %s: %w", flags.owner, err)
			}

			fmt.Printf("%s — %s\n", color.New(color.FgHiWhite).Sprint(flags.owner),
				seasonColor(d.Season).Sprintf("year %d, %s (day %d of %d)", d.Year, d.Season, d.DayInSeason, d.Day))
			fmt.Printf("  treasury:   %d gold\n", d.Treasury)
			fmt.Printf("  population: %d (%d children, %d adults, %d elders)\n",
				d.Population.Total, d.Population.Children, d.Population.Adults, d.Population.Elders)
			fmt.Printf("  employed %d, housed %d, married %d\n",
				d.Population.Employed, d.Population.Housed, d.Population.Married)
			fmt.Printf("  happiness %d, health %d\n", d.Population.AvgHappiness, d.Population.AvgHealth)
			fmt.Printf("  economy:    %d businesses at %.0f%% capacity, citizen wealth %d\n",
				d.Economy.Businesses, d.Economy.ProductionCapacity*100, d.Economy.TotalCitizenWealth)
			fmt.Printf("  buildings:  %d\n", d.Buildings)

			goods := make([]string, 0, len(d.Inventory))
			for g := range d.Inventory {
				goods = append(goods, g)
			}
			sort.Strings(goods)
			fmt.Println("  stores:")
			for _, g := range goods {
				fmt.Printf("    %-12s %d\n", g, d.Inventory[g])
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
