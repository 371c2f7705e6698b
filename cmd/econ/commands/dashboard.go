package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"econseries/internal/model"
	"econseries/internal/providers/worldbank"
	"econseries/internal/report"
)

var (
	dashboardCountry string
	dashboardStart   int
	dashboardEnd     int
)

func init() {
	dashboardCmd.Flags().StringVarP(&dashboardCountry, "country", "c", "CA", "ISO-2 country code")
	dashboardCmd.Flags().IntVar(&dashboardStart, "start", 2013, "first year of the window")
	dashboardCmd.Flags().IntVar(&dashboardEnd, "end", 2023, "last year of the window")
	rootCmd.AddCommand(dashboardCmd)
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Fetches all supported indicators for one country, skipping the ones that fail.",
	RunE: func(cmd *cobra.Command, args []string) error {
		provider := worldbank.New()
		rendered := 0
		for _, indicator := range model.AllIndicators() {
			query, err := buildQuery(dashboardCountry, indicator, dashboardStart, dashboardEnd)
			if err != nil {
				return err
			}
			series, err := provider.FetchSeries(cmd.Context(), query)
			if err != nil {
				if logSkip(query, err) {
					continue
				}
				return err
			}
			report.WriteTable(os.Stdout, query, series)
			report.WriteChart(os.Stdout, query, series)
			fmt.Fprintln(os.Stdout)
			rendered++
		}
		if rendered == 0 {
			return fmt.Errorf("no series could be fetched for %s", dashboardCountry)
		}
		return nil
	},
}
