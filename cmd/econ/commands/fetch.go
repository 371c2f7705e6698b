package commands

import (
	"os"

	"github.com/spf13/cobra"

	"econseries/internal/model"
	"econseries/internal/providers/worldbank"
	"econseries/internal/report"
)

var (
	fetchCountry   string
	fetchIndicator string
	fetchStart     int
	fetchEnd       int
	fetchNoChart   bool
)

func init() {
	fetchCmd.Flags().StringVarP(&fetchCountry, "country", "c", "US", "ISO-2 country code")
	fetchCmd.Flags().StringVarP(&fetchIndicator, "indicator", "i", "gdp", "indicator alias or World Bank code")
	fetchCmd.Flags().IntVar(&fetchStart, "start", 2013, "first year of the window")
	fetchCmd.Flags().IntVar(&fetchEnd, "end", 2023, "last year of the window")
	fetchCmd.Flags().BoolVar(&fetchNoChart, "no-chart", false, "skip the terminal chart")
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetches one indicator series and prints it with growth figures.",
	RunE: func(cmd *cobra.Command, args []string) error {
		indicator, err := model.ParseIndicator(fetchIndicator)
		if err != nil {
			return err
		}
		query, err := buildQuery(fetchCountry, indicator, fetchStart, fetchEnd)
		if err != nil {
			return err
		}

		series, err := worldbank.New().FetchSeries(cmd.Context(), query)
		if err != nil {
			return err
		}

		report.WriteTable(os.Stdout, query, series)
		if !fetchNoChart {
			report.WriteChart(os.Stdout, query, series)
		}
		return nil
	},
}
