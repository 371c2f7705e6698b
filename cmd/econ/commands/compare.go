package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"econseries/internal/config"
	"econseries/internal/model"
	"econseries/internal/providers/worldbank"
	"econseries/internal/report"
)

var (
	compareIndicator string
	compareCountries string
	compareProfile   string
	compareStart     int
	compareEnd       int
)

func init() {
	compareCmd.Flags().StringVarP(&compareIndicator, "indicator", "i", "gdp", "indicator alias or World Bank code")
	compareCmd.Flags().StringVar(&compareCountries, "countries", "", "comma-separated ISO-2 codes (default: profile or built-in set)")
	compareCmd.Flags().StringVar(&compareProfile, "profile", "", "path to a yaml run profile")
	compareCmd.Flags().IntVar(&compareStart, "start", 0, "first year of the window (default: profile)")
	compareCmd.Flags().IntVar(&compareEnd, "end", 0, "last year of the window (default: profile)")
	rootCmd.AddCommand(compareCmd)
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Fetches one indicator across several countries, skipping the ones that fail.",
	RunE: func(cmd *cobra.Command, args []string) error {
		indicator, err := model.ParseIndicator(compareIndicator)
		if err != nil {
			return err
		}

		profile, err := resolveProfile(compareProfile)
		if err != nil {
			return err
		}
		codes := parseCountryList(compareCountries)
		if len(codes) == 0 {
			for _, country := range profile.Countries {
				codes = append(codes, country.Code)
			}
		}
		start, end := resolveWindow(profile, compareStart, compareEnd)

		provider := worldbank.New()
		rendered := 0
		for _, code := range codes {
			query, err := buildQuery(code, indicator, start, end)
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
			return fmt.Errorf("no series could be fetched for %s", indicator)
		}
		return nil
	},
}

func resolveProfile(path string) (config.Profile, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func resolveWindow(profile config.Profile, start, end int) (int, int) {
	if start == 0 {
		start = profile.Window.Start
	}
	if end == 0 {
		end = profile.Window.End
	}
	return start, end
}
