package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"econseries/internal/export"
	"econseries/internal/providers/worldbank"
)

var (
	exportProfile string
	exportOut     string
)

func init() {
	exportCmd.Flags().StringVar(&exportProfile, "profile", "", "path to a yaml run profile")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "site/data", "output directory")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Fetches every series in the profile and writes chart-ready JSON files.",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := resolveProfile(exportProfile)
		if err != nil {
			return err
		}
		indicators, err := profile.ResolveIndicators()
		if err != nil {
			return err
		}

		provider := worldbank.New()
		entries := make([]export.Entry, 0, len(profile.Countries)*len(indicators))
		for _, country := range profile.Countries {
			for _, indicator := range indicators {
				query, err := buildQuery(country.Code, indicator, profile.Window.Start, profile.Window.End)
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
				entries = append(entries, export.Entry{Query: query, Series: series})
			}
		}

		if len(entries) == 0 {
			return fmt.Errorf("no series could be fetched for profile")
		}
		if err := export.Write(exportOut, entries); err != nil {
			return err
		}
		slog.Info("export complete", "out", exportOut, "series", len(entries))
		return nil
	},
}
