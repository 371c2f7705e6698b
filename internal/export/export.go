// Package export writes chart-ready JSON for a set of fetched series: a
// meta.json with the generation timestamp and one file per series.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"econseries/internal/model"
)

type metaFile struct {
	GeneratedAt string `json:"generated_at"`
}

type seriesFile struct {
	Country   string      `json:"country"`
	Indicator string      `json:"indicator"`
	Label     string      `json:"label"`
	Unit      string      `json:"unit"`
	Rows      []seriesRow `json:"rows"`
}

type seriesRow struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// Entry is one fetched series ready to be written.
type Entry struct {
	Query  model.Query
	Series model.Series
}

// Write creates the output directory and writes meta.json plus one JSON file
// per entry.
func Write(dir string, entries []Entry) error {
	if len(entries) == 0 {
		return errors.New("export: no series to write")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if err := writeJSON(filepath.Join(dir, "meta.json"), metaFile{GeneratedAt: now}); err != nil {
		return err
	}

	for _, entry := range entries {
		out := seriesFile{
			Country:   strings.ToUpper(entry.Query.CountryCode),
			Indicator: string(entry.Query.Indicator),
			Label:     entry.Query.Indicator.Label(),
			Unit:      entry.Query.Indicator.Unit(),
			Rows:      make([]seriesRow, 0, len(entry.Series)),
		}
		for _, obs := range entry.Series {
			out.Rows = append(out.Rows, seriesRow{Year: obs.Year, Value: obs.Value})
		}
		if err := writeJSON(filepath.Join(dir, FileName(entry.Query)), out); err != nil {
			return err
		}
	}
	return nil
}

// FileName is the per-series file name, e.g. ca_NY.GDP.MKTP.CD.json.
func FileName(query model.Query) string {
	return fmt.Sprintf("%s_%s.json",
		strings.ToLower(strings.TrimSpace(query.CountryCode)),
		query.Indicator,
	)
}

func writeJSON(path string, value any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
