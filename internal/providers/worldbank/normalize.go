package worldbank

import (
	"fmt"
	"sort"
	"strconv"

	"econseries/internal/model"
)

// Normalize turns raw provider observations into a clean series: entries
// without a value are dropped, years must parse, the indicator's unit
// transform is applied, and the result is sorted ascending by year. On a
// duplicate year the first occurrence wins. Pure function, no I/O.
func Normalize(query model.Query, raw []RawObservation) (model.Series, error) {
	series := make(model.Series, 0, len(raw))
	seen := make(map[int]struct{}, len(raw))

	for _, entry := range raw {
		if entry.Value == nil {
			// A country/year can legitimately lack data.
			continue
		}
		year, ok := parseYear(entry.Date)
		if !ok {
			return nil, &MalformedDataError{Query: query, Detail: fmt.Sprintf("unparseable year %q", entry.Date)}
		}
		if _, dup := seen[year]; dup {
			continue
		}
		seen[year] = struct{}{}
		series = append(series, model.Observation{
			Year:  year,
			Value: query.Indicator.Transform(*entry.Value),
		})
	}

	if len(series) == 0 {
		return nil, &NoValidDataError{Query: query}
	}

	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Year < series[j].Year
	})
	return series, nil
}

func parseYear(value string) (int, bool) {
	if len(value) != 4 || !isDigits(value) {
		return 0, false
	}
	year, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return year, true
}

func isDigits(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
