package commands

import (
	"errors"
	"log/slog"
	"strings"

	"econseries/internal/model"
	"econseries/internal/providers/worldbank"
)

func buildQuery(country string, indicator model.Indicator, start, end int) (model.Query, error) {
	query := model.Query{
		CountryCode: strings.ToUpper(strings.TrimSpace(country)),
		Indicator:   indicator,
		StartYear:   start,
		EndYear:     end,
	}
	if err := query.Validate(); err != nil {
		return model.Query{}, err
	}
	return query, nil
}

// logSkip reports a failed series and tells the caller to keep going. Only a
// malformed response aborts the run, since it signals an upstream contract
// change rather than a gap for one country.
func logSkip(query model.Query, err error) bool {
	var netErr *worldbank.NetworkError
	var emptyErr *worldbank.EmptyResultError
	var noDataErr *worldbank.NoValidDataError
	switch {
	case errors.As(err, &netErr):
		slog.Error("request failed, skipping series", "query", query.String(), "error", err)
		return true
	case errors.As(err, &emptyErr):
		slog.Warn("provider has no data for query, skipping series", "query", query.String())
		return true
	case errors.As(err, &noDataErr):
		slog.Warn("all observations missing values, skipping series", "query", query.String())
		return true
	default:
		return false
	}
}

func parseCountryList(value string) []string {
	parts := strings.Split(value, ",")
	codes := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.ToUpper(strings.TrimSpace(part))
		if trimmed == "" {
			continue
		}
		codes = append(codes, trimmed)
	}
	return codes
}
