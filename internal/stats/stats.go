// Package stats computes the growth summary printed alongside a series.
package stats

import "econseries/internal/model"

// Summary holds the growth figures for one series. Growth percentages are
// zero when the series has fewer than two points or starts at zero.
type Summary struct {
	TotalGrowthPct     float64
	AvgAnnualGrowthPct float64
	Max                model.Observation
	Min                model.Observation
}

func Summarize(series model.Series) Summary {
	summary := Summary{}
	if len(series) == 0 {
		return summary
	}

	summary.Max = series[0]
	summary.Min = series[0]
	for _, obs := range series[1:] {
		if obs.Value > summary.Max.Value {
			summary.Max = obs
		}
		if obs.Value < summary.Min.Value {
			summary.Min = obs
		}
	}

	if len(series) < 2 {
		return summary
	}

	first := series.First()
	last := series.Last()
	if first.Value == 0 {
		return summary
	}
	summary.TotalGrowthPct = (last.Value - first.Value) / first.Value * 100
	if span := last.Year - first.Year; span > 0 {
		summary.AvgAnnualGrowthPct = summary.TotalGrowthPct / float64(span)
	}
	return summary
}
