package model

import (
	"fmt"
	"strings"
)

// Indicator is a World Bank indicator code. The code is opaque to the rest
// of the pipeline; only the unit transform and labels hang off it.
type Indicator string

const (
	IndicatorGDP          Indicator = "NY.GDP.MKTP.CD"
	IndicatorGDPPerCapita Indicator = "NY.GDP.PCAP.CD"
	IndicatorUnemployment Indicator = "SL.UEM.TOTL.ZS"
	IndicatorInflation    Indicator = "FP.CPI.TOTL.ZG"
)

type indicatorInfo struct {
	label   string
	unit    string
	divisor float64
}

var indicators = map[Indicator]indicatorInfo{
	IndicatorGDP:          {label: "GDP", unit: "Trillions USD", divisor: 1e12},
	IndicatorGDPPerCapita: {label: "GDP Per Capita", unit: "USD", divisor: 1},
	IndicatorUnemployment: {label: "Unemployment Rate", unit: "% of labor force", divisor: 1},
	IndicatorInflation:    {label: "Inflation", unit: "annual %", divisor: 1},
}

// indicator aliases accepted on the command line, in addition to raw codes.
var indicatorAliases = map[string]Indicator{
	"gdp":            IndicatorGDP,
	"gdp-per-capita": IndicatorGDPPerCapita,
	"unemployment":   IndicatorUnemployment,
	"inflation":      IndicatorInflation,
}

func (i Indicator) Known() bool {
	_, ok := indicators[i]
	return ok
}

func (i Indicator) Label() string {
	if info, ok := indicators[i]; ok {
		return info.label
	}
	return string(i)
}

func (i Indicator) Unit() string {
	if info, ok := indicators[i]; ok {
		return info.unit
	}
	return "value"
}

// Transform converts a raw provider value into the reporting unit. It depends
// only on the indicator code, never on the magnitude of the value.
func (i Indicator) Transform(value float64) float64 {
	info, ok := indicators[i]
	if !ok || info.divisor == 1 {
		return value
	}
	return value / info.divisor
}

// ParseIndicator resolves an alias or a raw indicator code.
func ParseIndicator(value string) (Indicator, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("indicator is required")
	}
	if indicator, ok := indicatorAliases[strings.ToLower(trimmed)]; ok {
		return indicator, nil
	}
	indicator := Indicator(strings.ToUpper(trimmed))
	if !indicator.Known() {
		return "", fmt.Errorf("unknown indicator: %s", value)
	}
	return indicator, nil
}

// AllIndicators returns the supported indicators in dashboard order.
func AllIndicators() []Indicator {
	return []Indicator{IndicatorGDP, IndicatorGDPPerCapita, IndicatorInflation, IndicatorUnemployment}
}

// Query names one series: a country, an indicator, and a closed year window.
// Construct once per call; never mutated after validation.
type Query struct {
	CountryCode string
	Indicator   Indicator
	StartYear   int
	EndYear     int
}

func (q Query) Validate() error {
	if strings.TrimSpace(q.CountryCode) == "" {
		return fmt.Errorf("country code is required")
	}
	if strings.TrimSpace(string(q.Indicator)) == "" {
		return fmt.Errorf("indicator is required")
	}
	if q.StartYear > q.EndYear {
		return fmt.Errorf("start year %d is after end year %d", q.StartYear, q.EndYear)
	}
	return nil
}

func (q Query) String() string {
	return fmt.Sprintf("%s/%s %d:%d", strings.ToUpper(q.CountryCode), q.Indicator, q.StartYear, q.EndYear)
}

// Observation is one cleaned (year, value) data point.
type Observation struct {
	Year  int
	Value float64
}

// Series is a cleaned sequence of observations, ascending by year with no
// duplicate years. It owns its data; nothing downstream touches the response
// buffer it came from.
type Series []Observation

func (s Series) Years() []int {
	years := make([]int, len(s))
	for i, obs := range s {
		years[i] = obs.Year
	}
	return years
}

func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, obs := range s {
		values[i] = obs.Value
	}
	return values
}

func (s Series) First() Observation {
	if len(s) == 0 {
		return Observation{}
	}
	return s[0]
}

func (s Series) Last() Observation {
	if len(s) == 0 {
		return Observation{}
	}
	return s[len(s)-1]
}
