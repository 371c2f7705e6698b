package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseIndicator(t *testing.T) {
	testCases := []struct {
		input    string
		expected Indicator
		wantErr  bool
	}{
		{input: "gdp", expected: IndicatorGDP},
		{input: "GDP", expected: IndicatorGDP},
		{input: "gdp-per-capita", expected: IndicatorGDPPerCapita},
		{input: "unemployment", expected: IndicatorUnemployment},
		{input: "inflation", expected: IndicatorInflation},
		{input: "NY.GDP.MKTP.CD", expected: IndicatorGDP},
		{input: "sl.uem.totl.zs", expected: IndicatorUnemployment},
		{input: "", wantErr: true},
		{input: "gdp-deflator", wantErr: true},
	}

	for _, tc := range testCases {
		indicator, err := ParseIndicator(tc.input)
		if tc.wantErr {
			require.Error(t, err, "input %q", tc.input)
			continue
		}
		require.NoError(t, err, "input %q", tc.input)
		require.Equal(t, tc.expected, indicator)
	}
}

func TestIndicatorTransform(t *testing.T) {
	require.InDelta(t, 21.0, IndicatorGDP.Transform(2.1e13), 1e-9)
	require.Equal(t, 52000.0, IndicatorGDPPerCapita.Transform(52000.0))
	require.Equal(t, 5.4, IndicatorUnemployment.Transform(5.4))
	require.Equal(t, 2.2, IndicatorInflation.Transform(2.2))
}

func TestQueryValidate(t *testing.T) {
	valid := Query{CountryCode: "CA", Indicator: IndicatorGDP, StartYear: 2013, EndYear: 2023}
	require.NoError(t, valid.Validate())

	testCases := []Query{
		{CountryCode: "", Indicator: IndicatorGDP, StartYear: 2013, EndYear: 2023},
		{CountryCode: "CA", Indicator: "", StartYear: 2013, EndYear: 2023},
		{CountryCode: "CA", Indicator: IndicatorGDP, StartYear: 2023, EndYear: 2013},
	}
	for _, query := range testCases {
		require.Error(t, query.Validate(), "query %+v", query)
	}
}

func TestSeriesAccessors(t *testing.T) {
	series := Series{
		{Year: 2019, Value: 20.0},
		{Year: 2020, Value: 21.0},
	}
	require.Equal(t, []int{2019, 2020}, series.Years())
	require.Equal(t, []float64{20.0, 21.0}, series.Values())
	require.Equal(t, Observation{Year: 2019, Value: 20.0}, series.First())
	require.Equal(t, Observation{Year: 2020, Value: 21.0}, series.Last())

	var empty Series
	require.Equal(t, Observation{}, empty.First())
	require.Equal(t, Observation{}, empty.Last())
}

func TestCountryName(t *testing.T) {
	require.Equal(t, "Canada", CountryName("ca"))
	require.Equal(t, "United States", CountryName("US"))
	require.Equal(t, "FR", CountryName("fr"))
}
