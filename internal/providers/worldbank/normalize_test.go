package worldbank

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"econseries/internal/model"
)

func fptr(v float64) *float64 {
	return &v
}

func gdpQuery() model.Query {
	return model.Query{
		CountryCode: "US",
		Indicator:   model.IndicatorGDP,
		StartYear:   2013,
		EndYear:     2023,
	}
}

func unemploymentQuery() model.Query {
	return model.Query{
		CountryCode: "CA",
		Indicator:   model.IndicatorUnemployment,
		StartYear:   2013,
		EndYear:     2023,
	}
}

func TestNormalizeSortsAndConvertsGDP(t *testing.T) {
	raw := []RawObservation{
		{Date: "2020", Value: fptr(2.1e13)},
		{Date: "2019", Value: fptr(2.0e13)},
		{Date: "2021", Value: nil},
	}

	series, err := Normalize(gdpQuery(), raw)
	require.NoError(t, err)
	require.Equal(t, model.Series{
		{Year: 2019, Value: 20.0},
		{Year: 2020, Value: 21.0},
	}, series)
}

func TestNormalizeEmptyInput(t *testing.T) {
	_, err := Normalize(gdpQuery(), []RawObservation{})

	var noData *NoValidDataError
	require.ErrorAs(t, err, &noData)
	require.Equal(t, gdpQuery(), noData.Query)
}

func TestNormalizeAllValuesMissing(t *testing.T) {
	raw := []RawObservation{
		{Date: "2019", Value: nil},
		{Date: "2020", Value: nil},
	}

	_, err := Normalize(unemploymentQuery(), raw)

	var noData *NoValidDataError
	require.ErrorAs(t, err, &noData)
}

func TestNormalizeUnparseableYear(t *testing.T) {
	raw := []RawObservation{
		{Date: "abcd", Value: fptr(5.0)},
	}

	_, err := Normalize(gdpQuery(), raw)

	var malformed *MalformedDataError
	require.ErrorAs(t, err, &malformed)
	require.Contains(t, malformed.Detail, "abcd")
}

func TestNormalizeUnparseableYearAmongGoodRows(t *testing.T) {
	// A bad year is a contract violation even when other rows are fine.
	raw := []RawObservation{
		{Date: "2019", Value: fptr(5.0)},
		{Date: "20-19", Value: fptr(6.0)},
	}

	_, err := Normalize(unemploymentQuery(), raw)

	var malformed *MalformedDataError
	require.ErrorAs(t, err, &malformed)
}

func TestNormalizeSkipsMissingValueWithBadDate(t *testing.T) {
	// Missing values are filtered before the year is inspected.
	raw := []RawObservation{
		{Date: "not-a-year", Value: nil},
		{Date: "2020", Value: fptr(5.5)},
	}

	series, err := Normalize(unemploymentQuery(), raw)
	require.NoError(t, err)
	require.Equal(t, model.Series{{Year: 2020, Value: 5.5}}, series)
}

func TestNormalizeDuplicateYearFirstWins(t *testing.T) {
	raw := []RawObservation{
		{Date: "2020", Value: fptr(7.0)},
		{Date: "2020", Value: fptr(9.0)},
	}

	series, err := Normalize(unemploymentQuery(), raw)
	require.NoError(t, err)
	require.Equal(t, model.Series{{Year: 2020, Value: 7.0}}, series)
}

func TestNormalizeOutputAscendingByYear(t *testing.T) {
	raw := []RawObservation{
		{Date: "2023", Value: fptr(1.0)},
		{Date: "2013", Value: fptr(2.0)},
		{Date: "2019", Value: fptr(3.0)},
		{Date: "2016", Value: fptr(4.0)},
		{Date: "2021", Value: nil},
	}

	series, err := Normalize(unemploymentQuery(), raw)
	require.NoError(t, err)
	for i := 1; i < len(series); i++ {
		require.Less(t, series[i-1].Year, series[i].Year)
	}
	// Filtering law: never more rows out than non-nil values in.
	require.LessOrEqual(t, len(series), 4)
}

func TestNormalizeIdempotentOnCleanInput(t *testing.T) {
	raw := []RawObservation{
		{Date: "2013", Value: fptr(6.9)},
		{Date: "2014", Value: fptr(7.1)},
		{Date: "2015", Value: fptr(6.8)},
	}

	query := unemploymentQuery()
	first, err := Normalize(query, raw)
	require.NoError(t, err)

	// Pass-through indicator, so the output can be fed straight back in.
	again := make([]RawObservation, 0, len(first))
	for _, obs := range first {
		value := obs.Value
		again = append(again, RawObservation{Date: formatYear(obs.Year), Value: &value})
	}
	second, err := Normalize(query, again)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestNormalizeTransformLaw(t *testing.T) {
	rawValues := []float64{1.2e12, 2.5e13, 9.87e11}

	raw := make([]RawObservation, 0, len(rawValues))
	for i, value := range rawValues {
		v := value
		raw = append(raw, RawObservation{Date: formatYear(2013 + i), Value: &v})
	}

	gdpSeries, err := Normalize(gdpQuery(), raw)
	require.NoError(t, err)
	for i, obs := range gdpSeries {
		require.InDelta(t, rawValues[i]/1e12, obs.Value, 1e-9)
	}

	passSeries, err := Normalize(unemploymentQuery(), raw)
	require.NoError(t, err)
	for i, obs := range passSeries {
		require.Equal(t, rawValues[i], obs.Value)
	}
}

func formatYear(year int) string {
	return strconv.Itoa(year)
}
