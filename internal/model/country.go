package model

import "strings"

// Country pairs an ISO-2 code with a display name for the comparison views.
type Country struct {
	Code string
	Name string
}

// DefaultCountries is the comparison set used when no profile is given.
var DefaultCountries = []Country{
	{Code: "CA", Name: "Canada"},
	{Code: "US", Name: "United States"},
	{Code: "GB", Name: "United Kingdom"},
	{Code: "DE", Name: "Germany"},
	{Code: "JP", Name: "Japan"},
}

// CountryName returns the known display name for a code, or the upper-cased
// code itself when the country is not in the default set.
func CountryName(code string) string {
	upper := strings.ToUpper(strings.TrimSpace(code))
	for _, country := range DefaultCountries {
		if country.Code == upper {
			return country.Name
		}
	}
	return upper
}
