// Package config loads the optional run profile used by the comparison and
// export views.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"econseries/internal/model"
)

var (
	ErrNoCountries   = errors.New("at least one country is required")
	ErrEmptyCode     = errors.New("country code is required")
	ErrNoIndicators  = errors.New("at least one indicator is required")
	ErrInvalidWindow = errors.New("window start must not be after window end")
)

const (
	defaultStartYear = 2013
	defaultEndYear   = 2023
)

// Profile describes one run: which countries, which indicators, which years.
type Profile struct {
	Countries  []Country `yaml:"countries"`
	Indicators []string  `yaml:"indicators"`
	Window     Window    `yaml:"window"`
}

type Country struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

type Window struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Default mirrors the comparison set and window the tool shipped with.
func Default() Profile {
	countries := make([]Country, 0, len(model.DefaultCountries))
	for _, country := range model.DefaultCountries {
		countries = append(countries, Country{Code: country.Code, Name: country.Name})
	}
	indicators := make([]string, 0, len(model.AllIndicators()))
	for _, indicator := range model.AllIndicators() {
		indicators = append(indicators, string(indicator))
	}
	return Profile{
		Countries:  countries,
		Indicators: indicators,
		Window:     Window{Start: defaultStartYear, End: defaultEndYear},
	}
}

// Load reads and validates a profile file. Missing window bounds fall back to
// the defaults.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return Profile{}, fmt.Errorf("parse profile: %w", err)
	}
	if profile.Window.Start == 0 {
		profile.Window.Start = defaultStartYear
	}
	if profile.Window.End == 0 {
		profile.Window.End = defaultEndYear
	}
	if err := profile.Validate(); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

func (p Profile) Validate() error {
	if len(p.Countries) == 0 {
		return ErrNoCountries
	}
	for _, country := range p.Countries {
		if strings.TrimSpace(country.Code) == "" {
			return ErrEmptyCode
		}
	}
	if len(p.Indicators) == 0 {
		return ErrNoIndicators
	}
	if _, err := p.ResolveIndicators(); err != nil {
		return err
	}
	if p.Window.Start > p.Window.End {
		return ErrInvalidWindow
	}
	return nil
}

// ResolveIndicators maps the profile's indicator names (aliases or codes) to
// indicator codes.
func (p Profile) ResolveIndicators() ([]model.Indicator, error) {
	resolved := make([]model.Indicator, 0, len(p.Indicators))
	for _, name := range p.Indicators {
		indicator, err := model.ParseIndicator(name)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, indicator)
	}
	return resolved, nil
}
