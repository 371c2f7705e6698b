package worldbank

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"econseries/internal/model"
	"econseries/internal/providers"
)

const (
	defaultBaseURL        = "https://api.worldbank.org/v2"
	defaultFormat         = "json"
	defaultPerPage        = 100
	defaultTimeoutSeconds = 10
	defaultUserAgent      = "econseries/0.1"
)

type Config struct {
	BaseURL   string
	Format    string
	PerPage   int
	Timeout   time.Duration
	UserAgent string
}

// Provider fetches indicator series from the World Bank v2 API. One query in
// flight at a time; a single GET per query, no retries.
type Provider struct {
	config Config
	client *resty.Client
}

func New() *Provider {
	return NewWithConfig(ConfigFromEnv())
}

func NewWithConfig(cfg Config) *Provider {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if strings.TrimSpace(cfg.Format) == "" {
		cfg.Format = defaultFormat
	}
	if cfg.PerPage <= 0 {
		cfg.PerPage = defaultPerPage
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeoutSeconds * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	client := resty.New()
	client.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/"))
	client.SetTimeout(cfg.Timeout)
	client.SetHeader("User-Agent", cfg.UserAgent)
	client.SetHeader("Accept", "application/json")

	return &Provider{config: cfg, client: client}
}

func ConfigFromEnv() Config {
	return Config{
		BaseURL:   getenv("WORLDBANK_BASE_URL", defaultBaseURL),
		Format:    getenv("WORLDBANK_FORMAT", defaultFormat),
		PerPage:   getenvInt("WORLDBANK_PER_PAGE", defaultPerPage),
		Timeout:   time.Duration(getenvInt("WORLDBANK_TIMEOUT_SECONDS", defaultTimeoutSeconds)) * time.Second,
		UserAgent: getenv("WORLDBANK_USER_AGENT", defaultUserAgent),
	}
}

func (p *Provider) Name() string {
	return "worldbank"
}

// RawObservation is one entry of the provider's observation envelope. Fields
// beyond the year and the value are ignored.
type RawObservation struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// Fetch performs the network call for a query and returns the raw
// observations from the provider's [metadata, observations] envelope. It does
// not interpret the entries beyond confirming the envelope shape.
func (p *Provider) Fetch(ctx context.Context, query model.Query) ([]RawObservation, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	endpoint := p.endpointPath(query)
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"format":   p.config.Format,
			"date":     fmt.Sprintf("%d:%d", query.StartYear, query.EndYear),
			"per_page": strconv.Itoa(p.config.PerPage),
		}).
		Get(endpoint)
	if err != nil {
		return nil, &NetworkError{Endpoint: endpoint, Err: err}
	}
	if resp.IsError() {
		return nil, &NetworkError{Endpoint: endpoint, StatusCode: resp.StatusCode()}
	}

	var envelope []json.RawMessage
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, &MalformedDataError{Query: query, Detail: fmt.Sprintf("response is not an envelope: %v", err)}
	}
	if len(envelope) < 2 {
		return nil, &EmptyResultError{Query: query}
	}

	var raw []RawObservation
	if err := json.Unmarshal(envelope[1], &raw); err != nil {
		return nil, &MalformedDataError{Query: query, Detail: fmt.Sprintf("observation list does not decode: %v", err)}
	}
	if len(raw) == 0 {
		return nil, &EmptyResultError{Query: query}
	}
	return raw, nil
}

// FetchSeries is the whole pipeline: fetch, then normalize. Failures from
// either stage propagate unchanged; callers decide whether to retry or skip.
func (p *Provider) FetchSeries(ctx context.Context, query model.Query) (model.Series, error) {
	raw, err := p.Fetch(ctx, query)
	if err != nil {
		return nil, err
	}
	return Normalize(query, raw)
}

func (p *Provider) endpointPath(query model.Query) string {
	return fmt.Sprintf("/country/%s/indicator/%s",
		url.PathEscape(strings.ToUpper(strings.TrimSpace(query.CountryCode))),
		url.PathEscape(string(query.Indicator)),
	)
}

func getenv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

var _ providers.Provider = (*Provider)(nil)
