package worldbank

import (
	"fmt"

	"econseries/internal/model"
)

// NetworkError covers transport failures and non-success HTTP statuses.
// Potentially transient; callers may retry with the same query.
type NetworkError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("worldbank: request failed with status %d (%s)", e.StatusCode, e.Endpoint)
	}
	return fmt.Sprintf("worldbank: request failed (%s): %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// EmptyResultError means the provider returned no observation envelope for
// the query, which usually means an invalid country/indicator/date
// combination. Retrying without changing the query will not help.
type EmptyResultError struct {
	Query model.Query
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("worldbank: no data envelope for %s", e.Query)
}

// MalformedDataError means the envelope was present but its contents violate
// the provider contract, e.g. a year that does not parse. Unlike a missing
// value this is never skipped.
type MalformedDataError struct {
	Query  model.Query
	Detail string
}

func (e *MalformedDataError) Error() string {
	return fmt.Sprintf("worldbank: malformed data for %s: %s", e.Query, e.Detail)
}

// NoValidDataError means the envelope was present but every entry lacked a
// usable value. Distinct from EmptyResultError, which signals the envelope
// itself was absent.
type NoValidDataError struct {
	Query model.Query
}

func (e *NoValidDataError) Error() string {
	return fmt.Sprintf("worldbank: no valid observations for %s", e.Query)
}
