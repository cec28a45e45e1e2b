package hltv

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDateFormat = errors.New("hltv: invalid date format, expected YYYY-MM-DD")
	ErrInvalidRegion     = errors.New("hltv: invalid region")
	ErrMalformedFragment = errors.New("hltv: fragment does not contain a ranking entry")
	ErrMalformedDocument = errors.New("hltv: malformed document")
)

// TransportError is returned when a page could not be fetched successfully,
// either because the request failed (Err is set) or because the site
// answered with a status other than 200. requests are never retried.
type TransportError struct {
	Url        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("hltv: connection error: %s: %s", e.Url, e.Err.Error())
	}
	return fmt.Sprintf("hltv: connection error: %d (%s)", e.StatusCode, e.Url)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
