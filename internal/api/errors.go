package api

import (
	"errors"
	"net/http"

	"hltv-crawler/lib/rankingstore"
	"hltv-crawler/lib/scrapers/hltv"
)

var (
	ErrStoreDisabled   = errors.New("no ranking store is configured")
	ErrTeamNotRanked   = errors.New("team is not in the ranking")
	ErrPlayerNotRanked = errors.New("player is not on a ranked team")
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusOf maps an error to the status code it is reported with.
func statusOf(err error) int {
	var transportErr *hltv.TransportError
	switch {
	case errors.Is(err, hltv.ErrInvalidDateFormat),
		errors.Is(err, hltv.ErrInvalidRegion):
		return http.StatusBadRequest
	case errors.Is(err, rankingstore.ErrNotFound),
		errors.Is(err, ErrTeamNotRanked),
		errors.Is(err, ErrPlayerNotRanked):
		return http.StatusNotFound
	case errors.Is(err, ErrStoreDisabled):
		return http.StatusServiceUnavailable
	case errors.As(err, &transportErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
