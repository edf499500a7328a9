package faceit

import (
	"fmt"
	"net/url"
)

const (
	// DefaultBaseURL is the base URL for the platform's open data API
	DefaultBaseURL = "https://open.faceit.com/data/v4"

	// SearchPlayersEndpoint is the endpoint for searching players by nickname
	SearchPlayersEndpoint = "/search/players"

	// DefaultPageLimit is the default number of players fetched per page
	DefaultPageLimit = 100

	// MaxPageLimit is the page size cap enforced by the service
	MaxPageLimit = 100
)

// SearchPlayersURL constructs the URL for one page of a player search
func SearchPlayersURL(baseURL, nickname string, offset, limit int) string {
	if limit <= 0 {
		limit = DefaultPageLimit
	} else if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	params := url.Values{}
	params.Set("nickname", nickname)
	params.Set("offset", fmt.Sprintf("%d", offset))
	params.Set("limit", fmt.Sprintf("%d", limit))

	return fmt.Sprintf("%s%s?%s", baseURL, SearchPlayersEndpoint, params.Encode())
}
