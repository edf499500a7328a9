package faceit

// Player is one candidate account returned by the player search
type Player struct {
	PlayerID string `json:"player_id"`
	Nickname string `json:"nickname"`
	Status   string `json:"status,omitempty"`
	Country  string `json:"country,omitempty"`
}

// SearchResponse represents the paginated player-search payload
type SearchResponse struct {
	Items []Player `json:"items"`
	Start int      `json:"start"`
	End   int      `json:"end"`
}

// SearchPage is one page of the paginated search. LastPage is derived from
// the item count, not the service's start/end fields, which are advisory.
type SearchPage struct {
	Players  []Player
	LastPage bool
}
