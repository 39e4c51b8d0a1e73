package models

import "time"

// DefaultsResponse is the GET /productionplan/defaults payload: the config
// file's fuel defaults in request-body shape. Load is left at 0 and no
// plants are included.
type DefaultsResponse struct {
	Load  float64      `json:"load"`
	Fuels FuelsRequest `json:"fuels"`
}

// HistoryEntry is one stored plan, returned by GET /history.
type HistoryEntry struct {
	ID          int64     `json:"id"`
	RequestedAt time.Time `json:"requested_at"`
	Load        float64   `json:"load"`
	Feasible    bool      `json:"feasible"`
	Detail      string    `json:"detail,omitempty"`
}
