package model

import "time"

// Broadcast is a posted request for a prayer quorum at a place and time window.
type Broadcast struct {
	ID           string    `db:"id"            json:"id"`
	Latitude     float64   `db:"latitude"      json:"latitude"`
	Longitude    float64   `db:"longitude"     json:"longitude"`
	MinyanType   string    `db:"minyan_type"   json:"minyanType"`
	EarliestTime time.Time `db:"earliest_time" json:"earliestTime"`
	LatestTime   time.Time `db:"latest_time"   json:"latestTime"`
	Active       bool      `db:"active"        json:"active"`
	CreatedAt    time.Time `db:"created_at"    json:"-"`
	UpdatedAt    time.Time `db:"updated_at"    json:"-"`
}
