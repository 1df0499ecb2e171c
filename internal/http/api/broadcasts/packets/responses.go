package packets

type CreateBroadcastResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type UpdateBroadcastResponse struct {
	Message string `json:"message"`
}

// BroadcastResponse is a broadcast record as serialized to callers;
// timestamps are RFC 3339.
type BroadcastResponse struct {
	ID           string  `json:"id"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	MinyanType   string  `json:"minyanType"`
	EarliestTime string  `json:"earliestTime"`
	LatestTime   string  `json:"latestTime"`
	Active       bool    `json:"active"`
}
