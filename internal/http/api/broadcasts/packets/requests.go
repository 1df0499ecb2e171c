package packets

// CreateBroadcastRequest carries a new broadcast. Pointer fields let the
// service report which required field is missing, in contract order.
type CreateBroadcastRequest struct {
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	MinyanType   *string  `json:"minyanType"`
	EarliestTime *string  `json:"earliestTime"`
	LatestTime   *string  `json:"latestTime"`
}

// UpdateBroadcastRequest carries a partial update; absent fields keep their
// stored values. The minyan type is immutable and not accepted here.
type UpdateBroadcastRequest struct {
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	EarliestTime *string  `json:"earliestTime"`
	LatestTime   *string  `json:"latestTime"`
}
