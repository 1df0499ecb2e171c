// Package broadcast implements the four broadcast operations: create,
// find-nearby, update and delete. All state lives in the store; the service
// itself is stateless and safe for concurrent use.
package broadcast

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/minyanfinder/backend/internal/db"
	"github.com/minyanfinder/backend/internal/geo"
	"github.com/minyanfinder/backend/internal/model"
	"github.com/minyanfinder/backend/internal/validate"
)

// CreateInput carries the fields of a new broadcast. All fields are required;
// pointers distinguish absent from zero-valued.
type CreateInput struct {
	Latitude     *float64
	Longitude    *float64
	MinyanType   *string
	EarliestTime *string
	LatestTime   *string
}

// FindNearbyInput carries a proximity query. MinyanType is an optional filter.
type FindNearbyInput struct {
	Latitude   *float64
	Longitude  *float64
	Radius     *float64
	MinyanType *string
}

// UpdateInput carries a partial update. Absent fields keep their stored
// values; the minyan type is not updatable.
type UpdateInput struct {
	Latitude     *float64
	Longitude    *float64
	EarliestTime *string
	LatestTime   *string
}

type Service struct {
	store db.Store
}

func NewService(store db.Store) *Service {
	return &Service{store: store}
}

// Create validates the input, persists a new active broadcast and returns
// its id. Validation order: required fields (latitude, longitude, minyanType,
// earliestTime, latestTime), coordinate ranges, minyan type, timestamp
// parsing, then the time-window ordering.
func (s *Service) Create(input CreateInput) (string, error) {
	required := []struct {
		name    string
		present bool
	}{
		{"latitude", input.Latitude != nil},
		{"longitude", input.Longitude != nil},
		{"minyanType", input.MinyanType != nil},
		{"earliestTime", input.EarliestTime != nil},
		{"latestTime", input.LatestTime != nil},
	}
	for _, field := range required {
		if !field.present {
			return "", &ValidationError{Message: "Missing required field: " + field.name}
		}
	}

	if err := validate.Coordinates(*input.Latitude, *input.Longitude); err != nil {
		return "", &ValidationError{Message: err.Error()}
	}
	if err := validate.MinyanType(*input.MinyanType); err != nil {
		return "", &ValidationError{Message: err.Error()}
	}

	earliest, err := parseTime(*input.EarliestTime)
	if err != nil {
		return "", &ValidationError{Message: fmt.Sprintf("Invalid earliestTime format: %v", err)}
	}
	latest, err := parseTime(*input.LatestTime)
	if err != nil {
		return "", &ValidationError{Message: fmt.Sprintf("Invalid latestTime format: %v", err)}
	}
	if !latest.After(earliest) {
		return "", &ValidationError{Message: "latestTime must be after earliestTime"}
	}

	b := &model.Broadcast{
		ID:           uuid.NewString(),
		Latitude:     *input.Latitude,
		Longitude:    *input.Longitude,
		MinyanType:   *input.MinyanType,
		EarliestTime: earliest,
		LatestTime:   latest,
		Active:       true,
	}
	if err := s.store.CreateBroadcast(b); err != nil {
		return "", &StoreError{Err: err}
	}
	return b.ID, nil
}

// FindNearby returns the active broadcasts within the given radius (miles,
// inclusive boundary) of the query point, optionally narrowed by minyan type.
// The scan is unbounded: every active broadcast is loaded and filtered by
// great-circle distance.
func (s *Service) FindNearby(input FindNearbyInput) ([]model.Broadcast, error) {
	if input.Latitude == nil {
		return nil, &ValidationError{Message: "Missing required parameter: latitude"}
	}
	if input.Longitude == nil {
		return nil, &ValidationError{Message: "Missing required parameter: longitude"}
	}
	if input.Radius == nil {
		return nil, &ValidationError{Message: "Missing required parameter: radius"}
	}

	if err := validate.Coordinates(*input.Latitude, *input.Longitude); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	if *input.Radius < 0 {
		return nil, &ValidationError{Message: "Radius must be non-negative"}
	}
	if input.MinyanType != nil {
		if err := validate.MinyanType(*input.MinyanType); err != nil {
			return nil, &ValidationError{Message: err.Error()}
		}
	}

	active, err := s.store.ListActiveBroadcasts(input.MinyanType)
	if err != nil {
		return nil, &StoreError{Err: err}
	}

	nearby := make([]model.Broadcast, 0, len(active))
	for _, b := range active {
		distance := geo.Distance(*input.Latitude, *input.Longitude, b.Latitude, b.Longitude)
		if distance <= *input.Radius {
			nearby = append(nearby, b)
		}
	}
	return nearby, nil
}

// Update applies a partial update to an existing broadcast. Coordinates are
// merged with the stored pair and validated together before either is
// assigned. Provided time fields are assigned in order (earliest, then
// latest) and the window ordering is checked once against the resulting
// record, so a single-field update is validated against the stored value of
// the other field.
func (s *Service) Update(id string, input UpdateInput) error {
	b, err := s.store.GetBroadcastByID(id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return &NotFoundError{Resource: "Broadcast"}
		}
		return &StoreError{Err: err}
	}

	if input.Latitude != nil || input.Longitude != nil {
		latitude, longitude := b.Latitude, b.Longitude
		if input.Latitude != nil {
			latitude = *input.Latitude
		}
		if input.Longitude != nil {
			longitude = *input.Longitude
		}
		if err := validate.Coordinates(latitude, longitude); err != nil {
			return &ValidationError{Message: err.Error()}
		}
		b.Latitude, b.Longitude = latitude, longitude
	}

	if input.EarliestTime != nil {
		earliest, err := parseTime(*input.EarliestTime)
		if err != nil {
			return &ValidationError{Message: fmt.Sprintf("Invalid earliestTime format: %v", err)}
		}
		b.EarliestTime = earliest
	}
	if input.LatestTime != nil {
		latest, err := parseTime(*input.LatestTime)
		if err != nil {
			return &ValidationError{Message: fmt.Sprintf("Invalid latestTime format: %v", err)}
		}
		b.LatestTime = latest
	}

	if !b.LatestTime.After(b.EarliestTime) {
		return &ValidationError{Message: "latestTime must be after earliestTime"}
	}

	if err := s.store.UpdateBroadcast(&b); err != nil {
		return &StoreError{Err: err}
	}
	return nil
}

// Delete removes a broadcast permanently. Deleting an absent or already
// deleted id reports NotFoundError.
func (s *Service) Delete(id string) error {
	if _, err := s.store.GetBroadcastByID(id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return &NotFoundError{Resource: "Broadcast"}
		}
		return &StoreError{Err: err}
	}
	if err := s.store.DeleteBroadcast(id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return &NotFoundError{Resource: "Broadcast"}
		}
		return &StoreError{Err: err}
	}
	return nil
}

// parseTime accepts ISO-8601 timestamps with an offset, including a literal
// trailing "Z" for UTC.
func parseTime(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}
