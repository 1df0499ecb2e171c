package endpoints

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/minyanfinder/backend/internal/broadcast"
	"github.com/minyanfinder/backend/internal/db"
	"github.com/minyanfinder/backend/internal/http/api"
	"github.com/minyanfinder/backend/internal/http/api/broadcasts/packets"
)

type BroadcastController struct {
	service *broadcast.Service
}

func newBroadcastController(store db.Store) *BroadcastController {
	return &BroadcastController{service: broadcast.NewService(store)}
}

// BroadcastModule mounts the /broadcasts endpoints.
func BroadcastModule(store db.Store) api.Module {
	ctl := newBroadcastController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/broadcasts", ctl.createBroadcast)
		c.GET("/broadcasts/nearby", ctl.findNearby)
		c.PUT("/broadcasts/:id", ctl.updateBroadcast)
		c.DELETE("/broadcasts/:id", ctl.deleteBroadcast)
	})
}

// POST /broadcasts
func (b *BroadcastController) createBroadcast(ctx *gin.Context) (any, *api.APIError) {
	var request packets.CreateBroadcastRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	id, err := b.service.Create(broadcast.CreateInput{
		Latitude:     request.Latitude,
		Longitude:    request.Longitude,
		MinyanType:   request.MinyanType,
		EarliestTime: request.EarliestTime,
		LatestTime:   request.LatestTime,
	})
	if err != nil {
		return nil, apiError(err)
	}

	return packets.CreateBroadcastResponse{
		ID:      id,
		Message: "Broadcast created successfully",
	}, nil
}

// GET /broadcasts/nearby
func (b *BroadcastController) findNearby(ctx *gin.Context) (any, *api.APIError) {
	var input broadcast.FindNearbyInput
	var apiErr *api.APIError

	if input.Latitude, apiErr = queryFloat(ctx, "latitude"); apiErr != nil {
		return nil, apiErr
	}
	if input.Longitude, apiErr = queryFloat(ctx, "longitude"); apiErr != nil {
		return nil, apiErr
	}
	if input.Radius, apiErr = queryFloat(ctx, "radius"); apiErr != nil {
		return nil, apiErr
	}
	if minyanType := ctx.Query("minyanType"); minyanType != "" {
		input.MinyanType = &minyanType
	}

	found, err := b.service.FindNearby(input)
	if err != nil {
		return nil, apiError(err)
	}

	out := make([]packets.BroadcastResponse, 0, len(found))
	for _, record := range found {
		out = append(out, packets.BroadcastResponse{
			ID:           record.ID,
			Latitude:     record.Latitude,
			Longitude:    record.Longitude,
			MinyanType:   record.MinyanType,
			EarliestTime: record.EarliestTime.Format(time.RFC3339),
			LatestTime:   record.LatestTime.Format(time.RFC3339),
			Active:       record.Active,
		})
	}
	return out, nil
}

// PUT /broadcasts/:id
func (b *BroadcastController) updateBroadcast(ctx *gin.Context) (any, *api.APIError) {
	id := ctx.Param("id")

	var request packets.UpdateBroadcastRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	err := b.service.Update(id, broadcast.UpdateInput{
		Latitude:     request.Latitude,
		Longitude:    request.Longitude,
		EarliestTime: request.EarliestTime,
		LatestTime:   request.LatestTime,
	})
	if err != nil {
		return nil, apiError(err)
	}

	return packets.UpdateBroadcastResponse{Message: "Broadcast updated successfully"}, nil
}

// DELETE /broadcasts/:id
func (b *BroadcastController) deleteBroadcast(ctx *gin.Context) (any, *api.APIError) {
	if err := b.service.Delete(ctx.Param("id")); err != nil {
		return nil, apiError(err)
	}
	return nil, nil
}

// queryFloat reads an optional float query parameter. Absent parameters are
// reported by the service so the missing-parameter ordering stays in one
// place; an unparsable value is rejected here.
func queryFloat(ctx *gin.Context, name string) (*float64, *api.APIError) {
	raw, ok := ctx.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "Invalid " + name + ": must be a number"}
	}
	return &value, nil
}

func apiError(err error) *api.APIError {
	var verr *broadcast.ValidationError
	if errors.As(err, &verr) {
		return &api.APIError{Code: http.StatusBadRequest, Message: verr.Message}
	}
	var nerr *broadcast.NotFoundError
	if errors.As(err, &nerr) {
		return &api.APIError{Code: http.StatusNotFound, Message: nerr.Error()}
	}
	log.Error().Err(err).Msg("broadcast operation failed")
	return &api.APIError{Code: http.StatusInternalServerError, Message: "internal error"}
}
