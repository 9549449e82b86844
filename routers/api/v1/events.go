package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/innovcell/ic_events/entities"
	"github.com/innovcell/ic_events/routers/api/models"
	"github.com/innovcell/ic_events/services"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type createEventReq struct {
	Title          string                    `json:"title" binding:"required"`
	Description    string                    `json:"description"`
	Eligibility    entities.EventEligibility `json:"eligibility"`
	RequiresMentor bool                      `json:"requires_mentor"`
	StartsAt       time.Time                 `json:"starts_at"`
	EndsAt         time.Time                 `json:"ends_at"`
}

// POST: /api/v1/events
// application/json, createEventReq
// Response: event entities.Event
// Headers:  Authorization -> token
func (r *apiV1Router) CreateEvent(ctx *gin.Context) {
	claims := extractClaimsFromCtx(ctx)
	if claims == nil {
		r.HandleUnauthorized(ctx)
		return
	}

	var req createEventReq
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		r.logger.Debug("could not parse create event request", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, "failed to parse request")
		return
	}

	event, err := r.eventService.CreateEvent(ctx, claims.Id, services.EventCreateParams{
		Title:          req.Title,
		Description:    req.Description,
		Eligibility:    req.Eligibility,
		RequiresMentor: req.RequiresMentor,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
	})
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid creator id", zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid user id")
		default:
			r.logger.Error("could not create event", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, createEventRes{
		Response: models.Response{Status: http.StatusOK},
		Event:    *event,
	})
}

// GET: /api/v1/events?status=approved
// Response: events []entities.Event
// Headers:  Authorization -> token
func (r *apiV1Router) GetEvents(ctx *gin.Context) {
	var (
		events []entities.Event
		err    error
	)
	status := ctx.Query("status")
	if len(status) > 0 {
		events, err = r.eventService.GetEventsWithStatus(ctx, entities.EventStatus(status))
	} else {
		events, err = r.eventService.GetEvents(ctx)
	}
	if err != nil {
		r.logger.Error("could not fetch events", zap.Error(err))
		models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		return
	}

	ctx.JSON(http.StatusOK, getEventsRes{
		Response: models.Response{Status: http.StatusOK},
		Events:   events,
	})
}

// GET: /api/v1/events/:id
// Response: event entities.Event
// Headers:  Authorization -> token
func (r *apiV1Router) GetEvent(ctx *gin.Context) {
	event, err := r.eventService.GetEventWithID(ctx, ctx.Param("id"))
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid event id", zap.String("id", ctx.Param("id")))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid event id")
		case services.ErrNotFound:
			r.logger.Debug("event not found", zap.String("id", ctx.Param("id")))
			models.SendAPIError(ctx, http.StatusNotFound, "event not found")
		default:
			r.logger.Error("could not fetch event", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, getEventRes{
		Response: models.Response{Status: http.StatusOK},
		Event:    *event,
	})
}

// PUT: /api/v1/events/:id/status
// x-www-form-urlencoded
// Request:  status string
// Response: event entities.Event
// Headers:  Authorization -> token
func (r *apiV1Router) SetEventStatus(ctx *gin.Context) {
	status := entities.EventStatus(ctx.PostForm("status"))
	switch status {
	case entities.EventDraft, entities.EventPending, entities.EventApproved, entities.EventRejected:
	default:
		r.logger.Debug("unknown event status", zap.String("status", string(status)))
		models.SendAPIError(ctx, http.StatusBadRequest, "unknown event status")
		return
	}

	event, err := r.eventService.SetEventStatus(ctx, ctx.Param("id"), status)
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid event id", zap.String("id", ctx.Param("id")))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid event id")
		case services.ErrNotFound:
			r.logger.Debug("event not found", zap.String("id", ctx.Param("id")))
			models.SendAPIError(ctx, http.StatusNotFound, "event not found")
		default:
			r.logger.Error("could not update event status", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, getEventRes{
		Response: models.Response{Status: http.StatusOK},
		Event:    *event,
	})
}
