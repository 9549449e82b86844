package services

import (
	"context"
	"time"

	"github.com/innovcell/ic_events/entities"
)

// EventCreateParams holds the caller-supplied fields for a new event
type EventCreateParams struct {
	Title          string
	Description    string
	Eligibility    entities.EventEligibility
	RequiresMentor bool
	StartsAt       time.Time
	EndsAt         time.Time
}

// EventService is the service for interactions with the event collection.
// The registry treats an event's eligibility configuration as immutable.
type EventService interface {
	CreateEvent(ctx context.Context, creatorID string, params EventCreateParams) (*entities.Event, error)

	GetEvents(ctx context.Context) ([]entities.Event, error)
	GetEventsWithStatus(ctx context.Context, status entities.EventStatus) ([]entities.Event, error)
	GetEventWithID(ctx context.Context, eventID string) (*entities.Event, error)

	SetEventStatus(ctx context.Context, eventID string, status entities.EventStatus) (*entities.Event, error)
}
