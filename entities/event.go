package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventField string

const (
	EventID          EventField = "_id"
	EventTitle       EventField = "title"
	EventCreatedBy   EventField = "created_by"
	EventStatusField EventField = "status"
)

// EventStatus is a type for storing an event's publication lifecycle state
type EventStatus string

const (
	EventDraft    EventStatus = "draft"
	EventPending  EventStatus = "pending"
	EventApproved EventStatus = "approved"
	EventRejected EventStatus = "rejected"
)

// TeamSizeRange stores the allowed bounds for a team's size, creator included
type TeamSizeRange struct {
	Min int `json:"min" bson:"min"`
	Max int `json:"max" bson:"max"`
}

// EventEligibility stores the rules teams registering for the event must satisfy.
// Empty Departments or Years means the event is college-wide for that dimension.
type EventEligibility struct {
	TeamSize    TeamSizeRange        `json:"team_size" bson:"team_size"`
	Departments []primitive.ObjectID `json:"departments,omitempty" bson:"departments,omitempty"`
	Years       []int                `json:"years,omitempty" bson:"years,omitempty"`
}

// Event is the struct to store published events
type Event struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id"`
	Title          string             `json:"title" bson:"title" validate:"required"`
	Description    string             `json:"description" bson:"description"`
	CreatedBy      primitive.ObjectID `json:"created_by" bson:"created_by"`
	Status         EventStatus        `json:"status" bson:"status"`
	Eligibility    EventEligibility   `json:"eligibility" bson:"eligibility"`
	RequiresMentor bool               `json:"requires_mentor" bson:"requires_mentor"`
	StartsAt       time.Time          `json:"starts_at" bson:"starts_at"`
	EndsAt         time.Time          `json:"ends_at" bson:"ends_at"`
}
