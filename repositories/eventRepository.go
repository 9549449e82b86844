package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// EventRepository is the repository for Event objects
type EventRepository struct {
	*mongo.Collection
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{
		Collection: db.Collection("events"),
	}
}
