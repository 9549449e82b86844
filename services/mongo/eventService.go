package mongo

import (
	"context"

	"github.com/innovcell/ic_events/entities"
	"github.com/innovcell/ic_events/repositories"
	"github.com/innovcell/ic_events/services"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type mongoEventService struct {
	logger          *zap.Logger
	eventRepository *repositories.EventRepository
}

// NewMongoEventService creates a new EventService that uses MongoDB as the storage technology
func NewMongoEventService(logger *zap.Logger, eventRepository *repositories.EventRepository) services.EventService {
	return &mongoEventService{
		logger:          logger,
		eventRepository: eventRepository,
	}
}

func (s *mongoEventService) CreateEvent(ctx context.Context, creatorID string, params services.EventCreateParams) (*entities.Event, error) {
	creatorMongoID, err := primitive.ObjectIDFromHex(creatorID)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	event := &entities.Event{
		ID:             primitive.NewObjectID(),
		Title:          params.Title,
		Description:    params.Description,
		CreatedBy:      creatorMongoID,
		Status:         entities.EventPending,
		Eligibility:    params.Eligibility,
		RequiresMentor: params.RequiresMentor,
		StartsAt:       params.StartsAt,
		EndsAt:         params.EndsAt,
	}

	_, err = s.eventRepository.InsertOne(ctx, *event)
	if err != nil {
		return nil, errors.Wrap(err, "could not create event")
	}

	return event, nil
}

func (s *mongoEventService) GetEvents(ctx context.Context) ([]entities.Event, error) {
	return s.findEvents(ctx, bson.M{})
}

func (s *mongoEventService) GetEventsWithStatus(ctx context.Context, status entities.EventStatus) ([]entities.Event, error) {
	return s.findEvents(ctx, bson.M{
		string(entities.EventStatusField): status,
	})
}

func (s *mongoEventService) GetEventWithID(ctx context.Context, eventID string) (*entities.Event, error) {
	mongoID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	res := s.eventRepository.FindOne(ctx, bson.M{
		string(entities.EventID): mongoID,
	})

	event, err := decodeEventResult(res)
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "could not query for event with ID")
	}

	return event, nil
}

func (s *mongoEventService) SetEventStatus(ctx context.Context, eventID string, status entities.EventStatus) (*entities.Event, error) {
	mongoID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	res, err := s.eventRepository.UpdateOne(ctx, bson.M{
		string(entities.EventID): mongoID,
	}, bson.M{
		"$set": bson.M{
			string(entities.EventStatusField): status,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not update event status")
	} else if res.MatchedCount == 0 {
		return nil, services.ErrNotFound
	}

	return s.GetEventWithID(ctx, eventID)
}

func (s *mongoEventService) findEvents(ctx context.Context, filter bson.M) ([]entities.Event, error) {
	cur, err := s.eventRepository.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "could not query for events")
	}
	defer cur.Close(ctx)

	var events []entities.Event
	for cur.Next(ctx) {
		var event entities.Event
		err := cur.Decode(&event)
		if err != nil {
			return nil, errors.Wrap(err, "could not decode event")
		}
		events = append(events, event)
	}

	return events, nil
}

func decodeEventResult(res *mongo.SingleResult) (*entities.Event, error) {
	err := res.Err()
	if err != nil {
		return nil, errors.Wrap(err, "query returned error")
	}

	var event entities.Event
	err = res.Decode(&event)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode event")
	}

	return &event, nil
}
