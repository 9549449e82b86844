package repositories

import (
	"context"

	"github.com/innovcell/ic_events/entities"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/bsonx"
)

// TeamRepository is the repository for Team objects
type TeamRepository struct {
	*mongo.Collection
}

// NewTeamRepository creates a new TeamRepository.
// The unique indexes on (event, members.user) and (event, mentor.user) make
// the persistence layer the final arbiter on duplicate membership: two
// concurrent team creations sharing a member cannot both insert, closing the
// check-then-act window in the service layer.
func NewTeamRepository(db *mongo.Database) (*TeamRepository, error) {
	indexes := []mongo.IndexModel{
		{
			Keys: bsonx.Doc{
				{Key: string(entities.TeamEvent), Value: bsonx.Int32(1)},
				{Key: string(entities.TeamMembersUser), Value: bsonx.Int32(1)},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bsonx.Doc{
				{Key: string(entities.TeamEvent), Value: bsonx.Int32(1)},
				{Key: string(entities.TeamMentorUser), Value: bsonx.Int32(1)},
			},
			Options: options.Index().SetUnique(true).SetPartialFilterExpression(bson.M{
				string(entities.TeamMentorUser): bson.M{"$exists": true},
			}),
		},
	}

	_, err := db.Collection("teams").Indexes().CreateMany(context.Background(), indexes)
	if err != nil {
		return nil, err
	}

	return &TeamRepository{
		Collection: db.Collection("teams"),
	}, nil
}
