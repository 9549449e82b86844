package repositories

import (
	"context"

	"github.com/innovcell/ic_events/entities"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/bsonx"
)

// UserRepository is the repository for User objects
type UserRepository struct {
	*mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) (*UserRepository, error) {
	_, err := db.Collection("users").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bsonx.Doc{{Key: string(entities.UserEmail), Value: bsonx.Int32(1)}},
			Options: options.Index().SetUnique(true),
		},
	)
	if err != nil {
		return nil, err
	}

	return &UserRepository{
		Collection: db.Collection("users"),
	}, nil
}
