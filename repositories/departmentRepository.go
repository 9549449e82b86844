package repositories

import (
	"context"

	"github.com/innovcell/ic_events/entities"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/bsonx"
)

// DepartmentRepository is the repository for Department objects
type DepartmentRepository struct {
	*mongo.Collection
}

// NewDepartmentRepository creates a new DepartmentRepository
func NewDepartmentRepository(db *mongo.Database) (*DepartmentRepository, error) {
	_, err := db.Collection("departments").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bsonx.Doc{{Key: string(entities.DepartmentName), Value: bsonx.Int32(1)}},
			Options: options.Index().SetUnique(true),
		},
	)
	if err != nil {
		return nil, err
	}

	return &DepartmentRepository{
		Collection: db.Collection("departments"),
	}, nil
}
