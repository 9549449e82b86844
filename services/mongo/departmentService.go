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

type mongoDepartmentService struct {
	logger               *zap.Logger
	departmentRepository *repositories.DepartmentRepository
}

// NewMongoDepartmentService creates a new DepartmentService that uses MongoDB as the storage technology
func NewMongoDepartmentService(logger *zap.Logger, departmentRepository *repositories.DepartmentRepository) services.DepartmentService {
	return &mongoDepartmentService{
		logger:               logger,
		departmentRepository: departmentRepository,
	}
}

func (s *mongoDepartmentService) CreateDepartment(ctx context.Context, name, code, hodID string) (*entities.Department, error) {
	department := &entities.Department{
		ID:   primitive.NewObjectID(),
		Name: name,
		Code: code,
	}

	if len(hodID) > 0 {
		hodMongoID, err := primitive.ObjectIDFromHex(hodID)
		if err != nil {
			return nil, services.ErrInvalidID
		}
		department.Hod = hodMongoID
	}

	_, err := s.departmentRepository.InsertOne(ctx, *department)
	if isDuplicateKeyError(err) {
		return nil, services.ErrNameTaken
	} else if err != nil {
		return nil, errors.Wrap(err, "could not create department")
	}

	return department, nil
}

func (s *mongoDepartmentService) GetDepartments(ctx context.Context) ([]entities.Department, error) {
	cur, err := s.departmentRepository.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "could not query for departments")
	}
	defer cur.Close(ctx)

	var departments []entities.Department
	for cur.Next(ctx) {
		var department entities.Department
		err := cur.Decode(&department)
		if err != nil {
			return nil, errors.Wrap(err, "could not decode department")
		}
		departments = append(departments, department)
	}

	return departments, nil
}

func (s *mongoDepartmentService) GetDepartmentWithID(ctx context.Context, departmentID string) (*entities.Department, error) {
	mongoID, err := primitive.ObjectIDFromHex(departmentID)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	res := s.departmentRepository.FindOne(ctx, bson.M{
		string(entities.DepartmentID): mongoID,
	})

	err = res.Err()
	if err == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "could not query for department with ID")
	}

	var department entities.Department
	err = res.Decode(&department)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode department")
	}

	return &department, nil
}

func (s *mongoDepartmentService) UpdateDepartmentWithID(ctx context.Context, departmentID string, params services.DepartmentUpdateParams) error {
	mongoID, err := primitive.ObjectIDFromHex(departmentID)
	if err != nil {
		return services.ErrInvalidID
	}

	res, err := s.departmentRepository.UpdateOne(ctx, bson.M{
		string(entities.DepartmentID): mongoID,
	}, bson.M{
		"$set": params,
	})
	if err != nil {
		return errors.Wrap(err, "could not update department")
	} else if res.MatchedCount == 0 {
		return services.ErrNotFound
	}

	return nil
}

func (s *mongoDepartmentService) DeleteDepartmentWithID(ctx context.Context, departmentID string) error {
	mongoID, err := primitive.ObjectIDFromHex(departmentID)
	if err != nil {
		return services.ErrInvalidID
	}

	res, err := s.departmentRepository.DeleteOne(ctx, bson.M{
		string(entities.DepartmentID): mongoID,
	})
	if err != nil {
		return errors.Wrap(err, "could not delete department")
	} else if res.DeletedCount == 0 {
		return services.ErrNotFound
	}

	return nil
}
