package mongo

import (
	"context"

	"github.com/innovcell/ic_events/config/role"
	"github.com/innovcell/ic_events/entities"
	"github.com/innovcell/ic_events/repositories"
	"github.com/innovcell/ic_events/services"
	"github.com/innovcell/ic_events/utils"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type mongoUserService struct {
	logger         *zap.Logger
	userRepository *repositories.UserRepository
}

// NewMongoUserService creates a new UserService that uses MongoDB as the storage technology
func NewMongoUserService(logger *zap.Logger, userRepository *repositories.UserRepository) services.UserService {
	return &mongoUserService{
		logger:         logger,
		userRepository: userRepository,
	}
}

func (s *mongoUserService) CreateUser(ctx context.Context, name, email, password string, userRole role.UserRole, departmentID string, year int) (*entities.User, error) {
	if !userRole.IsValid() {
		return nil, errors.Wrapf(services.ErrNotFound, "unknown role %s", userRole)
	}

	// check if email is not taken
	res := s.userRepository.FindOne(ctx, bson.M{
		string(entities.UserEmail): email,
	})

	err := res.Err()
	if err == nil {
		return nil, services.ErrEmailTaken
	} else if err != mongo.ErrNoDocuments {
		return nil, errors.Wrap(err, "could not query for user with email")
	}

	pwdHash, err := utils.GetHashForPassword(password)
	if err != nil {
		return nil, errors.Wrap(err, "could not hash password")
	}

	user := &entities.User{
		ID:       primitive.NewObjectID(),
		Name:     name,
		Email:    email,
		Password: pwdHash,
		Role:     userRole,
		Year:     year,
	}

	if len(departmentID) > 0 {
		departmentMongoID, err := primitive.ObjectIDFromHex(departmentID)
		if err != nil {
			return nil, services.ErrInvalidID
		}
		user.Department = departmentMongoID
	}

	_, err = s.userRepository.InsertOne(ctx, *user)
	if err != nil {
		return nil, errors.Wrap(err, "could not create new user")
	}

	return user, nil
}

func (s *mongoUserService) GetUsers(ctx context.Context) ([]entities.User, error) {
	cur, err := s.userRepository.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "could not query for users")
	}
	defer cur.Close(ctx)

	users, err := decodeUsersResult(ctx, cur)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode result")
	}

	return users, nil
}

func (s *mongoUserService) GetUsersWithRole(ctx context.Context, userRole role.UserRole) ([]entities.User, error) {
	cur, err := s.userRepository.Find(ctx, bson.M{
		string(entities.UserRole): userRole,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not query for users with role")
	}
	defer cur.Close(ctx)

	users, err := decodeUsersResult(ctx, cur)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode result")
	}

	return users, nil
}

func (s *mongoUserService) GetUserWithID(ctx context.Context, userID string) (*entities.User, error) {
	mongoID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	res := s.userRepository.FindOne(ctx, bson.M{
		string(entities.UserID): mongoID,
	})

	user, err := decodeUserResult(res)
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "could not query for user with ID")
	}

	return user, nil
}

func (s *mongoUserService) GetUserWithEmail(ctx context.Context, email string) (*entities.User, error) {
	res := s.userRepository.FindOne(ctx, bson.M{
		string(entities.UserEmail): email,
	})

	user, err := decodeUserResult(res)
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "could not query for user with email")
	}

	return user, nil
}

func (s *mongoUserService) GetUserWithEmailAndPassword(ctx context.Context, email, password string) (*entities.User, error) {
	user, err := s.GetUserWithEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	err = utils.CompareHashAndPassword(user.Password, password)
	if err != nil {
		return nil, services.ErrNotFound
	}

	return user, nil
}

func (s *mongoUserService) UpdateUserWithID(ctx context.Context, userID string, params services.UserUpdateParams) error {
	mongoID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return services.ErrInvalidID
	}

	res, err := s.userRepository.UpdateOne(ctx, bson.M{
		string(entities.UserID): mongoID,
	}, bson.M{
		"$set": params,
	})
	if err != nil {
		return errors.Wrap(err, "could not update user")
	} else if res.MatchedCount == 0 {
		return services.ErrNotFound
	}

	return nil
}

func (s *mongoUserService) DeleteUserWithID(ctx context.Context, userID string) error {
	mongoID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return services.ErrInvalidID
	}

	res, err := s.userRepository.DeleteOne(ctx, bson.M{
		string(entities.UserID): mongoID,
	})
	if err != nil {
		return errors.Wrap(err, "could not delete user")
	} else if res.DeletedCount == 0 {
		return services.ErrNotFound
	}

	return nil
}

func decodeUserResult(res *mongo.SingleResult) (*entities.User, error) {
	err := res.Err()
	if err != nil {
		return nil, errors.Wrap(err, "query returned error")
	}

	var user entities.User
	err = res.Decode(&user)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode user")
	}

	return &user, nil
}

func decodeUsersResult(ctx context.Context, cur *mongo.Cursor) ([]entities.User, error) {
	var users []entities.User
	for cur.Next(ctx) {
		var user entities.User
		err := cur.Decode(&user)
		if err != nil {
			return nil, errors.Wrap(err, "could not decode user")
		}
		users = append(users, user)
	}

	return users, nil
}
