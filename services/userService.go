package services

import (
	"context"

	"github.com/innovcell/ic_events/config/role"
	"github.com/innovcell/ic_events/entities"
)

type UserUpdateParams map[entities.UserField]interface{}

// UserService is the service for interactions with the user collection
type UserService interface {
	CreateUser(ctx context.Context, name, email, password string, userRole role.UserRole, departmentID string, year int) (*entities.User, error)

	GetUsers(ctx context.Context) ([]entities.User, error)
	GetUsersWithRole(ctx context.Context, userRole role.UserRole) ([]entities.User, error)

	GetUserWithID(ctx context.Context, userID string) (*entities.User, error)
	GetUserWithEmail(ctx context.Context, email string) (*entities.User, error)
	GetUserWithEmailAndPassword(ctx context.Context, email, password string) (*entities.User, error)

	UpdateUserWithID(ctx context.Context, userID string, params UserUpdateParams) error

	DeleteUserWithID(ctx context.Context, userID string) error
}
