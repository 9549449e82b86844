package entities

import (
	"github.com/innovcell/ic_events/config/role"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserField string

const (
	UserID         UserField = "_id"
	UserName       UserField = "name"
	UserEmail      UserField = "email"
	UserPassword   UserField = "password"
	UserRole       UserField = "role"
	UserDepartment UserField = "department"
	UserYear       UserField = "year"
	UserTeam       UserField = "team"
)

// User is the struct to store registered users
type User struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id"`
	Name       string             `json:"name" bson:"name" validate:"required"`
	Email      string             `json:"email" bson:"email" validate:"required,email"`
	Password   string             `json:"-" bson:"password" validate:"required,min=6,max=160"`
	Role       role.UserRole      `json:"role" bson:"role" validate:"required"`
	Department primitive.ObjectID `json:"department,omitempty" bson:"department,omitempty"`
	// Year is the student's year of study; zero for non-student roles
	Year int                `json:"year,omitempty" bson:"year,omitempty"`
	Team primitive.ObjectID `json:"team,omitempty" bson:"team,omitempty"`
}
