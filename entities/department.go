package entities

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DepartmentField string

const (
	DepartmentID   DepartmentField = "_id"
	DepartmentName DepartmentField = "name"
	DepartmentCode DepartmentField = "code"
	DepartmentHod  DepartmentField = "hod"
)

// Department is the struct to store academic departments
type Department struct {
	ID   primitive.ObjectID `json:"_id" bson:"_id"`
	Name string             `json:"name" bson:"name" validate:"required"`
	Code string             `json:"code" bson:"code" validate:"required"`
	Hod  primitive.ObjectID `json:"hod,omitempty" bson:"hod,omitempty"`
}
