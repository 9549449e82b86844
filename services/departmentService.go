package services

import (
	"context"

	"github.com/innovcell/ic_events/entities"
)

type DepartmentUpdateParams map[entities.DepartmentField]interface{}

// DepartmentService is the service for interactions with the department collection
type DepartmentService interface {
	CreateDepartment(ctx context.Context, name, code, hodID string) (*entities.Department, error)

	GetDepartments(ctx context.Context) ([]entities.Department, error)
	GetDepartmentWithID(ctx context.Context, departmentID string) (*entities.Department, error)

	UpdateDepartmentWithID(ctx context.Context, departmentID string, params DepartmentUpdateParams) error

	DeleteDepartmentWithID(ctx context.Context, departmentID string) error
}
