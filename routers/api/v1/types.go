package v1

import (
	"github.com/innovcell/ic_events/entities"
	"github.com/innovcell/ic_events/routers/api/models"
)

type registerRes struct {
	models.Response
	User entities.User `json:"user"`
}

type loginRes struct {
	models.Response
	Token string `json:"token"`
}

type getUsersRes struct {
	models.Response
	Users []entities.User `json:"users"`
}

type getUserRes struct {
	models.Response
	User entities.User `json:"user"`
}

type createEventRes struct {
	models.Response
	Event entities.Event `json:"event"`
}

type getEventsRes struct {
	models.Response
	Events []entities.Event `json:"events"`
}

type getEventRes struct {
	models.Response
	Event entities.Event `json:"event"`
}

type createTeamRes struct {
	models.Response
	Team entities.Team `json:"team"`
}

type getTeamsRes struct {
	models.Response
	Teams []entities.Team `json:"teams"`
}

type getTeamRes struct {
	models.Response
	Team entities.Team `json:"team"`
}

type createDepartmentRes struct {
	models.Response
	Department entities.Department `json:"department"`
}

type getDepartmentsRes struct {
	models.Response
	Departments []entities.Department `json:"departments"`
}

type getDepartmentRes struct {
	models.Response
	Department entities.Department `json:"department"`
}
