package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/innovcell/ic_events/config"
	"github.com/innovcell/ic_events/config/role"
	"github.com/innovcell/ic_events/environment"
	"github.com/innovcell/ic_events/routers/api/models"
	"github.com/innovcell/ic_events/services"
	"github.com/innovcell/ic_events/utils"
	"go.uber.org/zap"
)

const authHeaderName = "Authorization"
const authClaimsKeyInCtx = "auth_claims"

// APIV1Router is the router for v1 of the API
type APIV1Router interface {
	models.Router
	Register(*gin.Context)
	Login(*gin.Context)
	GetUsers(*gin.Context)
	GetUser(*gin.Context)
	CreateEvent(*gin.Context)
	GetEvents(*gin.Context)
	GetEvent(*gin.Context)
	SetEventStatus(*gin.Context)
	CreateTeam(*gin.Context)
	GetTeams(*gin.Context)
	GetTeam(*gin.Context)
	RespondToInvitation(*gin.Context)
	FreezeTeam(*gin.Context)
	SubmitProofs(*gin.Context)
	VerifyProofs(*gin.Context)
	CreateDepartment(*gin.Context)
	GetDepartments(*gin.Context)
	GetDepartment(*gin.Context)
	UpdateDepartment(*gin.Context)
	DeleteDepartment(*gin.Context)
}

type apiV1Router struct {
	models.BaseRouter
	logger            *zap.Logger
	cfg               *config.AppConfig
	env               *environment.Env
	userService       services.UserService
	teamService       services.TeamService
	eventService      services.EventService
	departmentService services.DepartmentService
	emailService      services.EmailService
	timeProvider      utils.TimeProvider
}

// NewAPIV1Router creates a new APIV1Router
func NewAPIV1Router(logger *zap.Logger, cfg *config.AppConfig, env *environment.Env,
	userService services.UserService, teamService services.TeamService, eventService services.EventService,
	departmentService services.DepartmentService, emailService services.EmailService,
	timeProvider utils.TimeProvider) APIV1Router {
	return &apiV1Router{
		logger:            logger,
		cfg:               cfg,
		env:               env,
		userService:       userService,
		teamService:       teamService,
		eventService:      eventService,
		departmentService: departmentService,
		emailService:      emailService,
		timeProvider:      timeProvider,
	}
}

// RegisterRoutes registers all of the API's (v1) routes to the given router group
func (r *apiV1Router) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/", r.Heartbeat)

	usersGroup := routerGroup.Group("/users")
	usersGroup.POST("/", r.Register)
	usersGroup.POST("/login", r.Login)
	usersGroup.GET("/", r.requireRoles(role.SuperAdmin, role.Principal, role.Innovation, role.Hod), r.GetUsers)
	usersGroup.GET("/:id", r.requireRoles(), r.GetUser)

	eventsGroup := routerGroup.Group("/events")
	eventsGroup.POST("/", r.requireRoles(role.Innovation, role.Hod), r.CreateEvent)
	eventsGroup.GET("/", r.requireRoles(), r.GetEvents)
	eventsGroup.GET("/:id", r.requireRoles(), r.GetEvent)
	eventsGroup.PUT("/:id/status", r.requireRoles(role.Principal, role.Innovation), r.SetEventStatus)

	teamsGroup := routerGroup.Group("/teams")
	teamsGroup.POST("/", r.requireRoles(role.Student), r.CreateTeam)
	teamsGroup.GET("/", r.requireRoles(role.SuperAdmin, role.Principal, role.Innovation, role.Hod, role.Staff), r.GetTeams)
	teamsGroup.GET("/:id", r.requireRoles(), r.GetTeam)
	teamsGroup.POST("/:id/respond", r.requireRoles(), r.RespondToInvitation)
	teamsGroup.POST("/:id/freeze", r.requireRoles(role.Innovation), r.FreezeTeam)
	teamsGroup.POST("/:id/proofs", r.requireRoles(role.Student), r.SubmitProofs)
	teamsGroup.PUT("/:id/verify", r.requireRoles(role.Staff, role.Hod), r.VerifyProofs)

	departmentsGroup := routerGroup.Group("/departments")
	departmentsGroup.POST("/", r.requireRoles(role.SuperAdmin, role.Principal), r.CreateDepartment)
	departmentsGroup.GET("/", r.requireRoles(), r.GetDepartments)
	departmentsGroup.GET("/:id", r.requireRoles(), r.GetDepartment)
	departmentsGroup.PUT("/:id", r.requireRoles(role.SuperAdmin, role.Principal), r.UpdateDepartment)
	departmentsGroup.DELETE("/:id", r.requireRoles(role.SuperAdmin, role.Principal), r.DeleteDepartment)
}
