//+build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/innovcell/ic_events/config"
	"github.com/innovcell/ic_events/environment"
	"github.com/innovcell/ic_events/repositories"
	"github.com/innovcell/ic_events/routers"
	v1 "github.com/innovcell/ic_events/routers/api/v1"
	"github.com/innovcell/ic_events/services/mongo"
	"github.com/innovcell/ic_events/services/sendgrid"
	"github.com/innovcell/ic_events/utils"
)

func InitializeServer() (Server, error) {
	wire.Build(
		NewServer,
		routers.NewMainRouter,
		v1.NewAPIV1Router,
		mongo.NewMongoUserService,
		mongo.NewMongoTeamService,
		mongo.NewMongoEventService,
		mongo.NewMongoDepartmentService,
		sendgrid.NewSendgridEmailService,
		repositories.NewUserRepository,
		repositories.NewTeamRepository,
		repositories.NewEventRepository,
		repositories.NewDepartmentRepository,
		utils.NewDatabase,
		utils.NewSendgridClient,
		utils.NewTimeProvider,
		environment.NewEnv,
		utils.NewLogger,
		config.NewAppConfig,
	)
	return Server{}, nil
}
