package main

import (
	"github.com/gin-gonic/gin"
	"github.com/innovcell/ic_events/environment"
	"github.com/innovcell/ic_events/routers"
)

// Server wraps the gin engine together with the port the service listens on
type Server struct {
	*gin.Engine
	Port string
}

func NewServer(mainRouter routers.MainRouter, env *environment.Env) Server {
	engine := gin.Default()

	mainRouter.RegisterRoutes(engine.Group("/"))

	port := env.Get(environment.Port)
	if len(port) == 0 {
		port = "8000"
	}

	return Server{
		Engine: engine,
		Port:   port,
	}
}
