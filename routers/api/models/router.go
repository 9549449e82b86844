package models

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router is the interface for routers that can register their routes
// on a gin router group
type Router interface {
	RegisterRoutes(routerGroup *gin.RouterGroup)
}

// BaseRouter provides the handlers shared by all routers
type BaseRouter struct{}

type heartbeatResponse struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Heartbeat returns an OK response to signal the service is up
func (BaseRouter) Heartbeat(ctx *gin.Context) {
	message := fmt.Sprintf("request to %s received", ctx.Request.URL.String())

	ctx.JSON(http.StatusOK, heartbeatResponse{Status: "OK", Code: http.StatusOK, Message: message})
}
