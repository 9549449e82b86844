package utils

import (
	"github.com/innovcell/ic_events/environment"
	"github.com/sendgrid/sendgrid-go"
)

func NewSendgridClient(env *environment.Env) *sendgrid.Client {
	return sendgrid.NewSendClient(env.Get(environment.SendgridAPIKey))
}
