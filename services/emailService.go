package services

import (
	"github.com/innovcell/ic_events/entities"
)

// EmailService is used to send out emails. Invitation and verification
// emails are dispatched by the transport layer after a registry operation
// succeeds; the registry itself never sends emails.
type EmailService interface {
	SendEmail(subject, htmlBody, plainTextBody, senderName, senderEmail, recipientName, recipientEmail string) error

	SendTeamInviteEmail(invitee entities.User, team entities.Team, event entities.Event) error
	SendVerificationOutcomeEmail(creator entities.User, team entities.Team, event entities.Event) error
}
