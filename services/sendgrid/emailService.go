package sendgrid

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/innovcell/ic_events/config"
	"github.com/innovcell/ic_events/entities"
	"github.com/innovcell/ic_events/services"
	"github.com/innovcell/ic_events/utils"
	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

var (
	teamInviteEmailTemplatePath          = "templates/emails/teamInvite_email.gohtml"
	verificationOutcomeEmailTemplatePath = "templates/emails/verificationOutcome_email.gohtml"
)

type sendgridEmailService struct {
	*sendgrid.Client
	logger *zap.Logger
	cfg    *config.AppConfig

	teamInviteEmailTemplate          *template.Template
	verificationOutcomeEmailTemplate *template.Template
}

type inviteEmailDataModel struct {
	EventTitle string
	TeamLink   string
	SenderName string
}

type outcomeEmailDataModel struct {
	EventTitle string
	Outcome    string
	SenderName string
}

// NewSendgridEmailService creates a new EmailService that uses Sendgrid to send emails
func NewSendgridEmailService(logger *zap.Logger, cfg *config.AppConfig, client *sendgrid.Client) (services.EmailService, error) {
	teamInviteEmailTemplate, err := utils.LoadTemplate("team invite", teamInviteEmailTemplatePath)
	if err != nil {
		return nil, errors.Wrap(err, "could not load team invite template")
	}

	verificationOutcomeEmailTemplate, err := utils.LoadTemplate("verification outcome", verificationOutcomeEmailTemplatePath)
	if err != nil {
		return nil, errors.Wrap(err, "could not load verification outcome template")
	}

	return &sendgridEmailService{
		Client:                           client,
		logger:                           logger,
		cfg:                              cfg,
		teamInviteEmailTemplate:          teamInviteEmailTemplate,
		verificationOutcomeEmailTemplate: verificationOutcomeEmailTemplate,
	}, nil
}

func (s *sendgridEmailService) SendEmail(subject, htmlBody, plainTextBody, senderName, senderEmail, recipientName, recipientEmail string) error {
	from := mail.NewEmail(senderName, senderEmail)
	to := mail.NewEmail(recipientName, recipientEmail)
	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)
	response, err := s.Send(message)

	if err != nil {
		s.logger.Error("could not issue email request",
			zap.String("subject", subject),
			zap.String("recipient", recipientEmail),
			zap.Error(err))
		return errors.Wrap(err, "could not send email request to Sendgrid")
	}

	if response.StatusCode != http.StatusAccepted {
		s.logger.Error("email request was rejected by Sendgrid",
			zap.String("subject", subject),
			zap.String("recipient", recipientEmail),
			zap.Int("response status code", response.StatusCode),
			zap.String("response body", response.Body))
		return services.ErrSendgridRejectedRequest
	}

	s.logger.Info("email request sent successfully",
		zap.String("subject", subject),
		zap.String("recipient", recipientEmail))
	return nil
}

func (s *sendgridEmailService) SendTeamInviteEmail(invitee entities.User, team entities.Team, event entities.Event) error {
	teamLink := fmt.Sprintf("%s/teams/%s", s.cfg.AppURL, team.ID.Hex())

	var contentBuff bytes.Buffer
	err := s.teamInviteEmailTemplate.Execute(&contentBuff, inviteEmailDataModel{
		EventTitle: event.Title,
		TeamLink:   teamLink,
		SenderName: s.cfg.Email.NoreplyEmailName,
	})
	if err != nil {
		return errors.Wrap(err, "could not construct email")
	}

	return s.SendEmail(
		s.cfg.Email.TeamInviteEmailSubj,
		contentBuff.String(),
		contentBuff.String(),
		s.cfg.Email.NoreplyEmailName,
		s.cfg.Email.NoreplyEmailAddr,
		invitee.Name,
		invitee.Email)
}

func (s *sendgridEmailService) SendVerificationOutcomeEmail(creator entities.User, team entities.Team, event entities.Event) error {
	var contentBuff bytes.Buffer
	err := s.verificationOutcomeEmailTemplate.Execute(&contentBuff, outcomeEmailDataModel{
		EventTitle: event.Title,
		Outcome:    string(team.VerificationStatus),
		SenderName: s.cfg.Email.NoreplyEmailName,
	})
	if err != nil {
		return errors.Wrap(err, "could not construct email")
	}

	return s.SendEmail(
		s.cfg.Email.VerificationOutcomeEmailSubj,
		contentBuff.String(),
		contentBuff.String(),
		s.cfg.Email.NoreplyEmailName,
		s.cfg.Email.NoreplyEmailAddr,
		creator.Name,
		creator.Email)
}
