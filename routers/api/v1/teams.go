package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovcell/ic_events/entities"
	"github.com/innovcell/ic_events/routers/api/models"
	"github.com/innovcell/ic_events/services"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// POST: /api/v1/teams
// x-www-form-urlencoded
// Request:  event string
//           member_emails []string
//           mentor_email string (required when the event requires a mentor)
// Response: team entities.Team
// Headers:  Authorization -> token
func (r *apiV1Router) CreateTeam(ctx *gin.Context) {
	claims := extractClaimsFromCtx(ctx)
	if claims == nil {
		r.HandleUnauthorized(ctx)
		return
	}

	eventID := ctx.PostForm("event")
	if len(eventID) == 0 {
		r.logger.Debug("event id not provided")
		models.SendAPIError(ctx, http.StatusBadRequest, "event id must be provided")
		return
	}
	memberEmails := ctx.PostFormArray("member_emails")
	mentorEmail := ctx.PostForm("mentor_email")

	team, err := r.teamService.CreateTeam(ctx, eventID, claims.Id, memberEmails, mentorEmail)
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid id", zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid id")
		case services.ErrNotFound:
			r.logger.Debug("referenced event or user not found", zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadRequest, err.Error())
		case services.ErrInvalidTeamSize:
			r.logger.Debug("team size outside event bounds", zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadRequest, "team size is outside the event's allowed bounds")
		case services.ErrDuplicateMembership:
			r.logger.Debug("duplicate membership", zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadRequest, "a candidate already belongs to a team for this event")
		case services.ErrMemberNotEligible:
			r.logger.Debug("member not eligible", zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadRequest, "a candidate does not satisfy the event's eligibility rules")
		case services.ErrNotAuthorized:
			r.logger.Debug("creator is not a student", zap.Error(err))
			models.SendAPIError(ctx, http.StatusForbidden, "only students can create teams")
		default:
			r.logger.Error("could not create team", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	r.sendInviteEmails(ctx, team, memberEmails, mentorEmail)

	ctx.JSON(http.StatusOK, createTeamRes{
		Response: models.Response{Status: http.StatusOK},
		Team:     *team,
	})
}

// invitation emails are best-effort: a delivery failure must not fail the
// registration that already happened
func (r *apiV1Router) sendInviteEmails(ctx *gin.Context, team *entities.Team, memberEmails []string, mentorEmail string) {
	event, err := r.eventService.GetEventWithID(ctx, team.Event.Hex())
	if err != nil {
		r.logger.Warn("could not fetch event for invite emails", zap.Error(err))
		return
	}

	recipients := memberEmails
	if len(mentorEmail) > 0 && team.Mentor != nil {
		recipients = append(recipients, mentorEmail)
	}

	for _, email := range recipients {
		invitee, err := r.userService.GetUserWithEmail(ctx, email)
		if err != nil {
			r.logger.Warn("could not fetch invitee for invite email", zap.String("email", email), zap.Error(err))
			continue
		}
		err = r.emailService.SendTeamInviteEmail(*invitee, *team, *event)
		if err != nil {
			r.logger.Warn("could not send invite email", zap.String("email", email), zap.Error(err))
		}
	}
}

// GET: /api/v1/teams?event=:id
// Response: teams []entities.Team
// Headers:  Authorization -> token
func (r *apiV1Router) GetTeams(ctx *gin.Context) {
	var (
		teams []entities.Team
		err   error
	)
	eventID := ctx.Query("event")
	if len(eventID) > 0 {
		teams, err = r.teamService.GetTeamsForEvent(ctx, eventID)
	} else {
		teams, err = r.teamService.GetTeams(ctx)
	}
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid event id", zap.String("event", eventID))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid event id")
		default:
			r.logger.Error("could not fetch teams", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, getTeamsRes{
		Response: models.Response{Status: http.StatusOK},
		Teams:    teams,
	})
}

// GET: /api/v1/teams/(:id|me)
// Response: team entities.Team
// Headers:  Authorization -> token
func (r *apiV1Router) GetTeam(ctx *gin.Context) {
	var (
		team *entities.Team
		err  error
	)
	teamID := ctx.Param("id")
	if teamID == "me" {
		claims := extractClaimsFromCtx(ctx)
		if claims == nil {
			r.HandleUnauthorized(ctx)
			return
		}
		team, err = r.teamService.GetTeamForUserWithID(ctx, claims.Id)
	} else {
		team, err = r.teamService.GetTeamWithID(ctx, teamID)
	}

	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid team id", zap.String("id", teamID))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid team id")
		case services.ErrNotFound:
			r.logger.Debug("team not found", zap.String("id", teamID))
			models.SendAPIError(ctx, http.StatusNotFound, "team not found")
		default:
			r.logger.Error("could not fetch team", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, getTeamRes{
		Response: models.Response{Status: http.StatusOK},
		Team:     *team,
	})
}

// POST: /api/v1/teams/:id/respond
// x-www-form-urlencoded
// Request:  decision string (accepted|rejected)
// Response: team entities.Team
// Headers:  Authorization -> token
func (r *apiV1Router) RespondToInvitation(ctx *gin.Context) {
	claims := extractClaimsFromCtx(ctx)
	if claims == nil {
		r.HandleUnauthorized(ctx)
		return
	}

	decision := entities.MemberStatus(ctx.PostForm("decision"))
	team, err := r.teamService.RespondToInvitation(ctx, ctx.Param("id"), claims.Id, decision)
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid team id", zap.String("id", ctx.Param("id")))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid team id")
		case services.ErrInvalidDecision:
			r.logger.Debug("invalid decision", zap.String("decision", string(decision)))
			models.SendAPIError(ctx, http.StatusBadRequest, "decision must be either accepted or rejected")
		case services.ErrNotFound:
			r.logger.Debug("team not found", zap.String("id", ctx.Param("id")))
			models.SendAPIError(ctx, http.StatusNotFound, "team not found")
		case services.ErrNotAuthorized:
			r.logger.Debug("user was not invited to the team")
			models.SendAPIError(ctx, http.StatusForbidden, "you were not invited to this team")
		case services.ErrAlreadyResponded:
			r.logger.Debug("invitation already responded to")
			models.SendAPIError(ctx, http.StatusBadRequest, "invitation has already been responded to")
		case services.ErrTeamFrozen:
			r.logger.Debug("team is frozen")
			models.SendAPIError(ctx, http.StatusBadRequest, "team is frozen and can no longer be modified")
		default:
			r.logger.Error("could not respond to invitation", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, getTeamRes{
		Response: models.Response{Status: http.StatusOK},
		Team:     *team,
	})
}

// POST: /api/v1/teams/:id/freeze
// Response: team entities.Team
// Headers:  Authorization -> token
func (r *apiV1Router) FreezeTeam(ctx *gin.Context) {
	team, err := r.teamService.FreezeTeam(ctx, ctx.Param("id"))
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid team id", zap.String("id", ctx.Param("id")))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid team id")
		case services.ErrNotFound:
			r.logger.Debug("team not found", zap.String("id", ctx.Param("id")))
			models.SendAPIError(ctx, http.StatusNotFound, "team not found")
		default:
			r.logger.Error("could not freeze team", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, getTeamRes{
		Response: models.Response{Status: http.StatusOK},
		Team:     *team,
	})
}

// POST: /api/v1/teams/:id/proofs
// x-www-form-urlencoded
// Request:  proofs []string
// Response: team entities.Team
// Headers:  Authorization -> token
func (r *apiV1Router) SubmitProofs(ctx *gin.Context) {
	claims := extractClaimsFromCtx(ctx)
	if claims == nil {
		r.HandleUnauthorized(ctx)
		return
	}

	proofs := ctx.PostFormArray("proofs")
	if len(proofs) == 0 {
		r.logger.Debug("no proofs provided")
		models.SendAPIError(ctx, http.StatusBadRequest, "at least one proof must be provided")
		return
	}

	team, err := r.teamService.SubmitProofs(ctx, ctx.Param("id"), claims.Id, proofs)
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid team id", zap.String("id", ctx.Param("id")))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid team id")
		case services.ErrNotFound:
			r.logger.Debug("team not found", zap.String("id", ctx.Param("id")))
			models.SendAPIError(ctx, http.StatusNotFound, "team not found")
		case services.ErrNotAuthorized:
			r.logger.Debug("proof submitter is not the team's creator")
			models.SendAPIError(ctx, http.StatusForbidden, "only the team's creator can submit proofs")
		case services.ErrTeamFrozen:
			r.logger.Debug("team is frozen")
			models.SendAPIError(ctx, http.StatusBadRequest, "team is frozen and can no longer be modified")
		default:
			r.logger.Error("could not submit proofs", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, getTeamRes{
		Response: models.Response{Status: http.StatusOK},
		Team:     *team,
	})
}

// PUT: /api/v1/teams/:id/verify
// x-www-form-urlencoded
// Request:  decision string (approved|rejected)
// Response: team entities.Team
// Headers:  Authorization -> token
func (r *apiV1Router) VerifyProofs(ctx *gin.Context) {
	claims := extractClaimsFromCtx(ctx)
	if claims == nil {
		r.HandleUnauthorized(ctx)
		return
	}

	decision := entities.VerificationStatus(ctx.PostForm("decision"))
	team, err := r.teamService.VerifyProofs(ctx, ctx.Param("id"), claims.Id, decision)
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid team id", zap.String("id", ctx.Param("id")))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid team id")
		case services.ErrInvalidDecision:
			r.logger.Debug("invalid decision", zap.String("decision", string(decision)))
			models.SendAPIError(ctx, http.StatusBadRequest, "decision must be either approved or rejected")
		case services.ErrNotFound:
			r.logger.Debug("team not found", zap.String("id", ctx.Param("id")))
			models.SendAPIError(ctx, http.StatusNotFound, "team not found")
		case services.ErrNotAuthorized:
			r.logger.Debug("verifier is not the team's mentor")
			models.SendAPIError(ctx, http.StatusForbidden, "only the team's assigned mentor can verify proofs")
		default:
			r.logger.Error("could not verify proofs", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	r.sendVerificationOutcomeEmail(ctx, team)

	ctx.JSON(http.StatusOK, getTeamRes{
		Response: models.Response{Status: http.StatusOK},
		Team:     *team,
	})
}

func (r *apiV1Router) sendVerificationOutcomeEmail(ctx *gin.Context, team *entities.Team) {
	event, err := r.eventService.GetEventWithID(ctx, team.Event.Hex())
	if err != nil {
		r.logger.Warn("could not fetch event for verification outcome email", zap.Error(err))
		return
	}

	creator, err := r.userService.GetUserWithID(ctx, team.Creator.Hex())
	if err != nil {
		r.logger.Warn("could not fetch creator for verification outcome email", zap.Error(err))
		return
	}

	err = r.emailService.SendVerificationOutcomeEmail(*creator, *team, *event)
	if err != nil {
		r.logger.Warn("could not send verification outcome email", zap.Error(err))
	}
}
