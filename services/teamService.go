package services

import (
	"context"

	"github.com/innovcell/ic_events/entities"
)

// TeamService is the registry for team lifecycle: creation with eligibility
// checks, invitation responses, freeze and proof verification gates
type TeamService interface {
	CreateTeam(ctx context.Context, eventID, creatorID string, memberEmails []string, mentorEmail string) (*entities.Team, error)

	GetTeams(ctx context.Context) ([]entities.Team, error)
	GetTeamWithID(ctx context.Context, teamID string) (*entities.Team, error)
	GetTeamsForEvent(ctx context.Context, eventID string) ([]entities.Team, error)
	GetTeamForUserWithID(ctx context.Context, userID string) (*entities.Team, error)

	RespondToInvitation(ctx context.Context, teamID, userID string, decision entities.MemberStatus) (*entities.Team, error)
	FreezeTeam(ctx context.Context, teamID string) (*entities.Team, error)
	SubmitProofs(ctx context.Context, teamID, userID string, fileRefs []string) (*entities.Team, error)
	VerifyProofs(ctx context.Context, teamID, advisorID string, decision entities.VerificationStatus) (*entities.Team, error)
}
