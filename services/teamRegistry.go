package services

import (
	"time"

	"github.com/innovcell/ic_events/entities"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The functions below are the persistence-free half of the team registry:
// each one mutates an in-memory Team and reports the outcome through the
// service error taxonomy. The Mongo-backed TeamService loads the team,
// applies one of these transitions and persists the result.

// ApplyInvitationResponse records the user's decision on their pending
// invitation and promotes the team to ready when the last party accepts.
// A response is one-shot: a second call for the same user fails with
// ErrAlreadyResponded and leaves the stored state untouched.
func ApplyInvitationResponse(team *entities.Team, userID primitive.ObjectID, decision entities.MemberStatus, now time.Time) error {
	if decision != entities.MemberAccepted && decision != entities.MemberRejected {
		return ErrInvalidDecision
	}
	if team.IsFrozen {
		return ErrTeamFrozen
	}

	invitee := team.Invitee(userID)
	if invitee == nil {
		return ErrNotAuthorized
	}
	if invitee.Status != entities.MemberPending {
		return ErrAlreadyResponded
	}

	invitee.Status = decision
	respondedAt := now
	invitee.RespondedAt = &respondedAt

	team.RecomputeReadiness()
	return nil
}

// ApplyFreeze marks the team frozen. Freezing is idempotent; every
// member- or proof-mutating transition checks the flag first.
func ApplyFreeze(team *entities.Team) {
	team.IsFrozen = true
}

// ApplyProofSubmission appends the creator's proof file references and
// resets the verification decision to pending
func ApplyProofSubmission(team *entities.Team, userID primitive.ObjectID, fileRefs []string) error {
	if userID != team.Creator {
		return ErrNotAuthorized
	}
	if team.IsFrozen {
		return ErrTeamFrozen
	}

	team.Proofs = append(team.Proofs, fileRefs...)
	team.VerificationStatus = entities.VerificationPending
	return nil
}

// ApplyVerification records the advisor's decision on the team's proofs.
// An approval promotes the team to verified, except for a team that never
// left pending: readiness must be reached before verification.
func ApplyVerification(team *entities.Team, advisorID primitive.ObjectID, decision entities.VerificationStatus) error {
	if decision != entities.VerificationApproved && decision != entities.VerificationRejected {
		return ErrInvalidDecision
	}
	if team.Mentor == nil || team.Mentor.User != advisorID {
		return ErrNotAuthorized
	}

	team.VerificationStatus = decision
	if decision == entities.VerificationApproved && team.Status != entities.TeamPending {
		team.Status = entities.TeamVerified
	}
	return nil
}
