package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TeamField string

const (
	TeamID          TeamField = "_id"
	TeamEvent       TeamField = "event"
	TeamCreator     TeamField = "creator"
	TeamMembersUser TeamField = "members.user"
	TeamMentorUser  TeamField = "mentor.user"
)

// MemberStatus is a type for storing the state of a member's or mentor's invitation
type MemberStatus string

const (
	MemberPending  MemberStatus = "pending"
	MemberAccepted MemberStatus = "accepted"
	MemberRejected MemberStatus = "rejected"
)

// TeamStatus is a type for storing a team's lifecycle state
type TeamStatus string

const (
	TeamPending    TeamStatus = "pending"
	TeamApproved   TeamStatus = "approved"
	TeamReady      TeamStatus = "ready"
	TeamRegistered TeamStatus = "registered"
	TeamVerified   TeamStatus = "verified"
	TeamRejected   TeamStatus = "rejected"
)

// VerificationStatus is a type for storing the advisor's decision on a team's proofs
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// TeamMember is the invitation entry for a single member or mentor of a team
type TeamMember struct {
	User        primitive.ObjectID `json:"user" bson:"user"`
	Status      MemberStatus       `json:"status" bson:"status"`
	InvitedAt   time.Time          `json:"invited_at" bson:"invited_at"`
	RespondedAt *time.Time         `json:"responded_at,omitempty" bson:"responded_at,omitempty"`
}

// Team is the struct to store event registration teams.
// The creator is always present in Members with an accepted status.
type Team struct {
	ID                 primitive.ObjectID `json:"_id" bson:"_id"`
	Event              primitive.ObjectID `json:"event" bson:"event" validate:"required"`
	Creator            primitive.ObjectID `json:"creator" bson:"creator" validate:"required"`
	Members            []TeamMember       `json:"members" bson:"members"`
	Mentor             *TeamMember        `json:"mentor,omitempty" bson:"mentor,omitempty"`
	Status             TeamStatus         `json:"status" bson:"status"`
	VerificationStatus VerificationStatus `json:"verification_status" bson:"verification_status"`
	Proofs             []string           `json:"proofs,omitempty" bson:"proofs,omitempty"`
	IsFrozen           bool               `json:"is_frozen" bson:"is_frozen"`
}

// Invitee returns the invitation entry for the given user, checking the
// members list first and the mentor slot second. Returns nil if the user
// was never invited to the team.
func (t *Team) Invitee(userID primitive.ObjectID) *TeamMember {
	for i := range t.Members {
		if t.Members[i].User == userID {
			return &t.Members[i]
		}
	}
	if t.Mentor != nil && t.Mentor.User == userID {
		return t.Mentor
	}
	return nil
}

// HasUser returns true if the given user is a member or the mentor of the team
func (t *Team) HasUser(userID primitive.ObjectID) bool {
	return t.Invitee(userID) != nil
}

// AllAccepted returns true if every member and the mentor (when one is
// assigned) have accepted their invitations
func (t *Team) AllAccepted() bool {
	for i := range t.Members {
		if t.Members[i].Status != MemberAccepted {
			return false
		}
	}
	if t.Mentor != nil && t.Mentor.Status != MemberAccepted {
		return false
	}
	return true
}

// RecomputeReadiness promotes the team to ready once every invited party
// has accepted. The promotion is a one-way ratchet: a team that has left
// the pending state is never moved back by this method.
func (t *Team) RecomputeReadiness() {
	if t.Status != TeamPending {
		return
	}
	if t.AllAccepted() {
		t.Status = TeamReady
	}
}
