package services

import (
	"time"

	"github.com/innovcell/ic_events/config/role"
	"github.com/innovcell/ic_events/eligibility"
	"github.com/innovcell/ic_events/entities"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamBuilder assembles a Team from resolved user records, enforcing the
// event's composition rules before anything touches the persistence layer.
// Identity resolution and cross-team duplicate checks stay with the caller;
// the builder only validates what can be decided from its inputs.
type TeamBuilder struct {
	event   *entities.Event
	creator *entities.User
	members []entities.User
	mentor  *entities.User
	now     time.Time
}

// NewTeamBuilder creates a TeamBuilder for the given event and creator
func NewTeamBuilder(event *entities.Event, creator *entities.User, now time.Time) *TeamBuilder {
	return &TeamBuilder{
		event:   event,
		creator: creator,
		now:     now,
	}
}

// WithMembers adds invited members. The creator must not be included; they
// are added by Build with an accepted status.
func (b *TeamBuilder) WithMembers(members ...entities.User) *TeamBuilder {
	b.members = append(b.members, members...)
	return b
}

// WithMentor sets the team's mentor candidate
func (b *TeamBuilder) WithMentor(mentor *entities.User) *TeamBuilder {
	b.mentor = mentor
	return b
}

// Build validates the team's composition and returns the assembled Team.
// The creator is entered as an accepted member with respondedAt stamped;
// every other member and the mentor start pending with invitedAt stamped.
func (b *TeamBuilder) Build() (*entities.Team, error) {
	if b.creator.Role != role.Student {
		return nil, ErrNotAuthorized
	}

	totalSize := len(b.members) + 1
	bounds := b.event.Eligibility.TeamSize
	if !eligibility.CheckTeamSize(totalSize, bounds.Min, bounds.Max) {
		return nil, ErrInvalidTeamSize
	}

	seen := map[primitive.ObjectID]bool{b.creator.ID: true}
	for i := range b.members {
		if seen[b.members[i].ID] {
			return nil, ErrDuplicateMembership
		}
		seen[b.members[i].ID] = true
	}

	if !eligibility.CheckMemberEligibility(b.creator, b.event) {
		return nil, ErrMemberNotEligible
	}
	for i := range b.members {
		if !eligibility.CheckMemberEligibility(&b.members[i], b.event) {
			return nil, ErrMemberNotEligible
		}
	}

	if b.event.RequiresMentor {
		if b.mentor == nil || !b.mentor.Role.CanMentor() {
			return nil, ErrNotFound
		}
		if seen[b.mentor.ID] {
			return nil, ErrDuplicateMembership
		}
	}

	respondedAt := b.now
	team := &entities.Team{
		ID:      primitive.NewObjectID(),
		Event:   b.event.ID,
		Creator: b.creator.ID,
		Members: []entities.TeamMember{
			{
				User:        b.creator.ID,
				Status:      entities.MemberAccepted,
				InvitedAt:   b.now,
				RespondedAt: &respondedAt,
			},
		},
		Status:             entities.TeamPending,
		VerificationStatus: entities.VerificationPending,
	}

	for i := range b.members {
		team.Members = append(team.Members, entities.TeamMember{
			User:      b.members[i].ID,
			Status:    entities.MemberPending,
			InvitedAt: b.now,
		})
	}

	if b.event.RequiresMentor {
		team.Mentor = &entities.TeamMember{
			User:      b.mentor.ID,
			Status:    entities.MemberPending,
			InvitedAt: b.now,
		}
	}

	// a one-person team with no mentor to wait on is ready immediately
	team.RecomputeReadiness()

	return team, nil
}
