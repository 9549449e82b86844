package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testTeamWithMembers(statuses ...MemberStatus) *Team {
	now := time.Now().UTC().Round(time.Millisecond)
	team := &Team{
		ID:                 primitive.NewObjectID(),
		Event:              primitive.NewObjectID(),
		Status:             TeamPending,
		VerificationStatus: VerificationPending,
	}
	for i, status := range statuses {
		member := TeamMember{
			User:      primitive.NewObjectID(),
			Status:    status,
			InvitedAt: now,
		}
		if status != MemberPending {
			respondedAt := now
			member.RespondedAt = &respondedAt
		}
		if i == 0 {
			team.Creator = member.User
		}
		team.Members = append(team.Members, member)
	}
	return team
}

func Test_Invitee__should_return_member_entry_for_invited_user(t *testing.T) {
	team := testTeamWithMembers(MemberAccepted, MemberPending)

	invitee := team.Invitee(team.Members[1].User)

	assert.NotNil(t, invitee)
	assert.Equal(t, MemberPending, invitee.Status)
}

func Test_Invitee__should_return_mentor_entry_for_mentor_user(t *testing.T) {
	team := testTeamWithMembers(MemberAccepted)
	mentorID := primitive.NewObjectID()
	team.Mentor = &TeamMember{User: mentorID, Status: MemberPending, InvitedAt: time.Now()}

	invitee := team.Invitee(mentorID)

	assert.NotNil(t, invitee)
	assert.Equal(t, team.Mentor, invitee)
}

func Test_Invitee__should_return_nil_for_uninvited_user(t *testing.T) {
	team := testTeamWithMembers(MemberAccepted, MemberPending)

	assert.Nil(t, team.Invitee(primitive.NewObjectID()))
	assert.False(t, team.HasUser(primitive.NewObjectID()))
}

func Test_AllAccepted__should_return_false_while_a_member_is_pending(t *testing.T) {
	team := testTeamWithMembers(MemberAccepted, MemberAccepted, MemberPending)

	assert.False(t, team.AllAccepted())
}

func Test_AllAccepted__should_return_false_while_the_mentor_is_pending(t *testing.T) {
	team := testTeamWithMembers(MemberAccepted, MemberAccepted)
	team.Mentor = &TeamMember{User: primitive.NewObjectID(), Status: MemberPending, InvitedAt: time.Now()}

	assert.False(t, team.AllAccepted())
}

func Test_RecomputeReadiness__should_promote_team_once_last_party_accepts(t *testing.T) {
	team := testTeamWithMembers(MemberAccepted, MemberAccepted, MemberPending)
	mentorID := primitive.NewObjectID()
	team.Mentor = &TeamMember{User: mentorID, Status: MemberAccepted, InvitedAt: time.Now()}

	team.RecomputeReadiness()
	assert.Equal(t, TeamPending, team.Status)

	team.Members[2].Status = MemberAccepted
	team.RecomputeReadiness()
	assert.Equal(t, TeamReady, team.Status)
}

func Test_RecomputeReadiness__should_not_downgrade_a_team_that_left_pending(t *testing.T) {
	tests := []struct {
		name   string
		status TeamStatus
	}{
		{"ready", TeamReady},
		{"registered", TeamRegistered},
		{"verified", TeamVerified},
		{"rejected", TeamRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team := testTeamWithMembers(MemberAccepted, MemberRejected)
			team.Status = tt.status

			team.RecomputeReadiness()

			assert.Equal(t, tt.status, team.Status)
		})
	}
}

func Test_Team__should_round_trip_through_bson_without_losing_invitation_state(t *testing.T) {
	team := testTeamWithMembers(MemberAccepted, MemberPending, MemberRejected)
	mentorID := primitive.NewObjectID()
	respondedAt := time.Now().UTC().Round(time.Millisecond)
	team.Mentor = &TeamMember{User: mentorID, Status: MemberAccepted, InvitedAt: respondedAt, RespondedAt: &respondedAt}
	team.Proofs = []string{"uploads/proof1.pdf", "uploads/proof2.jpg"}
	team.IsFrozen = true

	raw, err := bson.Marshal(team)
	assert.NoError(t, err)

	var decoded Team
	err = bson.Unmarshal(raw, &decoded)
	assert.NoError(t, err)

	assert.Equal(t, team.ID, decoded.ID)
	assert.Equal(t, team.Creator, decoded.Creator)
	assert.Equal(t, team.Proofs, decoded.Proofs)
	assert.True(t, decoded.IsFrozen)
	assert.Equal(t, len(team.Members), len(decoded.Members))
	for i := range team.Members {
		assert.Equal(t, team.Members[i].User, decoded.Members[i].User)
		assert.Equal(t, team.Members[i].Status, decoded.Members[i].Status)
		assert.True(t, team.Members[i].InvitedAt.Equal(decoded.Members[i].InvitedAt))
		if team.Members[i].RespondedAt == nil {
			assert.Nil(t, decoded.Members[i].RespondedAt)
		} else {
			assert.True(t, team.Members[i].RespondedAt.Equal(*decoded.Members[i].RespondedAt))
		}
	}
	assert.Equal(t, team.Mentor.User, decoded.Mentor.User)
	assert.Equal(t, team.Mentor.Status, decoded.Mentor.Status)
	assert.True(t, team.Mentor.RespondedAt.Equal(*decoded.Mentor.RespondedAt))
}

func Test_Team__should_round_trip_through_json_without_losing_invitation_state(t *testing.T) {
	team := testTeamWithMembers(MemberAccepted, MemberPending)

	raw, err := json.Marshal(team)
	assert.NoError(t, err)

	var decoded Team
	err = json.Unmarshal(raw, &decoded)
	assert.NoError(t, err)

	assert.Equal(t, team.ID, decoded.ID)
	assert.Equal(t, team.Status, decoded.Status)
	assert.Equal(t, team.VerificationStatus, decoded.VerificationStatus)
	for i := range team.Members {
		assert.Equal(t, team.Members[i].Status, decoded.Members[i].Status)
		assert.True(t, team.Members[i].InvitedAt.Equal(decoded.Members[i].InvitedAt))
	}
	assert.Nil(t, decoded.Mentor)
}
