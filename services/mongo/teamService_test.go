// +build integration

package mongo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/innovcell/ic_events/config/role"
	"github.com/innovcell/ic_events/entities"
	"github.com/innovcell/ic_events/repositories"
	"github.com/innovcell/ic_events/services"
	"github.com/innovcell/ic_events/testutils"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

var testRegistryTime = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

type fixedTimeProvider struct{}

func (fixedTimeProvider) Now() time.Time {
	return testRegistryTime
}

type teamTestSetup struct {
	teamService  services.TeamService
	userService  services.UserService
	eventService services.EventService
	cleanup      func()
}

func setupTeamTest(t *testing.T) *teamTestSetup {
	db := testutils.ConnectToIntegrationTestDB(t)

	userRepository, err := repositories.NewUserRepository(db)
	assert.NoError(t, err)
	teamRepository, err := repositories.NewTeamRepository(db)
	assert.NoError(t, err)
	eventRepository := repositories.NewEventRepository(db)

	userService := NewMongoUserService(zap.NewNop(), userRepository)
	eventService := NewMongoEventService(zap.NewNop(), eventRepository)
	teamService := NewMongoTeamService(zap.NewNop(), teamRepository, userService, eventService, fixedTimeProvider{})

	return &teamTestSetup{
		teamService:  teamService,
		userService:  userService,
		eventService: eventService,
		cleanup: func() {
			userRepository.Drop(context.Background())
			teamRepository.Drop(context.Background())
			eventRepository.Drop(context.Background())
		},
	}
}

func (s *teamTestSetup) createStudent(t *testing.T, tag string) *entities.User {
	user, err := s.userService.CreateUser(context.Background(),
		"Student "+tag, fmt.Sprintf("student.%s@college.edu", tag), "password123", role.Student, "", 2)
	assert.NoError(t, err)
	return user
}

func (s *teamTestSetup) createMentor(t *testing.T, tag string) *entities.User {
	user, err := s.userService.CreateUser(context.Background(),
		"Mentor "+tag, fmt.Sprintf("mentor.%s@college.edu", tag), "password123", role.Staff, "", 0)
	assert.NoError(t, err)
	return user
}

func (s *teamTestSetup) createEvent(t *testing.T, requiresMentor bool) *entities.Event {
	creator := s.createMentor(t, fmt.Sprintf("creator-%d", time.Now().UnixNano()))
	event, err := s.eventService.CreateEvent(context.Background(), creator.ID.Hex(), services.EventCreateParams{
		Title: "Hackathon",
		Eligibility: entities.EventEligibility{
			TeamSize: entities.TeamSizeRange{Min: 2, Max: 4},
		},
		RequiresMentor: requiresMentor,
	})
	assert.NoError(t, err)
	return event
}

func Test_NewMongoTeamService__should_return_non_nil_object(t *testing.T) {
	assert.NotNil(t, NewMongoTeamService(nil, nil, nil, nil, nil))
}

func Test_CreateTeam__should_persist_team_with_pending_invitations(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	event := setup.createEvent(t, true)
	creator := setup.createStudent(t, "creator")
	member := setup.createStudent(t, "member")
	mentor := setup.createMentor(t, "mentor")

	team, err := setup.teamService.CreateTeam(context.Background(),
		event.ID.Hex(), creator.ID.Hex(), []string{member.Email}, mentor.Email)

	assert.NoError(t, err)
	assert.Equal(t, entities.TeamPending, team.Status)
	assert.Equal(t, entities.MemberAccepted, team.Members[0].Status)
	assert.Equal(t, entities.MemberPending, team.Members[1].Status)
	assert.Equal(t, entities.MemberPending, team.Mentor.Status)

	stored, err := setup.teamService.GetTeamWithID(context.Background(), team.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, team.ID, stored.ID)
	assert.True(t, stored.Members[0].RespondedAt.Equal(testRegistryTime))
}

func Test_CreateTeam__should_fail_when_member_already_in_a_team_for_the_event(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	event := setup.createEvent(t, false)
	creatorA := setup.createStudent(t, "creator-a")
	creatorB := setup.createStudent(t, "creator-b")
	shared := setup.createStudent(t, "shared")

	_, err := setup.teamService.CreateTeam(context.Background(),
		event.ID.Hex(), creatorA.ID.Hex(), []string{shared.Email}, "")
	assert.NoError(t, err)

	_, err = setup.teamService.CreateTeam(context.Background(),
		event.ID.Hex(), creatorB.ID.Hex(), []string{shared.Email}, "")

	assert.Equal(t, services.ErrDuplicateMembership, errors.Cause(err))
}

func Test_CreateTeam__should_fail_for_unresolvable_member_email(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	event := setup.createEvent(t, false)
	creator := setup.createStudent(t, "creator")

	_, err := setup.teamService.CreateTeam(context.Background(),
		event.ID.Hex(), creator.ID.Hex(), []string{"nobody@college.edu"}, "")

	assert.Equal(t, services.ErrNotFound, errors.Cause(err))
}

func Test_RespondToInvitation__should_promote_team_when_last_invitee_accepts(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	event := setup.createEvent(t, true)
	creator := setup.createStudent(t, "creator")
	member := setup.createStudent(t, "member")
	mentor := setup.createMentor(t, "mentor")

	team, err := setup.teamService.CreateTeam(context.Background(),
		event.ID.Hex(), creator.ID.Hex(), []string{member.Email}, mentor.Email)
	assert.NoError(t, err)

	team, err = setup.teamService.RespondToInvitation(context.Background(),
		team.ID.Hex(), member.ID.Hex(), entities.MemberAccepted)
	assert.NoError(t, err)
	assert.Equal(t, entities.TeamPending, team.Status)

	team, err = setup.teamService.RespondToInvitation(context.Background(),
		team.ID.Hex(), mentor.ID.Hex(), entities.MemberAccepted)
	assert.NoError(t, err)
	assert.Equal(t, entities.TeamReady, team.Status)

	// second response must fail and leave the stored decision untouched
	_, err = setup.teamService.RespondToInvitation(context.Background(),
		team.ID.Hex(), member.ID.Hex(), entities.MemberRejected)
	assert.Equal(t, services.ErrAlreadyResponded, errors.Cause(err))

	stored, err := setup.teamService.GetTeamWithID(context.Background(), team.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, entities.MemberAccepted, stored.Members[1].Status)
	assert.Equal(t, entities.TeamReady, stored.Status)
}

func Test_FreezeTeam__should_block_proof_submission_and_stay_idempotent(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	event := setup.createEvent(t, false)
	creator := setup.createStudent(t, "creator")
	member := setup.createStudent(t, "member")

	team, err := setup.teamService.CreateTeam(context.Background(),
		event.ID.Hex(), creator.ID.Hex(), []string{member.Email}, "")
	assert.NoError(t, err)

	team, err = setup.teamService.FreezeTeam(context.Background(), team.ID.Hex())
	assert.NoError(t, err)
	assert.True(t, team.IsFrozen)

	team, err = setup.teamService.FreezeTeam(context.Background(), team.ID.Hex())
	assert.NoError(t, err)
	assert.True(t, team.IsFrozen)

	_, err = setup.teamService.SubmitProofs(context.Background(),
		team.ID.Hex(), creator.ID.Hex(), []string{"uploads/report.pdf"})
	assert.Equal(t, services.ErrTeamFrozen, errors.Cause(err))
}

func Test_VerifyProofs__should_mark_ready_team_verified_on_mentor_approval(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	event := setup.createEvent(t, true)
	creator := setup.createStudent(t, "creator")
	member := setup.createStudent(t, "member")
	mentor := setup.createMentor(t, "mentor")

	team, err := setup.teamService.CreateTeam(context.Background(),
		event.ID.Hex(), creator.ID.Hex(), []string{member.Email}, mentor.Email)
	assert.NoError(t, err)

	_, err = setup.teamService.RespondToInvitation(context.Background(), team.ID.Hex(), member.ID.Hex(), entities.MemberAccepted)
	assert.NoError(t, err)
	_, err = setup.teamService.RespondToInvitation(context.Background(), team.ID.Hex(), mentor.ID.Hex(), entities.MemberAccepted)
	assert.NoError(t, err)

	_, err = setup.teamService.SubmitProofs(context.Background(),
		team.ID.Hex(), creator.ID.Hex(), []string{"uploads/report.pdf"})
	assert.NoError(t, err)

	team, err = setup.teamService.VerifyProofs(context.Background(),
		team.ID.Hex(), mentor.ID.Hex(), entities.VerificationApproved)
	assert.NoError(t, err)
	assert.Equal(t, entities.VerificationApproved, team.VerificationStatus)
	assert.Equal(t, entities.TeamVerified, team.Status)

	_, err = setup.teamService.VerifyProofs(context.Background(),
		team.ID.Hex(), creator.ID.Hex(), entities.VerificationApproved)
	assert.Equal(t, services.ErrNotAuthorized, errors.Cause(err))
}
