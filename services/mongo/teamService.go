package mongo

import (
	"context"

	"github.com/innovcell/ic_events/config/role"
	"github.com/innovcell/ic_events/entities"
	"github.com/innovcell/ic_events/repositories"
	"github.com/innovcell/ic_events/services"
	"github.com/innovcell/ic_events/utils"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type mongoTeamService struct {
	logger         *zap.Logger
	teamRepository *repositories.TeamRepository
	userService    services.UserService
	eventService   services.EventService
	timeProvider   utils.TimeProvider
}

// NewMongoTeamService creates a new TeamService that uses MongoDB as the storage technology
func NewMongoTeamService(logger *zap.Logger, teamRepository *repositories.TeamRepository,
	userService services.UserService, eventService services.EventService, timeProvider utils.TimeProvider) services.TeamService {
	return &mongoTeamService{
		logger:         logger,
		teamRepository: teamRepository,
		userService:    userService,
		eventService:   eventService,
		timeProvider:   timeProvider,
	}
}

func (s *mongoTeamService) CreateTeam(ctx context.Context, eventID, creatorID string, memberEmails []string, mentorEmail string) (*entities.Team, error) {
	event, err := s.eventService.GetEventWithID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	creator, err := s.userService.GetUserWithID(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	members := make([]entities.User, 0, len(memberEmails))
	for _, email := range memberEmails {
		member, err := s.userService.GetUserWithEmail(ctx, email)
		if errors.Cause(err) == services.ErrNotFound {
			return nil, errors.Wrapf(services.ErrNotFound, "no user with email %s", email)
		} else if err != nil {
			return nil, err
		}
		if member.Role != role.Student {
			return nil, errors.Wrapf(services.ErrNotFound, "user with email %s is not a student", email)
		}
		members = append(members, *member)
	}

	var mentor *entities.User
	if event.RequiresMentor {
		if len(mentorEmail) == 0 {
			return nil, errors.Wrap(services.ErrNotFound, "event requires a mentor")
		}
		mentor, err = s.userService.GetUserWithEmail(ctx, mentorEmail)
		if errors.Cause(err) == services.ErrNotFound {
			return nil, errors.Wrapf(services.ErrNotFound, "no user with email %s", mentorEmail)
		} else if err != nil {
			return nil, err
		}
		if !mentor.Role.CanMentor() {
			return nil, errors.Wrapf(services.ErrNotFound, "user with email %s cannot mentor teams", mentorEmail)
		}
	}

	candidateIDs := []primitive.ObjectID{creator.ID}
	for i := range members {
		candidateIDs = append(candidateIDs, members[i].ID)
	}
	if mentor != nil {
		candidateIDs = append(candidateIDs, mentor.ID)
	}
	err = s.ensureNoMembershipForEvent(ctx, event.ID, candidateIDs)
	if err != nil {
		return nil, err
	}

	team, err := services.NewTeamBuilder(event, creator, s.timeProvider.Now()).
		WithMembers(members...).
		WithMentor(mentor).
		Build()
	if err != nil {
		return nil, err
	}

	_, err = s.teamRepository.InsertOne(ctx, *team)
	if isDuplicateKeyError(err) {
		// lost the race against a concurrent registration sharing a candidate;
		// the unique (event, user) indexes are the authority
		return nil, errors.Wrap(services.ErrDuplicateMembership, "concurrent registration for the same event")
	} else if err != nil {
		return nil, errors.Wrap(err, "could not create team")
	}

	return team, nil
}

func (s *mongoTeamService) GetTeams(ctx context.Context) ([]entities.Team, error) {
	cur, err := s.teamRepository.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "could not query for teams")
	}
	defer cur.Close(ctx)

	teams, err := decodeTeamsResult(ctx, cur)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode result")
	}

	return teams, nil
}

func (s *mongoTeamService) GetTeamWithID(ctx context.Context, teamID string) (*entities.Team, error) {
	mongoID, err := primitive.ObjectIDFromHex(teamID)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	res := s.teamRepository.FindOne(ctx, bson.M{
		string(entities.TeamID): mongoID,
	})

	team, err := decodeTeamResult(res)
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "could not query for team with ID")
	}

	return team, nil
}

func (s *mongoTeamService) GetTeamsForEvent(ctx context.Context, eventID string) ([]entities.Team, error) {
	mongoID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	cur, err := s.teamRepository.Find(ctx, bson.M{
		string(entities.TeamEvent): mongoID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not query for teams for event")
	}
	defer cur.Close(ctx)

	teams, err := decodeTeamsResult(ctx, cur)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode result")
	}

	return teams, nil
}

func (s *mongoTeamService) GetTeamForUserWithID(ctx context.Context, userID string) (*entities.Team, error) {
	mongoID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	res := s.teamRepository.FindOne(ctx, bson.M{
		"$or": []bson.M{
			{string(entities.TeamMembersUser): mongoID},
			{string(entities.TeamMentorUser): mongoID},
		},
	})

	team, err := decodeTeamResult(res)
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "could not query for team for user")
	}

	return team, nil
}

func (s *mongoTeamService) RespondToInvitation(ctx context.Context, teamID, userID string, decision entities.MemberStatus) (*entities.Team, error) {
	userMongoID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	team, err := s.GetTeamWithID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	err = services.ApplyInvitationResponse(team, userMongoID, decision, s.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	err = s.replaceTeam(ctx, team)
	if err != nil {
		return nil, err
	}

	return team, nil
}

func (s *mongoTeamService) FreezeTeam(ctx context.Context, teamID string) (*entities.Team, error) {
	team, err := s.GetTeamWithID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	services.ApplyFreeze(team)

	err = s.replaceTeam(ctx, team)
	if err != nil {
		return nil, err
	}

	return team, nil
}

func (s *mongoTeamService) SubmitProofs(ctx context.Context, teamID, userID string, fileRefs []string) (*entities.Team, error) {
	userMongoID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	team, err := s.GetTeamWithID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	err = services.ApplyProofSubmission(team, userMongoID, fileRefs)
	if err != nil {
		return nil, err
	}

	err = s.replaceTeam(ctx, team)
	if err != nil {
		return nil, err
	}

	return team, nil
}

func (s *mongoTeamService) VerifyProofs(ctx context.Context, teamID, advisorID string, decision entities.VerificationStatus) (*entities.Team, error) {
	advisorMongoID, err := primitive.ObjectIDFromHex(advisorID)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	team, err := s.GetTeamWithID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	err = services.ApplyVerification(team, advisorMongoID, decision)
	if err != nil {
		return nil, err
	}

	err = s.replaceTeam(ctx, team)
	if err != nil {
		return nil, err
	}

	return team, nil
}

// ensureNoMembershipForEvent fails with ErrDuplicateMembership if any of the
// candidates already appears in a team for the event, as member or mentor
func (s *mongoTeamService) ensureNoMembershipForEvent(ctx context.Context, eventID primitive.ObjectID, candidateIDs []primitive.ObjectID) error {
	res := s.teamRepository.FindOne(ctx, bson.M{
		string(entities.TeamEvent): eventID,
		"$or": []bson.M{
			{string(entities.TeamMembersUser): bson.M{"$in": candidateIDs}},
			{string(entities.TeamMentorUser): bson.M{"$in": candidateIDs}},
		},
	})

	err := res.Err()
	if err == nil {
		return services.ErrDuplicateMembership
	} else if err != mongo.ErrNoDocuments {
		return errors.Wrap(err, "could not query for existing membership")
	}

	return nil
}

func (s *mongoTeamService) replaceTeam(ctx context.Context, team *entities.Team) error {
	res, err := s.teamRepository.ReplaceOne(ctx, bson.M{
		string(entities.TeamID): team.ID,
	}, *team)
	if err != nil {
		return errors.Wrap(err, "could not update team")
	} else if res.MatchedCount == 0 {
		return services.ErrNotFound
	}

	return nil
}

func isDuplicateKeyError(err error) bool {
	writeException, ok := err.(mongo.WriteException)
	if !ok {
		return false
	}
	for _, writeErr := range writeException.WriteErrors {
		if writeErr.Code == 11000 {
			return true
		}
	}
	return false
}

func decodeTeamResult(res *mongo.SingleResult) (*entities.Team, error) {
	err := res.Err()
	if err != nil {
		return nil, errors.Wrap(err, "query returned error")
	}

	var team entities.Team
	err = res.Decode(&team)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode team")
	}

	return &team, nil
}

func decodeTeamsResult(ctx context.Context, cur *mongo.Cursor) ([]entities.Team, error) {
	var teams []entities.Team
	for cur.Next(ctx) {
		var team entities.Team
		err := cur.Decode(&team)
		if err != nil {
			return nil, errors.Wrap(err, "could not decode team")
		}
		teams = append(teams, team)
	}

	return teams, nil
}
