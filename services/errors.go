package services

import "errors"

var (
	// ErrInvalidID is the error returned by services when
	// the id provided in the call to the service is invalid
	ErrInvalidID = errors.New("id was invalid or not provided")
	// ErrNotFound is the error returned by services when
	// the requested object could not be found
	ErrNotFound = errors.New("requested object could not be found")
	// ErrEmailTaken is the error returned by UserService
	// when the email provided on registration is already in use
	ErrEmailTaken = errors.New("email is already taken")
	// ErrNameTaken is the error returned by DepartmentService
	// when the department name provided is already in use
	ErrNameTaken = errors.New("name is already taken")
	// ErrInvalidTeamSize is the error returned by TeamService when the
	// candidate team's size falls outside the event's configured bounds
	ErrInvalidTeamSize = errors.New("team size is outside the event's allowed bounds")
	// ErrDuplicateMembership is the error returned by TeamService when a
	// candidate member or mentor already belongs to a team for the event
	ErrDuplicateMembership = errors.New("user already belongs to a team for this event")
	// ErrMemberNotEligible is the error returned by TeamService when a
	// candidate member does not satisfy the event's eligibility rules
	ErrMemberNotEligible = errors.New("user does not satisfy the event's eligibility rules")
	// ErrNotAuthorized is the error returned by services when the acting
	// user is not permitted to perform the requested operation
	ErrNotAuthorized = errors.New("user is not authorized to perform this operation")
	// ErrAlreadyResponded is the error returned by TeamService when an
	// invitee attempts to respond to an invitation a second time
	ErrAlreadyResponded = errors.New("invitation has already been responded to")
	// ErrTeamFrozen is the error returned by TeamService when a mutation
	// is attempted on a frozen team
	ErrTeamFrozen = errors.New("team is frozen and can no longer be modified")
	// ErrInvalidDecision is the error returned by TeamService when a
	// response or verification decision is not a recognized value
	ErrInvalidDecision = errors.New("decision must be either accepted or rejected")
	// ErrSendgridRejectedRequest is the error returned by EmailService
	// when Sendgrid rejects an email request
	ErrSendgridRejectedRequest = errors.New("email request was rejected by Sendgrid")
)
