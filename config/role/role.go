package role

// UserRole is a type for storing a user's role tier
type UserRole string

const SuperAdmin UserRole = "superadmin"
const Principal UserRole = "principal"
const Innovation UserRole = "innovation"
const Hod UserRole = "hod"
const Staff UserRole = "staff"
const Student UserRole = "student"

var allRoles = map[UserRole]bool{
	SuperAdmin: true,
	Principal:  true,
	Innovation: true,
	Hod:        true,
	Staff:      true,
	Student:    true,
}

// IsValid returns true if the role is one of the known role tiers
func (r UserRole) IsValid() bool {
	return allRoles[r]
}

// CanMentor returns true if a user with this role can be assigned
// as a team's mentor
func (r UserRole) CanMentor() bool {
	return r == Staff || r == Hod
}
