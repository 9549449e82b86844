// Package eligibility implements the pure checks consulted by the team
// registry before a team is persisted. None of the functions in this
// package touch storage, which keeps them callable from tests and from
// any future request-validation surface.
package eligibility

import (
	"github.com/innovcell/ic_events/entities"
)

// CheckTeamSize returns true if candidateCount (creator included) lies
// within the event's configured bounds
func CheckTeamSize(candidateCount, min, max int) bool {
	return candidateCount >= min && candidateCount <= max
}

// CheckMemberEligibility returns true if the user satisfies the event's
// department and year restrictions. An event with no department restriction
// is college-wide and accepts any department; the same holds for years.
func CheckMemberEligibility(user *entities.User, event *entities.Event) bool {
	if len(event.Eligibility.Departments) > 0 {
		found := false
		for _, dept := range event.Eligibility.Departments {
			if dept == user.Department {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(event.Eligibility.Years) > 0 {
		found := false
		for _, year := range event.Eligibility.Years {
			if year == user.Year {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
