// Package guard decides whether the current session may enter a protected
// surface. The decision is pure: it has no side effects and no stored state,
// and it is re-evaluated on every navigation rather than cached.
package guard

import (
	"github.com/studafishka/afishactl/internal/session"
)

// Role is an independently held capability on a user profile.
type Role string

const (
	RoleStudent   Role = "student"
	RoleOrganizer Role = "organizer"
)

// DecisionKind enumerates the possible guard outcomes.
type DecisionKind int

const (
	// Render allows the requested surface.
	Render DecisionKind = iota
	// RedirectToLogin sends an unauthenticated actor to the login flow,
	// carrying the originally requested path.
	RedirectToLogin
	// RedirectToHome silently sends an authenticated actor without any of
	// the required roles back to the home surface.
	RedirectToHome
)

// Decision is the tagged outcome of a guard evaluation. Both redirect kinds
// are replace-navigations: the blocked path must not remain in history.
type Decision struct {
	Kind DecisionKind

	// ReturnTo is the originally requested path, set for RedirectToLogin so
	// the login flow can come back after success.
	ReturnTo string
}

// Evaluate gates access to a path requiring the given role set.
//
// An unauthenticated session is always redirected to login, regardless of the
// required roles. An authenticated user passes when the set is empty or when
// they hold at least one of the listed roles (match-any); otherwise they are
// redirected home.
func Evaluate(snap session.Snapshot, path string, required []Role) Decision {
	if !snap.Authenticated {
		return Decision{Kind: RedirectToLogin, ReturnTo: path}
	}

	if len(required) == 0 {
		return Decision{Kind: Render}
	}

	if snap.User != nil && hasAnyRole(snap.User, required) {
		return Decision{Kind: Render}
	}

	return Decision{Kind: RedirectToHome}
}

func hasAnyRole(u *session.User, required []Role) bool {
	for _, role := range required {
		switch role {
		case RoleStudent:
			if u.IsStudent {
				return true
			}
		case RoleOrganizer:
			if u.IsOrganizer {
				return true
			}
		}
	}
	return false
}

// RoleNames converts a role set to plain strings for messages.
func RoleNames(roles []Role) []string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return names
}
