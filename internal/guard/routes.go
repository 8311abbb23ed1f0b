package guard

import (
	"regexp"
	"strings"
)

// Rule binds a route pattern to the roles it requires. A nil Roles slice on a
// protected rule means "any authenticated user".
type Rule struct {
	Pattern   string
	Protected bool
	Roles     []Role
}

// Routes is the application's route surface. Order matters: the first
// matching rule wins, and unmatched paths are a not-found, never a guard
// decision.
var Routes = []Rule{
	{Pattern: "/"},
	{Pattern: "/login"},
	{Pattern: "/register"},
	{Pattern: "/my-events", Protected: true, Roles: []Role{RoleStudent}},
	{Pattern: "/dashboard", Protected: true, Roles: []Role{RoleOrganizer}},
	{Pattern: "/create-event", Protected: true, Roles: []Role{RoleOrganizer}},
	{Pattern: "/edit-event/:id", Protected: true, Roles: []Role{RoleOrganizer}},
	{Pattern: "/events/:id/participants", Protected: true, Roles: []Role{RoleOrganizer}},
	{Pattern: "/events/:id/check-in", Protected: true, Roles: []Role{RoleOrganizer}},
	{Pattern: "/events/:id"},
}

// RuleFor returns the first rule matching the path, or nil when the path is
// unknown (a not-found surface).
func RuleFor(path string) *Rule {
	for i := range Routes {
		if matchPattern(Routes[i].Pattern, path) {
			return &Routes[i]
		}
	}
	return nil
}

var paramSegment = regexp.MustCompile(`^[^/]+$`)

// matchPattern matches a concrete path against a pattern where ":name"
// segments stand for a single path parameter.
func matchPattern(pattern, path string) bool {
	if pattern == path {
		return true
	}

	patParts := strings.Split(strings.Trim(pattern, "/"), "/")
	pathParts := strings.Split(strings.Trim(path, "/"), "/")
	if len(patParts) != len(pathParts) {
		return false
	}

	for i, part := range patParts {
		if strings.HasPrefix(part, ":") {
			if !paramSegment.MatchString(pathParts[i]) {
				return false
			}
			continue
		}
		if part != pathParts[i] {
			return false
		}
	}
	return true
}
