package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studafishka/afishactl/internal/session"
)

func authedSnapshot(student, organizer bool) session.Snapshot {
	return session.Snapshot{
		AccessToken:   "T1",
		Authenticated: true,
		User: &session.User{
			ID:          1,
			Username:    "alice",
			IsStudent:   student,
			IsOrganizer: organizer,
		},
	}
}

func TestEvaluate_Unauthenticated(t *testing.T) {
	tests := []struct {
		name     string
		required []Role
	}{
		{"no roles", nil},
		{"empty roles", []Role{}},
		{"student", []Role{RoleStudent}},
		{"organizer", []Role{RoleOrganizer}},
		{"both", []Role{RoleStudent, RoleOrganizer}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Evaluate(session.Snapshot{}, "/my-events", tt.required)
			assert.Equal(t, RedirectToLogin, d.Kind)
			assert.Equal(t, "/my-events", d.ReturnTo)
		})
	}
}

func TestEvaluate_TokenAloneIsNotAuthenticated(t *testing.T) {
	// A restored token pending confirmation must not pass the guard.
	snap := session.Snapshot{AccessToken: "T1", Loading: true}
	d := Evaluate(snap, "/dashboard", []Role{RoleOrganizer})
	assert.Equal(t, RedirectToLogin, d.Kind)
}

func TestEvaluate_RoleMismatchRedirectsHome(t *testing.T) {
	d := Evaluate(authedSnapshot(true, false), "/dashboard", []Role{RoleOrganizer})
	assert.Equal(t, RedirectToHome, d.Kind)
	assert.Empty(t, d.ReturnTo)
}

func TestEvaluate_RoleMatch(t *testing.T) {
	tests := []struct {
		name      string
		student   bool
		organizer bool
		required  []Role
		want      DecisionKind
	}{
		{"student on student route", true, false, []Role{RoleStudent}, Render},
		{"organizer on organizer route", false, true, []Role{RoleOrganizer}, Render},
		{"student on organizer route", true, false, []Role{RoleOrganizer}, RedirectToHome},
		{"organizer on student route", false, true, []Role{RoleStudent}, RedirectToHome},
		{"both roles, either required", true, true, []Role{RoleOrganizer}, Render},
		{"neither role, any listed", false, false, []Role{RoleStudent, RoleOrganizer}, RedirectToHome},
		{"match-any: one of two suffices", true, false, []Role{RoleStudent, RoleOrganizer}, Render},
		{"no required roles", false, false, nil, Render},
		{"empty required roles", false, false, []Role{}, Render},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Evaluate(authedSnapshot(tt.student, tt.organizer), "/x", tt.required)
			assert.Equal(t, tt.want, d.Kind)
		})
	}
}

func TestEvaluate_IsPure(t *testing.T) {
	snap := authedSnapshot(true, false)
	first := Evaluate(snap, "/my-events", []Role{RoleStudent})
	second := Evaluate(snap, "/my-events", []Role{RoleStudent})
	assert.Equal(t, first, second)
	// The snapshot itself is untouched.
	assert.True(t, snap.Authenticated)
	require.NotNil(t, snap.User)
}

func TestRuleFor(t *testing.T) {
	tests := []struct {
		path      string
		wantFound bool
		wantRoles []Role
	}{
		{"/", true, nil},
		{"/login", true, nil},
		{"/register", true, nil},
		{"/events/17", true, nil},
		{"/my-events", true, []Role{RoleStudent}},
		{"/dashboard", true, []Role{RoleOrganizer}},
		{"/create-event", true, []Role{RoleOrganizer}},
		{"/edit-event/3", true, []Role{RoleOrganizer}},
		{"/events/3/participants", true, []Role{RoleOrganizer}},
		{"/events/3/check-in", true, []Role{RoleOrganizer}},
		{"/no-such-page", false, nil},
		{"/events/3/bogus", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rule := RuleFor(tt.path)
			if !tt.wantFound {
				assert.Nil(t, rule)
				return
			}
			require.NotNil(t, rule)
			assert.Equal(t, tt.wantRoles, rule.Roles)
		})
	}
}

func TestRoleNames(t *testing.T) {
	assert.Equal(t, []string{"student", "organizer"},
		RoleNames([]Role{RoleStudent, RoleOrganizer}))
}
