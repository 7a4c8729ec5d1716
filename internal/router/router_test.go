package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gallery/cli/internal/models"
	"gallery/cli/internal/session"
)

type fakeState struct {
	status session.Status
	user   *models.User
}

func (f fakeState) Status() session.Status { return f.status }
func (f fakeState) User() *models.User     { return f.user }

var (
	anonymous = fakeState{status: session.StatusAnonymous}
	verifying = fakeState{status: session.StatusVerifying}
	plainUser = fakeState{
		status: session.StatusAuthenticated,
		user:   &models.User{ID: "u1", Role: models.UserRoleUser},
	}
	adminUser = fakeState{
		status: session.StatusAuthenticated,
		user:   &models.User{ID: "u2", Role: models.UserRoleAdmin},
	}
)

func TestResolve_PublicOnly(t *testing.T) {
	tests := []struct {
		name  string
		state fakeState
		want  Decision
	}{
		{"anonymous renders", anonymous, Decision{Outcome: OutcomeRender}},
		{"verifying suspends", verifying, Decision{Outcome: OutcomeLoading}},
		{"user redirects home", plainUser, Decision{Outcome: OutcomeRedirect, Target: "/"}},
		{"admin redirects home", adminUser, Decision{Outcome: OutcomeRedirect, Target: "/"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve("/login", tt.state))
			assert.Equal(t, tt.want, Resolve("/signup", tt.state))
		})
	}
}

func TestResolve_Auth(t *testing.T) {
	tests := []struct {
		name  string
		state fakeState
		want  Decision
	}{
		{"anonymous redirects to login", anonymous, Decision{Outcome: OutcomeRedirect, Target: "/login"}},
		{"verifying suspends", verifying, Decision{Outcome: OutcomeLoading}},
		{"user renders", plainUser, Decision{Outcome: OutcomeRender}},
		{"admin renders", adminUser, Decision{Outcome: OutcomeRender}},
	}
	for _, path := range []string{"/", "/profile", "/cohort", "/liked", "/reacted", "/tagged"} {
		for _, tt := range tests {
			t.Run(path+" "+tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, Resolve(path, tt.state))
			})
		}
	}
}

func TestResolve_Admin(t *testing.T) {
	tests := []struct {
		name  string
		state fakeState
		want  Decision
	}{
		{"anonymous redirects to login", anonymous, Decision{Outcome: OutcomeRedirect, Target: "/login"}},
		{"verifying suspends", verifying, Decision{Outcome: OutcomeLoading}},
		{"user redirects home", plainUser, Decision{Outcome: OutcomeRedirect, Target: "/"}},
		{"admin renders", adminUser, Decision{Outcome: OutcomeRender}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve("/admin", tt.state))
		})
	}
}

func TestResolve_UnmatchedPathAlwaysGoesHome(t *testing.T) {
	for _, state := range []fakeState{anonymous, verifying, plainUser, adminUser} {
		assert.Equal(t, Decision{Outcome: OutcomeRedirect, Target: "/"}, Resolve("/nope", state))
	}
}

func TestRoutes_EveryRouteHasExactlyOneGuard(t *testing.T) {
	seen := map[string]int{}
	for _, route := range Routes {
		seen[route.Path]++
	}
	for path, count := range seen {
		assert.Equal(t, 1, count, "route %s declared more than once", path)
	}
}
