// Package router decides whether a route renders for the current session or
// redirects. Every declared route sits behind exactly one guard; unmatched
// paths always go home.
package router

import (
	"gallery/cli/internal/models"
	"gallery/cli/internal/session"
)

type Guard int

const (
	// GuardPublicOnly renders only for anonymous sessions.
	GuardPublicOnly Guard = iota
	// GuardAuth renders only for authenticated sessions.
	GuardAuth
	// GuardAdmin renders only for authenticated sessions with the ADMIN role.
	GuardAdmin
)

type Route struct {
	Path  string
	Guard Guard
}

// Routes is the full route tree, mirroring the pages the app ships.
var Routes = []Route{
	{Path: "/login", Guard: GuardPublicOnly},
	{Path: "/signup", Guard: GuardPublicOnly},
	{Path: "/", Guard: GuardAuth},
	{Path: "/profile", Guard: GuardAuth},
	{Path: "/cohort", Guard: GuardAuth},
	{Path: "/liked", Guard: GuardAuth},
	{Path: "/reacted", Guard: GuardAuth},
	{Path: "/tagged", Guard: GuardAuth},
	{Path: "/admin", Guard: GuardAdmin},
}

type Outcome int

const (
	OutcomeRender Outcome = iota
	OutcomeRedirect
	OutcomeLoading
)

type Decision struct {
	Outcome Outcome
	// Target is the redirect destination when Outcome is OutcomeRedirect.
	Target string
}

func render() Decision            { return Decision{Outcome: OutcomeRender} }
func redirect(to string) Decision { return Decision{Outcome: OutcomeRedirect, Target: to} }

// State is the slice of the session store the guards consult.
type State interface {
	Status() session.Status
	User() *models.User
}

// Resolve evaluates the guard for path against the session. While the
// session is still verifying, the only answer is Loading: no redirect
// decision is made on an unresolved session.
func Resolve(path string, state State) Decision {
	route, ok := lookup(path)
	if !ok {
		return redirect("/")
	}

	if state.Status() == session.StatusVerifying {
		return Decision{Outcome: OutcomeLoading}
	}
	authenticated := state.Status() == session.StatusAuthenticated

	switch route.Guard {
	case GuardPublicOnly:
		if authenticated {
			return redirect("/")
		}
		return render()
	case GuardAuth:
		if !authenticated {
			return redirect("/login")
		}
		return render()
	case GuardAdmin:
		if !authenticated {
			return redirect("/login")
		}
		if !state.User().IsAdmin() {
			return redirect("/")
		}
		return render()
	}

	return redirect("/")
}

func lookup(path string) (Route, bool) {
	for _, route := range Routes {
		if route.Path == path {
			return route, true
		}
	}
	return Route{}, false
}
