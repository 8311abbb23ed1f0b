package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/studafishka/afishactl/internal/errors"
	"github.com/studafishka/afishactl/internal/guard"
	"github.com/studafishka/afishactl/internal/tui"
)

// guardPath evaluates the guard for a protected path and acts on the
// decision the way the application's router would.
//
// Render: returns proceed=true and the command body runs. RedirectToLogin:
// returns an auth error naming the blocked path so the login hint carries a
// return path. RedirectToHome: silently falls back to the home surface (the
// public events listing) — an authorization failure is a redirect, never an
// error — and returns proceed=false with a nil error.
func (rt *runtime) guardPath(ctx context.Context, w io.Writer, path string, roles []guard.Role) (bool, error) {
	decision := guard.Evaluate(rt.store.Snapshot(), path, roles)

	switch decision.Kind {
	case guard.RedirectToLogin:
		return false, errors.NewAuthRequiredError(decision.ReturnTo)
	case guard.RedirectToHome:
		mismatch := errors.NewRoleMismatchError(path, guard.RoleNames(roles))
		fmt.Fprintln(w, tui.MutedStyle.Render(mismatch.Message+". Showing upcoming events instead."))
		fmt.Fprintln(w)
		return false, rt.renderHome(ctx, w)
	default:
		return true, nil
	}
}

// navigateTo renders the surface behind a route path. Used by login's
// --return-to to land the user where they originally wanted to go.
func (rt *runtime) navigateTo(ctx context.Context, w io.Writer, path string) error {
	rule := guard.RuleFor(path)
	if rule == nil {
		fmt.Fprintf(w, "No such page: %s\n", path)
		return nil
	}

	if rule.Protected {
		proceed, err := rt.guardPath(ctx, w, path, rule.Roles)
		if err != nil || !proceed {
			return err
		}
	}

	segments := strings.Split(strings.Trim(path, "/"), "/")
	switch rule.Pattern {
	case "/":
		return rt.renderHome(ctx, w)
	case "/events/:id":
		id, err := strconv.Atoi(segments[1])
		if err != nil {
			return errors.New(errors.ErrCodeEventInvalid, "event id must be a number")
		}
		return rt.renderEventDetail(ctx, w, id)
	case "/my-events":
		return rt.renderMyEvents(ctx, w)
	case "/dashboard":
		return rt.renderDashboard(ctx, w)
	case "/events/:id/participants":
		id, err := strconv.Atoi(segments[1])
		if err != nil {
			return errors.New(errors.ErrCodeEventInvalid, "event id must be a number")
		}
		return rt.renderParticipants(ctx, w, id)
	case "/events/:id/check-in":
		fmt.Fprintf(w, "Run 'afishactl check-in %s' to start the check-in console.\n", segments[1])
		return nil
	case "/create-event":
		fmt.Fprintln(w, "Run 'afishactl events create' to create an event.")
		return nil
	case "/edit-event/:id":
		fmt.Fprintf(w, "Run 'afishactl events edit %s' to edit the event.\n", segments[1])
		return nil
	case "/login", "/register":
		return nil
	}
	return nil
}
