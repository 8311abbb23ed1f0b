package session

import (
	"context"
)

// UserFetcher resolves the profile behind a bearer token, normally
// platform.Client.CurrentUser. It is injected so the bootstrap is testable
// without a live API.
type UserFetcher func(ctx context.Context) (*User, error)

// Restore is phase one of the bootstrap: it synchronously rehydrates the
// token pair from the repository and computes the initial loading flag. A
// token without a resolved user means identity is pending, so loading starts
// true; otherwise the session is already settled (logged out).
//
// Restore performs no network I/O and runs exactly once per process, before
// any command body.
func (s *Store) Restore() {
	var creds Credentials
	if s.repo != nil {
		loaded, err := s.repo.Load()
		if err != nil {
			s.logger.Warn("credential restore failed, starting logged out", "error", err.Error())
		} else {
			creds = loaded
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.accessToken = creds.AccessToken
	s.refreshToken = creds.RefreshToken
	s.loading = s.accessToken != "" && s.user == nil
}

// ConfirmIdentity is phase two of the bootstrap: it turns a restored token
// into a confirmed user or a logged-out session.
//
// With no token present it simply ends loading. Otherwise it fetches the
// current user with the restored token attached; success resolves the
// identity, and any failure (transport error, rejection, malformed response)
// purges the stale token via Logout. This is the only mechanism by which an
// invalid persisted token leaves storage.
//
// A logout racing the fetch wins: the response is discarded when the logout
// generation moved while the request was in flight.
func (s *Store) ConfirmIdentity(ctx context.Context, fetch UserFetcher) {
	s.mu.Lock()
	if s.accessToken == "" {
		s.loading = false
		s.mu.Unlock()
		return
	}
	s.loading = true
	gen := s.generation
	s.mu.Unlock()

	user, err := fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != gen {
		s.logger.Debug("discarding identity fetched for a superseded session")
		return
	}

	if err != nil {
		s.logger.Info("stored token rejected, logging out", "error", err.Error())
		s.accessToken = ""
		s.refreshToken = ""
		s.user = nil
		s.authed = false
		s.loading = false
		s.generation++
		s.persistLocked()
		return
	}

	s.setUserLocked(user)
}
