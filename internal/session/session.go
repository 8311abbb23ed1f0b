// Package session holds the client-side record of who the current actor is
// and whether that identity has been confirmed against the platform.
//
// The store is the single source of truth for authentication state. Only the
// token pair is persisted; the resolved user and the loading flag are always
// recomputed at startup by the two-phase bootstrap (Restore then
// ConfirmIdentity).
package session

import (
	"sync"

	"github.com/studafishka/afishactl/internal/log"
)

// User is the resolved identity returned by GET /users/me/.
//
// IsOrganizer and IsStudent are independent capabilities: a user may hold
// either, both, or neither.
type User struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	IsOrganizer bool   `json:"is_organizer"`
	IsStudent   bool   `json:"is_student"`
}

// Snapshot is a value copy of the session state for readers.
type Snapshot struct {
	AccessToken   string
	RefreshToken  string
	User          *User
	Authenticated bool
	Loading       bool
}

// Store is the mutable session. A token alone means "believed-authenticated
// pending profile confirmation"; Authenticated is true only once a user is
// resolved.
type Store struct {
	mu sync.Mutex

	accessToken  string
	refreshToken string
	user         *User
	authed       bool
	loading      bool

	// generation is bumped by Logout so that an in-flight identity fetch
	// started before the logout cannot resurrect the cleared session.
	generation uint64

	repo   Repository
	logger *log.Logger
}

// NewStore creates a session store backed by the given repository.
func NewStore(repo Repository, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Store{
		repo:   repo,
		logger: logger.With("component", "session"),
	}
}

// SetTokens unconditionally overwrites both token fields and persists the new
// pair. It does not touch the resolved user: callers follow up with SetUser
// once the profile fetch completes.
func (s *Store) SetTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accessToken = access
	s.refreshToken = refresh
	s.persistLocked()
}

// SetUser sets the resolved user and recomputes the derived state:
// Authenticated follows user presence, and loading ends either way.
// Passing nil records "identity resolution finished with no user".
func (s *Store) SetUser(u *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setUserLocked(u)
}

func (s *Store) setUserLocked(u *User) {
	s.user = u
	s.authed = u != nil
	s.loading = false
}

// Logout clears the tokens and the user, ends loading, and persists the now
// empty credential pair. It is idempotent.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accessToken = ""
	s.refreshToken = ""
	s.user = nil
	s.authed = false
	s.loading = false
	s.generation++
	s.persistLocked()
}

// SetLoading overrides the loading flag. Used only by the bootstrap sequence.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

// Snapshot returns a value copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var u *User
	if s.user != nil {
		copied := *s.user
		u = &copied
	}
	return Snapshot{
		AccessToken:   s.accessToken,
		RefreshToken:  s.refreshToken,
		User:          u,
		Authenticated: s.authed,
		Loading:       s.loading,
	}
}

// IsAuthenticated reports whether a user has been resolved for this session.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authed
}

// IsLoading reports whether identity is still being established.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// AccessToken returns the current bearer credential, or "" when logged out.
func (s *Store) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken
}

// User returns the resolved user, or nil.
func (s *Store) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	copied := *s.user
	return &copied
}

// Generation returns the logout generation counter.
func (s *Store) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// persistLocked writes the current token pair through the repository. The
// store never propagates persistence failures upward; the in-memory state is
// already mutated and callers are not expected to handle storage errors.
func (s *Store) persistLocked() {
	if s.repo == nil {
		return
	}
	creds := Credentials{
		AccessToken:  s.accessToken,
		RefreshToken: s.refreshToken,
	}
	if err := s.repo.Save(creds); err != nil {
		s.logger.Warn("failed to persist credentials", "error", err.Error())
	}
}
