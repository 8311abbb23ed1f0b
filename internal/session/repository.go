package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/studafishka/afishactl/internal/errors"
)

// Credentials is the persisted subset of the session: exactly the token pair,
// nothing else. The resolved user is never trusted from storage.
type Credentials struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Empty reports whether no access token is stored.
func (c Credentials) Empty() bool {
	return c.AccessToken == ""
}

// Repository persists the credential pair across process restarts.
//
// Load returns zero credentials (not an error) when nothing usable is stored,
// so a missing or corrupt snapshot degrades to a logged-out start.
type Repository interface {
	Load() (Credentials, error)
	Save(Credentials) error
	Clear() error
}

// FileRepository stores credentials as a JSON file with 0600 permissions.
type FileRepository struct {
	path string
}

// NewFileRepository creates a repository writing to the given file path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Path returns the backing file path.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads the stored credential pair. A missing or unparseable file yields
// zero credentials and no error: the session simply starts logged out.
func (r *FileRepository) Load() (Credentials, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Credentials{}, nil
		}
		return Credentials{}, errors.Wrap(errors.ErrCodeSessionLoadFailed,
			"cannot read credentials file", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		// Corrupt snapshot. Treat as absent rather than failing startup.
		return Credentials{}, nil
	}
	return creds, nil
}

// Save writes the credential pair, creating the parent directory if needed.
func (r *FileRepository) Save(creds Credentials) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeDirectoryFailed,
			"cannot create state directory", err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeSessionSaveFailed,
			"cannot encode credentials", err)
	}

	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed,
			"cannot write credentials file", err)
	}
	return nil
}

// Clear removes the credentials file. Removing an absent file is not an error.
func (r *FileRepository) Clear() error {
	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileWriteFailed,
			"cannot remove credentials file", err)
	}
	return nil
}

// MemoryRepository keeps credentials in memory. Used by tests and by
// invocations that must not touch the filesystem.
type MemoryRepository struct {
	creds Credentials
	saves int
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Load returns the stored credentials.
func (r *MemoryRepository) Load() (Credentials, error) {
	return r.creds, nil
}

// Save stores the credentials.
func (r *MemoryRepository) Save(creds Credentials) error {
	r.creds = creds
	r.saves++
	return nil
}

// Clear zeroes the stored credentials.
func (r *MemoryRepository) Clear() error {
	r.creds = Credentials{}
	return nil
}

// SaveCount returns how many times Save was called.
func (r *MemoryRepository) SaveCount() int {
	return r.saves
}
