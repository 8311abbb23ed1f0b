// Package config resolves the client configuration from defaults, the YAML
// config file in the state directory, an optional .env file, and environment
// variables, in that order of increasing precedence.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/studafishka/afishactl/internal/errors"
)

const (
	// DefaultAPIBaseURL matches the platform's local development address.
	DefaultAPIBaseURL = "http://127.0.0.1:8000/api"

	// EnvAPIBaseURL overrides the API base URL.
	EnvAPIBaseURL = "AFISHA_API_URL"
	// EnvStateDir overrides the state directory.
	EnvStateDir = "AFISHA_STATE_DIR"
	// EnvLogLevel overrides the log level.
	EnvLogLevel = "AFISHA_LOG_LEVEL"

	credentialsFile = "credentials.json"
	configFile      = "config.yaml"
)

// Config holds the resolved client configuration.
type Config struct {
	// APIBaseURL is where the StudAfishka API lives.
	APIBaseURL string `yaml:"api_base_url"`

	// StateDir holds the credentials file and the config file itself.
	StateDir string `yaml:"-"`

	// LogLevel is the minimum level for diagnostic output.
	LogLevel string `yaml:"log_level"`
}

// CredentialsPath returns the path of the persisted token snapshot.
func (c Config) CredentialsPath() string {
	return filepath.Join(c.StateDir, credentialsFile)
}

// Load resolves the configuration. Missing files are fine; a config file
// that exists but does not parse is an error.
func Load() (Config, error) {
	// Best effort: a .env in the working directory may supply the
	// AFISHA_* variables below.
	_ = godotenv.Load()

	cfg := Config{
		APIBaseURL: DefaultAPIBaseURL,
		StateDir:   defaultStateDir(),
		LogLevel:   "warn",
	}

	if dir := os.Getenv(EnvStateDir); dir != "" {
		cfg.StateDir = dir
	}

	if err := cfg.applyFile(filepath.Join(cfg.StateDir, configFile)); err != nil {
		return Config{}, err
	}

	if url := os.Getenv(EnvAPIBaseURL); url != "" {
		cfg.APIBaseURL = url
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(errors.ErrCodeFileReadFailed, "cannot read config file", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.NewConfigInvalidError(path, err)
	}
	return nil
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".afishactl"
	}
	return filepath.Join(home, ".afishactl")
}
