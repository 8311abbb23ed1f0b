package cmd

import (
	"context"

	"github.com/studafishka/afishactl/internal/config"
	"github.com/studafishka/afishactl/internal/log"
	"github.com/studafishka/afishactl/internal/platform"
	"github.com/studafishka/afishactl/internal/session"
)

// runtime bundles what every command needs: the resolved config, the logger,
// the session store, and the API client reading its bearer token live from
// the store.
type runtime struct {
	cfg    config.Config
	logger *log.Logger
	store  *session.Store
	client *platform.Client
}

// newRuntime builds the runtime and runs the startup bootstrap. Nothing else
// may run before this returns: the synchronous restore computes the pending
// state, and the identity confirmation resolves it (fetching the profile
// behind a stored token, or purging a stale one). This is the CLI's version
// of blocking the whole application on the loading flag.
func newRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := log.New(log.Config{
		Level:  log.ParseLevel(cfg.LogLevel),
		Format: log.FormatText,
		Output: log.OutputStderr(),
	})
	log.SetDefaultLogger(logger)

	store := session.NewStore(session.NewFileRepository(cfg.CredentialsPath()), logger)
	client := platform.NewClient(cfg.APIBaseURL, store.AccessToken)

	rt := &runtime{
		cfg:    cfg,
		logger: logger,
		store:  store,
		client: client,
	}
	rt.bootstrap(ctx)
	return rt, nil
}

func (rt *runtime) bootstrap(ctx context.Context) {
	rt.store.Restore()
	rt.store.ConfirmIdentity(ctx, func(ctx context.Context) (*session.User, error) {
		return rt.client.CurrentUser(ctx)
	})
}
