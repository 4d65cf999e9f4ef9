// Package cli is the console presentation layer. It owns no data: every
// intent goes through the sync controller and every result arrives as a
// snapshot plus a status tag.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/userdesk/internal/client/config"
	"github.com/dmitrijs2005/userdesk/internal/client/remote"
	"github.com/dmitrijs2005/userdesk/internal/client/storage"
	"github.com/dmitrijs2005/userdesk/internal/client/syncer"
	"github.com/dmitrijs2005/userdesk/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config    *config.Config
	ctrl      *syncer.Controller
	repos     *storage.Repositories
	apiClient remote.Client
	logger    logging.Logger
	reader    *bufio.Reader

	lastStatus syncer.Status
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	repos, err := storage.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := remote.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout)
	ctrl := syncer.NewController(apiClient, repos.Mirror, repos.Session, logger)

	return &App{
		config:    c,
		ctrl:      ctrl,
		repos:     repos,
		apiClient: apiClient,
		logger:    logger,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	_ = a.apiClient.Close()
	_ = a.repos.Close()
}
