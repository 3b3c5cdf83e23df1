// Package cli is the interactive terminal frontend: a read-eval-print loop
// over the session, reset and number flows. The app owns the fetched number
// collection for the lifetime of the login; after every mutation it re-fetches
// from the backend instead of patching locally.
package cli

import (
	"bufio"
	"context"
	"os"

	"bingotrack/internal/client"
	"bingotrack/internal/config"
	"bingotrack/internal/logging"
	"bingotrack/internal/models"
	"bingotrack/internal/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	api     client.Client
	session *services.SessionFlow
	numbers *services.NumberService
	viewer  *models.Viewer

	records []models.NumberRecord
	filter  models.FilterCriteria
	sortBy  models.SortCriteria
	reader  *bufio.Reader
}

func NewApp(cfg *config.Config, logger logging.Logger) *App {
	api := client.NewHTTPClient(cfg.EndpointURL, logger)
	return &App{
		config:  cfg,
		logger:  logger,
		api:     api,
		session: services.NewSessionFlow(api, logger),
		numbers: services.NewNumberService(api, logger),
		viewer:  models.NewViewer(cfg.Locale),
		filter:  models.EmptyFilter(),
		sortBy:  models.DefaultSort(),
		reader:  bufio.NewReader(os.Stdin),
	}
}

func (a *App) Run(ctx context.Context) {
	printlnFn("bingotrack (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.Stage() == services.StageAuthenticated
}

func (a *App) status() string {
	switch a.session.Stage() {
	case services.StageAuthenticated:
		return a.session.Session().Name
	case services.StageCodeEntry:
		return "verification pending"
	}
	return ""
}

// vendorID panics outside an authenticated session; callers guard with
// isLoggedIn first.
func (a *App) vendorID() int64 {
	return a.session.Session().VendorID
}

func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		printlnFn("Log in first.")
		return services.ErrNotAuthenticated
	}
	return nil
}
