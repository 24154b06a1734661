package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/vmis/internal/client/client"
	"github.com/dmitrijs2005/vmis/internal/client/config"
	"github.com/dmitrijs2005/vmis/internal/client/services"
	"github.com/dmitrijs2005/vmis/internal/client/session"
	"github.com/dmitrijs2005/vmis/internal/logging"
	"github.com/dmitrijs2005/vmis/internal/resources"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	api       client.API
	auth      services.AuthService
	dashboard services.DashboardService
	records   map[resources.Kind]*services.RecordService
	sess      session.Session
	userName  string
	reader    *bufio.Reader
	out       io.Writer
	closeFn   func() error
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := session.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}
	store := session.NewStore(db, logger)

	api, err := client.NewHTTPClient(c.BaseURL, c.HTTPTimeout, logger)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	a := &App{
		config:    c,
		logger:    logger,
		api:       api,
		auth:      services.NewAuthService(api, store, logger),
		dashboard: services.NewDashboardService(api),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		closeFn:   store.Close,
	}
	a.resetRecords()
	return a, nil
}

// resetRecords drops every canonical list; loads still in flight for the old
// lists are discarded.
func (a *App) resetRecords() {
	for _, svc := range a.records {
		svc.Close()
	}
	a.records = services.NewRecordServices(a.api, a.logger)
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.closeFn != nil {
			if err := a.closeFn(); err != nil {
				a.logger.Warn(ctx, "closing session store", "error", err)
			}
		}
	}()

	a.sess = a.auth.Restore(ctx)
	fmt.Fprintln(a.out, "Welcome to VMIS CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.sess.Authenticated()
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return "(signed out)"
	}
	if a.userName != "" {
		return fmt.Sprintf("(%s)", a.userName)
	}
	return fmt.Sprintf("(user %s)", a.sess.UserID)
}
