// Package server wires the VMIS backend together: database, migrations,
// services and the HTTP API.
package server

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/vmis/internal/logging"
	"github.com/dmitrijs2005/vmis/internal/server/config"
	"github.com/dmitrijs2005/vmis/internal/server/httpapi"
	"github.com/dmitrijs2005/vmis/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/vmis/internal/server/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	server  *httpapi.Server
	users   *services.UserService
	records *services.RecordService
}

// Seams for tests.
var (
	openDB = func(dsn string) (*sql.DB, error) {
		return sql.Open(repomanager.DriverName, dsn)
	}
	newRepositoryManager = repomanager.NewPostgresRepositoryManager
)

// NewApp connects to the database and applies pending migrations.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := newRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	us := services.NewUserService(db, rm, c)
	rs := services.NewRecordService(db, rm)

	return &App{
		config:  c,
		logger:  logger,
		db:      db,
		server:  httpapi.NewServer(c.EndpointAddr, c.ShutdownTimeout, logger, us, rs),
		users:   us,
		records: rs,
	}, nil
}

// Run serves the API until ctx is done and then closes the database.
func (app *App) Run(ctx context.Context) error {
	app.logger.Info(ctx, "Starting app...")

	defer func() {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err)
		}
	}()

	if err := app.server.Run(ctx); err != nil {
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}
