package server

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/vmis/internal/dbx"
	"github.com/dmitrijs2005/vmis/internal/logging"
	"github.com/dmitrijs2005/vmis/internal/server/config"
	"github.com/dmitrijs2005/vmis/internal/server/repositories/records"
	"github.com/dmitrijs2005/vmis/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/vmis/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

type fakeManager struct {
	migrateErr error
	migrated   bool
}

func (m *fakeManager) RunMigrations(context.Context, *sql.DB) error {
	m.migrated = true
	return m.migrateErr
}
func (m *fakeManager) Users(db dbx.DBTX) users.Repository     { return users.NewPostgresRepository(db) }
func (m *fakeManager) Records(db dbx.DBTX) records.Repository { return records.NewPostgresRepository(db) }

func withSeams(t *testing.T, db *sql.DB, openErr error, m *fakeManager) {
	t.Helper()
	origOpen, origManager := openDB, newRepositoryManager
	openDB = func(string) (*sql.DB, error) { return db, openErr }
	newRepositoryManager = func() repomanager.RepositoryManager { return m }
	t.Cleanup(func() { openDB, newRepositoryManager = origOpen, origManager })
}

func testConfig() *config.Config {
	return &config.Config{
		EndpointAddr:          "127.0.0.1:0",
		SecretKey:             "k",
		TokenValidityDuration: time.Hour,
		ShutdownTimeout:       time.Second,
	}
}

func TestNewApp_RunsMigrations(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mock.ExpectPing()

	m := &fakeManager{}
	withSeams(t, db, nil, m)

	app, err := NewApp(context.Background(), testConfig(), logging.Discard())
	require.NoError(t, err)
	require.NotNil(t, app.server)
	require.True(t, m.migrated)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewApp_Errors(t *testing.T) {
	t.Run("open", func(t *testing.T) {
		withSeams(t, nil, errors.New("bad dsn"), &fakeManager{})
		_, err := NewApp(context.Background(), testConfig(), logging.Discard())
		require.ErrorContains(t, err, "db init error")
	})

	t.Run("ping", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		mock.ExpectPing().WillReturnError(errors.New("refused"))
		mock.ExpectClose()
		withSeams(t, db, nil, &fakeManager{})

		_, err = NewApp(context.Background(), testConfig(), logging.Discard())
		require.ErrorContains(t, err, "db ping error")
	})

	t.Run("migrations", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		mock.ExpectPing()
		mock.ExpectClose()
		withSeams(t, db, nil, &fakeManager{migrateErr: errors.New("boom")})

		_, err = NewApp(context.Background(), testConfig(), logging.Discard())
		require.ErrorContains(t, err, "migrations error: boom")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRun_StopsOnCancel(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mock.ExpectPing()
	mock.ExpectClose()
	withSeams(t, db, nil, &fakeManager{})

	app, err := NewApp(context.Background(), testConfig(), logging.Discard())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, app.Run(ctx))
	require.NoError(t, mock.ExpectationsWereMet())
}
