package session

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/vmis/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()
	db, err := OpenDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db, logging.Discard()), db
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "tok1", "u1"))

	assert.Equal(t, Session{Token: "tok1", UserID: "u1"}, s.Load(ctx))
}

func TestLoad_Empty(t *testing.T) {
	s, _ := newStore(t)

	got := s.Load(context.Background())
	assert.Equal(t, Session{}, got)
	assert.False(t, got.Authenticated())
}

func TestSave_RejectsHalfSession(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.ErrorIs(t, s.Save(ctx, "tok", ""), ErrIncomplete)
	require.ErrorIs(t, s.Save(ctx, "", "u1"), ErrIncomplete)
	assert.Equal(t, Session{}, s.Load(ctx))
}

func TestSave_FailureLeavesNothingReadable(t *testing.T) {
	s, db := newStore(t)
	ctx := context.Background()

	// user id writes fail; the token write of the same transaction must roll back.
	_, err := db.Exec(`CREATE TRIGGER no_user BEFORE INSERT ON metadata
		WHEN NEW.key = 'session.user_id'
		BEGIN SELECT RAISE(ABORT, 'disk full'); END;`)
	require.NoError(t, err)

	require.Error(t, s.Save(ctx, "tok1", "u1"))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM metadata`).Scan(&n))
	assert.Zero(t, n)
	assert.Equal(t, Session{}, s.Load(ctx))
}

func TestLoad_IgnoresPartialRow(t *testing.T) {
	s, db := newStore(t)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO metadata(key, value) VALUES ('session.token', 'orphan')`)
	require.NoError(t, err)

	assert.Equal(t, Session{}, s.Load(ctx))
}

func TestClear_IdempotentAndRemovesBoth(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Save(ctx, "tok1", "u1"))
	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))

	assert.Equal(t, Session{}, s.Load(ctx))
}

func TestLoad_StorageErrorMeansSignedOut(t *testing.T) {
	s, db := newStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "tok1", "u1"))
	require.NoError(t, db.Close())

	assert.Equal(t, Session{}, s.Load(ctx))
}

func TestOpenDatabase_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "vmis.db")

	db, err := OpenDatabase(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewStore(db, logging.Discard()).Save(ctx, "tok1", "u1"))
	require.NoError(t, db.Close())

	db, err = OpenDatabase(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, Session{Token: "tok1", UserID: "u1"}, NewStore(db, logging.Discard()).Load(ctx))
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()
	db, err := OpenDatabase(ctx, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
}

func TestOpenDatabase_MigrationError(t *testing.T) {
	orig := gooseUp
	gooseUp = func(context.Context, *sql.DB) error { return errors.New("boom") }
	t.Cleanup(func() { gooseUp = orig })

	_, err := OpenDatabase(context.Background(), ":memory:")
	require.ErrorContains(t, err, "boom")
}
