// Package session keeps the signed-in user's bearer token and id in the local
// SQLite database so a restarted client resumes the session.
//
// Token and user id are written and removed together inside one transaction;
// Load never reports one without the other.
package session

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/vmis/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/vmis/internal/dbx"
	"github.com/dmitrijs2005/vmis/internal/logging"
)

const (
	tokenKey  = "session.token"
	userIDKey = "session.user_id"
)

// ErrIncomplete is returned by Save when the token or the user id is empty.
var ErrIncomplete = errors.New("session requires both token and user id")

// Session is the credential pair attached to API calls. The zero value is
// the signed-out session.
type Session struct {
	Token  string
	UserID string
}

// Authenticated reports whether the session carries a token.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.UserID != ""
}

// Store persists a Session.
type Store struct {
	db     *sql.DB
	logger logging.Logger
}

func NewStore(db *sql.DB, logger logging.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// Load returns the persisted session, or the zero Session when nothing (or
// only half of the pair) is stored or the storage cannot be read.
func (s *Store) Load(ctx context.Context) Session {
	repo := metadata.NewSQLiteRepository(s.db)

	token, okT, err := repo.Get(ctx, tokenKey)
	if err != nil {
		s.logger.Warn(ctx, "session restore failed", "error", err)
		return Session{}
	}
	userID, okU, err := repo.Get(ctx, userIDKey)
	if err != nil {
		s.logger.Warn(ctx, "session restore failed", "error", err)
		return Session{}
	}

	if !okT || !okU || token == "" || userID == "" {
		if okT != okU {
			s.logger.Warn(ctx, "ignoring partial session")
		}
		return Session{}
	}
	return Session{Token: token, UserID: userID}
}

// Save stores token and userID atomically.
func (s *Store) Save(ctx context.Context, token, userID string) error {
	if token == "" || userID == "" {
		return ErrIncomplete
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, tokenKey, token); err != nil {
			return err
		}
		return repo.Set(ctx, userIDKey, userID)
	})
}

// Clear removes the stored session. Clearing an empty store succeeds.
func (s *Store) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, tokenKey, userIDKey)
	})
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
