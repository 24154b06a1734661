// Package services contains application services for the VMIS client.
// This file defines the authentication service: login, registration, session
// restore on startup, logout, and invalidation after an auth rejection.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/vmis/internal/client/client"
	"github.com/dmitrijs2005/vmis/internal/client/session"
	"github.com/dmitrijs2005/vmis/internal/logging"
	"github.com/dmitrijs2005/vmis/internal/resources"
)

// SessionStore is the persisted session the auth flow owns.
type SessionStore interface {
	Load(ctx context.Context) session.Session
	Save(ctx context.Context, token, userID string) error
	Clear(ctx context.Context) error
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: reject blank credentials locally, authenticate against the
//     server and persist the returned session.
//   - Register: create a new account on the server.
//   - Restore: read the persisted session; any storage problem means signed out.
//   - Logout: clear the persisted session.
//   - Invalidate: clear the session if err is an auth rejection (401/403).
type AuthService interface {
	Login(ctx context.Context, email, password string) (*client.LoginResult, error)
	Register(ctx context.Context, email, password, name string) error
	Restore(ctx context.Context) session.Session
	Logout(ctx context.Context) error
	Invalidate(ctx context.Context, err error) bool
}

type authService struct {
	api    client.API
	store  SessionStore
	logger logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(api client.API, store SessionStore, logger logging.Logger) AuthService {
	return &authService{api: api, store: store, logger: logger}
}

func requireFilled(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &resources.ValidationError{Field: field, Reason: "is required"}
	}
	return nil
}

func (a *authService) Login(ctx context.Context, email, password string) (*client.LoginResult, error) {
	if err := requireFilled("email", email); err != nil {
		return nil, err
	}
	if err := requireFilled("password", password); err != nil {
		return nil, err
	}

	res, err := a.api.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := a.store.Save(ctx, res.Token, res.User.ID); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	a.logger.Info(ctx, "signed in", "user_id", res.User.ID)
	return res, nil
}

func (a *authService) Register(ctx context.Context, email, password, name string) error {
	if err := requireFilled("email", email); err != nil {
		return err
	}
	if err := requireFilled("password", password); err != nil {
		return err
	}
	if err := requireFilled("name", name); err != nil {
		return err
	}
	if err := a.api.Register(ctx, strings.TrimSpace(email), password, strings.TrimSpace(name)); err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return nil
}

func (a *authService) Restore(ctx context.Context) session.Session {
	return a.store.Load(ctx)
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("session clearing error: %w", err)
	}
	a.logger.Info(ctx, "signed out")
	return nil
}

func (a *authService) Invalidate(ctx context.Context, err error) bool {
	if !client.IsAuthRejected(err) {
		return false
	}
	if cerr := a.store.Clear(ctx); cerr != nil {
		a.logger.Error(ctx, "clearing rejected session failed", "error", cerr)
	}
	a.logger.Warn(ctx, "session rejected by server", "status", client.StatusOf(err))
	return true
}
