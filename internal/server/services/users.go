package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/vmis/internal/common"
	"github.com/dmitrijs2005/vmis/internal/cryptox"
	"github.com/dmitrijs2005/vmis/internal/resources"
	"github.com/dmitrijs2005/vmis/internal/server/auth"
	"github.com/dmitrijs2005/vmis/internal/server/config"
	"github.com/dmitrijs2005/vmis/internal/server/models"
	"github.com/dmitrijs2005/vmis/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// LoginResult is a successful login.
type LoginResult struct {
	Token string
	User  *models.User
}

// UserService registers accounts, verifies credentials and mints bearer
// tokens.
type UserService struct {
	db               *sql.DB
	repomanager      repomanager.RepositoryManager
	jwtSecret        []byte
	validityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:               db,
		repomanager:      m,
		jwtSecret:        []byte(cfg.SecretKey),
		validityDuration: cfg.TokenValidityDuration,
	}
}

// dummySalt and dummyHash are verified against when the email is unknown so
// both failure paths cost one key derivation.
var (
	dummySalt = make([]byte, cryptox.SaltSize)
	dummyHash = make([]byte, cryptox.KeySize)
)

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", &resources.ValidationError{Field: "email", Reason: "is required"}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", &resources.ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	return email, nil
}

// Register creates an account. A taken email yields common.ErrAlreadyExists.
func (s *UserService) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, &resources.ValidationError{Field: "password", Reason: "is required"}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &resources.ValidationError{Field: "name", Reason: "is required"}
	}

	pw := []byte(password)
	hash, salt := cryptox.HashPassword(pw)
	common.WipeByteArray(pw)

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Salt:         salt,
	}

	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the credentials. Malformed input yields a
// *resources.ValidationError, wrong credentials common.ErrForbidden.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, &resources.ValidationError{Field: "password", Reason: "is required"}
	}

	pw := []byte(password)
	defer common.WipeByteArray(pw)

	user, err := s.repomanager.Users(s.db).GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			cryptox.VerifyPassword(pw, dummySalt, dummyHash)
			return nil, common.ErrForbidden
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInternal, err)
	}

	if !cryptox.VerifyPassword(pw, user.Salt, user.PasswordHash) {
		return nil, common.ErrForbidden
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.validityDuration)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInternal, err)
	}
	return &LoginResult{Token: token, User: user}, nil
}

// Authenticate resolves a bearer token into a user id.
func (s *UserService) Authenticate(token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

// User returns the account with id.
func (s *UserService) User(ctx context.Context, id string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetUserByID(ctx, id)
}
