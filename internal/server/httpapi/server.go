// Package httpapi exposes the VMIS services over a JSON HTTP API.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/vmis/internal/logging"
	"github.com/dmitrijs2005/vmis/internal/resources"
	"github.com/dmitrijs2005/vmis/internal/server/models"
	"github.com/dmitrijs2005/vmis/internal/server/services"
	"github.com/gorilla/mux"
)

type UserService interface {
	Register(ctx context.Context, email, password, name string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
	Authenticate(token string) (string, error)
	User(ctx context.Context, id string) (*models.User, error)
}

type RecordService interface {
	List(ctx context.Context, ownerID string, kind resources.Kind) ([]*models.Record, error)
	Create(ctx context.Context, ownerID string, kind resources.Kind, data resources.Record) (*models.Record, error)
	Search(ctx context.Context, ownerID string, kind resources.Kind, query, category string) ([]*models.Record, error)
	Dashboard(ctx context.Context, owner *models.User) (*services.Dashboard, error)
}

type Server struct {
	address         string
	shutdownTimeout time.Duration
	users           UserService
	records         RecordService
	logger          logging.Logger
}

func NewServer(address string, shutdownTimeout time.Duration, l logging.Logger, us UserService, rs RecordService) *Server {
	return &Server{
		address:         address,
		shutdownTimeout: shutdownTimeout,
		users:           us,
		records:         rs,
		logger:          l.With("module", "http_server"),
	}
}

// Router builds the route table. Every resource kind gets its list and
// create endpoints.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(s.requestLogger)
	r.NotFoundHandler = s.requestLogger(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	}))
	r.MethodNotAllowedHandler = s.requestLogger(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}))

	r.HandleFunc("/login", s.login).Methods(http.MethodPost)
	r.HandleFunc("/register", s.register).Methods(http.MethodPost)

	authed := r.NewRoute().Subrouter()
	authed.Use(s.bearerAuth)
	authed.HandleFunc("/dashboard", s.dashboard).Methods(http.MethodGet)
	authed.HandleFunc("/search/{kind}", s.search).Methods(http.MethodGet)
	for _, def := range resources.All() {
		authed.HandleFunc("/"+def.ListEndpoint, s.list(def.Kind)).Methods(http.MethodGet)
		authed.HandleFunc("/"+def.CreateEndpoint, s.create(def.Kind)).Methods(http.MethodPost)
	}

	return r
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on l until ctx is done, then lets in-flight requests finish
// within the shutdown timeout.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", l.Addr().String())
		errCh <- srv.Serve(l)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
