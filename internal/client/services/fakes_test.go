package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/vmis/internal/client/client"
	"github.com/dmitrijs2005/vmis/internal/client/session"
	"github.com/dmitrijs2005/vmis/internal/resources"
)

// fakeAPI implements client.API for unit tests.
type fakeAPI struct {
	mu sync.Mutex

	LoginRet *client.LoginResult
	LoginErr error

	RegisterErr error

	DashboardRet *client.DashboardStats
	DashboardErr error

	ListRet []resources.Record
	ListErr error

	CreateRet resources.Record
	CreateErr error

	LoginCalls    int
	RegisterCalls int
	ListCalls     int
	CreateCalls   int

	LastEmail          string
	LastPassword       string
	LastName           string
	LastEndpoint       string
	LastCreateEndpoint string
	LastRecord         resources.Record
	LastSession        session.Session
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (*client.LoginResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoginCalls++
	f.LastEmail, f.LastPassword = email, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeAPI) Register(ctx context.Context, email, password, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.RegisterCalls++
	f.LastEmail, f.LastPassword, f.LastName = email, password, name
	return f.RegisterErr
}

func (f *fakeAPI) Dashboard(ctx context.Context, sess session.Session) (*client.DashboardStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastSession = sess
	return f.DashboardRet, f.DashboardErr
}

func (f *fakeAPI) List(ctx context.Context, sess session.Session, endpoint string) ([]resources.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListCalls++
	f.LastEndpoint = endpoint
	f.LastSession = sess
	return f.ListRet, f.ListErr
}

func (f *fakeAPI) Create(ctx context.Context, sess session.Session, endpoint string, rec resources.Record) (resources.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls++
	f.LastCreateEndpoint = endpoint
	f.LastRecord = rec
	f.LastSession = sess
	return f.CreateRet, f.CreateErr
}

// fakeStore implements SessionStore in memory.
type fakeStore struct {
	sess     session.Session
	SaveErr  error
	ClearErr error
	Clears   int
}

func (s *fakeStore) Load(ctx context.Context) session.Session { return s.sess }

func (s *fakeStore) Save(ctx context.Context, token, userID string) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.sess = session.Session{Token: token, UserID: userID}
	return nil
}

func (s *fakeStore) Clear(ctx context.Context) error {
	s.Clears++
	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.sess = session.Session{}
	return nil
}
