package httpapi

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/vmis/internal/common"
	"github.com/dmitrijs2005/vmis/internal/resources"
	"github.com/dmitrijs2005/vmis/internal/server/models"
	"github.com/dmitrijs2005/vmis/internal/server/services"
)

type fakeUsers struct {
	loginRes    *services.LoginResult
	loginErr    error
	registerErr error
	users       map[string]*models.User
	tokens      map[string]string
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{
		users:  map[string]*models.User{"u-1": {ID: "u-1", Email: "ann@example.com", Name: "Ann"}},
		tokens: map[string]string{"good": "u-1", "orphan": "u-gone"},
	}
}

func (f *fakeUsers) Register(_ context.Context, email, _, name string) (*models.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &models.User{ID: "u-new", Email: email, Name: name}, nil
}

func (f *fakeUsers) Login(context.Context, string, string) (*services.LoginResult, error) {
	return f.loginRes, f.loginErr
}

func (f *fakeUsers) Authenticate(token string) (string, error) {
	id, ok := f.tokens[token]
	if !ok {
		return "", common.ErrInvalidToken
	}
	return id, nil
}

func (f *fakeUsers) User(_ context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

type searchCall struct {
	owner           string
	kind            resources.Kind
	query, category string
}

type fakeRecords struct {
	mu        sync.Mutex
	stored    []*models.Record
	createErr error
	listErr   error
	searches  []searchCall
}

func (f *fakeRecords) List(_ context.Context, owner string, kind resources.Kind) ([]*models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []*models.Record{}
	for _, r := range f.stored {
		if r.OwnerID == owner && r.Kind == kind {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecords) Create(_ context.Context, owner string, kind resources.Kind, data resources.Record) (*models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	def, err := resources.Lookup(kind)
	if err != nil {
		return nil, err
	}
	clean, err := def.ValidateRecord(data)
	if err != nil {
		return nil, err
	}
	rec := &models.Record{ID: "r-1", Kind: kind, OwnerID: owner, Data: clean}
	f.stored = append(f.stored, rec)
	return rec, nil
}

func (f *fakeRecords) Search(_ context.Context, owner string, kind resources.Kind, query, category string) ([]*models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := resources.Lookup(kind); err != nil {
		return nil, err
	}
	f.searches = append(f.searches, searchCall{owner, kind, query, category})
	return []*models.Record{}, nil
}

func (f *fakeRecords) Dashboard(_ context.Context, u *models.User) (*services.Dashboard, error) {
	return &services.Dashboard{ReminderCount: len(f.stored), Name: u.Name}, nil
}
