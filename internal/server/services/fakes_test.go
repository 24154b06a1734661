package services

import (
	"context"
	"database/sql"
	"sync"

	"github.com/dmitrijs2005/vmis/internal/common"
	"github.com/dmitrijs2005/vmis/internal/dbx"
	"github.com/dmitrijs2005/vmis/internal/resources"
	"github.com/dmitrijs2005/vmis/internal/server/models"
	"github.com/dmitrijs2005/vmis/internal/server/repositories/records"
	"github.com/dmitrijs2005/vmis/internal/server/repositories/users"
)

type fakeUsersRepo struct {
	mu      sync.Mutex
	byEmail map[string]*models.User
	getErr  error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byEmail: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, common.ErrAlreadyExists
	}
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUsersRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) GetUserByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

type fakeRecordsRepo struct {
	mu         sync.Mutex
	created    []*models.Record
	createErr  error
	lastFilter records.SearchFilter
	counts     map[resources.Kind]int
}

func (f *fakeRecordsRepo) Create(_ context.Context, rec *models.Record) (*models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, rec)
	return rec, nil
}

func (f *fakeRecordsRepo) List(_ context.Context, ownerID string, kind resources.Kind) ([]*models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Record, 0)
	for _, r := range f.created {
		if r.OwnerID == ownerID && r.Kind == kind {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecordsRepo) Search(_ context.Context, _ string, _ resources.Kind, sf records.SearchFilter) ([]*models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = sf
	return []*models.Record{}, nil
}

func (f *fakeRecordsRepo) CountByKind(context.Context, string) (map[resources.Kind]int, error) {
	return f.counts, nil
}

type fakeRepoManager struct {
	users   *fakeUsersRepo
	records *fakeRecordsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository             { return m.users }
func (m *fakeRepoManager) Records(dbx.DBTX) records.Repository         { return m.records }

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{users: newFakeUsersRepo(), records: &fakeRecordsRepo{}}
}
