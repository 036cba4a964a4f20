package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/clothescatalog/internal/common"
	"github.com/dmitrijs2005/clothescatalog/internal/dbx"
	"github.com/dmitrijs2005/clothescatalog/internal/server/models"
	clothesrepo "github.com/dmitrijs2005/clothescatalog/internal/server/repositories/clothes"
	usersrepo "github.com/dmitrijs2005/clothescatalog/internal/server/repositories/users"
	"github.com/google/uuid"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// fakeUsersRepo is an in-memory users.Repository.
type fakeUsersRepo struct {
	mu      sync.Mutex
	byID    map[string]*models.User
	order   []string
	creates int

	createErr error
	getErr    error
	listErr   error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byID: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return nil, common.ErrEmailAlreadyRegistered
		}
	}
	f.creates++
	now := time.Now()
	c := *u
	c.ID = uuid.NewString()
	c.CreatedAt, c.LastModifiedAt = now, now
	f.byID[c.ID] = &c
	f.order = append(f.order, c.ID)
	out := c
	return &out, nil
}

func (f *fakeUsersRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *u
	return &out, nil
}

func (f *fakeUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.byID {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) List(context.Context) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*models.User, 0, len(f.order))
	for _, id := range f.order {
		u := *f.byID[id]
		out = append(out, &u)
	}
	return out, nil
}

func (f *fakeUsersRepo) UpdateRole(_ context.Context, id string, role models.Role) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u.Role = role
	u.LastModifiedAt = time.Now()
	out := *u
	return &out, nil
}

type fakeClothesRepo struct {
	items     []*models.Clothes
	createErr error
}

func (f *fakeClothesRepo) Create(_ context.Context, c *models.Clothes) (*models.Clothes, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	now := time.Now()
	out := *c
	out.ID = uuid.NewString()
	out.CreatedAt, out.LastModifiedAt = now, now
	f.items = append(f.items, &out)
	return &out, nil
}

func (f *fakeClothesRepo) List(context.Context) ([]*models.Clothes, error) {
	return append([]*models.Clothes{}, f.items...), nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	c *fakeClothesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) usersrepo.Repository          { return m.u }
func (m *fakeRepoManager) Clothes(dbx.DBTX) clothesrepo.Repository      { return m.c }
