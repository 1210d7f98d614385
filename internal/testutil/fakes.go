// Package testutil provides in-memory repository implementations for tests.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mindwellhq/mindwell-backend/internal/apperr"
	"github.com/mindwellhq/mindwell-backend/internal/models"
)

// FakeUsers is an in-memory Users store keyed by id, unique by email.
type FakeUsers struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewFakeUsers() *FakeUsers {
	return &FakeUsers{users: map[string]models.User{}}
}

func (f *FakeUsers) Create(_ context.Context, name, email, hash string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return models.User{}, apperr.ErrConflict
		}
	}
	now := time.Now()
	u := models.User{
		ID: uuid.NewString(), Name: name, Email: email, PasswordHash: hash,
		Role: models.RoleUser, CreatedAt: now, UpdatedAt: now,
	}
	f.users[u.ID] = u
	return u, nil
}

func (f *FakeUsers) GetByID(_ context.Context, id string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return models.User{}, apperr.ErrNotFound
	}
	return u, nil
}

func (f *FakeUsers) GetByEmail(_ context.Context, email string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, apperr.ErrNotFound
}

// FakeAdmins mirrors FakeUsers for the admins table.
type FakeAdmins struct {
	mu     sync.Mutex
	admins map[string]models.Admin
}

func NewFakeAdmins() *FakeAdmins {
	return &FakeAdmins{admins: map[string]models.Admin{}}
}

func (f *FakeAdmins) Create(_ context.Context, name, email, hash string) (models.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.admins {
		if a.Email == email {
			return models.Admin{}, apperr.ErrConflict
		}
	}
	now := time.Now()
	a := models.Admin{
		ID: uuid.NewString(), Name: name, Email: email, PasswordHash: hash,
		Role: models.RoleAdmin, CreatedAt: now, UpdatedAt: now,
	}
	f.admins[a.ID] = a
	return a, nil
}

func (f *FakeAdmins) GetByID(_ context.Context, id string) (models.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.admins[id]
	if !ok {
		return models.Admin{}, apperr.ErrNotFound
	}
	return a, nil
}

func (f *FakeAdmins) GetByEmail(_ context.Context, email string) (models.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return models.Admin{}, apperr.ErrNotFound
}

func (f *FakeAdmins) UpdateProfile(_ context.Context, id string, name, email *string) (models.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.admins[id]
	if !ok {
		return models.Admin{}, apperr.ErrNotFound
	}
	if name != nil {
		a.Name = *name
	}
	if email != nil {
		a.Email = *email
	}
	a.UpdatedAt = time.Now()
	f.admins[id] = a
	return a, nil
}

// Delete removes an admin out of band; the real store never does this,
// but tests need it to exercise the profile NotFound path.
func (f *FakeAdmins) Delete(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.admins, id)
}

// FakeResources is an in-memory Resources store.
type FakeResources struct {
	mu        sync.Mutex
	resources map[string]models.Resource
}

func NewFakeResources() *FakeResources {
	return &FakeResources{resources: map[string]models.Resource{}}
}

func (f *FakeResources) Create(_ context.Context, r models.Resource) (models.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	r.ID = uuid.NewString()
	r.CreatedAt = now
	r.UpdatedAt = now
	if r.Tags == nil {
		r.Tags = []string{}
	}
	f.resources[r.ID] = r
	return r, nil
}

func (f *FakeResources) GetByID(_ context.Context, id string) (models.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.resources[id]
	if !ok {
		return models.Resource{}, apperr.ErrNotFound
	}
	return r, nil
}

func (f *FakeResources) List(_ context.Context, flt models.ResourceFilter) ([]models.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Resource{}
	for _, r := range f.resources {
		if flt.Type != nil && r.Type != *flt.Type {
			continue
		}
		if flt.IsPublished != nil && r.IsPublished != *flt.IsPublished {
			continue
		}
		out = append(out, r)
	}
	sortNewestFirst(out)
	return out, nil
}

func (f *FakeResources) Update(_ context.Context, r models.Resource) (models.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.resources[r.ID]; !ok {
		return models.Resource{}, apperr.ErrNotFound
	}
	r.UpdatedAt = time.Now()
	f.resources[r.ID] = r
	return r, nil
}

func (f *FakeResources) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.resources[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(f.resources, id)
	return nil
}

func (f *FakeResources) ListPublishedByType(_ context.Context, t models.ResourceType) ([]models.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Resource{}
	for _, r := range f.resources {
		if r.Type == t && r.IsPublished {
			out = append(out, r)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(rs []models.Resource) {
	sort.Slice(rs, func(i, j int) bool { return rs[i].CreatedAt.After(rs[j].CreatedAt) })
}

// FakeAuditLogs collects audit entries in memory.
type FakeAuditLogs struct {
	mu   sync.Mutex
	Logs []models.AuditLog
}

func NewFakeAuditLogs() *FakeAuditLogs { return &FakeAuditLogs{} }

func (f *FakeAuditLogs) Create(_ context.Context, l models.AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Logs = append(f.Logs, l)
	return nil
}

func (f *FakeAuditLogs) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Logs)
}
