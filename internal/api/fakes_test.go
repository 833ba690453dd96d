package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"career_portal/internal/domain"
	"career_portal/internal/store"
)

type fakeUsers struct {
	users []domain.User
}

func (f *fakeUsers) FindByID(_ context.Context, id uint) (domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, store.ErrNotFound
}

func (f *fakeUsers) FindAdminByEmail(_ context.Context, email string) (domain.User, error) {
	for _, u := range f.users {
		if u.Email == email && u.Role == domain.RoleAdmin {
			return u, nil
		}
	}
	return domain.User{}, store.ErrNotFound
}

// fakeApps mirrors the filtering rules of store.ApplicationStore in memory.
type fakeApps struct {
	mu        sync.Mutex
	apps      map[uint]domain.JobApplication
	nextID    uint
	failWrite error
	updates   int
}

func newFakeApps() *fakeApps {
	return &fakeApps{apps: map[uint]domain.JobApplication{}, nextID: 1}
}

func (f *fakeApps) seed(app domain.JobApplication) domain.JobApplication {
	f.mu.Lock()
	defer f.mu.Unlock()
	app.ID = f.nextID
	f.nextID++
	if app.CreatedAt.IsZero() {
		app.CreatedAt = time.Now()
	}
	app.UpdatedAt = app.CreatedAt
	f.apps[app.ID] = app
	return app
}

func (f *fakeApps) Create(_ context.Context, app *domain.JobApplication) error {
	if f.failWrite != nil {
		return f.failWrite
	}
	*app = f.seed(*app)
	return nil
}

func (f *fakeApps) FindByID(_ context.Context, id uint) (domain.JobApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.apps[id]
	if !ok {
		return domain.JobApplication{}, store.ErrNotFound
	}
	return app, nil
}

func (f *fakeApps) List(_ context.Context, q store.CandidateQuery) (store.CandidatePage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q = q.Normalize()

	matched := []domain.JobApplication{}
	for _, app := range f.apps {
		if q.Filtered() {
			if app.CreatedAt.Before(q.Since()) {
				continue
			}
			if q.Status != "" && app.Status != q.Status {
				continue
			}
			if q.Skill != "" && !contains(app.Skills, q.Skill) {
				continue
			}
		}
		matched = append(matched, app)
	}
	sort.Slice(matched, func(i, j int) bool {
		if q.Order == "asc" {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := q.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + q.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return store.CandidatePage{
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: store.TotalPages(total, q.Limit),
		Data:       matched[start:end],
	}, nil
}

func (f *fakeApps) UpdateStatus(_ context.Context, app *domain.JobApplication) error {
	if f.failWrite != nil {
		return f.failWrite
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.apps[app.ID]
	if !ok {
		return store.ErrNotFound
	}
	stored.Status = app.Status
	f.apps[app.ID] = stored
	f.updates++
	return nil
}

func (f *fakeApps) Delete(_ context.Context, id uint) (domain.JobApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.apps[id]
	if !ok {
		return domain.JobApplication{}, store.ErrNotFound
	}
	delete(f.apps, id)
	return app, nil
}

func (f *fakeApps) CountByStatus(context.Context) (store.StatusCounts, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var c store.StatusCounts
	for _, app := range f.apps {
		c.Total++
		switch app.Status {
		case domain.StatusView:
			c.View++
		case domain.StatusViewed:
			c.Viewed++
		case domain.StatusShortlisted:
			c.Shortlisted++
		case domain.StatusRejected:
			c.Rejected++
		}
	}
	return c, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

type fakeResumes struct {
	mu      sync.Mutex
	objects map[string]string
	failPut bool
}

func newFakeResumes() *fakeResumes {
	return &fakeResumes{objects: map[string]string{}}
}

func (f *fakeResumes) EnsureBucket(context.Context) error { return nil }

func (f *fakeResumes) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	if f.failPut {
		return "", errors.New("bucket unavailable")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	path := "mem/" + key
	f.objects[path] = string(b)
	return path, nil
}

func (f *fakeResumes) Delete(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, path)
	return nil
}

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (m *memCache) Get(_ context.Context, key string, dest any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (m *memCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = b
	return nil
}

func (m *memCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memCache) DeletePrefix(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			delete(m.data, k)
		}
	}
	return nil
}

func (m *memCache) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
