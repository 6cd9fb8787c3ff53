// Package servicetest provides in-memory stores and an event recorder for
// tests of the service layer and everything above it.
package servicetest

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/iliyamo/contacts-api/internal/model"
	"github.com/iliyamo/contacts-api/internal/queue"
	"github.com/iliyamo/contacts-api/internal/repository"
)

// Users is an in-memory user store keyed by username.
type Users struct {
	mu    sync.Mutex
	users map[string]model.User
	Err   error // returned by every call when set
}

func NewUsers() *Users { return &Users{users: map[string]model.User{}} }

// User returns the stored row, bypassing Err.
func (m *Users) User(username string) (model.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[username]
	return u, ok
}

func (m *Users) Create(_ context.Context, u model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.users[u.Username]; ok {
		return repository.ErrUsernameExists
	}
	m.users[u.Username] = u
	return nil
}

func (m *Users) GetByUsername(_ context.Context, username string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return model.User{}, m.Err
	}
	u, ok := m.users[username]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (m *Users) GetByToken(_ context.Context, tokenHash string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return model.User{}, m.Err
	}
	for _, u := range m.users {
		if u.Token != nil && *u.Token == tokenHash {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (m *Users) SetToken(_ context.Context, username string, tokenHash *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	u, ok := m.users[username]
	if !ok {
		return repository.ErrNotFound
	}
	u.Token = tokenHash
	m.users[username] = u
	return nil
}

func (m *Users) UpdateProfile(_ context.Context, username string, name, passwordHash *string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return model.User{}, m.Err
	}
	u, ok := m.users[username]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	if name != nil {
		u.Name = *name
	}
	if passwordHash != nil {
		u.Password = *passwordHash
	}
	m.users[username] = u
	return u, nil
}

// Contacts is an in-memory contact store.  Search mirrors the SQL
// version: owner first, substring filters, id order.
type Contacts struct {
	mu     sync.Mutex
	nextID uint64
	rows   map[uint64]model.Contact
}

func NewContacts() *Contacts { return &Contacts{rows: map[uint64]model.Contact{}} }

func (m *Contacts) Create(_ context.Context, c model.Contact) (model.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	c.ID = m.nextID
	m.rows[c.ID] = c
	return c, nil
}

func (m *Contacts) GetOwned(_ context.Context, username string, id uint64) (model.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok || c.Username != username {
		return model.Contact{}, repository.ErrNotFound
	}
	return c, nil
}

func (m *Contacts) UpdateOwned(_ context.Context, username string, id uint64, p model.ContactPatch) (model.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok || c.Username != username {
		return model.Contact{}, repository.ErrNotFound
	}
	if p.FirstName != nil {
		c.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		c.LastName = p.LastName
	}
	if p.Email != nil {
		c.Email = p.Email
	}
	if p.Phone != nil {
		c.Phone = p.Phone
	}
	m.rows[id] = c
	return c, nil
}

func (m *Contacts) DeleteOwned(_ context.Context, username string, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok || c.Username != username {
		return repository.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *Contacts) Search(_ context.Context, username string, f model.ContactFilter) ([]model.Contact, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var hits []model.Contact
	for _, c := range m.rows {
		if c.Username != username {
			continue
		}
		if f.Name != "" && !strings.Contains(c.FirstName, f.Name) && !contains(c.LastName, f.Name) {
			continue
		}
		if f.Email != "" && !contains(c.Email, f.Email) {
			continue
		}
		if f.Phone != "" && !contains(c.Phone, f.Phone) {
			continue
		}
		hits = append(hits, c)
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].ID < hits[j].ID })

	out := []model.Contact{}
	pages := (len(hits) + f.Size - 1) / f.Size
	if f.Page <= pages {
		start := (f.Page - 1) * f.Size
		end := min(start+f.Size, len(hits))
		out = append(out, hits[start:end]...)
	}
	return out, int64(len(hits)), nil
}

func contains(p *string, sub string) bool { return p != nil && strings.Contains(*p, sub) }

// Recorder collects published events.
type Recorder struct {
	mu     sync.Mutex
	events []queue.Event
	Err    error // returned by Publish when set
}

func (r *Recorder) Publish(_ context.Context, ev queue.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return r.Err
}

func (r *Recorder) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Type
	}
	return out
}

// ErrStoreDown is a convenient non-domain failure for Users.Err.
var ErrStoreDown = errors.New("store down")

// Ptr returns a pointer to s.
func Ptr(s string) *string { return &s }

// Events returns a copy of everything published so far.
func (r *Recorder) Events() []queue.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]queue.Event(nil), r.events...)
}
