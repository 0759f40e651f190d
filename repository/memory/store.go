// Package memory implements the repository interfaces over a single
// in-process store. All collections live behind one mutex so every mutation,
// including the denormalized project counters it touches, is applied
// atomically: no reader ever observes a task without its counter bump.
package memory

import (
	"sync"

	"github.com/synergysphere/backend/domain"
)

// Store is the shared container backing the per-entity repositories.
// Collections preserve insertion order; lookups go through the id indexes.
type Store struct {
	mu sync.RWMutex

	users        []*domain.User
	usersByID    map[string]*domain.User
	usersByEmail map[string]*domain.User

	projects     []*domain.Project
	projectsByID map[string]*domain.Project
	selectedID   string

	tasks     []*domain.Task
	tasksByID map[string]*domain.Task

	notifications     []*domain.Notification
	notificationsByID map[string]*domain.Notification

	discussions []*domain.Discussion
}

// NewStore returns an empty store. Call Seed to load the demo fixtures.
func NewStore() *Store {
	return &Store{
		usersByID:         make(map[string]*domain.User),
		usersByEmail:      make(map[string]*domain.User),
		projectsByID:      make(map[string]*domain.Project),
		tasksByID:         make(map[string]*domain.Task),
		notificationsByID: make(map[string]*domain.Notification),
	}
}

// Counts reports collection sizes for the health monitor.
func (s *Store) Counts() (users, projects, tasks, notifications int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), len(s.projects), len(s.tasks), len(s.notifications)
}

// insertUser assumes the caller holds the write lock.
func (s *Store) insertUser(u *domain.User) {
	s.users = append(s.users, u)
	s.usersByID[u.ID] = u
	s.usersByEmail[u.Email] = u
}

func (s *Store) insertProject(p *domain.Project) {
	s.projects = append(s.projects, p)
	s.projectsByID[p.ID] = p
}

func (s *Store) insertTask(t *domain.Task) {
	s.tasks = append(s.tasks, t)
	s.tasksByID[t.ID] = t
}

func (s *Store) insertNotification(n *domain.Notification) {
	s.notifications = append(s.notifications, n)
	s.notificationsByID[n.ID] = n
}

// Snapshot helpers. Everything handed out of the store is a copy so callers
// cannot mutate shared state behind the lock.

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func cloneProject(p *domain.Project) *domain.Project {
	if p == nil {
		return nil
	}
	c := *p
	c.Members = append([]domain.User(nil), p.Members...)
	return &c
}

func cloneTask(t *domain.Task) *domain.Task {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func cloneNotification(n *domain.Notification) *domain.Notification {
	if n == nil {
		return nil
	}
	c := *n
	return &c
}
