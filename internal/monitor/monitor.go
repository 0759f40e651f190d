// Package monitor samples store collection sizes and journal health for the
// health endpoint.
package monitor

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/synergysphere/backend/internal/journal"
)

// Counter exposes collection sizes; implemented by the memory store.
type Counter interface {
	Counts() (users, projects, tasks, notifications int)
}

type Monitor struct {
	store   Counter
	journal *journal.Journal

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	logger   *zap.Logger
}

func New(store Counter, j *journal.Journal, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		store:    store,
		journal:  j,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	close(m.stopCh)
}

// Healthy reports whether the store is reachable and, when configured, the
// journal is writable.
func (m *Monitor) Healthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.journal == nil {
		return m.store != nil
	}
	return m.store != nil && m.status.Journal
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.refresh()
	for {
		select {
		case <-ticker.C:
			m.refresh()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) refresh() {
	var status Status
	if m.store != nil {
		status.Users, status.Projects, status.Tasks, status.Notifications = m.store.Counts()
	}
	status.Journal, status.JournalSize = m.checkJournal()
	status.LastCheck = time.Now()

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}

func (m *Monitor) checkJournal() (bool, int) {
	if m.journal == nil {
		return false, 0
	}
	size, err := m.journal.Size()
	if err != nil {
		m.logger.Warn("journal size check failed", zap.Error(err))
		return false, size
	}
	return true, size
}
