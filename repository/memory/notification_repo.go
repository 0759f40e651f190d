package memory

import (
	"context"

	"github.com/synergysphere/backend/domain"
	"github.com/synergysphere/backend/repository"
)

type NotificationRepository struct {
	store *Store
}

func NewNotificationRepository(store *Store) *NotificationRepository {
	return &NotificationRepository{store: store}
}

func (r *NotificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	n, ok := r.store.notificationsByID[id]
	if !ok {
		return nil, domain.ErrNotificationNotFound
	}
	return cloneNotification(n), nil
}

func (r *NotificationRepository) List(ctx context.Context, filter repository.NotificationFilter) ([]domain.Notification, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []domain.Notification
	for _, n := range r.store.notifications {
		if filter.UnreadOnly && n.Read {
			continue
		}
		if filter.ProjectID != "" && n.ProjectID != filter.ProjectID {
			continue
		}
		out = append(out, *cloneNotification(n))
	}
	return out, nil
}

// MarkRead flips the read flag. Marking an already-read notification is an
// idempotent success.
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	n, ok := r.store.notificationsByID[id]
	if !ok {
		return nil, domain.ErrNotificationNotFound
	}
	n.Read = true
	return cloneNotification(n), nil
}

var _ repository.NotificationRepository = (*NotificationRepository)(nil)
