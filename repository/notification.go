package repository

import (
	"context"

	"github.com/synergysphere/backend/domain"
)

// NotificationFilter narrows notification listings.
type NotificationFilter struct {
	UnreadOnly bool
	ProjectID  string
}

type NotificationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	List(ctx context.Context, filter NotificationFilter) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
}
