package repository

import (
	"context"
	"time"

	"github.com/synergysphere/backend/domain"
)

// TaskFilter narrows task listings. Zero fields match everything; results are
// always in creation order.
type TaskFilter struct {
	ProjectID  string
	AssigneeID string
	Status     domain.TaskStatus
}

// TaskPatch is a partial task update. Nil fields are left untouched. ID and
// ProjectID cannot be patched.
type TaskPatch struct {
	Title       *string
	Description *string
	Assignee    *domain.User
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
	DueDate     *time.Time
}

type TaskRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, id string, patch TaskPatch) (*domain.Task, error)
}
