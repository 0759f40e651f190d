package memory

import (
	"context"
	"time"

	"github.com/synergysphere/backend/domain"
	"github.com/synergysphere/backend/repository"
)

type TaskRepository struct {
	store *Store
}

func NewTaskRepository(store *Store) *TaskRepository {
	return &TaskRepository{store: store}
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	t, ok := r.store.tasksByID[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return cloneTask(t), nil
}

// List returns matching tasks in creation order.
func (r *TaskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []domain.Task
	for _, t := range r.store.tasks {
		if filter.ProjectID != "" && t.ProjectID != filter.ProjectID {
			continue
		}
		if filter.AssigneeID != "" && t.Assignee.ID != filter.AssigneeID {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		out = append(out, *cloneTask(t))
	}
	return out, nil
}

// Create appends the task and increments the owning project's TaskCount in
// the same critical section. CompletedTasks is never touched at creation,
// even when the initial status is done: only status transitions into done are
// counted.
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil || task.ID == "" {
		return nil, domain.ErrInvalidPayload
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.projectsByID[task.ProjectID]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}

	t := cloneTask(task)
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = t.CreatedAt

	r.store.insertTask(t)
	p.TaskCount++
	return cloneTask(t), nil
}

// Update merges the patch into the task and refreshes UpdatedAt regardless of
// which fields changed. A not-done to done status transition increments the
// owning project's CompletedTasks; there is no decrement path, so moving a
// task back out of done leaves the counter where it is.
func (r *TaskRepository) Update(ctx context.Context, id string, patch repository.TaskPatch) (*domain.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	t, ok := r.store.tasksByID[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}

	wasDone := t.Status == domain.StatusDone

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Assignee != nil {
		t.Assignee = *patch.Assignee
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		t.DueDate = *patch.DueDate
	}
	t.UpdatedAt = time.Now()

	if !wasDone && t.Status == domain.StatusDone {
		if p, ok := r.store.projectsByID[t.ProjectID]; ok {
			p.CompletedTasks++
		}
	}
	return cloneTask(t), nil
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
