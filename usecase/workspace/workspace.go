// Package workspace implements the domain store operations over projects,
// tasks and notifications.
package workspace

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/synergysphere/backend/domain"
	"github.com/synergysphere/backend/repository"
	"github.com/synergysphere/backend/usecase"
)

type UseCase struct {
	users         repository.UserRepository
	projects      repository.ProjectRepository
	tasks         repository.TaskRepository
	notifications repository.NotificationRepository
	recorder      usecase.ActivityRecorder
	logger        *zap.Logger
}

func New(
	users repository.UserRepository,
	projects repository.ProjectRepository,
	tasks repository.TaskRepository,
	notifications repository.NotificationRepository,
	recorder usecase.ActivityRecorder,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:         users,
		projects:      projects,
		tasks:         tasks,
		notifications: notifications,
		recorder:      recorder,
		logger:        logger,
	}
}

// CreateProjectInput carries the caller-supplied project fields. ID,
// timestamps and counters are assigned by the store.
type CreateProjectInput struct {
	Name        string
	Description string
	Members     []domain.User
	Owner       domain.User
}

// CreateTaskInput carries the caller-supplied task fields. Status defaults to
// todo and priority to medium when left empty.
type CreateTaskInput struct {
	Title       string
	Description string
	ProjectID   string
	Assignee    domain.User
	Creator     domain.User
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	DueDate     time.Time
}

// Identity resolves a user id to its identity record.
func (uc *UseCase) Identity(ctx context.Context, id string) (*domain.User, error) {
	return uc.users.GetByID(ctx, id)
}

// Identities resolves a list of user ids, failing on the first unknown id.
func (uc *UseCase) Identities(ctx context.Context, ids []string) ([]domain.User, error) {
	out := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		user, err := uc.users.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *user)
	}
	return out, nil
}

func (uc *UseCase) Projects(ctx context.Context) ([]domain.Project, error) {
	return uc.projects.List(ctx)
}

func (uc *UseCase) Project(ctx context.Context, id string) (*domain.Project, error) {
	return uc.projects.GetByID(ctx, id)
}

func (uc *UseCase) CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	if strings.TrimSpace(input.Name) == "" || input.Owner.ID == "" {
		return nil, domain.ErrInvalidPayload
	}

	project := &domain.Project{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Members:     input.Members,
		Owner:       input.Owner,
		CreatedAt:   time.Now(),
	}
	created, err := uc.projects.Create(ctx, project)
	if err != nil {
		return nil, err
	}

	uc.recordProject(ctx, usecase.ActionCreate, created)
	uc.logger.Info("project created", zap.String("project_id", created.ID), zap.String("owner_id", created.Owner.ID))
	return created, nil
}

// SelectProject records the currently viewed project.
func (uc *UseCase) SelectProject(ctx context.Context, projectID string) (*domain.Project, error) {
	selected, err := uc.projects.Select(ctx, projectID)
	if err != nil {
		return nil, err
	}
	uc.recordProject(ctx, usecase.ActionSelect, selected)
	return selected, nil
}

// SelectedProject returns the currently viewed project, or nil when none has
// been selected.
func (uc *UseCase) SelectedProject(ctx context.Context) (*domain.Project, error) {
	return uc.projects.Selected(ctx)
}

// AddProjectMember appends an identity to the project member set. Re-adding
// an existing member succeeds without growing the set.
func (uc *UseCase) AddProjectMember(ctx context.Context, projectID string, member domain.User) (*domain.Project, error) {
	if member.ID == "" {
		return nil, domain.ErrInvalidPayload
	}
	project, err := uc.projects.AddMember(ctx, projectID, member)
	if err != nil {
		return nil, err
	}
	uc.recordProject(ctx, usecase.ActionMemberAdd, project)
	return project, nil
}

func (uc *UseCase) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	if strings.TrimSpace(input.Title) == "" || input.ProjectID == "" {
		return nil, domain.ErrInvalidPayload
	}
	if input.Status == "" {
		input.Status = domain.StatusTodo
	}
	if input.Priority == "" {
		input.Priority = domain.PriorityMedium
	}
	if !input.Status.Valid() || !input.Priority.Valid() {
		return nil, domain.ErrInvalidPayload
	}

	now := time.Now()
	task := &domain.Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		ProjectID:   input.ProjectID,
		Assignee:    input.Assignee,
		Creator:     input.Creator,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := uc.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	uc.recordTask(ctx, usecase.ActionCreate, created)
	uc.logger.Info("task created",
		zap.String("task_id", created.ID),
		zap.String("project_id", created.ProjectID),
		zap.String("status", string(created.Status)))
	return created, nil
}

func (uc *UseCase) Task(ctx context.Context, id string) (*domain.Task, error) {
	return uc.tasks.GetByID(ctx, id)
}

// UpdateTask merges a partial update into the task. Unknown ids report
// NOT_FOUND rather than silently no-oping.
func (uc *UseCase) UpdateTask(ctx context.Context, id string, patch repository.TaskPatch) (*domain.Task, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, domain.ErrInvalidPayload
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return nil, domain.ErrInvalidPayload
	}

	updated, err := uc.tasks.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	uc.recordTask(ctx, usecase.ActionUpdate, updated)
	return updated, nil
}

// ProjectTasks returns the project's tasks in creation order.
func (uc *UseCase) ProjectTasks(ctx context.Context, projectID string) ([]domain.Task, error) {
	if _, err := uc.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return uc.tasks.List(ctx, repository.TaskFilter{ProjectID: projectID})
}

func (uc *UseCase) ListTasks(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	return uc.tasks.List(ctx, filter)
}

func (uc *UseCase) Notifications(ctx context.Context, filter repository.NotificationFilter) ([]domain.Notification, error) {
	return uc.notifications.List(ctx, filter)
}

func (uc *UseCase) MarkNotificationRead(ctx context.Context, id string) (*domain.Notification, error) {
	notification, err := uc.notifications.MarkRead(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.recordNotification(ctx, usecase.ActionMarkRead, notification)
	return notification, nil
}

func (uc *UseCase) recordProject(ctx context.Context, action string, project *domain.Project) {
	if uc.recorder == nil {
		return
	}
	if err := uc.recorder.RecordProject(ctx, action, project); err != nil {
		uc.logger.Warn("failed to record project activity", zap.String("action", action), zap.Error(err))
	}
}

func (uc *UseCase) recordTask(ctx context.Context, action string, task *domain.Task) {
	if uc.recorder == nil {
		return
	}
	if err := uc.recorder.RecordTask(ctx, action, task); err != nil {
		uc.logger.Warn("failed to record task activity", zap.String("action", action), zap.Error(err))
	}
}

func (uc *UseCase) recordNotification(ctx context.Context, action string, notification *domain.Notification) {
	if uc.recorder == nil {
		return
	}
	if err := uc.recorder.RecordNotification(ctx, action, notification); err != nil {
		uc.logger.Warn("failed to record notification activity", zap.String("action", action), zap.Error(err))
	}
}
