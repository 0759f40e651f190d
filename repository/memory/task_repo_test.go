package memory

import (
	"context"
	"testing"
	"time"

	"github.com/synergysphere/backend/domain"
	"github.com/synergysphere/backend/repository"
)

func newTestStore(t *testing.T) (*Store, *ProjectRepository, *TaskRepository) {
	t.Helper()
	store := NewStore()
	return store, NewProjectRepository(store), NewTaskRepository(store)
}

func createProject(t *testing.T, projects *ProjectRepository, id, name string) *domain.Project {
	t.Helper()
	owner := domain.User{ID: "owner-" + id, Name: "Owner", Email: "owner-" + id + "@x.com", Initials: "O"}
	p, err := projects.Create(context.Background(), &domain.Project{
		ID:      id,
		Name:    name,
		Owner:   owner,
		Members: []domain.User{owner},
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return p
}

func createTask(t *testing.T, tasks *TaskRepository, id, projectID string, status domain.TaskStatus) *domain.Task {
	t.Helper()
	created, err := tasks.Create(context.Background(), &domain.Task{
		ID:        id,
		Title:     "task " + id,
		ProjectID: projectID,
		Status:    status,
		Priority:  domain.PriorityMedium,
	})
	if err != nil {
		t.Fatalf("create task %s: %v", id, err)
	}
	return created
}

func TestCreateTaskIncrementsProjectTaskCount(t *testing.T) {
	_, projects, tasks := newTestStore(t)
	createProject(t, projects, "p1", "Alpha")
	createProject(t, projects, "p2", "Beta")

	createTask(t, tasks, "t1", "p1", domain.StatusTodo)
	createTask(t, tasks, "t2", "p1", domain.StatusInProgress)
	createTask(t, tasks, "t3", "p2", domain.StatusTodo)

	p1, err := projects.GetByID(context.Background(), "p1")
	if err != nil {
		t.Fatalf("get project: %v", err)
	}
	if p1.TaskCount != 2 {
		t.Fatalf("expected task count 2, got %d", p1.TaskCount)
	}

	p2, _ := projects.GetByID(context.Background(), "p2")
	if p2.TaskCount != 1 {
		t.Fatalf("expected task count 1, got %d", p2.TaskCount)
	}
}

func TestCreateTaskWithDoneStatusDoesNotCountAsCompleted(t *testing.T) {
	// Only status transitions into done bump CompletedTasks; a task born done
	// is intentionally not counted.
	_, projects, tasks := newTestStore(t)
	createProject(t, projects, "p1", "Alpha")

	createTask(t, tasks, "t1", "p1", domain.StatusDone)

	p, _ := projects.GetByID(context.Background(), "p1")
	if p.TaskCount != 1 {
		t.Fatalf("expected task count 1, got %d", p.TaskCount)
	}
	if p.CompletedTasks != 0 {
		t.Fatalf("expected completed tasks 0, got %d", p.CompletedTasks)
	}
}

func TestCreateTaskUnknownProject(t *testing.T) {
	_, _, tasks := newTestStore(t)

	_, err := tasks.Create(context.Background(), &domain.Task{ID: "t1", Title: "orphan", ProjectID: "missing"})
	if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestUpdateTaskDoneTransitionIncrementsCompleted(t *testing.T) {
	_, projects, tasks := newTestStore(t)
	createProject(t, projects, "p1", "Alpha")
	createTask(t, tasks, "t1", "p1", domain.StatusTodo)

	done := domain.StatusDone
	if _, err := tasks.Update(context.Background(), "t1", repository.TaskPatch{Status: &done}); err != nil {
		t.Fatalf("update task: %v", err)
	}

	p, _ := projects.GetByID(context.Background(), "p1")
	if p.CompletedTasks != 1 {
		t.Fatalf("expected completed tasks 1, got %d", p.CompletedTasks)
	}

	// Marking it done a second time must not count again.
	if _, err := tasks.Update(context.Background(), "t1", repository.TaskPatch{Status: &done}); err != nil {
		t.Fatalf("repeat update: %v", err)
	}
	p, _ = projects.GetByID(context.Background(), "p1")
	if p.CompletedTasks != 1 {
		t.Fatalf("expected completed tasks to stay 1, got %d", p.CompletedTasks)
	}
}

func TestReopeningDoneTaskKeepsCompletedCount(t *testing.T) {
	// Pins the deliberate asymmetry: there is no decrement path out of done.
	_, projects, tasks := newTestStore(t)
	createProject(t, projects, "p1", "Alpha")
	createTask(t, tasks, "t1", "p1", domain.StatusTodo)

	done := domain.StatusDone
	todo := domain.StatusTodo
	if _, err := tasks.Update(context.Background(), "t1", repository.TaskPatch{Status: &done}); err != nil {
		t.Fatalf("complete task: %v", err)
	}
	if _, err := tasks.Update(context.Background(), "t1", repository.TaskPatch{Status: &todo}); err != nil {
		t.Fatalf("reopen task: %v", err)
	}

	p, _ := projects.GetByID(context.Background(), "p1")
	if p.CompletedTasks != 1 {
		t.Fatalf("expected completed tasks to remain 1 after reopen, got %d", p.CompletedTasks)
	}

	// Completing again counts a second transition.
	if _, err := tasks.Update(context.Background(), "t1", repository.TaskPatch{Status: &done}); err != nil {
		t.Fatalf("re-complete task: %v", err)
	}
	p, _ = projects.GetByID(context.Background(), "p1")
	if p.CompletedTasks != 2 {
		t.Fatalf("expected completed tasks 2 after second transition, got %d", p.CompletedTasks)
	}
}

func TestUpdateTaskRefreshesUpdatedAt(t *testing.T) {
	_, projects, tasks := newTestStore(t)
	createProject(t, projects, "p1", "Alpha")
	created := createTask(t, tasks, "t1", "p1", domain.StatusTodo)

	title := "renamed"
	updated, err := tasks.Update(context.Background(), "t1", repository.TaskPatch{Title: &title})
	if err != nil {
		t.Fatalf("update task: %v", err)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Fatalf("expected UpdatedAt to move forward: %v -> %v", created.UpdatedAt, updated.UpdatedAt)
	}
	if updated.Title != "renamed" {
		t.Fatalf("expected patched title, got %q", updated.Title)
	}
	if updated.Status != domain.StatusTodo {
		t.Fatalf("unpatched field changed: %s", updated.Status)
	}
}

func TestUpdateTaskUnknownID(t *testing.T) {
	_, _, tasks := newTestStore(t)

	title := "ghost"
	_, err := tasks.Update(context.Background(), "missing", repository.TaskPatch{Title: &title})
	if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestListTasksFiltersByProjectInCreationOrder(t *testing.T) {
	_, projects, tasks := newTestStore(t)
	createProject(t, projects, "p1", "Alpha")
	createProject(t, projects, "p2", "Beta")
	createTask(t, tasks, "t1", "p1", domain.StatusTodo)
	createTask(t, tasks, "t2", "p2", domain.StatusTodo)
	createTask(t, tasks, "t3", "p1", domain.StatusTodo)

	got, err := tasks.List(context.Background(), repository.TaskFilter{ProjectID: "p1"})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
	if got[0].ID != "t1" || got[1].ID != "t3" {
		t.Fatalf("expected creation order t1,t3; got %s,%s", got[0].ID, got[1].ID)
	}
}

func TestListTasksFiltersByStatusAndAssignee(t *testing.T) {
	_, projects, tasks := newTestStore(t)
	createProject(t, projects, "p1", "Alpha")

	assignee := domain.User{ID: "u9", Name: "Dana", Email: "dana@x.com", Initials: "D"}
	if _, err := tasks.Create(context.Background(), &domain.Task{
		ID: "t1", Title: "a", ProjectID: "p1", Status: domain.StatusDone, Assignee: assignee,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	createTask(t, tasks, "t2", "p1", domain.StatusTodo)

	got, _ := tasks.List(context.Background(), repository.TaskFilter{Status: domain.StatusDone})
	if len(got) != 1 || got[0].ID != "t1" {
		t.Fatalf("status filter returned %+v", got)
	}

	got, _ = tasks.List(context.Background(), repository.TaskFilter{AssigneeID: "u9"})
	if len(got) != 1 || got[0].ID != "t1" {
		t.Fatalf("assignee filter returned %+v", got)
	}
}

func TestTaskSnapshotsAreCopies(t *testing.T) {
	_, projects, tasks := newTestStore(t)
	createProject(t, projects, "p1", "Alpha")
	createTask(t, tasks, "t1", "p1", domain.StatusTodo)

	snap, _ := tasks.GetByID(context.Background(), "t1")
	snap.Title = "mutated outside the store"
	snap.DueDate = time.Now()

	fresh, _ := tasks.GetByID(context.Background(), "t1")
	if fresh.Title != "task t1" {
		t.Fatalf("store state leaked through snapshot: %q", fresh.Title)
	}
}
