package workspace

import (
	"context"
	"errors"
	"testing"

	"github.com/synergysphere/backend/domain"
	"github.com/synergysphere/backend/repository"
	"github.com/synergysphere/backend/repository/memory"
	"github.com/synergysphere/backend/usecase"
)

type stubRecorder struct {
	sessions      []string
	projects      []string
	tasks         []string
	notifications []string
	fail          bool
}

func (s *stubRecorder) RecordSession(ctx context.Context, action string, user *domain.User) error {
	s.sessions = append(s.sessions, action)
	return s.err()
}

func (s *stubRecorder) RecordProject(ctx context.Context, action string, project *domain.Project) error {
	s.projects = append(s.projects, action)
	return s.err()
}

func (s *stubRecorder) RecordTask(ctx context.Context, action string, task *domain.Task) error {
	s.tasks = append(s.tasks, action)
	return s.err()
}

func (s *stubRecorder) RecordNotification(ctx context.Context, action string, notification *domain.Notification) error {
	s.notifications = append(s.notifications, action)
	return s.err()
}

func (s *stubRecorder) err() error {
	if s.fail {
		return errors.New("journal unavailable")
	}
	return nil
}

func newTestUseCase(t *testing.T, recorder usecase.ActivityRecorder) *UseCase {
	t.Helper()
	store := memory.NewStore()
	return New(
		memory.NewUserRepository(store),
		memory.NewProjectRepository(store),
		memory.NewTaskRepository(store),
		memory.NewNotificationRepository(store),
		recorder,
		nil,
	)
}

func owner() domain.User {
	return domain.User{ID: "u1", Name: "Sarah Johnson", Email: "sarah@x.com", Initials: "SJ"}
}

func mustCreateProject(t *testing.T, uc *UseCase, name string) *domain.Project {
	t.Helper()
	p, err := uc.CreateProject(context.Background(), CreateProjectInput{
		Name:  name,
		Owner: owner(),
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return p
}

func TestCreateProjectAssignsIDAndZeroCounters(t *testing.T) {
	uc := newTestUseCase(t, nil)

	p := mustCreateProject(t, uc, "Alpha")
	if p.ID == "" {
		t.Fatal("expected generated project id")
	}
	if p.TaskCount != 0 || p.CompletedTasks != 0 {
		t.Fatalf("expected zero counters, got %d/%d", p.TaskCount, p.CompletedTasks)
	}
	if !p.HasMember("u1") {
		t.Fatal("owner missing from members")
	}
}

func TestCreateProjectValidation(t *testing.T) {
	uc := newTestUseCase(t, nil)

	if _, err := uc.CreateProject(context.Background(), CreateProjectInput{Name: "  "}); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("expected INVALID, got %v", err)
	}
}

func TestCreateTaskDefaultsAndCounter(t *testing.T) {
	uc := newTestUseCase(t, nil)
	p := mustCreateProject(t, uc, "Alpha")

	task, err := uc.CreateTask(context.Background(), CreateTaskInput{
		Title:     "First task",
		ProjectID: p.ID,
		Creator:   owner(),
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if task.Status != domain.StatusTodo {
		t.Fatalf("expected todo default, got %s", task.Status)
	}
	if task.Priority != domain.PriorityMedium {
		t.Fatalf("expected medium default, got %s", task.Priority)
	}
	if task.CreatedAt.IsZero() || !task.UpdatedAt.Equal(task.CreatedAt) {
		t.Fatalf("expected matching creation timestamps, got %v / %v", task.CreatedAt, task.UpdatedAt)
	}

	refreshed, _ := uc.Project(context.Background(), p.ID)
	if refreshed.TaskCount != 1 {
		t.Fatalf("expected task count 1, got %d", refreshed.TaskCount)
	}
}

func TestCreateTaskRejectsUnknownStatus(t *testing.T) {
	uc := newTestUseCase(t, nil)
	p := mustCreateProject(t, uc, "Alpha")

	_, err := uc.CreateTask(context.Background(), CreateTaskInput{
		Title:     "Weird",
		ProjectID: p.ID,
		Status:    domain.TaskStatus("archived"),
	})
	if !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("expected INVALID, got %v", err)
	}
}

func TestUpdateTaskCompletionFlow(t *testing.T) {
	uc := newTestUseCase(t, nil)
	p := mustCreateProject(t, uc, "Alpha")
	task, err := uc.CreateTask(context.Background(), CreateTaskInput{Title: "t", ProjectID: p.ID})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	done := domain.StatusDone
	if _, err := uc.UpdateTask(context.Background(), task.ID, repository.TaskPatch{Status: &done}); err != nil {
		t.Fatalf("update: %v", err)
	}

	refreshed, _ := uc.Project(context.Background(), p.ID)
	if refreshed.CompletedTasks != 1 {
		t.Fatalf("expected completed 1, got %d", refreshed.CompletedTasks)
	}
}

func TestProjectTasksUnknownProject(t *testing.T) {
	uc := newTestUseCase(t, nil)

	if _, err := uc.ProjectTasks(context.Background(), "missing"); !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestProjectTasksExcludesOtherProjects(t *testing.T) {
	uc := newTestUseCase(t, nil)
	p1 := mustCreateProject(t, uc, "Alpha")
	p2 := mustCreateProject(t, uc, "Beta")

	var want []string
	for _, title := range []string{"a", "b", "c"} {
		task, err := uc.CreateTask(context.Background(), CreateTaskInput{Title: title, ProjectID: p1.ID})
		if err != nil {
			t.Fatalf("create task: %v", err)
		}
		want = append(want, task.ID)
	}
	if _, err := uc.CreateTask(context.Background(), CreateTaskInput{Title: "other", ProjectID: p2.ID}); err != nil {
		t.Fatalf("create task: %v", err)
	}

	got, err := uc.ProjectTasks(context.Background(), p1.ID)
	if err != nil {
		t.Fatalf("project tasks: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], got[i].ID)
		}
	}
}

func TestMutationsAreJournaled(t *testing.T) {
	recorder := &stubRecorder{}
	uc := newTestUseCase(t, recorder)

	p := mustCreateProject(t, uc, "Alpha")
	task, err := uc.CreateTask(context.Background(), CreateTaskInput{Title: "t", ProjectID: p.ID})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	done := domain.StatusDone
	if _, err := uc.UpdateTask(context.Background(), task.ID, repository.TaskPatch{Status: &done}); err != nil {
		t.Fatalf("update task: %v", err)
	}
	if _, err := uc.AddProjectMember(context.Background(), p.ID, domain.User{ID: "u2", Name: "Dana"}); err != nil {
		t.Fatalf("add member: %v", err)
	}

	if len(recorder.projects) != 2 {
		t.Fatalf("expected 2 project records, got %v", recorder.projects)
	}
	if len(recorder.tasks) != 2 {
		t.Fatalf("expected 2 task records, got %v", recorder.tasks)
	}
}

func TestRecorderFailureDoesNotFailMutation(t *testing.T) {
	recorder := &stubRecorder{fail: true}
	uc := newTestUseCase(t, recorder)

	if _, err := uc.CreateProject(context.Background(), CreateProjectInput{Name: "Alpha", Owner: owner()}); err != nil {
		t.Fatalf("journal failure must not fail the mutation: %v", err)
	}
}
