package memory

import (
	"context"
	"time"

	"github.com/synergysphere/backend/domain"
	"github.com/synergysphere/backend/repository"
)

type ProjectRepository struct {
	store *Store
}

func NewProjectRepository(store *Store) *ProjectRepository {
	return &ProjectRepository{store: store}
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.projectsByID[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return cloneProject(p), nil
}

// List returns all projects in creation order.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Project, 0, len(r.store.projects))
	for _, p := range r.store.projects {
		out = append(out, *cloneProject(p))
	}
	return out, nil
}

// Create appends the project. The owner is normalized into the member set and
// both counters start at zero.
func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if project == nil || project.ID == "" {
		return nil, domain.ErrInvalidPayload
	}

	p := cloneProject(project)
	if !p.HasMember(p.Owner.ID) {
		p.Members = append(p.Members, p.Owner)
	}
	p.TaskCount = 0
	p.CompletedTasks = 0
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.insertProject(p)
	return cloneProject(p), nil
}

// AddMember appends the identity to the project member set. Re-adding an
// existing member is an idempotent success.
func (r *ProjectRepository) AddMember(ctx context.Context, projectID string, member domain.User) (*domain.Project, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.projectsByID[projectID]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	if !p.HasMember(member.ID) {
		p.Members = append(p.Members, member)
	}
	return cloneProject(p), nil
}

// Select records the currently viewed project.
func (r *ProjectRepository) Select(ctx context.Context, projectID string) (*domain.Project, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.projectsByID[projectID]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	r.store.selectedID = projectID
	return cloneProject(p), nil
}

// Selected returns the currently viewed project, or nil when none is selected.
func (r *ProjectRepository) Selected(ctx context.Context) (*domain.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if r.store.selectedID == "" {
		return nil, nil
	}
	return cloneProject(r.store.projectsByID[r.store.selectedID]), nil
}

var _ repository.ProjectRepository = (*ProjectRepository)(nil)
