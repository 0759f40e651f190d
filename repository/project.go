package repository

import (
	"context"

	"github.com/synergysphere/backend/domain"
)

type ProjectRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	AddMember(ctx context.Context, projectID string, member domain.User) (*domain.Project, error)
	Select(ctx context.Context, projectID string) (*domain.Project, error)
	Selected(ctx context.Context) (*domain.Project, error)
}
