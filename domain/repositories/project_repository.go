package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Msparihar/todo/domain/models"
)

// All lookups are scoped to the owning user; a row owned by someone else is
// indistinguishable from a missing one.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Project, error)
	GetWithTodos(ctx context.Context, id, userID uuid.UUID) (*models.Project, error)
	List(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
