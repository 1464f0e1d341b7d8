package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Msparihar/todo/domain/models"
)

type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Tag, error)
	GetByName(ctx context.Context, userID uuid.UUID, name string) (*models.Tag, error)
	List(ctx context.Context, userID uuid.UUID) ([]*models.Tag, error)
	Update(ctx context.Context, tag *models.Tag) error
	// Delete removes the tag's todo associations before the tag itself.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
