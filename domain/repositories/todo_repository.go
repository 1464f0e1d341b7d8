package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Msparihar/todo/domain/models"
)

// TodoFilter holds the optional list filters; set fields are combined with AND.
type TodoFilter struct {
	ProjectID     *uuid.UUID
	Status        *models.TodoStatus
	IsCompleted   *bool
	DueDateBefore *time.Time
	DueDateAfter  *time.Time
	Priority      *int
	TagID         *uuid.UUID
}

type TodoRepository interface {
	Create(ctx context.Context, todo *models.Todo) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Todo, error)
	List(ctx context.Context, userID uuid.UUID, filter TodoFilter) ([]*models.Todo, error)
	Update(ctx context.Context, todo *models.Todo) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	// ReplaceTags swaps the todo's full association set for the given tags.
	ReplaceTags(ctx context.Context, todo *models.Todo, tags []models.Tag) error
}
