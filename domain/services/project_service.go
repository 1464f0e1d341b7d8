package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Msparihar/todo/domain/dto"
	"github.com/Msparihar/todo/domain/models"
)

type ProjectService interface {
	List(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*models.Project, error)
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateProjectRequest) (*models.Project, error)
	// GetByID returns the project with its todos loaded.
	GetByID(ctx context.Context, userID, projectID uuid.UUID) (*models.Project, error)
	Update(ctx context.Context, userID, projectID uuid.UUID, req *dto.UpdateProjectRequest) (*models.Project, error)
	Delete(ctx context.Context, userID, projectID uuid.UUID) error
}
