package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Msparihar/todo/domain/dto"
	"github.com/Msparihar/todo/domain/models"
)

type TagService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*models.Tag, error)
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTagRequest) (*models.Tag, error)
	GetByID(ctx context.Context, userID, tagID uuid.UUID) (*models.Tag, error)
	Update(ctx context.Context, userID, tagID uuid.UUID, req *dto.UpdateTagRequest) (*models.Tag, error)
	Delete(ctx context.Context, userID, tagID uuid.UUID) error
}
