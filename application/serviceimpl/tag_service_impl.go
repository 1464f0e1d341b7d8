package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Msparihar/todo/domain/dto"
	"github.com/Msparihar/todo/domain/models"
	"github.com/Msparihar/todo/domain/repositories"
	"github.com/Msparihar/todo/domain/services"
	"github.com/Msparihar/todo/pkg/logger"
)

type TagServiceImpl struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) services.TagService {
	return &TagServiceImpl{tagRepo: tagRepo}
}

func (s *TagServiceImpl) List(ctx context.Context, userID uuid.UUID) ([]*models.Tag, error) {
	tags, err := s.tagRepo.List(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tags", "user_id", userID, "error", err)
		return nil, err
	}
	return tags, nil
}

func (s *TagServiceImpl) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTagRequest) (*models.Tag, error) {
	// Name uniqueness is per owner.
	existing, _ := s.tagRepo.GetByName(ctx, userID, req.Name)
	if existing != nil {
		logger.WarnContext(ctx, "Tag name conflict", "user_id", userID, "name", req.Name)
		return nil, models.ErrTagNameTaken
	}

	now := time.Now()
	tag := &models.Tag{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      req.Name,
		Color:     req.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if tag.Color == "" {
		tag.Color = models.DefaultColor
	}

	if err := s.tagRepo.Create(ctx, tag); err != nil {
		logger.ErrorContext(ctx, "Failed to create tag", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Tag created", "tag_id", tag.ID, "user_id", userID)

	return tag, nil
}

func (s *TagServiceImpl) GetByID(ctx context.Context, userID, tagID uuid.UUID) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, tagID, userID)
	if err != nil {
		return nil, models.ErrTagNotFound
	}
	return tag, nil
}

func (s *TagServiceImpl) Update(ctx context.Context, userID, tagID uuid.UUID, req *dto.UpdateTagRequest) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, tagID, userID)
	if err != nil {
		logger.WarnContext(ctx, "Tag not found for update", "tag_id", tagID, "user_id", userID)
		return nil, models.ErrTagNotFound
	}

	if req.Name != nil && *req.Name != tag.Name {
		existing, _ := s.tagRepo.GetByName(ctx, userID, *req.Name)
		if existing != nil && existing.ID != tagID {
			logger.WarnContext(ctx, "Tag name conflict", "user_id", userID, "name", *req.Name)
			return nil, models.ErrTagNameTaken
		}
		tag.Name = *req.Name
	}
	if req.Color != nil {
		tag.Color = *req.Color
	}

	tag.UpdatedAt = time.Now()

	if err := s.tagRepo.Update(ctx, tag); err != nil {
		logger.ErrorContext(ctx, "Failed to update tag", "tag_id", tagID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Tag updated", "tag_id", tagID)

	return tag, nil
}

func (s *TagServiceImpl) Delete(ctx context.Context, userID, tagID uuid.UUID) error {
	if _, err := s.tagRepo.GetByID(ctx, tagID, userID); err != nil {
		return models.ErrTagNotFound
	}

	if err := s.tagRepo.Delete(ctx, tagID, userID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete tag", "tag_id", tagID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Tag deleted", "tag_id", tagID)

	return nil
}
