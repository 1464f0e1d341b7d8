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

type ProjectServiceImpl struct {
	projectRepo repositories.ProjectRepository
}

func NewProjectService(projectRepo repositories.ProjectRepository) services.ProjectService {
	return &ProjectServiceImpl{projectRepo: projectRepo}
}

func (s *ProjectServiceImpl) List(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*models.Project, error) {
	projects, err := s.projectRepo.List(ctx, userID, includeArchived)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list projects", "user_id", userID, "error", err)
		return nil, err
	}
	return projects, nil
}

func (s *ProjectServiceImpl) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateProjectRequest) (*models.Project, error) {
	now := time.Now()
	project := &models.Project{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		IsArchived:  req.IsArchived,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if project.Color == "" {
		project.Color = models.DefaultColor
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		logger.ErrorContext(ctx, "Failed to create project", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Project created", "project_id", project.ID, "user_id", userID)

	return project, nil
}

func (s *ProjectServiceImpl) GetByID(ctx context.Context, userID, projectID uuid.UUID) (*models.Project, error) {
	project, err := s.projectRepo.GetWithTodos(ctx, projectID, userID)
	if err != nil {
		return nil, models.ErrProjectNotFound
	}
	return project, nil
}

func (s *ProjectServiceImpl) Update(ctx context.Context, userID, projectID uuid.UUID, req *dto.UpdateProjectRequest) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID, userID)
	if err != nil {
		logger.WarnContext(ctx, "Project not found for update", "project_id", projectID, "user_id", userID)
		return nil, models.ErrProjectNotFound
	}

	// Only fields supplied by the caller overwrite stored values.
	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Color != nil {
		project.Color = *req.Color
	}
	if req.IsArchived != nil {
		project.IsArchived = *req.IsArchived
	}

	project.UpdatedAt = time.Now()

	if err := s.projectRepo.Update(ctx, project); err != nil {
		logger.ErrorContext(ctx, "Failed to update project", "project_id", projectID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Project updated", "project_id", projectID)

	return project, nil
}

func (s *ProjectServiceImpl) Delete(ctx context.Context, userID, projectID uuid.UUID) error {
	if _, err := s.projectRepo.GetByID(ctx, projectID, userID); err != nil {
		return models.ErrProjectNotFound
	}

	// The project's todos and their tag associations are removed by cascade.
	if err := s.projectRepo.Delete(ctx, projectID, userID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete project", "project_id", projectID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Project deleted", "project_id", projectID)

	return nil
}
