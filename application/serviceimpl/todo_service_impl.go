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

type TodoServiceImpl struct {
	todoRepo    repositories.TodoRepository
	projectRepo repositories.ProjectRepository
	tagRepo     repositories.TagRepository
}

func NewTodoService(todoRepo repositories.TodoRepository, projectRepo repositories.ProjectRepository, tagRepo repositories.TagRepository) services.TodoService {
	return &TodoServiceImpl{
		todoRepo:    todoRepo,
		projectRepo: projectRepo,
		tagRepo:     tagRepo,
	}
}

func (s *TodoServiceImpl) List(ctx context.Context, userID uuid.UUID, filter repositories.TodoFilter) ([]*models.Todo, error) {
	todos, err := s.todoRepo.List(ctx, userID, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list todos", "user_id", userID, "error", err)
		return nil, err
	}
	return todos, nil
}

func (s *TodoServiceImpl) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTodoRequest) (*models.Todo, error) {
	// The target project must belong to the acting user.
	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID, userID); err != nil {
		logger.WarnContext(ctx, "Project not found for todo creation", "project_id", req.ProjectID, "user_id", userID)
		return nil, models.ErrProjectNotFound
	}

	now := time.Now()
	todo := &models.Todo{
		ID:          uuid.New(),
		ProjectID:   req.ProjectID,
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		IsCompleted: req.IsCompleted,
		DueDate:     req.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if todo.Status == "" {
		todo.Status = models.TodoStatusTodo
	}
	if todo.Priority == 0 {
		todo.Priority = models.PriorityMedium
	}
	// The completion transition rule only fires on updates; an initial
	// is_completed=true is stored as supplied, without completed_at.
	todo.Tags = s.resolveOwnedTags(ctx, userID, req.TagIDs)

	if err := s.todoRepo.Create(ctx, todo); err != nil {
		logger.ErrorContext(ctx, "Failed to create todo", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Todo created", "todo_id", todo.ID, "project_id", todo.ProjectID, "user_id", userID)

	return s.todoRepo.GetByID(ctx, todo.ID, userID)
}

func (s *TodoServiceImpl) GetByID(ctx context.Context, userID, todoID uuid.UUID) (*models.Todo, error) {
	todo, err := s.todoRepo.GetByID(ctx, todoID, userID)
	if err != nil {
		return nil, models.ErrTodoNotFound
	}
	return todo, nil
}

func (s *TodoServiceImpl) Update(ctx context.Context, userID, todoID uuid.UUID, req *dto.UpdateTodoRequest) (*models.Todo, error) {
	todo, err := s.todoRepo.GetByID(ctx, todoID, userID)
	if err != nil {
		logger.WarnContext(ctx, "Todo not found for update", "todo_id", todoID, "user_id", userID)
		return nil, models.ErrTodoNotFound
	}

	wasCompleted := todo.IsCompleted

	if req.Title != nil {
		todo.Title = *req.Title
	}
	if req.Description != nil {
		todo.Description = *req.Description
	}
	if req.Status != nil {
		todo.Status = *req.Status
	}
	if req.Priority != nil {
		todo.Priority = *req.Priority
	}
	if req.DueDate != nil {
		todo.DueDate = req.DueDate
	}
	if req.ProjectID != nil && *req.ProjectID != todo.ProjectID {
		if _, err := s.projectRepo.GetByID(ctx, *req.ProjectID, userID); err != nil {
			logger.WarnContext(ctx, "Project not found for todo move", "project_id", *req.ProjectID, "user_id", userID)
			return nil, models.ErrProjectNotFound
		}
		todo.ProjectID = *req.ProjectID
	}

	// Completion transition rule, evaluated against the prior stored value.
	if req.IsCompleted != nil && *req.IsCompleted != wasCompleted {
		if *req.IsCompleted {
			now := time.Now()
			todo.CompletedAt = &now
			// Forcing done wins over a status supplied in the same request.
			todo.Status = models.TodoStatusDone
		} else {
			todo.CompletedAt = nil
			if req.Status == nil {
				todo.Status = models.TodoStatusTodo
			}
		}
		todo.IsCompleted = *req.IsCompleted
	}

	todo.UpdatedAt = time.Now()

	if err := s.todoRepo.Update(ctx, todo); err != nil {
		logger.ErrorContext(ctx, "Failed to update todo", "todo_id", todoID, "error", err)
		return nil, err
	}

	// nil means leave associations alone; an empty slice clears them.
	if req.TagIDs != nil {
		tags := s.resolveOwnedTags(ctx, userID, req.TagIDs)
		if err := s.todoRepo.ReplaceTags(ctx, todo, tags); err != nil {
			logger.ErrorContext(ctx, "Failed to replace todo tags", "todo_id", todoID, "error", err)
			return nil, err
		}
	}

	logger.InfoContext(ctx, "Todo updated", "todo_id", todoID)

	return s.todoRepo.GetByID(ctx, todoID, userID)
}

func (s *TodoServiceImpl) Delete(ctx context.Context, userID, todoID uuid.UUID) error {
	if _, err := s.todoRepo.GetByID(ctx, todoID, userID); err != nil {
		return models.ErrTodoNotFound
	}

	if err := s.todoRepo.Delete(ctx, todoID, userID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete todo", "todo_id", todoID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Todo deleted", "todo_id", todoID)

	return nil
}

// resolveOwnedTags keeps the tags that belong to the acting user and drops the
// rest without error.
func (s *TodoServiceImpl) resolveOwnedTags(ctx context.Context, userID uuid.UUID, tagIDs []uuid.UUID) []models.Tag {
	tags := make([]models.Tag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		tag, err := s.tagRepo.GetByID(ctx, tagID, userID)
		if err != nil {
			logger.DebugContext(ctx, "Skipping unowned tag", "tag_id", tagID, "user_id", userID)
			continue
		}
		tags = append(tags, *tag)
	}
	return tags
}
