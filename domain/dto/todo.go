package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Msparihar/todo/domain/models"
)

type CreateTodoRequest struct {
	Title       string            `json:"title" validate:"required,max=255"`
	Description string            `json:"description" validate:"omitempty,max=2000"`
	Status      models.TodoStatus `json:"status" validate:"omitempty,oneof=todo in_progress review done"`
	Priority    int               `json:"priority" validate:"omitempty,min=1,max=4"`
	IsCompleted bool              `json:"is_completed"`
	DueDate     *time.Time        `json:"due_date"`
	ProjectID   uuid.UUID         `json:"project_id" validate:"required"`
	TagIDs      []uuid.UUID       `json:"tag_ids"`
}

// UpdateTodoRequest distinguishes "absent" from "supplied" per field. A nil
// TagIDs leaves the association set untouched; an empty slice clears it.
type UpdateTodoRequest struct {
	Title       *string            `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string            `json:"description" validate:"omitempty,max=2000"`
	Status      *models.TodoStatus `json:"status" validate:"omitempty,oneof=todo in_progress review done"`
	Priority    *int               `json:"priority" validate:"omitempty,min=1,max=4"`
	IsCompleted *bool              `json:"is_completed"`
	DueDate     *time.Time         `json:"due_date"`
	ProjectID   *uuid.UUID         `json:"project_id"`
	TagIDs      []uuid.UUID        `json:"tag_ids"`
}

type TodoResponse struct {
	ID          uuid.UUID         `json:"id"`
	ProjectID   uuid.UUID         `json:"project_id"`
	UserID      uuid.UUID         `json:"user_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      models.TodoStatus `json:"status"`
	Priority    int               `json:"priority"`
	IsCompleted bool              `json:"is_completed"`
	DueDate     *time.Time        `json:"due_date"`
	CompletedAt *time.Time        `json:"completed_at"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type TodoWithProjectResponse struct {
	TodoResponse
	Project ProjectResponse `json:"project"`
	Tags    []TagResponse   `json:"tags"`
}
