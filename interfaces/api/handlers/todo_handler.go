package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Msparihar/todo/domain/dto"
	"github.com/Msparihar/todo/domain/models"
	"github.com/Msparihar/todo/domain/repositories"
	"github.com/Msparihar/todo/domain/services"
	"github.com/Msparihar/todo/pkg/logger"
	"github.com/Msparihar/todo/pkg/utils"
)

type TodoHandler struct {
	todoService services.TodoService
}

func NewTodoHandler(todoService services.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

func (h *TodoHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	filter, err := parseTodoFilter(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	todos, err := h.todoService.List(ctx, user.ID, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list todos", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TodosToTodoWithProjectResponses(todos))
}

func (h *TodoHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	todo, err := h.todoService.Create(ctx, user.ID, &req)
	if err != nil {
		if errors.Is(err, models.ErrProjectNotFound) {
			return utils.NotFoundResponse(c, "Project not found")
		}
		logger.ErrorContext(ctx, "Failed to create todo", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.CreatedResponse(c, dto.TodoToTodoWithProjectResponse(todo))
}

func (h *TodoHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid todo ID")
	}

	todo, err := h.todoService.GetByID(ctx, user.ID, id)
	if err != nil {
		return utils.NotFoundResponse(c, "Todo not found")
	}

	return utils.SuccessResponse(c, dto.TodoToTodoWithProjectResponse(todo))
}

func (h *TodoHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid todo ID")
	}

	var req dto.UpdateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	todo, err := h.todoService.Update(ctx, user.ID, id, &req)
	if err != nil {
		if errors.Is(err, models.ErrTodoNotFound) {
			return utils.NotFoundResponse(c, "Todo not found")
		}
		if errors.Is(err, models.ErrProjectNotFound) {
			return utils.NotFoundResponse(c, "Project not found")
		}
		logger.ErrorContext(ctx, "Failed to update todo", "todo_id", id, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TodoToTodoWithProjectResponse(todo))
}

func (h *TodoHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid todo ID")
	}

	if err := h.todoService.Delete(ctx, user.ID, id); err != nil {
		if errors.Is(err, models.ErrTodoNotFound) {
			return utils.NotFoundResponse(c, "Todo not found")
		}
		logger.ErrorContext(ctx, "Failed to delete todo", "todo_id", id, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.NoContentResponse(c)
}

// parseTodoFilter reads the optional list filters from the query string.
func parseTodoFilter(c *fiber.Ctx) (repositories.TodoFilter, error) {
	var filter repositories.TodoFilter

	if v := c.Query("project_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, errors.New("invalid project_id")
		}
		filter.ProjectID = &id
	}
	if v := c.Query("status"); v != "" {
		status := models.TodoStatus(v)
		if !status.Valid() {
			return filter, errors.New("invalid status")
		}
		filter.Status = &status
	}
	if v := c.Query("is_completed"); v != "" {
		completed, err := strconv.ParseBool(v)
		if err != nil {
			return filter, errors.New("invalid is_completed")
		}
		filter.IsCompleted = &completed
	}
	if v := c.Query("due_date_before"); v != "" {
		t, err := parseTimeParam(v)
		if err != nil {
			return filter, errors.New("invalid due_date_before")
		}
		filter.DueDateBefore = &t
	}
	if v := c.Query("due_date_after"); v != "" {
		t, err := parseTimeParam(v)
		if err != nil {
			return filter, errors.New("invalid due_date_after")
		}
		filter.DueDateAfter = &t
	}
	if v := c.Query("priority"); v != "" {
		priority, err := strconv.Atoi(v)
		if err != nil || priority < models.PriorityLow || priority > models.PriorityUrgent {
			return filter, errors.New("invalid priority")
		}
		filter.Priority = &priority
	}
	if v := c.Query("tag_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, errors.New("invalid tag_id")
		}
		filter.TagID = &id
	}

	return filter, nil
}

func parseTimeParam(v string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized time format")
}
