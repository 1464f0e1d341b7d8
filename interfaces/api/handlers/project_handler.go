package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Msparihar/todo/domain/dto"
	"github.com/Msparihar/todo/domain/models"
	"github.com/Msparihar/todo/domain/services"
	"github.com/Msparihar/todo/pkg/logger"
	"github.com/Msparihar/todo/pkg/utils"
)

type ProjectHandler struct {
	projectService services.ProjectService
}

func NewProjectHandler(projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	includeArchived := c.QueryBool("include_archived", false)

	projects, err := h.projectService.List(ctx, user.ID, includeArchived)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list projects", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.ProjectsToProjectResponses(projects))
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	project, err := h.projectService.Create(ctx, user.ID, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create project", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.CreatedResponse(c, dto.ProjectToProjectResponse(project))
}

func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid project ID")
	}

	project, err := h.projectService.GetByID(ctx, user.ID, id)
	if err != nil {
		return utils.NotFoundResponse(c, "Project not found")
	}

	return utils.SuccessResponse(c, dto.ProjectToProjectWithTodosResponse(project))
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid project ID")
	}

	var req dto.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	project, err := h.projectService.Update(ctx, user.ID, id, &req)
	if err != nil {
		if errors.Is(err, models.ErrProjectNotFound) {
			return utils.NotFoundResponse(c, "Project not found")
		}
		logger.ErrorContext(ctx, "Failed to update project", "project_id", id, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.ProjectToProjectResponse(project))
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid project ID")
	}

	if err := h.projectService.Delete(ctx, user.ID, id); err != nil {
		if errors.Is(err, models.ErrProjectNotFound) {
			return utils.NotFoundResponse(c, "Project not found")
		}
		logger.ErrorContext(ctx, "Failed to delete project", "project_id", id, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.NoContentResponse(c)
}
