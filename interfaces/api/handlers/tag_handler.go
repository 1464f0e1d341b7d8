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

type TagHandler struct {
	tagService services.TagService
}

func NewTagHandler(tagService services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

func (h *TagHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	tags, err := h.tagService.List(ctx, user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tags", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TagsToTagResponses(tags))
}

func (h *TagHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateTagRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	tag, err := h.tagService.Create(ctx, user.ID, &req)
	if err != nil {
		if errors.Is(err, models.ErrTagNameTaken) {
			return utils.ConflictResponse(c, err.Error())
		}
		logger.ErrorContext(ctx, "Failed to create tag", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.CreatedResponse(c, dto.TagToTagResponse(tag))
}

func (h *TagHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid tag ID")
	}

	tag, err := h.tagService.GetByID(ctx, user.ID, id)
	if err != nil {
		return utils.NotFoundResponse(c, "Tag not found")
	}

	return utils.SuccessResponse(c, dto.TagToTagResponse(tag))
}

func (h *TagHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid tag ID")
	}

	var req dto.UpdateTagRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	tag, err := h.tagService.Update(ctx, user.ID, id, &req)
	if err != nil {
		if errors.Is(err, models.ErrTagNotFound) {
			return utils.NotFoundResponse(c, "Tag not found")
		}
		if errors.Is(err, models.ErrTagNameTaken) {
			return utils.ConflictResponse(c, err.Error())
		}
		logger.ErrorContext(ctx, "Failed to update tag", "tag_id", id, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TagToTagResponse(tag))
}

func (h *TagHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid tag ID")
	}

	if err := h.tagService.Delete(ctx, user.ID, id); err != nil {
		if errors.Is(err, models.ErrTagNotFound) {
			return utils.NotFoundResponse(c, "Tag not found")
		}
		logger.ErrorContext(ctx, "Failed to delete tag", "tag_id", id, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.NoContentResponse(c)
}
