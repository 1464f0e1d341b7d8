package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Msparihar/todo/domain/dto"
	"github.com/Msparihar/todo/domain/models"
	"github.com/Msparihar/todo/domain/services"
	"github.com/Msparihar/todo/pkg/logger"
	"github.com/Msparihar/todo/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	user, err := h.userService.Register(ctx, &req)
	if err != nil {
		if errors.Is(err, models.ErrEmailTaken) || errors.Is(err, models.ErrUsernameTaken) {
			return utils.ConflictResponse(c, err.Error())
		}
		logger.ErrorContext(ctx, "Registration failed", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.CreatedResponse(c, dto.UserToUserResponse(user))
}

// Login accepts OAuth2 password form fields; the username field also takes an
// email address.
func (h *UserHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	token, _, err := h.userService.Login(ctx, &req)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Incorrect username or password")
	}

	return utils.SuccessResponse(c, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.userService.GetProfile(ctx, user.ID)
	if err != nil {
		return utils.NotFoundResponse(c, "User not found")
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(profile))
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	updated, err := h.userService.UpdateProfile(ctx, user.ID, &req)
	if err != nil {
		if errors.Is(err, models.ErrEmailTaken) || errors.Is(err, models.ErrUsernameTaken) {
			return utils.ConflictResponse(c, err.Error())
		}
		if errors.Is(err, models.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		logger.ErrorContext(ctx, "Profile update failed", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(updated))
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	if err := h.userService.ChangePassword(ctx, user.ID, &req); err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Current password is incorrect")
		}
		logger.ErrorContext(ctx, "Password change failed", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, fiber.Map{"message": "Password updated"})
}

func (h *UserHandler) DeleteAccount(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.userService.DeleteAccount(ctx, user.ID); err != nil {
		logger.ErrorContext(ctx, "Account deletion failed", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.NoContentResponse(c)
}
