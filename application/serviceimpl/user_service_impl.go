package serviceimpl

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Msparihar/todo/domain/dto"
	"github.com/Msparihar/todo/domain/models"
	"github.com/Msparihar/todo/domain/repositories"
	"github.com/Msparihar/todo/domain/services"
	"github.com/Msparihar/todo/pkg/logger"
	"github.com/Msparihar/todo/pkg/utils"
)

// emailPattern decides whether a login identifier is matched against the
// email column or the username column.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+`)

type UserServiceImpl struct {
	userRepo  repositories.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

func NewUserService(userRepo repositories.UserRepository, jwtSecret string, jwtExpiry time.Duration) services.UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	existingUser, _ := s.userRepo.GetByEmail(ctx, req.Email)
	if existingUser != nil {
		logger.WarnContext(ctx, "Email already registered", "email", req.Email)
		return nil, models.ErrEmailTaken
	}

	existingUser, _ = s.userRepo.GetByUsername(ctx, req.Username)
	if existingUser != nil {
		logger.WarnContext(ctx, "Username already taken", "username", req.Username)
		return nil, models.ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:        uuid.New(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashedPassword),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "email", user.Email)

	return user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	var (
		user *models.User
		err  error
	)
	if emailPattern.MatchString(req.Username) {
		user, err = s.userRepo.GetByEmail(ctx, req.Username)
	} else {
		user, err = s.userRepo.GetByUsername(ctx, req.Username)
	}
	// An unknown identifier and a wrong password are indistinguishable to the
	// caller.
	if err != nil || user == nil {
		logger.WarnContext(ctx, "Login failed, user not found", "identifier", req.Username)
		return "", nil, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed, password mismatch", "user_id", user.ID)
		return "", nil, models.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate token", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID)

	return token, user, nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, models.ErrUserNotFound
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, models.ErrUserNotFound
	}

	if req.Email != nil && *req.Email != user.Email {
		existing, _ := s.userRepo.GetByEmail(ctx, *req.Email)
		if existing != nil {
			return nil, models.ErrEmailTaken
		}
		user.Email = *req.Email
	}
	if req.Username != nil && *req.Username != user.Username {
		existing, _ := s.userRepo.GetByUsername(ctx, *req.Username)
		if existing != nil {
			return nil, models.ErrUsernameTaken
		}
		user.Username = *req.Username
	}

	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to update profile", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Profile updated", "user_id", userID)

	return user, nil
}

func (s *UserServiceImpl) ChangePassword(ctx context.Context, userID uuid.UUID, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return models.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		logger.WarnContext(ctx, "Password change rejected", "user_id", userID)
		return models.ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashedPassword)
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to change password", "user_id", userID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Password changed", "user_id", userID)

	return nil
}

func (s *UserServiceImpl) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return models.ErrUserNotFound
	}

	// Projects, todos, tags and associations go with the user via FK cascade.
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete account", "user_id", userID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Account deleted", "user_id", userID)

	return nil
}
