package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Msparihar/todo/domain/dto"
	"github.com/Msparihar/todo/domain/models"
	"github.com/Msparihar/todo/pkg/utils"
)

const testSecret = "unit-test-secret"

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestUserService_Register_HashesPassword(t *testing.T) {
	userRepo := new(userRepoMock)
	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, gorm.ErrRecordNotFound).Once()
	userRepo.On("GetByUsername", mock.Anything, "alice").Return(nil, gorm.ErrRecordNotFound).Once()

	var created *models.User
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		created = args.Get(1).(*models.User)
	}).Return(nil).Once()

	svc := NewUserService(userRepo, testSecret, 30*time.Minute)

	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})

	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.NotEqual(t, "s3cretpass", created.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cretpass")))
	userRepo.AssertExpectations(t)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	existing := &models.User{ID: uuid.New(), Username: "bob", Email: "alice@example.com"}

	userRepo := new(userRepoMock)
	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(existing, nil).Once()

	svc := NewUserService(userRepo, testSecret, 30*time.Minute)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})

	require.ErrorIs(t, err, models.ErrEmailTaken)
	userRepo.AssertNotCalled(t, "Create")
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	existing := &models.User{ID: uuid.New(), Username: "alice", Email: "other@example.com"}

	userRepo := new(userRepoMock)
	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, gorm.ErrRecordNotFound).Once()
	userRepo.On("GetByUsername", mock.Anything, "alice").Return(existing, nil).Once()

	svc := NewUserService(userRepo, testSecret, 30*time.Minute)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})

	require.ErrorIs(t, err, models.ErrUsernameTaken)
	userRepo.AssertNotCalled(t, "Create")
}

func TestUserService_Login_EmailIdentifier(t *testing.T) {
	user := &models.User{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
		Password: hashPassword(t, "s3cretpass"),
	}

	userRepo := new(userRepoMock)
	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(user, nil).Once()

	svc := NewUserService(userRepo, testSecret, 30*time.Minute)

	token, got, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "alice@example.com",
		Password: "s3cretpass",
	})

	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)

	// The token subject must round-trip back to the user id.
	subject, err := utils.ValidateToken(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, user.ID, subject)

	userRepo.AssertNotCalled(t, "GetByUsername")
	userRepo.AssertExpectations(t)
}

func TestUserService_Login_UsernameIdentifier(t *testing.T) {
	user := &models.User{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
		Password: hashPassword(t, "s3cretpass"),
	}

	userRepo := new(userRepoMock)
	userRepo.On("GetByUsername", mock.Anything, "alice").Return(user, nil).Once()

	svc := NewUserService(userRepo, testSecret, 30*time.Minute)

	_, got, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "alice",
		Password: "s3cretpass",
	})

	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
	userRepo.AssertNotCalled(t, "GetByEmail")
	userRepo.AssertExpectations(t)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	user := &models.User{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
		Password: hashPassword(t, "s3cretpass"),
	}

	userRepo := new(userRepoMock)
	userRepo.On("GetByUsername", mock.Anything, "alice").Return(user, nil).Once()

	svc := NewUserService(userRepo, testSecret, 30*time.Minute)

	_, _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "alice",
		Password: "wrongpass",
	})

	require.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownIdentifier(t *testing.T) {
	userRepo := new(userRepoMock)
	userRepo.On("GetByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound).Once()

	svc := NewUserService(userRepo, testSecret, 30*time.Minute)

	_, _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "ghost",
		Password: "whatever",
	})

	// Unknown user and wrong password produce the same error.
	require.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestUserService_ChangePassword_RejectsWrongCurrent(t *testing.T) {
	user := &models.User{
		ID:       uuid.New(),
		Username: "alice",
		Password: hashPassword(t, "s3cretpass"),
	}

	userRepo := new(userRepoMock)
	userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil).Once()

	svc := NewUserService(userRepo, testSecret, 30*time.Minute)

	err := svc.ChangePassword(context.Background(), user.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "notmypassword",
		NewPassword:     "newpassword1",
	})

	require.ErrorIs(t, err, models.ErrInvalidCredentials)
	userRepo.AssertNotCalled(t, "Update")
}
