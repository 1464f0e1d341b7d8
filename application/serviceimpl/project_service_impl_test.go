package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Msparihar/todo/domain/dto"
	"github.com/Msparihar/todo/domain/models"
)

func TestProjectService_Create_DefaultColor(t *testing.T) {
	userID := uuid.New()

	projectRepo := new(projectRepoMock)
	projectRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Project")).Return(nil).Once()

	svc := NewProjectService(projectRepo)

	project, err := svc.Create(context.Background(), userID, &dto.CreateProjectRequest{
		Name: "Household",
	})

	require.NoError(t, err)
	require.Equal(t, models.DefaultColor, project.Color)
	require.Equal(t, userID, project.UserID)
	require.False(t, project.IsArchived)
	projectRepo.AssertExpectations(t)
}

func TestProjectService_Create_KeepsSuppliedColor(t *testing.T) {
	userID := uuid.New()

	projectRepo := new(projectRepoMock)
	projectRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Project")).Return(nil).Once()

	svc := NewProjectService(projectRepo)

	project, err := svc.Create(context.Background(), userID, &dto.CreateProjectRequest{
		Name:  "Household",
		Color: "#FF0000",
	})

	require.NoError(t, err)
	require.Equal(t, "#FF0000", project.Color)
}

func TestProjectService_Update_PartialMerge(t *testing.T) {
	userID := uuid.New()
	project := &models.Project{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        "Household",
		Description: "chores and errands",
		Color:       "#FF0000",
		CreatedAt:   time.Now().Add(-time.Hour),
	}

	projectRepo := new(projectRepoMock)
	projectRepo.On("GetByID", mock.Anything, project.ID, userID).Return(project, nil).Once()
	projectRepo.On("Update", mock.Anything, project).Return(nil).Once()

	svc := NewProjectService(projectRepo)

	got, err := svc.Update(context.Background(), userID, project.ID, &dto.UpdateProjectRequest{
		Name:       ptr("Home"),
		IsArchived: ptr(true),
	})

	require.NoError(t, err)
	require.Equal(t, "Home", got.Name)
	require.True(t, got.IsArchived)
	require.Equal(t, "chores and errands", got.Description)
	require.Equal(t, "#FF0000", got.Color)
	projectRepo.AssertExpectations(t)
}

func TestProjectService_GetByID_LoadsTodos(t *testing.T) {
	userID := uuid.New()
	project := &models.Project{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "Household",
		Todos:  []models.Todo{{ID: uuid.New(), Title: "Buy groceries"}},
	}

	projectRepo := new(projectRepoMock)
	projectRepo.On("GetWithTodos", mock.Anything, project.ID, userID).Return(project, nil).Once()

	svc := NewProjectService(projectRepo)

	got, err := svc.GetByID(context.Background(), userID, project.ID)

	require.NoError(t, err)
	require.Len(t, got.Todos, 1)
	projectRepo.AssertExpectations(t)
}

func TestProjectService_Delete_UnownedNotFound(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()

	projectRepo := new(projectRepoMock)
	projectRepo.On("GetByID", mock.Anything, projectID, userID).Return(nil, gorm.ErrRecordNotFound).Once()

	svc := NewProjectService(projectRepo)

	err := svc.Delete(context.Background(), userID, projectID)

	require.ErrorIs(t, err, models.ErrProjectNotFound)
	projectRepo.AssertNotCalled(t, "Delete")
}
