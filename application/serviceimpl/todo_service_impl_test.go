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

func ptr[T any](v T) *T {
	return &v
}

func newTodoFixture(userID uuid.UUID) *models.Todo {
	now := time.Now().Add(-time.Hour)
	return &models.Todo{
		ID:          uuid.New(),
		ProjectID:   uuid.New(),
		UserID:      userID,
		Title:       "Write migration plan",
		Status:      models.TodoStatusInProgress,
		Priority:    models.PriorityHigh,
		IsCompleted: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestTodoService_Create_ProjectNotOwned(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()

	todoRepo := new(todoRepoMock)
	projectRepo := new(projectRepoMock)
	tagRepo := new(tagRepoMock)
	projectRepo.On("GetByID", mock.Anything, projectID, userID).Return(nil, gorm.ErrRecordNotFound).Once()

	svc := NewTodoService(todoRepo, projectRepo, tagRepo)

	_, err := svc.Create(context.Background(), userID, &dto.CreateTodoRequest{
		Title:     "Review PR",
		ProjectID: projectID,
	})

	require.ErrorIs(t, err, models.ErrProjectNotFound)
	todoRepo.AssertNotCalled(t, "Create")
	projectRepo.AssertExpectations(t)
}

func TestTodoService_Create_DefaultsAndUnownedTagsSkipped(t *testing.T) {
	userID := uuid.New()
	project := &models.Project{ID: uuid.New(), UserID: userID, Name: "Inbox"}
	ownedTag := &models.Tag{ID: uuid.New(), UserID: userID, Name: "work"}
	foreignTagID := uuid.New()

	todoRepo := new(todoRepoMock)
	projectRepo := new(projectRepoMock)
	tagRepo := new(tagRepoMock)

	projectRepo.On("GetByID", mock.Anything, project.ID, userID).Return(project, nil).Once()
	tagRepo.On("GetByID", mock.Anything, ownedTag.ID, userID).Return(ownedTag, nil).Once()
	tagRepo.On("GetByID", mock.Anything, foreignTagID, userID).Return(nil, gorm.ErrRecordNotFound).Once()

	var created *models.Todo
	todoRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Todo")).Run(func(args mock.Arguments) {
		created = args.Get(1).(*models.Todo)
	}).Return(nil).Once()
	todoRepo.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID"), userID).Return(
		func(ctx context.Context, id, uid uuid.UUID) (*models.Todo, error) {
			return created, nil
		},
	)

	svc := NewTodoService(todoRepo, projectRepo, tagRepo)

	got, err := svc.Create(context.Background(), userID, &dto.CreateTodoRequest{
		Title:     "Review PR",
		ProjectID: project.ID,
		TagIDs:    []uuid.UUID{ownedTag.ID, foreignTagID},
	})

	require.NoError(t, err)
	require.Equal(t, models.TodoStatusTodo, got.Status)
	require.Equal(t, models.PriorityMedium, got.Priority)
	require.False(t, got.IsCompleted)
	require.Nil(t, got.CompletedAt)
	require.Len(t, got.Tags, 1)
	require.Equal(t, ownedTag.ID, got.Tags[0].ID)
	todoRepo.AssertExpectations(t)
	tagRepo.AssertExpectations(t)
}

func TestTodoService_Update_CompleteForcesDoneOverSuppliedStatus(t *testing.T) {
	userID := uuid.New()
	todo := newTodoFixture(userID)

	todoRepo := new(todoRepoMock)
	projectRepo := new(projectRepoMock)
	tagRepo := new(tagRepoMock)

	todoRepo.On("GetByID", mock.Anything, todo.ID, userID).Return(todo, nil)
	todoRepo.On("Update", mock.Anything, todo).Return(nil).Once()

	svc := NewTodoService(todoRepo, projectRepo, tagRepo)

	got, err := svc.Update(context.Background(), userID, todo.ID, &dto.UpdateTodoRequest{
		IsCompleted: ptr(true),
		Status:      ptr(models.TodoStatusReview),
	})

	require.NoError(t, err)
	require.True(t, got.IsCompleted)
	require.Equal(t, models.TodoStatusDone, got.Status)
	require.NotNil(t, got.CompletedAt)
	todoRepo.AssertNotCalled(t, "ReplaceTags")
	todoRepo.AssertExpectations(t)
}

func TestTodoService_Update_UncompleteResetsStatusWhenNotSupplied(t *testing.T) {
	userID := uuid.New()
	todo := newTodoFixture(userID)
	completedAt := time.Now().Add(-time.Minute)
	todo.IsCompleted = true
	todo.Status = models.TodoStatusDone
	todo.CompletedAt = &completedAt

	todoRepo := new(todoRepoMock)
	projectRepo := new(projectRepoMock)
	tagRepo := new(tagRepoMock)

	todoRepo.On("GetByID", mock.Anything, todo.ID, userID).Return(todo, nil)
	todoRepo.On("Update", mock.Anything, todo).Return(nil).Once()

	svc := NewTodoService(todoRepo, projectRepo, tagRepo)

	got, err := svc.Update(context.Background(), userID, todo.ID, &dto.UpdateTodoRequest{
		IsCompleted: ptr(false),
	})

	require.NoError(t, err)
	require.False(t, got.IsCompleted)
	require.Equal(t, models.TodoStatusTodo, got.Status)
	require.Nil(t, got.CompletedAt)
	todoRepo.AssertExpectations(t)
}

func TestTodoService_Update_UncompleteHonorsSuppliedStatus(t *testing.T) {
	userID := uuid.New()
	todo := newTodoFixture(userID)
	completedAt := time.Now().Add(-time.Minute)
	todo.IsCompleted = true
	todo.Status = models.TodoStatusDone
	todo.CompletedAt = &completedAt

	todoRepo := new(todoRepoMock)
	projectRepo := new(projectRepoMock)
	tagRepo := new(tagRepoMock)

	todoRepo.On("GetByID", mock.Anything, todo.ID, userID).Return(todo, nil)
	todoRepo.On("Update", mock.Anything, todo).Return(nil).Once()

	svc := NewTodoService(todoRepo, projectRepo, tagRepo)

	got, err := svc.Update(context.Background(), userID, todo.ID, &dto.UpdateTodoRequest{
		IsCompleted: ptr(false),
		Status:      ptr(models.TodoStatusReview),
	})

	require.NoError(t, err)
	require.False(t, got.IsCompleted)
	require.Equal(t, models.TodoStatusReview, got.Status)
	require.Nil(t, got.CompletedAt)
	todoRepo.AssertExpectations(t)
}

func TestTodoService_Update_RepeatedCompleteKeepsTimestamp(t *testing.T) {
	userID := uuid.New()
	todo := newTodoFixture(userID)
	completedAt := time.Now().Add(-time.Minute)
	todo.IsCompleted = true
	todo.Status = models.TodoStatusDone
	todo.CompletedAt = &completedAt

	todoRepo := new(todoRepoMock)
	projectRepo := new(projectRepoMock)
	tagRepo := new(tagRepoMock)

	todoRepo.On("GetByID", mock.Anything, todo.ID, userID).Return(todo, nil)
	todoRepo.On("Update", mock.Anything, todo).Return(nil).Once()

	svc := NewTodoService(todoRepo, projectRepo, tagRepo)

	got, err := svc.Update(context.Background(), userID, todo.ID, &dto.UpdateTodoRequest{
		IsCompleted: ptr(true),
	})

	require.NoError(t, err)
	require.True(t, got.IsCompleted)
	require.Equal(t, models.TodoStatusDone, got.Status)
	require.Equal(t, completedAt, *got.CompletedAt)
	todoRepo.AssertExpectations(t)
}

func TestTodoService_Update_NilTagIDsLeavesTagsAlone(t *testing.T) {
	userID := uuid.New()
	todo := newTodoFixture(userID)

	todoRepo := new(todoRepoMock)
	projectRepo := new(projectRepoMock)
	tagRepo := new(tagRepoMock)

	todoRepo.On("GetByID", mock.Anything, todo.ID, userID).Return(todo, nil)
	todoRepo.On("Update", mock.Anything, todo).Return(nil).Once()

	svc := NewTodoService(todoRepo, projectRepo, tagRepo)

	_, err := svc.Update(context.Background(), userID, todo.ID, &dto.UpdateTodoRequest{
		Title: ptr("Ship migration plan"),
	})

	require.NoError(t, err)
	require.Equal(t, "Ship migration plan", todo.Title)
	todoRepo.AssertNotCalled(t, "ReplaceTags")
	todoRepo.AssertExpectations(t)
}

func TestTodoService_Update_EmptyTagIDsClearsTags(t *testing.T) {
	userID := uuid.New()
	todo := newTodoFixture(userID)

	todoRepo := new(todoRepoMock)
	projectRepo := new(projectRepoMock)
	tagRepo := new(tagRepoMock)

	todoRepo.On("GetByID", mock.Anything, todo.ID, userID).Return(todo, nil)
	todoRepo.On("Update", mock.Anything, todo).Return(nil).Once()
	todoRepo.On("ReplaceTags", mock.Anything, todo, []models.Tag{}).Return(nil).Once()

	svc := NewTodoService(todoRepo, projectRepo, tagRepo)

	_, err := svc.Update(context.Background(), userID, todo.ID, &dto.UpdateTodoRequest{
		TagIDs: []uuid.UUID{},
	})

	require.NoError(t, err)
	todoRepo.AssertExpectations(t)
}

func TestTodoService_Update_MoveToUnownedProjectFails(t *testing.T) {
	userID := uuid.New()
	todo := newTodoFixture(userID)
	targetProjectID := uuid.New()

	todoRepo := new(todoRepoMock)
	projectRepo := new(projectRepoMock)
	tagRepo := new(tagRepoMock)

	todoRepo.On("GetByID", mock.Anything, todo.ID, userID).Return(todo, nil)
	projectRepo.On("GetByID", mock.Anything, targetProjectID, userID).Return(nil, gorm.ErrRecordNotFound).Once()

	svc := NewTodoService(todoRepo, projectRepo, tagRepo)

	_, err := svc.Update(context.Background(), userID, todo.ID, &dto.UpdateTodoRequest{
		ProjectID: ptr(targetProjectID),
	})

	require.ErrorIs(t, err, models.ErrProjectNotFound)
	todoRepo.AssertNotCalled(t, "Update")
	projectRepo.AssertExpectations(t)
}

func TestTodoService_Update_UnownedTodoNotFound(t *testing.T) {
	userID := uuid.New()
	todoID := uuid.New()

	todoRepo := new(todoRepoMock)
	projectRepo := new(projectRepoMock)
	tagRepo := new(tagRepoMock)

	todoRepo.On("GetByID", mock.Anything, todoID, userID).Return(nil, gorm.ErrRecordNotFound).Once()

	svc := NewTodoService(todoRepo, projectRepo, tagRepo)

	_, err := svc.Update(context.Background(), userID, todoID, &dto.UpdateTodoRequest{Title: ptr("x")})

	require.ErrorIs(t, err, models.ErrTodoNotFound)
	todoRepo.AssertExpectations(t)
}

func TestTodoService_Delete_UnownedTodoNotFound(t *testing.T) {
	userID := uuid.New()
	todoID := uuid.New()

	todoRepo := new(todoRepoMock)
	projectRepo := new(projectRepoMock)
	tagRepo := new(tagRepoMock)

	todoRepo.On("GetByID", mock.Anything, todoID, userID).Return(nil, gorm.ErrRecordNotFound).Once()

	svc := NewTodoService(todoRepo, projectRepo, tagRepo)

	err := svc.Delete(context.Background(), userID, todoID)

	require.ErrorIs(t, err, models.ErrTodoNotFound)
	todoRepo.AssertNotCalled(t, "Delete")
	todoRepo.AssertExpectations(t)
}
