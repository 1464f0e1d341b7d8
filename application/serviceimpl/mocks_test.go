package serviceimpl

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Msparihar/todo/domain/models"
	"github.com/Msparihar/todo/domain/repositories"
)

type userRepoMock struct {
	mock.Mock
}

func (m *userRepoMock) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	var user *models.User
	if value := args.Get(0); value != nil {
		user = value.(*models.User)
	}
	return user, args.Error(1)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	var user *models.User
	if value := args.Get(0); value != nil {
		user = value.(*models.User)
	}
	return user, args.Error(1)
}

func (m *userRepoMock) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	var user *models.User
	if value := args.Get(0); value != nil {
		user = value.(*models.User)
	}
	return user, args.Error(1)
}

func (m *userRepoMock) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *userRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type projectRepoMock struct {
	mock.Mock
}

func (m *projectRepoMock) Create(ctx context.Context, project *models.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *projectRepoMock) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Project, error) {
	args := m.Called(ctx, id, userID)
	var project *models.Project
	if value := args.Get(0); value != nil {
		project = value.(*models.Project)
	}
	return project, args.Error(1)
}

func (m *projectRepoMock) GetWithTodos(ctx context.Context, id, userID uuid.UUID) (*models.Project, error) {
	args := m.Called(ctx, id, userID)
	var project *models.Project
	if value := args.Get(0); value != nil {
		project = value.(*models.Project)
	}
	return project, args.Error(1)
}

func (m *projectRepoMock) List(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*models.Project, error) {
	args := m.Called(ctx, userID, includeArchived)
	var projects []*models.Project
	if value := args.Get(0); value != nil {
		projects = value.([]*models.Project)
	}
	return projects, args.Error(1)
}

func (m *projectRepoMock) Update(ctx context.Context, project *models.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *projectRepoMock) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

type tagRepoMock struct {
	mock.Mock
}

func (m *tagRepoMock) Create(ctx context.Context, tag *models.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *tagRepoMock) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Tag, error) {
	args := m.Called(ctx, id, userID)
	var tag *models.Tag
	if value := args.Get(0); value != nil {
		tag = value.(*models.Tag)
	}
	return tag, args.Error(1)
}

func (m *tagRepoMock) GetByName(ctx context.Context, userID uuid.UUID, name string) (*models.Tag, error) {
	args := m.Called(ctx, userID, name)
	var tag *models.Tag
	if value := args.Get(0); value != nil {
		tag = value.(*models.Tag)
	}
	return tag, args.Error(1)
}

func (m *tagRepoMock) List(ctx context.Context, userID uuid.UUID) ([]*models.Tag, error) {
	args := m.Called(ctx, userID)
	var tags []*models.Tag
	if value := args.Get(0); value != nil {
		tags = value.([]*models.Tag)
	}
	return tags, args.Error(1)
}

func (m *tagRepoMock) Update(ctx context.Context, tag *models.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *tagRepoMock) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

type todoRepoMock struct {
	mock.Mock
}

func (m *todoRepoMock) Create(ctx context.Context, todo *models.Todo) error {
	args := m.Called(ctx, todo)
	return args.Error(0)
}

func (m *todoRepoMock) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Todo, error) {
	args := m.Called(ctx, id, userID)
	var todo *models.Todo
	if value := args.Get(0); value != nil {
		if rf, ok := value.(func(context.Context, uuid.UUID, uuid.UUID) (*models.Todo, error)); ok {
			return rf(ctx, id, userID)
		}
		todo = value.(*models.Todo)
	}
	return todo, args.Error(1)
}

func (m *todoRepoMock) List(ctx context.Context, userID uuid.UUID, filter repositories.TodoFilter) ([]*models.Todo, error) {
	args := m.Called(ctx, userID, filter)
	var todos []*models.Todo
	if value := args.Get(0); value != nil {
		todos = value.([]*models.Todo)
	}
	return todos, args.Error(1)
}

func (m *todoRepoMock) Update(ctx context.Context, todo *models.Todo) error {
	args := m.Called(ctx, todo)
	return args.Error(0)
}

func (m *todoRepoMock) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *todoRepoMock) ReplaceTags(ctx context.Context, todo *models.Todo, tags []models.Tag) error {
	args := m.Called(ctx, todo, tags)
	return args.Error(0)
}
