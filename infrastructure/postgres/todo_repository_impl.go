package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Msparihar/todo/domain/models"
	"github.com/Msparihar/todo/domain/repositories"
)

type TodoRepositoryImpl struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) repositories.TodoRepository {
	return &TodoRepositoryImpl{db: db}
}

func (r *TodoRepositoryImpl) Create(ctx context.Context, todo *models.Todo) error {
	// Omit("Tags.*") inserts join rows without touching the tag rows.
	return r.db.WithContext(ctx).Omit("Tags.*").Create(todo).Error
}

func (r *TodoRepositoryImpl) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Todo, error) {
	var todo models.Todo
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Preload("Project").
		Preload("Tags").
		First(&todo).Error
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *TodoRepositoryImpl) List(ctx context.Context, userID uuid.UUID, filter repositories.TodoFilter) ([]*models.Todo, error) {
	var todos []*models.Todo

	query := r.db.WithContext(ctx).Where("todos.user_id = ?", userID)

	if filter.ProjectID != nil {
		query = query.Where("todos.project_id = ?", *filter.ProjectID)
	}
	if filter.Status != nil {
		query = query.Where("todos.status = ?", *filter.Status)
	}
	if filter.IsCompleted != nil {
		query = query.Where("todos.is_completed = ?", *filter.IsCompleted)
	}
	if filter.DueDateBefore != nil {
		query = query.Where("todos.due_date <= ?", *filter.DueDateBefore)
	}
	if filter.DueDateAfter != nil {
		query = query.Where("todos.due_date >= ?", *filter.DueDateAfter)
	}
	if filter.Priority != nil {
		query = query.Where("todos.priority = ?", *filter.Priority)
	}
	if filter.TagID != nil {
		query = query.
			Joins("JOIN todo_tags ON todo_tags.todo_id = todos.id").
			Where("todo_tags.tag_id = ?", *filter.TagID)
	}

	err := query.Preload("Project").Preload("Tags").Find(&todos).Error
	return todos, err
}

func (r *TodoRepositoryImpl) Update(ctx context.Context, todo *models.Todo) error {
	// Save with associations omitted; tag changes go through ReplaceTags.
	return r.db.WithContext(ctx).Omit("Tags", "Project").Save(todo).Error
}

func (r *TodoRepositoryImpl) Delete(ctx context.Context, id, userID uuid.UUID) error {
	// Association rows follow via ON DELETE CASCADE.
	return r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Todo{}).Error
}

func (r *TodoRepositoryImpl) ReplaceTags(ctx context.Context, todo *models.Todo, tags []models.Tag) error {
	return r.db.WithContext(ctx).Model(todo).Association("Tags").Replace(&tags)
}
