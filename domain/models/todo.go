package models

import (
	"time"

	"github.com/google/uuid"
)

type TodoStatus string

const (
	TodoStatusTodo       TodoStatus = "todo"
	TodoStatusInProgress TodoStatus = "in_progress"
	TodoStatusReview     TodoStatus = "review"
	TodoStatusDone       TodoStatus = "done"
)

func (s TodoStatus) Valid() bool {
	switch s {
	case TodoStatusTodo, TodoStatusInProgress, TodoStatusReview, TodoStatusDone:
		return true
	}
	return false
}

// Priority ranks, low to urgent.
const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
	PriorityUrgent = 4
)

type Todo struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"not null"`
	Description string
	Status      TodoStatus `gorm:"type:varchar(20);default:'todo'"`
	Priority    int        `gorm:"default:2"`
	IsCompleted bool       `gorm:"default:false"`
	DueDate     *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relations
	Project Project `gorm:"foreignKey:ProjectID"`
	Tags    []Tag   `gorm:"many2many:todo_tags;constraint:OnDelete:CASCADE"`
}

func (Todo) TableName() string {
	return "todos"
}
