package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag names are unique per owner, not globally.
type Tag struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tags_owner_name"`
	Name      string    `gorm:"not null;uniqueIndex:idx_tags_owner_name"`
	Color     string    `gorm:"default:'#4F46E5'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations
	Todos []Todo `gorm:"many2many:todo_tags;constraint:OnDelete:CASCADE"`
}

func (Tag) TableName() string {
	return "tags"
}
