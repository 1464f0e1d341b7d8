package models

import (
	"time"

	"github.com/google/uuid"
)

const DefaultColor = "#4F46E5"

type Project struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"not null"`
	Description string
	Color       string `gorm:"default:'#4F46E5'"`
	IsArchived  bool   `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relations
	Todos []Todo `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (Project) TableName() string {
	return "projects"
}
