package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Username  string    `gorm:"uniqueIndex;not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Password  string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations. Deleting a user cascades to everything it owns.
	Projects []Project `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Todos    []Todo    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Tags     []Tag     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}
