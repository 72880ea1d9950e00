package models

import (
	"time"

	"gorm.io/gorm"
)

type Quiz struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description"`
	AuthorID    uint           `json:"authorId" gorm:"not null"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Author    User       `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
}
