package models

import (
	"time"

	"gorm.io/gorm"
)

// QuestionType tags how a question is answered and scored.
type QuestionType string

const (
	QuestionInput    QuestionType = "input"    // free text, matched against the answer key
	QuestionRadio    QuestionType = "radio"    // single choice
	QuestionCheckbox QuestionType = "checkbox" // multiple choice
)

type Question struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	QuizID    uint           `json:"quizId" gorm:"not null"`
	Text      string         `json:"text" gorm:"not null"`
	Type      QuestionType   `json:"type" gorm:"not null;default:'input'"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Quiz    Quiz     `json:"quiz,omitempty"`
	Answers []Answer `json:"answers,omitempty" gorm:"foreignKey:QuestionID"`
}
