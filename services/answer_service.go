package services

import (
	"quizbuilder/models"

	"gorm.io/gorm"
)

type AnswerService struct {
	db *gorm.DB
}

func NewAnswerService(db *gorm.DB) *AnswerService {
	return &AnswerService{db: db}
}

type CreateAnswerRequest struct {
	Text       string `json:"text" binding:"required"`
	IsCorrect  bool   `json:"isCorrect"`
	QuestionID uint   `json:"questionId" binding:"required"`
}

func (s *AnswerService) CreateAnswer(req *CreateAnswerRequest) (*models.Answer, error) {
	answer := models.Answer{
		QuestionID: req.QuestionID,
		Text:       req.Text,
		IsCorrect:  req.IsCorrect,
	}

	if err := s.db.Create(&answer).Error; err != nil {
		return nil, err
	}

	return &answer, nil
}

// GetAnswers returns all answers, each expanded with its parent question.
func (s *AnswerService) GetAnswers() ([]models.Answer, error) {
	var answers []models.Answer
	err := s.db.
		Preload("Question").
		Order("id").
		Find(&answers).Error
	return answers, err
}

// GetAnswerByID returns one answer expanded with its parent question.
func (s *AnswerService) GetAnswerByID(answerID uint) (*models.Answer, error) {
	var answer models.Answer
	err := s.db.
		Preload("Question").
		First(&answer, answerID).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (s *AnswerService) DeleteAnswer(answerID uint) error {
	result := s.db.Delete(&models.Answer{}, answerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
