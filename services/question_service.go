package services

import (
	"quizbuilder/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type CreateQuestionRequest struct {
	Text   string              `json:"text" binding:"required"`
	Type   models.QuestionType `json:"type"`
	QuizID uint                `json:"quizId" binding:"required"`
}

func (s *QuestionService) CreateQuestion(req *CreateQuestionRequest) (*models.Question, error) {
	questionType := req.Type
	if questionType == "" {
		questionType = models.QuestionInput
	}

	question := models.Question{
		QuizID: req.QuizID,
		Text:   req.Text,
		Type:   questionType,
	}

	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}

	return &question, nil
}

// GetQuestions returns all questions, each expanded with its answers in
// creation order and its parent quiz.
func (s *QuestionService) GetQuestions() ([]models.Question, error) {
	var questions []models.Question
	err := s.db.
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.id")
		}).
		Preload("Quiz").
		Order("id").
		Find(&questions).Error
	return questions, err
}

// GetQuestionByID returns one question expanded with its answers and quiz.
func (s *QuestionService) GetQuestionByID(questionID uint) (*models.Question, error) {
	var question models.Question
	err := s.db.
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.id")
		}).
		Preload("Quiz").
		First(&question, questionID).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *QuestionService) DeleteQuestion(questionID uint) error {
	result := s.db.Delete(&models.Question{}, questionID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
