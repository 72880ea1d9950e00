package services

import (
	"quizbuilder/models"

	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

type CreateQuizRequest struct {
	Title       string                `json:"title" binding:"required"`
	Description string                `json:"description"`
	AuthorID    uint                  `json:"authorId" binding:"required"`
	Questions   []QuizQuestionRequest `json:"questions"`
}

type QuizQuestionRequest struct {
	Text    string              `json:"text" binding:"required"`
	Type    models.QuestionType `json:"type"`
	Answers []QuizAnswerRequest `json:"answers"`
}

type QuizAnswerRequest struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"isCorrect"`
}

// CreateQuiz persists a quiz. When the request carries questions the whole
// tree (quiz, questions, answers) is inserted in a single transaction, so a
// failed submit never leaves a partially persisted quiz behind.
func (s *QuizService) CreateQuiz(req *CreateQuizRequest) (*models.Quiz, error) {
	quiz := models.Quiz{
		Title:       req.Title,
		Description: req.Description,
		AuthorID:    req.AuthorID,
	}

	if len(req.Questions) == 0 {
		if err := s.db.Create(&quiz).Error; err != nil {
			return nil, err
		}
		return s.GetQuizByID(quiz.ID)
	}

	// Start transaction
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&quiz).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	for _, qReq := range req.Questions {
		questionType := qReq.Type
		if questionType == "" {
			questionType = models.QuestionInput
		}

		question := models.Question{
			QuizID: quiz.ID,
			Text:   qReq.Text,
			Type:   questionType,
		}

		if err := tx.Create(&question).Error; err != nil {
			tx.Rollback()
			return nil, err
		}

		for _, aReq := range qReq.Answers {
			answer := models.Answer{
				QuestionID: question.ID,
				Text:       aReq.Text,
				IsCorrect:  aReq.IsCorrect,
			}

			if err := tx.Create(&answer).Error; err != nil {
				tx.Rollback()
				return nil, err
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	// Fetch the quiz with questions and answers loaded
	return s.GetQuizByID(quiz.ID)
}

// GetQuizzes returns all quizzes, each expanded with its author and
// questions. Answers are not embedded at this level.
func (s *QuizService) GetQuizzes() ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := s.db.
		Preload("Author").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.id")
		}).
		Order("id").
		Find(&quizzes).Error
	return quizzes, err
}

// GetQuizByID returns one quiz expanded with its author, its questions in
// creation order and each question's answers in creation order.
func (s *QuizService) GetQuizByID(quizID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := s.db.
		Preload("Author").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.id")
		}).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.id")
		}).
		First(&quiz, quizID).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// DeleteQuiz removes a quiz and everything under it. The store has no
// schema-level cascade, so dependents go first: answers of the quiz's
// questions, then the questions, then the quiz itself. The three deletes are
// sequential and not wrapped in a transaction; a crash partway leaves
// orphaned rows behind.
func (s *QuizService) DeleteQuiz(quizID uint) error {
	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		return err
	}

	var questionIDs []uint
	if err := s.db.Model(&models.Question{}).
		Where("quiz_id = ?", quizID).
		Pluck("id", &questionIDs).Error; err != nil {
		return err
	}

	if len(questionIDs) > 0 {
		if err := s.db.Where("question_id IN ?", questionIDs).Delete(&models.Answer{}).Error; err != nil {
			return err
		}
		if err := s.db.Where("quiz_id = ?", quizID).Delete(&models.Question{}).Error; err != nil {
			return err
		}
	}

	return s.db.Delete(&models.Quiz{}, quizID).Error
}
