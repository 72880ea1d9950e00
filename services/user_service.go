package services

import (
	"quizbuilder/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type CreateUserRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name" binding:"required"`
}

func (s *UserService) CreateUser(req *CreateUserRequest) (*models.User, error) {
	user := models.User{
		Email: req.Email,
		Name:  req.Name,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUsers returns all users, each expanded with their quizzes.
func (s *UserService) GetUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.
		Preload("Quizzes", func(db *gorm.DB) *gorm.DB {
			return db.Order("quizzes.id")
		}).
		Order("id").
		Find(&users).Error
	return users, err
}

// GetUserByID returns one user expanded with their quizzes.
func (s *UserService) GetUserByID(userID uint) (*models.User, error) {
	var user models.User
	err := s.db.
		Preload("Quizzes", func(db *gorm.DB) *gorm.DB {
			return db.Order("quizzes.id")
		}).
		First(&user, userID).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) DeleteUser(userID uint) error {
	result := s.db.Delete(&models.User{}, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
