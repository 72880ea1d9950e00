package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"quizbuilder/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
	}
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req services.CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data or author not found"})
		return
	}

	quiz, err := h.quizService.CreateQuiz(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data or author not found"})
		return
	}

	c.JSON(http.StatusCreated, quiz)
}

func (h *QuizHandler) GetQuizzes(c *gin.Context) {
	quizzes, err := h.quizService.GetQuizzes()
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, quizzes)
}

func (h *QuizHandler) GetQuizByID(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quiz ID"})
		return
	}

	quiz, err := h.quizService.GetQuizByID(uint(quizID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quiz ID"})
		return
	}

	if err := h.quizService.DeleteQuiz(uint(quizID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Quiz deleted successfully"})
}
