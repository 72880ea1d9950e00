package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"quizbuilder/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type QuestionHandler struct {
	questionService *services.QuestionService
}

func NewQuestionHandler(questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
	}
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req services.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data or quiz not found"})
		return
	}

	question, err := h.questionService.CreateQuestion(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data or quiz not found"})
		return
	}

	c.JSON(http.StatusCreated, question)
}

func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	questions, err := h.questionService.GetQuestions()
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

func (h *QuestionHandler) GetQuestionByID(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question ID"})
		return
	}

	question, err := h.questionService.GetQuestionByID(uint(questionID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question ID"})
		return
	}

	if err := h.questionService.DeleteQuestion(uint(questionID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Question deleted successfully"})
}
