package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"quizbuilder/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AnswerHandler struct {
	answerService *services.AnswerService
}

func NewAnswerHandler(answerService *services.AnswerService) *AnswerHandler {
	return &AnswerHandler{
		answerService: answerService,
	}
}

func (h *AnswerHandler) CreateAnswer(c *gin.Context) {
	var req services.CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data or question not found"})
		return
	}

	answer, err := h.answerService.CreateAnswer(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data or question not found"})
		return
	}

	c.JSON(http.StatusCreated, answer)
}

func (h *AnswerHandler) GetAnswers(c *gin.Context) {
	answers, err := h.answerService.GetAnswers()
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, answers)
}

func (h *AnswerHandler) GetAnswerByID(c *gin.Context) {
	answerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid answer ID"})
		return
	}

	answer, err := h.answerService.GetAnswerByID(uint(answerID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Answer not found"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, answer)
}

func (h *AnswerHandler) DeleteAnswer(c *gin.Context) {
	answerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid answer ID"})
		return
	}

	if err := h.answerService.DeleteAnswer(uint(answerID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Answer not found"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Answer deleted successfully"})
}
