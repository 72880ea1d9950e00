package routes

import (
	"net/http"

	"quizbuilder/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	userHandler *handlers.UserHandler,
	quizHandler *handlers.QuizHandler,
	questionHandler *handlers.QuestionHandler,
	answerHandler *handlers.AnswerHandler,
) {
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Quiz Builder API is running")
	})

	// API routes
	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		users := api.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.GetUsers)
			users.GET("/:id", userHandler.GetUserByID)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		quizzes := api.Group("/quizzes")
		{
			quizzes.POST("", quizHandler.CreateQuiz)
			quizzes.GET("", quizHandler.GetQuizzes)
			quizzes.GET("/:id", quizHandler.GetQuizByID)
			quizzes.DELETE("/:id", quizHandler.DeleteQuiz)
		}

		questions := api.Group("/questions")
		{
			questions.POST("", questionHandler.CreateQuestion)
			questions.GET("", questionHandler.GetQuestions)
			questions.GET("/:id", questionHandler.GetQuestionByID)
			questions.DELETE("/:id", questionHandler.DeleteQuestion)
		}

		answers := api.Group("/answers")
		{
			answers.POST("", answerHandler.CreateAnswer)
			answers.GET("", answerHandler.GetAnswers)
			answers.GET("/:id", answerHandler.GetAnswerByID)
			answers.DELETE("/:id", answerHandler.DeleteAnswer)
		}
	}
}
