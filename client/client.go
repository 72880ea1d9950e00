// Package client is the Go client for the Quiz Builder API: a thin HTTP
// wrapper plus the two user-facing flows, quiz authoring (QuizBuilder) and
// quiz taking (QuizSession).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"quizbuilder/models"
)

// ErrNotFound is returned when the backend reports no record for the
// requested id.
var ErrNotFound = errors.New("not found")

// Config is the endpoint configuration injected at startup. BaseURL points
// at the API root, e.g. "http://localhost:4000/api".
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		http:    httpClient,
	}
}

type NewUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type NewAnswer struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

type NewQuestion struct {
	Text    string              `json:"text"`
	Type    models.QuestionType `json:"type,omitempty"`
	Answers []NewAnswer         `json:"answers,omitempty"`
}

type NewQuiz struct {
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	AuthorID    uint          `json:"authorId"`
	Questions   []NewQuestion `json:"questions,omitempty"`
}

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) CreateUser(ctx context.Context, u NewUser) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/users", u, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, userID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", userID), nil, nil)
}

func (c *Client) CreateQuiz(ctx context.Context, q NewQuiz) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := c.do(ctx, http.MethodPost, "/quizzes", q, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (c *Client) ListQuizzes(ctx context.Context) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	if err := c.do(ctx, http.MethodGet, "/quizzes", nil, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (c *Client) GetQuiz(ctx context.Context, quizID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/quizzes/%d", quizID), nil, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (c *Client) DeleteQuiz(ctx context.Context, quizID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/quizzes/%d", quizID), nil, nil)
}

func (c *Client) CreateQuestion(ctx context.Context, quizID uint, q NewQuestion) (*models.Question, error) {
	payload := struct {
		Text   string              `json:"text"`
		Type   models.QuestionType `json:"type,omitempty"`
		QuizID uint                `json:"quizId"`
	}{q.Text, q.Type, quizID}

	var question models.Question
	if err := c.do(ctx, http.MethodPost, "/questions", payload, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

func (c *Client) ListQuestions(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	if err := c.do(ctx, http.MethodGet, "/questions", nil, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (c *Client) GetQuestion(ctx context.Context, questionID uint) (*models.Question, error) {
	var question models.Question
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/questions/%d", questionID), nil, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

func (c *Client) DeleteQuestion(ctx context.Context, questionID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/questions/%d", questionID), nil, nil)
}

func (c *Client) CreateAnswer(ctx context.Context, questionID uint, a NewAnswer) (*models.Answer, error) {
	payload := struct {
		Text       string `json:"text"`
		IsCorrect  bool   `json:"isCorrect"`
		QuestionID uint   `json:"questionId"`
	}{a.Text, a.IsCorrect, questionID}

	var answer models.Answer
	if err := c.do(ctx, http.MethodPost, "/answers", payload, &answer); err != nil {
		return nil, err
	}
	return &answer, nil
}

func (c *Client) ListAnswers(ctx context.Context) ([]models.Answer, error) {
	var answers []models.Answer
	if err := c.do(ctx, http.MethodGet, "/answers", nil, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func (c *Client) GetAnswer(ctx context.Context, answerID uint) (*models.Answer, error) {
	var answer models.Answer
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/answers/%d", answerID), nil, &answer); err != nil {
		return nil, err
	}
	return &answer, nil
}

func (c *Client) DeleteAnswer(ctx context.Context, answerID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/answers/%d", answerID), nil, nil)
}

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode >= 400 {
		var apiErr apiError
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
