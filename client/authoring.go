package client

import (
	"context"
	"errors"
	"strings"

	"quizbuilder/models"
)

// ErrInvalidQuiz is returned by Submit before any network call is made.
var ErrInvalidQuiz = errors.New("quiz must have a title and at least one question")

// AnswerDraft is an unsaved answer row in the builder.
type AnswerDraft struct {
	Text      string
	IsCorrect bool
}

// QuestionDraft is an unsaved question in the builder.
type QuestionDraft struct {
	Text    string
	Type    models.QuestionType
	Answers []AnswerDraft
}

// QuizBuilder accumulates a quiz tree in local state and persists it in one
// shot. Nothing touches the network until Submit.
type QuizBuilder struct {
	api         *Client
	authorID    uint
	title       string
	description string
	questions   []QuestionDraft
}

func NewQuizBuilder(api *Client, authorID uint) *QuizBuilder {
	return &QuizBuilder{
		api:      api,
		authorID: authorID,
	}
}

func (b *QuizBuilder) SetTitle(title string) {
	b.title = title
}

func (b *QuizBuilder) SetDescription(description string) {
	b.description = description
}

// AddQuestion appends an empty free-text question and returns its index.
func (b *QuizBuilder) AddQuestion() int {
	b.questions = append(b.questions, QuestionDraft{Type: models.QuestionInput})
	return len(b.questions) - 1
}

// UpdateQuestion replaces the question at the given index. The index must be
// within bounds.
func (b *QuizBuilder) UpdateQuestion(index int, q QuestionDraft) {
	b.questions[index] = q
}

// RemoveQuestion removes the question at the given index, shifting later
// questions down.
func (b *QuizBuilder) RemoveQuestion(index int) {
	b.questions = append(b.questions[:index], b.questions[index+1:]...)
}

func (b *QuizBuilder) SetQuestionText(index int, text string) {
	b.questions[index].Text = text
}

func (b *QuizBuilder) SetQuestionType(index int, t models.QuestionType) {
	b.questions[index].Type = t
}

// AddAnswer appends an answer row to a question. On a free-text question the
// first row is the answer key and is flagged correct on creation.
func (b *QuizBuilder) AddAnswer(index int, text string) {
	q := &b.questions[index]
	isKey := q.Type == models.QuestionInput && len(q.Answers) == 0
	q.Answers = append(q.Answers, AnswerDraft{Text: text, IsCorrect: isKey})
}

func (b *QuizBuilder) RemoveAnswer(index, answerIndex int) {
	q := &b.questions[index]
	q.Answers = append(q.Answers[:answerIndex], q.Answers[answerIndex+1:]...)
}

// SetAnswerCorrect flips an answer's correctness flag under the question
// type's policy: radio keeps at most one answer correct, checkbox flags
// toggle independently, and the free-text answer key always stays correct.
func (b *QuizBuilder) SetAnswerCorrect(index, answerIndex int, correct bool) {
	q := &b.questions[index]
	switch q.Type {
	case models.QuestionRadio:
		if correct {
			for i := range q.Answers {
				q.Answers[i].IsCorrect = i == answerIndex
			}
		} else {
			q.Answers[answerIndex].IsCorrect = false
		}
	case models.QuestionCheckbox:
		q.Answers[answerIndex].IsCorrect = correct
	case models.QuestionInput:
		q.Answers[answerIndex].IsCorrect = true
	}
}

// Questions returns a copy of the current drafts.
func (b *QuizBuilder) Questions() []QuestionDraft {
	out := make([]QuestionDraft, len(b.questions))
	copy(out, b.questions)
	return out
}

// Submit validates the draft and persists the whole tree in a single create
// call, which the backend runs as one transaction. An invalid draft returns
// ErrInvalidQuiz without any network traffic. On success the builder is
// reset for the next quiz.
func (b *QuizBuilder) Submit(ctx context.Context) (*models.Quiz, error) {
	if strings.TrimSpace(b.title) == "" || len(b.questions) == 0 {
		return nil, ErrInvalidQuiz
	}

	req := NewQuiz{
		Title:       b.title,
		Description: b.description,
		AuthorID:    b.authorID,
		Questions:   make([]NewQuestion, 0, len(b.questions)),
	}
	for _, q := range b.questions {
		nq := NewQuestion{
			Text:    q.Text,
			Type:    q.Type,
			Answers: make([]NewAnswer, 0, len(q.Answers)),
		}
		for _, a := range q.Answers {
			nq.Answers = append(nq.Answers, NewAnswer{Text: a.Text, IsCorrect: a.IsCorrect})
		}
		req.Questions = append(req.Questions, nq)
	}

	quiz, err := b.api.CreateQuiz(ctx, req)
	if err != nil {
		return nil, err
	}

	b.title = ""
	b.description = ""
	b.questions = nil

	return quiz, nil
}
