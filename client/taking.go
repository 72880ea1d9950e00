package client

import (
	"context"
	"strings"

	"quizbuilder/models"
)

// QuizSession is one taker's run through a quiz: load once, collect
// responses, submit, score. The loaded quiz is never mutated.
type QuizSession struct {
	api *Client

	quiz       *models.Quiz
	selections map[uint]map[uint]bool // question id -> selected answer ids
	texts      map[uint]string        // question id -> free-text response
	submitted  bool
	score      int
}

func NewQuizSession(api *Client) *QuizSession {
	return &QuizSession{
		api:        api,
		selections: make(map[uint]map[uint]bool),
		texts:      make(map[uint]string),
	}
}

// Load fetches the quiz tree. A missing quiz surfaces as ErrNotFound, which
// callers must render as its own state, not as loading or empty.
func (s *QuizSession) Load(ctx context.Context, quizID uint) error {
	quiz, err := s.api.GetQuiz(ctx, quizID)
	if err != nil {
		return err
	}
	s.quiz = quiz
	return nil
}

func (s *QuizSession) Quiz() *models.Quiz {
	return s.quiz
}

// SelectAnswer records a choice. Radio questions (multiple=false) replace
// the previous selection; checkbox questions toggle membership. Ignored
// after submit.
func (s *QuizSession) SelectAnswer(questionID, answerID uint, multiple bool) {
	if s.submitted {
		return
	}

	if multiple {
		sel := s.selections[questionID]
		if sel == nil {
			sel = make(map[uint]bool)
			s.selections[questionID] = sel
		}
		if sel[answerID] {
			delete(sel, answerID)
		} else {
			sel[answerID] = true
		}
		return
	}

	s.selections[questionID] = map[uint]bool{answerID: true}
}

// IsSelected reports whether an answer is part of the current response,
// which is what a renderer needs for checked state.
func (s *QuizSession) IsSelected(questionID, answerID uint) bool {
	return s.selections[questionID][answerID]
}

// SetTextResponse overwrites the free-text response. Ignored after submit.
func (s *QuizSession) SetTextResponse(questionID uint, text string) {
	if s.submitted {
		return
	}
	s.texts[questionID] = text
}

func (s *QuizSession) Submitted() bool {
	return s.submitted
}

// Submit locks the session and computes the score. There is no unsubmit.
func (s *QuizSession) Submit() (score, total int) {
	if s.quiz == nil {
		return 0, 0
	}
	if !s.submitted {
		s.submitted = true
		s.score = s.computeScore()
	}
	return s.Score()
}

// Score returns the points awarded and the question count. Only meaningful
// once submitted.
func (s *QuizSession) Score() (score, total int) {
	if s.quiz == nil {
		return 0, 0
	}
	return s.score, len(s.quiz.Questions)
}

func (s *QuizSession) computeScore() int {
	points := 0
	for _, q := range s.quiz.Questions {
		if q.Type == models.QuestionInput {
			key := canonicalAnswer(q)
			if key == nil {
				continue
			}
			// Exact match: case- and whitespace-sensitive apart from the
			// trim on the response.
			if strings.TrimSpace(s.texts[q.ID]) == key.Text {
				points++
			}
			continue
		}

		correct := make(map[uint]bool)
		for _, a := range q.Answers {
			if a.IsCorrect {
				correct[a.ID] = true
			}
		}
		if sameSet(s.selections[q.ID], correct) {
			points++
		}
	}
	return points
}

// canonicalAnswer picks the answer key for a free-text question: the answer
// flagged correct, or failing that the first stored answer.
func canonicalAnswer(q models.Question) *models.Answer {
	for i := range q.Answers {
		if q.Answers[i].IsCorrect {
			return &q.Answers[i]
		}
	}
	if len(q.Answers) > 0 {
		return &q.Answers[0]
	}
	return nil
}

func sameSet(selected, correct map[uint]bool) bool {
	if len(selected) != len(correct) {
		return false
	}
	for id := range selected {
		if !correct[id] {
			return false
		}
	}
	return true
}
