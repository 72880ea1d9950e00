package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"quizbuilder/client"
	"quizbuilder/models"
)

// fixtureSession serves a canned quiz tree and returns a session loaded
// from it.
func fixtureSession(t *testing.T, quiz models.Quiz) *client.QuizSession {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/quizzes/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(quiz)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	api := client.New(client.Config{BaseURL: srv.URL + "/api"})
	session := client.NewQuizSession(api)
	if err := session.Load(context.Background(), quiz.ID); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return session
}

func choiceQuiz(questionType models.QuestionType) models.Quiz {
	return models.Quiz{
		ID:    1,
		Title: "Colors",
		Questions: []models.Question{
			{
				ID:   10,
				Type: questionType,
				Text: "Which are primary?",
				Answers: []models.Answer{
					{ID: 100, Text: "A", IsCorrect: true},
					{ID: 101, Text: "B"},
					{ID: 102, Text: "C", IsCorrect: true},
				},
			},
		},
	}
}

func freeTextQuiz(key string) models.Quiz {
	return models.Quiz{
		ID:    2,
		Title: "Capitals",
		Questions: []models.Question{
			{
				ID:   20,
				Type: models.QuestionInput,
				Text: "Capital of France?",
				Answers: []models.Answer{
					{ID: 200, Text: key, IsCorrect: true},
				},
			},
		},
	}
}

func TestLoadNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/quizzes/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Quiz not found"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	api := client.New(client.Config{BaseURL: srv.URL + "/api"})
	session := client.NewQuizSession(api)

	err := session.Load(context.Background(), 42)
	if err != client.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if session.Quiz() != nil {
		t.Error("a failed load must not leave a quiz behind")
	}
}

func TestSelectAnswerRadio(t *testing.T) {
	session := fixtureSession(t, choiceQuiz(models.QuestionRadio))

	session.SelectAnswer(10, 101, false)
	session.SelectAnswer(10, 100, false)

	if session.IsSelected(10, 101) {
		t.Error("radio selection must discard the previous choice")
	}
	if !session.IsSelected(10, 100) {
		t.Error("the second choice should be selected")
	}
}

func TestSelectAnswerCheckbox(t *testing.T) {
	session := fixtureSession(t, choiceQuiz(models.QuestionCheckbox))

	t.Run("Toggle", func(t *testing.T) {
		session.SelectAnswer(10, 100, true)
		session.SelectAnswer(10, 100, true)
		if session.IsSelected(10, 100) {
			t.Error("double toggle should return to unselected")
		}
	})

	t.Run("IndependentMembership", func(t *testing.T) {
		session.SelectAnswer(10, 100, true)
		session.SelectAnswer(10, 102, true)
		if !session.IsSelected(10, 100) || !session.IsSelected(10, 102) {
			t.Error("checkbox selections should accumulate")
		}
	})
}

func TestNoMutationAfterSubmit(t *testing.T) {
	session := fixtureSession(t, choiceQuiz(models.QuestionCheckbox))
	session.SelectAnswer(10, 100, true)
	session.Submit()

	session.SelectAnswer(10, 102, true)
	session.SetTextResponse(10, "late")

	if session.IsSelected(10, 102) {
		t.Error("SelectAnswer must be a no-op after submit")
	}

	if score, _ := session.Submit(); score != 0 {
		t.Errorf("re-submit must not rescore, got %d", score)
	}
}

func TestScoreFreeText(t *testing.T) {
	cases := []struct {
		name     string
		response string
		want     int
	}{
		{"ExactMatch", "Paris", 1},
		{"TrimmedMatch", "  Paris  ", 1},
		{"CaseMismatch", "paris", 0},
		{"Empty", "", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			session := fixtureSession(t, freeTextQuiz("Paris"))
			session.SetTextResponse(20, tc.response)

			score, total := session.Submit()
			if total != 1 {
				t.Fatalf("expected 1 question, got %d", total)
			}
			if score != tc.want {
				t.Errorf("response %q: score %d, want %d", tc.response, score, tc.want)
			}
		})
	}
}

func TestScoreFreeTextFallsBackToFirstAnswer(t *testing.T) {
	quiz := freeTextQuiz("Paris")
	quiz.Questions[0].Answers[0].IsCorrect = false
	session := fixtureSession(t, quiz)
	session.SetTextResponse(20, "Paris")

	if score, _ := session.Submit(); score != 1 {
		t.Errorf("expected the first answer to act as the key, score %d", score)
	}
}

func TestScoreMultiChoiceExactSet(t *testing.T) {
	cases := []struct {
		name      string
		selection []uint
		want      int
	}{
		{"ExactSet", []uint{100, 102}, 1},
		{"OrderIndependent", []uint{102, 100}, 1},
		{"Subset", []uint{100}, 0},
		{"Superset", []uint{100, 101, 102}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			session := fixtureSession(t, choiceQuiz(models.QuestionCheckbox))
			for _, id := range tc.selection {
				session.SelectAnswer(10, id, true)
			}

			if score, _ := session.Submit(); score != tc.want {
				t.Errorf("selection %v: score %d, want %d", tc.selection, score, tc.want)
			}
		})
	}
}

func TestScoreEmptyCorrectSet(t *testing.T) {
	quiz := choiceQuiz(models.QuestionCheckbox)
	for i := range quiz.Questions[0].Answers {
		quiz.Questions[0].Answers[i].IsCorrect = false
	}

	t.Run("EmptySelectionPasses", func(t *testing.T) {
		session := fixtureSession(t, quiz)
		session.SelectAnswer(10, 100, true)
		session.SelectAnswer(10, 100, true) // deselect everything again

		if score, _ := session.Submit(); score != 1 {
			t.Errorf("the empty set should match an empty correct set, score %d", score)
		}
	})

	t.Run("AnySelectionFails", func(t *testing.T) {
		session := fixtureSession(t, quiz)
		session.SelectAnswer(10, 100, true)

		if score, _ := session.Submit(); score != 0 {
			t.Errorf("a non-empty selection should fail, score %d", score)
		}
	})
}
