package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jswierk/flashcards-api/models"
	"github.com/jswierk/flashcards-api/repository"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get underlying db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(
		&models.User{},
		&models.Language{},
		&models.Flashcard{},
		&models.Quiz{},
		&models.QuizFlashcard{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return NewRouter(NewAPI(repository.NewGormStore(db)))
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, req)
	return recorder
}

func decodeJSON(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.NewDecoder(recorder.Body).Decode(target); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

type flashcardBody struct {
	ID string `json:"id"`
}

func seedQuizFixtures(t *testing.T, mux *http.ServeMux) (f1, f2 string) {
	t.Helper()

	if rec := doJSON(t, mux, http.MethodPost, "/api/users", map[string]string{"nickname": "alice"}); rec.Code != http.StatusCreated {
		t.Fatalf("create user: status %d", rec.Code)
	}
	for code, name := range map[string]string{"pol": "Polish", "eng": "English"} {
		if rec := doJSON(t, mux, http.MethodPost, "/api/languages", map[string]string{"code": code, "name": name}); rec.Code != http.StatusCreated {
			t.Fatalf("create language %s: status %d", code, rec.Code)
		}
	}

	cards := []map[string]map[string]string{
		{"question": {"value": "stolica Francji", "langCode": "pol"}, "answer": {"value": "Paris", "langCode": "eng"}},
		{"question": {"value": "stolica Japonii", "langCode": "pol"}, "answer": {"value": "Tokyo", "langCode": "eng"}},
	}
	ids := make([]string, 0, 2)
	for _, card := range cards {
		rec := doJSON(t, mux, http.MethodPost, "/api/users/alice/flashcards", card)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create flashcard: status %d, body %s", rec.Code, rec.Body.String())
		}
		var created flashcardBody
		decodeJSON(t, rec, &created)
		ids = append(ids, created.ID)
	}
	return ids[0], ids[1]
}

func TestQuizRoutesLifecycle(t *testing.T) {
	mux := newTestRouter(t)
	f1, f2 := seedQuizFixtures(t, mux)

	rec := doJSON(t, mux, http.MethodPost, "/api/users/alice/quizzes", map[string]any{
		"name":         "capitals",
		"flashcardIds": []string{f1, f2},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create quiz: status %d, body %s", rec.Code, rec.Body.String())
	}
	var quiz struct {
		ID    string `json:"id"`
		Score *int   `json:"score"`
	}
	decodeJSON(t, rec, &quiz)
	if quiz.Score != nil {
		t.Errorf("fresh quiz score = %v, want null", *quiz.Score)
	}

	// The take view must not leak answers.
	rec = doJSON(t, mux, http.MethodGet, "/api/users/alice/quizzes/"+quiz.ID+"/solve", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get solve view: status %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "Paris") {
		t.Error("solve view must not contain correct answers")
	}

	rec = doJSON(t, mux, http.MethodPost, "/api/users/alice/quizzes/"+quiz.ID+"/solve", []map[string]string{
		{"flashcardId": f1, "userAnswer": "paris"},
		{"flashcardId": f2, "userAnswer": "wrong"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("solve quiz: status %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/users/alice/quizzes/"+quiz.ID+"/results", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get results: status %d", rec.Code)
	}
	var results struct {
		Quiz struct {
			Score *int `json:"score"`
		} `json:"quiz"`
		Flashcards []struct {
			CorrectAnswer string  `json:"correctAnswer"`
			UserAnswer    *string `json:"userAnswer"`
		} `json:"flashcards"`
	}
	decodeJSON(t, rec, &results)
	if results.Quiz.Score == nil || *results.Quiz.Score != 50 {
		t.Errorf("score = %v, want 50", results.Quiz.Score)
	}
	if len(results.Flashcards) != 2 {
		t.Errorf("result entries = %d, want 2", len(results.Flashcards))
	}

	rec = doJSON(t, mux, http.MethodDelete, "/api/users/alice/quizzes/"+quiz.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete quiz: status %d", rec.Code)
	}
	rec = doJSON(t, mux, http.MethodGet, "/api/users/alice/quizzes/"+quiz.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("deleted quiz details: status %d, want 404", rec.Code)
	}
}

func TestQuizRoutesErrorMapping(t *testing.T) {
	mux := newTestRouter(t)
	f1, _ := seedQuizFixtures(t, mux)

	// InvalidArgument -> 400
	rec := doJSON(t, mux, http.MethodPost, "/api/users/alice/quizzes", map[string]any{
		"name":         "capitals",
		"flashcardIds": []string{},
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty flashcardIds: status %d, want 400", rec.Code)
	}

	// NotFound (quiz) -> 404
	rec = doJSON(t, mux, http.MethodGet, "/api/users/alice/quizzes/no-such-quiz", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown quiz: status %d, want 404", rec.Code)
	}

	// NotFound (user) -> 404
	rec = doJSON(t, mux, http.MethodPost, "/api/users/nobody/quizzes", map[string]any{
		"name":         "capitals",
		"flashcardIds": []string{f1},
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown user: status %d, want 404", rec.Code)
	}

	// Conflict -> 409
	rec = doJSON(t, mux, http.MethodPost, "/api/users", map[string]string{"nickname": "alice"})
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate nickname: status %d, want 409", rec.Code)
	}
}
