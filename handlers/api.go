package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/jswierk/flashcards-api/repository"
	"github.com/jswierk/flashcards-api/services"
)

// API bundles the services the HTTP layer exposes.
type API struct {
	Users      *services.UserService
	Languages  *services.LanguageService
	Flashcards *services.FlashcardService
	Quizzes    *services.QuizService
}

func NewAPI(store repository.Store) *API {
	return &API{
		Users:      services.NewUserService(store),
		Languages:  services.NewLanguageService(store),
		Flashcards: services.NewFlashcardService(store),
		Quizzes:    services.NewQuizService(store),
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("writeJSON: failed to encode response: %v", err)
	}
}

// writeServiceError maps the service error taxonomy onto HTTP statuses:
// not-found sentinels to 404, field errors to 400, conflicts to 409,
// everything else to 500.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	log.Printf("%s: %v", op, err)

	var fieldErr *services.FieldError
	switch {
	case errors.As(err, &fieldErr):
		http.Error(w, fieldErr.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrLanguageNotFound),
		errors.Is(err, repository.ErrFlashcardNotFound),
		errors.Is(err, repository.ErrQuizNotFound),
		errors.Is(err, repository.ErrQuizFlashcardNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, services.ErrNicknameTaken),
		errors.Is(err, services.ErrLanguageExists),
		errors.Is(err, services.ErrLanguageInUse),
		errors.Is(err, services.ErrDuplicateQuestion),
		errors.Is(err, services.ErrFlashcardInUse):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
