package handlers

import "net/http"

// NewRouter wires the API routes onto a ServeMux.
func NewRouter(api *API) *http.ServeMux {
	mux := http.NewServeMux()

	// User
	mux.HandleFunc("POST /api/users", api.CreateUser)
	mux.HandleFunc("GET /api/users/{nickname}", api.GetUser)

	// Language
	mux.HandleFunc("GET /api/languages", api.ListLanguages)
	mux.HandleFunc("POST /api/languages", api.CreateLanguage)
	mux.HandleFunc("DELETE /api/languages/{code}", api.DeleteLanguage)

	// Flashcard
	mux.HandleFunc("GET /api/users/{nickname}/flashcards", api.ListFlashcards)
	mux.HandleFunc("POST /api/users/{nickname}/flashcards", api.CreateFlashcard)
	mux.HandleFunc("GET /api/users/{nickname}/flashcards/{cardID}", api.GetFlashcard)
	mux.HandleFunc("PUT /api/users/{nickname}/flashcards/{cardID}", api.UpdateFlashcard)
	mux.HandleFunc("DELETE /api/users/{nickname}/flashcards/{cardID}", api.DeleteFlashcard)

	// Quiz
	mux.HandleFunc("GET /api/users/{nickname}/quizzes", api.ListQuizzes)
	mux.HandleFunc("POST /api/users/{nickname}/quizzes", api.CreateQuiz)
	mux.HandleFunc("GET /api/users/{nickname}/quizzes/{quizID}", api.GetQuizDetails)
	mux.HandleFunc("PUT /api/users/{nickname}/quizzes/{quizID}", api.EditQuiz)
	mux.HandleFunc("DELETE /api/users/{nickname}/quizzes/{quizID}", api.DeleteQuiz)
	mux.HandleFunc("GET /api/users/{nickname}/quizzes/{quizID}/solve", api.GetQuizToSolve)
	mux.HandleFunc("POST /api/users/{nickname}/quizzes/{quizID}/solve", api.SolveQuiz)
	mux.HandleFunc("GET /api/users/{nickname}/quizzes/{quizID}/results", api.GetQuizResults)

	return mux
}
