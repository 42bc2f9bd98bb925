package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jswierk/flashcards-api/models"
	"github.com/jswierk/flashcards-api/services"
)

type quizResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score *int   `json:"score"`
}

func toQuizResponse(quiz models.Quiz) quizResponse {
	return quizResponse{ID: quiz.PublicID, Name: quiz.Name, Score: quiz.Score}
}

type cardSideResponse struct {
	Value    string `json:"value"`
	LangCode string `json:"langCode"`
}

// quizCardEditView surfaces both sides of a member flashcard, for the
// edit screen.
type quizCardEditView struct {
	ID       string           `json:"id"`
	Question cardSideResponse `json:"question"`
	Answer   cardSideResponse `json:"answer"`
}

// quizCardTakeView omits the answer, for the solve screen.
type quizCardTakeView struct {
	ID       string           `json:"id"`
	Question cardSideResponse `json:"question"`
}

// GET /api/users/{nickname}/quizzes
func (api *API) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	nickname := r.PathValue("nickname")

	quizzes, err := api.Quizzes.List(r.Context(), nickname)
	if err != nil {
		writeServiceError(w, "ListQuizzes", err)
		return
	}

	response := make([]quizResponse, 0, len(quizzes))
	for _, quiz := range quizzes {
		response = append(response, toQuizResponse(quiz))
	}
	writeJSON(w, http.StatusOK, response)
}

// POST /api/users/{nickname}/quizzes
func (api *API) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	nickname := r.PathValue("nickname")

	type createQuizRequest struct {
		Name         string   `json:"name"`
		FlashcardIDs []string `json:"flashcardIds"`
	}
	var req createQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("CreateQuiz: Invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	quiz, err := api.Quizzes.Create(r.Context(), nickname, services.QuizCreateInput{
		Name:         req.Name,
		FlashcardIDs: req.FlashcardIDs,
	})
	if err != nil {
		writeServiceError(w, "CreateQuiz", err)
		return
	}

	log.Printf("CreateQuiz: Successfully created quiz %s for %s", quiz.PublicID, nickname)
	writeJSON(w, http.StatusCreated, toQuizResponse(*quiz))
}

// GET /api/users/{nickname}/quizzes/{quizID}
func (api *API) GetQuizDetails(w http.ResponseWriter, r *http.Request) {
	nickname := r.PathValue("nickname")
	quizID := r.PathValue("quizID")

	details, err := api.Quizzes.Details(r.Context(), nickname, quizID)
	if err != nil {
		writeServiceError(w, "GetQuizDetails", err)
		return
	}

	flashcards := make([]quizCardEditView, 0, len(details.Flashcards))
	for _, card := range details.Flashcards {
		flashcards = append(flashcards, quizCardEditView{
			ID:       card.PublicID,
			Question: cardSideResponse(card.Question),
			Answer:   cardSideResponse(card.Answer),
		})
	}

	writeJSON(w, http.StatusOK, struct {
		Quiz       quizResponse       `json:"quiz"`
		Flashcards []quizCardEditView `json:"flashcards"`
	}{toQuizResponse(details.Quiz), flashcards})
}

// GET /api/users/{nickname}/quizzes/{quizID}/solve
func (api *API) GetQuizToSolve(w http.ResponseWriter, r *http.Request) {
	nickname := r.PathValue("nickname")
	quizID := r.PathValue("quizID")

	details, err := api.Quizzes.Details(r.Context(), nickname, quizID)
	if err != nil {
		writeServiceError(w, "GetQuizToSolve", err)
		return
	}

	flashcards := make([]quizCardTakeView, 0, len(details.Flashcards))
	for _, card := range details.Flashcards {
		flashcards = append(flashcards, quizCardTakeView{
			ID:       card.PublicID,
			Question: cardSideResponse(card.Question),
		})
	}

	writeJSON(w, http.StatusOK, struct {
		Quiz       quizResponse       `json:"quiz"`
		Flashcards []quizCardTakeView `json:"flashcards"`
	}{toQuizResponse(details.Quiz), flashcards})
}

// PUT /api/users/{nickname}/quizzes/{quizID}
func (api *API) EditQuiz(w http.ResponseWriter, r *http.Request) {
	nickname := r.PathValue("nickname")
	quizID := r.PathValue("quizID")

	type editQuizRequest struct {
		Name         string   `json:"name"`
		FlashcardIDs []string `json:"flashcardIds"`
	}
	var req editQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("EditQuiz: Invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	err := api.Quizzes.Edit(r.Context(), nickname, quizID, services.QuizEditInput{
		Name:         req.Name,
		FlashcardIDs: req.FlashcardIDs,
	})
	if err != nil {
		writeServiceError(w, "EditQuiz", err)
		return
	}

	log.Printf("EditQuiz: Successfully updated quiz %s", quizID)
	w.WriteHeader(http.StatusOK)
}

// POST /api/users/{nickname}/quizzes/{quizID}/solve
func (api *API) SolveQuiz(w http.ResponseWriter, r *http.Request) {
	nickname := r.PathValue("nickname")
	quizID := r.PathValue("quizID")

	type solveEntry struct {
		FlashcardID string `json:"flashcardId"`
		UserAnswer  string `json:"userAnswer"`
	}
	var req []solveEntry
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("SolveQuiz: Invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	answers := make([]services.QuizAnswer, 0, len(req))
	for _, entry := range req {
		answers = append(answers, services.QuizAnswer{
			FlashcardID: entry.FlashcardID,
			UserAnswer:  entry.UserAnswer,
		})
	}

	if err := api.Quizzes.Solve(r.Context(), nickname, quizID, answers); err != nil {
		writeServiceError(w, "SolveQuiz", err)
		return
	}

	log.Printf("SolveQuiz: Successfully solved quiz %s for %s", quizID, nickname)
	w.WriteHeader(http.StatusCreated)
}

// GET /api/users/{nickname}/quizzes/{quizID}/results
func (api *API) GetQuizResults(w http.ResponseWriter, r *http.Request) {
	nickname := r.PathValue("nickname")
	quizID := r.PathValue("quizID")

	results, err := api.Quizzes.Results(r.Context(), nickname, quizID)
	if err != nil {
		writeServiceError(w, "GetQuizResults", err)
		return
	}

	type resultEntry struct {
		ID            string           `json:"id"`
		Question      cardSideResponse `json:"question"`
		CorrectAnswer string           `json:"correctAnswer"`
		UserAnswer    *string          `json:"userAnswer"`
	}
	flashcards := make([]resultEntry, 0, len(results.Flashcards))
	for _, result := range results.Flashcards {
		flashcards = append(flashcards, resultEntry{
			ID:            result.FlashcardID,
			Question:      cardSideResponse(result.Question),
			CorrectAnswer: result.CorrectAnswer,
			UserAnswer:    result.UserAnswer,
		})
	}

	writeJSON(w, http.StatusOK, struct {
		Quiz       quizResponse  `json:"quiz"`
		Flashcards []resultEntry `json:"flashcards"`
	}{toQuizResponse(results.Quiz), flashcards})
}

// DELETE /api/users/{nickname}/quizzes/{quizID}
func (api *API) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	nickname := r.PathValue("nickname")
	quizID := r.PathValue("quizID")

	if err := api.Quizzes.Delete(r.Context(), nickname, quizID); err != nil {
		writeServiceError(w, "DeleteQuiz", err)
		return
	}

	log.Printf("DeleteQuiz: Successfully deleted quiz %s", quizID)
	w.WriteHeader(http.StatusNoContent)
}
