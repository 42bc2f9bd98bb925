package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jswierk/flashcards-api/models"
	"github.com/jswierk/flashcards-api/repository"
	"github.com/jswierk/flashcards-api/services"
)

type flashcardResponse struct {
	ID       string           `json:"id"`
	Question cardSideResponse `json:"question"`
	Answer   cardSideResponse `json:"answer"`
	IsUsed   bool             `json:"isUsed"`
}

func toFlashcardResponse(card models.Flashcard) flashcardResponse {
	return flashcardResponse{
		ID:       card.PublicID,
		Question: cardSideResponse(card.Question),
		Answer:   cardSideResponse(card.Answer),
		IsUsed:   card.IsUsed,
	}
}

type flashcardRequest struct {
	Question cardSideResponse `json:"question"`
	Answer   cardSideResponse `json:"answer"`
}

func (req flashcardRequest) toInput() services.FlashcardInput {
	return services.FlashcardInput{
		Question: models.CardSide(req.Question),
		Answer:   models.CardSide(req.Answer),
	}
}

// GET /api/users/{nickname}/flashcards
// Optional query params: questionLang, answerLang, query
func (api *API) ListFlashcards(w http.ResponseWriter, r *http.Request) {
	nickname := r.PathValue("nickname")

	filter := repository.FlashcardFilter{
		QuestionLangCode: r.URL.Query().Get("questionLang"),
		AnswerLangCode:   r.URL.Query().Get("answerLang"),
		QuestionQuery:    r.URL.Query().Get("query"),
	}

	cards, err := api.Flashcards.List(r.Context(), nickname, filter)
	if err != nil {
		writeServiceError(w, "ListFlashcards", err)
		return
	}

	response := make([]flashcardResponse, 0, len(cards))
	for _, card := range cards {
		response = append(response, toFlashcardResponse(card))
	}
	writeJSON(w, http.StatusOK, response)
}

// GET /api/users/{nickname}/flashcards/{cardID}
func (api *API) GetFlashcard(w http.ResponseWriter, r *http.Request) {
	nickname := r.PathValue("nickname")
	cardID := r.PathValue("cardID")

	card, err := api.Flashcards.Get(r.Context(), nickname, cardID)
	if err != nil {
		writeServiceError(w, "GetFlashcard", err)
		return
	}
	writeJSON(w, http.StatusOK, toFlashcardResponse(*card))
}

// POST /api/users/{nickname}/flashcards
func (api *API) CreateFlashcard(w http.ResponseWriter, r *http.Request) {
	nickname := r.PathValue("nickname")

	var req flashcardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("CreateFlashcard: Invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	card, err := api.Flashcards.Create(r.Context(), nickname, req.toInput())
	if err != nil {
		writeServiceError(w, "CreateFlashcard", err)
		return
	}

	log.Printf("CreateFlashcard: Successfully created flashcard %s for %s", card.PublicID, nickname)
	writeJSON(w, http.StatusCreated, toFlashcardResponse(*card))
}

// PUT /api/users/{nickname}/flashcards/{cardID}
func (api *API) UpdateFlashcard(w http.ResponseWriter, r *http.Request) {
	nickname := r.PathValue("nickname")
	cardID := r.PathValue("cardID")

	var req flashcardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("UpdateFlashcard: Invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	card, err := api.Flashcards.Update(r.Context(), nickname, cardID, req.toInput())
	if err != nil {
		writeServiceError(w, "UpdateFlashcard", err)
		return
	}
	writeJSON(w, http.StatusOK, toFlashcardResponse(*card))
}

// DELETE /api/users/{nickname}/flashcards/{cardID}
func (api *API) DeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	nickname := r.PathValue("nickname")
	cardID := r.PathValue("cardID")

	if err := api.Flashcards.Delete(r.Context(), nickname, cardID); err != nil {
		writeServiceError(w, "DeleteFlashcard", err)
		return
	}

	log.Printf("DeleteFlashcard: Successfully deleted flashcard %s", cardID)
	w.WriteHeader(http.StatusNoContent)
}
