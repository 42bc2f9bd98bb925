package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jswierk/flashcards-api/models"
)

type languageResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func toLanguageResponse(lang models.Language) languageResponse {
	return languageResponse{Code: lang.Code, Name: lang.Name}
}

// GET /api/languages
func (api *API) ListLanguages(w http.ResponseWriter, r *http.Request) {
	languages, err := api.Languages.List(r.Context())
	if err != nil {
		writeServiceError(w, "ListLanguages", err)
		return
	}

	response := make([]languageResponse, 0, len(languages))
	for _, lang := range languages {
		response = append(response, toLanguageResponse(lang))
	}
	writeJSON(w, http.StatusOK, response)
}

// POST /api/languages
func (api *API) CreateLanguage(w http.ResponseWriter, r *http.Request) {
	var req languageResponse
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("CreateLanguage: Invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	lang, err := api.Languages.Create(r.Context(), req.Code, req.Name)
	if err != nil {
		writeServiceError(w, "CreateLanguage", err)
		return
	}

	log.Printf("CreateLanguage: Successfully created language %s", lang.Code)
	writeJSON(w, http.StatusCreated, toLanguageResponse(*lang))
}

// DELETE /api/languages/{code}
func (api *API) DeleteLanguage(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	if err := api.Languages.Delete(r.Context(), code); err != nil {
		writeServiceError(w, "DeleteLanguage", err)
		return
	}

	log.Printf("DeleteLanguage: Successfully deleted language %s", code)
	w.WriteHeader(http.StatusNoContent)
}
