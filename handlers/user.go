package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

type userResponse struct {
	Nickname string `json:"nickname"`
}

// GET /api/users/{nickname}
func (api *API) GetUser(w http.ResponseWriter, r *http.Request) {
	nickname := r.PathValue("nickname")

	user, err := api.Users.Get(r.Context(), nickname)
	if err != nil {
		writeServiceError(w, "GetUser", err)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{Nickname: user.Nickname})
}

// POST /api/users
func (api *API) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req userResponse
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("CreateUser: Invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := api.Users.Create(r.Context(), req.Nickname)
	if err != nil {
		writeServiceError(w, "CreateUser", err)
		return
	}

	log.Printf("CreateUser: Successfully created user %s", user.Nickname)
	writeJSON(w, http.StatusCreated, userResponse{Nickname: user.Nickname})
}
