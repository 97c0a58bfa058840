package httpx

import (
	"net/http"

	"github.com/rs/zerolog"

	"fitvibe/internal/repo"
)

type ProfileHandler struct {
	Users repo.Users
	Log   zerolog.Logger
}

func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())
	u, err := h.Users.ByID(r.Context(), userID)
	if err != nil {
		writeErr(w, h.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *ProfileHandler) MyChallenges(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())
	challenges, err := h.Users.ChallengesFor(r.Context(), userID)
	if err != nil {
		writeErr(w, h.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, challenges)
}
