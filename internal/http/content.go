package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"fitvibe/internal/repo"
)

// ContentHandler serves the static challenge and activity content.
type ContentHandler struct {
	Challenges repo.Challenges
	Activities repo.Activities
	Log        zerolog.Logger
}

func (h *ContentHandler) ListChallenges(w http.ResponseWriter, r *http.Request) {
	challenges, err := h.Challenges.List(r.Context())
	if err != nil {
		writeErr(w, h.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, challenges)
}

func (h *ContentHandler) ChallengeByID(w http.ResponseWriter, r *http.Request) {
	c, err := h.Challenges.ByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, h.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ContentHandler) ActivityBySlug(w http.ResponseWriter, r *http.Request) {
	a, err := h.Activities.BySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeErr(w, h.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}
