package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"fitvibe/internal/apperr"
	"fitvibe/internal/models"
	"fitvibe/internal/service"
)

type AuthHandler struct {
	Auth *service.Auth
	Log  zerolog.Logger
}

type userView struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func viewUser(u *models.User) userView {
	return userView{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
}

type createAccountReq struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (h *AuthHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, h.Log, r, apperr.Validation("bad json"))
		return
	}

	u, token, err := h.Auth.Register(r.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		writeErr(w, h.Log, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Account created successfully",
		"user":    viewUser(u),
		"token":   token,
	})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, h.Log, r, apperr.Validation("bad json"))
		return
	}

	u, token, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeErr(w, h.Log, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    viewUser(u),
		"token":   token,
	})
}
