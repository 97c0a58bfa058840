package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"fitvibe/internal/apperr"
	"fitvibe/internal/service"
)

type CartHandler struct {
	Cart *service.Cart
	Log  zerolog.Logger
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())
	items, err := h.Cart.Get(r.Context(), userID)
	if err != nil {
		writeErr(w, h.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type addToCartReq struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addToCartReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, h.Log, r, apperr.Validation("bad json"))
		return
	}
	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}

	userID, _ := UserID(r.Context())
	item, err := h.Cart.Add(r.Context(), userID, req.ProductID, qty)
	if err != nil {
		writeErr(w, h.Log, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Item added to cart",
		"item":    item,
	})
}

func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())
	productID := chi.URLParam(r, "productID")

	if err := h.Cart.Remove(r.Context(), userID, productID); err != nil {
		writeErr(w, h.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Item removed from cart"})
}
