package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"fitvibe/internal/apperr"
	"fitvibe/internal/service"
)

type OrderHandler struct {
	Orders *service.Orders
	Log    zerolog.Logger
}

type placeOrderReq struct {
	ShippingAddress json.RawMessage `json:"shippingAddress"`
	PaymentInfo     json.RawMessage `json:"paymentInfo"`
}

func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req placeOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, h.Log, r, apperr.Validation("bad json"))
		return
	}

	userID, _ := UserID(r.Context())
	placed, err := h.Orders.Place(r.Context(), userID, req.ShippingAddress, req.PaymentInfo)
	if err != nil {
		writeErr(w, h.Log, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Order placed successfully",
		"order":   placed,
	})
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())
	orders, err := h.Orders.ListByUser(r.Context(), userID)
	if err != nil {
		writeErr(w, h.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}
