package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yasir-khalid/payments-inventory-microservices/internal/order/application"
)

type Handler struct {
	log     *slog.Logger
	service *application.Service
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.landing)
	r.Get("/orders", h.listOrders)
	r.Post("/orders", h.createOrder)
	return r
}

func (h *Handler) landing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to Orders/ microservice"})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	ids, err := h.service.ListOrderIDs(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ids)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req application.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_request", Detail: "malformed JSON body"})
		return
	}

	order, err := h.service.CreateOrder(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"order":  order,
	})
}

type errorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

func writeError(w http.ResponseWriter, err error) {
	status, kind := http.StatusInternalServerError, "internal"
	switch {
	case errors.Is(err, application.ErrInvalidRequest):
		status, kind = http.StatusBadRequest, "invalid_request"
	case errors.Is(err, application.ErrProductNotFound):
		status, kind = http.StatusNotFound, "not_found"
	case errors.Is(err, application.ErrMalformedProduct):
		status, kind = http.StatusBadGateway, "malformed_upstream"
	case errors.Is(err, application.ErrProductUnavailable),
		errors.Is(err, application.ErrStoreUnavailable):
		status, kind = http.StatusServiceUnavailable, "unavailable"
	}
	writeJSON(w, status, errorBody{Error: kind, Detail: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
