package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yasir-khalid/payments-inventory-microservices/internal/product/application"
	"github.com/yasir-khalid/payments-inventory-microservices/internal/product/domain"
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
	r.Get("/products", h.listProducts)
	r.Post("/products", h.createProduct)
	r.Get("/products/{product_key}", h.getProduct)
	r.Delete("/products/{product_key}", h.deleteProduct)
	return r
}

func (h *Handler) landing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to Products/ microservice"})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// getProduct answers with a one-element list for known keys and an empty
// list with a 404 otherwise; the order service's lookup client consumes
// this shape.
func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "product_key")
	p, err := h.service.Get(r.Context(), key)
	if errors.Is(err, application.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, []domain.Product{})
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, []domain.Product{p})
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req application.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_request", Detail: "malformed JSON body"})
		return
	}

	p, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "product_key")
	if err := h.service.Delete(r.Context(), key); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Product deleted successfully",
		"id":      key,
	})
}

type errorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

func writeError(w http.ResponseWriter, err error) {
	status, kind := http.StatusInternalServerError, "internal"
	switch {
	case errors.Is(err, application.ErrInvalidProduct):
		status, kind = http.StatusBadRequest, "invalid_request"
	case errors.Is(err, application.ErrNotFound):
		status, kind = http.StatusNotFound, "not_found"
	}
	writeJSON(w, status, errorBody{Error: kind, Detail: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
