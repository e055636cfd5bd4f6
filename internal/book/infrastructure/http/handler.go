package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/yasir-khalid/payments-inventory-microservices/internal/book/application"
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
	r.Get("/books", h.listBooks)
	r.Get("/books/publish/", h.byPublishYear)
	r.Get("/books/{book_id}", h.getBook)
	r.Post("/create-book", h.createBook)
	r.Put("/books/update", h.updateBook)
	r.Delete("/books/{book_id}", h.deleteBook)
	return r
}

func (h *Handler) landing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to my book store"})
}

// listBooks supports ?limit=N to cap the listing and ?rating=R to filter.
func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	limit := -1
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_request", Detail: "limit must be an integer"})
			return
		}
		limit = n
	}
	minRating := 0.0
	if raw := r.URL.Query().Get("rating"); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_request", Detail: "rating must be a number"})
			return
		}
		minRating = f
	}

	books, err := h.service.List(r.Context(), limit, minRating)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, books)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "book_id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_request", Detail: "book_id must be an integer"})
		return
	}
	books, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, books)
}

func (h *Handler) byPublishYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_request", Detail: "year must be an integer"})
		return
	}
	books, err := h.service.ByPublishYear(r.Context(), year)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, books)
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	var req application.BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_request", Detail: "malformed JSON body"})
		return
	}
	created, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "created successfully",
		"timestamp": time.Now().UTC(),
		"data":      created,
	})
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	var upd application.BookUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_request", Detail: "malformed JSON body"})
		return
	}
	updated, err := h.service.Update(r.Context(), upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Book updated",
		"data":    updated,
	})
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "book_id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_request", Detail: "book_id must be an integer"})
		return
	}
	removed, err := h.service.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Book deleted successfully",
		"data":    removed,
	})
}

type errorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

func writeError(w http.ResponseWriter, err error) {
	status, kind := http.StatusInternalServerError, "internal"
	switch {
	case errors.Is(err, application.ErrInvalidBook):
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
