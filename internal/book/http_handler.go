package book

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/manauwar-123/library-api/internal/httpx"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Register wires the catalog routes onto the mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /books", h.Create)
	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("GET /books/{id}", h.GetByID)
	mux.HandleFunc("PUT /books/{id}", h.Update)
	mux.HandleFunc("DELETE /books/{id}", h.Delete)
	mux.HandleFunc("GET /search", h.Search)
}

// ListResponse is the body of GET /books.
type ListResponse struct {
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
	TotalBooks int    `json:"totalBooks"`
	Books      []Book `json:"books"`
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

// List handles GET /books?page=&limit=
//
// Bad pagination input is never an error: non-numeric or missing values fall
// back to page 1 and limit 10, and limit is deliberately uncapped.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page < 1 {
		page = defaultPage
	}
	limit, err := strconv.Atoi(query.Get("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	skip := (page - 1) * limit

	books, total, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if books == nil {
		books = []Book{}
	}

	httpx.JSON(w, http.StatusOK, ListResponse{
		Page:       page,
		TotalPages: (total + limit - 1) / limit,
		TotalBooks: total,
		Books:      books,
	})
}

// GetByID handles GET /books/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	found, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, found)
}

// Update handles PUT /books/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.service.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "book deleted"})
}

// Search handles GET /search?query=
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("query")
	if term == "" {
		httpx.Error(w, http.StatusBadRequest, "query required")
		return
	}

	books, err := h.service.Search(r.Context(), term)
	if err != nil {
		writeError(w, err)
		return
	}
	if books == nil {
		books = []Book{}
	}
	httpx.JSON(w, http.StatusOK, books)
}

// writeError is the single place service and store outcomes become HTTP
// statuses. No driver detail reaches the client.
func writeError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.Error(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, ErrDuplicateISBN):
		httpx.Error(w, http.StatusBadRequest, "isbn already exists")
	case errors.Is(err, ErrInvalidBook):
		httpx.Error(w, http.StatusBadRequest, "book violates catalog constraints")
	case errors.Is(err, ErrInvalidID):
		httpx.Error(w, http.StatusBadRequest, "invalid id")
	case errors.Is(err, ErrNotFound):
		httpx.Error(w, http.StatusNotFound, "book not found")
	default:
		httpx.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
