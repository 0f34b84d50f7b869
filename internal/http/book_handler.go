package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"libraryapi/internal/entity"
	"libraryapi/internal/usecase"
)

type BookHandler struct {
	repo usecase.BookRepository
}

func NewBookHandler(repo usecase.BookRepository) *BookHandler {
	return &BookHandler{repo: repo}
}

type bookReq struct {
	ISBN          string   `json:"isbn" validate:"required,isbn"`
	Title         string   `json:"title" validate:"required,max=255"`
	Author        string   `json:"author" validate:"required,max=255"`
	Description   string   `json:"description"`
	Publisher     string   `json:"publisher" validate:"max=255"`
	PublishedDate string   `json:"published_date" validate:"omitempty,datetime=2006-01-02"`
	GenreIDs      []string `json:"genre_ids"`
	TotalCopies   int      `json:"total_copies" validate:"gte=0"`
}

// @Summary List books
// @Description Get all books with filters and pagination
// @Tags books
// @Produce json
// @Param genre query string false "Filter by genre name"
// @Param author query string false "Filter by author"
// @Param q query string false "Search in title and author"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} SuccessResponse
// @Router /books [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	params := usecase.ListParams{
		Genre:  r.URL.Query().Get("genre"),
		Author: r.URL.Query().Get("author"),
		Q:      r.URL.Query().Get("q"),
	}

	page, pageSize := pagination(r)
	params.Limit = pageSize
	params.Offset = (page - 1) * pageSize

	books, total, err := h.repo.List(r.Context(), params)
	if err != nil {
		JSONDomainError(w, err)
		return
	}

	JSONSuccess(w, books, listMeta(page, pageSize, total))
}

// @Summary Get book
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /books/{id} [get]
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, action, ok := pathParts(r.URL.Path, "/books/")
	if !ok || action != "" {
		http.NotFound(w, r)
		return
	}
	book, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		JSONDomainError(w, err)
		return
	}
	JSONSuccess(w, book, nil)
}

// @Summary Create book
// @Tags books
// @Accept json
// @Produce json
// @Param book body bookReq true "Book data"
// @Security Bearer
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /books [post]
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, book, ok := h.decodeBook(w, r)
	if !ok {
		return
	}
	if err := h.repo.Create(r.Context(), book, req.GenreIDs); err != nil {
		JSONDomainError(w, err)
		return
	}
	JSONSuccessCreated(w, book)
}

// @Summary Update book
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param book body bookReq true "Book data"
// @Security Bearer
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /books/{id} [put]
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, action, ok := pathParts(r.URL.Path, "/books/")
	if !ok || action != "" {
		http.NotFound(w, r)
		return
	}
	req, book, ok := h.decodeBook(w, r)
	if !ok {
		return
	}
	book.ID = id
	if err := h.repo.Update(r.Context(), book, req.GenreIDs); err != nil {
		JSONDomainError(w, err)
		return
	}
	JSONSuccess(w, book, nil)
}

// @Summary Delete book
// @Tags books
// @Param id path string true "Book ID"
// @Security Bearer
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /books/{id} [delete]
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, action, ok := pathParts(r.URL.Path, "/books/")
	if !ok || action != "" {
		http.NotFound(w, r)
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		JSONDomainError(w, err)
		return
	}
	JSONSuccessNoContent(w)
}

func (h *BookHandler) decodeBook(w http.ResponseWriter, r *http.Request) (bookReq, *entity.Book, bool) {
	var req bookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return req, nil, false
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Author = strings.TrimSpace(req.Author)

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return req, nil, false
	}

	book := &entity.Book{
		ISBN:        req.ISBN,
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Publisher:   req.Publisher,
		TotalCopies: req.TotalCopies,
	}
	if req.PublishedDate != "" {
		d, _ := time.Parse("2006-01-02", req.PublishedDate)
		book.PublishedDate = &d
	}
	return req, book, true
}

func pagination(r *http.Request) (page, pageSize int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(r.URL.Query().Get("page_size"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

func listMeta(page, pageSize, total int) map[string]interface{} {
	return map[string]interface{}{
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": (total + pageSize - 1) / pageSize, // ceiling division
	}
}
