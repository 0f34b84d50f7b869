package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"libraryapi/internal/entity"
	"libraryapi/internal/usecase"
)

type GenreHandler struct {
	repo usecase.GenreRepository
}

func NewGenreHandler(repo usecase.GenreRepository) *GenreHandler {
	return &GenreHandler{repo: repo}
}

type genreReq struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

// @Summary List genres
// @Tags genres
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /genres [get]
func (h *GenreHandler) List(w http.ResponseWriter, r *http.Request) {
	genres, err := h.repo.List(r.Context())
	if err != nil {
		JSONDomainError(w, err)
		return
	}
	JSONSuccess(w, genres, nil)
}

// @Summary Create genre
// @Tags genres
// @Accept json
// @Produce json
// @Param genre body genreReq true "Genre data"
// @Security Bearer
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /genres [post]
func (h *GenreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req genreReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Name = strings.TrimSpace(req.Name)

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	genre := &entity.Genre{Name: req.Name, Description: req.Description}
	if err := h.repo.Create(r.Context(), genre); err != nil {
		JSONDomainError(w, err)
		return
	}
	JSONSuccessCreated(w, genre)
}

// @Summary Get genre
// @Tags genres
// @Produce json
// @Param id path string true "Genre ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /genres/{id} [get]
func (h *GenreHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, action, ok := pathParts(r.URL.Path, "/genres/")
	if !ok || action != "" {
		http.NotFound(w, r)
		return
	}
	genre, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		JSONDomainError(w, err)
		return
	}
	JSONSuccess(w, genre, nil)
}

// @Summary Update genre
// @Tags genres
// @Accept json
// @Produce json
// @Param id path string true "Genre ID"
// @Param genre body genreReq true "Genre data"
// @Security Bearer
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /genres/{id} [put]
func (h *GenreHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, action, ok := pathParts(r.URL.Path, "/genres/")
	if !ok || action != "" {
		http.NotFound(w, r)
		return
	}

	var req genreReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Name = strings.TrimSpace(req.Name)

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	genre := &entity.Genre{ID: id, Name: req.Name, Description: req.Description}
	if err := h.repo.Update(r.Context(), genre); err != nil {
		JSONDomainError(w, err)
		return
	}
	JSONSuccess(w, genre, nil)
}

// @Summary Delete genre
// @Tags genres
// @Param id path string true "Genre ID"
// @Security Bearer
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /genres/{id} [delete]
func (h *GenreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, action, ok := pathParts(r.URL.Path, "/genres/")
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
