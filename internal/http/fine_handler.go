package http

import (
	"net/http"

	"libraryapi/internal/usecase"
)

type FineHandler struct {
	repo usecase.FineRepository
}

func NewFineHandler(repo usecase.FineRepository) *FineHandler {
	return &FineHandler{repo: repo}
}

// @Summary List fines
// @Tags fines
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Security Bearer
// @Success 200 {object} SuccessResponse
// @Router /fines [get]
func (h *FineHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)

	fines, total, err := h.repo.List(r.Context(), pageSize, (page-1)*pageSize)
	if err != nil {
		JSONDomainError(w, err)
		return
	}
	JSONSuccess(w, fines, listMeta(page, pageSize, total))
}

// Detail serves /fines/{id} and POST /fines/{id}/pay.
func (h *FineHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, action, ok := pathParts(r.URL.Path, "/fines/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	switch {
	case action == "" && r.Method == http.MethodGet:
		h.get(w, r, id)
	case action == "pay" && r.Method == http.MethodPost:
		h.markPaid(w, r, id)
	case action == "":
		w.WriteHeader(http.StatusMethodNotAllowed)
	default:
		http.NotFound(w, r)
	}
}

// @Summary Get fine
// @Tags fines
// @Produce json
// @Param id path string true "Fine ID"
// @Security Bearer
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /fines/{id} [get]
func (h *FineHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	fine, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		JSONDomainError(w, err)
		return
	}
	JSONSuccess(w, fine, nil)
}

// @Summary Pay fine
// @Tags fines
// @Produce json
// @Param id path string true "Fine ID"
// @Security Bearer
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /fines/{id}/pay [post]
func (h *FineHandler) markPaid(w http.ResponseWriter, r *http.Request, id string) {
	fine, err := h.repo.MarkPaid(r.Context(), id)
	if err != nil {
		JSONDomainError(w, err)
		return
	}
	JSONSuccess(w, fine, nil)
}
