package http

import (
	"encoding/json"
	"net/http"
	"time"

	"libraryapi/internal/httpx"
	"libraryapi/internal/usecase"
)

// BorrowingHandler exposes the borrowing ledger and the fine calculator over
// /borrowings. Listing and reads go straight to the repository; anything that
// mutates copy counts goes through the ledger.
type BorrowingHandler struct {
	ledger *usecase.Ledger
	calc   *usecase.FineCalculator
	repo   usecase.BorrowingRepository
}

func NewBorrowingHandler(ledger *usecase.Ledger, calc *usecase.FineCalculator, repo usecase.BorrowingRepository) *BorrowingHandler {
	return &BorrowingHandler{ledger: ledger, calc: calc, repo: repo}
}

type createBorrowingReq struct {
	BookID  string `json:"book_id" validate:"required,uuid4"`
	DueDate string `json:"due_date" validate:"required,datetime=2006-01-02"`
}

// @Summary Borrow a book
// @Description Borrow one copy of a book for the current user
// @Tags borrowings
// @Accept json
// @Produce json
// @Param borrowing body createBorrowingReq true "Borrowing data"
// @Security Bearer
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /borrowings [post]
func (h *BorrowingHandler) Create(w http.ResponseWriter, r *http.Request) {
	memberID := httpx.UserIDFrom(r)
	if memberID == "" {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req createBorrowingReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	dueDate, _ := time.Parse("2006-01-02", req.DueDate)

	borrowing, err := h.ledger.CreateBorrowing(r.Context(), memberID, req.BookID, dueDate)
	if err != nil {
		JSONDomainError(w, err)
		return
	}
	JSONSuccessCreated(w, borrowing)
}

// @Summary List borrowings
// @Tags borrowings
// @Produce json
// @Param member_id query string false "Filter by member"
// @Param active query bool false "Only borrowings not yet returned"
// @Param overdue query bool false "Only active borrowings past their due date"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Security Bearer
// @Success 200 {object} SuccessResponse
// @Router /borrowings [get]
func (h *BorrowingHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := usecase.BorrowingFilter{
		MemberID: r.URL.Query().Get("member_id"),
		Active:   r.URL.Query().Get("active") == "true",
		Overdue:  r.URL.Query().Get("overdue") == "true",
	}

	page, pageSize := pagination(r)
	filter.Limit = pageSize
	filter.Offset = (page - 1) * pageSize

	borrowings, total, err := h.repo.List(r.Context(), filter)
	if err != nil {
		JSONDomainError(w, err)
		return
	}
	JSONSuccess(w, borrowings, listMeta(page, pageSize, total))
}

// Detail serves /borrowings/{id} plus the two POST actions hanging off it,
// /borrowings/{id}/return and /borrowings/{id}/fine.
func (h *BorrowingHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, action, ok := pathParts(r.URL.Path, "/borrowings/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	switch {
	case action == "" && r.Method == http.MethodGet:
		h.get(w, r, id)
	case action == "return" && r.Method == http.MethodPost:
		h.markReturned(w, r, id)
	case action == "fine" && r.Method == http.MethodPost:
		h.calculateFine(w, r, id)
	case action == "":
		w.WriteHeader(http.StatusMethodNotAllowed)
	default:
		http.NotFound(w, r)
	}
}

// @Summary Get borrowing
// @Tags borrowings
// @Produce json
// @Param id path string true "Borrowing ID"
// @Security Bearer
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /borrowings/{id} [get]
func (h *BorrowingHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	borrowing, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		JSONDomainError(w, err)
		return
	}
	JSONSuccess(w, borrowing, nil)
}

// @Summary Return a borrowed book
// @Description Close the borrowing and release its copy. Idempotent.
// @Tags borrowings
// @Produce json
// @Param id path string true "Borrowing ID"
// @Security Bearer
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /borrowings/{id}/return [post]
func (h *BorrowingHandler) markReturned(w http.ResponseWriter, r *http.Request, id string) {
	borrowing, err := h.ledger.ReturnBorrowing(r.Context(), id)
	if err != nil {
		JSONDomainError(w, err)
		return
	}
	JSONSuccess(w, borrowing, nil)
}

// @Summary Calculate overdue fine
// @Description Compute and persist the fine for a still-active borrowing
// @Tags fines
// @Produce json
// @Param id path string true "Borrowing ID"
// @Security Bearer
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /borrowings/{id}/fine [post]
func (h *BorrowingHandler) calculateFine(w http.ResponseWriter, r *http.Request, id string) {
	fine, err := h.calc.CalculateFine(r.Context(), id)
	if err != nil {
		JSONDomainError(w, err)
		return
	}
	JSONSuccess(w, fine, nil)
}
