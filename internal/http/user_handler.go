package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"libraryapi/internal/auth"
	"libraryapi/internal/entity"
	"libraryapi/internal/httpx"
	"libraryapi/internal/usecase"
)

const accessTokenTTL = 24 * time.Hour

type UserHandler struct {
	repo   usecase.UserRepository
	secret string
}

func NewUserHandler(repo usecase.UserRepository, secret string) *UserHandler {
	return &UserHandler{repo: repo, secret: secret}
}

type registerReq struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,password_strength"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN MEMBER"`
}

// @Summary Register new member
// @Description Create a new user account. Only admins may register users.
// @Tags users
// @Accept json
// @Produce json
// @Param user body registerReq true "User registration data"
// @Security Bearer
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users/register [post]
func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	_, err := h.repo.GetByEmail(r.Context(), req.Email)
	if err == nil {
		JSONError(w, http.StatusConflict, "ALREADY_EXISTS", "Email already exists", nil)
		return
	}
	if !errors.Is(err, usecase.ErrNotFound) {
		JSONDomainError(w, err)
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		JSONDomainError(w, err)
		return
	}

	role := entity.RoleMember
	if req.Role != "" {
		role = entity.Role(req.Role)
	}

	newUser := &entity.User{
		Email:    req.Email,
		Username: req.Username,
		Password: hashedPassword,
		Role:     role,
	}
	if err := h.repo.Create(r.Context(), newUser); err != nil {
		JSONDomainError(w, err)
		return
	}

	JSONSuccessCreated(w, newUser)
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// @Summary Login
// @Description Authenticate with email and password, returns a bearer token
// @Tags users
// @Accept json
// @Produce json
// @Param login body loginReq true "Login credentials"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *UserHandler) LoginUser(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	user, err := h.repo.GetByEmail(r.Context(), req.Email)
	if err != nil || !auth.VerifyPassword(user.Password, req.Password) {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password", nil)
		return
	}

	token, err := auth.GenerateToken(h.secret, user.ID, user.Role, accessTokenTTL)
	if err != nil {
		JSONDomainError(w, err)
		return
	}

	JSONSuccess(w, map[string]any{
		"access_token": token,
		"expires_in":   int(accessTokenTTL.Seconds()),
	}, nil)
}

// @Summary Get current user
// @Tags users
// @Produce json
// @Security Bearer
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Router /me [get]
func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	user, err := h.repo.GetByID(r.Context(), userID)
	if err != nil {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	JSONSuccess(w, user, nil)
}

// @Summary List roles
// @Tags users
// @Produce json
// @Security Bearer
// @Success 200 {object} SuccessResponse
// @Router /roles [get]
func (h *UserHandler) ListRoles(w http.ResponseWriter, r *http.Request) {
	JSONSuccess(w, entity.Roles, nil)
}
