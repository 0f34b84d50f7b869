package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"libraryapi/internal/entity"
	"libraryapi/internal/httpx"
	"libraryapi/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	var gotUserID, gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = httpx.UserIDFrom(r)
		gotRole = httpx.RoleFrom(r)
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(testSecret)(next)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer " + testutil.GenerateTestToken(testSecret, "user-1", entity.RoleMember),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "not a bearer token",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "garbage token",
			authHeader:     "Bearer not.a.jwt",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer " + testutil.GenerateExpiredToken(testSecret, "user-1", entity.RoleMember),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token signed with other secret",
			authHeader:     "Bearer " + testutil.GenerateTestToken("other-secret", "user-1", entity.RoleMember),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUserID, gotRole = "", ""

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.authHeader != "" {
				r.Header.Set("Authorization", tt.authHeader)
			}

			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "user-1", gotUserID)
				assert.Equal(t, "MEMBER", gotRole)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireAdmin(next)

	tests := []struct {
		name           string
		role           entity.Role
		expectedStatus int
	}{
		{"admin passes", entity.RoleAdmin, http.StatusOK},
		{"member forbidden", entity.RoleMember, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/users/register", nil)
			r = authed(r, "user-1", tt.role)

			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRequireAdminWithoutContext(t *testing.T) {
	handler := RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/users/register", nil)

	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
