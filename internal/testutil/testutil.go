package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"libraryapi/internal/auth"
	"libraryapi/internal/entity"

	"github.com/golang-jwt/jwt/v5"
)

// TestMember is a mock member for testing
var TestMember = entity.User{
	ID:        "test-member-id-123",
	Username:  "testmember",
	Email:     "member@example.com",
	Password:  "hashedpassword",
	Role:      entity.RoleMember,
	CreatedAt: time.Now(),
	UpdatedAt: time.Now(),
}

// TestAdmin is a mock admin for testing
var TestAdmin = entity.User{
	ID:        "test-admin-id-456",
	Username:  "adminuser",
	Email:     "admin@example.com",
	Password:  "hashedpassword",
	Role:      entity.RoleAdmin,
	CreatedAt: time.Now(),
	UpdatedAt: time.Now(),
}

// TestGenre is a mock genre for testing
var TestGenre = entity.Genre{
	ID:          "test-genre-id-001",
	Name:        "Fiction",
	Description: "Narrative literature",
	CreatedAt:   time.Now(),
}

// TestBook is a mock book for testing
var TestBook = entity.Book{
	ID:             "test-book-id-789",
	ISBN:           "978-0-123456-78-9",
	Title:          "Test Book Title",
	Author:         "Test Author",
	Publisher:      "Test Publisher",
	Description:    "A test book description",
	Genres:         []entity.Genre{TestGenre},
	TotalCopies:    3,
	BorrowedCopies: 1,
	CreatedAt:      time.Now(),
	UpdatedAt:      time.Now(),
}

// TestBorrowing returns a fresh active borrowing of TestBook by TestMember,
// due in seven days.
func TestBorrowing() entity.Borrowing {
	memberID := TestMember.ID
	bookID := TestBook.ID
	return entity.Borrowing{
		ID:         "test-borrowing-id-001",
		MemberID:   &memberID,
		BookID:     &bookID,
		BorrowedAt: time.Now(),
		DueDate:    time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour),
	}
}

// TestReturnedBorrowing returns a borrowing that was already closed.
func TestReturnedBorrowing() entity.Borrowing {
	b := TestBorrowing()
	returnedAt := time.Now()
	b.Returned = true
	b.ReturnedAt = &returnedAt
	return b
}

// TestFine is a mock unpaid fine for testing
var TestFine = entity.Fine{
	ID:          "test-fine-id-001",
	BorrowingID: "test-borrowing-id-001",
	FineAmount:  30,
	Paid:        false,
	CreatedAt:   time.Now(),
}

// GenerateTestToken generates a JWT token for testing
func GenerateTestToken(secret, userID string, role entity.Role) string {
	token, _ := auth.GenerateToken(secret, userID, role, time.Hour)
	return token
}

// GenerateExpiredToken generates an expired JWT token for testing
func GenerateExpiredToken(secret, userID string, role entity.Role) string {
	c := auth.Claims{
		Sub:  userID,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	token, _ := t.SignedString([]byte(secret))
	return token
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// NewRequestWithAuth creates a new HTTP request with JWT auth for testing
func NewRequestWithAuth(method, path string, body interface{}, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
