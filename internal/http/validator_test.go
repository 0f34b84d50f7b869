package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateISBN(t *testing.T) {
	type isbnOnly struct {
		ISBN string `validate:"isbn"`
	}

	tests := []struct {
		name  string
		isbn  string
		valid bool
	}{
		{"valid ISBN-13 with hyphens", "978-0-123456-78-9", true},
		{"valid ISBN-13 plain", "9780123456789", true},
		{"valid ISBN-10", "0123456789", true},
		{"valid ISBN-10 with X", "012345678X", true},
		{"too short", "12345", false},
		{"letters", "abcdefghij", false},
		{"twelve digits", "978012345678", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(isbnOnly{ISBN: tt.isbn})
			if tt.valid {
				assert.Empty(t, errs)
			} else {
				assert.NotEmpty(t, errs)
			}
		})
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	type pwOnly struct {
		Password string `validate:"password_strength"`
	}

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"strong", "Str0ngPass!", true},
		{"too short", "S0rt!", false},
		{"no uppercase", "str0ngpass!", false},
		{"no number", "StrongPass!", false},
		{"no special", "Str0ngPass1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(pwOnly{Password: tt.password})
			if tt.valid {
				assert.Empty(t, errs)
			} else {
				assert.NotEmpty(t, errs)
			}
		})
	}
}

func TestValidateStructMessages(t *testing.T) {
	type req struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required"`
	}

	errs := ValidateStruct(req{Email: "not-an-email"})
	assert.Len(t, errs, 2)

	fields := map[string]string{}
	for _, e := range errs {
		fields[e.Field] = e.Message
	}
	assert.Contains(t, fields["email"], "valid email")
	assert.Contains(t, fields["name"], "required")
}

func TestPathParts(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		prefix     string
		wantID     string
		wantAction string
		wantOK     bool
	}{
		{"id only", "/borrowings/abc", "/borrowings/", "abc", "", true},
		{"id and action", "/borrowings/abc/return", "/borrowings/", "abc", "return", true},
		{"empty id", "/borrowings/", "/borrowings/", "", "", false},
		{"empty action", "/borrowings/abc/", "/borrowings/", "", "", false},
		{"too deep", "/borrowings/abc/return/now", "/borrowings/", "", "", false},
		{"wrong prefix", "/fines/abc", "/borrowings/", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, action, ok := pathParts(tt.path, tt.prefix)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantAction, action)
		})
	}
}
