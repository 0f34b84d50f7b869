package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"libraryapi/internal/entity"
	"libraryapi/internal/store/mocks"
	"libraryapi/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

var testGenre = entity.Genre{
	ID:          "test-genre-id-001",
	Name:        "Fiction",
	Description: "Narrative literature",
	CreatedAt:   time.Now(),
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return bytes.NewReader(b)
}

func TestGenreHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockGenreRepository(ctrl)
	handler := NewGenreHandler(mockRepo)

	tests := []struct {
		name           string
		setupMock      func()
		expectedStatus int
	}{
		{
			name: "success - with genres",
			setupMock: func() {
				mockRepo.EXPECT().
					List(gomock.Any()).
					Return([]entity.Genre{testGenre}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "server error",
			setupMock: func() {
				mockRepo.EXPECT().
					List(gomock.Any()).
					Return(nil, context.DeadlineExceeded)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/genres", nil)

			handler.List(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestGenreHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockGenreRepository(ctrl)
	handler := NewGenreHandler(mockRepo)

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func()
		expectedStatus int
	}{
		{
			name: "success",
			body: map[string]string{"name": "Mystery", "description": "Whodunits"},
			setupMock: func() {
				mockRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "validation error - missing name",
			body:           map[string]string{"description": "No name"},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "conflict - duplicate name",
			body: map[string]string{"name": "Fiction"},
			setupMock: func() {
				mockRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(usecase.ErrAlreadyExists)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/genres", jsonBody(t, tt.body))

			handler.Create(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestGenreHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockGenreRepository(ctrl)
	handler := NewGenreHandler(mockRepo)

	tests := []struct {
		name           string
		path           string
		setupMock      func()
		expectedStatus int
	}{
		{
			name: "success",
			path: "/genres/" + testGenre.ID,
			setupMock: func() {
				mockRepo.EXPECT().
					GetByID(gomock.Any(), testGenre.ID).
					Return(testGenre, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			path: "/genres/unknown-id",
			setupMock: func() {
				mockRepo.EXPECT().
					GetByID(gomock.Any(), "unknown-id").
					Return(entity.Genre{}, usecase.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing id",
			path:           "/genres/",
			setupMock:      func() {},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tt.path, nil)

			handler.Get(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestGenreHandler_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockGenreRepository(ctrl)
	handler := NewGenreHandler(mockRepo)

	tests := []struct {
		name           string
		path           string
		body           interface{}
		setupMock      func()
		expectedStatus int
	}{
		{
			name: "success",
			path: "/genres/" + testGenre.ID,
			body: map[string]string{"name": "Updated"},
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			path: "/genres/unknown-id",
			body: map[string]string{"name": "Updated"},
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					Return(usecase.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPut, tt.path, jsonBody(t, tt.body))

			handler.Update(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestGenreHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockGenreRepository(ctrl)
	handler := NewGenreHandler(mockRepo)

	tests := []struct {
		name           string
		path           string
		setupMock      func()
		expectedStatus int
	}{
		{
			name: "success",
			path: "/genres/" + testGenre.ID,
			setupMock: func() {
				mockRepo.EXPECT().
					Delete(gomock.Any(), testGenre.ID).
					Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "not found",
			path: "/genres/unknown-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Delete(gomock.Any(), "unknown-id").
					Return(usecase.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodDelete, tt.path, nil)

			handler.Delete(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
