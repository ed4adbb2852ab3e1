package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/news-aggregator-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: `{"username":"john","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "secret").
					Return("token123", nil)
			},
			expectedCode: 201,
			expectedBody: map[string]string{"token": "token123"},
		},
		{
			name: "empty credentials",
			body: `{"username":"","password":""}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "", "").
					Return("", services.ErrEmptyCredentials)
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "Username and password are required"},
		},
		{
			name: "user already exists",
			body: `{"username":"alice","password":"pass"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "pass").
					Return("", services.ErrUserAlreadyExists)
			},
			expectedCode: 409,
			expectedBody: map[string]string{"error": "Username already exists"},
		},
		{
			name: "internal server error",
			body: `{"username":"bob","password":"pass"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "pass").
					Return("", errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			body:         `{invalid`,
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var got map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}
