package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/news-aggregator-api/internal/jwt"
	"github.com/stretchr/testify/assert"
)

func TestRemoveArticleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	articleID := uuid.New()

	tests := []struct {
		name         string
		idParam      string
		mockSetup    func(tok *MockSaveTokener, svc *MockArticleRemover)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name:    "success",
			idParam: articleID.String(),
			mockSetup: func(tok *MockSaveTokener, svc *MockArticleRemover) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token123", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "token123").Return(&jwt.Claims{UserID: userID}, nil)
				svc.EXPECT().Remove(gomock.Any(), userID, articleID).Return(nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"message": "Deleted"},
		},
		{
			name:    "missing token",
			idParam: articleID.String(),
			mockSetup: func(tok *MockSaveTokener, svc *MockArticleRemover) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))
			},
			expectedCode: 401,
			expectedBody: map[string]string{"error": "Unauthorized"},
		},
		{
			name:    "invalid article id",
			idParam: "not-a-uuid",
			mockSetup: func(tok *MockSaveTokener, svc *MockArticleRemover) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token123", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "token123").Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "Invalid article id"},
		},
		{
			name:    "internal server error",
			idParam: articleID.String(),
			mockSetup: func(tok *MockSaveTokener, svc *MockArticleRemover) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token123", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "token123").Return(&jwt.Claims{UserID: userID}, nil)
				svc.EXPECT().Remove(gomock.Any(), userID, articleID).Return(errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTok := NewMockSaveTokener(ctrl)
			mockSvc := NewMockArticleRemover(ctrl)
			tt.mockSetup(mockTok, mockSvc)

			handler := NewRemoveArticleHandler(mockSvc, mockTok)

			req := httptest.NewRequest(http.MethodDelete, "/api/saved/"+tt.idParam, nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.idParam)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var got map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}
