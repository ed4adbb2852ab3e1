package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/news-aggregator-api/internal/jwt"
	"github.com/sbilibin2017/news-aggregator-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestListSavedHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	articles := []models.ArticleDB{
		{ArticleID: uuid.New(), UserID: userID, Title: "first", URL: "https://example.com/a"},
		{ArticleID: uuid.New(), UserID: userID, Title: "second", URL: "https://example.com/b"},
	}

	tests := []struct {
		name          string
		mockSetup     func(tok *MockSaveTokener, svc *MockArticleLister)
		expectedCode  int
		expectedLen   int
		expectedError string
	}{
		{
			name: "success",
			mockSetup: func(tok *MockSaveTokener, svc *MockArticleLister) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token123", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "token123").Return(&jwt.Claims{UserID: userID}, nil)
				svc.EXPECT().List(gomock.Any(), userID).Return(articles, nil)
			},
			expectedCode: 200,
			expectedLen:  2,
		},
		{
			name: "empty list",
			mockSetup: func(tok *MockSaveTokener, svc *MockArticleLister) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token123", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "token123").Return(&jwt.Claims{UserID: userID}, nil)
				svc.EXPECT().List(gomock.Any(), userID).Return([]models.ArticleDB{}, nil)
			},
			expectedCode: 200,
			expectedLen:  0,
		},
		{
			name: "missing token",
			mockSetup: func(tok *MockSaveTokener, svc *MockArticleLister) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))
			},
			expectedCode:  401,
			expectedError: "Unauthorized",
		},
		{
			name: "internal server error",
			mockSetup: func(tok *MockSaveTokener, svc *MockArticleLister) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token123", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "token123").Return(&jwt.Claims{UserID: userID}, nil)
				svc.EXPECT().List(gomock.Any(), userID).Return(nil, errors.New("database failure"))
			},
			expectedCode:  500,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTok := NewMockSaveTokener(ctrl)
			mockSvc := NewMockArticleLister(ctrl)
			tt.mockSetup(mockTok, mockSvc)

			handler := NewListSavedHandler(mockSvc, mockTok)

			req := httptest.NewRequest(http.MethodGet, "/api/saved", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var got SavedErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, tt.expectedError, got.Error)
				return
			}

			var got []models.ArticleDB
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Len(t, got, tt.expectedLen)
		})
	}
}
