package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/news-aggregator-api/internal/logger"
	"github.com/sbilibin2017/news-aggregator-api/internal/models"
)

// ArticleLister defines the interface that the service must implement.
type ArticleLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.ArticleDB, error)
}

// SavedErrorResponse represents an error response when listing saved articles
// swagger:model SavedErrorResponse
type SavedErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewListSavedHandler returns an HTTP handler for listing saved articles.
// @Summary List saved articles
// @Description Returns the authenticated user's saved articles in the order they were saved.
// @Tags saved
// @Produce json
// @Success 200 {array} models.ArticleDB "Saved articles"
// @Failure 401 {object} handlers.SavedErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.SavedErrorResponse "Internal server error"
// @Router /api/saved [get]
// @Security BearerAuth
func NewListSavedHandler(svc ArticleLister, tokenGetter SaveTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := claimsFromRequest(ctx, r, tokenGetter)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SavedErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		articles, err := svc.List(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list saved articles", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SavedErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(articles)
	}
}
