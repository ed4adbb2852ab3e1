package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/news-aggregator-api/internal/logger"
)

// ArticleRemover defines the interface that the service must implement.
type ArticleRemover interface {
	Remove(ctx context.Context, userID, articleID uuid.UUID) error
}

// RemoveResponse represents a successful removal response
// swagger:model RemoveResponse
type RemoveResponse struct {
	// Success message
	// default: Deleted
	Message string `json:"message"`
}

// RemoveErrorResponse represents an error response when removing an article
// swagger:model RemoveErrorResponse
type RemoveErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewRemoveArticleHandler returns an HTTP handler for removing a saved article.
// @Summary Remove a saved article
// @Description Deletes the authenticated user's saved article. An id outside the caller's list is a no-op.
// @Tags saved
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} handlers.RemoveResponse "Article removed"
// @Failure 400 {object} handlers.RemoveErrorResponse "Invalid article id"
// @Failure 401 {object} handlers.RemoveErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.RemoveErrorResponse "Internal server error"
// @Router /api/saved/{id} [delete]
// @Security BearerAuth
func NewRemoveArticleHandler(svc ArticleRemover, tokenGetter SaveTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := claimsFromRequest(ctx, r, tokenGetter)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RemoveErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		articleID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RemoveErrorResponse{
				Error: "Invalid article id",
			})
			return
		}

		if err := svc.Remove(ctx, claims.UserID, articleID); err != nil {
			logger.Log.Errorw("failed to remove article", "userID", claims.UserID, "articleID", articleID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RemoveErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RemoveResponse{
			Message: "Deleted",
		})
	}
}
