package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/news-aggregator-api/internal/jwt"
	"github.com/sbilibin2017/news-aggregator-api/internal/logger"
	"github.com/sbilibin2017/news-aggregator-api/internal/models"
	"github.com/sbilibin2017/news-aggregator-api/internal/services"
)

// SaveTokener defines only the token methods needed by this handler.
type SaveTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ArticleSaver defines the interface that the service must implement.
type ArticleSaver interface {
	Save(ctx context.Context, userID uuid.UUID, payload models.ArticlePayload) (*models.ArticleDB, error)
}

// SaveErrorResponse represents an error response when saving an article
// swagger:model SaveErrorResponse
type SaveErrorResponse struct {
	// Error message
	// default: Already saved
	Error string `json:"error"`
}

// NewSaveArticleHandler returns an HTTP handler for saving an article.
// @Summary Save an article
// @Description Stores an article snapshot for the authenticated user. The URL must not already be saved by this user.
// @Tags saved
// @Accept json
// @Produce json
// @Param article body models.ArticlePayload true "Article snapshot to save"
// @Success 201 {object} models.ArticleDB "Saved article"
// @Failure 400 {object} handlers.SaveErrorResponse "Missing url / invalid request"
// @Failure 401 {object} handlers.SaveErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.SaveErrorResponse "Already saved"
// @Router /api/save [post]
// @Security BearerAuth
func NewSaveArticleHandler(svc ArticleSaver, tokenGetter SaveTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := claimsFromRequest(ctx, r, tokenGetter)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SaveErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var payload models.ArticlePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SaveErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		article, err := svc.Save(ctx, claims.UserID, payload)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyURL):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SaveErrorResponse{
					Error: "Article url is required",
				})
			case errors.Is(err, services.ErrArticleAlreadySaved):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(SaveErrorResponse{
					Error: "Already saved",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SaveErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(article)
	}
}

// claimsFromRequest extracts and validates the caller's token claims.
func claimsFromRequest(ctx context.Context, r *http.Request, tokenGetter SaveTokener) (*jwt.Claims, error) {
	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Error("unauthorized request: missing or invalid token")
		return nil, err
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to parse token claims", "error", err)
		return nil, err
	}

	return claims, nil
}
