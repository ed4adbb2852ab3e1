package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/news-aggregator-api/internal/models"
)

// NewsGetter defines the interface that the news service must implement.
type NewsGetter interface {
	GetEverything(ctx context.Context, query string, page, pageSize int) *models.Envelope
	GetTopHeadlines(ctx context.Context, category string, page, pageSize int) *models.Envelope
	GetCountry(ctx context.Context, isoCode string, page, pageSize int) *models.Envelope
}

// NewAllNewsHandler returns an HTTP handler for free-text article search.
// @Summary Search all news
// @Description Proxies a free-text search to the upstream news provider. The query defaults to "world".
// @Tags news
// @Produce json
// @Param q query string false "Search query"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} models.Envelope "Upstream articles"
// @Failure 500 {object} models.Envelope "Upstream failure"
// @Router /all-news [get]
func NewAllNewsHandler(svc NewsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, pageSize := paginationParams(r)
		query := r.URL.Query().Get("q")

		envelope := svc.GetEverything(r.Context(), query, page, pageSize)
		writeEnvelope(w, envelope)
	}
}

// NewTopHeadlinesHandler returns an HTTP handler for category headlines.
// @Summary Top headlines by category
// @Description Proxies a top-headlines request to the upstream news provider. The category defaults to "general".
// @Tags news
// @Produce json
// @Param category query string false "Headline category"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} models.Envelope "Upstream articles"
// @Failure 500 {object} models.Envelope "Upstream failure"
// @Router /top-headlines [get]
func NewTopHeadlinesHandler(svc NewsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, pageSize := paginationParams(r)
		category := r.URL.Query().Get("category")

		envelope := svc.GetTopHeadlines(r.Context(), category, page, pageSize)
		writeEnvelope(w, envelope)
	}
}

// NewCountryNewsHandler returns an HTTP handler for country headlines.
// @Summary Top headlines by country
// @Description Proxies a country headlines request to the upstream news provider, falling back to a free-text search when the country has no headlines.
// @Tags news
// @Produce json
// @Param iso path string true "ISO country code"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} models.Envelope "Upstream articles"
// @Failure 500 {object} models.Envelope "Upstream failure"
// @Router /country/{iso} [get]
func NewCountryNewsHandler(svc NewsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, pageSize := paginationParams(r)
		iso := chi.URLParam(r, "iso")

		envelope := svc.GetCountry(r.Context(), iso, page, pageSize)
		writeEnvelope(w, envelope)
	}
}

// paginationParams parses page and pageSize; unparsable values fall back to
// the gateway defaults.
func paginationParams(r *http.Request) (page, pageSize int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ = strconv.Atoi(r.URL.Query().Get("pageSize"))
	return page, pageSize
}

// writeEnvelope forwards the upstream status as the HTTP status.
func writeEnvelope(w http.ResponseWriter, envelope *models.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(envelope.Status)
	json.NewEncoder(w).Encode(envelope)
}
