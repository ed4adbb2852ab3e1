package services

import (
	"context"

	"github.com/sbilibin2017/news-aggregator-api/internal/logger"
	"github.com/sbilibin2017/news-aggregator-api/internal/models"
)

// NewsFetcher retrieves news envelopes from the upstream provider.
type NewsFetcher interface {
	FetchEverything(ctx context.Context, query string, page, pageSize int) *models.Envelope      // Free-text search across all articles
	FetchTopHeadlines(ctx context.Context, category string, page, pageSize int) *models.Envelope // Top headlines by category
	FetchCountry(ctx context.Context, isoCode string, page, pageSize int) *models.Envelope       // Top headlines by country
}

// NewsCacheReader caches news envelopes.
type NewsCacheReader interface {
	GetEnvelope(ctx context.Context, kind, query string, page, pageSize int) (*models.Envelope, error)        // Returns a cached envelope
	SetEnvelope(ctx context.Context, kind, query string, page, pageSize int, envelope *models.Envelope) error // Caches an envelope
}

// NewsService serves news queries, caching successful upstream responses.
type NewsService struct {
	fetcher NewsFetcher
	cache   NewsCacheReader
}

// NewNewsService creates a new NewsService.
func NewNewsService(fetcher NewsFetcher, cache NewsCacheReader) *NewsService {
	return &NewsService{
		fetcher: fetcher,
		cache:   cache,
	}
}

// GetEverything returns search results for the query.
func (s *NewsService) GetEverything(ctx context.Context, query string, page, pageSize int) *models.Envelope {
	if envelope := s.fromCache(ctx, "everything", query, page, pageSize); envelope != nil {
		return envelope
	}

	envelope := s.fetcher.FetchEverything(ctx, query, page, pageSize)
	s.toCache(ctx, "everything", query, page, pageSize, envelope)
	return envelope
}

// GetTopHeadlines returns top headlines for the category.
func (s *NewsService) GetTopHeadlines(ctx context.Context, category string, page, pageSize int) *models.Envelope {
	if envelope := s.fromCache(ctx, "top-headlines", category, page, pageSize); envelope != nil {
		return envelope
	}

	envelope := s.fetcher.FetchTopHeadlines(ctx, category, page, pageSize)
	s.toCache(ctx, "top-headlines", category, page, pageSize, envelope)
	return envelope
}

// GetCountry returns top headlines for the country. A successful upstream
// result with zero articles falls back to a free-text search for the ISO
// code, so a country page is never empty when a search would surface
// something.
func (s *NewsService) GetCountry(ctx context.Context, isoCode string, page, pageSize int) *models.Envelope {
	if envelope := s.fromCache(ctx, "country", isoCode, page, pageSize); envelope != nil {
		return envelope
	}

	envelope := s.fetcher.FetchCountry(ctx, isoCode, page, pageSize)
	if envelope.Success && (envelope.Data == nil || len(envelope.Data.Articles) == 0) {
		logger.Log.Infow("no top headlines for country, falling back to search", "iso", isoCode)
		envelope = s.fetcher.FetchEverything(ctx, isoCode, page, pageSize)
	}

	s.toCache(ctx, "country", isoCode, page, pageSize, envelope)
	return envelope
}

// fromCache returns a cached envelope or nil. Cache failures only log.
func (s *NewsService) fromCache(ctx context.Context, kind, query string, page, pageSize int) *models.Envelope {
	if s.cache == nil {
		return nil
	}

	envelope, err := s.cache.GetEnvelope(ctx, kind, query, page, pageSize)
	if err != nil {
		return nil
	}
	return envelope
}

// toCache stores a successful envelope. Cache failures only log.
func (s *NewsService) toCache(ctx context.Context, kind, query string, page, pageSize int, envelope *models.Envelope) {
	if s.cache == nil || envelope == nil || !envelope.Success {
		return
	}

	if err := s.cache.SetEnvelope(ctx, kind, query, page, pageSize, envelope); err != nil {
		logger.Log.Errorw("failed to cache news envelope", "kind", kind, "query", query, "error", err)
	}
}
