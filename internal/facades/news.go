package facades

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sbilibin2017/news-aggregator-api/internal/logger"
	"github.com/sbilibin2017/news-aggregator-api/internal/models"
)

const (
	defaultQuery    = "world"
	defaultCategory = "general"
	defaultPage     = 1
	defaultPageSize = 80
)

// NewsAPIFacade queries the upstream news provider over HTTP and translates
// every outcome into an envelope. Upstream failures never surface as errors.
type NewsAPIFacade struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewNewsAPIFacade creates a new facade with an HTTP client.
func NewNewsAPIFacade(client *http.Client, baseURL, apiKey string) *NewsAPIFacade {
	if client == nil {
		client = http.DefaultClient
	}
	return &NewsAPIFacade{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// FetchEverything searches all upstream articles for the given query.
func (f *NewsAPIFacade) FetchEverything(ctx context.Context, query string, page, pageSize int) *models.Envelope {
	if query == "" {
		query = defaultQuery
	}

	params := f.baseParams(page, pageSize)
	params.Set("q", query)

	return f.fetch(ctx, f.baseURL+"/everything?"+params.Encode())
}

// FetchTopHeadlines fetches top headlines for the given category.
func (f *NewsAPIFacade) FetchTopHeadlines(ctx context.Context, category string, page, pageSize int) *models.Envelope {
	if category == "" {
		category = defaultCategory
	}

	params := f.baseParams(page, pageSize)
	params.Set("category", category)
	params.Set("language", "en")

	return f.fetch(ctx, f.baseURL+"/top-headlines?"+params.Encode())
}

// FetchCountry fetches top headlines for the given ISO country code.
func (f *NewsAPIFacade) FetchCountry(ctx context.Context, isoCode string, page, pageSize int) *models.Envelope {
	params := f.baseParams(page, pageSize)
	params.Set("country", strings.ToLower(isoCode))

	return f.fetch(ctx, f.baseURL+"/top-headlines?"+params.Encode())
}

func (f *NewsAPIFacade) baseParams(page, pageSize int) url.Values {
	if page <= 0 {
		page = defaultPage
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("apiKey", f.apiKey)
	return params
}

// fetch performs the upstream request and normalizes the response.
func (f *NewsAPIFacade) fetch(ctx context.Context, rawURL string) *models.Envelope {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		logger.Log.Errorw("failed to build upstream request", "error", err)
		return failureEnvelope(http.StatusInternalServerError, err.Error())
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("upstream request failed", "error", err)
		return failureEnvelope(http.StatusInternalServerError, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Log.Errorw("failed to read upstream response", "error", err)
		return failureEnvelope(http.StatusInternalServerError, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Log.Errorw("upstream returned non-2xx status",
			"status", resp.StatusCode, "body", string(body))
		envelope := failureEnvelope(resp.StatusCode, string(body))
		if json.Valid(body) {
			envelope.Error = json.RawMessage(body)
		}
		return envelope
	}

	var data models.NewsData
	if err := json.Unmarshal(body, &data); err != nil {
		logger.Log.Errorw("failed to decode upstream response", "error", err)
		return failureEnvelope(http.StatusInternalServerError, err.Error())
	}

	return &models.Envelope{
		Status:  http.StatusOK,
		Success: true,
		Message: "Successfully fetched the data",
		Data:    &data,
	}
}

func failureEnvelope(status int, detail string) *models.Envelope {
	errDetail, _ := json.Marshal(detail)
	return &models.Envelope{
		Status:  status,
		Success: false,
		Message: "Failed to fetch data from the API",
		Error:   errDetail,
	}
}
