package models

import "encoding/json"

// Envelope is the uniform wrapper returned by every news proxy endpoint.
// Upstream failures are translated into a success:false envelope, never
// propagated as errors past the gateway.
type Envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    *NewsData       `json:"data,omitempty"`
	Error   json.RawMessage `json:"error,omitempty"`
}

// NewsData mirrors the upstream news provider response body.
type NewsData struct {
	Status       string        `json:"status"`
	TotalResults int           `json:"totalResults"`
	Articles     []NewsArticle `json:"articles"`
}

// NewsArticle is a single article as shaped by the upstream provider.
type NewsArticle struct {
	Source      NewsSource `json:"source"`
	Author      string     `json:"author"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	URLToImage  string     `json:"urlToImage"`
	PublishedAt string     `json:"publishedAt"`
	Content     string     `json:"content"`
}

// NewsSource identifies the outlet an upstream article came from.
type NewsSource struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
}
