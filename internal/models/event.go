package models

// SavedArticleEvent is published to Kafka after a successful save or remove.
type SavedArticleEvent struct {
	EventID   string `json:"event_id"`   // Unique event identifier
	UserID    string `json:"user_id"`    // Owner of the saved article
	ArticleID string `json:"article_id"` // Saved article identifier
	URL       string `json:"url"`        // Article URL, empty on remove
	Operation string `json:"operation"`  // "saved" or "removed"
	Timestamp int64  `json:"timestamp"`  // Unix time of the operation
}
