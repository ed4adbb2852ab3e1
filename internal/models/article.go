package models

import (
	"time"

	"github.com/google/uuid"
)

// ArticleDB represents a saved article snapshot in the database.
// Fields are copied from the upstream payload at save time and never
// synced with the upstream afterwards.
type ArticleDB struct {
	ArticleID   uuid.UUID `json:"id" db:"article_id"`
	UserID      uuid.UUID `json:"-" db:"user_id"`
	Position    int64     `json:"-" db:"position"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	ImgURL      string    `json:"imgUrl" db:"img_url"`
	URL         string    `json:"url" db:"url"`
	Source      string    `json:"source" db:"source"`
	Author      string    `json:"author" db:"author"`
	PublishedAt string    `json:"publishedAt" db:"published_at"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ArticlePayload is the upstream article snapshot a client submits when
// saving an article.
type ArticlePayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImgURL      string `json:"imgUrl"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	Author      string `json:"author"`
	PublishedAt string `json:"publishedAt"`
}
