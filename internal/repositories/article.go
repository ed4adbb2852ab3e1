package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/news-aggregator-api/internal/logger"
	"github.com/sbilibin2017/news-aggregator-api/internal/models"
)

// ArticleReadRepository handles saved-article read operations
type ArticleReadRepository struct {
	db *sqlx.DB
}

func NewArticleReadRepository(db *sqlx.DB) *ArticleReadRepository {
	return &ArticleReadRepository{db: db}
}

// GetByUserID returns the user's saved articles in insertion order.
func (r *ArticleReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.ArticleDB, error) {
	const query = `
		SELECT article_id, user_id, position, title, description, img_url,
		       url, source, author, published_at, created_at
		FROM articles
		WHERE user_id = $1
		ORDER BY position
	`

	articles := make([]models.ArticleDB, 0)
	err := r.db.SelectContext(ctx, &articles, query, userID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(articles),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return articles, nil
}

// ExistsByUserIDAndURL reports whether the user already saved the given URL.
func (r *ArticleReadRepository) ExistsByUserIDAndURL(ctx context.Context, userID uuid.UUID, url string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM articles WHERE user_id = $1 AND url = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, url)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, url},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// ArticleWriteRepository handles saved-article write operations
type ArticleWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewArticleWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ArticleWriteRepository {
	return &ArticleWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a saved-article snapshot and returns the stored record.
func (r *ArticleWriteRepository) Save(ctx context.Context, userID uuid.UUID, payload models.ArticlePayload) (*models.ArticleDB, error) {
	query := `
		INSERT INTO articles (article_id, user_id, title, description, img_url,
		                      url, source, author, published_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING article_id, user_id, position, title, description, img_url,
		          url, source, author, published_at, created_at
	`
	args := []any{
		uuid.New(), userID, payload.Title, payload.Description, payload.ImgURL,
		payload.URL, payload.Source, payload.Author, payload.PublishedAt,
	}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var article models.ArticleDB
	err := sqlx.GetContext(ctx, executor, &article, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, payload.URL},
		"result", article.ArticleID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &article, nil
}

// Delete removes the article only when it belongs to the given user and
// returns the number of rows deleted.
func (r *ArticleWriteRepository) Delete(ctx context.Context, articleID, userID uuid.UUID) (int64, error) {
	query := `
		DELETE FROM articles
		WHERE article_id = $1 AND user_id = $2
	`
	args := []any{articleID, userID}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
