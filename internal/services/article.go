package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/news-aggregator-api/internal/logger"
	"github.com/sbilibin2017/news-aggregator-api/internal/models"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrEmptyURL            = errors.New("article url is required")
	ErrArticleAlreadySaved = errors.New("article already saved")
)

const pgUniqueViolation = "23505"

// ArticleReader defines read operations for saved articles.
type ArticleReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.ArticleDB, error)        // Returns a user's saved articles in insertion order
	ExistsByUserIDAndURL(ctx context.Context, userID uuid.UUID, url string) (bool, error) // Reports whether the user already saved the URL
}

// ArticleWriter defines write operations for saved articles.
type ArticleWriter interface {
	Save(ctx context.Context, userID uuid.UUID, payload models.ArticlePayload) (*models.ArticleDB, error) // Inserts a saved-article snapshot
	Delete(ctx context.Context, articleID, userID uuid.UUID) (int64, error)                               // Deletes the article scoped to its owner
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ArticleService handles saved-article operations and Kafka publishing.
type ArticleService struct {
	reader      ArticleReader
	writer      ArticleWriter
	kafkaWriter KafkaWriter
}

// NewArticleService creates a new ArticleService.
func NewArticleService(reader ArticleReader, writer ArticleWriter, kafkaWriter KafkaWriter) *ArticleService {
	return &ArticleService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a saved-article event to Kafka.
func (s *ArticleService) publishEvent(ctx context.Context, event models.SavedArticleEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "operation", event.Operation)
	}
}

// Save stores an article snapshot for the user. Uniqueness of the URL is
// per user: the same URL saved by two users creates two independent records.
func (s *ArticleService) Save(ctx context.Context, userID uuid.UUID, payload models.ArticlePayload) (*models.ArticleDB, error) {
	if payload.URL == "" {
		return nil, ErrEmptyURL
	}

	exists, err := s.reader.ExistsByUserIDAndURL(ctx, userID, payload.URL)
	if err != nil {
		logger.Log.Errorw("failed to check saved url", "userID", userID, "url", payload.URL, "error", err)
		return nil, err
	}
	if exists {
		logger.Log.Errorw("article already saved", "userID", userID, "url", payload.URL)
		return nil, ErrArticleAlreadySaved
	}

	article, err := s.writer.Save(ctx, userID, payload)
	if err != nil {
		// Concurrent saves of the same URL race past the check above; the
		// store-level unique constraint catches the loser.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			logger.Log.Errorw("article already saved", "userID", userID, "url", payload.URL)
			return nil, ErrArticleAlreadySaved
		}
		logger.Log.Errorw("failed to save article", "userID", userID, "url", payload.URL, "error", err)
		return nil, err
	}

	event := models.SavedArticleEvent{
		EventID:   uuid.NewString(),
		UserID:    userID.String(),
		ArticleID: article.ArticleID.String(),
		URL:       article.URL,
		Operation: "saved",
		Timestamp: time.Now().Unix(),
	}
	s.publishEvent(ctx, event)

	return article, nil
}

// List returns the user's saved articles in insertion order.
func (s *ArticleService) List(ctx context.Context, userID uuid.UUID) ([]models.ArticleDB, error) {
	articles, err := s.reader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list saved articles", "userID", userID, "error", err)
		return nil, err
	}
	return articles, nil
}

// Remove deletes the user's saved article. Deletion is scoped to the owner,
// so an id outside the user's list is a silent no-op.
func (s *ArticleService) Remove(ctx context.Context, userID, articleID uuid.UUID) error {
	rowsAffected, err := s.writer.Delete(ctx, articleID, userID)
	if err != nil {
		logger.Log.Errorw("failed to remove article", "userID", userID, "articleID", articleID, "error", err)
		return err
	}
	if rowsAffected == 0 {
		logger.Log.Infow("article not in user's list, nothing removed", "userID", userID, "articleID", articleID)
		return nil
	}

	event := models.SavedArticleEvent{
		EventID:   uuid.NewString(),
		UserID:    userID.String(),
		ArticleID: articleID.String(),
		Operation: "removed",
		Timestamp: time.Now().Unix(),
	}
	s.publishEvent(ctx, event)

	return nil
}
