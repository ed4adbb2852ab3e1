package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/news-aggregator-api/internal/config"
	"github.com/sbilibin2017/news-aggregator-api/internal/facades"
	"github.com/sbilibin2017/news-aggregator-api/internal/handlers"
	"github.com/sbilibin2017/news-aggregator-api/internal/jwt"
	"github.com/sbilibin2017/news-aggregator-api/internal/logger"
	"github.com/sbilibin2017/news-aggregator-api/internal/middlewares"
	"github.com/sbilibin2017/news-aggregator-api/internal/repositories"
	"github.com/sbilibin2017/news-aggregator-api/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title news-aggregator-api
// @version 1.0.0
// @description Service for browsing upstream news and managing a personal reading list
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for saved-article events, optional
	var kafkaWriter services.KafkaWriter
	if cfg.KafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(cfg.KafkaBrokers, ",")...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize JWT service
	jwtSvc := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	articleReadRepo := repositories.NewArticleReadRepository(db)
	articleWriteRepo := repositories.NewArticleWriteRepository(db, middlewares.GetTxFromContext)
	newsCacheRepo := repositories.NewNewsCacheRepository(rdb, time.Duration(cfg.NewsCacheExpSec)*time.Second)

	// Initialize upstream facade
	newsFacade := facades.NewNewsAPIFacade(
		&http.Client{Timeout: time.Duration(cfg.NewsTimeoutSecond) * time.Second},
		cfg.NewsAPIBaseURL,
		cfg.NewsAPIKey,
	)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	articleService := services.NewArticleService(articleReadRepo, articleWriteRepo, kafkaWriter)
	newsService := services.NewNewsService(newsFacade, newsCacheRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	allNewsHandler := handlers.NewAllNewsHandler(newsService)
	topHeadlinesHandler := handlers.NewTopHeadlinesHandler(newsService)
	countryNewsHandler := handlers.NewCountryNewsHandler(newsService)
	saveHandler := handlers.NewSaveArticleHandler(articleService, jwtSvc)
	listSavedHandler := handlers.NewListSavedHandler(articleService, jwtSvc)
	removeHandler := handlers.NewRemoveArticleHandler(articleService, jwtSvc)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Get("/", healthHandler)
	r.Get("/all-news", allNewsHandler)
	r.Get("/top-headlines", topHeadlinesHandler)
	r.Get("/country/{iso}", countryNewsHandler)
	r.Post("/api/auth/register", registerHandler)
	r.Post("/api/auth/login", loginHandler)

	// Protected routes with JWT and transaction middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtSvc))
		r.Use(middlewares.TxMiddleware(db))
		r.Post("/api/save", saveHandler)
		r.Get("/api/saved", listSavedHandler)
		r.Delete("/api/saved/{id}", removeHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
