package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"chatpaat/internal/auth"
	"chatpaat/internal/catalog"
	"chatpaat/internal/config"
	"chatpaat/internal/handler"
	"chatpaat/internal/middleware"
	"chatpaat/internal/repository/postgres"
	serviceAuth "chatpaat/internal/service/auth"
	serviceChat "chatpaat/internal/service/chat"
	serviceLLM "chatpaat/internal/service/llm"
	serviceSearch "chatpaat/internal/service/search"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	var logOut io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, 10)
		if err != nil {
			log.Fatalf("Failed to setup log file: %v", err)
		}
		defer logFile.Close()
		logOut = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Token issuer doubles as the verifier for the auth middleware
	issuer, err := auth.NewIssuer(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	if err != nil {
		log.Fatalf("Failed to create token issuer: %v", err)
	}

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	// Create table names and ensure the schema exists
	tables := postgres.NewTableNames(cfg.TablePrefix)
	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	userRepo := postgres.NewUserRepository(repoConfig)
	chatRepo := postgres.NewChatRepository(repoConfig)
	turnRepo := postgres.NewTurnRepository(repoConfig)
	searchRepo := postgres.NewSearchRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Generation parameter catalog
	registry, err := catalog.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load generation catalog: %v", err)
	}

	// Completion provider
	provider, err := serviceLLM.NewClient(cfg.GroqAPIKey, cfg.GroqBaseURL, logger)
	if err != nil {
		log.Fatalf("Failed to create completion client: %v", err)
	}

	// Create services
	titles := serviceChat.NewTitleGenerator(provider, registry, logger)
	chatService := serviceChat.NewService(chatRepo, turnRepo, provider, titles, registry, txManager, logger)
	authService := serviceAuth.NewService(userRepo, issuer, logger)
	searchService := serviceSearch.NewService(searchRepo, logger)

	// Create handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	chatHandler := handler.NewChatHandler(chatService, logger)
	searchHandler := handler.NewSearchHandler(searchService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("POST /api/register", authHandler.Register)
	mux.HandleFunc("POST /api/login", authHandler.Login)
	mux.HandleFunc("POST /api/token/refresh", authHandler.Refresh)

	// Authenticated routes
	authed := http.NewServeMux()
	authed.HandleFunc("POST /api/prompt", chatHandler.SubmitPrompt)
	authed.HandleFunc("GET /api/chats/today", chatHandler.ListToday)
	authed.HandleFunc("GET /api/chats/yesterday", chatHandler.ListYesterday)
	authed.HandleFunc("GET /api/chats/seven-days", chatHandler.ListLastSevenDays)
	authed.HandleFunc("GET /api/chats/{id}/messages", chatHandler.GetMessages)
	authed.HandleFunc("POST /api/search", searchHandler.RecordQuery)
	mux.Handle("/api/", middleware.Auth(issuer)(authed))

	// Build middleware chain
	var root http.Handler = mux
	root = middleware.Recovery(logger)(root)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	// Create HTTP server
	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     root,
		ReadTimeout: 15 * time.Second,
		// Must exceed the longest provider timeout in the catalog
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
