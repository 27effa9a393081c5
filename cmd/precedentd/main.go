package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lexbr/precedentes/internal/auth"
	"github.com/lexbr/precedentes/internal/cache"
	"github.com/lexbr/precedentes/internal/config"
	"github.com/lexbr/precedentes/internal/llm"
	"github.com/lexbr/precedentes/internal/normalizer"
	"github.com/lexbr/precedentes/internal/repository"
	"github.com/lexbr/precedentes/internal/repository/jsonfile"
	"github.com/lexbr/precedentes/internal/repository/postgres"
	"github.com/lexbr/precedentes/internal/reranker"
	"github.com/lexbr/precedentes/internal/scoring"
	"github.com/lexbr/precedentes/internal/server"
	"github.com/lexbr/precedentes/internal/service"
	"github.com/lexbr/precedentes/internal/thesaurus"
)

func main() {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("failed to run server", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("starting precedent search service",
		"http_port", cfg.HTTPPort,
		"environment", cfg.Environment,
		"corpus_source", cfg.CorpusSource,
	)

	// Corpus loader
	var corpus repository.CorpusLoader
	switch cfg.CorpusSource {
	case "jsonfile":
		corpus = jsonfile.New(cfg.CorpusFilePath)
		slog.Info("using JSON corpus file", "path", cfg.CorpusFilePath)
	default:
		db, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		corpus = postgres.NewPrecedentRepo(db)
		slog.Info("connected to PostgreSQL")
	}

	// Result cache
	var resultCache cache.Cache
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedis(cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			return fmt.Errorf("failed to create redis cache: %w", err)
		}
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			return fmt.Errorf("failed to ping redis: %w", err)
		}
		resultCache = redisCache
		slog.Info("connected to redis cache")
	} else {
		resultCache = cache.NewMemory(cfg.CacheTTL)
		slog.Info("using in-memory cache", "ttl", cfg.CacheTTL)
	}

	// Text processing and scoring
	norm := normalizer.New()
	thes := thesaurus.New(norm)
	scorer := scoring.New(norm, thes)

	// Reranking LLM (optional)
	var rerank reranker.Reranker = reranker.Noop{}
	switch cfg.LLMProvider {
	case "ollama":
		client := llm.NewOllamaClient(
			llm.WithBaseURL(cfg.OllamaURL),
			llm.WithOllamaModel(cfg.OllamaLLMModel),
		)
		rerank = reranker.NewLLMReranker(client)
		slog.Info("reranking enabled", "provider", "ollama", "model", cfg.OllamaLLMModel)
	case "gemini":
		client, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return fmt.Errorf("failed to create gemini client: %w", err)
		}
		defer client.Close()
		rerank = reranker.NewLLMReranker(client)
		slog.Info("reranking enabled", "provider", "gemini", "model", cfg.GeminiModel)
	default:
		slog.Info("reranking disabled")
	}

	searchSvc := service.NewSearchService(corpus, scorer,
		service.WithCache(resultCache),
		service.WithReranker(rerank),
		service.WithLogger(slog.Default()),
	)

	// HTTP server
	serverCfg := server.HTTPServerConfig{
		Port:   cfg.HTTPPort,
		APIKey: cfg.APIKey,
		Logger: slog.Default(),
	}
	if cfg.JWTSecret != "" {
		jwtCfg := auth.DefaultJWTConfig(cfg.JWTSecret)
		jwtCfg.Expiry = cfg.JWTExpiry
		serverCfg.JWT = auth.NewJWTManager(jwtCfg)
	}
	httpServer := server.NewHTTPServer(searchSvc, serverCfg)

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		slog.Info("received shutdown signal", "signal", sig)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown HTTP server", "error", err)
	}

	slog.Info("server stopped")
	return nil
}
