package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/storyforge/storyforge-api/internal/config"
	"github.com/storyforge/storyforge-api/internal/handlers/http/middleware"
	v1 "github.com/storyforge/storyforge-api/internal/handlers/http/v1"
	"github.com/storyforge/storyforge-api/internal/llm"
	"github.com/storyforge/storyforge-api/internal/llm/openai"
	characterorch "github.com/storyforge/storyforge-api/internal/orchestrators/character"
	diceorch "github.com/storyforge/storyforge-api/internal/orchestrators/dice"
	"github.com/storyforge/storyforge-api/internal/orchestrators/proposal"
	sessionorch "github.com/storyforge/storyforge-api/internal/orchestrators/session"
	worldorch "github.com/storyforge/storyforge-api/internal/orchestrators/world"
	"github.com/storyforge/storyforge-api/internal/pkg/dice"
	"github.com/storyforge/storyforge-api/internal/pkg/idgen"
	redisclient "github.com/storyforge/storyforge-api/internal/redis"
	characterrepo "github.com/storyforge/storyforge-api/internal/repositories/character"
	sessionrepo "github.com/storyforge/storyforge-api/internal/repositories/session"
	worldrepo "github.com/storyforge/storyforge-api/internal/repositories/world"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the StoryForge API server with all configured services.`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	setupLogging(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping")
		cancel()
	}()

	client, err := redisclient.NewClient(cfg.Redis.Address, &redisclient.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		UseTLS:   cfg.Redis.UseTLS,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slog.Error("Failed to close redis client", "error", err.Error())
		}
	}()

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Address, err)
	}

	provider := buildProvider(cfg)

	handler, err := buildHandler(client, provider)
	if err != nil {
		return err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Graceful shutdown timeout exceeded, forcing close")
			return srv.Close()
		}

		slog.Info("Server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}

// buildProvider returns the openai client when an API key is set,
// the noop provider otherwise. The noop provider keeps the whole API
// functional on deterministic fallbacks.
func buildProvider(cfg *config.Config) llm.Provider {
	if cfg.OpenAI.APIKey == "" {
		slog.Info("No language model API key configured, using deterministic fallbacks")
		return llm.NewNoopProvider()
	}

	client, err := openai.NewClient(&openai.Config{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Model:   cfg.OpenAI.Model,
		Timeout: cfg.OpenAI.Timeout,
	})
	if err != nil {
		slog.Error("Failed to create language model client, using deterministic fallbacks", "error", err.Error())
		return llm.NewNoopProvider()
	}

	slog.Info("Language model provider configured", "model", cfg.OpenAI.Model)
	return client
}

func buildHandler(client redisclient.Client, provider llm.Provider) (*v1.Handler, error) {
	worldRepo, err := worldrepo.NewRedis(&worldrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create world repository: %w", err)
	}
	characterRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create character repository: %w", err)
	}
	sessionRepo, err := sessionrepo.NewRedis(&sessionrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	diceService, err := diceorch.NewOrchestrator(&diceorch.Config{
		CharacterRepo: characterRepo,
		Roller:        dice.New(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dice orchestrator: %w", err)
	}

	worldService, err := worldorch.NewOrchestrator(&worldorch.Config{
		WorldRepo:   worldRepo,
		Provider:    provider,
		IDGenerator: idgen.NewUUID("world"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create world orchestrator: %w", err)
	}

	characterService, err := characterorch.NewOrchestrator(&characterorch.Config{
		CharacterRepo: characterRepo,
		WorldRepo:     worldRepo,
		Provider:      provider,
		IDGenerator:   idgen.NewUUID("char"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create character orchestrator: %w", err)
	}

	sessionService, err := sessionorch.NewOrchestrator(&sessionorch.Config{
		SessionRepo:   sessionRepo,
		WorldRepo:     worldRepo,
		CharacterRepo: characterRepo,
		DiceService:   diceService,
		IDGenerator:   idgen.NewUUID("sess"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session orchestrator: %w", err)
	}

	proposalService, err := proposal.NewOrchestrator(&proposal.Config{
		SessionService: sessionService,
		SessionRepo:    sessionRepo,
		WorldRepo:      worldRepo,
		CharacterRepo:  characterRepo,
		Provider:       provider,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create proposal orchestrator: %w", err)
	}

	return v1.NewHandler(&v1.Config{
		WorldService:     worldService,
		CharacterService: characterService,
		SessionService:   sessionService,
		DiceService:      diceService,
		ProposalService:  proposalService,
	})
}
