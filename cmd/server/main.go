package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/galaxia-edu/galaxia-backend/internal/config"
	"github.com/galaxia-edu/galaxia-backend/internal/database"
	"github.com/galaxia-edu/galaxia-backend/internal/handler"
	"github.com/galaxia-edu/galaxia-backend/internal/llm"
	"github.com/galaxia-edu/galaxia-backend/internal/logger"
	"github.com/galaxia-edu/galaxia-backend/internal/repository"
	"github.com/galaxia-edu/galaxia-backend/internal/router"
	"github.com/galaxia-edu/galaxia-backend/internal/service"
	"github.com/galaxia-edu/galaxia-backend/internal/validator"
	"github.com/galaxia-edu/galaxia-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Galáxia Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize LLM Client ─────────────────────────────────────────
	llmClient, err := llm.NewGroqClient(llm.Options{
		APIKey:  cfg.GroqAPIKey,
		BaseURL: cfg.GroqBaseURL,
		Model:   cfg.GroqModel,
		Timeout: cfg.LLMTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure LLM client")
	}
	log.Info().Str("model", llmClient.ModelID()).Msg("LLM client ready")

	// ─── Initialize Repositories ───────────────────────────────────────
	studentRepo := repository.NewStudentRepository(pool)
	progressRepo := repository.NewProgressRepository(pool)
	reserveRepo := repository.NewReserveQuestionRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb)
	studentService := service.NewStudentService(studentRepo, progressRepo, log)
	quizService := service.NewQuizService(llmClient, reserveRepo, cfg.QuizBatchSize, log)
	exerciseService := service.NewExerciseService(llmClient, log)
	progressService := service.NewProgressService(progressRepo, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:     handler.NewAuthHandler(authService, studentService),
		Quiz:     handler.NewQuizHandler(quizService, rdb, log),
		Exercise: handler.NewExerciseHandler(exerciseService),
		Progress: handler.NewProgressHandler(progressService),
		Admin:    handler.NewAdminHandler(studentService, authService),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	statsWorker := worker.NewAnswerStatsWorker(pool, rdb, log)
	go statsWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the stats worker and wait for the queue to drain.
	workerCancel()
	time.Sleep(2 * time.Second) // Allow the worker to drain.

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
