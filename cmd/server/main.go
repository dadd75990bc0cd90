package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/lernquiz/backend/internal/api"
	"github.com/lernquiz/backend/internal/infrastructure/config"
	"github.com/lernquiz/backend/internal/leaderboard"
	"github.com/lernquiz/backend/internal/loader"
	"github.com/lernquiz/backend/internal/service"
	"github.com/lernquiz/backend/internal/simulation"
	"github.com/lernquiz/backend/internal/store"
	"github.com/lernquiz/backend/internal/worker"

	_ "github.com/lernquiz/backend/docs" // generated swagger docs
)

// @title           LernQuiz API
// @version         1.0
// @description     Quiz session backend — deterministic daily question orders, resumable progress, focus review and a shared leaderboard.

// @host      localhost:8080
// @BasePath  /

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if len(os.Args) > 1 && os.Args[1] == "simulate" {
		if err := simulation.SimulateWork(logger); err != nil {
			logger.Error("simulation failed", "error", err)
			os.Exit(1)
		}
		return
	}

	cfg := config.Load()

	// ── Dependencies ────────────────────────────────────────────────
	catalog := loader.NewCatalog(cfg.DataDir)

	players, err := store.NewJSONFileStore(cfg.ProgressDir, logger)
	if err != nil {
		logger.Error("failed to open progress store", "error", err)
		os.Exit(1)
	}

	board := openBoard(cfg, logger)
	if board != nil {
		defer board.Close()
	}

	pool := worker.NewPool(2, 64)
	defer pool.Close()

	scores := service.NewScoreService(board, pool, logger)
	sessions := service.NewSessionService(catalog, players, scores, cfg.RepeatGap, logger)
	handler := api.NewHandler(sessions, catalog, board, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	handler.RegisterRoutes(mux)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}

		// Pending leaderboard pushes finish before the process exits.
		scores.Drain()
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

// openBoard picks the leaderboard backend: a shared Postgres database when
// LEADERBOARD_URL is set, otherwise a local sqlite file. Failures disable
// the leaderboard instead of taking the server down.
func openBoard(cfg *config.Config, logger *slog.Logger) leaderboard.Board {
	if cfg.LeaderboardURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		board, err := leaderboard.NewPostgres(ctx, cfg.LeaderboardURL)
		if err != nil {
			logger.Warn("shared leaderboard unavailable, continuing without it", "error", err)
			return nil
		}
		logger.Info("using shared leaderboard")
		return board
	}

	board, err := leaderboard.NewSQLite(cfg.LeaderboardDB)
	if err != nil {
		logger.Warn("local leaderboard unavailable, continuing without it", "error", err)
		return nil
	}
	return board
}
