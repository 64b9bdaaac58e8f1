package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/rosterhq/roster/internal/config"
	"github.com/rosterhq/roster/internal/handler"
	"github.com/rosterhq/roster/internal/metrics"
	"github.com/rosterhq/roster/internal/repository"
	"github.com/rosterhq/roster/internal/server"
	"github.com/rosterhq/roster/internal/service"
)

func main() {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)
	slog.SetDefault(logger)

	recorder := metrics.NewInMemory()
	repo := repository.NewUserRepository()
	users := service.NewUserService(repo, recorder)

	router := handler.NewRouter(
		handler.New(),
		handler.NewUserHandler(users, logger, recorder),
		handler.NewHealthHandler(repo),
		handler.NewMetricsHandler(recorder),
		cfg,
		logger,
	)

	srv := server.New(router, cfg.AppPort, cfg.ReadTimeout, cfg.WriteTimeout, cfg.ShutdownTimeout, logger)

	logger.Info("starting roster API",
		"env", cfg.AppEnv,
		"port", cfg.AppPort,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func initLogger(cfg *config.Config) *slog.Logger {
	level := parseLogLevel(cfg.LogLevel)
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if strings.EqualFold(cfg.LogFormat, "text") {
		h = slog.NewTextHandler(os.Stdout, opts)
	} else {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(h).With("service", "roster")
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
