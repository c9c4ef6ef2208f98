package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	httpadapter "fiefforge/internal/adapter/http"
	gormrepo "fiefforge/internal/adapter/repo/gorm"
	"fiefforge/internal/config"
	"fiefforge/internal/domain/fief"
	"fiefforge/internal/wire"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := buildLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	if cfg.DBDSN == "" {
		log.Fatal("FIEFFORGE_DB_DSN is required")
	}
	db, err := gormrepo.OpenPostgres(cfg.DBDSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if cfg.MigrationsDir != "" {
		if err := gormrepo.ApplyMigrations(context.Background(), db, cfg.MigrationsDir); err != nil {
			log.Fatalf("apply migrations: %v", err)
		}
	}

	seed := cfg.RandSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	application := wire.Build(wire.GormRepos(db), fief.NewDice(seed), logger)

	h := httpadapter.Handler{
		Engine:       application.Engine,
		Town:         application.Town,
		Stats:        application.Stats,
		Achievements: application.Tracker,
		KPI:          application.Metrics,
		AdminToken:   cfg.AdminToken,
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	logger.Info("fiefforge server listening", "addr", cfg.Addr)
	s.Spin()
}

func buildLogger(level string) *slog.Logger {
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
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
