// Package cli implements the fiefctl subcommands. Every command talks
// to the application core directly through the wire package rather
// than going over HTTP, so fiefctl works against the same database the
// server uses.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	gormrepo "fiefforge/internal/adapter/repo/gorm"
	"fiefforge/internal/adapter/repo/memory"
	"fiefforge/internal/domain/fief"
	"fiefforge/internal/wire"

	"github.com/spf13/cobra"
)

type globalFlags struct {
	dsn   string
	owner string
	seed  int64
}

func (g *globalFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&g.dsn, "dsn", os.Getenv("FIEFFORGE_DB_DSN"), "postgres DSN (defaults to FIEFFORGE_DB_DSN)")
	cmd.Flags().StringVar(&g.owner, "owner", "", "fiefdom owner id")
	cmd.Flags().Int64Var(&g.seed, "seed", 0, "random seed (0 means time-based)")
	_ = cmd.MarkFlagRequired("owner")
}

// buildApp opens the database named by the flags and wires the
// application on top of it.
func (g *globalFlags) buildApp() (wire.App, error) {
	if g.dsn == "" {
		return wire.App{}, fmt.Errorf("no database configured: pass --dsn or set FIEFFORGE_DB_DSN")
	}
	db, err := gormrepo.OpenPostgres(g.dsn)
	if err != nil {
		return wire.App{}, fmt.Errorf("open postgres: %w", err)
	}
	return wire.Build(wire.GormRepos(db), newDice(g.seed), quietLogger()), nil
}

func newDice(seed int64) fief.Dice {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return fief.NewDice(seed)
}

func newMemoryApp(seed int64) wire.App {
	return wire.Build(wire.MemoryRepos(memory.NewStore()), newDice(seed), quietLogger())
}

// quietLogger keeps the engine's per-tick logging out of CLI output.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}
