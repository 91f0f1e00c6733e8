// Command init-schema applies the embedded catalog DDL to the configured
// database. The DDL is idempotent, so re-running against an initialized
// database is a no-op.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/yaseigamedb/backend/internal/adapter/postgres"
	"github.com/yaseigamedb/backend/internal/app"
	"github.com/yaseigamedb/backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.ApplySchema(ctx, pool); err != nil {
		logger.Error("apply schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("schema applied")
}
