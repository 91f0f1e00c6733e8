// Package app wires the catalog together: configuration, logger, connection
// pool, repositories, and services. The transport layer (outside this
// module) consumes the assembled services.
package app

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yaseigamedb/backend/internal/adapter/postgres"
	gamerepo "github.com/yaseigamedb/backend/internal/adapter/postgres/game"
	ratingrepo "github.com/yaseigamedb/backend/internal/adapter/postgres/rating"
	releaserepo "github.com/yaseigamedb/backend/internal/adapter/postgres/release"
	revisionrepo "github.com/yaseigamedb/backend/internal/adapter/postgres/revision"
	"github.com/yaseigamedb/backend/internal/config"
	"github.com/yaseigamedb/backend/internal/service/catalog"
	"github.com/yaseigamedb/backend/internal/service/rating"
)

// App holds the assembled application.
type App struct {
	Log     *slog.Logger
	Pool    *pgxpool.Pool
	Catalog *catalog.Service
	Rating  *rating.Service
}

// New connects to the database and constructs all repositories and services.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	txm := postgres.NewTxManager(pool)
	games := gamerepo.New(pool)
	releases := releaserepo.New(pool)
	revisions := revisionrepo.New(pool)
	ratings := ratingrepo.New(pool)

	return &App{
		Log:     logger,
		Pool:    pool,
		Catalog: catalog.NewService(logger, games, releases, revisions, txm, cfg.Rating),
		Rating:  rating.NewService(logger, ratings, games, txm, cfg.Rating),
	}, nil
}

// Close releases the connection pool.
func (a *App) Close() {
	a.Pool.Close()
}
