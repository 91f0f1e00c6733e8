// Package catalog implements the versioned catalog business logic: every
// create or edit of a game or release runs in one transaction, bumps the
// entity's revision counter by exactly one, and appends exactly one
// diff-only revision entry. Concurrent edits of the same entity serialize on
// the row lock taken before the diff is computed, so a second editor always
// diffs against the first editor's committed state.
package catalog

import (
	"context"
	"log/slog"

	"github.com/yaseigamedb/backend/internal/config"
	"github.com/yaseigamedb/backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type gameRepo interface {
	Create(ctx context.Context, g domain.Game) (*domain.Game, error)
	Get(ctx context.Context, id int64) (*domain.Game, error)
	GetForUpdate(ctx context.Context, id int64) (*domain.Game, error)
	Update(ctx context.Context, id int64, fields domain.FieldMap) (*domain.Game, error)
	ListRanked(ctx context.Context) ([]domain.RankedGame, error)
}

type releaseRepo interface {
	Create(ctx context.Context, rel domain.Release) (*domain.Release, error)
	Get(ctx context.Context, id int64) (*domain.Release, error)
	GetForUpdate(ctx context.Context, id int64) (*domain.Release, error)
	Update(ctx context.Context, id int64, fields domain.FieldMap) (*domain.Release, error)
	ListByGame(ctx context.Context, gameID int64) ([]domain.Release, error)
}

type revisionRepo interface {
	Append(ctx context.Context, e domain.RevisionEntry) error
	ListForEntity(ctx context.Context, kind domain.Kind, entityID int64) ([]domain.RevisionEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the catalog business logic.
type Service struct {
	log       *slog.Logger
	games     gameRepo
	releases  releaseRepo
	revisions revisionRepo
	tx        txManager
	scoring   config.RatingConfig
}

// NewService creates a new catalog service.
func NewService(
	logger *slog.Logger,
	games gameRepo,
	releases releaseRepo,
	revisions revisionRepo,
	tx txManager,
	scoring config.RatingConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "catalog"),
		games:     games,
		releases:  releases,
		revisions: revisions,
		tx:        tx,
		scoring:   scoring,
	}
}
