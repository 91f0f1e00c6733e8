// Package rating implements the rating ledger repository using PostgreSQL.
// Superseded ratings are deactivated, never deleted; the partial unique
// index on (game_id, user_id) WHERE active backs the one-active-rating
// invariant.
package rating

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/yaseigamedb/backend/internal/adapter/postgres"
	"github.com/yaseigamedb/backend/internal/domain"
)

var columns = []string{"id", "game_id", "user_id", "value", "active", "created"}

// Repo provides rating persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new rating repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Deactivate retires the currently-active rating of (game, user), if any.
// Zero affected rows is not an error — first-time raters have nothing to
// supersede.
func (r *Repo) Deactivate(ctx context.Context, gameID int64, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Update("ratings").
		Set("active", false).
		Where(squirrel.Eq{"game_id": gameID, "user_id": userID, "active": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build deactivate rating: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "rating", gameID)
	}
	return nil
}

// Insert persists a new active rating and returns it.
func (r *Repo) Insert(ctx context.Context, rating domain.Rating) (*domain.Rating, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Insert("ratings").
		Columns("game_id", "user_id", "value", "active").
		Values(rating.GameID, rating.UserID, rating.Value, true).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert rating: %w", err)
	}

	var inserted domain.Rating
	err = q.QueryRow(ctx, sql, args...).Scan(
		&inserted.ID, &inserted.GameID, &inserted.UserID, &inserted.Value,
		&inserted.Active, &inserted.Created,
	)
	if err != nil {
		return nil, postgres.MapError(err, "rating", rating.GameID)
	}
	return &inserted, nil
}

// ActiveStats returns the count and average value of the active ratings for
// one game. A game with no active ratings yields (0, 0).
func (r *Repo) ActiveStats(ctx context.Context, gameID int64) (int, float64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select("COUNT(*)", "COALESCE(AVG(value), 0)").
		From("ratings").
		Where(squirrel.Eq{"game_id": gameID, "active": true}).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("build rating stats: %w", err)
	}

	var n int
	var avg float64
	if err := q.QueryRow(ctx, sql, args...).Scan(&n, &avg); err != nil {
		return 0, 0, postgres.MapError(err, "rating", gameID)
	}
	return n, avg, nil
}
