// Package release implements the release repository using PostgreSQL.
package release

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/yaseigamedb/backend/internal/adapter/postgres"
	"github.com/yaseigamedb/backend/internal/domain"
)

var columns = []string{
	"id", "game_id", "title", "platform", "version", "release_date", "links",
	"notes", "revision_count", "created", "created_by",
}

// Repo provides release persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new release repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new release row with revision_count = 1. The game_id
// reference is fixed at creation; a dangling reference surfaces as
// ErrNotFound via the foreign key.
func (r *Repo) Create(ctx context.Context, rel domain.Release) (*domain.Release, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Insert("releases").
		Columns("game_id", "title", "platform", "version", "release_date", "links", "notes", "created_by").
		Values(rel.GameID, rel.Title, rel.Platform, rel.Version, rel.ReleaseDate, rel.Links, rel.Notes, rel.CreatedBy).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert release: %w", err)
	}

	created, err := scanRelease(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "release", rel.GameID)
	}
	return created, nil
}

// Update applies the full mutable field set to the release row and
// increments revision_count by exactly one, returning the post-update row.
// It must run inside the same transaction as the preceding GetForUpdate.
func (r *Repo) Update(ctx context.Context, id int64, fields domain.FieldMap) (*domain.Release, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Update("releases").
		Set("title", fields["title"]).
		Set("platform", fields["platform"]).
		Set("version", fields["version"]).
		Set("release_date", fields["release_date"]).
		Set("links", fields["links"]).
		Set("notes", fields["notes"]).
		Set("revision_count", squirrel.Expr("revision_count + 1")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update release: %w", err)
	}

	updated, err := scanRelease(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "release", id)
	}
	return updated, nil
}

// Get returns the release by id.
func (r *Repo) Get(ctx context.Context, id int64) (*domain.Release, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate returns the release by id with an exclusive row lock.
// Callers must hold a transaction.
func (r *Repo) GetForUpdate(ctx context.Context, id int64) (*domain.Release, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id int64, forUpdate bool) (*domain.Release, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sel := postgres.Builder.
		Select(columns...).
		From("releases").
		Where(squirrel.Eq{"id": id})
	if forUpdate {
		sel = sel.Suffix("FOR UPDATE")
	}

	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select release: %w", err)
	}

	rel, err := scanRelease(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "release", id)
	}
	return rel, nil
}

// ListByGame returns all releases of a game, oldest first.
func (r *Repo) ListByGame(ctx context.Context, gameID int64) ([]domain.Release, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From("releases").
		Where(squirrel.Eq{"game_id": gameID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list releases: %w", err)
	}

	var releases []domain.Release
	if err := pgxscan.Select(ctx, q, &releases, sql, args...); err != nil {
		return nil, fmt.Errorf("list releases for game %d: %w", gameID, err)
	}
	return releases, nil
}

func scanRelease(row interface{ Scan(dest ...any) error }) (*domain.Release, error) {
	var rel domain.Release
	err := row.Scan(
		&rel.ID, &rel.GameID, &rel.Title, &rel.Platform, &rel.Version,
		&rel.ReleaseDate, &rel.Links, &rel.Notes, &rel.RevisionCount,
		&rel.Created, &rel.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &rel, nil
}
