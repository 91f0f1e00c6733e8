// Package game implements the game repository using PostgreSQL.
// It owns the mutable "current" row of each game; revision bookkeeping is
// driven by the catalog service, which wraps every mutation in a transaction.
package game

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/yaseigamedb/backend/internal/adapter/postgres"
	"github.com/yaseigamedb/backend/internal/domain"
)

var columns = []string{
	"id", "title", "aliases", "description", "tags", "creator", "links",
	"revision_count", "created", "created_by",
}

// Repo provides game persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new game repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new game row with revision_count = 1 and returns the
// persisted game.
func (r *Repo) Create(ctx context.Context, g domain.Game) (*domain.Game, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Insert("games").
		Columns("title", "aliases", "description", "tags", "creator", "links", "created_by").
		Values(g.Title, g.Aliases, g.Description, g.Tags, g.Creator, g.Links, g.CreatedBy).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert game: %w", err)
	}

	created, err := scanGame(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "game", 0)
	}
	return created, nil
}

// Update applies the full mutable field set to the game row and increments
// revision_count by exactly one, returning the post-update row. It must run
// inside the same transaction as the preceding GetForUpdate.
func (r *Repo) Update(ctx context.Context, id int64, fields domain.FieldMap) (*domain.Game, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Update("games").
		Set("title", fields["title"]).
		Set("aliases", fields["aliases"]).
		Set("description", fields["description"]).
		Set("tags", fields["tags"]).
		Set("creator", fields["creator"]).
		Set("links", fields["links"]).
		Set("revision_count", squirrel.Expr("revision_count + 1")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update game: %w", err)
	}

	updated, err := scanGame(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "game", id)
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns the game by id.
func (r *Repo) Get(ctx context.Context, id int64) (*domain.Game, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate returns the game by id with an exclusive row lock
// (SELECT ... FOR UPDATE). Callers must hold a transaction; the lock lives
// until that transaction commits or rolls back, serializing concurrent
// editors of the same game.
func (r *Repo) GetForUpdate(ctx context.Context, id int64) (*domain.Game, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id int64, forUpdate bool) (*domain.Game, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sel := postgres.Builder.
		Select(columns...).
		From("games").
		Where(squirrel.Eq{"id": id})
	if forUpdate {
		sel = sel.Suffix("FOR UPDATE")
	}

	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select game: %w", err)
	}

	g, err := scanGame(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "game", id)
	}
	return g, nil
}

// ListRanked returns every game joined with its active-rating aggregate and
// release count. Scores are not computed here; the catalog service derives
// them from the returned counts and averages.
func (r *Repo) ListRanked(ctx context.Context) ([]domain.RankedGame, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	cols := make([]string, len(columns))
	for i, c := range columns {
		cols[i] = "g." + c
	}
	cols = append(cols,
		"COALESCE(rt.n, 0) AS ratings",
		"COALESCE(rt.avg_value, 0) AS average",
		"COALESCE(rl.n, 0) AS releases",
	)

	sql, args, err := postgres.Builder.
		Select(cols...).
		From("games g").
		JoinClause("LEFT JOIN (SELECT game_id, COUNT(*) AS n, AVG(value) AS avg_value FROM ratings WHERE active GROUP BY game_id) rt ON rt.game_id = g.id").
		JoinClause("LEFT JOIN (SELECT game_id, COUNT(*) AS n FROM releases GROUP BY game_id) rl ON rl.game_id = g.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ranked listing: %w", err)
	}

	var rows []rankedRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list ranked games: %w", err)
	}

	ranked := make([]domain.RankedGame, len(rows))
	for i, row := range rows {
		ranked[i] = row.toDomain()
	}
	return ranked, nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type rankedRow struct {
	ID            int64     `db:"id"`
	Title         string    `db:"title"`
	Aliases       *string   `db:"aliases"`
	Description   *string   `db:"description"`
	Tags          *string   `db:"tags"`
	Creator       *string   `db:"creator"`
	Links         *string   `db:"links"`
	RevisionCount int       `db:"revision_count"`
	Created       time.Time `db:"created"`
	CreatedBy     uuid.UUID `db:"created_by"`
	Ratings       int       `db:"ratings"`
	Average       float64   `db:"average"`
	Releases      int       `db:"releases"`
}

func (row rankedRow) toDomain() domain.RankedGame {
	return domain.RankedGame{
		Game: domain.Game{
			ID:            row.ID,
			Title:         row.Title,
			Aliases:       row.Aliases,
			Description:   row.Description,
			Tags:          row.Tags,
			Creator:       row.Creator,
			Links:         row.Links,
			RevisionCount: row.RevisionCount,
			Created:       row.Created,
			CreatedBy:     row.CreatedBy,
		},
		Ratings:  row.Ratings,
		Average:  row.Average,
		Releases: row.Releases,
	}
}

func scanGame(row interface{ Scan(dest ...any) error }) (*domain.Game, error) {
	var g domain.Game
	err := row.Scan(
		&g.ID, &g.Title, &g.Aliases, &g.Description, &g.Tags, &g.Creator,
		&g.Links, &g.RevisionCount, &g.Created, &g.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}
