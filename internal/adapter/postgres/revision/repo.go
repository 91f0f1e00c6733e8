// Package revision implements the revision log repository using PostgreSQL.
// The log is append-only: rows are never updated or deleted, and the
// (kind, entity_id, nth_revision) uniqueness constraint backs the
// no-gaps/no-duplicates invariant the catalog service maintains.
package revision

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/yaseigamedb/backend/internal/adapter/postgres"
	"github.com/yaseigamedb/backend/internal/domain"
)

var columns = []string{
	"id", "kind", "entity_id", "nth_revision", "changes", "message",
	"created", "created_by",
}

// Repo provides revision log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new revision repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Append inserts one revision entry. A duplicate (kind, entity id, nth)
// triple maps to domain.ErrAlreadyExists; the caller guarantees ordering, so
// hitting that constraint means two editors raced outside a row lock.
func (r *Repo) Append(ctx context.Context, e domain.RevisionEntry) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	changesJSON, err := json.Marshal(e.Changes)
	if err != nil {
		return fmt.Errorf("revision marshal changes: %w", err)
	}

	sql, args, err := postgres.Builder.
		Insert("revisions").
		Columns("kind", "entity_id", "nth_revision", "changes", "message", "created_by").
		Values(e.Kind, e.EntityID, e.NthRevision, changesJSON, e.Message, e.CreatedBy).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert revision: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "revision", e.EntityID)
	}
	return nil
}

// ListForEntity returns the full revision history of one entity, ascending
// by nth_revision.
func (r *Repo) ListForEntity(ctx context.Context, kind domain.Kind, entityID int64) ([]domain.RevisionEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From("revisions").
		Where(squirrel.Eq{"kind": kind, "entity_id": entityID}).
		OrderBy("nth_revision ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list revisions: %w", err)
	}

	var rows []revisionRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list revisions for %s %d: %w", kind, entityID, err)
	}

	entries := make([]domain.RevisionEntry, len(rows))
	for i, row := range rows {
		entry, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}
	return entries, nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type revisionRow struct {
	ID          int64     `db:"id"`
	Kind        string    `db:"kind"`
	EntityID    int64     `db:"entity_id"`
	NthRevision int       `db:"nth_revision"`
	Changes     []byte    `db:"changes"`
	Message     string    `db:"message"`
	Created     time.Time `db:"created"`
	CreatedBy   uuid.UUID `db:"created_by"`
}

func (row revisionRow) toDomain() (domain.RevisionEntry, error) {
	entry := domain.RevisionEntry{
		ID:          row.ID,
		Kind:        domain.Kind(row.Kind),
		EntityID:    row.EntityID,
		NthRevision: row.NthRevision,
		Message:     row.Message,
		Created:     row.Created,
		CreatedBy:   row.CreatedBy,
	}

	if len(row.Changes) > 0 {
		changes := make(domain.Changes)
		if err := json.Unmarshal(row.Changes, &changes); err != nil {
			return domain.RevisionEntry{}, fmt.Errorf("revision %d unmarshal changes: %w", row.ID, err)
		}
		entry.Changes = changes
	}

	return entry, nil
}
