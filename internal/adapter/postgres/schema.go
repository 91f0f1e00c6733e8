package postgres

import (
	"context"
	_ "embed"
	"fmt"
)

// Schema is the catalog DDL. It is idempotent (IF NOT EXISTS throughout) so
// applying it to an already-initialized database is safe.
//
//go:embed schema.sql
var Schema string

// ApplySchema executes the embedded DDL against the given querier.
func ApplySchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
