package postgres

import (
	"context"
	"fmt"
)

// TxManager opens transactions and passes them to repositories through the
// context. Nesting RunInTx starts a second independent transaction, not a
// savepoint; do not nest it.
type TxManager struct {
	db Pool
}

// NewTxManager creates a new TxManager on top of a connection pool.
func NewTxManager(db Pool) *TxManager {
	return &TxManager{db: db}
}

// RunInTx runs fn inside a single transaction at the default Read Committed
// isolation level and commits when fn returns nil. An error from fn rolls
// back and is returned unchanged; a panic rolls back and re-panics.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	txCtx := withTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
