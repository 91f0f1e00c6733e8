// Package testhelper provides a pgxmock-backed stand-in for the connection
// pool, for repository tests that assert SQL without a live database.
package testhelper

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v2"
)

// NewMockPool returns a pgxmock pool whose expectations are verified at test
// cleanup. It satisfies postgres.Pool, so repositories and the TxManager
// accept it unchanged.
func NewMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("create mock pool: %v", err)
	}

	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet mock expectations: %v", err)
		}
		mock.Close()
	})

	return mock
}
