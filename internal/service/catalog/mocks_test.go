package catalog

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/yaseigamedb/backend/internal/config"
	"github.com/yaseigamedb/backend/internal/domain"
	"github.com/yaseigamedb/backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Test mocks (minimal, inline)
// ---------------------------------------------------------------------------

type mockGameRepo struct {
	createFunc       func(ctx context.Context, g domain.Game) (*domain.Game, error)
	getFunc          func(ctx context.Context, id int64) (*domain.Game, error)
	getForUpdateFunc func(ctx context.Context, id int64) (*domain.Game, error)
	updateFunc       func(ctx context.Context, id int64, fields domain.FieldMap) (*domain.Game, error)
	listRankedFunc   func(ctx context.Context) ([]domain.RankedGame, error)
}

func (m *mockGameRepo) Create(ctx context.Context, g domain.Game) (*domain.Game, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, g)
	}
	created := g
	created.ID = 1
	created.RevisionCount = 1
	return &created, nil
}

func (m *mockGameRepo) Get(ctx context.Context, id int64) (*domain.Game, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockGameRepo) GetForUpdate(ctx context.Context, id int64) (*domain.Game, error) {
	if m.getForUpdateFunc != nil {
		return m.getForUpdateFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockGameRepo) Update(ctx context.Context, id int64, fields domain.FieldMap) (*domain.Game, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, fields)
	}
	return nil, domain.ErrNotFound
}

func (m *mockGameRepo) ListRanked(ctx context.Context) ([]domain.RankedGame, error) {
	if m.listRankedFunc != nil {
		return m.listRankedFunc(ctx)
	}
	return nil, nil
}

type mockReleaseRepo struct {
	createFunc       func(ctx context.Context, rel domain.Release) (*domain.Release, error)
	getFunc          func(ctx context.Context, id int64) (*domain.Release, error)
	getForUpdateFunc func(ctx context.Context, id int64) (*domain.Release, error)
	updateFunc       func(ctx context.Context, id int64, fields domain.FieldMap) (*domain.Release, error)
	listByGameFunc   func(ctx context.Context, gameID int64) ([]domain.Release, error)
}

func (m *mockReleaseRepo) Create(ctx context.Context, rel domain.Release) (*domain.Release, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, rel)
	}
	created := rel
	created.ID = 1
	created.RevisionCount = 1
	return &created, nil
}

func (m *mockReleaseRepo) Get(ctx context.Context, id int64) (*domain.Release, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockReleaseRepo) GetForUpdate(ctx context.Context, id int64) (*domain.Release, error) {
	if m.getForUpdateFunc != nil {
		return m.getForUpdateFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockReleaseRepo) Update(ctx context.Context, id int64, fields domain.FieldMap) (*domain.Release, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, fields)
	}
	return nil, domain.ErrNotFound
}

func (m *mockReleaseRepo) ListByGame(ctx context.Context, gameID int64) ([]domain.Release, error) {
	if m.listByGameFunc != nil {
		return m.listByGameFunc(ctx, gameID)
	}
	return nil, nil
}

type mockRevisionRepo struct {
	appendFunc func(ctx context.Context, e domain.RevisionEntry) error
	listFunc   func(ctx context.Context, kind domain.Kind, entityID int64) ([]domain.RevisionEntry, error)
	entries    []domain.RevisionEntry
}

func (m *mockRevisionRepo) Append(ctx context.Context, e domain.RevisionEntry) error {
	if m.appendFunc != nil {
		return m.appendFunc(ctx, e)
	}
	m.entries = append(m.entries, e)
	return nil
}

func (m *mockRevisionRepo) ListForEntity(ctx context.Context, kind domain.Kind, entityID int64) ([]domain.RevisionEntry, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, kind, entityID)
	}
	return m.entries, nil
}

type mockTxManager struct {
	runInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.runInTxFunc != nil {
		return m.runInTxFunc(ctx, fn)
	}
	// Default: pass-through
	return fn(ctx)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func testScoring() config.RatingConfig {
	return config.RatingConfig{MinValue: 1, MaxValue: 10, MinimumVotes: 1, GlobalAverage: 5.5}
}

func newTestService(games *mockGameRepo, releases *mockReleaseRepo, revisions *mockRevisionRepo) *Service {
	return NewService(testLogger(), games, releases, revisions, &mockTxManager{}, testScoring())
}

func withUser(ctx context.Context, id uuid.UUID) context.Context {
	return ctxutil.WithUserID(ctx, id)
}

func strPtr(s string) *string { return &s }
