package rating

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/yaseigamedb/backend/internal/config"
	"github.com/yaseigamedb/backend/internal/domain"
	"github.com/yaseigamedb/backend/pkg/ctxutil"
)

type mockRatingRepo struct {
	deactivateFunc  func(ctx context.Context, gameID int64, userID uuid.UUID) error
	insertFunc      func(ctx context.Context, r domain.Rating) (*domain.Rating, error)
	activeStatsFunc func(ctx context.Context, gameID int64) (int, float64, error)

	calls []string
}

func (m *mockRatingRepo) Deactivate(ctx context.Context, gameID int64, userID uuid.UUID) error {
	m.calls = append(m.calls, "deactivate")
	if m.deactivateFunc != nil {
		return m.deactivateFunc(ctx, gameID, userID)
	}
	return nil
}

func (m *mockRatingRepo) Insert(ctx context.Context, r domain.Rating) (*domain.Rating, error) {
	m.calls = append(m.calls, "insert")
	if m.insertFunc != nil {
		return m.insertFunc(ctx, r)
	}
	inserted := r
	inserted.ID = 1
	return &inserted, nil
}

func (m *mockRatingRepo) ActiveStats(ctx context.Context, gameID int64) (int, float64, error) {
	if m.activeStatsFunc != nil {
		return m.activeStatsFunc(ctx, gameID)
	}
	return 0, 0, nil
}

type mockGameRepo struct {
	getFunc func(ctx context.Context, id int64) (*domain.Game, error)
}

func (m *mockGameRepo) Get(ctx context.Context, id int64) (*domain.Game, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return &domain.Game{ID: id, Title: "Foo"}, nil
}

type mockTxManager struct{}

func (m *mockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(ratings *mockRatingRepo, games *mockGameRepo) *Service {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.RatingConfig{MinValue: 1, MaxValue: 10, MinimumVotes: 1, GlobalAverage: 5.5}
	return NewService(log, ratings, games, &mockTxManager{}, cfg)
}

func withUser(ctx context.Context) context.Context {
	return ctxutil.WithUserID(ctx, uuid.New())
}

func TestService_Rate_NoUserID(t *testing.T) {
	t.Parallel()

	svc := newTestService(&mockRatingRepo{}, &mockGameRepo{})

	_, err := svc.Rate(context.Background(), RateInput{GameID: 1, Value: 8})

	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestService_Rate_RoundsBeforeRangeCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   float64
		want    float64
		wantErr bool
	}{
		{name: "rounds down into range", value: 10.04, want: 10.0},
		{name: "rounds up out of range", value: 10.05, wantErr: true},
		{name: "rounds up into range", value: 0.96, want: 1.0},
		{name: "below minimum", value: 0.94, wantErr: true},
		{name: "plain value", value: 9.27, want: 9.3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stored float64
			ratings := &mockRatingRepo{
				insertFunc: func(ctx context.Context, r domain.Rating) (*domain.Rating, error) {
					stored = r.Value
					inserted := r
					inserted.ID = 1
					return &inserted, nil
				},
			}
			svc := newTestService(ratings, &mockGameRepo{})

			rated, err := svc.Rate(withUser(context.Background()), RateInput{GameID: 1, Value: tt.value})

			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("expected ErrValidation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Rate: unexpected error: %v", err)
			}
			if stored != tt.want {
				t.Errorf("stored value = %v, want %v", stored, tt.want)
			}
			if rated.Value != tt.want {
				t.Errorf("returned value = %v, want %v", rated.Value, tt.want)
			}
		})
	}
}

func TestService_Rate_UnknownGame(t *testing.T) {
	t.Parallel()

	games := &mockGameRepo{
		getFunc: func(ctx context.Context, id int64) (*domain.Game, error) {
			return nil, domain.ErrNotFound
		},
	}
	ratings := &mockRatingRepo{}
	svc := newTestService(ratings, games)

	_, err := svc.Rate(withUser(context.Background()), RateInput{GameID: 404, Value: 8})

	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if len(ratings.calls) != 0 {
		t.Errorf("rating repo touched for unknown game: %v", ratings.calls)
	}
}

func TestService_Rate_SupersedesPrevious(t *testing.T) {
	t.Parallel()

	ratings := &mockRatingRepo{}
	svc := newTestService(ratings, &mockGameRepo{})

	if _, err := svc.Rate(withUser(context.Background()), RateInput{GameID: 1, Value: 8}); err != nil {
		t.Fatalf("Rate: unexpected error: %v", err)
	}

	want := []string{"deactivate", "insert"}
	if len(ratings.calls) != len(want) || ratings.calls[0] != want[0] || ratings.calls[1] != want[1] {
		t.Errorf("call order = %v, want %v", ratings.calls, want)
	}
}

func TestService_Rate_InsertFailurePropagates(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("boom")
	ratings := &mockRatingRepo{
		insertFunc: func(ctx context.Context, r domain.Rating) (*domain.Rating, error) {
			return nil, wantErr
		},
	}
	svc := newTestService(ratings, &mockGameRepo{})

	_, err := svc.Rate(withUser(context.Background()), RateInput{GameID: 1, Value: 8})

	if !errors.Is(err, wantErr) {
		t.Errorf("expected insert error to propagate, got %v", err)
	}
}

func TestService_Score_NoRatings(t *testing.T) {
	t.Parallel()

	svc := newTestService(&mockRatingRepo{}, &mockGameRepo{})

	score, err := svc.Score(context.Background(), 1)
	if err != nil {
		t.Fatalf("Score: unexpected error: %v", err)
	}
	if score.Ratings != 0 {
		t.Errorf("Ratings = %d, want 0", score.Ratings)
	}
	if score.Score != 5.5 {
		t.Errorf("Score = %v, want the global prior 5.5", score.Score)
	}
}

func TestService_Score_Aggregates(t *testing.T) {
	t.Parallel()

	ratings := &mockRatingRepo{
		activeStatsFunc: func(ctx context.Context, gameID int64) (int, float64, error) {
			return 10, 8.0, nil
		},
	}
	svc := newTestService(ratings, &mockGameRepo{})

	score, err := svc.Score(context.Background(), 1)
	if err != nil {
		t.Fatalf("Score: unexpected error: %v", err)
	}
	if score.Ratings != 10 || score.Average != 8.0 {
		t.Errorf("stats = (%d, %v), want (10, 8.0)", score.Ratings, score.Average)
	}
	if score.Score != 7.77 {
		t.Errorf("Score = %v, want 7.77", score.Score)
	}
}
