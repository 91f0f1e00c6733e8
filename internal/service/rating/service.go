// Package rating implements the rating ledger business logic. A user has at
// most one active rating per game; re-rating deactivates the old row and
// inserts a new one inside a single transaction, so a failure at either step
// leaves the previous rating in effect.
package rating

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yaseigamedb/backend/internal/config"
	"github.com/yaseigamedb/backend/internal/domain"
	"github.com/yaseigamedb/backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type ratingRepo interface {
	Deactivate(ctx context.Context, gameID int64, userID uuid.UUID) error
	Insert(ctx context.Context, rating domain.Rating) (*domain.Rating, error)
	ActiveStats(ctx context.Context, gameID int64) (int, float64, error)
}

type gameRepo interface {
	Get(ctx context.Context, id int64) (*domain.Game, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the rating ledger business logic.
type Service struct {
	log     *slog.Logger
	ratings ratingRepo
	games   gameRepo
	tx      txManager
	cfg     config.RatingConfig
}

// NewService creates a new rating service.
func NewService(
	logger *slog.Logger,
	ratings ratingRepo,
	games gameRepo,
	tx txManager,
	cfg config.RatingConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "rating"),
		ratings: ratings,
		games:   games,
		tx:      tx,
		cfg:     cfg,
	}
}

// RateInput holds the parameters for rating a game.
type RateInput struct {
	GameID int64
	Value  float64
}

// Rate records the caller's rating of a game, superseding any previous one.
// The value is rounded to one decimal place before the range check, so 10.04
// is accepted (as 10.0) while 10.05 is rejected.
func (s *Service) Rate(ctx context.Context, input RateInput) (*domain.Rating, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if input.GameID <= 0 {
		return nil, domain.NewValidationError("game_id", "required")
	}

	value := domain.RoundRating(input.Value)
	if value < s.cfg.MinValue || value > s.cfg.MaxValue {
		return nil, domain.NewValidationError("value",
			fmt.Sprintf("must be within [%v, %v]", s.cfg.MinValue, s.cfg.MaxValue))
	}

	var rated *domain.Rating

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.games.Get(txCtx, input.GameID); err != nil {
			return err
		}

		if err := s.ratings.Deactivate(txCtx, input.GameID, userID); err != nil {
			return fmt.Errorf("deactivate previous rating: %w", err)
		}

		var err error
		rated, err = s.ratings.Insert(txCtx, domain.Rating{
			GameID: input.GameID,
			UserID: userID,
			Value:  value,
			Active: true,
		})
		if err != nil {
			return fmt.Errorf("insert rating: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "game rated",
		slog.Int64("game_id", input.GameID),
		slog.String("user_id", userID.String()),
		slog.Float64("value", value),
	)

	return rated, nil
}

// Score returns the live rating aggregate for one game. A game with no
// active ratings scores the rounded global prior.
func (s *Service) Score(ctx context.Context, gameID int64) (domain.GameScore, error) {
	if _, err := s.games.Get(ctx, gameID); err != nil {
		return domain.GameScore{}, err
	}

	n, avg, err := s.ratings.ActiveStats(ctx, gameID)
	if err != nil {
		return domain.GameScore{}, fmt.Errorf("rating stats: %w", err)
	}

	return domain.GameScore{
		GameID:  gameID,
		Ratings: n,
		Average: avg,
		Score:   domain.BayesianScore(n, avg, s.cfg.MinimumVotes, s.cfg.GlobalAverage),
	}, nil
}
