package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/yaseigamedb/backend/internal/domain"
	"github.com/yaseigamedb/backend/pkg/ctxutil"
)

// CreateGame inserts a new game and its creation revision in one
// transaction. The new row starts at revision_count = 1 and the revision
// carries the full supplied field set under the system message; either both
// writes commit or neither does.
func (s *Service) CreateGame(ctx context.Context, input CreateGameInput) (*domain.Game, error) {
	author, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	fields := input.FieldMap()
	game := domain.Game{
		Title:       *fields["title"],
		Aliases:     fields["aliases"],
		Description: fields["description"],
		Tags:        fields["tags"],
		Creator:     fields["creator"],
		Links:       fields["links"],
		CreatedBy:   author,
	}

	var created *domain.Game

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.games.Create(txCtx, game)
		if err != nil {
			return fmt.Errorf("create game: %w", err)
		}

		return s.revisions.Append(txCtx, domain.RevisionEntry{
			Kind:        domain.KindGame,
			EntityID:    created.ID,
			NthRevision: created.RevisionCount,
			Changes:     domain.FullChanges(fields, domain.GameFieldNames),
			Message:     domain.SystemNewEntryMessage,
			CreatedBy:   author,
		})
	})

	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "game created",
		slog.Int64("game_id", created.ID),
		slog.String("author", author.String()),
	)

	return created, nil
}

// UpdateGame edits a game under an exclusive row lock. The diff is computed
// against the locked row, so it can never silently overwrite a concurrent
// editor's committed change; the matching revision entry is appended with
// nth_revision equal to the bumped counter. A no-change edit still bumps
// once and appends an entry with an empty diff.
func (s *Service) UpdateGame(ctx context.Context, input UpdateGameInput) (*domain.Game, error) {
	author, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	fields := input.FieldMap()

	var updated *domain.Game

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.games.GetForUpdate(txCtx, input.ID)
		if err != nil {
			return err
		}

		changes := domain.Diff(current.Fields(), fields, domain.GameFieldNames)

		updated, err = s.games.Update(txCtx, input.ID, fields)
		if err != nil {
			return fmt.Errorf("update game: %w", err)
		}

		return s.revisions.Append(txCtx, domain.RevisionEntry{
			Kind:        domain.KindGame,
			EntityID:    input.ID,
			NthRevision: updated.RevisionCount,
			Changes:     changes,
			Message:     strings.TrimSpace(input.Message),
			CreatedBy:   author,
		})
	})

	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "game updated",
		slog.Int64("game_id", updated.ID),
		slog.Int("revision", updated.RevisionCount),
		slog.String("author", author.String()),
	)

	return updated, nil
}

// GetGame returns a game by id. Reads are public and lock-free.
func (s *Service) GetGame(ctx context.Context, id int64) (*domain.Game, error) {
	return s.games.Get(ctx, id)
}

// ListRankedGames returns every game with its live Bayesian score, rating
// count, and release count, ordered for display: rated games first by score
// descending, unrated games after them, alias/title ascending within equal
// scores, id as the final tiebreak. The order is total; no two distinct
// games compare equal.
func (s *Service) ListRankedGames(ctx context.Context) ([]domain.RankedGame, error) {
	ranked, err := s.games.ListRanked(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ranked games: %w", err)
	}

	for i := range ranked {
		ranked[i].Unrated = ranked[i].Ratings == 0
		ranked[i].Score = domain.BayesianScore(
			ranked[i].Ratings, ranked[i].Average,
			s.scoring.MinimumVotes, s.scoring.GlobalAverage,
		)
	}

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Unrated != b.Unrated {
			return b.Unrated
		}
		if !a.Unrated && a.Score != b.Score {
			return a.Score > b.Score
		}
		at := strings.ToLower(a.Game.SortTitle())
		bt := strings.ToLower(b.Game.SortTitle())
		if at != bt {
			return at < bt
		}
		return a.Game.ID < b.Game.ID
	})

	return ranked, nil
}
