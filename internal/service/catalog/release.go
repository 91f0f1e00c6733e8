package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yaseigamedb/backend/internal/domain"
	"github.com/yaseigamedb/backend/pkg/ctxutil"
)

// CreateRelease inserts a new release of an existing game and its creation
// revision in one transaction. The parent game is resolved inside the
// transaction so a dangling game id fails the whole create with ErrNotFound.
func (s *Service) CreateRelease(ctx context.Context, input CreateReleaseInput) (*domain.Release, error) {
	author, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	fields := input.FieldMap()
	release := domain.Release{
		GameID:      input.GameID,
		Title:       *fields["title"],
		Platform:    fields["platform"],
		Version:     fields["version"],
		ReleaseDate: fields["release_date"],
		Links:       fields["links"],
		Notes:       fields["notes"],
		CreatedBy:   author,
	}

	var created *domain.Release

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.games.Get(txCtx, input.GameID); err != nil {
			return err
		}

		var err error
		created, err = s.releases.Create(txCtx, release)
		if err != nil {
			return fmt.Errorf("create release: %w", err)
		}

		return s.revisions.Append(txCtx, domain.RevisionEntry{
			Kind:        domain.KindRelease,
			EntityID:    created.ID,
			NthRevision: created.RevisionCount,
			Changes:     domain.FullChanges(fields, domain.ReleaseFieldNames),
			Message:     domain.SystemNewEntryMessage,
			CreatedBy:   author,
		})
	})

	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "release created",
		slog.Int64("release_id", created.ID),
		slog.Int64("game_id", created.GameID),
		slog.String("author", author.String()),
	)

	return created, nil
}

// UpdateRelease edits a release under an exclusive row lock; see UpdateGame
// for the locking and revision semantics. GameID is immutable and not part
// of the diffed field set.
func (s *Service) UpdateRelease(ctx context.Context, input UpdateReleaseInput) (*domain.Release, error) {
	author, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	fields := input.FieldMap()

	var updated *domain.Release

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.releases.GetForUpdate(txCtx, input.ID)
		if err != nil {
			return err
		}

		changes := domain.Diff(current.Fields(), fields, domain.ReleaseFieldNames)

		updated, err = s.releases.Update(txCtx, input.ID, fields)
		if err != nil {
			return fmt.Errorf("update release: %w", err)
		}

		return s.revisions.Append(txCtx, domain.RevisionEntry{
			Kind:        domain.KindRelease,
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

	s.log.DebugContext(ctx, "release updated",
		slog.Int64("release_id", updated.ID),
		slog.Int("revision", updated.RevisionCount),
		slog.String("author", author.String()),
	)

	return updated, nil
}

// GetRelease returns a release by id.
func (s *Service) GetRelease(ctx context.Context, id int64) (*domain.Release, error) {
	return s.releases.Get(ctx, id)
}

// ListReleases returns the releases of a game, oldest first. The game must
// exist.
func (s *Service) ListReleases(ctx context.Context, gameID int64) ([]domain.Release, error) {
	if _, err := s.games.Get(ctx, gameID); err != nil {
		return nil, err
	}
	return s.releases.ListByGame(ctx, gameID)
}
