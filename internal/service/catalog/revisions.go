package catalog

import (
	"context"

	"github.com/yaseigamedb/backend/internal/domain"
)

// ListGameRevisions returns the full edit history of a game, ascending by
// revision number. The entity is resolved first so an unknown id yields
// ErrNotFound rather than an empty history.
func (s *Service) ListGameRevisions(ctx context.Context, gameID int64) ([]domain.RevisionEntry, error) {
	if _, err := s.games.Get(ctx, gameID); err != nil {
		return nil, err
	}
	return s.revisions.ListForEntity(ctx, domain.KindGame, gameID)
}

// ListReleaseRevisions returns the full edit history of a release,
// ascending by revision number.
func (s *Service) ListReleaseRevisions(ctx context.Context, releaseID int64) ([]domain.RevisionEntry, error) {
	if _, err := s.releases.Get(ctx, releaseID); err != nil {
		return nil, err
	}
	return s.revisions.ListForEntity(ctx, domain.KindRelease, releaseID)
}
