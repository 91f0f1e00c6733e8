package domain

import (
	"time"

	"github.com/google/uuid"
)

// Release is a concrete published edition of a game (a platform build, a
// regional version, a remaster). GameID is set at creation and immutable;
// the remaining attributes are versioned the same way game fields are.
type Release struct {
	ID            int64
	GameID        int64
	Title         string
	Platform      *string
	Version       *string
	ReleaseDate   *string
	Links         *string
	Notes         *string
	RevisionCount int
	Created       time.Time
	CreatedBy     uuid.UUID
}

// ReleaseFieldNames lists the mutable fields of a release.
var ReleaseFieldNames = []string{"title", "platform", "version", "release_date", "links", "notes"}

// Fields returns the release's mutable state as a FieldMap. Every name in
// ReleaseFieldNames is present; unset fields map to nil.
func (r *Release) Fields() FieldMap {
	title := r.Title
	return FieldMap{
		"title":        &title,
		"platform":     r.Platform,
		"version":      r.Version,
		"release_date": r.ReleaseDate,
		"links":        r.Links,
		"notes":        r.Notes,
	}
}
