package domain

import (
	"time"

	"github.com/google/uuid"
)

// SystemNewEntryMessage is the fixed message of the revision written
// alongside entity creation.
const SystemNewEntryMessage = "(System) New entry"

// RevisionEntry is one append-only log record documenting a single mutation
// of a versioned entity. NthRevision equals the entity's revision_count
// after the mutation it documents; for a given entity the log holds exactly
// the values {1..revision_count} with no gaps or duplicates.
type RevisionEntry struct {
	ID          int64
	Kind        Kind
	EntityID    int64
	NthRevision int
	Changes     Changes
	Message     string
	Created     time.Time
	CreatedBy   uuid.UUID
}
