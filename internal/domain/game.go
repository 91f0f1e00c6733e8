package domain

import (
	"time"

	"github.com/google/uuid"
)

// Game is a catalog game entry. Every mutation bumps RevisionCount by one
// and is mirrored by exactly one RevisionEntry.
type Game struct {
	ID            int64
	Title         string
	Aliases       *string
	Description   *string
	Tags          *string
	Creator       *string
	Links         *string
	RevisionCount int
	Created       time.Time
	CreatedBy     uuid.UUID
}

// GameFieldNames lists the mutable fields of a game, in display order.
// The diff machinery and the revision payloads operate over exactly this set.
var GameFieldNames = []string{"title", "aliases", "description", "tags", "creator", "links"}

// Fields returns the game's mutable state as a FieldMap. Every name in
// GameFieldNames is present; unset fields map to nil.
func (g *Game) Fields() FieldMap {
	title := g.Title
	return FieldMap{
		"title":       &title,
		"aliases":     g.Aliases,
		"description": g.Description,
		"tags":        g.Tags,
		"creator":     g.Creator,
		"links":       g.Links,
	}
}

// SortTitle is the name the ranked listing orders by: the alias when one is
// set, the title otherwise.
func (g *Game) SortTitle() string {
	if g.Aliases != nil && *g.Aliases != "" {
		return *g.Aliases
	}
	return g.Title
}

// RankedGame is one row of the ranked listing: a game joined with its live
// rating aggregate and release count.
type RankedGame struct {
	Game     Game
	Ratings  int
	Average  float64
	Score    float64
	Unrated  bool
	Releases int
}
