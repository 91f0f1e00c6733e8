package catalog

import (
	"strings"

	"github.com/yaseigamedb/backend/internal/domain"
)

const (
	maxTitleLen   = 200
	maxFieldLen   = 2000
	maxMessageLen = 2000
)

// Field values arrive as plain strings, form-submission style: the caller
// always sends the full field set, and an empty (or blank) value means the
// field is unset. Clearing a field is therefore submitting it empty; there
// is no "leave unchanged" marker — unchanged fields are detected by diffing
// against the stored row.

// ---------------------------------------------------------------------------
// CreateGameInput
// ---------------------------------------------------------------------------

// CreateGameInput holds the parameters for creating a game.
type CreateGameInput struct {
	Title       string
	Aliases     string
	Description string
	Tags        string
	Creator     string
	Links       string
}

// Validate checks all fields and collects all errors.
func (i CreateGameInput) Validate() error {
	errs := validateGameFields(i.Title, i.Aliases, i.Description, i.Tags, i.Creator, i.Links)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// FieldMap returns the normalized field state the input describes.
func (i CreateGameInput) FieldMap() domain.FieldMap {
	return gameFieldMap(i.Title, i.Aliases, i.Description, i.Tags, i.Creator, i.Links)
}

// ---------------------------------------------------------------------------
// UpdateGameInput
// ---------------------------------------------------------------------------

// UpdateGameInput holds the parameters for editing a game. Message is the
// mandatory human-authored edit summary.
type UpdateGameInput struct {
	ID          int64
	Title       string
	Aliases     string
	Description string
	Tags        string
	Creator     string
	Links       string
	Message     string
}

// Validate checks all fields and collects all errors.
func (i UpdateGameInput) Validate() error {
	errs := validateGameFields(i.Title, i.Aliases, i.Description, i.Tags, i.Creator, i.Links)
	errs = append(errs, validateCommon(i.ID, i.Message)...)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// FieldMap returns the normalized field state the input describes.
func (i UpdateGameInput) FieldMap() domain.FieldMap {
	return gameFieldMap(i.Title, i.Aliases, i.Description, i.Tags, i.Creator, i.Links)
}

// ---------------------------------------------------------------------------
// CreateReleaseInput
// ---------------------------------------------------------------------------

// CreateReleaseInput holds the parameters for creating a release of a game.
type CreateReleaseInput struct {
	GameID      int64
	Title       string
	Platform    string
	Version     string
	ReleaseDate string
	Links       string
	Notes       string
}

// Validate checks all fields and collects all errors.
func (i CreateReleaseInput) Validate() error {
	errs := validateReleaseFields(i.Title, i.Platform, i.Version, i.ReleaseDate, i.Links, i.Notes)
	if i.GameID <= 0 {
		errs = append(errs, domain.FieldError{Field: "game_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// FieldMap returns the normalized field state the input describes.
func (i CreateReleaseInput) FieldMap() domain.FieldMap {
	return releaseFieldMap(i.Title, i.Platform, i.Version, i.ReleaseDate, i.Links, i.Notes)
}

// ---------------------------------------------------------------------------
// UpdateReleaseInput
// ---------------------------------------------------------------------------

// UpdateReleaseInput holds the parameters for editing a release.
type UpdateReleaseInput struct {
	ID          int64
	Title       string
	Platform    string
	Version     string
	ReleaseDate string
	Links       string
	Notes       string
	Message     string
}

// Validate checks all fields and collects all errors.
func (i UpdateReleaseInput) Validate() error {
	errs := validateReleaseFields(i.Title, i.Platform, i.Version, i.ReleaseDate, i.Links, i.Notes)
	errs = append(errs, validateCommon(i.ID, i.Message)...)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// FieldMap returns the normalized field state the input describes.
func (i UpdateReleaseInput) FieldMap() domain.FieldMap {
	return releaseFieldMap(i.Title, i.Platform, i.Version, i.ReleaseDate, i.Links, i.Notes)
}

// ---------------------------------------------------------------------------
// Shared validation helpers
// ---------------------------------------------------------------------------

func validateCommon(id int64, message string) []domain.FieldError {
	var errs []domain.FieldError
	if id <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if strings.TrimSpace(message) == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	} else if len(message) > maxMessageLen {
		errs = append(errs, domain.FieldError{Field: "message", Message: "too long"})
	}
	return errs
}

func validateGameFields(title, aliases, description, tags, creator, links string) []domain.FieldError {
	errs := validateTitle(title)
	errs = append(errs, validateOptional("aliases", aliases)...)
	errs = append(errs, validateOptional("description", description)...)
	errs = append(errs, validateOptional("tags", tags)...)
	errs = append(errs, validateOptional("creator", creator)...)
	errs = append(errs, validateOptional("links", links)...)
	return errs
}

func validateReleaseFields(title, platform, version, releaseDate, links, notes string) []domain.FieldError {
	errs := validateTitle(title)
	errs = append(errs, validateOptional("platform", platform)...)
	errs = append(errs, validateOptional("version", version)...)
	errs = append(errs, validateOptional("release_date", releaseDate)...)
	errs = append(errs, validateOptional("links", links)...)
	errs = append(errs, validateOptional("notes", notes)...)
	return errs
}

func validateTitle(title string) []domain.FieldError {
	var errs []domain.FieldError
	if strings.TrimSpace(title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	return errs
}

func validateOptional(field, value string) []domain.FieldError {
	if len(value) > maxFieldLen {
		return []domain.FieldError{{Field: field, Message: "too long"}}
	}
	return nil
}

func gameFieldMap(title, aliases, description, tags, creator, links string) domain.FieldMap {
	return domain.FieldMap{
		"title":       domain.NormalizeField(title),
		"aliases":     domain.NormalizeField(aliases),
		"description": domain.NormalizeField(description),
		"tags":        domain.NormalizeField(tags),
		"creator":     domain.NormalizeField(creator),
		"links":       domain.NormalizeField(links),
	}
}

func releaseFieldMap(title, platform, version, releaseDate, links, notes string) domain.FieldMap {
	return domain.FieldMap{
		"title":        domain.NormalizeField(title),
		"platform":     domain.NormalizeField(platform),
		"version":      domain.NormalizeField(version),
		"release_date": domain.NormalizeField(releaseDate),
		"links":        domain.NormalizeField(links),
		"notes":        domain.NormalizeField(notes),
	}
}
