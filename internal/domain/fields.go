package domain

import "strings"

// FieldMap is the full mutable state of a versioned entity, keyed by field
// name. A nil value means the field is unset.
type FieldMap map[string]*string

// Changes is a partial diff over a FieldMap. A key that is absent means the
// field did not change; a key present with a nil value means the field was
// cleared; a key present with a non-nil value carries the new value.
//
// Marshalled to JSON this becomes e.g. {"tags":"rpg","aliases":null} —
// cleared fields survive serialization as explicit JSON nulls, so the
// cleared/unchanged distinction is never lost on the wire or in storage.
type Changes map[string]*string

// IsEmpty reports whether no field changed.
func (c Changes) IsEmpty() bool { return len(c) == 0 }

// NormalizeField trims s and converts the result to an unset field when it
// is empty. An explicitly cleared field and an absent field are the same
// thing: unset.
func NormalizeField(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Diff compares old and new field maps over the given field names and
// returns the changes needed to turn old into new. Fields outside names are
// ignored.
func Diff(old, new FieldMap, names []string) Changes {
	changes := make(Changes)
	for _, name := range names {
		if !fieldEqual(old[name], new[name]) {
			changes[name] = new[name]
		}
	}
	return changes
}

// Apply folds a single diff into base and returns the result. Base is not
// modified.
func Apply(base FieldMap, changes Changes) FieldMap {
	next := make(FieldMap, len(base)+len(changes))
	for k, v := range base {
		next[k] = v
	}
	for k, v := range changes {
		next[k] = v
	}
	return next
}

// FullChanges returns the creation diff for a freshly created entity: every
// field present, carrying the supplied value (or nil for unset ones).
// Replaying it against an empty map yields the full initial state.
func FullChanges(fields FieldMap, names []string) Changes {
	changes := make(Changes, len(names))
	for _, name := range names {
		changes[name] = fields[name]
	}
	return changes
}

// Replay reconstructs the current field state by folding the changes of the
// given revision entries in order. Entries must be sorted ascending by
// NthRevision, starting at 1.
func Replay(entries []RevisionEntry) FieldMap {
	state := make(FieldMap)
	for _, e := range entries {
		state = Apply(state, e.Changes)
	}
	return state
}

func fieldEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
