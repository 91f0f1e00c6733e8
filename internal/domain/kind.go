package domain

// Kind identifies a versioned entity variant.
type Kind string

const (
	KindGame    Kind = "game"
	KindRelease Kind = "release"
)

// Valid reports whether k is a known entity kind.
func (k Kind) Valid() bool {
	return k == KindGame || k == KindRelease
}
