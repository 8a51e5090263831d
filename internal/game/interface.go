package game

import (
	"errors"
	"time"
)

var (
	ErrUnknownVariant = errors.New("unknown game variant")
	ErrInvalidConfig  = errors.New("invalid game config")
)

// Variant is one of the closed set of game types a guild can start.
type Variant int

const (
	VariantSudoku Variant = iota + 1
	VariantHangman
	VariantMaze
)

// Variants lists every supported variant in display order.
var Variants = []Variant{VariantSudoku, VariantHangman, VariantMaze}

func (v Variant) String() string {
	switch v {
	case VariantSudoku:
		return "Sudoku"
	case VariantHangman:
		return "Hangman"
	case VariantMaze:
		return "Maze"
	default:
		return "Unknown"
	}
}

// Valid reports whether v is one of the known variants.
func (v Variant) Valid() bool {
	return v >= VariantSudoku && v <= VariantMaze
}

// ParseVariant maps an exact variant name ("Sudoku", "Hangman", "Maze") to its Variant.
func ParseVariant(name string) (Variant, error) {
	for _, v := range Variants {
		if name == v.String() {
			return v, nil
		}
	}
	return 0, ErrUnknownVariant
}

// Config is the variant-specific configuration a session is created from.
// Normalize fills defaults in place and rejects invalid values with ErrInvalidConfig.
type Config interface {
	Variant() Variant
	Normalize() error
}

// Session is one running game instance. The registry never looks past this interface.
type Session interface {
	ID() string
	Variant() Variant
	Config() Config
	CreatedAt() time.Time
}
