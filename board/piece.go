package board

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPiece is returned by ParsePiece for anything other than a colour name.
var ErrUnknownPiece = errors.New("unknown piece")

// Piece is the colour of a disc. The zero value is not a valid piece.
type Piece uint8

const (
	Black Piece = iota + 1
	White
)

// Opposite returns the other colour.
func (p Piece) Opposite() Piece {
	switch p {
	case Black:
		return White
	case White:
		return Black
	default:
		panic(fmt.Sprintf("invalid receiver for Piece.Opposite: %d", p))
	}
}

// Valid reports whether p is Black or White.
func (p Piece) Valid() bool {
	return p == Black || p == White
}

func (p Piece) String() string {
	switch p {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return fmt.Sprintf("Piece(%d)", p)
	}
}

// ParsePiece accepts "black", "b", "white" or "w" in any case.
func ParsePiece(s string) (Piece, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPiece, s)
}
