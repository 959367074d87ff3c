package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"reversi-local/board"
)

// Coordinate systems:
// - Board: X 1..width (left to right), Y 1..height (top to bottom),
//   with the border ring at 0 and width+1 / height+1.
// - Algebraic: column letter a..z for X 1..26, row number for Y.
//   Example: d3 is (4, 3).

// ErrMalformedCoordinate is returned for input that is not a coordinate.
var ErrMalformedCoordinate = errors.New("malformed coordinate")

// ParseAxis parses a single non-negative coordinate value.
func ParseAxis(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedCoordinate, s)
	}
	return n, nil
}

// ParsePoint parses "x y", "x,y" or an algebraic vertex such as "d3".
// Range is not checked; the board rejects points outside the play area.
func ParsePoint(s string) (board.Point, error) {
	s = strings.TrimSpace(s)

	var parts []string
	if strings.Contains(s, ",") {
		parts = strings.Split(s, ",")
	} else {
		parts = strings.Fields(s)
	}

	switch len(parts) {
	case 1:
		return parseVertex(parts[0])
	case 2:
		x, err := ParseAxis(parts[0])
		if err != nil {
			return board.Point{}, err
		}
		y, err := ParseAxis(parts[1])
		if err != nil {
			return board.Point{}, err
		}
		return board.Pt(x, y), nil
	default:
		return board.Point{}, fmt.Errorf("%w: %q", ErrMalformedCoordinate, s)
	}
}

func parseVertex(vertex string) (board.Point, error) {
	vertex = strings.ToLower(vertex)
	if len(vertex) < 2 {
		return board.Point{}, fmt.Errorf("%w: %q", ErrMalformedCoordinate, vertex)
	}

	col := vertex[0]
	if col < 'a' || col > 'z' {
		return board.Point{}, fmt.Errorf("%w: invalid column in %q", ErrMalformedCoordinate, vertex)
	}

	row, err := strconv.Atoi(vertex[1:])
	if err != nil || row < 0 {
		return board.Point{}, fmt.Errorf("%w: invalid row in %q", ErrMalformedCoordinate, vertex)
	}

	return board.Pt(int(col-'a')+1, row), nil
}

// FormatPoint renders pt as an algebraic vertex. Points with no column
// letter fall back to "(x, y)".
func FormatPoint(pt board.Point) string {
	if pt.X < 1 || pt.X > 26 {
		return pt.String()
	}
	return fmt.Sprintf("%c%d", 'a'+rune(pt.X-1), pt.Y)
}
