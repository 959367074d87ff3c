// Package diagram renders boards as text grids and parses them back.
//
// A diagram has a header line of column numbers followed by one line per
// row, border rows and columns included:
//
//	 |0|1|2|3|
//	0|×|×|×|×|
//	1|×|○|●|×|
//	2|×|●|○|×|
//	3|×|×|×|×|
//
// Column numbers wrap at 10 so that every cell stays one glyph wide.
package diagram

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"reversi-local/board"
)

// ErrMalformedDiagram is returned by Parse for text that is not a diagram.
var ErrMalformedDiagram = errors.New("malformed diagram")

// Glyphs maps cell contents to the runes used in a diagram.
type Glyphs struct {
	Black    rune
	White    rune
	Playable rune
	Border   rune
}

// DefaultGlyphs are the glyphs of the console display.
var DefaultGlyphs = Glyphs{
	Black:    '●',
	White:    '○',
	Playable: ' ',
	Border:   '×',
}

// Glyph returns the rune for c.
func (g Glyphs) Glyph(c board.Cell) rune {
	switch c := c.(type) {
	case board.Occupied:
		if c.Piece == board.White {
			return g.White
		}
		return g.Black
	case board.Playable:
		return g.Playable
	case board.Border:
		return g.Border
	default:
		return g.Border
	}
}

func (g Glyphs) cell(r rune) (board.Cell, bool) {
	switch r {
	case g.Black:
		return board.Occupied{Piece: board.Black}, true
	case g.White:
		return board.Occupied{Piece: board.White}, true
	case g.Playable:
		return board.Playable{}, true
	case g.Border:
		return board.Border{}, true
	}
	return nil, false
}

// Render returns the diagram of b using DefaultGlyphs.
func Render(b *board.Board) string {
	var sb strings.Builder
	_ = DefaultGlyphs.Write(&sb, b)
	return sb.String()
}

// Write writes the diagram of b to w.
func (g Glyphs) Write(w io.Writer, b *board.Board) error {
	var sb strings.Builder

	sb.WriteString(" |")
	for x := 0; x <= b.Width()+1; x++ {
		sb.WriteString(strconv.Itoa(x % 10))
		sb.WriteByte('|')
	}
	sb.WriteByte('\n')

	y := -1
	for pt, c := range b.All() {
		if pt.Y != y {
			if y >= 0 {
				sb.WriteByte('\n')
			}
			y = pt.Y
			sb.WriteString(strconv.Itoa(y))
			sb.WriteByte('|')
		}
		sb.WriteRune(g.Glyph(c))
		sb.WriteByte('|')
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

// Parse reads a diagram written with DefaultGlyphs.
func Parse(text string) (*board.Board, error) {
	return DefaultGlyphs.Parse(text)
}

// Parse reads a diagram. The header line and the row labels are ignored;
// the dimensions come from the grid itself. Leading tabs are stripped so
// diagrams can be indented inside raw string literals.
func (g Glyphs) Parse(text string) (*board.Board, error) {
	cells := make(map[board.Point]board.Cell)
	rows, cols := 0, -1

	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(strings.TrimLeft(line, "\t"), " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		bar := strings.IndexByte(line, '|')
		if bar < 0 {
			return nil, fmt.Errorf("%w: line %d: no cell separator", ErrMalformedDiagram, n+1)
		}
		if strings.TrimSpace(line[:bar]) == "" {
			if rows > 0 {
				return nil, fmt.Errorf("%w: line %d: header after first row", ErrMalformedDiagram, n+1)
			}
			continue
		}

		body := line[bar+1:]
		if !strings.HasSuffix(body, "|") {
			return nil, fmt.Errorf("%w: line %d: row must end with '|'", ErrMalformedDiagram, n+1)
		}
		fields := strings.Split(strings.TrimSuffix(body, "|"), "|")
		if cols >= 0 && len(fields) != cols {
			return nil, fmt.Errorf("%w: line %d: %d cells, want %d", ErrMalformedDiagram, n+1, len(fields), cols)
		}
		cols = len(fields)

		for x, field := range fields {
			r := []rune(field)
			if len(r) != 1 {
				return nil, fmt.Errorf("%w: line %d: cell %d is %q", ErrMalformedDiagram, n+1, x, field)
			}
			c, ok := g.cell(r[0])
			if !ok {
				return nil, fmt.Errorf("%w: line %d: unknown glyph %q", ErrMalformedDiagram, n+1, r[0])
			}
			cells[board.Pt(x, rows)] = c
		}
		rows++
	}

	if rows == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedDiagram)
	}
	b, err := board.FromCells(cols-2, rows-2, cells)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDiagram, err)
	}
	return b, nil
}
