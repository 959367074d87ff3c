// Package board implements the Reversi board model: cell layout, capture
// scanning, placement and end-of-game queries.
package board

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// MinSize is the smallest width or height that fits the opening position.
const MinSize = 2

// Board is an immutable Reversi position. The play area spans x in
// [1, Width] and y in [1, Height], surrounded by a one-cell Border ring.
// Place returns a new Board; the receiver is never modified.
type Board struct {
	cells  map[Point]Cell
	width  int
	height int
}

// New builds a width x height board with the standard opening: White on
// (w/2, h/2) and (w/2+1, h/2+1), Black on (w/2+1, h/2) and (w/2, h/2+1).
func New(width, height int) (*Board, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	b := empty(width, height)

	cx, cy := width/2, height/2
	b.cells[Pt(cx, cy)] = Occupied{White}
	b.cells[Pt(cx+1, cy)] = Occupied{Black}
	b.cells[Pt(cx, cy+1)] = Occupied{Black}
	b.cells[Pt(cx+1, cy+1)] = Occupied{White}
	return b, nil
}

// FromCells builds a board from an explicit layout. Interior points missing
// from cells are Playable and the ring is always Border. A point outside the
// bordered rectangle, a Border inside the play area, a non-Border on the ring
// or a nil cell is rejected with ErrInvalidCell.
func FromCells(width, height int, cells map[Point]Cell) (*Board, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	b := empty(width, height)
	for pt, c := range cells {
		if c == nil {
			return nil, fmt.Errorf("%w: nil cell at %s", ErrInvalidCell, pt)
		}
		if _, ok := b.cells[pt]; !ok {
			return nil, fmt.Errorf("%w: %s is outside a %dx%d board", ErrInvalidCell, pt, width, height)
		}
		_, isBorder := c.(Border)
		if b.onRing(pt) != isBorder {
			return nil, fmt.Errorf("%w: %T at %s", ErrInvalidCell, c, pt)
		}
		b.cells[pt] = c
	}
	return b, nil
}

func checkDimensions(width, height int) error {
	if width < MinSize || height < MinSize {
		return fmt.Errorf("%w: %dx%d (minimum %dx%d)", ErrInvalidDimensions, width, height, MinSize, MinSize)
	}
	return nil
}

func empty(width, height int) *Board {
	b := &Board{
		cells:  make(map[Point]Cell, (width+2)*(height+2)),
		width:  width,
		height: height,
	}
	for y := 0; y <= height+1; y++ {
		for x := 0; x <= width+1; x++ {
			pt := Pt(x, y)
			if b.onRing(pt) {
				b.cells[pt] = Border{}
			} else {
				b.cells[pt] = Playable{}
			}
		}
	}
	return b
}

func (b *Board) onRing(pt Point) bool {
	return pt.X == 0 || pt.Y == 0 || pt.X == b.width+1 || pt.Y == b.height+1
}

// Width returns the play-area width.
func (b *Board) Width() int {
	return b.width
}

// Height returns the play-area height.
func (b *Board) Height() int {
	return b.height
}

// Cell returns the content at pt. Points outside the bordered rectangle
// read as Border.
func (b *Board) Cell(pt Point) Cell {
	if c, ok := b.cells[pt]; ok {
		return c
	}
	return Border{}
}

// All yields every point of the bordered rectangle with its cell, row by
// row from (0, 0). The sequence can be ranged over any number of times.
func (b *Board) All() iter.Seq2[Point, Cell] {
	return func(yield func(Point, Cell) bool) {
		for y := 0; y <= b.height+1; y++ {
			for x := 0; x <= b.width+1; x++ {
				pt := Pt(x, y)
				if !yield(pt, b.cells[pt]) {
					return
				}
			}
		}
	}
}

// CanPlace reports whether piece may be placed at pt: the square is
// Playable and at least one direction captures.
func (b *Board) CanPlace(piece Piece, pt Point) bool {
	return len(b.captures(piece, pt)) > 0
}

// Place puts piece on pt and flips every captured run. An illegal move
// returns the receiver unchanged.
func (b *Board) Place(piece Piece, pt Point) *Board {
	runs := b.captures(piece, pt)
	if len(runs) == 0 {
		return b
	}

	next := &Board{
		cells:  maps.Clone(b.cells),
		width:  b.width,
		height: b.height,
	}
	next.cells[pt] = Occupied{piece}
	for _, run := range runs {
		for _, flip := range run {
			next.cells[flip] = Occupied{piece}
		}
	}
	return next
}

// Flips returns the discs that placing piece on pt would turn over, in
// row-major order. It is empty for an illegal move.
func (b *Board) Flips(piece Piece, pt Point) []Point {
	var flips []Point
	for _, run := range b.captures(piece, pt) {
		flips = append(flips, run...)
	}
	slices.SortFunc(flips, ComparePoints)
	return flips
}

// LegalMoves lists every point where piece can be placed, row-major.
func (b *Board) LegalMoves(piece Piece) []Point {
	var moves []Point
	for pt, c := range b.All() {
		if _, ok := c.(Playable); ok && b.CanPlace(piece, pt) {
			moves = append(moves, pt)
		}
	}
	return moves
}

// IsSkip reports whether piece has no legal move anywhere.
func (b *Board) IsSkip(piece Piece) bool {
	for pt, c := range b.All() {
		if _, ok := c.(Playable); ok && b.CanPlace(piece, pt) {
			return false
		}
	}
	return true
}

// IsEnd reports whether the game is over: no Playable square is left, or
// the discs on the board are all one colour. A position where neither side
// can move but empty squares remain is not an end by this rule.
func (b *Board) IsEnd() bool {
	playable := false
	var black, white int
	for _, c := range b.All() {
		switch c := c.(type) {
		case Playable:
			playable = true
		case Occupied:
			if c.Piece == Black {
				black++
			} else {
				white++
			}
		case Border:
		}
	}
	return !playable || black == 0 || white == 0
}

// Count returns the number of discs of the given colour.
func (b *Board) Count(piece Piece) int {
	n := 0
	for _, c := range b.All() {
		if p, ok := PieceOf(c); ok && p == piece {
			n++
		}
	}
	return n
}

// Winner returns the colour with more discs. ok is false on a tie. Before
// IsEnd it is only the current leader.
func (b *Board) Winner() (winner Piece, ok bool) {
	black, white := b.Count(Black), b.Count(White)
	switch {
	case black > white:
		return Black, true
	case white > black:
		return White, true
	default:
		return 0, false
	}
}

// Equal reports whether both boards have the same dimensions and cells.
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	return maps.Equal(b.cells, other.cells)
}

// captures returns the non-empty capturable runs from pt in each direction.
// The neighbour check is a cheap pre-filter; the runs decide legality.
func (b *Board) captures(piece Piece, pt Point) [][]Point {
	if _, ok := b.Cell(pt).(Playable); !ok {
		return nil
	}
	if !b.hasOccupiedNeighbour(pt) {
		return nil
	}

	var runs [][]Point
	for _, d := range directions {
		if run := b.run(piece, pt, d); len(run) > 0 {
			runs = append(runs, run)
		}
	}
	return runs
}

func (b *Board) hasOccupiedNeighbour(pt Point) bool {
	for _, d := range directions {
		if _, ok := b.Cell(pt.Add(d)).(Occupied); ok {
			return true
		}
	}
	return false
}

// run walks from origin in direction d. The opposing discs it passes are
// captured only if the walk then reaches a disc of piece's colour.
func (b *Board) run(piece Piece, origin, d Point) []Point {
	var line []Point
	for pt := origin.Add(d); ; pt = pt.Add(d) {
		switch c := b.Cell(pt).(type) {
		case Occupied:
			if c.Piece == piece {
				return line
			}
			line = append(line, pt)
		case Playable, Border:
			return nil
		default:
			return nil
		}
	}
}
