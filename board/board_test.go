package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reversi-local/board"
	"reversi-local/diagram"
)

func newBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.New(8, 8)
	require.NoError(t, err)
	return b
}

func parse(t *testing.T, text string) *board.Board {
	t.Helper()
	b, err := diagram.Parse(text)
	require.NoError(t, err)
	return b
}

func occupied(b *board.Board) int {
	return b.Count(board.Black) + b.Count(board.White)
}

// White has nothing to flip: every line from the lone white disc runs
// through black into the border.
const whiteMustSkip = `
 |0|1|2|3|4|5|6|7|8|9|
0|×|×|×|×|×|×|×|×|×|×|
1|×| | | | |●|●|●|●|×|
2|×| | | | |●|●|●|●|×|
3|×| | | | |●|●|●|●|×|
4|×| | | |○|●|●|●|●|×|
5|×| | | |●|●|●|●|●|×|
6|×| | | |●|●|●|●|●|×|
7|×| | | |●|●|●|●|●|×|
8|×| | | |●|●|●|●|●|×|
9|×|×|×|×|×|×|×|×|×|×|
`

const blackHasOneCorner = `
 |0|1|2|3|4|5|6|7|8|9|
0|×|×|×|×|×|×|×|×|×|×|
1|×| | |●|●|●|●|●|●|×|
2|×| |●|●|●|●|●|●|●|×|
3|×| |●|●|●|●|●|○|●|×|
4|×| |●|●|●|●|●|○|●|×|
5|×| | |●|●|●|○|○|●|×|
6|×| | |●| |●|●|○| |×|
7|×| | | | |●|●|○|●|×|
8|×| | | | | | | | |×|
9|×|×|×|×|×|×|×|×|×|×|
`

func TestNew(t *testing.T) {
	b := newBoard(t)

	assert.Equal(t, 8, b.Width())
	assert.Equal(t, 8, b.Height())
	assert.Equal(t, 4, occupied(b))
	assert.Equal(t, 2, b.Count(board.Black))
	assert.Equal(t, 2, b.Count(board.White))

	assert.Equal(t, board.Occupied{Piece: board.White}, b.Cell(board.Pt(4, 4)))
	assert.Equal(t, board.Occupied{Piece: board.Black}, b.Cell(board.Pt(5, 4)))
	assert.Equal(t, board.Occupied{Piece: board.Black}, b.Cell(board.Pt(4, 5)))
	assert.Equal(t, board.Occupied{Piece: board.White}, b.Cell(board.Pt(5, 5)))

	_, ok := b.Winner()
	assert.False(t, ok, "2-2 opening is a tie")
	assert.False(t, b.IsEnd())
}

func TestNewLayout(t *testing.T) {
	b, err := board.New(6, 4)
	require.NoError(t, err)

	for pt, c := range b.All() {
		onRing := pt.X == 0 || pt.Y == 0 || pt.X == 7 || pt.Y == 5
		if onRing {
			assert.Equal(t, board.Border{}, c, "ring %s", pt)
			continue
		}
		assert.NotEqual(t, board.Border{}, c, "interior %s", pt)
	}
	assert.Equal(t, board.Occupied{Piece: board.White}, b.Cell(board.Pt(3, 2)))
	assert.Equal(t, board.Occupied{Piece: board.Black}, b.Cell(board.Pt(4, 2)))
	assert.Equal(t, board.Occupied{Piece: board.Black}, b.Cell(board.Pt(3, 3)))
	assert.Equal(t, board.Occupied{Piece: board.White}, b.Cell(board.Pt(4, 3)))
}

func TestNewInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 8}, {8, 0}, {-1, -1}, {1, 8}, {8, 1}} {
		_, err := board.New(dims[0], dims[1])
		assert.ErrorIs(t, err, board.ErrInvalidDimensions, "%dx%d", dims[0], dims[1])
	}

	b, err := board.New(2, 2)
	require.NoError(t, err)
	assert.True(t, b.IsEnd(), "2x2 opening fills the board")
}

func TestAllIsRowMajorAndRestartable(t *testing.T) {
	b := newBoard(t)

	var first []board.Point
	for pt := range b.All() {
		first = append(first, pt)
	}
	require.Len(t, first, 10*10)
	assert.Equal(t, board.Pt(0, 0), first[0])
	assert.Equal(t, board.Pt(1, 0), first[1])
	assert.Equal(t, board.Pt(0, 1), first[10])
	assert.Equal(t, board.Pt(9, 9), first[99])

	var second []board.Point
	for pt := range b.All() {
		second = append(second, pt)
	}
	assert.Equal(t, first, second)

	n := 0
	for range b.All() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestCanPlaceOutsidePlayArea(t *testing.T) {
	b := newBoard(t)

	for pt, c := range b.All() {
		if _, ok := c.(board.Border); !ok {
			continue
		}
		assert.False(t, b.CanPlace(board.Black, pt), "black on %s", pt)
		assert.False(t, b.CanPlace(board.White, pt), "white on %s", pt)
	}
	for _, pt := range []board.Point{{-1, 4}, {4, -1}, {10, 4}, {4, 10}, {100, 100}} {
		assert.False(t, b.CanPlace(board.Black, pt), "black on %s", pt)
		assert.False(t, b.CanPlace(board.White, pt), "white on %s", pt)
		assert.Equal(t, board.Border{}, b.Cell(pt))
	}
}

func TestCanPlaceOpening(t *testing.T) {
	b := newBoard(t)

	// not next to anything
	assert.False(t, b.CanPlace(board.White, board.Pt(1, 1)))
	assert.False(t, b.CanPlace(board.Black, board.Pt(1, 1)))

	assert.False(t, b.CanPlace(board.White, board.Pt(3, 4)))
	assert.True(t, b.CanPlace(board.Black, board.Pt(3, 4)))

	assert.True(t, b.CanPlace(board.White, board.Pt(5, 3)))
	assert.False(t, b.CanPlace(board.Black, board.Pt(5, 3)))

	// next to a disc but nothing to flip
	assert.False(t, b.CanPlace(board.Black, board.Pt(3, 3)))

	// occupied
	assert.False(t, b.CanPlace(board.Black, board.Pt(4, 4)))
}

func TestCanPlaceIntoGap(t *testing.T) {
	b := parse(t, blackHasOneCorner)

	assert.True(t, b.CanPlace(board.Black, board.Pt(8, 6)))
	assert.False(t, b.CanPlace(board.Black, board.Pt(4, 6)))
}

func TestLegalMovesOpening(t *testing.T) {
	b := newBoard(t)

	assert.Equal(t, []board.Point{{4, 3}, {3, 4}, {6, 5}, {5, 6}}, b.LegalMoves(board.Black))
	assert.Equal(t, []board.Point{{5, 3}, {6, 4}, {3, 5}, {4, 6}}, b.LegalMoves(board.White))
}

func TestPlaceCaptures(t *testing.T) {
	b := newBoard(t)

	next := b.Place(board.Black, board.Pt(3, 4))

	assert.Equal(t, board.Occupied{Piece: board.Black}, next.Cell(board.Pt(3, 4)))
	assert.Equal(t, board.Occupied{Piece: board.Black}, next.Cell(board.Pt(4, 4)))
	assert.Equal(t, board.Occupied{Piece: board.Black}, next.Cell(board.Pt(5, 4)))
	assert.Equal(t, board.Occupied{Piece: board.Black}, next.Cell(board.Pt(4, 5)))
	assert.Equal(t, board.Occupied{Piece: board.White}, next.Cell(board.Pt(5, 5)))
	assert.Equal(t, 4, next.Count(board.Black))
	assert.Equal(t, 1, next.Count(board.White))

	// the input board is untouched
	assert.Equal(t, board.Occupied{Piece: board.White}, b.Cell(board.Pt(4, 4)))
	assert.Equal(t, board.Playable{}, b.Cell(board.Pt(3, 4)))

	assert.True(t, next.CanPlace(board.White, board.Pt(3, 3)))
	assert.False(t, next.CanPlace(board.White, board.Pt(3, 2)))
}

func TestPlaceCapturesEveryDirection(t *testing.T) {
	b := parse(t, `
 |0|1|2|3|4|5|6|7|
0|×|×|×|×|×|×|×|×|
1|×|●| |●| |●| |×|
2|×| |○|○|○| | |×|
3|×|●|○| |○|●| |×|
4|×| |○|○|○| | |×|
5|×|●| |●| |○|●|×|
6|×| | | | | |●|×|
7|×|×|×|×|×|×|×|×|
`)

	assert.Equal(t, []board.Point{
		{2, 2}, {3, 2}, {4, 2},
		{2, 3}, {4, 3},
		{2, 4}, {3, 4}, {4, 4},
		{5, 5},
	}, b.Flips(board.Black, board.Pt(3, 3)))

	next := b.Place(board.Black, board.Pt(3, 3))
	assert.Equal(t, 0, next.Count(board.White))
	assert.Equal(t, b.Count(board.Black)+10, next.Count(board.Black))
	assert.True(t, next.IsEnd())
}

func TestPlaceRunNeedsClosingDisc(t *testing.T) {
	b := parse(t, `
 |0|1|2|3|4|5|6|
0|×|×|×|×|×|×|×|
1|×| |○|○|○|○|×|
2|×|●|○| | | |×|
3|×| | | | | |×|
4|×|×|×|×|×|×|×|
`)

	// the row runs into the border without reaching black
	assert.Empty(t, b.Flips(board.Black, board.Pt(1, 1)))
	assert.False(t, b.CanPlace(board.Black, board.Pt(1, 1)))

	// the column above (2, 3) is white all the way to the border
	assert.Empty(t, b.Flips(board.Black, board.Pt(2, 3)))
	assert.Equal(t, []board.Point{{2, 2}}, b.Flips(board.Black, board.Pt(3, 2)))
}

func TestPlaceIllegalIsNoop(t *testing.T) {
	b := newBoard(t)

	for _, pt := range []board.Point{{1, 1}, {4, 4}, {0, 0}, {3, 3}, {-5, 2}, {20, 20}} {
		next := b.Place(board.Black, pt)
		assert.Same(t, b, next, "black on %s", pt)
		assert.True(t, b.Equal(next))
	}
	assert.Equal(t, diagram.Render(newBoard(t)), diagram.Render(b))
}

func TestPlaceMonotonic(t *testing.T) {
	b := newBoard(t)
	piece := board.Black

	for turn := 0; turn < 200 && !b.IsEnd(); turn++ {
		if b.IsSkip(piece) {
			piece = piece.Opposite()
			if b.IsSkip(piece) {
				break
			}
			continue
		}
		moves := b.LegalMoves(piece)
		pt := moves[turn%len(moves)]
		before := occupied(b)

		next := b.Place(piece, pt)

		assert.Equal(t, before+1, occupied(next), "turn %d", turn)
		assert.Equal(t, before, occupied(b), "input board changed on turn %d", turn)
		b = next
		piece = piece.Opposite()
	}
}

func TestIsSkip(t *testing.T) {
	b := parse(t, whiteMustSkip)
	assert.True(t, b.IsSkip(board.White))
	assert.False(t, b.IsSkip(board.Black))
	assert.False(t, b.IsEnd())

	b = parse(t, blackHasOneCorner)
	assert.False(t, b.IsSkip(board.Black))

	b = newBoard(t)
	assert.False(t, b.IsSkip(board.White))
	assert.False(t, b.IsSkip(board.Black))
}

func TestIsSkipLifted(t *testing.T) {
	b := parse(t, whiteMustSkip)
	require.True(t, b.IsSkip(board.White))

	// black opens a line that white can close
	b = b.Place(board.Black, board.Pt(3, 4))
	assert.Equal(t, board.Occupied{Piece: board.Black}, b.Cell(board.Pt(4, 4)))
	assert.True(t, b.IsEnd(), "white was wiped out")

	b = parse(t, `
 |0|1|2|3|4|5|6|7|8|9|
0|×|×|×|×|×|×|×|×|×|×|
1|×| | | | |●|●|●|●|×|
2|×| | | | |●|●|●|●|×|
3|×| | | | |●|●|●|●|×|
4|×| | | |○|●|●|●| |×|
5|×| | | |●|●|●|●|●|×|
6|×| | | |●|●|●|●|●|×|
7|×| | | |●|●|●|●|●|×|
8|×| | | |●|●|●|●|●|×|
9|×|×|×|×|×|×|×|×|×|×|
`)
	assert.False(t, b.IsSkip(board.White))
	assert.Equal(t, []board.Point{{8, 4}}, b.LegalMoves(board.White))
}

func TestIsEnd(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "full board one colour",
			text: `
 |0|1|2|3|4|
0|×|×|×|×|×|
1|×|●|●|●|×|
2|×|●|●|●|×|
3|×|●|●|●|×|
4|×|×|×|×|×|
`,
			want: true,
		},
		{
			name: "full board mixed",
			text: `
 |0|1|2|3|4|
0|×|×|×|×|×|
1|×|●|○|●|×|
2|×|○|○|●|×|
3|×|●|●|○|×|
4|×|×|×|×|×|
`,
			want: true,
		},
		{
			name: "one colour with space left",
			text: `
 |0|1|2|3|4|5|6|
0|×|×|×|×|×|×|×|
1|×| | | | | |×|
2|×| |○|○| | |×|
3|×| |○|○| | |×|
4|×| | | | | |×|
5|×|×|×|×|×|×|×|
`,
			want: true,
		},
		{
			name: "empty board",
			text: `
 |0|1|2|3|
0|×|×|×|×|
1|×| | |×|
2|×| | |×|
3|×|×|×|×|
`,
			want: true,
		},
		{
			name: "one square left, both colours",
			text: `
 |0|1|2|3|4|
0|×|×|×|×|×|
1|×| |○|●|×|
2|×|○|○|●|×|
3|×|●|●|○|×|
4|×|×|×|×|×|
`,
			want: false,
		},
		{
			name: "neither side can move",
			text: `
 |0|1|2|3|4|5|
0|×|×|×|×|×|×|
1|×|●| | | |×|
2|×| | | |○|×|
3|×|×|×|×|×|×|
`,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := parse(t, tt.text)
			assert.Equal(t, tt.want, b.IsEnd())
		})
	}
}

func TestIsEndStalemateIsNotEnd(t *testing.T) {
	b := parse(t, `
 |0|1|2|3|4|5|
0|×|×|×|×|×|×|
1|×|●| | | |×|
2|×| | | |○|×|
3|×|×|×|×|×|×|
`)

	assert.True(t, b.IsSkip(board.Black))
	assert.True(t, b.IsSkip(board.White))
	assert.False(t, b.IsEnd())
}

func TestWinner(t *testing.T) {
	b := newBoard(t)
	_, ok := b.Winner()
	assert.False(t, ok)

	white := parse(t, `
 |0|1|2|3|4|5|6|7|8|9|
0|×|×|×|×|×|×|×|×|×|×|
1|×| | | | | | | | |×|
2|×| | | | | | | | |×|
3|×| | | | | | | | |×|
4|×| | | |○|●| | | |×|
5|×| | | |●|○| | | |×|
6|×| | | |○| | | | |×|
7|×| | | | | | | | |×|
8|×| | | | | | | | |×|
9|×|×|×|×|×|×|×|×|×|×|
`)
	winner, ok := white.Winner()
	require.True(t, ok)
	assert.Equal(t, board.White, winner)

	black := parse(t, `
 |0|1|2|3|4|5|6|7|8|9|
0|×|×|×|×|×|×|×|×|×|×|
1|×| | | | | | | | |×|
2|×| | | | | | | | |×|
3|×| | | | | | | | |×|
4|×| | | |○|●| | | |×|
5|×| | | |●|○| | | |×|
6|×| | | |●| | | | |×|
7|×| | | | | | | | |×|
8|×| | | | | | | | |×|
9|×|×|×|×|×|×|×|×|×|×|
`)
	winner, ok = black.Winner()
	require.True(t, ok)
	assert.Equal(t, board.Black, winner)
}

func TestFromCells(t *testing.T) {
	b, err := board.FromCells(3, 3, map[board.Point]board.Cell{
		{2, 2}: board.Occupied{Piece: board.Black},
		{0, 0}: board.Border{},
	})
	require.NoError(t, err)
	assert.Equal(t, board.Occupied{Piece: board.Black}, b.Cell(board.Pt(2, 2)))
	assert.Equal(t, board.Playable{}, b.Cell(board.Pt(1, 1)))
	assert.Equal(t, board.Border{}, b.Cell(board.Pt(4, 4)))

	bad := []map[board.Point]board.Cell{
		{{5, 5}: board.Border{}},
		{{-1, 0}: board.Border{}},
		{{0, 2}: board.Playable{}},
		{{4, 1}: board.Occupied{Piece: board.White}},
		{{2, 2}: board.Border{}},
		{{1, 1}: nil},
	}
	for _, cells := range bad {
		_, err := board.FromCells(3, 3, cells)
		assert.ErrorIs(t, err, board.ErrInvalidCell, "%v", cells)
	}

	_, err = board.FromCells(1, 3, nil)
	assert.ErrorIs(t, err, board.ErrInvalidDimensions)
}

func TestEqual(t *testing.T) {
	a := newBoard(t)
	b := newBoard(t)
	assert.True(t, a.Equal(b))

	c := a.Place(board.Black, board.Pt(3, 4))
	assert.False(t, a.Equal(c))

	d, err := board.New(8, 6)
	require.NoError(t, err)
	assert.False(t, a.Equal(d))
}

func TestPiece(t *testing.T) {
	assert.Equal(t, board.White, board.Black.Opposite())
	assert.Equal(t, board.Black, board.White.Opposite())
	assert.Equal(t, "Black", board.Black.String())
	assert.Equal(t, "White", board.White.String())
	assert.False(t, board.Piece(0).Valid())
	assert.Panics(t, func() { board.Piece(0).Opposite() })

	tests := []struct {
		in   string
		want board.Piece
	}{
		{"black", board.Black},
		{"B", board.Black},
		{" White ", board.White},
		{"w", board.White},
	}
	for _, tt := range tests {
		got, err := board.ParsePiece(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := board.ParsePiece("red")
	assert.ErrorIs(t, err, board.ErrUnknownPiece)
}
