// Package types contains shared data structures for reversi-local.
package types

import "reversi-local/board"

// Phase is the lifecycle stage of a game.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseFinished Phase = "finished"
)

// BoardState is a snapshot of a game as seen by the UI.
// Board is immutable, so a BoardState can be handed to other goroutines
// without copying the cells.
type BoardState struct {
	MoveNumber int
	ToMove     board.Piece
	Phase      Phase
	Board      *board.Board
	Outcome    string

	LastMove    board.Point
	HasLastMove bool

	// Skipped is the piece that had to pass before the current turn, or
	// zero if nobody passed.
	Skipped board.Piece
}

// Finished returns true if the game is over.
func (s *BoardState) Finished() bool {
	return s.Phase == PhaseFinished
}

// Height returns the play-area height.
func (s *BoardState) Height() int {
	if s.Board == nil {
		return 0
	}
	return s.Board.Height()
}

// Width returns the play-area width.
func (s *BoardState) Width() int {
	if s.Board == nil {
		return 0
	}
	return s.Board.Width()
}

// NewBoardState wraps b as the state before the first move.
func NewBoardState(b *board.Board, first board.Piece) *BoardState {
	return &BoardState{
		ToMove: first,
		Phase:  PhasePlaying,
		Board:  b,
	}
}

// Clone returns a shallow copy; the board itself is shared.
func (s *BoardState) Clone() *BoardState {
	c := *s
	return &c
}
