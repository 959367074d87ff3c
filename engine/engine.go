// Package engine defines the interface for game engines.
package engine

import (
	"errors"

	"reversi-local/board"
	"reversi-local/types"
)

var (
	// ErrIllegalMove is returned by PlayMove for a point the side to move
	// cannot take.
	ErrIllegalMove = errors.New("illegal move")
	// ErrGameOver is returned by PlayMove once the game has finished.
	ErrGameOver = errors.New("game is over")
	// ErrNotConnected is returned when the engine is used before Connect.
	ErrNotConnected = errors.New("engine not connected")
)

// GameEngine defines the interface for running a game of Reversi.
type GameEngine interface {
	// Connect initializes the game.
	Connect() error

	// GetBoardState returns the current board state.
	GetBoardState() *types.BoardState

	// PlayMove places the side to move on (x, y).
	// Returns an error if the move is illegal.
	PlayMove(x, y int) error

	// CanPlay reports whether the side to move may place on (x, y).
	CanPlay(x, y int) bool

	// ToMove returns the piece whose turn it is.
	ToMove() board.Piece

	// OnMove registers a callback for when a piece is placed.
	// state is passed directly to avoid lock contention.
	OnMove(func(pt board.Point, piece board.Piece, state *types.BoardState))

	// OnSkip registers a callback for when a side has no legal move and
	// passes automatically.
	OnSkip(func(piece board.Piece))

	// OnGameEnd registers a callback for when the game ends.
	OnGameEnd(func(outcome string))

	// Close shuts down the engine.
	Close()
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	Width       int
	Height      int
	FirstPlayer board.Piece

	// Start replaces the standard opening when set. Width and Height are
	// then taken from it.
	Start *board.Board
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Width:       8,
		Height:      8,
		FirstPlayer: board.Black,
	}
}
