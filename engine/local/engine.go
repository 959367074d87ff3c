// Package local provides a hot-seat engine: both sides are played from the
// same terminal and the engine only keeps turn order.
package local

import (
	"fmt"
	"log/slog"
	"sync"

	"reversi-local/board"
	"reversi-local/engine"
	"reversi-local/types"
)

// Engine implements the GameEngine interface over an in-memory board.
type Engine struct {
	config    engine.GameConfig
	state     *types.BoardState
	connected bool

	moveCallback func(pt board.Point, piece board.Piece, state *types.BoardState)
	skipCallback func(piece board.Piece)
	endCallback  func(outcome string)

	logger *slog.Logger

	mu sync.Mutex
}

var _ engine.GameEngine = (*Engine)(nil)

// NewEngine creates a new local engine with the given configuration.
func NewEngine(cfg engine.GameConfig, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		config: cfg,
		logger: logger.With(slog.String("component", "engine")),
	}
}

// turnEvents collects what happened while resolving a turn so callbacks can
// run after the lock is released.
type turnEvents struct {
	skipped board.Piece
	ended   bool
	outcome string
}

// Connect sets up the opening position and starts a new game. Calling it
// again restarts the game.
func (e *Engine) Connect() error {
	b := e.config.Start
	if b == nil {
		var err error
		b, err = board.New(e.config.Width, e.config.Height)
		if err != nil {
			return fmt.Errorf("failed to create board: %w", err)
		}
	}

	first := e.config.FirstPlayer
	if !first.Valid() {
		first = board.Black
	}

	e.mu.Lock()
	e.state = types.NewBoardState(b, first)
	e.connected = true
	events := e.resolveTurn()
	e.mu.Unlock()

	e.logger.Info("game started",
		slog.Int("width", b.Width()),
		slog.Int("height", b.Height()),
		slog.String("first", first.String()),
	)
	e.notify(events)
	return nil
}

// GetBoardState returns a snapshot of the current board state, or nil
// before Connect.
func (e *Engine) GetBoardState() *types.BoardState {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return nil
	}
	return e.state.Clone()
}

// PlayMove places the side to move on (x, y).
func (e *Engine) PlayMove(x, y int) error {
	e.mu.Lock()

	if !e.connected {
		e.mu.Unlock()
		return engine.ErrNotConnected
	}
	if e.state.Finished() {
		e.mu.Unlock()
		return engine.ErrGameOver
	}

	pt := board.Pt(x, y)
	piece := e.state.ToMove
	if !e.state.Board.CanPlace(piece, pt) {
		e.mu.Unlock()
		e.logger.Debug("rejected move", slog.String("piece", piece.String()), slog.String("point", pt.String()))
		return fmt.Errorf("%w: %s cannot place at %s", engine.ErrIllegalMove, piece, pt)
	}

	e.state.Board = e.state.Board.Place(piece, pt)
	e.state.MoveNumber++
	e.state.LastMove = pt
	e.state.HasLastMove = true
	e.state.ToMove = piece.Opposite()

	events := e.resolveTurn()
	// Copy board state before releasing lock
	stateCopy := e.state.Clone()
	moveCallback := e.moveCallback
	e.mu.Unlock()

	e.logger.Info("move",
		slog.Int("number", stateCopy.MoveNumber),
		slog.String("piece", piece.String()),
		slog.String("point", engine.FormatPoint(pt)),
		slog.Int("black", stateCopy.Board.Count(board.Black)),
		slog.Int("white", stateCopy.Board.Count(board.White)),
	)

	// Notify callbacks outside the lock so they may call back into the engine.
	if moveCallback != nil {
		moveCallback(pt, piece, stateCopy)
	}
	e.notify(events)
	return nil
}

// resolveTurn ends the game or passes the turn when the side to move is
// stuck. Must be called while holding the lock.
func (e *Engine) resolveTurn() turnEvents {
	s := e.state
	b := s.Board
	s.Skipped = 0

	if b.IsEnd() {
		return e.finish(Outcome(b))
	}

	if b.IsSkip(s.ToMove) {
		other := s.ToMove.Opposite()
		if b.IsSkip(other) {
			// Empty squares remain but neither side can reach them.
			return e.finish("No legal moves. " + Outcome(b))
		}
		skipped := s.ToMove
		s.Skipped = skipped
		s.ToMove = other
		return turnEvents{skipped: skipped}
	}

	return turnEvents{}
}

// finish marks the game as over. Must be called while holding the lock.
func (e *Engine) finish(outcome string) turnEvents {
	e.state.Phase = types.PhaseFinished
	e.state.Outcome = outcome
	return turnEvents{ended: true, outcome: outcome}
}

func (e *Engine) notify(events turnEvents) {
	e.mu.Lock()
	skipCallback := e.skipCallback
	endCallback := e.endCallback
	e.mu.Unlock()

	if events.skipped.Valid() {
		e.logger.Info("skip", slog.String("piece", events.skipped.String()))
		if skipCallback != nil {
			skipCallback(events.skipped)
		}
	}
	if events.ended {
		e.logger.Info("game over", slog.String("outcome", events.outcome))
		if endCallback != nil {
			endCallback(events.outcome)
		}
	}
}

// Outcome describes the result on b, winner's count first.
func Outcome(b *board.Board) string {
	black, white := b.Count(board.Black), b.Count(board.White)
	winner, ok := b.Winner()
	switch {
	case !ok:
		return fmt.Sprintf("Draw %d-%d", black, white)
	case winner == board.Black:
		return fmt.Sprintf("Black wins %d-%d", black, white)
	default:
		return fmt.Sprintf("White wins %d-%d", white, black)
	}
}

// CanPlay reports whether the side to move may place on (x, y).
func (e *Engine) CanPlay(x, y int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.connected || e.state.Finished() {
		return false
	}
	return e.state.Board.CanPlace(e.state.ToMove, board.Pt(x, y))
}

// ToMove returns the piece whose turn it is, or zero before Connect.
func (e *Engine) ToMove() board.Piece {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return 0
	}
	return e.state.ToMove
}

// OnMove registers a callback for when a piece is placed.
func (e *Engine) OnMove(callback func(pt board.Point, piece board.Piece, state *types.BoardState)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.moveCallback = callback
}

// OnSkip registers a callback for when a side passes automatically.
func (e *Engine) OnSkip(callback func(piece board.Piece)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.skipCallback = callback
}

// OnGameEnd registers a callback for when the game ends.
func (e *Engine) OnGameEnd(callback func(outcome string)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.endCallback = callback
}

// Close stops accepting moves. The last state stays readable.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.connected {
		e.logger.Debug("engine closed")
	}
	e.connected = false
}
