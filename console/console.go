// Package console runs a game as a plain line-mode dialogue: the board is
// printed as a diagram and each turn asks for x then y.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"reversi-local/board"
	"reversi-local/diagram"
	"reversi-local/engine"
	"reversi-local/types"
)

type session struct {
	out    io.Writer
	glyphs diagram.Glyphs
	lines  <-chan string
	errc   <-chan error
}

// Run plays a game on eng until it ends, the input runs out or ctx is
// cancelled. Running out of input is not an error.
func Run(ctx context.Context, eng engine.GameEngine, in io.Reader, out io.Writer, glyphs diagram.Glyphs) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, errc := readLines(ctx, in)
	s := &session{
		out:    out,
		glyphs: glyphs,
		lines:  lines,
		errc:   errc,
	}

	eng.OnMove(func(pt board.Point, piece board.Piece, state *types.BoardState) {
		fmt.Fprintf(out, "%s placed at %s\n", piece, pt)
		s.printBoard(state)
	})
	eng.OnSkip(func(piece board.Piece) {
		fmt.Fprintf(out, "%s has no legal move\n", piece)
	})

	if err := eng.Connect(); err != nil {
		return err
	}
	s.printBoard(eng.GetBoardState())

	for {
		state := eng.GetBoardState()
		if state.Finished() {
			fmt.Fprintln(out, "Game over")
			fmt.Fprintln(out, state.Outcome)
			return nil
		}

		fmt.Fprintf(out, "%s to move\n", state.ToMove)

		pt, err := s.readPoint(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, engine.ErrMalformedCoordinate) {
			fmt.Fprintln(out, err)
			continue
		}
		if err != nil {
			return err
		}

		err = eng.PlayMove(pt.X, pt.Y)
		if errors.Is(err, engine.ErrIllegalMove) {
			fmt.Fprintf(out, "cannot place at %s\n", pt)
			continue
		}
		if err != nil {
			return err
		}
	}
}

func (s *session) printBoard(state *types.BoardState) {
	if state == nil || state.Board == nil {
		return
	}
	_ = s.glyphs.Write(s.out, state.Board)
}

// readPoint asks for x then y. A full coordinate such as "3 4" or "c4"
// typed at the x prompt is taken as is.
func (s *session) readPoint(ctx context.Context) (board.Point, error) {
	line, err := s.prompt(ctx, "x")
	if err != nil {
		return board.Point{}, err
	}
	if pt, err := engine.ParsePoint(line); err == nil {
		return pt, nil
	}
	x, err := engine.ParseAxis(line)
	if err != nil {
		return board.Point{}, fmt.Errorf("%w: invalid x value", engine.ErrMalformedCoordinate)
	}

	line, err = s.prompt(ctx, "y")
	if err != nil {
		return board.Point{}, err
	}
	y, err := engine.ParseAxis(line)
	if err != nil {
		return board.Point{}, fmt.Errorf("%w: invalid y value", engine.ErrMalformedCoordinate)
	}
	return board.Pt(x, y), nil
}

func (s *session) prompt(ctx context.Context, axis string) (string, error) {
	fmt.Fprintf(s.out, "%s: ", axis)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if ok {
			return line, nil
		}
	}

	// lines is closed; errc holds the scanner result.
	fmt.Fprintln(s.out)
	if err := <-s.errc; err != nil {
		return "", err
	}
	return "", io.EOF
}

// readLines feeds lines from in until it is exhausted or ctx is done. The
// scanner error, nil at end of input, is sent on the second channel before
// the first is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}
