// Package game drives the Othello turn loop. A Session owns the single
// board value and the player to move; frontends query it for legal moves
// and feed chosen moves or passes back in.
package game

import (
	"errors"

	"termello/othello"
)

// ErrHasMoves is returned by Pass when the player to move has at least
// one legal move and is therefore not allowed to pass.
var ErrHasMoves = errors.New("legal moves available, cannot pass")

// Session is the turn-loop state machine. Exactly one board value exists
// per session and it is mutated only through Play, strictly between
// turns. Not safe for concurrent use; frontends are single-threaded.
type Session struct {
	board    *othello.Board
	turn     othello.Cell
	moveNum  int
	lastMove othello.Move
	lastBy   othello.Cell
}

// NewSession starts a fresh game: standard opening position, Black to
// move.
func NewSession() *Session {
	return &Session{
		board: othello.NewBoard(),
		turn:  othello.Black,
	}
}

// NewSessionFrom resumes play from an arbitrary position with the given
// player to move. The session takes ownership of the board.
func NewSessionFrom(board *othello.Board, turn othello.Cell) *Session {
	return &Session{
		board: board,
		turn:  turn,
	}
}

// Board exposes the live board for rendering. Frontends must not mutate
// it; all mutation goes through Play.
func (s *Session) Board() *othello.Board {
	return s.board
}

// Turn returns the player to move.
func (s *Session) Turn() othello.Cell {
	return s.turn
}

// MoveNumber returns the number of moves applied so far (passes do not
// count).
func (s *Session) MoveNumber() int {
	return s.moveNum
}

// LegalMoves returns the legal moves for the player to move, recomputed
// from the current board on every call.
func (s *Session) LegalMoves() map[othello.Coord]othello.Move {
	return s.board.ValidMoves(s.turn)
}

// Play applies mv for the player to move and hands the turn to the
// opponent. mv must come from the current LegalMoves map; a stale or
// foreign move is a caller contract violation.
func (s *Session) Play(mv othello.Move) {
	s.board.Apply(mv, s.turn)
	s.lastMove = mv
	s.lastBy = s.turn
	s.moveNum++
	s.turn = s.turn.Opponent()
}

// Pass forfeits the turn with no board change. It fails with ErrHasMoves
// when the player to move still has a legal move.
func (s *Session) Pass() error {
	if s.board.HasValidMove(s.turn) {
		return ErrHasMoves
	}
	s.turn = s.turn.Opponent()
	return nil
}

// MustPass reports whether the player to move has no legal move while the
// game is still running.
func (s *Session) MustPass() bool {
	return !s.Over() && !s.board.HasValidMove(s.turn)
}

// Over reports whether the game has ended, evaluated fresh on every call.
func (s *Session) Over() bool {
	return s.board.GameOver()
}

// LastMove returns the most recent applied move and who played it. ok is
// false before the first move.
func (s *Session) LastMove() (mv othello.Move, by othello.Cell, ok bool) {
	if s.lastBy == othello.Empty {
		return othello.Move{}, othello.Empty, false
	}
	return s.lastMove, s.lastBy, true
}

// Result returns the current disc counts.
func (s *Session) Result() Result {
	black, white := s.board.Score()
	return Result{Black: black, White: white}
}

// Result is a final (or running) score.
type Result struct {
	Black int
	White int
}

// Winner returns the color with strictly more discs, or Empty for a
// draw.
func (r Result) Winner() othello.Cell {
	switch {
	case r.Black > r.White:
		return othello.Black
	case r.White > r.Black:
		return othello.White
	default:
		return othello.Empty
	}
}

// Verdict returns a human-readable outcome, e.g. "Black wins".
func (r Result) Verdict() string {
	switch r.Winner() {
	case othello.Black:
		return "Black wins"
	case othello.White:
		return "White wins"
	default:
		return "The game is a draw"
	}
}
