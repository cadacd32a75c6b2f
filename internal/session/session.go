// Package session holds the per-game state that sits above the rule engine:
// whose turn it is, which piece is selected, the move history and the game
// status. The engine itself stays stateless apart from the board.
package session

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
)

// Option configures a Session.
type Option func(*Session)

// WithLog sends diagnostics to w. Level 1 logs game events, level 2 adds
// every move.
func WithLog(w io.Writer, verbosity int) Option {
	return func(s *Session) {
		s.logFile = w
		s.verbosity = verbosity
	}
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// Session is one game in progress. All methods are safe for concurrent use.
type Session struct {
	mu       sync.Mutex
	id       string
	board    *chess.Board
	toMove   chess.Colour
	selected *chess.Piece
	history  []engine.Result
	status   engine.Status

	logFile   io.Writer
	verbosity int
}

// New starts a session on board with toMove to play.
func New(board *chess.Board, toMove chess.Colour, opts ...Option) *Session {
	s := &Session{
		id:     uuid.New().String(),
		board:  board,
		toMove: toMove,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.status = engine.GameStatus(board, toMove)
	s.logf(1, "game %s started, %s to move (%s)\n", s.id, toMove, s.status)
	return s
}

// NewFromFEN starts a session from a FEN string. An empty string starts
// from the initial position.
func NewFromFEN(fen string, opts ...Option) (*Session, error) {
	if fen == "" {
		fen = engine.InitialFEN
	}
	board, toMove, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return New(board, toMove, opts...), nil
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Board returns a copy of the current board, highlights included.
func (s *Session) Board() *chess.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone()
}

// ToMove returns the side to play.
func (s *Session) ToMove() chess.Colour {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.toMove
}

// Status returns the game status for the side to play.
func (s *Session) Status() engine.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// FEN returns the current position.
func (s *Session) FEN() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return engine.FEN(s.board, s.toMove)
}

// History returns the moves played so far.
func (s *Session) History() []engine.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]engine.Result, len(s.history))
	copy(out, s.history)
	return out
}

// Select makes the piece on pos the current selection and highlights its
// legal destinations, which are also returned. Only a piece of the side to
// move can be selected. A failed selection leaves no selection behind.
func (s *Session) Select(pos chess.Position) ([]chess.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deselect()
	if s.status.Over() {
		return nil, errors.ErrGameOver
	}
	p, err := s.ownPiece(pos)
	if err != nil {
		return nil, err
	}

	s.selected = p
	targets := engine.ValidMoves(s.board, p)
	out := make([]chess.Position, 0, len(targets))
	for _, sq := range targets {
		sq.Highlight = true
		out = append(out, sq.Pos)
	}
	return out, nil
}

// Selected returns the position of the selected piece.
func (s *Session) Selected() (chess.Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return chess.Position{}, false
	}
	return s.selected.Pos, true
}

// Deselect drops the selection and its highlights.
func (s *Session) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deselect()
}

func (s *Session) deselect() {
	s.selected = nil
	s.board.ClearHighlights()
}

// ValidMoves returns the legal destinations of the piece on pos, whichever
// side it belongs to.
func (s *Session) ValidMoves(pos chess.Position) ([]chess.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.board.PieceAt(pos)
	if p == nil {
		return nil, errors.Wrap(errors.ErrNoPiece, pos.String())
	}
	targets := engine.ValidMoves(s.board, p)
	out := make([]chess.Position, 0, len(targets))
	for _, sq := range targets {
		out = append(out, sq.Pos)
	}
	return out, nil
}

// MoveTo moves the selected piece to pos. The selection is cleared whether
// or not the move is accepted.
func (s *Session) MoveTo(pos chess.Position) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.selected
	s.deselect()
	if p == nil {
		return false
	}
	_, err := s.move(p.Pos, pos)
	return err == nil
}

// Move plays from-to for the side to move.
func (s *Session) Move(from, to chess.Position) (engine.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deselect()
	return s.move(from, to)
}

func (s *Session) move(from, to chess.Position) (engine.Result, error) {
	ply := len(s.history) + 1
	if s.status.Over() {
		return engine.Result{}, errors.ErrGameOver
	}
	if _, err := s.ownPiece(from); err != nil {
		return engine.Result{}, &errors.MoveError{Err: err, From: from.String(), To: to.String(), Ply: ply}
	}

	res, err := engine.Apply(s.board, from, to)
	if err != nil {
		s.logf(2, "game %s: ply %d: %s%s rejected\n", s.id, ply, from, to)
		return engine.Result{}, &errors.MoveError{Err: errors.ErrIllegalMove, From: from.String(), To: to.String(), Ply: ply}
	}

	s.history = append(s.history, res)
	s.toMove = s.toMove.Opposite()
	s.status = engine.GameStatus(s.board, s.toMove)

	s.logf(2, "game %s: ply %d: %s %s\n", s.id, ply, res.Colour, res.UCI())
	if s.status.Over() {
		s.logf(1, "game %s: %s after %d plies\n", s.id, s.status, ply)
	}
	return res, nil
}

// ownPiece returns the piece on pos if it belongs to the side to move.
func (s *Session) ownPiece(pos chess.Position) (*chess.Piece, error) {
	p := s.board.PieceAt(pos)
	if p == nil {
		return nil, errors.Wrap(errors.ErrNoPiece, pos.String())
	}
	if p.Colour != s.toMove {
		return nil, errors.Wrapf(errors.ErrNotYourTurn, "%s to move", s.toMove)
	}
	return p, nil
}

func (s *Session) logf(level int, format string, args ...interface{}) {
	if s.logFile == nil || s.verbosity < level {
		return
	}
	fmt.Fprintf(s.logFile, format, args...)
}

// State is a serialisable snapshot of a session.
type State struct {
	ID          string           `json:"id"`
	FEN         string           `json:"fen"`
	ToMove      chess.Colour     `json:"toMove"`
	Status      engine.Status    `json:"status"`
	Selected    *chess.Position  `json:"selected,omitempty"`
	Highlighted []chess.Position `json:"highlighted,omitempty"`
	Pieces      []chess.Piece    `json:"pieces"`
	History     []string         `json:"history"`
	LastMove    *engine.Result   `json:"lastMove,omitempty"`
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state()
}

// MoveState plays from-to like Move and returns the snapshot taken under
// the same lock, so it reflects exactly this move.
func (s *Session) MoveState(from, to chess.Position) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deselect()
	if _, err := s.move(from, to); err != nil {
		return State{}, err
	}
	return s.state(), nil
}

func (s *Session) state() State {
	st := State{
		ID:          s.id,
		FEN:         engine.FEN(s.board, s.toMove),
		ToMove:      s.toMove,
		Status:      s.status,
		Highlighted: s.board.Highlighted(),
		Pieces:      []chess.Piece{},
		History:     make([]string, 0, len(s.history)),
	}
	if s.selected != nil {
		pos := s.selected.Pos
		st.Selected = &pos
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range s.board.Pieces(colour) {
			st.Pieces = append(st.Pieces, *p)
		}
	}
	for _, r := range s.history {
		st.History = append(st.History, r.UCI())
	}
	if n := len(s.history); n > 0 {
		last := s.history[n-1]
		st.LastMove = &last
	}
	return st
}
