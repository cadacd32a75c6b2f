// Package engine provides chess move generation, legality checking and
// move execution.
package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// Move commits the move of p to sq and reports whether it was accepted.
//
// Every square's highlight is cleared first. The move is accepted when force
// is set or sq is among ValidMoves; otherwise nothing else changes and false
// is returned. An accepted pawn move onto the first or last rank leaves a
// queen on sq in place of the pawn, and a king moving two files drags the
// matching rook alongside it with a forced move.
func Move(board *chess.Board, p *chess.Piece, sq *chess.Square, force bool) bool {
	board.ClearHighlights()

	if !force && !CanMove(board, p, sq.Pos) {
		return false
	}

	from := p.Pos
	board.Remove(from)
	p.Pos = sq.Pos
	board.Place(p)
	p.HasMoved = true

	if p.Kind == chess.Pawn && isPromotionRank(p.Pos.Rank) {
		promote(board, sq)
	}

	if p.Kind == chess.King {
		castleRook(board, p, from)
	}

	return true
}

// Result describes a committed move.
type Result struct {
	Piece    chess.Kind     `json:"piece"`
	Colour   chess.Colour   `json:"colour"`
	From     chess.Position `json:"from"`
	To       chess.Position `json:"to"`
	Captured *chess.Piece   `json:"captured,omitempty"`
	Promoted bool           `json:"promoted,omitempty"`
	Castle   *Change        `json:"castle,omitempty"`
}

// UCI returns the move in long algebraic form, e.g. "e7e8q".
func (r Result) UCI() string {
	s := r.From.String() + r.To.String()
	if r.Promoted {
		s += "q"
	}
	return s
}

// Apply moves the piece on from to to, returning what happened. Unlike Move
// it reports failures as errors: errors.ErrNoPiece when from is empty and a
// wrapped errors.ErrIllegalMove when to is not a legal destination.
func Apply(board *chess.Board, from, to chess.Position) (Result, error) {
	p := board.PieceAt(from)
	if p == nil {
		return Result{}, fmt.Errorf("%s: %w", from, errors.ErrNoPiece)
	}

	res := Result{
		Piece:    p.Kind,
		Colour:   p.Colour,
		From:     from,
		To:       to,
		Captured: board.PieceAt(to),
	}
	if !Move(board, p, board.Square(to), false) {
		return Result{}, &errors.MoveError{Err: errors.ErrIllegalMove, From: from.String(), To: to.String()}
	}

	if p.Kind == chess.Pawn && board.PieceAt(to) != p {
		res.Promoted = true
	}
	if p.Kind == chess.King {
		if change, ok := rookCastleMove(from, to); ok {
			res.Castle = &change
		}
	}
	return res, nil
}
