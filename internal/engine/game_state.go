package engine

import "github.com/lgbarn/chesscore/internal/chess"

// Status summarises the position for the side to move.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "ongoing"
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Over reports whether the game has ended.
func (s Status) Over() bool {
	return s == Checkmate || s == Stalemate
}

// IsCheckmate returns true if colour is in check and has no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour, nil) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if colour is not in check and has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsInCheck(board, colour, nil) && !HasLegalMoves(board, colour)
}

// GameStatus classifies the position for colour to move.
func GameStatus(board *chess.Board, colour chess.Colour) Status {
	check := IsInCheck(board, colour, nil)
	if HasLegalMoves(board, colour) {
		if check {
			return Check
		}
		return Ongoing
	}
	if check {
		return Checkmate
	}
	return Stalemate
}
