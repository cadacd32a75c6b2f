package engine

import "github.com/lgbarn/chesscore/internal/chess"

// ValidMoves returns the legal destination squares of p: its pseudo-legal
// moves minus those that would leave its own king in check.
func ValidMoves(board *chess.Board, p *chess.Piece) []*chess.Square {
	return squares(board, legalTargets(board, p))
}

// CanMove reports whether p may legally move to pos.
func CanMove(board *chess.Board, p *chess.Piece, pos chess.Position) bool {
	for _, to := range legalTargets(board, p) {
		if to == pos {
			return true
		}
	}
	return false
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, p := range board.Pieces(colour) {
		if len(legalTargets(board, p)) > 0 {
			return true
		}
	}
	return false
}

// LegalMoves returns every legal (from, to) pair for colour, ordered by
// origin and then destination square index.
func LegalMoves(board *chess.Board, colour chess.Colour) []Change {
	var out []Change
	for _, p := range board.Pieces(colour) {
		for _, sq := range ValidMoves(board, p) {
			out = append(out, Change{From: p.Pos, To: sq.Pos})
		}
	}
	return out
}

// legalTargets filters the pseudo-legal moves of p by simulating each one on
// a copy of the occupancy grid.
func legalTargets(board *chess.Board, p *chess.Piece) []chess.Position {
	candidates := pseudoLegal(board, p)
	out := candidates[:0]
	for _, to := range candidates {
		if !IsInCheck(board, p.Colour, &Change{From: p.Pos, To: to}) {
			out = append(out, to)
		}
	}
	return out
}
