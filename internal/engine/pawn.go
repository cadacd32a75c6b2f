package engine

import "github.com/lgbarn/chesscore/internal/chess"

// pawnMoves returns the pseudo-legal destinations of a pawn: one square
// forward when empty, two from an unmoved pawn when both are empty, and the
// forward diagonals when an enemy piece stands there.
func pawnMoves(g *chess.Grid, p *chess.Piece) []chess.Position {
	var out []chess.Position
	dir := p.Colour.Forward()

	if one, ok := p.Pos.Offset(0, dir); ok && g.At(one) == nil {
		out = append(out, one)
		if !p.HasMoved {
			if two, ok := p.Pos.Offset(0, 2*dir); ok && g.At(two) == nil {
				out = append(out, two)
			}
		}
	}

	for _, to := range pawnAttacks(p.Colour, p.Pos) {
		if target := g.At(to); target != nil && target.Colour != p.Colour {
			out = append(out, to)
		}
	}
	return out
}

// pawnAttacks returns the forward diagonals of a pawn of colour on from.
func pawnAttacks(colour chess.Colour, from chess.Position) []chess.Position {
	var out []chess.Position
	dir := colour.Forward()
	for _, df := range []int{-1, 1} {
		if to, ok := from.Offset(df, dir); ok {
			out = append(out, to)
		}
	}
	return out
}

// isPromotionRank reports whether a pawn arriving on rank must promote.
func isPromotionRank(rank int) bool {
	return rank == 0 || rank == chess.BoardSize-1
}

// promote replaces the pawn on sq with a queen of the same colour.
// The pawn is no longer reachable from the board afterwards.
func promote(b *chess.Board, sq *chess.Square) *chess.Piece {
	pawn := sq.Occupant
	queen := chess.NewPiece(chess.Queen, pawn.Colour, sq.Pos)
	queen.HasMoved = true
	b.Place(queen)
	return queen
}
