package engine

import "github.com/lgbarn/chesscore/internal/chess"

// Change is a proposed relocation of the piece on From to To, used to ask
// questions about a position without committing the move.
type Change struct {
	From chess.Position `json:"from"`
	To   chess.Position `json:"to"`
}

// IsInCheck returns true if the given colour's king is in check. With a
// non-nil change the question is asked about the position after that move;
// the board itself is never modified.
func IsInCheck(board *chess.Board, colour chess.Colour, change *Change) bool {
	g := board.Grid()
	if change != nil {
		g.Move(change.From, change.To)
	}
	return inCheck(&g, colour)
}

// IsSquareAttacked returns true if any piece of byColour attacks pos.
func IsSquareAttacked(board *chess.Board, pos chess.Position, byColour chess.Colour) bool {
	g := board.Grid()
	return isSquareAttacked(&g, pos, byColour)
}

// inCheck reports whether colour's king is attacked in grid g.
func inCheck(g *chess.Grid, colour chess.Colour) bool {
	kingPos, ok := findKing(g, colour)
	if !ok {
		return false // No king found
	}
	return isSquareAttacked(g, kingPos, colour.Opposite())
}

// findKing finds the king of the given colour in the grid.
func findKing(g *chess.Grid, colour chess.Colour) (chess.Position, bool) {
	for i, p := range g {
		if p != nil && p.Kind == chess.King && p.Colour == colour {
			return chess.PositionFromIndex(i), true
		}
	}
	return chess.Position{}, false
}

// isSquareAttacked returns true if the square is attacked by the given colour.
// Each attacker's origin is taken from its grid index, not its Pos field, so
// a hypothetical grid needs no piece updates.
func isSquareAttacked(g *chess.Grid, target chess.Position, byColour chess.Colour) bool {
	for i, p := range g {
		if p == nil || p.Colour != byColour {
			continue
		}
		for _, pos := range attacks(g, p, chess.PositionFromIndex(i)) {
			if pos == target {
				return true
			}
		}
	}
	return false
}
