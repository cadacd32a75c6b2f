package engine

import "github.com/lgbarn/chesscore/internal/chess"

// Rook files for the two castling sides.
const (
	queensideRookFile = 0
	kingsideRookFile  = chess.BoardSize - 1
)

// castlingTargets returns the squares two files left or right of an unmoved
// king that it may castle to. A side is available when an unmoved rook of the
// same colour stands on the corner of the king's rank, every square between
// them is empty, the king is not in check and the square it passes over is
// not attacked. The destination is left to the ordinary legality filter.
func castlingTargets(b *chess.Board, king *chess.Piece) []chess.Position {
	if king.Kind != chess.King || king.HasMoved {
		return nil
	}
	g := b.Grid()
	enemy := king.Colour.Opposite()
	if isSquareAttacked(&g, king.Pos, enemy) {
		return nil
	}

	var out []chess.Position
	for _, rookFile := range []int{queensideRookFile, kingsideRookFile} {
		rookPos := chess.Position{File: rookFile, Rank: king.Pos.Rank}
		rook := g.At(rookPos)
		if rook == nil || rook.Kind != chess.Rook || rook.Colour != king.Colour || rook.HasMoved {
			continue
		}
		if !pathClear(&g, king.Pos, rookPos) {
			continue
		}
		dir := sign(rookFile - king.Pos.File)
		transit, ok := king.Pos.Offset(dir, 0)
		if !ok {
			continue
		}
		target, ok := king.Pos.Offset(2*dir, 0)
		if !ok {
			continue
		}
		if isSquareAttacked(&g, transit, enemy) {
			continue
		}
		out = append(out, target)
	}
	return out
}

// pathClear reports whether every square strictly between a and b is empty.
func pathClear(g *chess.Grid, a, b chess.Position) bool {
	for _, pos := range between(a, b) {
		if g.At(pos) != nil {
			return false
		}
	}
	return true
}

// rookCastleMove returns the rook relocation that accompanies a king move
// from kingFrom to kingTo, or ok=false when the move is not two files along
// the rank.
func rookCastleMove(kingFrom, kingTo chess.Position) (Change, bool) {
	delta := kingTo.File - kingFrom.File
	if kingTo.Rank != kingFrom.Rank || abs(delta) != 2 {
		return Change{}, false
	}
	rank := kingTo.Rank
	if delta > 0 {
		return Change{
			From: chess.NewPosition(kingsideRookFile, rank),
			To:   chess.NewPosition(kingTo.File-1, rank),
		}, true
	}
	return Change{
		From: chess.NewPosition(queensideRookFile, rank),
		To:   chess.NewPosition(kingTo.File+1, rank),
	}, true
}

// castleRook force-moves the rook belonging to a king that has just moved two
// files from kingFrom. It reports false if the king did not castle or the
// rook is missing.
func castleRook(b *chess.Board, king *chess.Piece, kingFrom chess.Position) bool {
	change, ok := rookCastleMove(kingFrom, king.Pos)
	if !ok {
		return false
	}
	rook := b.PieceAt(change.From)
	if rook == nil || rook.Kind != chess.Rook || rook.Colour != king.Colour {
		return false
	}
	return Move(b, rook, b.Square(change.To), true)
}
