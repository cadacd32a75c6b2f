package engine

import (
	"sort"

	"github.com/lgbarn/chesscore/internal/chess"
)

// walk follows each ray from nearest to farthest. Empty squares are added and
// the ray continues; an enemy square is added and ends the ray; a friendly
// square ends the ray without being added.
func walk(g *chess.Grid, colour chess.Colour, rays [][]chess.Position) []chess.Position {
	var out []chess.Position
	for _, ray := range rays {
		for _, pos := range ray {
			occupant := g.At(pos)
			if occupant == nil {
				out = append(out, pos)
				continue
			}
			if occupant.Colour != colour {
				out = append(out, pos)
			}
			break
		}
	}
	return out
}

// possibleMoves returns the movement geometry of a non-pawn piece as ordered
// rays, castling targets included for an unmoved king.
func possibleMoves(b *chess.Board, p *chess.Piece) [][]chess.Position {
	rays := pieceRays(p.Kind, p.Pos)
	if p.Kind == chess.King {
		for _, to := range castlingTargets(b, p) {
			rays = append(rays, []chess.Position{to})
		}
	}
	return rays
}

// pseudoLegal returns the pseudo-legal destinations of p.
func pseudoLegal(b *chess.Board, p *chess.Piece) []chess.Position {
	g := b.Grid()
	if p.Kind == chess.Pawn {
		return pawnMoves(&g, p)
	}
	return walk(&g, p.Colour, possibleMoves(b, p))
}

// attacks returns the squares the piece on from attacks in grid g.
// It never consults check state, so check detection cannot recurse.
func attacks(g *chess.Grid, p *chess.Piece, from chess.Position) []chess.Position {
	if p.Kind == chess.Pawn {
		return pawnAttacks(p.Colour, from)
	}
	return walk(g, p.Colour, pieceRays(p.Kind, from))
}

// Moves returns the pseudo-legal destination squares of p: reachable by
// geometry and blocking rules, ignoring whether the mover's king is left in
// check.
func Moves(b *chess.Board, p *chess.Piece) []*chess.Square {
	return squares(b, pseudoLegal(b, p))
}

// AttackingSquares returns the squares p attacks. For every kind but the pawn
// this matches Moves without castling targets; a pawn attacks its two
// forward diagonals whether or not anything stands there.
func AttackingSquares(b *chess.Board, p *chess.Piece) []*chess.Square {
	g := b.Grid()
	return squares(b, attacks(&g, p, p.Pos))
}

// squares resolves positions to board cells in square index order.
func squares(b *chess.Board, positions []chess.Position) []*chess.Square {
	sort.Slice(positions, func(i, j int) bool {
		return positions[i].Index() < positions[j].Index()
	})
	out := make([]*chess.Square, 0, len(positions))
	for _, pos := range positions {
		out = append(out, b.Square(pos))
	}
	return out
}
