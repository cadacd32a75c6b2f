package engine

import "github.com/lgbarn/chesscore/internal/chess"

// offset is a (file, rank) step.
type offset [2]int

var (
	straightDirs = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	kingSteps    = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	knightJumps  = []offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// slide builds one ray per direction, each running from the square next to
// from out to the board edge.
func slide(from chess.Position, dirs []offset) [][]chess.Position {
	rays := make([][]chess.Position, 0, len(dirs))
	for _, d := range dirs {
		var ray []chess.Position
		pos, ok := from.Offset(d[0], d[1])
		for ok {
			ray = append(ray, pos)
			pos, ok = pos.Offset(d[0], d[1])
		}
		if len(ray) > 0 {
			rays = append(rays, ray)
		}
	}
	return rays
}

// step builds single-square rays for each offset that stays on the board.
func step(from chess.Position, offsets []offset) [][]chess.Position {
	rays := make([][]chess.Position, 0, len(offsets))
	for _, o := range offsets {
		if pos, ok := from.Offset(o[0], o[1]); ok {
			rays = append(rays, []chess.Position{pos})
		}
	}
	return rays
}

// pieceRays returns the raw movement geometry for a non-pawn kind standing
// on from. Castling targets are not included.
func pieceRays(kind chess.Kind, from chess.Position) [][]chess.Position {
	switch kind {
	case chess.Knight:
		return step(from, knightJumps)
	case chess.Bishop:
		return slide(from, diagonalDirs)
	case chess.Rook:
		return slide(from, straightDirs)
	case chess.Queen:
		return append(slide(from, straightDirs), slide(from, diagonalDirs)...)
	case chess.King:
		return step(from, kingSteps)
	}
	return nil
}

// between returns the squares strictly between a and b on a shared rank,
// file or diagonal. It returns nil when they are not aligned.
func between(a, b chess.Position) []chess.Position {
	df := b.File - a.File
	dr := b.Rank - a.Rank
	if df != 0 && dr != 0 && abs(df) != abs(dr) {
		return nil
	}
	sf, sr := sign(df), sign(dr)
	var out []chess.Position
	pos, ok := a.Offset(sf, sr)
	for ok && pos != b {
		out = append(out, pos)
		pos, ok = pos.Offset(sf, sr)
	}
	return out
}
