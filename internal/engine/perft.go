package engine

import (
	"context"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree of the given depth.
// Promotions count once since pawns only promote to a queen.
func Perft(board *chess.Board, toMove chess.Colour, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(board, toMove)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := board.Clone()
		Move(child, child.PieceAt(m.From), child.Square(m.To), true)
		nodes += Perft(child, toMove.Opposite(), depth-1)
	}
	return nodes
}

// PerftDivide runs Perft below every root move, spreading the root moves
// over workers goroutines, and returns node counts keyed by move ("e2e4").
// When ctx is cancelled, root moves not yet started are skipped and the
// partial counts are returned with ctx.Err().
func PerftDivide(ctx context.Context, board *chess.Board, toMove chess.Colour, depth, workers int) (map[string]uint64, error) {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out, nil
	}

	moves := LegalMoves(board, toMove)
	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		return worker.ProcessResult{
			Label: item.Label,
			Index: item.Index,
			Nodes: Perft(item.Board, item.ToMove, item.Depth),
		}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)+1))
	release := pool.StopOnCancel(ctx)
	defer release()
	pool.Start()

	go func() {
		defer pool.Close()
		for i, m := range moves {
			child := board.Clone()
			label := moveLabel(child, m)
			Move(child, child.PieceAt(m.From), child.Square(m.To), true)
			if !pool.Submit(worker.WorkItem{
				Board:  child,
				ToMove: toMove.Opposite(),
				Depth:  depth - 1,
				Label:  label,
				Index:  i,
			}) {
				return
			}
		}
	}()

	for r := range pool.Results() {
		out[r.Label] = r.Nodes
	}
	if pool.Stopped() {
		return out, ctx.Err()
	}
	return out, nil
}

// moveLabel names a move in long algebraic form before it is played.
func moveLabel(board *chess.Board, m Change) string {
	label := m.From.String() + m.To.String()
	if p := board.PieceAt(m.From); p != nil && p.Kind == chess.Pawn && isPromotionRank(m.To.Rank) {
		label += "q"
	}
	return label
}
