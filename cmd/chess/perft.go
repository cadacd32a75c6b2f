package main

import (
	"context"
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
)

// runPerft prints the perft count of board, per root move with -divide.
// Cancelling ctx stops a divide run after the root moves already started;
// the partial counts are printed and the error returned.
func runPerft(ctx context.Context, cfg *config.Config, board *chess.Board, toMove chess.Colour) (uint64, error) {
	p := message.NewPrinter(language.English)
	depth := cfg.Perft.Depth

	start := time.Now()
	var nodes uint64
	if cfg.Perft.Divide {
		counts, err := engine.PerftDivide(ctx, board, toMove, depth, cfg.Perft.Workers)
		moves := make([]string, 0, len(counts))
		for mv := range counts {
			moves = append(moves, mv)
		}
		sort.Strings(moves)
		for _, mv := range moves {
			p.Fprintf(cfg.OutputFile, "%s: %d\n", mv, counts[mv])
			nodes += counts[mv]
		}
		p.Fprintf(cfg.OutputFile, "moves %d\n", len(moves))
		if err != nil {
			p.Fprintf(cfg.OutputFile, "nodes %d (interrupted)\n", nodes)
			return nodes, err
		}
	} else {
		nodes = engine.Perft(board, toMove, depth)
	}
	elapsed := time.Since(start)

	p.Fprintf(cfg.OutputFile, "nodes %d\n", nodes)
	if cfg.Verbosity > 0 {
		p.Fprintf(cfg.LogFile, "perft(%d) %d nodes in %.3fs (%d n/s)\n",
			depth, nodes, elapsed.Seconds(), int(float64(nodes)/elapsed.Seconds()))
	}
	return nodes, nil
}
