// chess is a terminal chess board: play moves interactively or count the
// move tree with perft.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/session"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	game, err := session.NewFromFEN(cfg.Game.FEN(), session.WithLog(cfg.LogFile, cfg.Verbosity))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if cfg.Perft.Depth > 0 {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if _, err := runPerft(ctx, cfg, game.Board(), game.ToMove()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			stop()
			os.Exit(1)
		}
		return
	}

	if err := newPlayer(cfg, game).run(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess in the terminal or count positions with perft.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprintf(os.Stderr, "  e2e4       move the piece on e2 to e4\n")
	fmt.Fprintf(os.Stderr, "  select e2  select a piece and show where it can go\n")
	fmt.Fprintf(os.Stderr, "  to e4      move the selected piece\n")
	fmt.Fprintf(os.Stderr, "  deselect   drop the selection\n")
	fmt.Fprintf(os.Stderr, "  moves e2   list legal destinations of a piece\n")
	fmt.Fprintf(os.Stderr, "  board      redraw the board\n")
	fmt.Fprintf(os.Stderr, "  fen        print the position as FEN\n")
	fmt.Fprintf(os.Stderr, "  history    list the moves played\n")
	fmt.Fprintf(os.Stderr, "  quit       leave\n")
}
