// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/fatih/color"

	"github.com/lgbarn/chesscore/internal/config"
)

var (
	// Game options
	startFEN = flag.String("fen", "", "Starting position in FEN (default: standard position)")

	// Perft options
	perftDepth   = flag.Int("perft", 0, "Count leaf nodes of the move tree to this depth and exit")
	perftDivide  = flag.Bool("divide", false, "With -perft, report counts per root move")
	perftWorkers = flag.Int("workers", 0, "With -divide, number of worker goroutines (default: number of CPUs)")

	// Display options
	noColor      = flag.Bool("nocolor", false, "Disable ANSI colours")
	unicodeBoard = flag.Bool("unicode", false, "Draw pieces as chess symbols")

	// Logging options
	verbosity = flag.Int("v", 1, "Verbosity: 0=quiet, 1=game events, 2=every move")
	logFile   = flag.String("log", "", "Write diagnostics to this file (default: stderr)")

	// Information
	help = flag.Bool("h", false, "Show help")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Game.StartFEN = *startFEN
	cfg.Verbosity = *verbosity

	applyPerftFlags(cfg)
	applyDisplayFlags(cfg)
}

// applyPerftFlags configures perft settings.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *perftDivide
	if *perftWorkers != 0 {
		cfg.Perft.Workers = *perftWorkers
	}
}

// applyDisplayFlags configures board drawing. Colour is also off when
// stdout is not a terminal.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.Color = !*noColor && !color.NoColor
	cfg.Display.Unicode = *unicodeBoard
}
