// chessd serves chess games over HTTP, with live updates over WebSocket.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/httpx"
	"github.com/lgbarn/chesscore/internal/session"
)

var (
	addr      = flag.String("addr", ":3000", "Listen address")
	origins   = flag.String("origins", "*", "Comma-separated CORS origins")
	startFEN  = flag.String("fen", "", "Default starting position for new games")
	verbosity = flag.Int("v", 1, "Verbosity: 0=quiet, 1=requests and game events, 2=every move")
	logFile   = flag.String("log", "", "Write diagnostics to this file (default: stderr)")
	help      = flag.Bool("h", false, "Show help")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	cfg := buildConfig()
	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	games := session.NewManager(session.WithLog(cfg.LogFile, cfg.Verbosity))
	srv := httpx.New(cfg, games)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		if cfg.Verbosity > 0 {
			fmt.Fprintf(cfg.LogFile, "shutting down, %d games open\n", games.Len())
		}
		if err := srv.Shutdown(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}()

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "listening on %s\n", cfg.Server.Addr)
	}
	if err := srv.Listen(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildConfig turns command-line flags into a configuration.
func buildConfig() *config.Config {
	return config.NewConfigBuilder().
		WithServerAddr(*addr).
		WithAllowOrigins(*origins).
		WithStartFEN(*startFEN).
		WithVerbosity(*verbosity).
		Build()
}

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
	fmt.Fprintf(os.Stderr, "Usage: chessd [options]\n\n")
	fmt.Fprintf(os.Stderr, "Serve chess games over HTTP and WebSocket.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nEndpoints:\n")
	fmt.Fprintf(os.Stderr, "  POST   /api/games                    start a game, body {\"fen\": ...} optional\n")
	fmt.Fprintf(os.Stderr, "  GET    /api/games/:id                game state\n")
	fmt.Fprintf(os.Stderr, "  DELETE /api/games/:id                end a game\n")
	fmt.Fprintf(os.Stderr, "  GET    /api/games/:id/moves/:square  legal destinations\n")
	fmt.Fprintf(os.Stderr, "  POST   /api/games/:id/moves          play {\"from\": \"e2\", \"to\": \"e4\"}\n")
	fmt.Fprintf(os.Stderr, "  GET    /ws/games/:id                 live state stream\n")
}
