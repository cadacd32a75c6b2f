package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
)

func TestRunPerft(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().
		WithPerft(3, false, 1).
		WithOutput(out).
		WithLog(io.Discard).
		Build()

	board := chess.NewBoard()
	board.SetupInitialPosition()

	got, err := runPerft(context.Background(), cfg, board, chess.White)
	if err != nil {
		t.Fatalf("runPerft() error = %v", err)
	}
	if got != 8902 {
		t.Errorf("runPerft() = %d, want 8902", got)
	}
	if got := out.String(); got != "nodes 8,902\n" {
		t.Errorf("output = %q", got)
	}
}

func TestRunPerftDivide(t *testing.T) {
	out := &bytes.Buffer{}
	log := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().
		WithPerft(2, true, 3).
		WithOutput(out).
		WithLog(log).
		WithVerbosity(1).
		Build()

	board := chess.NewBoard()
	board.SetupInitialPosition()

	got, err := runPerft(context.Background(), cfg, board, chess.White)
	if err != nil {
		t.Fatalf("runPerft() error = %v", err)
	}
	if got != 400 {
		t.Errorf("runPerft() = %d, want 400", got)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 22 {
		t.Fatalf("got %d lines, want 22:\n%s", len(lines), out.String())
	}
	if lines[0] != "a2a3: 20" {
		t.Errorf("first line = %q, want a2a3: 20", lines[0])
	}
	if lines[20] != "moves 20" || lines[21] != "nodes 400" {
		t.Errorf("summary = %q", lines[20:])
	}
	if !strings.Contains(log.String(), "perft(2) 400 nodes") {
		t.Errorf("log = %q", log.String())
	}
}

func TestRunPerftDivideInterrupted(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().
		WithPerft(3, true, 2).
		WithOutput(out).
		WithLog(io.Discard).
		WithVerbosity(0).
		Build()

	board := chess.NewBoard()
	board.SetupInitialPosition()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got, err := runPerft(ctx, cfg, board, chess.White)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("runPerft() error = %v, want context.Canceled", err)
	}
	if got != 0 {
		t.Errorf("runPerft() = %d, want 0", got)
	}
	if !strings.Contains(out.String(), "nodes 0 (interrupted)") {
		t.Errorf("output = %q", out.String())
	}
}
