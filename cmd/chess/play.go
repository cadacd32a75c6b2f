package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/render"
	"github.com/lgbarn/chesscore/internal/session"
)

// player runs the interactive command loop for one game.
type player struct {
	cfg  *config.Config
	game *session.Session
	out  io.Writer
}

func newPlayer(cfg *config.Config, game *session.Session) *player {
	return &player{cfg: cfg, game: game, out: cfg.OutputFile}
}

// run reads commands from in until quit or end of input.
func (p *player) run(in io.Reader) error {
	p.showBoard()
	p.prompt()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		quit, err := p.exec(scanner.Text())
		if err != nil {
			fmt.Fprintf(p.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
		p.prompt()
	}
	return scanner.Err()
}

func (p *player) prompt() {
	fmt.Fprintf(p.out, "%s> ", p.game.ToMove())
}

// exec runs one command line.
func (p *player) exec(line string) (bool, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false, nil
	}

	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "board":
		p.showBoard()
	case "fen":
		fmt.Fprintln(p.out, p.game.FEN())
	case "history":
		p.showHistory()
	case "deselect":
		p.game.Deselect()
		p.showBoard()
	case "select":
		pos, err := squareArg(cmd, args)
		if err != nil {
			return false, err
		}
		if _, err := p.game.Select(pos); err != nil {
			return false, err
		}
		p.showBoard()
	case "to":
		pos, err := squareArg(cmd, args)
		if err != nil {
			return false, err
		}
		if _, ok := p.game.Selected(); !ok {
			return false, fmt.Errorf("no piece selected")
		}
		if !p.game.MoveTo(pos) {
			p.showBoard()
			return false, fmt.Errorf("cannot move there")
		}
		p.afterMove()
	case "moves":
		pos, err := squareArg(cmd, args)
		if err != nil {
			return false, err
		}
		targets, err := p.game.ValidMoves(pos)
		if err != nil {
			return false, err
		}
		names := make([]string, 0, len(targets))
		for _, t := range targets {
			names = append(names, t.String())
		}
		fmt.Fprintf(p.out, "%s: %s\n", pos, strings.Join(names, " "))
	default:
		from, to, err := parseMove(cmd)
		if err != nil {
			return false, fmt.Errorf("unknown command %q", line)
		}
		if _, err := p.game.Move(from, to); err != nil {
			return false, err
		}
		p.afterMove()
	}
	return false, nil
}

func (p *player) afterMove() {
	p.showBoard()
	switch status := p.game.Status(); status {
	case engine.Check:
		fmt.Fprintf(p.out, "%s is in check\n", p.game.ToMove())
	case engine.Checkmate:
		fmt.Fprintf(p.out, "checkmate, %s wins\n", p.game.ToMove().Opposite())
	case engine.Stalemate:
		fmt.Fprintln(p.out, "stalemate, draw")
	}
}

func (p *player) showBoard() {
	opts := render.Options{
		Color:   p.cfg.Display.Color,
		Unicode: p.cfg.Display.Unicode,
	}
	if pos, ok := p.game.Selected(); ok {
		opts.Selected = &pos
	}
	fmt.Fprint(p.out, render.Text(p.game.Board(), opts))
}

func (p *player) showHistory() {
	for i, r := range p.game.History() {
		if i%2 == 0 {
			fmt.Fprintf(p.out, "%d. ", i/2+1)
		}
		fmt.Fprintf(p.out, "%s ", r.UCI())
	}
	fmt.Fprintln(p.out)
}

// squareArg parses the single square argument of cmd.
func squareArg(cmd string, args []string) (chess.Position, error) {
	if len(args) != 1 {
		return chess.Position{}, fmt.Errorf("usage: %s <square>", cmd)
	}
	return chess.ParseSquare(args[0])
}

// parseMove reads "e2e4", "e2-e4" or "e7e8q". The promotion letter is
// accepted but pawns always become queens.
func parseMove(s string) (chess.Position, chess.Position, error) {
	s = strings.ReplaceAll(s, "-", "")
	if len(s) == 5 && s[4] == 'q' {
		s = s[:4]
	}
	if len(s) != 4 {
		return chess.Position{}, chess.Position{}, fmt.Errorf("bad move %q", s)
	}
	from, err := chess.ParseSquare(s[:2])
	if err != nil {
		return chess.Position{}, chess.Position{}, err
	}
	to, err := chess.ParseSquare(s[2:])
	if err != nil {
		return chess.Position{}, chess.Position{}, err
	}
	return from, to, nil
}
