// Package render draws boards for terminals.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chesscore/internal/chess"
)

// Options controls how a board is drawn.
type Options struct {
	// Color enables ANSI square colours.
	Color bool

	// Unicode draws pieces as chess symbols instead of FEN letters.
	Unicode bool

	// Selected marks the square of the selected piece.
	Selected *chess.Position

	// Flip draws the board from Black's side.
	Flip bool
}

var unicodeSymbols = map[chess.Colour][6]string{
	chess.White: {"♙", "♘", "♗", "♖", "♕", "♔"},
	chess.Black: {"♟", "♞", "♝", "♜", "♛", "♚"},
}

// palette holds the square colours used in colour mode.
type palette struct {
	light, dark, highlight, selected *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		light:     color.New(color.FgBlack, color.BgHiWhite),
		dark:      color.New(color.FgBlack, color.BgGreen),
		highlight: color.New(color.FgBlack, color.BgYellow),
		selected:  color.New(color.FgBlack, color.BgCyan, color.Bold),
	}
	for _, c := range []*color.Color{p.light, p.dark, p.highlight, p.selected} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Symbol returns the symbol drawn for p.
func Symbol(p *chess.Piece, unicode bool) string {
	if p == nil {
		return " "
	}
	if unicode {
		return unicodeSymbols[p.Colour][p.Kind]
	}
	return string(p.Letter())
}

// Text draws b rank 8 first (rank 1 first when flipped) with file letters
// underneath. Without colour, highlighted squares are bracketed with
// parentheses and the selected square with square brackets.
func Text(b *chess.Board, opts Options) string {
	pal := newPalette(opts.Color)

	var sb strings.Builder
	for i := 0; i < chess.BoardSize; i++ {
		rank := chess.BoardSize - 1 - i
		if opts.Flip {
			rank = i
		}
		fmt.Fprintf(&sb, " %d ", rank+1)
		for j := 0; j < chess.BoardSize; j++ {
			file := j
			if opts.Flip {
				file = chess.BoardSize - 1 - j
			}
			sb.WriteString(cell(b.SquareAt(file, rank), opts, pal))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("   ")
	for j := 0; j < chess.BoardSize; j++ {
		file := j
		if opts.Flip {
			file = chess.BoardSize - 1 - j
		}
		fmt.Fprintf(&sb, " %c ", chess.FileBase+file)
	}
	sb.WriteByte('\n')
	return sb.String()
}

func cell(sq *chess.Square, opts Options, pal palette) string {
	sym := Symbol(sq.Occupant, opts.Unicode)
	selected := opts.Selected != nil && *opts.Selected == sq.Pos

	if !opts.Color {
		switch {
		case selected:
			return "[" + sym + "]"
		case sq.Highlight:
			if sq.Occupant == nil {
				sym = "."
			}
			return "(" + sym + ")"
		case sq.Occupant == nil && (sq.Pos.File+sq.Pos.Rank)%2 == 0:
			return " - "
		}
		return " " + sym + " "
	}

	text := " " + sym + " "
	switch {
	case selected:
		return pal.selected.Sprint(text)
	case sq.Highlight:
		return pal.highlight.Sprint(text)
	case (sq.Pos.File+sq.Pos.Rank)%2 == 0:
		return pal.dark.Sprint(text)
	}
	return pal.light.Sprint(text)
}
