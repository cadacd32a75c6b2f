// Package chess provides core chess types and operations.
package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesscore/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// MarshalText implements encoding.TextMarshaler as "white" or "black".
func (c Colour) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(c.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Colour) UnmarshalText(text []byte) error {
	colour, ok := ParseColour(string(text))
	if !ok {
		return fmt.Errorf("unknown colour %q", text)
	}
	*c = colour
	return nil
}

// ParseColour converts "w"/"white" or "b"/"black" to a colour.
func ParseColour(s string) (Colour, bool) {
	switch strings.ToLower(s) {
	case "w", "white":
		return White, true
	case "b", "black":
		return Black, true
	}
	return Black, false
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank of the colour.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// Kind is the movement variant of a piece.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// MarshalText implements encoding.TextMarshaler as the lowercase name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(k.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind := Pawn; kind <= King; kind++ {
		if strings.EqualFold(kind.String(), string(text)) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown piece kind %q", text)
}

// Notation returns the piece symbol used in move notation.
// Pawns have no symbol and report a blank.
func (k Kind) Notation() byte {
	letters := []byte{' ', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Letter returns the uppercase FEN letter of a kind.
func (k Kind) Letter() byte {
	if k == Pawn {
		return 'P'
	}
	return k.Notation()
}

// KindFromLetter converts a FEN letter (either case) to a kind.
func KindFromLetter(c byte) (Kind, bool) {
	switch c {
	case 'P', 'p':
		return Pawn, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return 0, false
}

// Board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileBase = 'a'
	RankBase = '1'
)

// Position is a (file, rank) pair, both in [0,7].
// File 0 is the a-file, rank 0 is White's back rank.
type Position struct {
	File int
	Rank int
}

// NewPosition returns the position for file and rank.
// It panics if either coordinate is off the board.
func NewPosition(file, rank int) Position {
	if !OnBoard(file, rank) {
		panic(fmt.Sprintf("chess: position (%d,%d) off the board", file, rank))
	}
	return Position{File: file, Rank: rank}
}

// PositionFromIndex returns the position for a 0-63 square index.
func PositionFromIndex(i int) Position {
	return NewPosition(i%BoardSize, i/BoardSize)
}

// OnBoard reports whether file and rank are both in range.
func OnBoard(file, rank int) bool {
	return file >= 0 && file < BoardSize && rank >= 0 && rank < BoardSize
}

// ParseSquare converts algebraic notation such as "e4" to a position.
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	file := int(s[0]) - FileBase
	rank := int(s[1]) - RankBase
	if !OnBoard(file, rank) {
		return Position{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	return Position{File: file, Rank: rank}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
func MustParseSquare(s string) Position {
	p, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Index returns the 0-63 square index (rank*8 + file).
func (p Position) Index() int {
	return p.Rank*BoardSize + p.File
}

// Offset returns the position shifted by df files and dr ranks.
// ok is false when the result leaves the board.
func (p Position) Offset(df, dr int) (Position, bool) {
	f, r := p.File+df, p.Rank+dr
	if !OnBoard(f, r) {
		return Position{}, false
	}
	return Position{File: f, Rank: r}, true
}

// String returns the algebraic name of the square.
func (p Position) String() string {
	return string([]byte{byte(FileBase + p.File), byte(RankBase + p.Rank)})
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Position) UnmarshalText(text []byte) error {
	pos, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*p = pos
	return nil
}
