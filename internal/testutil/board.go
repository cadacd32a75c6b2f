package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chesscore/internal/chess"
)

// SquareNames returns the algebraic names of squares, in the given order.
func SquareNames(squares []*chess.Square) []string {
	names := make([]string, 0, len(squares))
	for _, sq := range squares {
		names = append(names, sq.Pos.String())
	}
	return names
}

// AssertSquares compares the names of squares with want, ignoring order.
func AssertSquares(t *testing.T, squares []*chess.Square, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	less := func(a, b string) bool { return a < b }
	if diff := cmp.Diff(want, SquareNames(squares), cmpopts.SortSlices(less), cmpopts.EquateEmpty()); diff != "" {
		fail(t, msgAndArgs, "squares mismatch (-want +got):\n%s", diff)
	}
}

// MustPos parses an algebraic square name, failing the test on error.
func MustPos(t *testing.T, s string) chess.Position {
	t.Helper()
	pos, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", s, err)
	}
	return pos
}

// Setup builds a board from piece descriptors such as "wKe1" or "bRa8".
// A trailing "*" marks the piece as already moved, e.g. "wRh1*".
func Setup(t *testing.T, pieces ...string) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for _, d := range pieces {
		if len(d) != 4 && !(len(d) == 5 && d[4] == '*') {
			t.Fatalf("bad piece descriptor %q", d)
		}
		colour, ok := chess.ParseColour(d[:1])
		if !ok {
			t.Fatalf("bad colour in %q", d)
		}
		kind, ok := chess.KindFromLetter(d[1])
		if !ok {
			t.Fatalf("bad kind in %q", d)
		}
		p := chess.NewPiece(kind, colour, MustPos(t, d[2:4]))
		p.HasMoved = len(d) == 5
		b.Place(p)
	}
	return b
}
