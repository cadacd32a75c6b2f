package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
)

// The helpers take a *testing.T, so only passing cases can be exercised
// here. Failure output is covered through formatMessage and fail's prefix.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, chess.White.Opposite(), chess.Black)
	AssertEqual(t, MustPos(t, "e4"), chess.NewPosition(4, 3), "square %s", "e4")
	AssertEqual(t, []string{"d1", "f2"}, []string{"d1", "f2"})
	AssertEqual(t, nil, nil)
}

func TestAssertError_Success(t *testing.T) {
	_, err := chess.ParseSquare("i9")
	AssertError(t, err)
	AssertNoError(t, nil, "nil error")

	base := errors.New("base")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", base), base)
	AssertErrorIs(t, nil, nil)
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "ply 3, move e2-e5: illegal move", "illegal move")
	AssertContains(t, "e2e4", "")
	AssertNotContains(t, "White", "Black")
}

func TestAssertBool_Success(t *testing.T) {
	AssertTrue(t, chess.OnBoard(7, 7))
	AssertFalse(t, chess.OnBoard(8, 0), "file 8 is off the board")
}

func TestAssertNil_Success(t *testing.T) {
	b := chess.NewBoard()
	var p *chess.Piece
	AssertNil(t, p)
	AssertNil(t, b.PieceAt(MustPos(t, "e4")))
	AssertNotNil(t, b)
	AssertNotNil(t, []int{})
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"plain string", []interface{}{"castling"}, "castling"},
		{"non-string", []interface{}{chess.White}, "White"},
		{"format", []interface{}{"ValidMoves(%s)", "e1"}, "ValidMoves(e1)"},
		{"format several", []interface{}{"%s to %s, ply %d", "e2", "e4", 1}, "e2 to e4, ply 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
