package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	sentinels := []error{
		ErrInvalidFEN, ErrInvalidSquare, ErrIllegalMove, ErrNoPiece,
		ErrNotYourTurn, ErrGameOver, ErrGameNotFound, ErrInvalidConfig,
	}
	for _, sentinel := range sentinels {
		wrapped := fmt.Errorf("context: %w", sentinel)
		if !errors.Is(wrapped, sentinel) {
			t.Errorf("errors.Is(wrapped, %v) = false, want true", sentinel)
		}
	}
}

func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *MoveError
		want string
	}{
		{
			name: "full context",
			err:  &MoveError{Err: ErrIllegalMove, From: "e2", To: "e5", Ply: 3},
			want: "ply 3, move e2-e5: illegal move",
		},
		{
			name: "no ply",
			err:  &MoveError{Err: ErrNotYourTurn, From: "e7", To: "e5"},
			want: "move e7-e5: not your turn",
		},
		{
			name: "bare error",
			err:  &MoveError{Err: ErrGameOver},
			want: "game is over",
		},
		{
			name: "no underlying error",
			err:  &MoveError{From: "a1", To: "a2"},
			want: "move a1-a2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("MoveError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMoveError_Unwrap(t *testing.T) {
	err := fmt.Errorf("session: %w", &MoveError{Err: ErrIllegalMove, From: "e1", To: "e3"})

	if !errors.Is(err, ErrIllegalMove) {
		t.Error("errors.Is(err, ErrIllegalMove) = false, want true")
	}
	var me *MoveError
	if !errors.As(err, &me) {
		t.Fatal("errors.As(err, *MoveError) = false, want true")
	}
	if me.From != "e1" || me.To != "e3" {
		t.Errorf("MoveError squares = %s-%s, want e1-e3", me.From, me.To)
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) should be nil")
	}
	if Wrapf(nil, "ctx %d", 1) != nil {
		t.Error("Wrapf(nil) should be nil")
	}

	err := Wrapf(ErrInvalidFEN, "loading %s", "start.fen")
	if !errors.Is(err, ErrInvalidFEN) {
		t.Error("errors.Is(Wrapf(...), ErrInvalidFEN) = false, want true")
	}
	if !strings.HasPrefix(err.Error(), "loading start.fen: ") {
		t.Errorf("Wrapf() = %q, want prefix %q", err.Error(), "loading start.fen: ")
	}
}
