package session

import (
	"bytes"
	stderrors "errors"
	"sync"
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/testutil"
)

func newSession(t *testing.T, fen string, opts ...Option) *Session {
	t.Helper()
	s, err := NewFromFEN(fen, opts...)
	if err != nil {
		t.Fatalf("NewFromFEN(%q): %v", fen, err)
	}
	return s
}

func pos(s string) chess.Position {
	return chess.MustParseSquare(s)
}

func TestNewFromFEN(t *testing.T) {
	s := newSession(t, "")
	testutil.AssertEqual(t, s.FEN(), engine.InitialFEN)
	testutil.AssertEqual(t, s.ToMove(), chess.White)
	testutil.AssertEqual(t, s.Status(), engine.Ongoing)
	testutil.AssertEqual(t, len(s.ID()), 36, "uuid")

	_, err := NewFromFEN("not a fen")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)

	other := newSession(t, "", WithID("fixed"))
	testutil.AssertEqual(t, other.ID(), "fixed")
}

func TestSelect(t *testing.T) {
	s := newSession(t, "")

	targets, err := s.Select(pos("g1"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, targets, []chess.Position{pos("f3"), pos("h3")})

	selected, ok := s.Selected()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, selected, pos("g1"))
	testutil.AssertEqual(t, s.Board().Highlighted(), []chess.Position{pos("f3"), pos("h3")})

	s.Deselect()
	_, ok = s.Selected()
	testutil.AssertFalse(t, ok)
	testutil.AssertEqual(t, len(s.Board().Highlighted()), 0)
}

func TestSelectErrors(t *testing.T) {
	s := newSession(t, "")

	_, err := s.Select(pos("e4"))
	testutil.AssertErrorIs(t, err, errors.ErrNoPiece)

	_, err = s.Select(pos("e7"))
	testutil.AssertErrorIs(t, err, errors.ErrNotYourTurn)

	_, ok := s.Selected()
	testutil.AssertFalse(t, ok)
}

func TestMoveTo(t *testing.T) {
	s := newSession(t, "")

	testutil.AssertFalse(t, s.MoveTo(pos("e4")), "nothing selected")

	_, err := s.Select(pos("e2"))
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, s.MoveTo(pos("e5")))
	_, ok := s.Selected()
	testutil.AssertFalse(t, ok, "rejected move keeps selection")
	testutil.AssertEqual(t, s.ToMove(), chess.White)

	_, err = s.Select(pos("e2"))
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, s.MoveTo(pos("e4")))
	_, ok = s.Selected()
	testutil.AssertFalse(t, ok, "accepted move keeps selection")
	testutil.AssertEqual(t, len(s.Board().Highlighted()), 0)
	testutil.AssertEqual(t, s.ToMove(), chess.Black)
	testutil.AssertEqual(t, len(s.History()), 1)
}

func TestMoveTurnOrder(t *testing.T) {
	s := newSession(t, "")

	_, err := s.Move(pos("e7"), pos("e5"))
	testutil.AssertErrorIs(t, err, errors.ErrNotYourTurn)

	res, err := s.Move(pos("e2"), pos("e4"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res.UCI(), "e2e4")

	_, err = s.Move(pos("d2"), pos("d4"))
	testutil.AssertErrorIs(t, err, errors.ErrNotYourTurn)

	_, err = s.Move(pos("e7"), pos("e5"))
	testutil.AssertNoError(t, err)
}

func TestMoveIllegal(t *testing.T) {
	s := newSession(t, "")
	before := s.FEN()

	_, err := s.Move(pos("e2"), pos("e5"))
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)

	var moveErr *errors.MoveError
	testutil.AssertTrue(t, stderrors.As(err, &moveErr))
	testutil.AssertEqual(t, moveErr.Ply, 1)
	testutil.AssertEqual(t, s.FEN(), before)
	testutil.AssertEqual(t, len(s.History()), 0)
}

func TestFoolsMate(t *testing.T) {
	var log bytes.Buffer
	s := newSession(t, "", WithLog(&log, 2))

	for _, m := range [][2]string{{"f2", "f3"}, {"e7", "e5"}, {"g2", "g4"}, {"d8", "h4"}} {
		_, err := s.Move(pos(m[0]), pos(m[1]))
		testutil.AssertNoError(t, err, "%s%s", m[0], m[1])
	}

	testutil.AssertEqual(t, s.Status(), engine.Checkmate)
	testutil.AssertContains(t, log.String(), "ply 4: Black d8h4")
	testutil.AssertContains(t, log.String(), "checkmate after 4 plies")

	_, err := s.Move(pos("a2"), pos("a3"))
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)
	_, err = s.Select(pos("a2"))
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)
}

func TestQuietLog(t *testing.T) {
	var log bytes.Buffer
	s := newSession(t, "", WithLog(&log, 0))
	_, err := s.Move(pos("e2"), pos("e4"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, log.String(), "")
}

func TestState(t *testing.T) {
	s := newSession(t, "5k2/8/8/8/8/8/8/4K2R w K - 0 1", WithID("g1"))

	st := s.State()
	testutil.AssertEqual(t, st.ID, "g1")
	testutil.AssertEqual(t, len(st.Pieces), 3)
	testutil.AssertNil(t, st.LastMove)
	testutil.AssertNil(t, st.Selected)
	testutil.AssertEqual(t, st.History, []string{})

	_, err := s.Select(pos("h1"))
	testutil.AssertNoError(t, err)
	st = s.State()
	testutil.AssertNotNil(t, st.Selected)
	testutil.AssertEqual(t, *st.Selected, pos("h1"))
	testutil.AssertEqual(t, len(st.Highlighted), 9)

	res, err := s.Move(pos("e1"), pos("g1"))
	testutil.AssertNoError(t, err)
	testutil.AssertNotNil(t, res.Castle)

	st = s.State()
	testutil.AssertEqual(t, st.History, []string{"e1g1"})
	testutil.AssertEqual(t, st.FEN, "5k2/8/8/8/8/8/8/5RK1 b - - 0 1")
	testutil.AssertEqual(t, st.Status, engine.Check)
	testutil.AssertNil(t, st.Selected)
}

func TestMoveState(t *testing.T) {
	s := newSession(t, "")
	_, err := s.Select(pos("g1"))
	testutil.AssertNoError(t, err)

	st, err := s.MoveState(pos("e2"), pos("e4"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, st.History, []string{"e2e4"})
	testutil.AssertNotNil(t, st.LastMove)
	testutil.AssertEqual(t, st.LastMove.UCI(), "e2e4")
	testutil.AssertEqual(t, st.ToMove, chess.Black)
	testutil.AssertNil(t, st.Selected)

	_, err = s.MoveState(pos("e4"), pos("e5"))
	testutil.AssertErrorIs(t, err, errors.ErrNotYourTurn)
	testutil.AssertEqual(t, len(s.History()), 1)
}

func TestMoveStateConcurrent(t *testing.T) {
	s := newSession(t, "")
	cycle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				mv := cycle[(i+offset)%len(cycle)]
				st, err := s.MoveState(pos(mv[:2]), pos(mv[2:]))
				if err != nil {
					continue
				}
				if st.LastMove == nil || st.LastMove.UCI() != mv || st.History[len(st.History)-1] != mv {
					t.Errorf("state after %s shows last move %v", mv, st.LastMove)
				}
			}
		}(g)
	}
	wg.Wait()
}

func TestValidMoves(t *testing.T) {
	s := newSession(t, "")

	got, err := s.ValidMoves(pos("b8"))
	testutil.AssertNoError(t, err, "either side may be queried")
	testutil.AssertEqual(t, got, []chess.Position{pos("a6"), pos("c6")})

	_, err = s.ValidMoves(pos("d4"))
	testutil.AssertErrorIs(t, err, errors.ErrNoPiece)
}

func TestBoardIsACopy(t *testing.T) {
	s := newSession(t, "")
	b := s.Board()
	b.Remove(pos("e2"))
	testutil.AssertEqual(t, s.FEN(), engine.InitialFEN)
}
