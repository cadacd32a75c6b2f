package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardFromFEN creates a board from a FEN string and returns it with the
// side to move.
//
// The castling field decides which kings and rooks count as unmoved; pawns
// away from their starting rank count as moved. En passant and the move
// clocks are accepted but carry no meaning for this engine.
func NewBoardFromFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}

	if err := parseCastlingRights(board, parts); err != nil {
		return nil, chess.White, err
	}

	return board, toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	kings := map[chess.Colour]int{}
	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			if c > unicode.MaxASCII {
				return fmt.Errorf("invalid piece character: %q: %w", c, errors.ErrInvalidFEN)
			}
			kind, ok := chess.KindFromLetter(byte(c))
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file >= chess.BoardSize {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			p := chess.NewPiece(kind, colour, chess.NewPosition(file, rank))
			if kind == chess.Pawn {
				p.HasMoved = rank != pawnStartRank(colour)
			}
			if kind == chess.King {
				kings[colour]++
				// Kings and rooks start out moved; castling rights clear it.
				p.HasMoved = true
			}
			if kind == chess.Rook {
				p.HasMoved = true
			}
			board.Place(p)
			file++
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}

	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return fmt.Errorf("need exactly one king per side: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// pawnStartRank returns the rank an unmoved pawn of colour stands on.
func pawnStartRank(colour chess.Colour) int {
	return colour.HomeRank() + colour.Forward()
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
}

// parseCastlingRights parses the castling availability field, marking the
// named king and rook as unmoved.
func parseCastlingRights(board *chess.Board, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		colour := chess.White
		if unicode.IsLower(c) {
			colour = chess.Black
		}
		var rookFile int
		switch unicode.ToUpper(c) {
		case 'K':
			rookFile = kingsideRookFile
		case 'Q':
			rookFile = queensideRookFile
		default:
			return fmt.Errorf("invalid castling right: %c: %w", c, errors.ErrInvalidFEN)
		}

		rank := colour.HomeRank()
		king := board.King(colour)
		rook := board.PieceAt(chess.NewPosition(rookFile, rank))
		if king == nil || king.Pos.Rank != rank || rook == nil || rook.Kind != chess.Rook || rook.Colour != colour {
			// Rights naming absent pieces are ignored.
			continue
		}
		king.HasMoved = false
		rook.HasMoved = false
	}
	return nil
}

// FEN converts a board to a FEN string with empty en passant field and
// reset clocks. Castling rights are derived from the HasMoved flags.
func FEN(board *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteString(" - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			p := board.PieceAt(chess.NewPosition(file, rank))
			if p == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, side := range []struct {
			file   int
			letter byte
		}{{kingsideRookFile, 'K'}, {queensideRookFile, 'Q'}} {
			if !canStillCastle(board, colour, side.file) {
				continue
			}
			letter := side.letter
			if colour == chess.Black {
				letter += 'a' - 'A'
			}
			sb.WriteByte(letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// canStillCastle reports whether colour keeps the right to castle with the
// rook on rookFile: both pieces are on the home rank and unmoved.
func canStillCastle(board *chess.Board, colour chess.Colour, rookFile int) bool {
	rank := colour.HomeRank()
	king := board.King(colour)
	if king == nil || king.HasMoved || king.Pos.Rank != rank {
		return false
	}
	rook := board.PieceAt(chess.NewPosition(rookFile, rank))
	return rook != nil && rook.Kind == chess.Rook && rook.Colour == colour && !rook.HasMoved
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
