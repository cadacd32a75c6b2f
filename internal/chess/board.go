package chess

// Piece is a chess man on the board.
type Piece struct {
	Kind   Kind     `json:"kind"`
	Colour Colour   `json:"colour"`
	Pos    Position `json:"pos"`

	// HasMoved is set by the first committed move and never reset.
	HasMoved bool `json:"hasMoved"`
}

// NewPiece creates an unmoved piece at pos.
func NewPiece(kind Kind, colour Colour, pos Position) *Piece {
	return &Piece{Kind: kind, Colour: colour, Pos: pos}
}

// Letter returns the FEN letter of the piece, lowercase for Black.
func (p *Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns a short description such as "White Knight g1".
func (p *Piece) String() string {
	return p.Colour.String() + " " + p.Kind.String() + " " + p.Pos.String()
}

// Square is a single board cell.
type Square struct {
	Pos Position

	// Occupant is the piece standing on the square, nil when empty.
	Occupant *Piece

	// Highlight is transient display state, not part of the position.
	Highlight bool
}

// Empty reports whether nothing stands on the square.
func (s *Square) Empty() bool {
	return s.Occupant == nil
}

// Board holds the 64 squares and, through them, every live piece.
type Board struct {
	squares [NumSquares]Square
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	b := &Board{}
	for i := range b.squares {
		b.squares[i].Pos = PositionFromIndex(i)
	}
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	for i := range b.squares {
		b.squares[i].Occupant = nil
		b.squares[i].Highlight = false
	}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Place(NewPiece(backRank[file], White, NewPosition(file, 0)))
		b.Place(NewPiece(Pawn, White, NewPosition(file, 1)))
		b.Place(NewPiece(Pawn, Black, NewPosition(file, 6)))
		b.Place(NewPiece(backRank[file], Black, NewPosition(file, 7)))
	}
}

// Square returns the cell at pos.
func (b *Board) Square(pos Position) *Square {
	return &b.squares[pos.Index()]
}

// SquareAt returns the cell at file and rank.
func (b *Board) SquareAt(file, rank int) *Square {
	return b.Square(NewPosition(file, rank))
}

// PieceAt returns the piece at pos, or nil.
func (b *Board) PieceAt(pos Position) *Piece {
	return b.squares[pos.Index()].Occupant
}

// Place puts p on the square named by p.Pos, replacing any occupant.
func (b *Board) Place(p *Piece) {
	b.squares[p.Pos.Index()].Occupant = p
}

// Remove empties the square at pos and returns what stood there.
func (b *Board) Remove(pos Position) *Piece {
	sq := &b.squares[pos.Index()]
	p := sq.Occupant
	sq.Occupant = nil
	return p
}

// Squares returns pointers to all 64 cells in index order.
func (b *Board) Squares() []*Square {
	out := make([]*Square, NumSquares)
	for i := range b.squares {
		out[i] = &b.squares[i]
	}
	return out
}

// Pieces returns the pieces of colour in square index order.
func (b *Board) Pieces(colour Colour) []*Piece {
	var out []*Piece
	for i := range b.squares {
		if p := b.squares[i].Occupant; p != nil && p.Colour == colour {
			out = append(out, p)
		}
	}
	return out
}

// King returns the king of colour, or nil if it is not on the board.
func (b *Board) King(colour Colour) *Piece {
	for i := range b.squares {
		if p := b.squares[i].Occupant; p != nil && p.Kind == King && p.Colour == colour {
			return p
		}
	}
	return nil
}

// Count returns the number of pieces on the board.
func (b *Board) Count() int {
	n := 0
	for i := range b.squares {
		if b.squares[i].Occupant != nil {
			n++
		}
	}
	return n
}

// ClearHighlights resets the highlight flag on every square.
func (b *Board) ClearHighlights() {
	for i := range b.squares {
		b.squares[i].Highlight = false
	}
}

// Highlighted returns the positions of highlighted squares.
func (b *Board) Highlighted() []Position {
	var out []Position
	for i := range b.squares {
		if b.squares[i].Highlight {
			out = append(out, b.squares[i].Pos)
		}
	}
	return out
}

// Clone creates a deep copy of the board, pieces included.
func (b *Board) Clone() *Board {
	nb := &Board{}
	nb.squares = b.squares
	for i := range nb.squares {
		if p := nb.squares[i].Occupant; p != nil {
			cp := *p
			nb.squares[i].Occupant = &cp
		}
	}
	return nb
}

// Grid is a shallow snapshot of the occupants, indexed like the squares.
// Pieces are shared with the board they came from and must not be mutated.
type Grid [NumSquares]*Piece

// Grid returns the current occupant snapshot.
func (b *Board) Grid() Grid {
	var g Grid
	for i := range b.squares {
		g[i] = b.squares[i].Occupant
	}
	return g
}

// At returns the occupant at pos.
func (g *Grid) At(pos Position) *Piece {
	return g[pos.Index()]
}

// Move relocates whatever stands at from onto to.
func (g *Grid) Move(from, to Position) {
	g[to.Index()] = g[from.Index()]
	g[from.Index()] = nil
}
