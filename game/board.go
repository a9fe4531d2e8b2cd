package game

import "fmt"

const (
	NumFiles = 8
	NumRanks = 8
)

// Position is a (file, rank) coordinate; X is the file, Y the rank.
// Rank 0 is White's back rank.
type Position struct {
	X, Y int
}

// InBounds reports whether p lies on the 8x8 grid.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < NumFiles && p.Y >= 0 && p.Y < NumRanks
}

// Add offsets p by d.
func (p Position) Add(d Position) Position {
	return Position{p.X + d.X, p.Y + d.Y}
}

// Coords renders the position as "(x, y)".
func (p Position) Coords() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Square is one cell of the board and the piece standing on it, if any.
type Square struct {
	Pos   Position
	Piece *Piece
}

// Empty reports whether no piece stands on the square.
func (s *Square) Empty() bool {
	return s.Piece == nil
}

func (s *Square) String() string {
	return s.Pos.Coords()
}

// Board is the 8x8 grid. Squares live for the life of the board; only their
// occupants change.
type Board struct {
	squares [NumRanks][NumFiles]Square
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	b := &Board{}
	for y := 0; y < NumRanks; y++ {
		for x := 0; x < NumFiles; x++ {
			b.squares[y][x].Pos = Position{x, y}
		}
	}
	return b
}

var backRank = [NumFiles]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewStandardBoard sets up the opening position. Black's king and queen are
// mirrored from White's, so the black king starts on (3, 7).
func NewStandardBoard() *Board {
	return NewStandardBoardWithValues(DefaultValues)
}

// NewStandardBoardWithValues is NewStandardBoard with custom piece values.
func NewStandardBoardWithValues(v PieceValues) *Board {
	b := NewBoard()
	for x := 0; x < NumFiles; x++ {
		b.squares[0][x].Piece = v.New(backRank[x], White)
		b.squares[1][x].Piece = v.New(Pawn, White)
		b.squares[6][x].Piece = v.New(Pawn, Black)
		b.squares[7][NumFiles-1-x].Piece = v.New(backRank[x], Black)
	}
	return b
}

// Get returns the square at (x, y), or nil when the coordinates are off the board.
func (b *Board) Get(x, y int) *Square {
	if !(Position{x, y}).InBounds() {
		return nil
	}
	return &b.squares[y][x]
}

// At returns the square at p, or nil when p is off the board.
func (b *Board) At(p Position) *Square {
	return b.Get(p.X, p.Y)
}

// Dimensions returns the number of files and ranks.
func (b *Board) Dimensions() (files, ranks int) {
	return NumFiles, NumRanks
}

// Place puts piece on (x, y), replacing whatever stood there.
func (b *Board) Place(x, y int, piece *Piece) error {
	sq := b.Get(x, y)
	if sq == nil {
		return fmt.Errorf("place at (%d, %d): %w", x, y, ErrOutOfBounds)
	}
	sq.Piece = piece
	return nil
}

// Partition scans the board once, rank by rank, and splits occupied squares
// into those holding own pieces and those holding opponent pieces.
func (b *Board) Partition(own Color) (ownSquares, oppSquares []*Square) {
	ownSquares = make([]*Square, 0, 16)
	oppSquares = make([]*Square, 0, 16)
	for y := 0; y < NumRanks; y++ {
		for x := 0; x < NumFiles; x++ {
			sq := &b.squares[y][x]
			if sq.Piece == nil {
				continue
			}
			if sq.Piece.Color == own {
				ownSquares = append(ownSquares, sq)
			} else {
				oppSquares = append(oppSquares, sq)
			}
		}
	}
	return ownSquares, oppSquares
}

// Clone deep-copies the board including its pieces.
func (b *Board) Clone() *Board {
	c := NewBoard()
	for y := 0; y < NumRanks; y++ {
		for x := 0; x < NumFiles; x++ {
			if p := b.squares[y][x].Piece; p != nil {
				cp := *p
				c.squares[y][x].Piece = &cp
			}
		}
	}
	return c
}
