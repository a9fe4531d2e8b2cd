package game

// Color is the side a piece or player belongs to.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Forward is the rank direction pawns of this color advance in.
func (c Color) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// Kind identifies a piece variant.
type Kind uint8

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	numKinds
)

var kindNames = [numKinds]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "Unknown"
}

// Slides reports whether the piece moves along rays (bishop, rook, queen).
func (k Kind) Slides() bool {
	return k == Bishop || k == Rook || k == Queen
}

// PieceValues holds the material value of every piece kind.
type PieceValues [numKinds]int

// DefaultValues are the material values the scripted opponent plays with.
// Bishop shares the rook's value and the queen is 9; both can be overridden.
var DefaultValues = PieceValues{
	Pawn:   1,
	Knight: 4,
	Bishop: 5,
	Rook:   5,
	Queen:  9,
	King:   25,
}

// Piece is a single chessman. Pieces are shared by pointer: a board square
// refers to at most one piece and a piece sits on at most one square.
type Piece struct {
	Kind     Kind
	Color    Color
	Value    int
	Captured bool
}

// NewPiece creates a piece valued with DefaultValues.
func NewPiece(kind Kind, color Color) *Piece {
	return DefaultValues.New(kind, color)
}

// New creates a piece of the given kind valued from v.
func (v PieceValues) New(kind Kind, color Color) *Piece {
	return &Piece{Kind: kind, Color: color, Value: v[kind]}
}

func (p *Piece) String() string {
	if p.Color == White {
		return "(W) " + p.Kind.String()
	}
	return "(B) " + p.Kind.String()
}

// Player identifies who is moving: a color plus whether a human is at the controls.
type Player struct {
	Color Color
	Human bool
}
