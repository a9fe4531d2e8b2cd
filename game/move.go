package game

import "fmt"

// Move records one piece travelling between two squares of a board. The
// captured piece is whatever stood on End when the move was created.
// A Move is not changed after it is applied.
type Move struct {
	Player   Player
	Start    *Square
	End      *Square
	Moved    *Piece
	Captured *Piece
}

// NewMove snapshots the pieces currently on start and end.
func NewMove(player Player, start, end *Square) Move {
	return Move{
		Player:   player,
		Start:    start,
		End:      end,
		Moved:    start.Piece,
		Captured: end.Piece,
	}
}

// From returns the start coordinate.
func (m Move) From() Position { return m.Start.Pos }

// To returns the destination coordinate.
func (m Move) To() Position { return m.End.Pos }

// IsCapture reports whether the move takes an opposing piece.
func (m Move) IsCapture() bool {
	return m.Captured != nil && m.Moved != nil && m.Captured.Color != m.Moved.Color
}

func (m Move) String() string {
	return fmt.Sprintf("%v %v %v", m.Moved, m.Start, m.End)
}

// Notation returns the move in coordinate notation, e.g. "e2e4".
func (m Move) Notation() string {
	return m.From().String() + m.To().String()
}

// Apply performs m on b: the start square is vacated, any piece on the
// destination is marked captured and replaced by the mover. The captured
// piece, if any, is returned.
func (b *Board) Apply(m Move) *Piece {
	start, end := b.At(m.From()), b.At(m.To())
	captured := end.Piece
	start.Piece = nil
	if captured != nil {
		captured.Captured = true
	}
	end.Piece = m.Moved
	return captured
}
