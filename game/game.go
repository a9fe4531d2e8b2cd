package game

import "fmt"

// Game tracks a match on one board: whose turn it is, every move played and
// every piece taken. The match ends when a king is captured or the side to
// move forfeits.
type Game struct {
	board     *Board
	players   [2]Player
	turn      Color
	history   []Move
	captured  []*Piece
	forfeited bool
	loser     Color
}

// NewGame starts a match on board with White to move.
func NewGame(board *Board, white, black Player) *Game {
	white.Color, black.Color = White, Black
	return &Game{
		board:   board,
		players: [2]Player{White: white, Black: black},
		turn:    White,
	}
}

func (g *Game) Board() *Board         { return g.board }
func (g *Game) Turn() Color           { return g.turn }
func (g *Game) Player(c Color) Player { return g.players[c] }
func (g *Game) History() []Move       { return g.history }
func (g *Game) Captured() []*Piece    { return g.captured }

// SetTurn hands the move to c, e.g. after loading a position.
func (g *Game) SetTurn(c Color) { g.turn = c }

// Play validates and performs a move typed in by the side to move.
func (g *Game) Play(from, to Position) (Move, error) {
	if g.Over() {
		return Move{}, ErrGameOver
	}
	if !from.InBounds() || !to.InBounds() {
		return Move{}, fmt.Errorf("%v -> %v: %w", from.Coords(), to.Coords(), ErrOutOfBounds)
	}
	start, end := g.board.At(from), g.board.At(to)
	if start.Piece == nil {
		return Move{}, fmt.Errorf("%v: %w", from, ErrNoPiece)
	}
	if start.Piece.Color != g.turn {
		return Move{}, fmt.Errorf("%v belongs to %v: %w", from, start.Piece.Color, ErrNotYourTurn)
	}
	if !IsLegal(g.board, g.turn, start, end) {
		return Move{}, fmt.Errorf("%v %v -> %v: %w", start.Piece, from, to, ErrIllegalMove)
	}
	m := NewMove(g.players[g.turn], start, end)
	g.commit(m)
	return m, nil
}

// PlayMove performs a move chosen by a bot for the side to move. The move
// must have been generated from the current position.
func (g *Game) PlayMove(m Move) error {
	if g.Over() {
		return ErrGameOver
	}
	if m.Moved == nil || m.Player.Color != g.turn {
		return fmt.Errorf("%v: %w", m, ErrNotYourTurn)
	}
	start, end := g.board.At(m.From()), g.board.At(m.To())
	if start == nil || end == nil {
		return fmt.Errorf("%v: %w", m, ErrOutOfBounds)
	}
	if start.Piece != m.Moved || end.Piece != m.Captured || !IsLegal(g.board, g.turn, start, end) {
		return fmt.Errorf("%v: %w", m, ErrIllegalMove)
	}
	g.commit(m)
	return nil
}

func (g *Game) commit(m Move) {
	if captured := g.board.Apply(m); captured != nil {
		g.captured = append(g.captured, captured)
	}
	g.history = append(g.history, m)
	g.turn = g.turn.Other()
}

// KingCaptured reports whether either king has been taken.
func (g *Game) KingCaptured() bool {
	for _, p := range g.captured {
		if p.Kind == King {
			return true
		}
	}
	return false
}

// Forfeit ends the match in favour of the opponent of the side to move,
// typically because that side has no candidate moves left.
func (g *Game) Forfeit() {
	if g.Over() {
		return
	}
	g.forfeited, g.loser = true, g.turn
}

// Over reports whether the match has ended.
func (g *Game) Over() bool {
	return g.forfeited || g.KingCaptured()
}

// Winner returns the side that captured the opposing king, or the opponent
// of the side that forfeited.
func (g *Game) Winner() (Color, bool) {
	for _, p := range g.captured {
		if p.Kind == King {
			return p.Color.Other(), true
		}
	}
	if g.forfeited {
		return g.loser.Other(), true
	}
	return White, false
}
