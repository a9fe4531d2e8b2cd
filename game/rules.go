package game

// rule is the geometric predicate of one piece kind. The ownership gate has
// already passed when a rule runs.
type rule func(b *Board, p *Piece, start, end *Square) bool

var rules = [numKinds]rule{
	Pawn:   pawnMove,
	Knight: knightMove,
	Bishop: bishopMove,
	Rook:   rookMove,
	Queen:  queenMove,
	King:   kingMove,
}

// IsLegal reports whether mover may move the piece on start to end under
// raw movement rules. Check, castling, en passant and promotion are not modelled.
func IsLegal(b *Board, mover Color, start, end *Square) bool {
	if start == nil || end == nil || start.Piece == nil || start.Piece.Color != mover {
		return false
	}
	return rules[start.Piece.Kind](b, start.Piece, start, end)
}

// IsLegalAt is IsLegal on coordinates. Off-board coordinates are never legal.
func IsLegalAt(b *Board, mover Color, from, to Position) bool {
	return IsLegal(b, mover, b.At(from), b.At(to))
}

// Walk follows a ray for a piece of color c, starting at at and stepping by
// dir. Every empty square is passed to visit, as is the first square holding
// an opposing piece. The ray stops there, at an own piece, at the edge of the
// board, or when visit returns false. The opposing square that stopped the
// ray is returned, nil otherwise.
func Walk(b *Board, c Color, at, dir Position, visit func(*Square) bool) *Square {
	sq := b.At(at)
	if sq == nil {
		return nil
	}
	if sq.Piece != nil {
		if sq.Piece.Color == c {
			return nil
		}
		if visit != nil {
			visit(sq)
		}
		return sq
	}
	if visit != nil && !visit(sq) {
		return nil
	}
	return Walk(b, c, at.Add(dir), dir, visit)
}

func pawnMove(b *Board, p *Piece, start, end *Square) bool {
	if friendly(p, end) {
		return false
	}
	dx, dy := delta(start, end)
	if dy*p.Color.Forward() <= 0 || abs(dy) > 2 || abs(dx) > 1 {
		return false
	}
	if abs(dx) == 1 {
		return abs(dy) == 1 && end.Piece != nil
	}
	// No home-rank requirement: a pawn may advance two whenever both squares are free.
	front := b.Get(start.Pos.X, start.Pos.Y+p.Color.Forward())
	return front != nil && front.Empty() && end.Empty()
}

func knightMove(_ *Board, p *Piece, start, end *Square) bool {
	if friendly(p, end) {
		return false
	}
	dx, dy := delta(start, end)
	return abs(dx)*abs(dy) == 2
}

func bishopMove(b *Board, p *Piece, start, end *Square) bool {
	dx, dy := delta(start, end)
	if abs(dx) != abs(dy) || dx == 0 {
		return false
	}
	return slide(b, p, start, end, Position{sign(dx), sign(dy)})
}

func rookMove(b *Board, p *Piece, start, end *Square) bool {
	dx, dy := delta(start, end)
	if (dx == 0) == (dy == 0) {
		return false
	}
	return slide(b, p, start, end, Position{sign(dx), sign(dy)})
}

func queenMove(b *Board, p *Piece, start, end *Square) bool {
	return bishopMove(b, p, start, end) || rookMove(b, p, start, end)
}

func kingMove(_ *Board, p *Piece, start, end *Square) bool {
	if friendly(p, end) {
		return false
	}
	dx, dy := delta(start, end)
	if abs(dx) == 1 && abs(dy) == 1 {
		return end.Piece != nil
	}
	return abs(dx)+abs(dy) == 1
}

// slide reports whether end is reachable from start along dir.
func slide(b *Board, p *Piece, start, end *Square, dir Position) bool {
	reached := false
	Walk(b, p.Color, start.Pos.Add(dir), dir, func(sq *Square) bool {
		if sq == end {
			reached = true
			return false
		}
		return true
	})
	return reached
}

func friendly(p *Piece, sq *Square) bool {
	return sq.Piece != nil && sq.Piece.Color == p.Color
}

func delta(start, end *Square) (dx, dy int) {
	return end.Pos.X - start.Pos.X, end.Pos.Y - start.Pos.Y
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Direction returns the unit step from one position toward another.
func Direction(from, to Position) Position {
	return Position{sign(to.X - from.X), sign(to.Y - from.Y)}
}
