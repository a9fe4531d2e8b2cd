package game

// Simulate runs fn after saving the occupants of squares and puts them back
// once fn returns, on every path out of fn including a panic.
func Simulate(fn func(), squares ...*Square) {
	saved := make([]*Piece, len(squares))
	for i, sq := range squares {
		saved[i] = sq.Piece
	}
	defer func() {
		for i := len(squares) - 1; i >= 0; i-- {
			squares[i].Piece = saved[i]
		}
	}()
	fn()
}

// Try moves the piece on start to end for the duration of fn. Capture flags
// are left alone.
func Try(start, end *Square, fn func()) {
	Simulate(func() {
		p := start.Piece
		start.Piece = nil
		end.Piece = p
		fn()
	}, start, end)
}

// TryMove is Try for the squares of m.
func TryMove(m Move, fn func()) {
	Try(m.Start, m.End, fn)
}
