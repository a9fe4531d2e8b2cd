package game

var (
	knightOffsets = []Position{
		{-2, -1}, {-2, 1},
		{-1, -2}, {-1, 2},
		{1, -2}, {1, 2},
		{2, -1}, {2, 1},
	}
	diagonals   = []Position{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	orthogonals = []Position{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allRays     = []Position{
		{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
		{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	}
)

// GenerateMoves lists every candidate move for player's pieces on b.
func GenerateMoves(b *Board, player Player) []Move {
	own, _ := b.Partition(player.Color)
	return GenerateFrom(b, player, own)
}

// GenerateFrom lists the candidate moves of the pieces standing on squares.
// It reads nothing but the board and squares, so it is safe to call on a
// board in the middle of a simulation.
func GenerateFrom(b *Board, player Player, squares []*Square) []Move {
	var moves []Move
	for _, sq := range squares {
		moves = PieceMoves(b, player, sq, moves)
	}
	return moves
}

// PieceMoves appends the candidate moves of the piece on sq to moves.
// Pieces not belonging to player yield nothing.
func PieceMoves(b *Board, player Player, sq *Square, moves []Move) []Move {
	p := sq.Piece
	if p == nil || p.Color != player.Color {
		return moves
	}
	switch p.Kind {
	case Knight:
		moves = offsetMoves(b, player, sq, knightOffsets, moves)
	case Bishop:
		moves = rayMoves(b, player, sq, diagonals, moves)
	case Rook:
		moves = rayMoves(b, player, sq, orthogonals, moves)
	case Queen:
		moves = rayMoves(b, player, sq, allRays, moves)
	case King:
		moves = neighbourMoves(b, player, sq, moves)
	case Pawn:
		moves = neighbourMoves(b, player, sq, moves)
		moves = offsetMoves(b, player, sq, []Position{{0, 2 * p.Color.Forward()}}, moves)
	}
	return moves
}

func offsetMoves(b *Board, player Player, sq *Square, offsets []Position, moves []Move) []Move {
	for _, off := range offsets {
		end := b.At(sq.Pos.Add(off))
		if end != nil && IsLegal(b, player.Color, sq, end) {
			moves = append(moves, NewMove(player, sq, end))
		}
	}
	return moves
}

// neighbourMoves tries the 3x3 block around sq.
func neighbourMoves(b *Board, player Player, sq *Square, moves []Move) []Move {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			end := b.Get(sq.Pos.X+dx, sq.Pos.Y+dy)
			if end != nil && IsLegal(b, player.Color, sq, end) {
				moves = append(moves, NewMove(player, sq, end))
			}
		}
	}
	return moves
}

func rayMoves(b *Board, player Player, sq *Square, dirs []Position, moves []Move) []Move {
	for _, dir := range dirs {
		Walk(b, player.Color, sq.Pos.Add(dir), dir, func(end *Square) bool {
			moves = append(moves, NewMove(player, sq, end))
			return true
		})
	}
	return moves
}
