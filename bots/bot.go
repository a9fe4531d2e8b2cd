package bots

import "chessbot/game"

// ChessBot is an opponent that picks a move for its own side.
type ChessBot interface {
	// BestMove returns nil when the side has no candidate moves.
	BestMove(b *game.Board) *game.Move
	Name() string
}
