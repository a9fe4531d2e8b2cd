package bots

import "chessbot/game"

// NewbornBot always plays the first candidate the generator produces.
type NewbornBot struct {
	Player game.Player
}

func NewNewbornBot(player game.Player) *NewbornBot {
	return &NewbornBot{Player: player}
}

func (b *NewbornBot) BestMove(board *game.Board) *game.Move {
	moves := game.GenerateMoves(board, b.Player)
	if len(moves) > 0 {
		return &moves[0]
	}
	return nil
}

func (b *NewbornBot) Name() string {
	return "Newborn"
}
