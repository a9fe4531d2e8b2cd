package bots

import (
	"math/rand"

	"chessbot/game"
)

type RandomBot struct {
	Player game.Player
	rng    *rand.Rand
}

func NewRandomBot(player game.Player, seed int64) *RandomBot {
	return &RandomBot{Player: player, rng: rand.New(rand.NewSource(seed))}
}

func (b *RandomBot) BestMove(board *game.Board) *game.Move {
	moves := game.GenerateMoves(board, b.Player)
	if len(moves) > 0 {
		return &moves[b.rng.Intn(len(moves))]
	}
	return nil
}

func (b *RandomBot) Name() string {
	return "Random Bot"
}
