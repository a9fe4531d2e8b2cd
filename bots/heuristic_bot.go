package bots

import (
	"fmt"
	"log"

	"chessbot/game"
)

// HeuristicBot scores every candidate with a Scorer and draws one with a
// Selector.
type HeuristicBot struct {
	Scorer   *Scorer
	Selector *Selector
}

func NewHeuristicBot(player game.Player, seed int64) *HeuristicBot {
	return &HeuristicBot{
		Scorer:   NewScorer(player),
		Selector: NewSelector(seed),
	}
}

func (b *HeuristicBot) Name() string {
	return fmt.Sprintf("Heuristic Bot (%v)", b.Scorer.Player.Color)
}

func (b *HeuristicBot) BestMove(board *game.Board) *game.Move {
	if board == nil {
		return nil
	}
	scored := b.Scorer.GenerateAndScore(board)
	if len(scored) == 0 {
		return nil
	}
	move := b.Selector.Select(scored)
	if b.Scorer.Verbose {
		log.Printf("%s: %d candidates, best %v (%d), playing %v", b.Name(), len(scored), scored[0].Move, scored[0].Score, move)
	}
	return &move
}
