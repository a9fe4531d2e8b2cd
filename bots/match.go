package bots

import (
	"errors"
	"fmt"
	"log"

	"chessbot/game"
)

// ErrNoMoves is returned by Match when the side to move has no candidates.
var ErrNoMoves = errors.New("no candidate moves")

// Match lets white and black play out match until a king is captured or
// maxPlies moves have been made (0 means no limit). A side left without
// candidates forfeits and ErrNoMoves is returned. It returns the number of
// plies played.
func Match(match *game.Game, white, black ChessBot, maxPlies int, verbose bool) (int, error) {
	players := [2]ChessBot{game.White: white, game.Black: black}
	plies := 0
	for !match.Over() && (maxPlies <= 0 || plies < maxPlies) {
		side := match.Turn()
		move := players[side].BestMove(match.Board())
		if move == nil {
			match.Forfeit()
			return plies, fmt.Errorf("%v (%s): %w", side, players[side].Name(), ErrNoMoves)
		}
		if err := match.PlayMove(*move); err != nil {
			return plies, fmt.Errorf("%s: %w", players[side].Name(), err)
		}
		plies++
		if verbose {
			log.Printf("%3d. %-6v %s %v", plies, side, move.Notation(), move)
		}
	}
	return plies, nil
}
