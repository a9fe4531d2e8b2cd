package game

import "errors"

var (
	ErrOutOfBounds = errors.New("coordinates out of bounds")
	ErrNoPiece     = errors.New("no piece at source square")
	ErrIllegalMove = errors.New("illegal move")
	ErrNotYourTurn = errors.New("not your turn")
	ErrGameOver    = errors.New("game over")
	ErrInvalidFEN  = errors.New("invalid FEN")
)
