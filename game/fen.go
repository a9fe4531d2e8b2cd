package game

import (
	"fmt"
	"io"

	"github.com/notnil/chess"
	chessimage "github.com/notnil/chess/image"
)

var toChess = [2][numKinds]chess.Piece{
	White: {chess.WhitePawn, chess.WhiteKnight, chess.WhiteBishop, chess.WhiteRook, chess.WhiteQueen, chess.WhiteKing},
	Black: {chess.BlackPawn, chess.BlackKnight, chess.BlackBishop, chess.BlackRook, chess.BlackQueen, chess.BlackKing},
}

var fromChess = map[chess.PieceType]Kind{
	chess.Pawn:   Pawn,
	chess.Knight: Knight,
	chess.Bishop: Bishop,
	chess.Rook:   Rook,
	chess.Queen:  Queen,
	chess.King:   King,
}

// String returns the algebraic name of the square, e.g. "e4".
func (p Position) String() string {
	if !p.InBounds() {
		return p.Coords()
	}
	return chess.NewSquare(chess.File(p.X), chess.Rank(p.Y)).String()
}

// ParseFEN builds a board from a FEN record and returns the side to move.
// Castling, en passant and clock fields are accepted but ignored.
func ParseFEN(fen string) (*Board, Color, error) {
	return ParseFENWithValues(fen, DefaultValues)
}

// ParseFENWithValues is ParseFEN with custom piece values.
func ParseFENWithValues(fen string, v PieceValues) (*Board, Color, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, White, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	pos := chess.NewGame(opt).Position()

	b := NewBoard()
	for sq, pc := range pos.Board().SquareMap() {
		kind, ok := fromChess[pc.Type()]
		if !ok {
			continue
		}
		color := White
		if pc.Color() == chess.Black {
			color = Black
		}
		b.squares[sq.Rank()][sq.File()].Piece = v.New(kind, color)
	}

	turn := White
	if pos.Turn() == chess.Black {
		turn = Black
	}
	return b, turn, nil
}

// FEN encodes the board with turn to move. Castling and en passant are
// always "-".
func (b *Board) FEN(turn Color) string {
	side := "w"
	if turn == Black {
		side = "b"
	}
	return fmt.Sprintf("%s %s - - 0 1", b.chessBoard(), side)
}

// String returns the piece-placement field of the board's FEN.
func (b *Board) String() string {
	return b.chessBoard().String()
}

// WriteSVG renders the board as an SVG image.
func (b *Board) WriteSVG(w io.Writer) error {
	return chessimage.SVG(w, b.chessBoard())
}

func (b *Board) chessBoard() *chess.Board {
	m := make(map[chess.Square]chess.Piece, 32)
	for y := 0; y < NumRanks; y++ {
		for x := 0; x < NumFiles; x++ {
			if p := b.squares[y][x].Piece; p != nil {
				m[chess.NewSquare(chess.File(x), chess.Rank(y))] = toChess[p.Color][p.Kind]
			}
		}
	}
	return chess.NewBoard(m)
}
