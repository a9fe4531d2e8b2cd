package bots

import (
	"testing"

	"chessbot/game"
)

var (
	white = game.Player{Color: game.White, Human: true}
	black = game.Player{Color: game.Black}
)

type placement struct {
	x, y  int
	kind  game.Kind
	color game.Color
}

func setup(t *testing.T, pieces ...placement) *game.Board {
	t.Helper()
	b := game.NewBoard()
	for _, p := range pieces {
		if err := b.Place(p.x, p.y, game.NewPiece(p.kind, p.color)); err != nil {
			t.Fatalf("place: %v", err)
		}
	}
	return b
}

func scoreOf(t *testing.T, scored []ScoredMove, from, to game.Position) int {
	t.Helper()
	for _, sm := range scored {
		if sm.From() == from && sm.To() == to {
			return sm.Score
		}
	}
	t.Fatalf("no candidate %v -> %v", from.Coords(), to.Coords())
	return 0
}

func snapshot(b *game.Board) [64]*game.Piece {
	var out [64]*game.Piece
	for y := 0; y < game.NumRanks; y++ {
		for x := 0; x < game.NumFiles; x++ {
			out[y*8+x] = b.Get(x, y).Piece
		}
	}
	return out
}

func TestScoreHeuristicTerms(t *testing.T) {
	tests := []struct {
		name     string
		pieces   []placement
		from, to game.Position
		want     int
	}{
		{
			name: "plain capture",
			pieces: []placement{
				{0, 0, game.Rook, game.Black},
				{0, 4, game.Pawn, game.White},
			},
			from: game.Position{X: 0, Y: 0}, to: game.Position{X: 0, Y: 4},
			want: 5000 + 125*1,
		},
		{
			name: "lands on an attacked square",
			pieces: []placement{
				{0, 0, game.Rook, game.Black},
				{7, 4, game.Rook, game.White},
			},
			from: game.Position{X: 0, Y: 0}, to: game.Position{X: 0, Y: 4},
			want: 5000 - 50*5,
		},
		{
			name: "escapes an attack",
			pieces: []placement{
				{0, 0, game.Rook, game.Black},
				{0, 7, game.Rook, game.White},
			},
			from: game.Position{X: 0, Y: 0}, to: game.Position{X: 1, Y: 0},
			want: 5000 + 25*5,
		},
		{
			name: "uncovers the king",
			pieces: []placement{
				{0, 0, game.King, game.Black},
				{0, 3, game.Rook, game.Black},
				{0, 7, game.Rook, game.White},
			},
			from: game.Position{X: 0, Y: 3}, to: game.Position{X: 1, Y: 3},
			want: 5000 + 25*5 - 25*25,
		},
		{
			name: "takes the attacker of another piece",
			pieces: []placement{
				{0, 0, game.Bishop, game.Black},
				{3, 4, game.Rook, game.Black},
				{2, 2, game.Knight, game.White},
			},
			from: game.Position{X: 0, Y: 0}, to: game.Position{X: 2, Y: 2},
			want: 5000 + 125*4 + 50*4,
		},
		{
			name: "blocks an attack on the queen",
			pieces: []placement{
				{0, 4, game.Queen, game.Black},
				{4, 2, game.Knight, game.Black},
				{7, 4, game.Rook, game.White},
			},
			from: game.Position{X: 4, Y: 2}, to: game.Position{X: 5, Y: 4},
			want: 5000 - 50*4 + 75*9,
		},
		{
			name: "leaves the queen hanging",
			pieces: []placement{
				{0, 4, game.Queen, game.Black},
				{4, 2, game.Knight, game.Black},
				{7, 4, game.Rook, game.White},
			},
			from: game.Position{X: 4, Y: 2}, to: game.Position{X: 2, Y: 3},
			want: 5000 - 25*9,
		},
		{
			name: "pawn sacrifice against the queen",
			pieces: []placement{
				{3, 5, game.Pawn, game.Black},
				{3, 1, game.Rook, game.Black},
				{7, 4, game.Queen, game.White},
			},
			from: game.Position{X: 3, Y: 5}, to: game.Position{X: 3, Y: 4},
			want: 5000 - 50*1 + 25*9,
		},
		{
			name: "pawn offered without recapture",
			pieces: []placement{
				{3, 5, game.Pawn, game.Black},
				{7, 4, game.Queen, game.White},
			},
			from: game.Position{X: 3, Y: 5}, to: game.Position{X: 3, Y: 4},
			want: 5000 - 50*1,
		},
		{
			name: "sets up a safe capture",
			pieces: []placement{
				{0, 0, game.Knight, game.Black},
				{2, 4, game.Rook, game.White},
			},
			from: game.Position{X: 0, Y: 0}, to: game.Position{X: 1, Y: 2},
			want: 5000 + 50*5,
		},
		{
			name: "steps onto the rook's file",
			pieces: []placement{
				{0, 0, game.Knight, game.Black},
				{2, 4, game.Rook, game.White},
			},
			from: game.Position{X: 0, Y: 0}, to: game.Position{X: 2, Y: 1},
			want: 5000 - 50*4,
		},
		{
			name: "queen blocks for a cheaper rook",
			pieces: []placement{
				{5, 0, game.Queen, game.Black},
				{0, 4, game.Rook, game.Black},
				{7, 4, game.Rook, game.White},
			},
			from: game.Position{X: 5, Y: 0}, to: game.Position{X: 5, Y: 4},
			want: 5000 - 50*9,
		},
		{
			name: "leaves a knight's attack",
			pieces: []placement{
				{2, 2, game.Rook, game.Black},
				{5, 5, game.King, game.Black},
				{0, 1, game.Knight, game.White},
			},
			from: game.Position{X: 2, Y: 2}, to: game.Position{X: 7, Y: 2},
			want: 5000 + 25*5,
		},
		{
			name: "uncovers a cheaper piece",
			pieces: []placement{
				{0, 4, game.Rook, game.Black},
				{0, 1, game.Pawn, game.Black},
				{0, 7, game.Rook, game.White},
			},
			from: game.Position{X: 0, Y: 4}, to: game.Position{X: 1, Y: 4},
			want: 5000 + 25*5,
		},
		{
			name: "follow-up capture is defended",
			pieces: []placement{
				{2, 1, game.Knight, game.Black},
				{1, 2, game.Pawn, game.White},
				{1, 7, game.Rook, game.White},
				{7, 1, game.Rook, game.White},
			},
			from: game.Position{X: 2, Y: 1}, to: game.Position{X: 0, Y: 0},
			want: 5000 + 25*4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := setup(t, tt.pieces...)
			before := snapshot(b)
			scored := NewScorer(black).GenerateAndScore(b)
			if got := scoreOf(t, scored, tt.from, tt.to); got != tt.want {
				t.Fatalf("score: got %d, want %d", got, tt.want)
			}
			if snapshot(b) != before {
				t.Fatalf("scoring left the board modified")
			}
		})
	}
}

func TestScoringRestoresOpeningBoard(t *testing.T) {
	b := game.NewStandardBoard()
	b.Apply(game.NewMove(white, b.Get(4, 1), b.Get(4, 3)))
	before := snapshot(b)
	fen := b.FEN(game.Black)

	scored := NewScorer(black).GenerateAndScore(b)
	if len(scored) != 20 {
		t.Fatalf("expected 20 black candidates, got %d", len(scored))
	}
	if snapshot(b) != before || b.FEN(game.Black) != fen {
		t.Fatalf("board modified by scoring")
	}
	for _, p := range before {
		if p != nil && p.Captured {
			t.Fatalf("%v marked captured by scoring", p)
		}
	}
}

func TestRankOrdersByScoreThenGeneration(t *testing.T) {
	scored := []ScoredMove{
		{Score: 10, order: 0},
		{Score: 30, order: 1},
		{Score: 10, order: 2},
		{Score: 30, order: 3},
	}
	Rank(scored)
	want := []int{1, 3, 0, 2}
	for i, sm := range scored {
		if sm.order != want[i] {
			t.Fatalf("position %d: got order %d, want %d", i, sm.order, want[i])
		}
	}
}

func TestCustomWeights(t *testing.T) {
	b := setup(t,
		placement{0, 0, game.Rook, game.Black},
		placement{0, 4, game.Pawn, game.White},
	)
	s := NewScorer(black)
	s.Weights.Baseline = 0
	s.Weights.Capture = 1000
	scored := s.GenerateAndScore(b)
	if scored[0].To() != (game.Position{X: 0, Y: 4}) || scored[0].Score != 1000 {
		t.Fatalf("best candidate: %v score %d", scored[0].Move, scored[0].Score)
	}
}

func TestFollowUpDangerWeight(t *testing.T) {
	pieces := []placement{
		{2, 1, game.Knight, game.Black},
		{1, 2, game.Pawn, game.White},
		{1, 7, game.Rook, game.White},
		{7, 1, game.Rook, game.White},
	}
	from, to := game.Position{X: 2, Y: 1}, game.Position{X: 0, Y: 0}

	tests := []struct {
		danger int
		want   int
	}{
		{DefaultWeights.FollowUpDanger, 5000 + 25*4},
		// 5125 - 10*4 still clears the baseline, so the capture counts.
		{10, 5000 + 25*4 + 50*1},
		{0, 5000 + 25*4 + 50*1},
	}
	for _, tt := range tests {
		s := NewScorer(black)
		s.Weights.FollowUpDanger = tt.danger
		got := scoreOf(t, s.GenerateAndScore(setup(t, pieces...)), from, to)
		if got != tt.want {
			t.Errorf("FollowUpDanger=%d: got %d, want %d", tt.danger, got, tt.want)
		}
	}
}
