package bots

import (
	"cmp"
	"log"
	"slices"

	"chessbot/game"
)

// ScoredMove is a candidate with its safety score. Higher is safer.
type ScoredMove struct {
	game.Move
	Score int

	order int
}

// Scorer rates candidate moves for one side by simulating each of them on
// the board. Scoring mutates the board temporarily and always restores it
// before moving on to the next candidate.
type Scorer struct {
	Player  game.Player
	Weights Weights
	Verbose bool
}

// NewScorer returns a scorer for player using DefaultWeights.
func NewScorer(player game.Player) *Scorer {
	return &Scorer{Player: player, Weights: DefaultWeights}
}

func (s *Scorer) opponent() game.Color {
	return s.Player.Color.Other()
}

// GenerateAndScore generates every candidate for the scorer's side and
// returns them scored, best first.
func (s *Scorer) GenerateAndScore(b *game.Board) []ScoredMove {
	own, opp := b.Partition(s.Player.Color)
	moves := game.GenerateFrom(b, s.Player, own)

	scored := make([]ScoredMove, len(moves))
	for i, m := range moves {
		scored[i] = s.Score(b, own, opp, m)
		scored[i].order = i
		if s.Verbose {
			log.Printf("candidate %d: %v score=%d", i, m, scored[i].Score)
		}
	}
	Rank(scored)
	return scored
}

// Rank sorts scored moves by descending score. Equal scores keep the order
// they were generated in.
func Rank(scored []ScoredMove) {
	slices.SortFunc(scored, func(a, b ScoredMove) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.order, b.order)
	})
}

// Score rates m. own and opp are the squares holding each side's pieces
// before the move, as returned by Board.Partition.
func (s *Scorer) Score(b *game.Board, own, opp []*game.Square, m game.Move) ScoredMove {
	sm := ScoredMove{Move: m, Score: s.Weights.Baseline}
	sm.Score += s.captureBonus(m)
	sm.Score += s.moveSafety(b, own, opp, m)
	sm.Score += s.exposedPieces(b, own, opp, m)
	return sm
}

func (s *Scorer) captureBonus(m game.Move) int {
	if !m.IsCapture() {
		return 0
	}
	return s.Weights.Capture * m.Captured.Value
}

// moveSafety weighs the danger to the mover itself: attacked where it
// stands, attacked where it lands, and what it can safely do from there.
func (s *Scorer) moveSafety(b *game.Board, own, opp []*game.Square, m game.Move) int {
	w := s.Weights
	value := m.Moved.Value
	score := 0

	for _, sq := range opp {
		if game.IsLegal(b, s.opponent(), sq, m.Start) {
			score += w.Flee * value
		}
	}

	game.TryMove(m, func() {
		exposed := false
		for _, sq := range opp {
			// A threatener taken by this move no longer passes the ownership gate.
			if !game.IsLegal(b, s.opponent(), sq, m.End) {
				continue
			}
			exposed = true
			score -= w.Exposed * value
			if s.sacrifice(b, own, m, sq) {
				score += w.Sacrifice * sq.Piece.Value
			}
		}
		if !exposed {
			score += s.advantage(b, opp, m)
		}
	})
	return score
}

// sacrifice reports whether letting the piece on taker capture the mover
// would hand us a piece worth at least twice the mover. Called with m applied.
func (s *Scorer) sacrifice(b *game.Board, own []*game.Square, m game.Move, taker *game.Square) bool {
	if 2*m.Moved.Value > taker.Piece.Value {
		return false
	}
	recapture := false
	game.Try(taker, m.End, func() {
		for _, sq := range own {
			if sq.Piece == nil || sq.Piece == m.Moved {
				continue
			}
			if game.IsLegal(b, s.Player.Color, sq, m.End) {
				recapture = true
				return
			}
		}
	})
	return recapture
}

// advantage looks one ply ahead from the mover's destination. Called with
// m applied and the mover safe where it landed.
func (s *Scorer) advantage(b *game.Board, opp []*game.Square, m game.Move) int {
	w := s.Weights
	followUps := game.PieceMoves(b, s.Player, m.End, nil)
	if len(followUps) == 0 {
		return 0
	}

	best, bestScore := followUps[0], 0
	for i, f := range followUps {
		score := w.Baseline + s.captureBonus(f)
		game.TryMove(f, func() {
			for _, sq := range opp {
				if game.IsLegal(b, s.opponent(), sq, f.End) {
					score -= w.FollowUpDanger * f.Moved.Value
				}
			}
		})
		if i == 0 || score > bestScore {
			best, bestScore = f, score
		}
	}

	if bestScore > w.Baseline && best.IsCapture() {
		return w.FollowUpCapture * best.Captured.Value
	}
	return 0
}

// exposedPieces weighs how the move affects our pieces that are already
// under attack.
func (s *Scorer) exposedPieces(b *game.Board, own, opp []*game.Square, m game.Move) int {
	w := s.Weights
	score := 0
	for _, ownSq := range own {
		attacked := ownSq.Piece
		for _, oppSq := range opp {
			if !game.IsLegal(b, s.opponent(), oppSq, ownSq) {
				continue
			}
			if ownSq == m.Start {
				score += s.discovered(b, m, oppSq)
				continue
			}
			switch {
			case oppSq == m.End:
				score += w.TakeThreatener * oppSq.Piece.Value
			case s.blocks(b, m, oppSq, ownSq):
				if m.Moved.Value < attacked.Value {
					score += w.Protect * attacked.Value
				}
			default:
				score -= w.LeftHanging * attacked.Value
			}
		}
	}
	return score
}

// blocks reports whether playing m stops the piece on attacker from taking
// the piece on target.
func (s *Scorer) blocks(b *game.Board, m game.Move, attacker, target *game.Square) bool {
	blocked := false
	game.TryMove(m, func() {
		blocked = !game.IsLegal(b, s.opponent(), attacker, target)
	})
	return blocked
}

// discovered penalises moving the attacked mover out of a slider's line when
// a more valuable piece of ours stands behind it on the same ray.
func (s *Scorer) discovered(b *game.Board, m game.Move, attacker *game.Square) int {
	slider := attacker.Piece
	if !slider.Kind.Slides() || attacker == m.End {
		return 0
	}
	dir := game.Direction(attacker.Pos, m.Start.Pos)
	penalty := 0
	game.TryMove(m, func() {
		hit := game.Walk(b, slider.Color, m.Start.Pos.Add(dir), dir, nil)
		if hit != nil && hit.Piece.Value > m.Moved.Value {
			penalty = s.Weights.Discovered * hit.Piece.Value
		}
	})
	return -penalty
}
