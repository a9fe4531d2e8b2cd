package bots

import (
	"math"
	"math/rand"

	"chessbot/game"
)

// DefaultPoolSize caps the weighted draw.
const DefaultPoolSize = 15

// Selector draws a move from ranked candidates so the best move is the
// most likely pick while the runners-up still get played now and then.
type Selector struct {
	PoolSize int
	// UniformFirst makes the first decision a uniform draw over every
	// candidate instead of the weighted pool.
	UniformFirst bool

	rng       *rand.Rand
	decisions int
}

// NewSelector returns a selector seeded with seed.
func NewSelector(seed int64) *Selector {
	return &Selector{
		PoolSize:     DefaultPoolSize,
		UniformFirst: true,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// Select returns one move from scored, which must be ranked best first.
// An empty slice yields the zero Move.
func (s *Selector) Select(scored []ScoredMove) game.Move {
	if len(scored) == 0 {
		return game.Move{}
	}
	first := s.decisions == 0
	s.decisions++

	if first && s.UniformFirst {
		return scored[s.rng.Intn(len(scored))].Move
	}
	pool := s.Pool(scored)
	if len(pool) == 0 {
		return scored[0].Move
	}
	return pool[s.rng.Intn(len(pool))].Move
}

// Pool walks the ranking pairwise and adds each candidate as many times as
// Copies gives for it against the next one, until PoolSize entries are
// collected. The last candidate never enters the pool.
func (s *Selector) Pool(scored []ScoredMove) []ScoredMove {
	size := s.PoolSize
	if size <= 0 {
		size = DefaultPoolSize
	}
	pool := make([]ScoredMove, 0, size)
	for i := 0; i+1 < len(scored) && len(pool) < size; i++ {
		for n := Copies(scored[i].Score, scored[i+1].Score); n > 0 && len(pool) < size; n-- {
			pool = append(pool, scored[i])
		}
	}
	return pool
}

// Copies is |best/next| in tenths, rounded half up: 1.0 gives 10 and 1.25
// gives 13. A zero runner-up gives as many copies as fit.
func Copies(best, next int) int {
	if next == 0 {
		return math.MaxInt32
	}
	tenths := math.Abs(float64(best)/float64(next))*10 + 0.5
	if tenths >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Floor(tenths))
}
