package cmd

import (
	"math/rand"
	"time"
)

// ShufflePool is the set of expressions the shuffler picks from.
var ShufflePool = []Expression{
	Expr_Happy, Expr_Sad, Expr_Angry, Expr_Love, Expr_Surprised,
	Expr_Confused, Expr_Sleepy, Expr_Curious, Expr_Nervous, Expr_Knocked,
}

type shufflePhase int

const (
	shuffleNeutral shufflePhase = iota
	shuffleExpression
)

// Shuffler alternates between neutral and a random expression. The same expression is
// never picked twice in a row.
type Shuffler struct {
	ExprMin, ExprMax       time.Duration
	NeutralMin, NeutralMax time.Duration
	Pool                   []Expression

	rnd     *rand.Rand
	phase   shufflePhase
	next    time.Time
	started bool
	last    int
}

func NewShuffler(rnd *rand.Rand) *Shuffler {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Shuffler{
		ExprMin:    2 * time.Second,
		ExprMax:    5 * time.Second,
		NeutralMin: 2 * time.Second,
		NeutralMax: 5 * time.Second,
		Pool:       ShufflePool,
		rnd:        rnd,
		last:       -1,
	}
}

// Reset makes the next call start over from neutral.
func (s *Shuffler) Reset() {
	s.started = false
	s.next = time.Time{}
}

// Next reports the expression to show at now, if it is time for a change.
func (s *Shuffler) Next(now time.Time) (Expression, bool) {
	if !s.started {
		s.started = true
		s.phase = shuffleNeutral
		s.next = now.Add(2 * time.Second)
		return Expr_Neutral, true
	}
	if now.Before(s.next) {
		return 0, false
	}

	if s.phase == shuffleExpression || len(s.Pool) == 0 {
		s.phase = shuffleNeutral
		s.next = now.Add(s.between(s.NeutralMin, s.NeutralMax))
		return Expr_Neutral, true
	}

	n := len(s.Pool)
	i := s.rnd.Intn(n)
	if n > 1 && i == s.last {
		i = (i + 1 + s.rnd.Intn(n-1)) % n
	}
	s.last = i
	s.phase = shuffleExpression
	s.next = now.Add(s.between(s.ExprMin, s.ExprMax))
	return s.Pool[i], true
}

// Wait is the time left until the next change.
func (s *Shuffler) Wait(now time.Time) time.Duration {
	if !s.started {
		return 0
	}
	return max(s.next.Sub(now), 0)
}

func (s *Shuffler) between(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(s.rnd.Int63n(int64(hi-lo)+1))
}
