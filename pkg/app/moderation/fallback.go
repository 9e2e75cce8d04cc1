package moderation

import (
	"math/rand"
	"sync"

	"github.com/flagwise/flagwise/pkg/domain/flag"
)

// FallbackGenerator produces placeholder scores when the classifier is
// unavailable. It never fails.
type FallbackGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewFallbackGenerator(seed int64) *FallbackGenerator {
	return &FallbackGenerator{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// Scores returns a uniformly random value in [0,1], rounded to two decimals,
// for every recognized flag type.
func (g *FallbackGenerator) Scores() flag.Scores {
	g.mu.Lock()
	defer g.mu.Unlock()

	types := flag.Types()
	scores := make(flag.Scores, len(types))
	for _, ft := range types {
		scores[ft] = roundScore(g.rnd.Float64())
	}
	return scores
}
