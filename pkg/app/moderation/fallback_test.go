package moderation

import (
	"math"
	"testing"

	"github.com/flagwise/flagwise/pkg/domain/flag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackGenerator_CompleteAndInRange(t *testing.T) {
	gen := NewFallbackGenerator(42)

	scores := gen.Scores()

	require.Len(t, scores, len(flag.Types()))
	for _, ft := range flag.Types() {
		v, ok := scores[ft]
		require.True(t, ok, "missing flag type %s", ft)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
		assert.Equal(t, math.Round(v*100)/100, v, "value %v not rounded to 2 decimals", v)
	}
}

func TestFallbackGenerator_VariesAcrossCalls(t *testing.T) {
	gen := NewFallbackGenerator(7)

	first := gen.Scores()
	second := gen.Scores()

	assert.NotEqual(t, first, second)
}
