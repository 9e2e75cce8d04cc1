package moderation

import (
	"testing"

	"github.com/flagwise/flagwise/pkg/domain/flag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_DeclarationOrder(t *testing.T) {
	scores := flag.Scores{
		flag.Spam:     0.2,
		flag.Toxicity: 0.9,
	}

	records := Format(scores)

	require.Len(t, records, len(flag.Types()))
	for i, ft := range flag.Types() {
		assert.Equal(t, ft, records[i].Flag)
	}
	assert.Equal(t, 0.9, records[0].Value)
	assert.Equal(t, 0.2, records[len(records)-1].Value)
}

func TestFormat_MissingEntriesDefaultToZero(t *testing.T) {
	records := Format(flag.Scores{flag.Violence: 0.5})

	for _, r := range records {
		if r.Flag == flag.Violence {
			assert.Equal(t, 0.5, r.Value)
			continue
		}
		assert.Equal(t, 0.0, r.Value)
	}
}

func TestFormat_StableAcrossCalls(t *testing.T) {
	scores := flag.Scores{flag.Harassment: 0.3, flag.Sexual: 0.7}

	first := Format(scores)
	second := Format(scores)

	assert.Equal(t, first, second)
}
