package moderation

import (
	"github.com/flagwise/flagwise/pkg/domain/flag"
	domain "github.com/flagwise/flagwise/pkg/domain/moderation"
)

const (
	flaggedThreshold   = 0.5
	statusFlaggedFloor = 0.7
	statusCleanCeiling = 0.3
)

// Verdict is the dominant flag of a request plus its derived status bucket.
type Verdict struct {
	Flag    flag.Type
	Score   float64
	Flagged bool
	Status  string
}

// DeriveVerdict scans the ordered record list for the strictly greatest
// value. Ties keep the first occurrence, so earlier-declared flag types win.
// The running maximum starts at -1 so any real score supersedes it.
func DeriveVerdict(records []flag.Record) Verdict {
	top := flag.Record{Value: -1}
	for _, r := range records {
		if r.Value > top.Value {
			top = r
		}
	}

	status := domain.StatusBorderline
	switch {
	case top.Value >= statusFlaggedFloor:
		status = domain.StatusFlagged
	case top.Value < statusCleanCeiling:
		status = domain.StatusClean
	}

	return Verdict{
		Flag:    top.Flag,
		Score:   top.Value,
		Flagged: top.Value >= flaggedThreshold,
		Status:  status,
	}
}
