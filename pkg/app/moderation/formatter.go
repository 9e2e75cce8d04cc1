package moderation

import "github.com/flagwise/flagwise/pkg/domain/flag"

// Format converts a score mapping into the ordered record list returned to
// callers. The order follows the flag type declaration order and is stable
// across calls. Missing entries default to 0.
func Format(scores flag.Scores) []flag.Record {
	types := flag.Types()
	records := make([]flag.Record, 0, len(types))
	for _, ft := range types {
		records = append(records, flag.Record{Flag: ft, Value: scores[ft]})
	}
	return records
}
