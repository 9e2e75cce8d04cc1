package moderation

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/flagwise/flagwise/pkg/domain/flag"
	"github.com/valyala/fastjson"
)

// ErrInvalidUpstreamFormat is returned when the classifier reply cannot be
// parsed as a JSON object at all.
var ErrInvalidUpstreamFormat = errors.New("invalid upstream format")

var parsers fastjson.ParserPool

// Normalize shapes an untrusted classifier reply into a complete score
// mapping. Every recognized flag type ends up present, with a value in [0,1]
// rounded to two decimals. Missing or non-numeric fields coerce to 0.
func Normalize(payload []byte) (flag.Scores, error) {
	p := parsers.Get()
	defer parsers.Put(p)

	v, err := p.ParseBytes(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUpstreamFormat, err)
	}
	if v.Type() != fastjson.TypeObject {
		return nil, fmt.Errorf("%w: top-level value is %s, expected object", ErrInvalidUpstreamFormat, v.Type())
	}

	types := flag.Types()
	scores := make(flag.Scores, len(types))
	for _, ft := range types {
		scores[ft] = roundScore(clamp(coerceNumber(v.Get(string(ft)))))
	}
	return scores, nil
}

// coerceNumber accepts JSON numbers and numeric strings; anything else is 0.
func coerceNumber(v *fastjson.Value) float64 {
	if v == nil {
		return 0
	}
	switch v.Type() {
	case fastjson.TypeNumber:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	case fastjson.TypeString:
		f, err := strconv.ParseFloat(string(v.GetStringBytes()), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// roundScore rounds half-up on the scaled integer to two decimal places.
func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
