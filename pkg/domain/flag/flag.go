package flag

// Type identifies one moderation category. The set is fixed at process start.
type Type string

const (
	Toxicity   Type = "toxicity"
	Harassment Type = "harassment"
	HateSpeech Type = "hate_speech"
	Sexual     Type = "sexual"
	Violence   Type = "violence"
	Spam       Type = "spam"
)

// ordered is the canonical declaration order. Response records and tie
// breaking both follow this order.
var ordered = []Type{Toxicity, Harassment, HateSpeech, Sexual, Violence, Spam}

// Types returns every recognized flag type in declaration order.
func Types() []Type {
	out := make([]Type, len(ordered))
	copy(out, ordered)
	return out
}

// Scores maps every recognized flag type to a confidence value in [0,1].
type Scores map[Type]float64

// Record is the response-shaping pair for a single flag type.
type Record struct {
	Flag  Type    `json:"flag"`
	Value float64 `json:"value"`
}
