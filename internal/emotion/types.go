// Package emotion implements the lexicon-based emotional state classifier
// and the personality trait adapter.
package emotion

// State is a detected emotional state. Closed set.
type State string

const (
	StateNeutral    State = "neutral"
	StateAnxious    State = "anxious"
	StateHopeful    State = "hopeful"
	StateSad        State = "sad"
	StateExcited    State = "excited"
	StateFrustrated State = "frustrated"
	StateGrateful   State = "grateful"
)

// Priority orders non-neutral states for tie-breaking: cautionary emotions
// win over positive ones when scores are equal.
var Priority = []State{
	StateAnxious,
	StateSad,
	StateFrustrated,
	StateGrateful,
	StateExcited,
	StateHopeful,
}

// PriorityIndex returns the tie-break rank of s (lower wins). Unknown states,
// including neutral, rank last.
func PriorityIndex(s State) int {
	for i, p := range Priority {
		if p == s {
			return i
		}
	}
	return len(Priority)
}

// Positive is the set of states counted toward the adaptation level.
var Positive = map[State]bool{
	StateHopeful:  true,
	StateExcited:  true,
	StateGrateful: true,
}

// Result is the outcome of one classification call.
type Result struct {
	State      State
	Confidence float64 // always in [0,1]
	Rationale  string
}

// Trait baselines, the resting values neutral turns regress toward.
const (
	BaselineEmpathy        = 0.8
	BaselineSupportiveness = 0.7
	BaselineIntuition      = 0.6
	BaselineHopefulness    = 0.9
)

// Traits is the 4-dimensional personality vector. Every component stays in
// [0,1] after each adaptation.
type Traits struct {
	Empathy        float64 `json:"empathy"`
	Supportiveness float64 `json:"supportiveness"`
	Intuition      float64 `json:"intuition"`
	Hopefulness    float64 `json:"hopefulness"`
}

// DefaultTraits returns the trait vector at its baselines.
func DefaultTraits() Traits {
	return Traits{
		Empathy:        BaselineEmpathy,
		Supportiveness: BaselineSupportiveness,
		Intuition:      BaselineIntuition,
		Hopefulness:    BaselineHopefulness,
	}
}
