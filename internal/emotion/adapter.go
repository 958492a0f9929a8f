package emotion

// Adapter mutates the personality trait vector in response to a detected
// emotion.
type Adapter interface {
	Adapt(state State, traits *Traits)
}

const (
	adaptDelta     = 0.05
	regressionRate = 0.1
)

// ClampedAdapter applies a fixed delta per call and hard-clamps every trait
// to [0,1]. Neutral turns regress each trait 10% of the distance toward its
// baseline, so repeated neutral calls approach the baseline without
// overshooting.
type ClampedAdapter struct{}

// NewClampedAdapter returns a ClampedAdapter.
func NewClampedAdapter() *ClampedAdapter {
	return &ClampedAdapter{}
}

// Adapt updates traits for the given state. Deterministic for any
// (state, traits) pair.
func (*ClampedAdapter) Adapt(state State, traits *Traits) {
	switch state {
	case StateAnxious, StateSad:
		traits.Empathy = clamp(traits.Empathy+adaptDelta, 0, 1)
		traits.Supportiveness = clamp(traits.Supportiveness+adaptDelta, 0, 1)
	case StateFrustrated:
		traits.Intuition = clamp(traits.Intuition+adaptDelta, 0, 1)
		traits.Empathy = clamp(traits.Empathy+adaptDelta*0.5, 0, 1)
	case StateHopeful, StateExcited:
		traits.Hopefulness = clamp(traits.Hopefulness+adaptDelta, 0, 1)
	case StateGrateful:
		traits.Supportiveness = clamp(traits.Supportiveness+adaptDelta, 0, 1)
	case StateNeutral:
		traits.Empathy = clamp(traits.Empathy+(BaselineEmpathy-traits.Empathy)*regressionRate, 0, 1)
		traits.Supportiveness = clamp(traits.Supportiveness+(BaselineSupportiveness-traits.Supportiveness)*regressionRate, 0, 1)
		traits.Intuition = clamp(traits.Intuition+(BaselineIntuition-traits.Intuition)*regressionRate, 0, 1)
		traits.Hopefulness = clamp(traits.Hopefulness+(BaselineHopefulness-traits.Hopefulness)*regressionRate, 0, 1)
	}
}
