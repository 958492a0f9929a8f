package dialogue

import (
	"github.com/Minomoreno86/EMOCIONES/internal/emotion"
	"github.com/Minomoreno86/EMOCIONES/internal/templates"
)

// Threshold above which trait-based suffixes kick in.
const personalizeThreshold = 0.8

// Selector picks a canned response for an emotion from the provider's pools.
type Selector struct {
	provider templates.Provider
}

// NewSelector returns a Selector reading from provider.
func NewSelector(provider templates.Provider) *Selector {
	return &Selector{provider: provider}
}

// Select picks uniformly from the emotion's pool using rng, falling back to
// the generic listening response when the pool is empty.
func (s *Selector) Select(state emotion.State, rng *SeededRand) string {
	pool := s.provider.Responses(state)
	if len(pool) == 0 {
		return s.provider.Fallback()
	}
	return pool[rng.Intn(len(pool))]
}

// Personalize appends at most one trait-driven suffix: empathetic for sad or
// anxious users when empathy is high, encouraging for hopeful users when
// supportiveness is high. The emotion check makes the two mutually exclusive.
func (s *Selector) Personalize(text string, state emotion.State, traits emotion.Traits) string {
	if traits.Empathy > personalizeThreshold && (state == emotion.StateSad || state == emotion.StateAnxious) {
		return text + s.provider.EmpathySuffix()
	}
	if traits.Supportiveness > personalizeThreshold && state == emotion.StateHopeful {
		return text + s.provider.EncouragementSuffix()
	}
	return text
}
