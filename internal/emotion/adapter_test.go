package emotion

import (
	"math"
	"testing"
)

func TestAdaptClampsUpperBound(t *testing.T) {
	adapter := NewClampedAdapter()
	traits := DefaultTraits()
	traits.Empathy = 0.95

	for i := 0; i < 20; i++ {
		adapter.Adapt(StateAnxious, &traits)
		if traits.Empathy > 1.0 || traits.Empathy < 0.0 {
			t.Fatalf("empathy out of bounds at step %d: %v", i, traits.Empathy)
		}
		if traits.Supportiveness > 1.0 || traits.Supportiveness < 0.0 {
			t.Fatalf("supportiveness out of bounds at step %d: %v", i, traits.Supportiveness)
		}
	}
	if traits.Empathy != 1.0 {
		t.Fatalf("expected empathy saturated at 1.0, got %v", traits.Empathy)
	}
}

func TestAdaptLowerBoundOnRegression(t *testing.T) {
	adapter := NewClampedAdapter()
	traits := DefaultTraits()
	traits.Empathy = 0.05

	for i := 0; i < 20; i++ {
		adapter.Adapt(StateNeutral, &traits)
		if traits.Empathy < 0.0 {
			t.Fatalf("empathy went below 0 at step %d: %v", i, traits.Empathy)
		}
	}
}

func TestAdaptPerEmotionDeltas(t *testing.T) {
	adapter := NewClampedAdapter()

	cases := []struct {
		state  State
		before func(Traits) float64
	}{
		{StateAnxious, func(tr Traits) float64 { return tr.Empathy }},
		{StateAnxious, func(tr Traits) float64 { return tr.Supportiveness }},
		{StateSad, func(tr Traits) float64 { return tr.Empathy }},
		{StateFrustrated, func(tr Traits) float64 { return tr.Intuition }},
		{StateHopeful, func(tr Traits) float64 { return tr.Hopefulness }},
		{StateGrateful, func(tr Traits) float64 { return tr.Supportiveness }},
	}
	for _, tc := range cases {
		traits := DefaultTraits()
		initial := tc.before(traits)
		adapter.Adapt(tc.state, &traits)
		if tc.before(traits) <= initial {
			t.Fatalf("%s: trait did not increase (%v -> %v)", tc.state, initial, tc.before(traits))
		}
	}
}

func TestAdaptFrustratedHalfEmpathyDelta(t *testing.T) {
	adapter := NewClampedAdapter()
	traits := Traits{Empathy: 0.5, Supportiveness: 0.5, Intuition: 0.5, Hopefulness: 0.5}

	adapter.Adapt(StateFrustrated, &traits)
	if math.Abs(traits.Intuition-0.55) > 1e-9 {
		t.Fatalf("expected intuition +0.05, got %v", traits.Intuition)
	}
	if math.Abs(traits.Empathy-0.525) > 1e-9 {
		t.Fatalf("expected empathy +0.025, got %v", traits.Empathy)
	}
}

func TestAdaptNeutralRegressesTowardBaselines(t *testing.T) {
	adapter := NewClampedAdapter()
	traits := Traits{Empathy: 0.95, Supportiveness: 0.95, Intuition: 0.95, Hopefulness: 0.95}

	for i := 0; i < 100; i++ {
		adapter.Adapt(StateNeutral, &traits)
	}

	checks := []struct {
		name     string
		value    float64
		baseline float64
	}{
		{"empathy", traits.Empathy, BaselineEmpathy},
		{"supportiveness", traits.Supportiveness, BaselineSupportiveness},
		{"intuition", traits.Intuition, BaselineIntuition},
		{"hopefulness", traits.Hopefulness, BaselineHopefulness},
	}
	for _, c := range checks {
		if math.Abs(c.value-c.baseline) > 0.1 {
			t.Fatalf("%s did not approach baseline %v, got %v", c.name, c.baseline, c.value)
		}
	}
}

func TestAdaptNeutralNeverOvershoots(t *testing.T) {
	adapter := NewClampedAdapter()
	traits := DefaultTraits()
	traits.Intuition = 0.2 // below its 0.6 baseline

	prev := traits.Intuition
	for i := 0; i < 200; i++ {
		adapter.Adapt(StateNeutral, &traits)
		if traits.Intuition > BaselineIntuition {
			t.Fatalf("intuition overshot baseline at step %d: %v", i, traits.Intuition)
		}
		if traits.Intuition < prev {
			t.Fatalf("intuition oscillated at step %d: %v < %v", i, traits.Intuition, prev)
		}
		prev = traits.Intuition
	}
}

func TestAdaptDeterministicDelta(t *testing.T) {
	adapter := NewClampedAdapter()

	first := DefaultTraits()
	adapter.Adapt(StateAnxious, &first)

	second := DefaultTraits()
	adapter.Adapt(StateAnxious, &second)

	if first != second {
		t.Fatalf("same input produced different traits: %+v vs %+v", first, second)
	}
}
