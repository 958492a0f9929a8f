// Package templates supplies the locale-keyed phrase tables the dialogue
// engine consumes: response pools, safety phrase lists, and fixed UI strings.
// The engine treats these as opaque data, never as logic.
package templates

import "github.com/Minomoreno86/EMOCIONES/internal/emotion"

// Provider is a typed locale → table mapping. Implementations must be
// side-effect free and safe for concurrent reads.
type Provider interface {
	// Responses returns the canned template pool for an emotion. An empty
	// pool makes the selector fall back to Fallback().
	Responses(state emotion.State) []string

	// Fallback is the generic "I'm listening" response.
	Fallback() string

	// EmpathySuffix is appended when empathy is high and the user is sad or
	// anxious; EncouragementSuffix when supportiveness is high and the user
	// is hopeful.
	EmpathySuffix() string
	EncouragementSuffix() string

	// BreathingIntervention is the brief message sent on a negative streak.
	BreathingIntervention() string

	// Welcome opens a brand-new session.
	Welcome() string

	// RiskyPhrases lists directive or medical phrasings, HedgePhrase the
	// softer replacement, Disclaimer the appended notice, and
	// DisclaimerMarkers the substrings whose presence means a disclaimer is
	// already there.
	RiskyPhrases() []string
	HedgePhrase() string
	Disclaimer() string
	DisclaimerMarkers() []string

	// NoEmotionsSummary is returned when no user message carries a detected
	// emotion; SummaryFormat is the fmt template for the rollup with verbs
	// for message count, breakdown, dominant emotion, and mean confidence
	// percentage.
	NoEmotionsSummary() string
	SummaryFormat() string
}

// ForLocale returns the static table for a locale tag, defaulting to Spanish.
func ForLocale(locale string) Provider {
	switch locale {
	case "en":
		return English()
	default:
		return Spanish()
	}
}
