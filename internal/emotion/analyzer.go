package emotion

import (
	"fmt"
	"strings"
)

// Analyzer classifies free text into an emotional state.
type Analyzer interface {
	Detect(text string) Result
}

const (
	matchScore      = 2
	negationScore   = -1
	negationWindow  = 3
	maxRawScore     = 12 // 6 distinct root matches x 2 points
	minConfidence   = 0.1
	neutralConfid   = 0.2
	negationMarker  = "¬"
	neutralRational = "sin coincidencias fuertes"
)

// LexiconAnalyzer scores root-prefix matches per emotion with a negation
// window, resolving ties by the fixed Priority order.
type LexiconAnalyzer struct {
	lexicon *Lexicon
}

// NewLexiconAnalyzer creates an analyzer. A nil lexicon selects the built-in
// Spanish one.
func NewLexiconAnalyzer(lexicon *Lexicon) *LexiconAnalyzer {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &LexiconAnalyzer{lexicon: lexicon}
}

// Detect classifies text. It never fails: empty or unmatched input produces
// a neutral result with confidence 0.2.
func (a *LexiconAnalyzer) Detect(text string) Result {
	tokens := Tokenize(text)

	type candidate struct {
		state State
		score int
		hits  []string
	}
	var candidates []candidate

	// Priority order keeps iteration deterministic; equal scores resolve to
	// the earlier entry.
	for _, state := range Priority {
		roots := a.lexicon.Roots[state]
		var hits []string
		score := 0
		for i, tok := range tokens {
			if !hasAnyPrefix(tok, roots) {
				continue
			}
			if a.negatedBefore(tokens, i) {
				score += negationScore
				hits = append(hits, negationMarker+tok)
			} else {
				score += matchScore
				hits = append(hits, tok)
			}
		}
		// Net zero means the emotion is absent, not merely weak.
		if score != 0 {
			candidates = append(candidates, candidate{state: state, score: score, hits: hits})
		}
	}

	if len(candidates) == 0 {
		return Result{State: StateNeutral, Confidence: neutralConfid, Rationale: neutralRational}
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.score > best.score {
			best = c
		}
	}

	// A fully negated emotion can still win with a negative score; the clamp
	// floors its confidence at 0.1.
	conf := clamp(float64(best.score)/float64(maxRawScore), minConfidence, 1.0)
	rationale := fmt.Sprintf("coincidencias: %s; score=%d", strings.Join(best.hits, ", "), best.score)
	return Result{State: best.state, Confidence: conf, Rationale: rationale}
}

// negatedBefore reports whether any of the negationWindow tokens preceding
// index i is a negation word.
func (a *LexiconAnalyzer) negatedBefore(tokens []string, i int) bool {
	start := i - negationWindow
	if start < 0 {
		start = 0
	}
	for j := start; j < i; j++ {
		if a.lexicon.Negations[tokens[j]] {
			return true
		}
	}
	return false
}

func hasAnyPrefix(tok string, roots []string) bool {
	for _, r := range roots {
		if strings.HasPrefix(tok, r) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
