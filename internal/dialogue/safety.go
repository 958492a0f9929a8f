package dialogue

import (
	"regexp"
	"strings"

	"github.com/Minomoreno86/EMOCIONES/internal/templates"
)

// SafetyFilter softens directive or medical phrasing in outgoing text and
// guarantees the disclaimer appears exactly once.
type SafetyFilter struct {
	replacements []*regexp.Regexp
	hedge        string
	disclaimer   string
	markers      []string
}

// NewSafetyFilter compiles the provider's risky-phrase list into
// case-insensitive matchers.
func NewSafetyFilter(provider templates.Provider) *SafetyFilter {
	risky := provider.RiskyPhrases()
	res := make([]*regexp.Regexp, 0, len(risky))
	for _, phrase := range risky {
		res = append(res, regexp.MustCompile("(?i)"+regexp.QuoteMeta(phrase)))
	}
	return &SafetyFilter{
		replacements: res,
		hedge:        provider.HedgePhrase(),
		disclaimer:   provider.Disclaimer(),
		markers:      provider.DisclaimerMarkers(),
	}
}

// Filter replaces every risky phrase with the hedge, preserving the rest of
// the text, then appends the disclaimer unless one is already present.
func (f *SafetyFilter) Filter(text string) string {
	for _, re := range f.replacements {
		text = re.ReplaceAllString(text, f.hedge)
	}
	if !f.hasDisclaimer(text) {
		if text != "" && !strings.HasSuffix(text, " ") {
			text += " "
		}
		text += f.disclaimer
	}
	return text
}

func (f *SafetyFilter) hasDisclaimer(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range f.markers {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}
