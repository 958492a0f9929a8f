package dialogue

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Minomoreno86/EMOCIONES/internal/emotion"
	"github.com/Minomoreno86/EMOCIONES/internal/templates"
)

// Summarizer renders a human-readable rollup of the recent emotion
// distribution across user messages.
type Summarizer struct {
	provider templates.Provider
}

// NewSummarizer returns a Summarizer reading strings from provider.
func NewSummarizer(provider templates.Provider) *Summarizer {
	return &Summarizer{provider: provider}
}

// Summarize counts detected emotions over user-authored messages. Frequency
// ties, for both ordering and the dominant emotion, break by the classifier's
// priority list so the output is deterministic.
func (s *Summarizer) Summarize(messages []Message) string {
	counts := make(map[emotion.State]int)
	total := 0
	confidenceSum := 0.0
	for _, m := range messages {
		if !m.IsFromUser || m.DetectedEmotion == nil {
			continue
		}
		counts[*m.DetectedEmotion]++
		confidenceSum += m.Confidence
		total++
	}
	if total == 0 {
		return s.provider.NoEmotionsSummary()
	}

	states := make([]emotion.State, 0, len(counts))
	for st := range counts {
		states = append(states, st)
	}
	sort.Slice(states, func(i, j int) bool {
		if counts[states[i]] != counts[states[j]] {
			return counts[states[i]] > counts[states[j]]
		}
		return emotion.PriorityIndex(states[i]) < emotion.PriorityIndex(states[j])
	})

	top := states
	if len(top) > 3 {
		top = top[:3]
	}
	parts := make([]string, 0, len(top))
	for _, st := range top {
		parts = append(parts, fmt.Sprintf("%s=%d", st, counts[st]))
	}

	dominant := states[0]
	avgConfidence := confidenceSum / float64(total)
	return fmt.Sprintf(s.provider.SummaryFormat(),
		total, strings.Join(parts, ", "), dominant, avgConfidence*100)
}
