// Package mood implements the mood journal: 1-5 score entries, Pearson
// correlations against lifestyle variables, and the mindfulness advisor.
package mood

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Tag is a quick label attached to a journal entry.
type Tag string

const (
	TagCalm     Tag = "calm"
	TagAnxious  Tag = "anxious"
	TagSad      Tag = "sad"
	TagHopeful  Tag = "hopeful"
	TagNeutral  Tag = "neutral"
	TagStressed Tag = "stressed"
)

// Entry is one mood journal record. SleepHours and CycleDay are optional;
// correlations over them require every entry to carry a value.
type Entry struct {
	ID            uuid.UUID `json:"id"`
	Date          time.Time `json:"date"`
	Score         int       `json:"score"` // 1 (lowest) to 5 (highest)
	Tags          []Tag     `json:"tags,omitempty"`
	Note          string    `json:"note,omitempty"`
	BreathMinutes int       `json:"breath_minutes"`
	SleepHours    *float64  `json:"sleep_hours,omitempty"`
	CycleDay      *int      `json:"cycle_day,omitempty"`
}

// Validate checks the score range.
func (e Entry) Validate() error {
	if e.Score < 1 || e.Score > 5 {
		return fmt.Errorf("mood score must be in [1,5], got %d", e.Score)
	}
	return nil
}
