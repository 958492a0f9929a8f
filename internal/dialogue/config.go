package dialogue

import (
	"fmt"
	"time"
)

// Config is the immutable per-session configuration, validated once at
// construction. Malformed configuration is rejected there, never mid-turn.
type Config struct {
	// Temperature is documentation only; the canned selector does not use it
	// numerically.
	Temperature float64

	// DailySeed seeds the response selector. The default derives from the
	// day of year, so picks are stable within a calendar day.
	DailySeed uint64

	// RateLimit is the minimum interval between accepted user messages.
	RateLimit time.Duration

	// SummaryEvery triggers a summary message whenever the log length is an
	// exact multiple of it.
	SummaryEvery int

	// MaxMessages caps the log; when exceeded the log is trimmed to the most
	// recent RetainTail entries.
	MaxMessages int
	RetainTail  int
}

// DefaultConfig returns the production defaults.
func DefaultConfig(now time.Time) Config {
	return Config{
		Temperature:  0.25,
		DailySeed:    uint64(now.YearDay()),
		RateLimit:    time.Second,
		SummaryEvery: 100,
		MaxMessages:  300,
		RetainTail:   100,
	}
}

// Validate reports the first malformed field.
func (c Config) Validate() error {
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must not be negative, got %v", c.RateLimit)
	}
	if c.SummaryEvery <= 0 {
		return fmt.Errorf("summary interval must be positive, got %d", c.SummaryEvery)
	}
	if c.MaxMessages <= 0 {
		return fmt.Errorf("message cap must be positive, got %d", c.MaxMessages)
	}
	if c.RetainTail <= 0 || c.RetainTail > c.MaxMessages {
		return fmt.Errorf("retain tail must be in (0,%d], got %d", c.MaxMessages, c.RetainTail)
	}
	return nil
}
