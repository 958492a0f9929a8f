// Package prompt assembles the system prompt handed to a remote completion
// client.
package prompt

import (
	"bytes"
	"fmt"
	"time"

	"github.com/Minomoreno86/EMOCIONES/internal/emotion"
)

// Builder renders the layered system prompt from the current personality
// vector, the detected emotion, and any recalled memories.
type Builder struct {
	nowFunc func() time.Time
}

// NewBuilder creates a system prompt Builder.
func NewBuilder() *Builder {
	return &Builder{nowFunc: time.Now}
}

// BuildSystem renders the system prompt.
func (b *Builder) BuildSystem(traits emotion.Traits, state emotion.State, recalled []string) (string, error) {
	data := struct {
		Traits   emotion.Traits
		State    emotion.State
		Recalled []string
		Now      string
	}{
		Traits:   traits,
		State:    state,
		Recalled: recalled,
		Now:      b.nowFunc().Format(time.RFC3339),
	}

	var buf bytes.Buffer
	if err := systemTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to build system prompt: %w", err)
	}
	return buf.String(), nil
}

func fmtPercent(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}
