// Package dialogue owns the per-turn conversation pipeline: classification,
// personality adaptation, response selection, safety filtering, history
// maintenance, and persistence hand-off.
package dialogue

import (
	"time"

	"github.com/google/uuid"

	"github.com/Minomoreno86/EMOCIONES/internal/emotion"
)

// Message is one conversation turn. Created once, never mutated after being
// appended to the log.
type Message struct {
	ID              uuid.UUID      `json:"id"`
	Content         string         `json:"content"`
	IsFromUser      bool           `json:"is_from_user"`
	Timestamp       time.Time      `json:"timestamp"`
	DetectedEmotion *emotion.State `json:"detected_emotion,omitempty"`
	Confidence      float64        `json:"confidence"`
	Rationale       string         `json:"rationale,omitempty"`
}

// Session is the ordered conversation log plus the per-session mutable state
// the orchestrator maintains. A session has a single writer; concurrent turns
// are serialized by the orchestrator.
type Session struct {
	ID        uuid.UUID      `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Messages  []Message      `json:"messages"`
	Traits    emotion.Traits `json:"traits"`
}

// NewSession creates an empty session with traits at their baselines.
func NewSession(now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		CreatedAt: now,
		Traits:    emotion.DefaultTraits(),
	}
}

// Snapshot returns a deep copy safe to hand to the asynchronous persistence
// path while the orchestrator keeps mutating the original.
func (s *Session) Snapshot() *Session {
	cp := *s
	cp.Messages = make([]Message, len(s.Messages))
	copy(cp.Messages, s.Messages)
	return &cp
}

// Analytics is a point-in-time rollup of the conversation.
type Analytics struct {
	TotalMessages        int                   `json:"total_messages"`
	EmotionDistribution  map[emotion.State]int `json:"emotion_distribution"`
	AdaptationLevel      float64               `json:"adaptation_level"`
	AverageConfidence    float64               `json:"average_confidence"`
	ConversationDuration time.Duration         `json:"conversation_duration"`
}
