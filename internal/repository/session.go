package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Minomoreno86/EMOCIONES/internal/dialogue"
	"github.com/Minomoreno86/EMOCIONES/internal/emotion"
)

// sessionModel maps to the sessions table.
type sessionModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	// Traits is the personality vector stored as JSONB.
	Traits json.RawMessage `gorm:"type:jsonb"`
}

func (sessionModel) TableName() string {
	return "sessions"
}

// messageModel maps to the messages table. Position preserves log order.
type messageModel struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	SessionID  string `gorm:"type:uuid;index"`
	Position   int
	Content    string
	IsFromUser bool
	Timestamp  time.Time
	Emotion    *string
	Confidence float64
	Rationale  string
}

func (messageModel) TableName() string {
	return "messages"
}

// SessionRepo persists whole conversation snapshots.
type SessionRepo struct {
	db *gorm.DB
}

// NewSessionRepo returns a SessionRepo.
func NewSessionRepo(db *gorm.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// SaveSession upserts the session row and replaces its message rows with the
// snapshot's, inside one transaction.
func (r *SessionRepo) SaveSession(ctx context.Context, session *dialogue.Session) error {
	traits, err := json.Marshal(session.Traits)
	if err != nil {
		return fmt.Errorf("failed to encode traits: %w", err)
	}

	records := make([]messageModel, 0, len(session.Messages))
	for i, m := range session.Messages {
		var emotionName *string
		if m.DetectedEmotion != nil {
			name := string(*m.DetectedEmotion)
			emotionName = &name
		}
		records = append(records, messageModel{
			ID:         m.ID.String(),
			SessionID:  session.ID.String(),
			Position:   i,
			Content:    m.Content,
			IsFromUser: m.IsFromUser,
			Timestamp:  m.Timestamp,
			Emotion:    emotionName,
			Confidence: m.Confidence,
			Rationale:  m.Rationale,
		})
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := sessionModel{
			ID:        session.ID.String(),
			CreatedAt: session.CreatedAt,
			UpdatedAt: time.Now(),
			Traits:    traits,
		}
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
			return fmt.Errorf("failed to upsert session: %w", err)
		}
		if err := tx.Where("session_id = ?", row.ID).Delete(&messageModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear session messages: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(records, 200).Error; err != nil {
			return fmt.Errorf("failed to insert session messages: %w", err)
		}
		return nil
	})
}

// LoadLatest returns the most recently updated session, or (nil, nil) when
// none exists.
func (r *SessionRepo) LoadLatest(ctx context.Context) (*dialogue.Session, error) {
	var rows []sessionModel
	if err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	row := rows[0]

	sessionID, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse session id: %w", err)
	}

	session := &dialogue.Session{
		ID:        sessionID,
		CreatedAt: row.CreatedAt,
		Traits:    emotion.DefaultTraits(),
	}
	if len(row.Traits) > 0 {
		if err := json.Unmarshal(row.Traits, &session.Traits); err != nil {
			return nil, fmt.Errorf("failed to decode traits: %w", err)
		}
	}

	var records []messageModel
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", row.ID).
		Order("position ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query session messages: %w", err)
	}

	session.Messages = make([]dialogue.Message, 0, len(records))
	for _, rec := range records {
		id, err := uuid.Parse(rec.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse message id: %w", err)
		}
		var detected *emotion.State
		if rec.Emotion != nil {
			state := emotion.State(*rec.Emotion)
			detected = &state
		}
		session.Messages = append(session.Messages, dialogue.Message{
			ID:              id,
			Content:         rec.Content,
			IsFromUser:      rec.IsFromUser,
			Timestamp:       rec.Timestamp,
			DetectedEmotion: detected,
			Confidence:      rec.Confidence,
			Rationale:       rec.Rationale,
		})
	}
	return session, nil
}
