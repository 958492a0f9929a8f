package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Minomoreno86/EMOCIONES/internal/mood"
)

// moodModel maps to the mood_entries table.
type moodModel struct {
	ID    string `gorm:"type:uuid;primaryKey"`
	Date  time.Time
	Score int
	// Tags are stored as JSONB.
	Tags          json.RawMessage `gorm:"type:jsonb"`
	Note          string
	BreathMinutes int
	SleepHours    *float64
	CycleDay      *int
}

func (moodModel) TableName() string {
	return "mood_entries"
}

// MoodRepo accesses mood journal data.
type MoodRepo struct {
	db *gorm.DB
}

// NewMoodRepo returns a MoodRepo.
func NewMoodRepo(db *gorm.DB) *MoodRepo {
	return &MoodRepo{db: db}
}

func (r *MoodRepo) AddEntry(ctx context.Context, entry mood.Entry) error {
	var tags json.RawMessage
	if len(entry.Tags) > 0 {
		raw, err := json.Marshal(entry.Tags)
		if err != nil {
			return fmt.Errorf("failed to encode mood tags: %w", err)
		}
		tags = raw
	}
	row := moodModel{
		ID:            entry.ID.String(),
		Date:          entry.Date,
		Score:         entry.Score,
		Tags:          tags,
		Note:          entry.Note,
		BreathMinutes: entry.BreathMinutes,
		SleepHours:    entry.SleepHours,
		CycleDay:      entry.CycleDay,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert mood entry: %w", err)
	}
	return nil
}

// ListEntries returns all entries, newest first.
func (r *MoodRepo) ListEntries(ctx context.Context) ([]mood.Entry, error) {
	var rows []moodModel
	if err := r.db.WithContext(ctx).
		Order("date DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query mood entries: %w", err)
	}

	entries := make([]mood.Entry, 0, len(rows))
	for _, row := range rows {
		id, err := uuid.Parse(row.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse mood entry id: %w", err)
		}
		var tags []mood.Tag
		if len(row.Tags) > 0 {
			if err := json.Unmarshal(row.Tags, &tags); err != nil {
				return nil, fmt.Errorf("failed to decode mood tags: %w", err)
			}
		}
		entries = append(entries, mood.Entry{
			ID:            id,
			Date:          row.Date,
			Score:         row.Score,
			Tags:          tags,
			Note:          row.Note,
			BreathMinutes: row.BreathMinutes,
			SleepHours:    row.SleepHours,
			CycleDay:      row.CycleDay,
		})
	}
	return entries, nil
}
