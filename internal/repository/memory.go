package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/Minomoreno86/EMOCIONES/internal/memory"
)

// memoryModel maps to the memories table.
type memoryModel struct {
	ID        int
	SessionID string `gorm:"type:uuid;index"`
	MessageID string `gorm:"type:uuid"`
	Role      string
	Content   string
	Emotion   string
	// Embedding stores the vector representation for similarity search.
	Embedding *pgvector.Vector `gorm:"type:vector"`
	CreatedAt time.Time
}

func (memoryModel) TableName() string {
	return "memories"
}

// MemoryRepo accesses the vector memory table.
type MemoryRepo struct {
	db *gorm.DB
}

// NewMemoryRepo returns a MemoryRepo.
func NewMemoryRepo(db *gorm.DB) *MemoryRepo {
	return &MemoryRepo{db: db}
}

func (r *MemoryRepo) AddMemory(ctx context.Context, rec memory.Record) error {
	var vector *pgvector.Vector
	if len(rec.Embedding) > 0 {
		v := pgvector.NewVector(rec.Embedding)
		vector = &v
	}
	row := memoryModel{
		SessionID: rec.SessionID.String(),
		MessageID: rec.MessageID.String(),
		Role:      rec.Role,
		Content:   rec.Content,
		Emotion:   rec.Emotion,
		Embedding: vector,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert memory: %w", err)
	}
	return nil
}

func (r *MemoryRepo) SearchSimilar(ctx context.Context, sessionID uuid.UUID, embedding []float32, topK int, threshold float64) ([]memory.Retrieved, error) {
	if len(embedding) == 0 {
		return nil, nil
	}

	query := `
		SELECT role, content, created_at, 1 - (embedding <=> $1) AS similarity
		FROM memories
		WHERE session_id = $2
		  AND embedding IS NOT NULL
		  AND 1 - (embedding <=> $1) > $3
		ORDER BY similarity DESC
		LIMIT $4`

	vector := pgvector.NewVector(embedding)
	var results []memory.Retrieved
	if err := r.db.WithContext(ctx).
		Raw(query, vector, sessionID.String(), threshold, topK).
		Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to search similar memories: %w", err)
	}
	return results, nil
}
