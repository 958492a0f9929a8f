package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Minomoreno86/EMOCIONES/internal/dialogue"
)

// Record is a stored conversation memory with its embedding.
type Record struct {
	SessionID uuid.UUID
	MessageID uuid.UUID
	Role      string
	Content   string
	Emotion   string
	Embedding []float32
}

// Retrieved is one similarity-search hit.
type Retrieved struct {
	Content    string
	Role       string
	Similarity float64
	CreatedAt  time.Time
}

// Repo is the vector-store contract the recall service runs on.
type Repo interface {
	AddMemory(ctx context.Context, rec Record) error
	SearchSimilar(ctx context.Context, sessionID uuid.UUID, embedding []float32, topK int, threshold float64) ([]Retrieved, error)
}

// Service indexes user turns and retrieves the most similar past turns. It
// implements the orchestrator's recall contract.
type Service struct {
	embedder            Embedder
	repo                Repo
	topK                int
	similarityThreshold float64
}

// NewService returns a recall service.
func NewService(embedder Embedder, repo Repo, topK int, threshold float64) *Service {
	return &Service{
		embedder:            embedder,
		repo:                repo,
		topK:                topK,
		similarityThreshold: threshold,
	}
}

// Remember embeds and stores one message. Empty content is skipped.
func (s *Service) Remember(ctx context.Context, sessionID uuid.UUID, msg dialogue.Message) error {
	embedding, err := s.embedder.EmbedDocument(ctx, msg.Content)
	if err != nil {
		return err
	}
	if embedding == nil {
		return nil
	}

	role := "assistant"
	if msg.IsFromUser {
		role = "user"
	}
	emotionName := ""
	if msg.DetectedEmotion != nil {
		emotionName = string(*msg.DetectedEmotion)
	}
	return s.repo.AddMemory(ctx, Record{
		SessionID: sessionID,
		MessageID: msg.ID,
		Role:      role,
		Content:   msg.Content,
		Emotion:   emotionName,
		Embedding: embedding,
	})
}

// Retrieve returns the contents of the stored turns most similar to query,
// best first. An empty query retrieves nothing.
func (s *Service) Retrieve(ctx context.Context, sessionID uuid.UUID, query string) ([]string, error) {
	vec, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, err
	}
	if vec == nil {
		return nil, nil
	}

	hits, err := s.repo.SearchSimilar(ctx, sessionID, vec, s.topK, s.similarityThreshold)
	if err != nil {
		return nil, err
	}
	contents := make([]string, 0, len(hits))
	for _, h := range hits {
		contents = append(contents, h.Content)
	}
	return contents, nil
}
