// Package models adapts remote model providers to the dialogue contracts.
package models

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/Minomoreno86/EMOCIONES/internal/dialogue"
)

// OpenAIClient is a dialogue.CompletionClient backed by an OpenAI-compatible
// chat endpoint.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float64
}

// NewOpenAIClient creates an OpenAI-backed completion client.
func NewOpenAIClient(apiKey, model string, temperature float64) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model name cannot be empty")
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client:      &client,
		model:       model,
		temperature: temperature,
	}, nil
}

// Complete sends the system prompt and the recent turns and returns the
// assistant text. An empty completion is an error so the caller can fall back.
func (c *OpenAIClient) Complete(ctx context.Context, turns []dialogue.Turn, systemPrompt string) (string, error) {
	messages, err := buildMessages(turns, systemPrompt)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    messages,
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("failed to call completion API: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("completion returned empty content")
	}
	return text, nil
}

func buildMessages(turns []dialogue.Turn, systemPrompt string) ([]openai.ChatCompletionMessageParamUnion, error) {
	if len(turns) == 0 {
		return nil, fmt.Errorf("at least one turn is required")
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(turns)+1)
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	for _, t := range turns {
		if t.Role == "user" {
			messages = append(messages, openai.UserMessage(t.Content))
		} else {
			messages = append(messages, openai.AssistantMessage(t.Content))
		}
	}
	return messages, nil
}
