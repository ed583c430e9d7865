package embedder

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"semascribe/internal/logger"
)

type implEmbedder struct {
	model  string
	logger logger.Logger
	client *genai.Client
}

// New creates an Embedder backed by the Gemini embedding API. The
// client is constructed once and reused for every call.
func New(ctx context.Context, apiKey, model string, log logger.Logger) (Embedder, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create embedding client: %w", err)
	}

	return &implEmbedder{
		model:  model,
		logger: log,
		client: client,
	}, nil
}

// Embed returns the embedding vector for one text span.
func (e *implEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	e.logger.Debug(ctx, "Embedding %d chars with %s", len(text), e.model)

	contents := []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}

	result, err := e.client.Models.EmbedContent(ctx, e.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		return nil, fmt.Errorf("empty embedding response")
	}

	return result.Embeddings[0].Values, nil
}
