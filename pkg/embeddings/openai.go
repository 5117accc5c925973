package embeddings

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIBackend generates embeddings through an OpenAI-compatible API.
// Setting BaseURL allows local OpenAI-compatible servers (vLLM, Ollama's
// v1 API, LM Studio) to be used in place of the hosted service.
type OpenAIBackend struct {
	client    *openai.Client
	model     openai.EmbeddingModel
	dimension int
}

// NewOpenAIBackend creates a backend for an OpenAI-compatible endpoint.
// An empty BaseURL selects the hosted OpenAI API.
func NewOpenAIBackend(cfg *Config) *OpenAIBackend {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAIBackend{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     openai.EmbeddingModel(cfg.Model),
		dimension: cfg.Dimension,
	}
}

// Embed generates an embedding for a single text.
func (b *OpenAIBackend) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := b.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input:          []string{text},
		Model:          b.model,
		EncodingFormat: openai.EmbeddingEncodingFormatFloat,
	})
	if err != nil {
		return nil, parseAPIError(err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("empty embedding response")
	}

	return resp.Data[0].Embedding, nil
}

// Dimension returns the configured embedding dimension, or 0 when the
// model's dimension was not configured.
func (b *OpenAIBackend) Dimension() int {
	return b.dimension
}

// Close releases any resources.
func (*OpenAIBackend) Close() error {
	return nil
}

// parseAPIError extracts a human-readable error from the API response.
func parseAPIError(err error) error {
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("embedding API error %d: %s", reqErr.HTTPStatusCode, string(reqErr.Body))
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("embedding API error %d: %s", apiErr.HTTPStatusCode, apiErr.Message)
	}

	return fmt.Errorf("embedding request failed: %w", err)
}
