// Package embeddings generates query embeddings for semantic search.
//
// Documents in the jikime-mem store were embedded by an external model when
// they were written; searching the store requires embedding the query text
// with the same model. Backends cover a local Ollama server, any
// OpenAI-compatible endpoint, and a deterministic placeholder for offline
// use and tests.
package embeddings

import (
	"context"
	"fmt"

	"github.com/spf13/viper"
)

// Backend types accepted by NewBackend.
const (
	BackendOllama      = "ollama"
	BackendOpenAI      = "openai"
	BackendPlaceholder = "placeholder"
)

// DefaultDimension matches nomic-embed-text, the default Ollama model.
const DefaultDimension = 768

// Backend generates embedding vectors for query text.
type Backend interface {
	// Embed returns the embedding vector for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)
	// Dimension returns the length of vectors produced by this backend,
	// or 0 when the backend does not know it up front.
	Dimension() int
	// Close releases any resources held by the backend.
	Close() error
}

// Config holds embedding backend configuration.
type Config struct {
	// BackendType selects the backend: "ollama" (the default), "openai"
	// for any OpenAI-compatible endpoint, or "placeholder".
	BackendType string

	// BaseURL is the base URL of the embedding service. Empty selects the
	// backend's default endpoint.
	BaseURL string

	// Model is the embedding model name. Empty selects the backend's
	// default model.
	Model string

	// APIKey authenticates requests to OpenAI-compatible services.
	APIKey string

	// Dimension is the embedding dimension used by the placeholder backend.
	Dimension int
}

// ConfigFromEnv reads the backend configuration from the JMEM_EMBEDDING_*
// environment variables (BACKEND, URL, MODEL, API_KEY, DIMENSION).
func ConfigFromEnv() *Config {
	v := viper.New()
	v.SetEnvPrefix("jmem_embedding")
	v.AutomaticEnv()

	return &Config{
		BackendType: v.GetString("backend"),
		BaseURL:     v.GetString("url"),
		Model:       v.GetString("model"),
		APIKey:      v.GetString("api_key"),
		Dimension:   v.GetInt("dimension"),
	}
}

// NewBackend creates the backend selected by the config.
func NewBackend(cfg *Config) (Backend, error) {
	if cfg.Dimension <= 0 {
		cfg.Dimension = DefaultDimension
	}

	switch cfg.BackendType {
	case BackendOllama, "":
		return NewOllamaBackend(cfg.BaseURL, cfg.Model), nil

	case BackendOpenAI:
		if cfg.Model == "" {
			return nil, fmt.Errorf("model is required for the %s backend", BackendOpenAI)
		}
		return NewOpenAIBackend(cfg), nil

	case BackendPlaceholder:
		return NewPlaceholderBackend(cfg.Dimension), nil

	default:
		return nil, fmt.Errorf("unknown embedding backend %q (supported: %s, %s, %s)",
			cfg.BackendType, BackendOllama, BackendOpenAI, BackendPlaceholder)
	}
}
