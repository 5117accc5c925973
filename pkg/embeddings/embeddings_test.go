package embeddings

import (
	"context"
	"math"
	"testing"
)

func TestPlaceholderDeterministic(t *testing.T) {
	backend := NewPlaceholderBackend(64)
	ctx := context.Background()

	first, err := backend.Embed(ctx, "hello world")
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}
	second, err := backend.Embed(ctx, "hello world")
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}

	if len(first) != 64 {
		t.Errorf("Expected dimension 64, got %d", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatal("Embeddings for the same text should be identical")
		}
	}

	other, err := backend.Embed(ctx, "different text")
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}
	same := true
	for i := range first {
		if first[i] != other[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("Embeddings for different texts should differ")
	}
}

func TestPlaceholderNormalized(t *testing.T) {
	backend := NewPlaceholderBackend(384)

	embedding, err := backend.Embed(context.Background(), "normalize me")
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}

	var norm float64
	for _, v := range embedding {
		norm += float64(v) * float64(v)
	}
	if math.Abs(math.Sqrt(norm)-1.0) > 1e-4 {
		t.Errorf("Expected unit vector, got norm %f", math.Sqrt(norm))
	}
}

func TestPlaceholderDefaultDimension(t *testing.T) {
	backend := NewPlaceholderBackend(0)
	if backend.Dimension() != DefaultDimension {
		t.Errorf("Expected dimension %d, got %d", DefaultDimension, backend.Dimension())
	}
}

func TestNewBackendSelection(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		check   func(Backend) bool
	}{
		{
			name:   "empty type defaults to ollama",
			config: &Config{},
			check: func(b Backend) bool {
				_, ok := b.(*OllamaBackend)
				return ok
			},
		},
		{
			name:   "explicit ollama",
			config: &Config{BackendType: BackendOllama},
			check: func(b Backend) bool {
				return b.Dimension() == ollamaDimension
			},
		},
		{
			name:   "placeholder honors dimension",
			config: &Config{BackendType: BackendPlaceholder, Dimension: 128},
			check: func(b Backend) bool {
				return b.Dimension() == 128
			},
		},
		{
			name:    "openai requires a model",
			config:  &Config{BackendType: BackendOpenAI},
			wantErr: true,
		},
		{
			name:   "openai with model",
			config: &Config{BackendType: BackendOpenAI, Model: "text-embedding-3-small", APIKey: "test"},
			check: func(b Backend) bool {
				_, ok := b.(*OpenAIBackend)
				return ok
			},
		},
		{
			name:    "unknown backend type",
			config:  &Config{BackendType: "bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend, err := NewBackend(tt.config)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewBackend failed: %v", err)
			}
			defer backend.Close()

			if tt.check != nil && !tt.check(backend) {
				t.Errorf("Backend check failed, got %T", backend)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) { //nolint:paralleltest // uses t.Setenv
	t.Setenv("JMEM_EMBEDDING_BACKEND", "placeholder")
	t.Setenv("JMEM_EMBEDDING_URL", "http://localhost:9999")
	t.Setenv("JMEM_EMBEDDING_MODEL", "test-model")
	t.Setenv("JMEM_EMBEDDING_API_KEY", "secret")
	t.Setenv("JMEM_EMBEDDING_DIMENSION", "42")

	cfg := ConfigFromEnv()

	if cfg.BackendType != "placeholder" {
		t.Errorf("BackendType = %q, want placeholder", cfg.BackendType)
	}
	if cfg.BaseURL != "http://localhost:9999" {
		t.Errorf("BaseURL = %q, want http://localhost:9999", cfg.BaseURL)
	}
	if cfg.Model != "test-model" {
		t.Errorf("Model = %q, want test-model", cfg.Model)
	}
	if cfg.APIKey != "secret" {
		t.Errorf("APIKey = %q, want secret", cfg.APIKey)
	}
	if cfg.Dimension != 42 {
		t.Errorf("Dimension = %d, want 42", cfg.Dimension)
	}
}

func TestOllamaDefaults(t *testing.T) {
	backend := NewOllamaBackend("", "")

	if backend.baseURL != defaultOllamaURL {
		t.Errorf("baseURL = %q, want %q", backend.baseURL, defaultOllamaURL)
	}
	if backend.model != defaultOllamaModel {
		t.Errorf("model = %q, want %q", backend.model, defaultOllamaModel)
	}
	if backend.Dimension() != ollamaDimension {
		t.Errorf("Dimension() = %d, want %d", backend.Dimension(), ollamaDimension)
	}
}
