// Package vecstore reads the jikime-mem vector store.
//
// The store is a chromem-go persistent database: one directory per
// collection (the directory name is a hash of the collection name) holding
// one gob-encoded file per document plus a metadata file carrying the
// collection's name. Semantic queries go through chromem-go itself; counts
// and document listings read the persisted layout directly, since the
// chromem-go API exposes no document enumeration.
package vecstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	chromem "github.com/philippgille/chromem-go"

	"github.com/jikime/jmem/pkg/logger"
)

// CollectionName is the collection jikime-mem writes conversation memory to.
const CollectionName = "jm__jikime_mem"

// The store lives at a fixed location under the user's home directory.
const (
	storeDirName = ".jikime-mem"
	storeSubDir  = "vector-db"
)

// DefaultPath returns the fixed on-disk location of the store.
func DefaultPath() string {
	return filepath.Join(xdg.Home, storeDirName, storeSubDir)
}

// Config holds store configuration.
type Config struct {
	// Path overrides the store location. Empty selects DefaultPath.
	// Used by tests; the CLI always inspects the default location.
	Path string
}

// Store reads a persistent vector store directory.
type Store struct {
	path string

	mu sync.Mutex
	db *chromem.DB // lazily opened for semantic queries
}

// New opens the store at the configured path. The path must already exist;
// the tool is a reader and never creates store state.
func New(cfg *Config) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = DefaultPath()
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("vector store not found at %s: %w", path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vector store path %s is not a directory", path)
	}

	logger.Debugf("Using vector store at %s", path)
	return &Store{path: path}, nil
}

// Path returns the store directory.
func (s *Store) Path() string {
	return s.path
}

// open loads the chromem-go database on first use.
func (s *Store) open() (*chromem.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	db, err := chromem.NewPersistentDB(s.path, false)
	if err != nil {
		return nil, fmt.Errorf("failed to open vector store: %w", err)
	}

	s.db = db
	return db, nil
}

// Collection returns a handle for semantic queries against the named
// collection. The embedding function must produce vectors compatible with
// the ones stored in the collection.
func (s *Store) Collection(name string, embed chromem.EmbeddingFunc) (*Collection, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}

	col := db.GetCollection(name, embed)
	if col == nil {
		return nil, fmt.Errorf("collection not found: %s", name)
	}

	return &Collection{col: col}, nil
}

// Collection wraps a chromem-go collection for read-only queries.
type Collection struct {
	col *chromem.Collection
}

// Count returns the number of documents in the collection.
func (c *Collection) Count() int {
	return c.col.Count()
}

// Result is one semantic search hit.
type Result struct {
	ID       string
	Content  string
	Metadata map[string]string

	// Distance is the cosine distance between the query and the document,
	// in [0, 2]; 0 is identical, 2 maximally dissimilar.
	Distance float32
}

// Search embeds the query and returns up to n nearest documents ordered by
// ascending distance. Asking for more results than the collection holds is
// clamped; an empty collection or n <= 0 yields no results and no error.
func (c *Collection) Search(ctx context.Context, query string, n int) ([]Result, error) {
	count := c.col.Count()
	if n > count {
		n = count
	}
	if n <= 0 {
		return nil, nil
	}

	hits, err := c.col.Query(ctx, query, n, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	results := make([]Result, 0, len(hits))
	for _, hit := range hits {
		results = append(results, Result{
			ID:       hit.ID,
			Content:  hit.Content,
			Metadata: hit.Metadata,
			// chromem-go reports cosine similarity, not distance.
			Distance: 1 - hit.Similarity,
		})
	}

	return results, nil
}
