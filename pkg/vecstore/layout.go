package vecstore

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jikime/jmem/pkg/logger"
)

// metadataFileName is the reserved per-collection file holding the
// collection's name and metadata instead of a document.
const metadataFileName = "00000000"

// Document is one stored record, decoded from the persisted layout. Field
// names and types mirror the store's on-disk gob encoding.
type Document struct {
	ID        string
	Metadata  map[string]string
	Embedding []float32
	Content   string
}

// collectionMeta mirrors the gob encoding of a collection's metadata file.
type collectionMeta struct {
	Name     string
	Metadata map[string]string
}

// CollectionStat describes one collection found in the store.
type CollectionStat struct {
	Name  string
	Count int

	// Err records a per-collection count failure; other collections may
	// still be inspected.
	Err error
}

// Collections inspects every collection directory in the store, sorted by
// collection name. A failure counting a single collection is recorded on
// its stat instead of aborting the listing.
func (s *Store) Collections() ([]CollectionStat, error) {
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read store directory: %w", err)
	}

	var stats []CollectionStat
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dir := filepath.Join(s.path, entry.Name())
		stat := CollectionStat{Name: entry.Name()}

		// The directory name is a hash; the readable name lives in the
		// metadata file. Fall back to the hash if it cannot be read.
		if meta, err := readCollectionMeta(dir); err == nil && meta.Name != "" {
			stat.Name = meta.Name
		} else if err != nil {
			logger.Debugf("No readable metadata in collection dir %s: %v", entry.Name(), err)
		}

		files, err := docFiles(dir)
		if err != nil {
			stat.Err = err
		} else {
			stat.Count = len(files)
		}

		stats = append(stats, stat)
	}

	sort.Slice(stats, func(i, j int) bool { return stats[i].Name < stats[j].Name })
	return stats, nil
}

// Count returns the number of documents persisted for the named collection.
func (s *Store) Count(name string) (int, error) {
	dir, err := s.collectionDir(name)
	if err != nil {
		return 0, err
	}

	files, err := docFiles(dir)
	if err != nil {
		return 0, err
	}
	return len(files), nil
}

// Peek returns up to limit documents in layout order. Limits above the
// document count are clamped; limit <= 0 returns nothing.
func (s *Store) Peek(name string, limit int) ([]Document, error) {
	if limit <= 0 {
		return nil, nil
	}
	return s.readDocuments(name, limit)
}

// Documents returns every document in the named collection in layout order.
func (s *Store) Documents(name string) ([]Document, error) {
	return s.readDocuments(name, -1)
}

func (s *Store) readDocuments(name string, limit int) ([]Document, error) {
	dir, err := s.collectionDir(name)
	if err != nil {
		return nil, err
	}

	files, err := docFiles(dir)
	if err != nil {
		return nil, err
	}
	if limit >= 0 && limit < len(files) {
		files = files[:limit]
	}

	docs := make([]Document, 0, len(files))
	for _, path := range files {
		var doc Document
		if err := decodeGobFile(path, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode document %s: %w", filepath.Base(path), err)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// collectionDir locates the directory persisting the named collection by
// matching the name recorded in each directory's metadata file.
func (s *Store) collectionDir(name string) (string, error) {
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read store directory: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dir := filepath.Join(s.path, entry.Name())
		meta, err := readCollectionMeta(dir)
		if err != nil {
			continue
		}
		if meta.Name == name {
			return dir, nil
		}
	}

	return "", fmt.Errorf("collection not found: %s", name)
}

// docFiles lists the document files in a collection directory in layout
// order (lexicographic by file name, which os.ReadDir guarantees).
func docFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".gob") && !strings.HasSuffix(name, ".gob.gz") {
			continue
		}
		if strings.HasPrefix(name, metadataFileName+".") {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}

	return files, nil
}

func readCollectionMeta(dir string) (*collectionMeta, error) {
	for _, name := range []string{metadataFileName + ".gob", metadataFileName + ".gob.gz"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		var meta collectionMeta
		if err := decodeGobFile(path, &meta); err != nil {
			return nil, err
		}
		return &meta, nil
	}

	return nil, fmt.Errorf("no metadata file in %s", dir)
}

// decodeGobFile decodes a gob-encoded file, transparently handling the
// gzip-compressed variant.
func decodeGobFile(path string, obj any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return err
		}
		defer gz.Close()
		r = gz
	}

	return gob.NewDecoder(r).Decode(obj)
}
