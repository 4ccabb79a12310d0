// Package store persists the index artifacts: the ordered chunk
// collection as human-inspectable JSON and the fitted vector model in a
// bbolt database. The two artifacts key matrix rows to chunks purely by
// position, so they are always written and read as a unit.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"examhelper/internal/adapter/vectorizer"
	"examhelper/internal/domain"
)

const (
	chunksFile = "chunks.json"
	indexFile  = "index.db"
)

var (
	bucketModel = []byte("model")
	keyModel    = []byte("tfidf")
)

// ErrNoIndex reports that the index artifacts are missing or unreadable.
// Callers treat this as "no index available" and take the slower
// raw-text fallback path rather than failing the query.
var ErrNoIndex = errors.New("no index available")

// IndexStore reads and writes the index artifacts under one directory.
type IndexStore struct {
	dir string
}

func New(dir string) *IndexStore {
	return &IndexStore{dir: dir}
}

// ChunksPath returns the location of the chunk artifact.
func (s *IndexStore) ChunksPath() string {
	return filepath.Join(s.dir, chunksFile)
}

// IndexPath returns the location of the vector-model artifact.
func (s *IndexStore) IndexPath() string {
	return filepath.Join(s.dir, indexFile)
}

// Exists reports whether both artifacts are present. Either one alone
// is useless, so a partial pair counts as no index.
func (s *IndexStore) Exists() bool {
	for _, p := range []string{s.ChunksPath(), s.IndexPath()} {
		if _, err := os.Stat(p); err != nil {
			return false
		}
	}
	return true
}

// Save writes both artifacts. The chunk JSON lands via rename so a
// crashed write never leaves a truncated file, and the model goes into
// bbolt in a single transaction. Concurrent writers of the same
// directory must be serialized by the caller.
func (s *IndexStore) Save(chunks []domain.Chunk, model *vectorizer.Vectorizer, matrix vectorizer.Matrix) (string, string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create index dir: %w", err)
	}

	chunkData, err := vectorizer.MarshalChunks(chunks)
	if err != nil {
		return "", "", fmt.Errorf("encode chunks: %w", err)
	}
	tmp := s.ChunksPath() + ".tmp"
	if err := os.WriteFile(tmp, chunkData, 0o644); err != nil {
		return "", "", fmt.Errorf("write chunks: %w", err)
	}
	if err := os.Rename(tmp, s.ChunksPath()); err != nil {
		return "", "", fmt.Errorf("write chunks: %w", err)
	}

	modelData, err := vectorizer.Marshal(model, matrix)
	if err != nil {
		return "", "", fmt.Errorf("encode vector model: %w", err)
	}

	db, err := bbolt.Open(s.IndexPath(), 0o600, nil)
	if err != nil {
		return "", "", fmt.Errorf("open index db: %w", err)
	}
	defer db.Close()

	err = db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketModel)
		if err != nil {
			return err
		}
		return b.Put(keyModel, modelData)
	})
	if err != nil {
		return "", "", fmt.Errorf("write vector model: %w", err)
	}

	return s.ChunksPath(), s.IndexPath(), nil
}

// Load reads both artifacts back. Any missing or corrupt artifact maps
// to ErrNoIndex so callers can fall back instead of hard-failing.
func (s *IndexStore) Load() ([]domain.Chunk, *vectorizer.Vectorizer, vectorizer.Matrix, error) {
	chunkData, err := os.ReadFile(s.ChunksPath())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrNoIndex, err)
	}
	chunks, err := vectorizer.UnmarshalChunks(chunkData)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrNoIndex, err)
	}

	db, err := bbolt.Open(s.IndexPath(), 0o600, &bbolt.Options{ReadOnly: true})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrNoIndex, err)
	}
	defer db.Close()

	var modelData []byte
	err = db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketModel)
		if b == nil {
			return errors.New("model bucket missing")
		}
		data := b.Get(keyModel)
		if data == nil {
			return errors.New("model entry missing")
		}
		modelData = append([]byte(nil), data...)
		return nil
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrNoIndex, err)
	}

	model, matrix, err := vectorizer.Unmarshal(modelData)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrNoIndex, err)
	}
	if len(matrix) != len(chunks) {
		return nil, nil, nil, fmt.Errorf("%w: %d chunks but %d matrix rows", ErrNoIndex, len(chunks), len(matrix))
	}
	return chunks, model, matrix, nil
}
