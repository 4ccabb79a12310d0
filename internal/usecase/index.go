package usecase

import (
	"fmt"
	"path/filepath"
	"strings"

	"examhelper/internal/adapter/fs"
	"examhelper/internal/adapter/store"
	"examhelper/internal/adapter/vectorizer"
	"examhelper/internal/domain"
	"examhelper/internal/logger"
	"examhelper/internal/port"
)

// BuildIndexUseCase walks the text corpus, chunks every document, fits
// the vector model and persists both artifacts. A rebuild replaces the
// previous index wholesale; there is no incremental update.
type BuildIndexUseCase struct {
	walker  *fs.CorpusWalker
	chunker port.Chunker
	store   *store.IndexStore
}

func NewBuildIndexUseCase(walker *fs.CorpusWalker, chunker port.Chunker, st *store.IndexStore) *BuildIndexUseCase {
	return &BuildIndexUseCase{walker: walker, chunker: chunker, store: st}
}

// BuildResult reports what an index build produced.
type BuildResult struct {
	Files          int
	Chunks         int
	VocabularySize int
	ChunksPath     string
	IndexPath      string
}

// Build indexes every corpus file under textDir. The progress callback
// fires after each file; pass nil to skip reporting.
func (u *BuildIndexUseCase) Build(textDir string, progress func(done, total int)) (*BuildResult, error) {
	files, err := u.walker.Walk(textDir)
	if err != nil {
		return nil, err
	}

	var chunks []domain.Chunk
	for i, path := range files {
		text, err := fs.ReadText(path)
		if err != nil {
			return nil, err
		}

		source := filepath.Base(path)
		paperType := fs.PaperType(path)
		for _, c := range u.chunker.Split(text) {
			if strings.TrimSpace(c.Text) == "" {
				continue
			}
			c.Source = source
			c.PaperType = paperType
			chunks = append(chunks, c)
		}
		logger.Debug("chunked %s: %d chunks so far", source, len(chunks))

		if progress != nil {
			progress(i+1, len(files))
		}
	}

	model, matrix, err := vectorizer.Fit(chunks)
	if err != nil {
		return nil, fmt.Errorf("build index over %d files: %w", len(files), err)
	}

	chunksPath, indexPath, err := u.store.Save(chunks, model, matrix)
	if err != nil {
		return nil, err
	}

	return &BuildResult{
		Files:          len(files),
		Chunks:         len(chunks),
		VocabularySize: model.VocabularySize(),
		ChunksPath:     chunksPath,
		IndexPath:      indexPath,
	}, nil
}
