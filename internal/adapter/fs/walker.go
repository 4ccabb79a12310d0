// Package fs lists and reads the extracted-text corpus. PDF byte
// extraction happens upstream; by the time files land here they are
// best-effort UTF-8 text.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"examhelper/internal/domain"
)

// msNameMarker tags mark-scheme files in the corpus naming convention,
// e.g. computer-science_2023_s_ms_12.txt.
const msNameMarker = "_ms_"

// CorpusWalker lists corpus text files matching the configured glob
// patterns, sorted by name for reproducible chunk order.
type CorpusWalker struct {
	includes []string
	msOnly   bool
}

func NewCorpusWalker(includes []string, msOnly bool) *CorpusWalker {
	if len(includes) == 0 {
		includes = []string{"*.txt"}
	}
	return &CorpusWalker{includes: includes, msOnly: msOnly}
}

// Walk returns the matching file paths under dir. With msOnly set,
// question papers are skipped and only mark schemes survive.
func (w *CorpusWalker) Walk(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read corpus dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !w.matches(name) {
			continue
		}
		if w.msOnly && !strings.Contains(strings.ToLower(name), msNameMarker) {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)
	return files, nil
}

func (w *CorpusWalker) matches(name string) bool {
	for _, pattern := range w.includes {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// PaperType derives the document kind from the corpus file name.
func PaperType(path string) string {
	if strings.Contains(strings.ToLower(filepath.Base(path)), msNameMarker) {
		return domain.PaperTypeMS
	}
	return domain.PaperTypeQP
}

// ReadText reads a corpus file as text.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read corpus file: %w", err)
	}
	return string(data), nil
}
