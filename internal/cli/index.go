package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"examhelper/internal/adapter/chunker"
	"examhelper/internal/adapter/fs"
	"examhelper/internal/adapter/store"
	"examhelper/internal/usecase"
)

var indexIncludeQP bool

var indexCmd = &cobra.Command{
	Use:   "index [text-dir]",
	Short: "Build the vector index from the text corpus",
	Long: `Chunk every corpus text file by question identifier, fit the TF-IDF
model and write the index artifacts (chunks.json and index.db).

By default only mark-scheme files (with "_ms_" in the name) are
indexed; pass --include-qp to index question papers as well.

Examples:
  examhelper index                  # Index the configured text directory
  examhelper index data/text        # Index a specific directory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.Flags().BoolVar(&indexIncludeQP, "include-qp", false, "also index question papers")
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	textDir := filepath.Join(GetRootDir(), cfg.Corpus.TextDir)
	if len(args) > 0 {
		var err error
		textDir, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}
	info, err := os.Stat(textDir)
	if err != nil {
		return fmt.Errorf("text directory does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", textDir)
	}

	msOnly := cfg.Corpus.MSOnly && !indexIncludeQP
	walker := fs.NewCorpusWalker(cfg.Corpus.Includes, msOnly)
	st := store.New(filepath.Join(GetRootDir(), cfg.Corpus.IndexDir))
	buildUC := usecase.NewBuildIndexUseCase(walker, chunker.New(), st)

	fmt.Printf("Indexing %s...\n", textDir)

	var bar *progressbar.ProgressBar
	progress := func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("Chunking"),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		bar.Set(done)
	}

	result, err := buildUC.Build(textDir, progress)
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	fmt.Printf("\nIndexing complete:\n")
	fmt.Printf("  Files indexed: %d\n", result.Files)
	fmt.Printf("  Chunks:        %d\n", result.Chunks)
	fmt.Printf("  Vocabulary:    %d terms\n", result.VocabularySize)
	fmt.Printf("\nSaved chunks: %s\n", result.ChunksPath)
	fmt.Printf("Saved index:  %s\n", result.IndexPath)
	return nil
}
