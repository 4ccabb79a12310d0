package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"examhelper/internal/adapter/retriever"
	"examhelper/internal/adapter/store"
)

var (
	queryText string
	queryTopK int
	queryQID  string
	queryJSON bool
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Search the indexed mark-scheme chunks",
	Long: `Rank indexed chunks against a question using TF-IDF similarity with
acronym expansion and keyword boosting.

Examples:
  examhelper query -q "What is the purpose of the ALU?"
  examhelper query -q "Define a register" --question-id "1 (a)" --json`,
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringVarP(&queryText, "query", "q", "", "question text (required)")
	queryCmd.Flags().IntVarP(&queryTopK, "top-k", "k", 0, "number of results (default from config)")
	queryCmd.Flags().StringVar(&queryQID, "question-id", "", "restrict to an exact question id, e.g. \"2 (a)\"")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output as JSON")
	queryCmd.MarkFlagRequired("query")
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	st := store.New(filepath.Join(GetRootDir(), cfg.Corpus.IndexDir))
	chunks, model, matrix, err := st.Load()
	if err != nil {
		return fmt.Errorf("no usable index, run 'examhelper index' first: %w", err)
	}

	engine, err := retriever.NewEngine(chunks, model, matrix)
	if err != nil {
		return err
	}

	topK := cfg.Retrieve.MaxChunks
	if queryTopK > 0 {
		topK = queryTopK
	}

	results := engine.Query(queryText, topK, queryQID)

	if queryJSON {
		output, _ := json.MarshalIndent(results, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}
	fmt.Printf("Found %d results for: %s\n\n", len(results), queryText)
	for i, r := range results {
		qid := r.QID
		if qid == "" {
			qid = "-"
		}
		fmt.Printf("--- [%d] %s (qid: %s) ---\n", i+1, r.Source, qid)
		text := r.Text
		if len(text) > 500 {
			text = text[:500] + "..."
		}
		fmt.Println(text)
		fmt.Println()
	}
	return nil
}
