package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"examhelper/internal/adapter/llm"
	"examhelper/internal/adapter/retriever"
	"examhelper/internal/adapter/store"
	"examhelper/internal/port"
	"examhelper/internal/usecase"
)

var (
	answerText      string
	answerQID       string
	answerMaxChunks int
	answerProvider  string
	answerModel     string
	answerNoLLM     bool
)

var answerCmd = &cobra.Command{
	Use:   "answer",
	Short: "Answer an exam question from the mark-scheme corpus",
	Long: `Detect the command word and marks, retrieve the best-matching
mark-scheme chunks, and produce a two-section answer. With --no-llm (or
when generation fails) the answer comes from the deterministic local
formatter.

Examples:
  examhelper answer -q "Explain the role of the control unit. (4)"
  examhelper answer -q "Define a register" --question-id "1 (a)" --no-llm`,
	RunE: runAnswer,
}

func init() {
	rootCmd.AddCommand(answerCmd)
	answerCmd.Flags().StringVarP(&answerText, "query", "q", "", "question text (required)")
	answerCmd.Flags().StringVar(&answerQID, "question-id", "", "restrict retrieval to an exact question id")
	answerCmd.Flags().IntVar(&answerMaxChunks, "max-chunks", 0, "max mark-scheme chunks to use (default from config)")
	answerCmd.Flags().StringVar(&answerProvider, "provider", "", "generation provider (default from config)")
	answerCmd.Flags().StringVar(&answerModel, "model", "", "model name for the provider (default from config)")
	answerCmd.Flags().BoolVar(&answerNoLLM, "no-llm", false, "disable generation and use the local formatter")
	answerCmd.MarkFlagRequired("query")
}

func runAnswer(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	var generator port.Generator
	if !answerNoLLM && cfg.LLM.Enabled {
		provider := cfg.LLM.Provider
		if answerProvider != "" {
			provider = answerProvider
		}
		model := cfg.LLM.Model
		if answerModel != "" {
			model = answerModel
		}
		var err error
		generator, err = llm.New(provider, model)
		if err != nil {
			return err
		}
	}

	maxChunks := cfg.Retrieve.MaxChunks
	if answerMaxChunks > 0 {
		maxChunks = answerMaxChunks
	}

	st := store.New(filepath.Join(GetRootDir(), cfg.Corpus.IndexDir))
	msPath := cfg.Corpus.MSPath
	if msPath != "" && !filepath.IsAbs(msPath) {
		msPath = filepath.Join(GetRootDir(), msPath)
	}
	answerUC := usecase.NewAnswerUseCase(st, retriever.NewKeywordScorer(), generator, msPath)

	result, err := answerUC.Answer(cmd.Context(), usecase.AnswerRequest{
		QuestionText: answerText,
		QuestionID:   answerQID,
		MaxChunks:    maxChunks,
		Debug:        debug,
	})
	if err != nil {
		return err
	}

	fmt.Println("Exact Answer:")
	fmt.Println(result.Answer.Exact)
	fmt.Println()
	fmt.Println("Short Explanation:")
	fmt.Println(result.Answer.Short)
	return nil
}
