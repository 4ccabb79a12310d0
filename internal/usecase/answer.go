package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"examhelper/internal/adapter/detector"
	"examhelper/internal/adapter/formatter"
	"examhelper/internal/adapter/fs"
	"examhelper/internal/adapter/llm"
	"examhelper/internal/adapter/retriever"
	"examhelper/internal/adapter/store"
	"examhelper/internal/domain"
	"examhelper/internal/logger"
	"examhelper/internal/port"
)

// AnswerUseCase runs the full question-answering pipeline: command and
// marks detection, retrieval, then generation with a guaranteed
// fallback to the deterministic formatter.
type AnswerUseCase struct {
	store     *store.IndexStore
	fallback  *retriever.KeywordScorer
	generator port.Generator // nil disables generation entirely
	msPath    string         // raw mark-scheme text for the no-index path
}

func NewAnswerUseCase(st *store.IndexStore, fallback *retriever.KeywordScorer, generator port.Generator, msPath string) *AnswerUseCase {
	return &AnswerUseCase{
		store:     st,
		fallback:  fallback,
		generator: generator,
		msPath:    msPath,
	}
}

// AnswerRequest is one question to answer. MaxChunks bounds how many
// mark-scheme chunks feed the answer; QuestionID optionally narrows
// retrieval to an exact question identifier.
type AnswerRequest struct {
	QuestionText string
	QuestionID   string
	MaxChunks    int
	Debug        bool
}

// AnswerResult carries the answer plus everything derived on the way,
// for display and diagnostics.
type AnswerResult struct {
	Answer      domain.Answer
	CommandWord string
	Marks       int
	Chunks      []string
}

// Answer resolves a question end to end. Finding no matching chunks is
// not an error: the formatter renders its literal no-match answer. A
// generation failure is recovered by the formatter and surfaced in the
// short explanation only in debug mode.
func (u *AnswerUseCase) Answer(ctx context.Context, req AnswerRequest) (*AnswerResult, error) {
	questionText := strings.TrimSpace(req.QuestionText)
	if questionText == "" {
		return nil, errors.New("question text cannot be empty")
	}
	maxChunks := req.MaxChunks
	if maxChunks < 1 {
		maxChunks = 1
	}

	commandWord := detector.CommandWord(questionText)
	marks := detector.Marks(questionText)
	logger.Debug("command_word=%s marks=%d", commandWord, marks)

	chunks, err := u.retrieve(questionText, req.QuestionID, maxChunks)
	if err != nil {
		return nil, err
	}
	for i, c := range chunks {
		logger.Debug("chunk %d: %s", i+1, firstChars(c, 200))
	}

	answer := u.respond(ctx, questionText, commandWord, marks, chunks, req.Debug)

	return &AnswerResult{
		Answer:      answer,
		CommandWord: commandWord,
		Marks:       marks,
		Chunks:      chunks,
	}, nil
}

// retrieve prefers the persisted vector index; when its artifacts are
// missing or corrupt it re-scores the raw mark-scheme text per query.
func (u *AnswerUseCase) retrieve(questionText, questionID string, maxChunks int) ([]string, error) {
	chunks, model, matrix, err := u.store.Load()
	if err != nil {
		if !errors.Is(err, store.ErrNoIndex) {
			return nil, err
		}
		logger.Debug("no index available, scoring raw text: %v", err)
		return u.retrieveWithoutIndex(questionText, maxChunks)
	}

	engine, err := retriever.NewEngine(chunks, model, matrix)
	if err != nil {
		return nil, err
	}

	results := engine.Query(questionText, maxChunks, questionID)
	texts := make([]string, len(results))
	for i, r := range results {
		texts[i] = r.Text
	}
	return texts, nil
}

func (u *AnswerUseCase) retrieveWithoutIndex(questionText string, maxChunks int) ([]string, error) {
	if u.msPath == "" {
		return nil, store.ErrNoIndex
	}
	msText, err := fs.ReadText(u.msPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrNoIndex, err)
	}
	return u.fallback.BestChunks(questionText, msText, maxChunks), nil
}

// respond generates when a back-end is configured and falls back to the
// formatter on any generation failure. The fallback is a contract, not
// an optimization: a broken provider must stay invisible to the user
// outside debug mode.
func (u *AnswerUseCase) respond(ctx context.Context, questionText, commandWord string, marks int, chunks []string, debug bool) domain.Answer {
	if u.generator == nil {
		return formatter.Format(questionText, commandWord, marks, chunks)
	}

	prompt := llm.BuildPrompt(questionText, commandWord, marks, chunks)
	raw, err := u.generator.Generate(ctx, prompt)
	if err != nil {
		logger.Warn("generation failed, using local formatter: %v", err)
		answer := formatter.Format(questionText, commandWord, marks, chunks)
		if debug {
			answer.Short = fmt.Sprintf("[generation fallback: %v] %s", err, answer.Short)
		}
		return answer
	}

	exact, short := llm.ParseSections(raw)
	return domain.Answer{Exact: exact, Short: short}
}

func firstChars(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
