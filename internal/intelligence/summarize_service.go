package intelligence

import (
	"context"
	"fmt"

	"github.com/studybuddy-app/studybuddy/internal/domain"
	"github.com/studybuddy-app/studybuddy/internal/llm"
)

// NoteSummary is the structured result of summarizing a note.
type NoteSummary struct {
	Summary    string      `json:"summary"`
	KeyPoints  []string    `json:"key_points"`
	Flashcards []Flashcard `json:"flashcards"`
	Source     string      `json:"source"` // "llm" or "deterministic"
}

// Flashcard is one question/answer pair generated from a note.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SummarizeService condenses a note into a summary, key points, and
// flashcards.
type SummarizeService interface {
	Summarize(ctx context.Context, note *domain.Note) (*NoteSummary, error)
}

type summarizeService struct {
	client llm.Client // nil when the LLM is disabled
}

// NewSummarizeService creates a SummarizeService. A nil client skips the LLM
// and always produces the extractive summary.
func NewSummarizeService(client llm.Client) SummarizeService {
	return &summarizeService{client: client}
}

// summarizeLLMResponse is the JSON structure expected from the LLM.
type summarizeLLMResponse struct {
	Summary    string      `json:"summary"`
	KeyPoints  []string    `json:"key_points"`
	Flashcards []Flashcard `json:"flashcards"`
}

func (s *summarizeService) Summarize(ctx context.Context, note *domain.Note) (*NoteSummary, error) {
	if s.client == nil {
		return ExtractiveSummary(note.Content), nil
	}

	summary, err := s.generate(ctx, note)
	if err != nil {
		// Any LLM failure degrades to the extractive path.
		return ExtractiveSummary(note.Content), nil
	}
	return summary, nil
}

func (s *summarizeService) generate(ctx context.Context, note *domain.Note) (*NoteSummary, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSummarize,
		SystemPrompt: summarizeSystemPrompt(),
		UserPrompt:   buildSummarizePrompt(note),
	})
	if err != nil {
		return nil, fmt.Errorf("llm summarize generation failed: %w", err)
	}

	parsed, err := llm.ExtractJSON[summarizeLLMResponse](resp.Text, validateSummarizeResponse)
	if err != nil {
		return nil, fmt.Errorf("failed to extract summary response: %w", err)
	}

	return &NoteSummary{
		Summary:    parsed.Summary,
		KeyPoints:  parsed.KeyPoints,
		Flashcards: parsed.Flashcards,
		Source:     "llm",
	}, nil
}

func validateSummarizeResponse(resp summarizeLLMResponse) error {
	if resp.Summary == "" {
		return fmt.Errorf("summary field is required")
	}
	return nil
}
