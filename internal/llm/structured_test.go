package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSummary struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"key_points"`
}

func TestExtractJSON_CleanJSON(t *testing.T) {
	raw := `{"summary":"Cells are small.","key_points":["organelles"]}`
	result, err := ExtractJSON[testSummary](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Cells are small.", result.Summary)
	assert.Equal(t, []string{"organelles"}, result.KeyPoints)
}

func TestExtractJSON_FencedJSON(t *testing.T) {
	raw := "```json\n{\"summary\":\"Fenced.\"}\n```"
	result, err := ExtractJSON[testSummary](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Fenced.", result.Summary)
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	raw := "Sure! Here's the summary you asked for:\n{\"summary\":\"Wrapped.\"}\nLet me know if you need more."
	result, err := ExtractJSON[testSummary](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Wrapped.", result.Summary)
}

func TestExtractJSON_NestedObjects(t *testing.T) {
	type card struct {
		Question string `json:"question"`
	}
	type payload struct {
		Summary    string `json:"summary"`
		Flashcards []card `json:"flashcards"`
	}
	raw := `{"summary":"ok","flashcards":[{"question":"What is a cell?"}]}`
	result, err := ExtractJSON[payload](raw, nil)
	require.NoError(t, err)
	require.Len(t, result.Flashcards, 1)
	assert.Equal(t, "What is a cell?", result.Flashcards[0].Question)
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	raw := `{"summary":"Sets are written {a, b}."}`
	result, err := ExtractJSON[testSummary](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Sets are written {a, b}.", result.Summary)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON[testSummary]("I can't produce a summary for that.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	_, err := ExtractJSON[testSummary](`{"summary": broken}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidationFailure(t *testing.T) {
	validator := func(s testSummary) error {
		if s.Summary == "" {
			return fmt.Errorf("summary is required")
		}
		return nil
	}
	_, err := ExtractJSON(`{"key_points":["a"]}`, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestExtractJSON_ValidationSuccess(t *testing.T) {
	validator := func(s testSummary) error {
		if s.Summary == "" {
			return fmt.Errorf("summary is required")
		}
		return nil
	}
	result, err := ExtractJSON(`{"summary":"ok"}`, validator)
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Summary)
}
