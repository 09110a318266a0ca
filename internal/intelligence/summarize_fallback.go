package intelligence

import (
	"regexp"
	"strings"
)

const (
	maxSummarySentences = 3
	maxKeyPoints        = 5
	maxFlashcards       = 5
)

var sentenceSplitRe = regexp.MustCompile(`(?m)[.!?]+(?:\s+|$)`)

// definitionRe matches "X is/are Y" sentences usable as flashcard material.
var definitionRe = regexp.MustCompile(`(?i)^([\w][\w '\-]{1,60}?)\s+(?:is|are|was|were|means|refers to)\s+(.+)$`)

// ExtractiveSummary builds a summary without a language model: the leading
// sentences become the summary, sentences from the start and end of the
// content become key points, and definition-shaped sentences become
// flashcards. Output is deterministic for a given input.
func ExtractiveSummary(content string) *NoteSummary {
	sentences := splitSentences(content)

	// Sentence splitting consumes the terminal punctuation, so put it back.
	summary := strings.Join(firstN(sentences, maxSummarySentences), ". ")
	if summary == "" {
		summary = strings.TrimSpace(content)
	} else {
		summary += "."
	}

	return &NoteSummary{
		Summary:    summary,
		KeyPoints:  pickKeyPoints(sentences),
		Flashcards: buildFlashcards(sentences),
		Source:     "deterministic",
	}
}

func splitSentences(content string) []string {
	var sentences []string
	for _, raw := range sentenceSplitRe.Split(content, -1) {
		s := strings.TrimSpace(raw)
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// pickKeyPoints takes sentences alternately from the front and back of the
// note, on the theory that lecture notes open with the thesis and close
// with conclusions.
func pickKeyPoints(sentences []string) []string {
	if len(sentences) == 0 {
		return nil
	}
	if len(sentences) <= maxKeyPoints {
		return append([]string(nil), sentences...)
	}

	var points []string
	front, back := 0, len(sentences)-1
	for len(points) < maxKeyPoints && front <= back {
		points = append(points, sentences[front])
		front++
		if len(points) < maxKeyPoints && back >= front {
			points = append(points, sentences[back])
			back--
		}
	}
	return points
}

func buildFlashcards(sentences []string) []Flashcard {
	var cards []Flashcard
	for _, s := range sentences {
		m := definitionRe.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		term := strings.TrimSpace(m[1])
		answer := strings.TrimSpace(strings.TrimSuffix(m[2], "."))
		if term == "" || answer == "" {
			continue
		}
		cards = append(cards, Flashcard{
			Question: "What is " + term + "?",
			Answer:   answer,
		})
		if len(cards) == maxFlashcards {
			break
		}
	}
	return cards
}

func firstN(ss []string, n int) []string {
	if len(ss) <= n {
		return ss
	}
	return ss[:n]
}
