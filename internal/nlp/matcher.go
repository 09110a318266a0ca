// Package nlp implements the message-understanding pipeline: intent
// classification, regex-chain field extraction, relative date resolution,
// and study plan synthesis. Every function is a pure computation over the
// message text and an explicit "today" parameter.
package nlp

import (
	"regexp"
	"strings"
)

// Matcher extracts a single field value from a message. Implementations are
// arranged in ordered chains where the first non-empty capture wins.
type Matcher interface {
	Match(message string) (string, bool)
}

// Pattern matches a regular expression and yields one capture group.
type Pattern struct {
	re    *regexp.Regexp
	group int
}

// NewPattern compiles a case-insensitive pattern yielding capture group n.
func NewPattern(expr string, group int) Pattern {
	return Pattern{re: regexp.MustCompile(`(?i)` + expr), group: group}
}

func (p Pattern) Match(message string) (string, bool) {
	m := p.re.FindStringSubmatch(message)
	if m == nil || p.group >= len(m) {
		return "", false
	}
	v := strings.TrimSpace(m[p.group])
	if v == "" {
		return "", false
	}
	return v, true
}

// Literal yields a fixed value when the message contains any trigger
// substring (case-insensitive).
type Literal struct {
	triggers []string
	value    string
}

// NewLiteral creates a Literal matcher.
func NewLiteral(value string, triggers ...string) Literal {
	return Literal{triggers: triggers, value: value}
}

func (l Literal) Match(message string) (string, bool) {
	lower := strings.ToLower(message)
	for _, t := range l.triggers {
		if strings.Contains(lower, t) {
			return l.value, true
		}
	}
	return "", false
}

// Chain is an ordered list of matchers tried in sequence. The first matcher
// producing a non-empty capture wins; there is no scoring or merging.
type Chain []Matcher

// FirstMatch runs the chain against the message.
func (c Chain) FirstMatch(message string) (string, bool) {
	for _, m := range c {
		if v, ok := m.Match(message); ok {
			return v, true
		}
	}
	return "", false
}
