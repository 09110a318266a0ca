package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPattern_Match(t *testing.T) {
	p := NewPattern(`task to (.+?)(?:\s+by\b|$)`, 1)

	v, ok := p.Match("add a task to finish my essay by Friday")
	assert.True(t, ok)
	assert.Equal(t, "finish my essay", v)

	v, ok = p.Match("Add a TASK TO read chapter 4")
	assert.True(t, ok, "patterns are case-insensitive")
	assert.Equal(t, "read chapter 4", v)

	_, ok = p.Match("show my tasks")
	assert.False(t, ok)
}

func TestPattern_EmptyCaptureIsNoMatch(t *testing.T) {
	p := NewPattern(`task to(.*)`, 1)
	_, ok := p.Match("add a task to")
	assert.False(t, ok)
}

func TestLiteral_Match(t *testing.T) {
	l := NewLiteral("high", "urgent", "important", "asap")

	v, ok := l.Match("this is URGENT homework")
	assert.True(t, ok)
	assert.Equal(t, "high", v)

	_, ok = l.Match("just a regular note")
	assert.False(t, ok)
}

func TestChain_FirstMatchWins(t *testing.T) {
	c := Chain{
		NewPattern(`called (\w+)`, 1),
		NewPattern(`for (\w+)`, 1),
		NewLiteral("General", "something"),
	}

	v, ok := c.FirstMatch("a plan called Biology for Chemistry")
	assert.True(t, ok)
	assert.Equal(t, "Biology", v, "earlier matchers take precedence")

	v, ok = c.FirstMatch("a plan for Chemistry")
	assert.True(t, ok)
	assert.Equal(t, "Chemistry", v)

	v, ok = c.FirstMatch("plan something")
	assert.True(t, ok)
	assert.Equal(t, "General", v)

	_, ok = c.FirstMatch("no triggers here")
	assert.False(t, ok)
}
