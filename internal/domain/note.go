package domain

import (
	"strings"
	"time"
)

type Note struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	Subject   string
	Summary   string // filled by summarization, empty until summarized
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks note invariants before persistence.
func (n *Note) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}
