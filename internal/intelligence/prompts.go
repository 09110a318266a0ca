package intelligence

import (
	"strings"

	"github.com/studybuddy-app/studybuddy/internal/domain"
)

func summarizeSystemPrompt() string {
	return `You are a study assistant that condenses student notes.
Respond with ONLY a JSON object in this shape:
{
  "summary": "two to three sentence summary of the note",
  "key_points": ["short key point", "..."],
  "flashcards": [{"question": "...", "answer": "..."}]
}
Keep key points short. Generate at most five key points and five flashcards.
Do not invent facts that are not in the note.`
}

func buildSummarizePrompt(note *domain.Note) string {
	var b strings.Builder
	b.WriteString("## Note Title\n")
	b.WriteString(note.Title)
	if note.Subject != "" {
		b.WriteString("\n\n## Subject\n")
		b.WriteString(note.Subject)
	}
	b.WriteString("\n\n## Note Content\n")
	b.WriteString(note.Content)
	return b.String()
}

func chatSystemPrompt(profile *domain.UserProfile) string {
	var b strings.Builder
	b.WriteString(`You are StudyBuddy, a friendly assistant for students.
Answer questions about studying, coursework, and time management.
Keep answers short and encouraging. Plain text only, no markdown.`)
	if profile != nil && profile.Name != "" {
		b.WriteString("\nThe student's name is ")
		b.WriteString(profile.Name)
		b.WriteString(".")
	}
	return b.String()
}
