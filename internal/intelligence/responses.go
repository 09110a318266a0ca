package intelligence

import (
	"fmt"
	"strings"
	"time"

	"github.com/studybuddy-app/studybuddy/internal/domain"
)

// ContextSnapshot holds the user data the response bank draws on. Missing
// pieces (nil slices, zero counts) degrade individual answers, never fail
// them.
type ContextSnapshot struct {
	Profile      *domain.UserProfile
	TodayItems   []*domain.ScheduleItem
	PendingTasks []*domain.Task
	ClassCount   int
	NoteCount    int
	PlanCount    int
}

// InformationalResponse answers common questions from stored data without
// calling a language model. The second return is false when no canned
// category matches and the caller should fall through to the chat
// collaborator or the default response.
func InformationalResponse(message string, snap ContextSnapshot, today time.Time) (string, bool) {
	lower := strings.ToLower(message)

	switch {
	case isGreeting(lower):
		return greetingResponse(snap), true
	case containsAny(lower, "thank", "thx"):
		return "You're welcome! Good luck with your studies.", true
	case isScheduleQuery(lower):
		return scheduleResponse(snap, today), true
	case isTaskQuery(lower):
		return taskResponse(snap), true
	case strings.Contains(lower, "note"):
		return noteResponse(snap), true
	case strings.Contains(lower, "plan"):
		return planResponse(snap), true
	case strings.Contains(lower, "explain"):
		return explainResponse(lower), true
	case isMotivationQuery(lower):
		return motivationResponse(snap), true
	case containsAny(lower, "what can you do", "help me", "how do i use", "how does this work"):
		return capabilitiesResponse(), true
	}
	return "", false
}

// DefaultResponse is the personalized fallback when nothing else applies.
func DefaultResponse(snap ContextSnapshot) string {
	name := ""
	if snap.Profile != nil && snap.Profile.Name != "" {
		name = ", " + snap.Profile.Name
	}
	return fmt.Sprintf(
		"I'm not sure how to help with that%s. You have %d pending %s, %d %s, and %d %s saved. "+
			"Try asking me to add a task, set a reminder, log a study session, or create a study plan.",
		name,
		len(snap.PendingTasks), plural(len(snap.PendingTasks), "task", "tasks"),
		snap.ClassCount, plural(snap.ClassCount, "class", "classes"),
		snap.NoteCount, plural(snap.NoteCount, "note", "notes"),
	)
}

func isGreeting(lower string) bool {
	trimmed := strings.TrimRight(strings.TrimSpace(lower), "!.? ")
	for _, g := range []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"} {
		if trimmed == g || strings.HasPrefix(trimmed, g+" ") {
			return true
		}
	}
	return false
}

func isScheduleQuery(lower string) bool {
	if !containsAny(lower, "schedule", "class", "classes", "agenda") {
		return false
	}
	return containsAny(lower, "what", "show", "today", "my", "do i have", "list")
}

func isTaskQuery(lower string) bool {
	if !containsAny(lower, "task", "due", "homework", "assignment", "to do", "todo") {
		return false
	}
	return containsAny(lower, "what", "show", "list", "which", "any", "my", "do i have")
}

func isMotivationQuery(lower string) bool {
	return containsAny(lower, "motivat", "stressed", "overwhelmed", "tired", "give up", "can't focus", "cannot focus", "procrastinat")
}

func greetingResponse(snap ContextSnapshot) string {
	name := ""
	if snap.Profile != nil && snap.Profile.Name != "" {
		name = " " + snap.Profile.Name
	}
	if n := len(snap.PendingTasks); n > 0 {
		return fmt.Sprintf("Hey%s! You have %d pending %s. Want to work through them?",
			name, n, plural(n, "task", "tasks"))
	}
	return fmt.Sprintf("Hey%s! How can I help with your studies today?", name)
}

func scheduleResponse(snap ContextSnapshot, today time.Time) string {
	day := today.Weekday().String()
	if len(snap.TodayItems) == 0 {
		return fmt.Sprintf("Nothing on your schedule for %s. A good day to get ahead!", day)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Here's your %s:", day)
	for _, item := range snap.TodayItems {
		b.WriteString("\n- ")
		b.WriteString(item.Subject)
		if item.TimeSlot != "" {
			b.WriteString(" at ")
			b.WriteString(item.TimeSlot)
		}
		if item.Type != domain.ScheduleReminder {
			b.WriteString(" (")
			b.WriteString(string(item.Type))
			b.WriteString(")")
		}
	}
	return b.String()
}

func taskResponse(snap ContextSnapshot) string {
	if len(snap.PendingTasks) == 0 {
		return "You're all caught up, no pending tasks!"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "You have %d pending %s:",
		len(snap.PendingTasks), plural(len(snap.PendingTasks), "task", "tasks"))
	for _, t := range snap.PendingTasks {
		b.WriteString("\n- ")
		b.WriteString(t.Title)
		if t.DueDate != nil {
			fmt.Fprintf(&b, " (due %s)", t.DueDate.Format("Mon Jan 2"))
		}
		if t.Priority == domain.PriorityHigh {
			b.WriteString(" [high priority]")
		}
	}
	return b.String()
}

func noteResponse(snap ContextSnapshot) string {
	if snap.NoteCount == 0 {
		return "You haven't saved any notes yet. Add one with the note command, then ask me to summarize it."
	}
	return fmt.Sprintf("You have %d %s saved. Ask me to summarize one and I'll pull out the key points.",
		snap.NoteCount, plural(snap.NoteCount, "note", "notes"))
}

func planResponse(snap ContextSnapshot) string {
	if snap.PlanCount == 0 {
		return "You don't have a study plan yet. Tell me about an upcoming exam, like \"create a study plan for my Biology exam on Friday\", and I'll build one."
	}
	return fmt.Sprintf("You have %d study %s. Use the plan command to see the day-by-day breakdown.",
		snap.PlanCount, plural(snap.PlanCount, "plan", "plans"))
}

// explainTopic pulls the subject of an explain-style question out of the
// lowercased message: everything after "explain", minus filler and trailing
// punctuation.
func explainTopic(lower string) string {
	idx := strings.Index(lower, "explain")
	rest := strings.TrimSpace(lower[idx+len("explain"):])
	for _, filler := range []string{"to me", "what", "how", "why", "the"} {
		rest = strings.TrimSpace(strings.TrimPrefix(rest, filler+" "))
	}
	rest = strings.TrimRight(rest, "?!. ")
	rest = strings.TrimSuffix(rest, " to me")
	return strings.TrimSpace(rest)
}

func explainResponse(lower string) string {
	topic := explainTopic(lower)
	if topic == "" {
		return "Sure, what would you like me to explain? If it's something from class, save a note about it and I can summarize it for you."
	}
	return fmt.Sprintf("I don't have background material on %s yet. Save a note about it and ask me to summarize it, and I'll pull out the key points and make flashcards.", topic)
}

func motivationResponse(snap ContextSnapshot) string {
	if n := len(snap.PendingTasks); n > 0 {
		return fmt.Sprintf("Deep breaths! Break it down: you have %d %s, so pick the smallest one and knock it out first. Momentum beats motivation.",
			n, plural(n, "task", "tasks"))
	}
	return "You've got this! Short focused sessions with real breaks beat marathon cramming every time."
}

func capabilitiesResponse() string {
	return strings.Join([]string{
		"I can help you stay on top of school. Try things like:",
		"- \"add a task to finish my essay by Friday\"",
		"- \"remind me about my Math quiz tomorrow at 2 PM\"",
		"- \"I studied Biology for 90 minutes\"",
		"- \"create a study plan for my Chemistry final on 2026-09-15\"",
		"- \"summarize my notes on photosynthesis\"",
	}, "\n")
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
