package nlp

import (
	"regexp"
	"strings"
)

var planWordRe = regexp.MustCompile(`\bplan\b`)

// Intent is the classified purpose of a chat message.
type Intent string

const (
	IntentSchedule      Intent = "schedule"
	IntentNoteSummary   Intent = "note_summary"
	IntentStudyPlan     Intent = "study_plan"
	IntentTask          Intent = "task"
	IntentStudySession  Intent = "study_session"
	IntentInformational Intent = "informational"
)

// intentRule pairs an intent with its detection predicate. Rules are
// evaluated in a fixed priority order and the first match wins, which is
// the tie-break for messages matching several keyword sets.
type intentRule struct {
	intent Intent
	match  func(lower string) bool
}

var intentRules = []intentRule{
	{IntentSchedule, isScheduleIntent},
	{IntentNoteSummary, isNoteSummaryIntent},
	{IntentStudyPlan, isStudyPlanIntent},
	{IntentTask, isTaskIntent},
	{IntentStudySession, isStudySessionIntent},
}

// Classify assigns a message to exactly one intent category. Messages
// matching no category are Informational and answered from the response
// bank or the chat collaborator.
func Classify(message string) Intent {
	lower := strings.ToLower(message)
	for _, rule := range intentRules {
		if rule.match(lower) {
			return rule.intent
		}
	}
	return IntentInformational
}

// isScheduleIntent requires a schedule-domain keyword plus a temporal
// preposition or day phrase, so "remind me about homework" alone does not
// create a schedule item.
func isScheduleIntent(lower string) bool {
	if !containsAny(lower, "remind", "reminder", "schedule", "appointment", "set a", "set an") {
		return false
	}
	return hasTemporalPhrase(lower)
}

func isNoteSummaryIntent(lower string) bool {
	if !containsAny(lower, "summarize", "summarise", "summary") {
		return false
	}
	return containsAny(lower, "note", "notes", "lecture", "chapter", "reading")
}

func isStudyPlanIntent(lower string) bool {
	if strings.Contains(lower, "study plan") {
		return true
	}
	if planWordRe.MatchString(lower) &&
		containsAny(lower, "exam", "test", "final", "midterm", "study") {
		return true
	}
	return containsAny(lower, "prepare", "preparing") &&
		containsAny(lower, "exam", "test", "final", "midterm")
}

func isTaskIntent(lower string) bool {
	if !containsAny(lower, "task", "todo", "to-do", "homework", "assignment", "essay", "need to", "have to") {
		return false
	}
	return containsAny(lower, "add", "create", "make", "new", "need to", "have to", "finish", "complete", "submit", "write", "do")
}

func isStudySessionIntent(lower string) bool {
	if containsAny(lower, "studied", "study session", "log a session", "logged") {
		return true
	}
	return strings.Contains(lower, "practiced") || strings.Contains(lower, "reviewed")
}

func hasTemporalPhrase(lower string) bool {
	if containsAny(lower, " at ", " on ", "tomorrow", "today", "tonight", "next ", "this morning", "this afternoon", "this evening") {
		return true
	}
	for name := range weekdayNames {
		if strings.Contains(lower, name) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
