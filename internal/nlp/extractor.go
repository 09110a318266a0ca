package nlp

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ScheduleFields is the parsed form of a schedule-item request. Absent
// fields are empty; the caller decides which absences require clarification.
type ScheduleFields struct {
	Subject  string
	TimeSlot string // normalized "H:MM AM" form, "" if no time phrase
	DayName  string // canonical weekday name, "" if no day phrase
	ItemType string // class, exam, or reminder
}

// TaskFields is the parsed form of a task-creation request.
type TaskFields struct {
	Title          string
	Subject        string
	DueDate        *time.Time
	Priority       string
	EstimatedHours float64
}

// PlanFields is the parsed form of a study-plan request.
type PlanFields struct {
	Subject     string
	ExamDate    *time.Time
	HoursPerDay float64
	Topics      []string
}

// SessionFields is the parsed form of a study-session log request.
type SessionFields struct {
	Subject         string
	DurationMinutes int
	Date            time.Time
	Notes           string
}

const (
	defaultSessionMinutes = 60
	defaultEstimatedHours = 1.0
	defaultHoursPerDay    = 2.0
)

// ── time of day ──────────────────────────────────────────────────────────────

var (
	clockTimeRe = regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})\s*([ap])\.?m\.?\b`)
	bareTimeRe  = regexp.MustCompile(`(?i)\b(\d{1,2})\s*([ap])\.?m\.?\b`)
)

// ExtractTime finds a time-of-day phrase and normalizes it to "H:MM AM".
// An explicit H:MM form is preferred over a bare hour.
func ExtractTime(message string) (string, bool) {
	if m := clockTimeRe.FindStringSubmatch(message); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour >= 1 && hour <= 12 && minute <= 59 {
			return fmt.Sprintf("%d:%02d %s", hour, minute, meridiem(m[3])), true
		}
	}
	if m := bareTimeRe.FindStringSubmatch(message); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if hour >= 1 && hour <= 12 {
			return fmt.Sprintf("%d:00 %s", hour, meridiem(m[2])), true
		}
	}
	return "", false
}

func meridiem(letter string) string {
	if strings.EqualFold(letter, "a") {
		return "AM"
	}
	return "PM"
}

// ── priority ─────────────────────────────────────────────────────────────────

// priorityChain maps urgency phrases to a priority level. The low literal
// runs first so negated forms like "not urgent" are not swallowed by the
// "urgent" substring. Falls back to medium when no phrase is present.
var priorityChain = Chain{
	NewLiteral("low", "low priority", "when i have time", "whenever", "no rush", "not urgent"),
	NewLiteral("high", "urgent", "asap", "high priority", "important", "right away"),
}

// ExtractPriority maps urgency phrases in the message to low/medium/high.
func ExtractPriority(message string) string {
	if p, ok := priorityChain.FirstMatch(message); ok {
		return p
	}
	return "medium"
}

// ── duration and hours ───────────────────────────────────────────────────────

var (
	hoursRe       = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*h(?:ou)?rs?\b`)
	minutesRe     = regexp.MustCompile(`(?i)\b(\d+)\s*min(?:ute)?s?\b`)
	hoursPerDayRe = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*h(?:ou)?rs?\s*(?:per|a|each|\/)\s*day\b`)
)

// ExtractDurationMinutes finds a session duration. An hour-unit phrase wins
// over a minute-unit phrase and is converted to rounded minutes. Defaults
// to 60 minutes when neither is present.
func ExtractDurationMinutes(message string) int {
	if m := hoursRe.FindStringSubmatch(message); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		return int(math.Round(h * 60))
	}
	if m := minutesRe.FindStringSubmatch(message); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return defaultSessionMinutes
}

func extractEstimatedHours(message string) float64 {
	if m := hoursRe.FindStringSubmatch(message); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		return h
	}
	return defaultEstimatedHours
}

func extractHoursPerDay(message string) float64 {
	if m := hoursPerDayRe.FindStringSubmatch(message); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		return h
	}
	if m := hoursRe.FindStringSubmatch(message); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		return h
	}
	return defaultHoursPerDay
}

// ── schedule requests ────────────────────────────────────────────────────────

// scheduleSubjectChain prefers a "for X" capture bounded by a type keyword
// (quiz/exam/test/class), falling back to a bare "for X" capture bounded by
// a temporal word or end of message.
var scheduleSubjectChain = Chain{
	NewPattern(`\bfor\s+(?:my\s+|the\s+|our\s+)?([\w][\w ]*?(?:\s(?:quiz|exam|test|class)))\b`, 1),
	NewPattern(`\babout\s+(?:my\s+|the\s+)?([\w][\w ]*?(?:\s(?:quiz|exam|test|class)))\b`, 1),
	NewPattern(`\b(?:my|the)\s+([\w][\w ]*?(?:\s(?:quiz|exam|test|class)))\b`, 1),
	NewPattern(`\bfor\s+(?:my\s+|the\s+|our\s+)?([\w][\w ]*?)(?:\s+(?:at|on|tomorrow|today|tonight|next|this)\b|\s*[.!?]|$)`, 1),
}

// ExtractSchedule parses a schedule-item request. The returned fields may be
// partially empty; extraction itself never fails.
func ExtractSchedule(message string, today time.Time) ScheduleFields {
	f := ScheduleFields{ItemType: "reminder"}

	if subject, ok := scheduleSubjectChain.FirstMatch(message); ok {
		f.Subject = subject
	}
	if slot, ok := ExtractTime(message); ok {
		f.TimeSlot = slot
	}
	f.DayName = ResolveDayName(message, today)
	f.ItemType = scheduleItemType(message)
	return f
}

func scheduleItemType(message string) string {
	lower := strings.ToLower(message)
	switch {
	case containsAny(lower, "exam", "quiz", "test", "midterm", "final"):
		return "exam"
	case strings.Contains(lower, "class"):
		return "class"
	default:
		return "reminder"
	}
}

// ── task requests ────────────────────────────────────────────────────────────

// taskTitleChain holds the four competing title-extraction patterns, tried
// in a fixed order. When none match the caller must ask for clarification
// instead of creating a malformed task.
var taskTitleChain = Chain{
	NewPattern(`\b(?:add|create|make)\s+(?:a\s+)?(?:new\s+)?task(?:\s+(?:to|for|called|named)\s+|\s*:\s*)(.+)`, 1),
	NewPattern(`\b(?:need|have)\s+to\s+(.+)`, 1),
	NewPattern(`\b((?:finish|complete|submit|start|write|read)\s+(?:my\s+|the\s+)?.+)`, 1),
	NewPattern(`\b(?:homework|assignment)\s*[:\-]\s*(.+)`, 1),
}

// taskTailRes strip trailing date, priority, and effort phrases from a
// captured title so "finish essay by Friday urgent" titles as "finish essay".
var taskTailRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s+(?:by|due|before)\s+.*$`),
	regexp.MustCompile(`(?i)\s+(?:tomorrow|today|tonight)\b.*$`),
	regexp.MustCompile(`(?i)\s+(?:on|next|this)\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b.*$`),
	regexp.MustCompile(`(?i)\s+in\s+\d+\s+days?\b.*$`),
	regexp.MustCompile(`(?i)\s+for\s+(?:my\s+|the\s+)?[\w][\w ]*?\s+(?:class|course)\b.*$`),
	regexp.MustCompile(`(?i)\s*[,.]?\s*(?:it'?s\s+)?(?:urgent|asap|high priority|low priority|important|no rush)\b.*$`),
	regexp.MustCompile(`(?i)\s*[,.]?\s*(?:should\s+take|takes?|about)?\s*\d+(?:\.\d+)?\s*h(?:ou)?rs?\b.*$`),
}

var taskSubjectChain = Chain{
	NewPattern(`\bfor\s+(?:my\s+)?([\w][\w ]*?)\s+class\b`, 1),
	NewPattern(`\bfor\s+(?:my\s+)?([\w][\w ]*?)\s+(?:homework|assignment|course)\b`, 1),
}

// ExtractTask parses a task-creation request. An empty Title means no
// pattern produced a usable capture.
func ExtractTask(message string, today time.Time) TaskFields {
	f := TaskFields{
		Priority:       ExtractPriority(message),
		EstimatedHours: extractEstimatedHours(message),
	}

	if title, ok := taskTitleChain.FirstMatch(message); ok {
		f.Title = trimTaskTail(title)
	}
	if subject, ok := taskSubjectChain.FirstMatch(message); ok {
		f.Subject = subject
	}
	if due, ok := ResolveDueDate(message, today); ok {
		f.DueDate = &due
	}
	return f
}

func trimTaskTail(title string) string {
	for _, re := range taskTailRes {
		title = re.ReplaceAllString(title, "")
	}
	return strings.Trim(strings.TrimSpace(title), `"'`)
}

// ── study plan requests ──────────────────────────────────────────────────────

var planSubjectChain = Chain{
	NewPattern(`\b(?:for|on)\s+(?:my\s+|the\s+)?([\w][\w ]*?)\s+(?:exam|test|final|midterm)\b`, 1),
	NewPattern(`\bstudy\s+plan\s+for\s+(?:my\s+|the\s+)?([\w][\w ]*?)(?:\s+(?:exam|test|by|on|in|before|covering)\b|\s*[,.!?]|$)`, 1),
	NewPattern(`\bplan\s+for\s+(?:my\s+|the\s+)?([\w][\w ]*?)(?:\s+(?:by|on|in|before|covering)\b|\s*[,.!?]|$)`, 1),
}

var planTopicsRe = regexp.MustCompile(`(?i)\b(?:topics?|covering|chapters?)\s*[:\s]\s*(.+)$`)

// ExtractPlan parses a study-plan request. A nil ExamDate or empty Subject
// routes the caller to a clarification response.
func ExtractPlan(message string, today time.Time) PlanFields {
	f := PlanFields{HoursPerDay: extractHoursPerDay(message)}

	if subject, ok := planSubjectChain.FirstMatch(message); ok {
		f.Subject = subject
	}
	if exam, ok := ResolveDueDate(message, today); ok {
		f.ExamDate = &exam
	}
	if m := planTopicsRe.FindStringSubmatch(message); m != nil {
		f.Topics = splitTopics(m[1])
	}
	return f
}

func splitTopics(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' })
	var topics []string
	for _, p := range parts {
		p = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(p), "."))
		p = strings.TrimPrefix(p, "and ")
		p = strings.TrimSpace(p)
		if p != "" {
			topics = append(topics, p)
		}
	}
	return topics
}

// ── study session logs ───────────────────────────────────────────────────────

var sessionSubjectChain = Chain{
	NewPattern(`\bstudied\s+(?:my\s+|some\s+)?([\w][\w ]*?)(?:\s+(?:for|on|at|yesterday|today|tonight)\b|\s*[,.!?]|$)`, 1),
	NewPattern(`\b(?:session|sessions)\s+(?:for|on)\s+(?:my\s+)?([\w][\w ]*?)\s+(?:exam|test|final|midterm)\b`, 1),
	NewPattern(`\b(?:session|sessions)\s+(?:for|on)\s+(?:my\s+)?([\w][\w ]*?)(?:\s+(?:for|on|at)\b|\s*[,.!?]|$)`, 1),
	NewPattern(`\bfor\s+(?:my\s+)?([\w][\w ]*?)\s+(?:exam|test|final|midterm)\b`, 1),
	NewPattern(`\b(?:practiced|reviewed)\s+(?:my\s+|some\s+)?([\w][\w ]*?)(?:\s+(?:for|on|at)\b|\s*[,.!?]|$)`, 1),
}

var sessionNotesRe = regexp.MustCompile(`(?i)\bon\s+([\w][\w ,-]*?)\s*[.!?]?$`)

// ExtractSession parses a study-session log request. Duration defaults to
// 60 minutes and the session date to today.
func ExtractSession(message string, today time.Time) SessionFields {
	f := SessionFields{
		DurationMinutes: ExtractDurationMinutes(message),
		Date:            DateOnly(today),
	}

	if subject, ok := sessionSubjectChain.FirstMatch(message); ok {
		f.Subject = subject
	}
	if d, ok := ResolveDueDate(message, today); ok && !d.After(DateOnly(today)) {
		f.Date = d
	}
	if m := sessionNotesRe.FindStringSubmatch(message); m != nil {
		topic := strings.TrimSpace(m[1])
		if _, isDay := CanonicalWeekday(topic); !isDay && !strings.EqualFold(topic, "today") {
			f.Notes = topic
		}
	}
	return f
}
