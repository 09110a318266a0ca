package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// weekdayNames maps lowercase day names to their canonical capitalized form
// and time.Weekday value.
var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var (
	inDaysRe    = regexp.MustCompile(`(?i)\bin\s+(\d+)\s+days?\b`)
	isoDateRe   = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	slashDateRe = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
	nextDayRe   = regexp.MustCompile(`(?i)\bnext\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	bareDayRe   = regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
)

// CanonicalWeekday returns the capitalized canonical name for a weekday
// phrase, case-insensitive. Returns false if the phrase is not a weekday.
func CanonicalWeekday(phrase string) (string, bool) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(phrase))]
	if !ok {
		return "", false
	}
	return wd.String(), true
}

// DateOnly truncates t to midnight in its location. All calendar arithmetic
// in this package is day-granular in the caller's local time.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NextWeekday returns the next future occurrence of wd strictly after today.
// When wd equals today's weekday the result is a full week out: a bare
// weekday in a due-date phrase never means today.
func NextWeekday(today time.Time, wd time.Weekday) time.Time {
	day := DateOnly(today)
	offset := (int(wd) - int(day.Weekday()) + 7) % 7
	if offset == 0 {
		offset = 7
	}
	return day.AddDate(0, 0, offset)
}

// ResolveDayName resolves a message's day phrase to a canonical weekday name
// for use as a schedule label. Returns "" when no day phrase is present.
//
// "tomorrow" resolves to tomorrow's weekday, "today"/"tonight"/"this
// morning|afternoon|evening" to today's, "next <weekday>" and bare weekday
// names to the capitalized name.
func ResolveDayName(message string, today time.Time) string {
	lower := strings.ToLower(message)

	if strings.Contains(lower, "tomorrow") {
		return DateOnly(today).AddDate(0, 0, 1).Weekday().String()
	}
	if containsTodayPhrase(lower) {
		return DateOnly(today).Weekday().String()
	}
	if m := nextDayRe.FindStringSubmatch(message); m != nil {
		name, _ := CanonicalWeekday(m[1])
		return name
	}
	if m := bareDayRe.FindStringSubmatch(message); m != nil {
		name, _ := CanonicalWeekday(m[1])
		return name
	}
	return ""
}

// ResolveDueDate resolves a message's date phrase to a concrete calendar
// date. Returns false when no date phrase is present.
//
// Explicit YYYY-MM-DD and M/D/YYYY dates pass through unchanged; "tomorrow"
// is today+1; "today" is today; "in N days" is today+N; a weekday name
// (bare or with "next") is the next future occurrence of that weekday.
func ResolveDueDate(message string, today time.Time) (time.Time, bool) {
	lower := strings.ToLower(message)
	day := DateOnly(today)

	if m := isoDateRe.FindStringSubmatch(message); m != nil {
		if t, err := time.ParseInLocation(dateLayout, m[0], today.Location()); err == nil {
			return t, true
		}
	}
	if m := slashDateRe.FindStringSubmatch(message); m != nil {
		month, _ := strconv.Atoi(m[1])
		d, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if month >= 1 && month <= 12 && d >= 1 && d <= 31 {
			return time.Date(year, time.Month(month), d, 0, 0, 0, 0, today.Location()), true
		}
	}
	if strings.Contains(lower, "tomorrow") {
		return day.AddDate(0, 0, 1), true
	}
	if containsTodayPhrase(lower) {
		return day, true
	}
	if m := inDaysRe.FindStringSubmatch(message); m != nil {
		n, _ := strconv.Atoi(m[1])
		return day.AddDate(0, 0, n), true
	}
	if m := nextDayRe.FindStringSubmatch(message); m != nil {
		wd := weekdayNames[strings.ToLower(m[1])]
		return NextWeekday(today, wd), true
	}
	if m := bareDayRe.FindStringSubmatch(message); m != nil {
		wd := weekdayNames[strings.ToLower(m[1])]
		return NextWeekday(today, wd), true
	}
	return time.Time{}, false
}

func containsTodayPhrase(lower string) bool {
	if strings.Contains(lower, "today") || strings.Contains(lower, "tonight") {
		return true
	}
	for _, p := range []string{"this morning", "this afternoon", "this evening"} {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
