package nlp

import (
	"errors"
	"time"
)

// ErrExamNotFuture is returned when the exam date is today or in the past,
// leaving no days to plan.
var ErrExamNotFuture = errors.New("exam date must be in the future")

// MaxPlanDays caps generated plans regardless of how far out the exam is.
const MaxPlanDays = 14

// PlannedTask is one generated task within a plan day.
type PlannedTask struct {
	Title           string
	DurationMinutes int
	TaskType        string // reading, practice, review, or quiz
	Priority        string
}

// PlannedDay is one generated study day.
type PlannedDay struct {
	DayNumber  int // 1-based
	Date       time.Time
	TotalHours float64
	Tasks      []PlannedTask
}

// Phase boundaries as fractions of the plan length.
const (
	earlyPhaseEnd  = 0.4
	middlePhaseEnd = 0.8
)

// Synthesize generates a study plan of min(days-until-exam, 14) days, two
// tasks per day. The task mix shifts with the day's fractional position:
// early days lean on reading (60/40 reading/practice), middle days on
// practice (40/60), and the final stretch is review plus a practice exam
// (50/50). Task minutes are floored, so up to two minutes per day may go
// unallocated. Generation is deterministic given the inputs.
func Synthesize(subject string, examDate time.Time, hoursPerDay float64, topics []string, today time.Time) ([]PlannedDay, error) {
	start := DateOnly(today)
	exam := DateOnly(examDate)

	totalDays := int(exam.Sub(start).Hours() / 24)
	actualDays := totalDays
	if actualDays > MaxPlanDays {
		actualDays = MaxPlanDays
	}
	if actualDays <= 0 {
		return nil, ErrExamNotFuture
	}

	dayMinutes := hoursPerDay * 60
	days := make([]PlannedDay, 0, actualDays)

	for i := 0; i < actualDays; i++ {
		frac := float64(i) / float64(actualDays)
		day := PlannedDay{
			DayNumber:  i + 1,
			Date:       start.AddDate(0, 0, i),
			TotalHours: hoursPerDay,
		}

		focus := topicForDay(topics, i)
		switch {
		case frac < earlyPhaseEnd:
			day.Tasks = []PlannedTask{
				{
					Title:           coalesceTitle(focus, "Review fundamental "+subject+" concepts"),
					DurationMinutes: floorMinutes(dayMinutes * 0.6),
					TaskType:        "reading",
					Priority:        "high",
				},
				{
					Title:           "Practice basic problems",
					DurationMinutes: floorMinutes(dayMinutes * 0.4),
					TaskType:        "practice",
					Priority:        "medium",
				},
			}
		case frac < middlePhaseEnd:
			day.Tasks = []PlannedTask{
				{
					Title:           coalesceTitle(focus, "Study advanced "+subject+" material"),
					DurationMinutes: floorMinutes(dayMinutes * 0.4),
					TaskType:        "reading",
					Priority:        "high",
				},
				{
					Title:           "Work through practice problems",
					DurationMinutes: floorMinutes(dayMinutes * 0.6),
					TaskType:        "practice",
					Priority:        "high",
				},
			}
		default:
			day.Tasks = []PlannedTask{
				{
					Title:           coalesceTitle(focus, "Review all "+subject+" material"),
					DurationMinutes: floorMinutes(dayMinutes * 0.5),
					TaskType:        "review",
					Priority:        "high",
				},
				{
					Title:           "Take a timed practice exam",
					DurationMinutes: floorMinutes(dayMinutes * 0.5),
					TaskType:        "quiz",
					Priority:        "high",
				},
			}
		}

		days = append(days, day)
	}

	return days, nil
}

// topicForDay cycles the supplied topic list across plan days so every
// topic appears when the plan is long enough. Empty list means generic
// phase titles.
func topicForDay(topics []string, dayIdx int) string {
	if len(topics) == 0 {
		return ""
	}
	return topics[dayIdx%len(topics)]
}

func coalesceTitle(topic, generic string) string {
	if topic == "" {
		return generic
	}
	return "Study: " + topic
}

func floorMinutes(m float64) int {
	return int(m)
}
