package domain

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"low": true, "medium": true, "high": true,
}

type TaskStatus string

const (
	TaskTodo TaskStatus = "todo"
	TaskDone TaskStatus = "done"
)

type StudyTaskType string

const (
	StudyReading  StudyTaskType = "reading"
	StudyPractice StudyTaskType = "practice"
	StudyReview   StudyTaskType = "review"
	StudyQuiz     StudyTaskType = "quiz"
)

// ValidStudyTaskTypes is the canonical set of accepted study task type strings.
var ValidStudyTaskTypes = map[string]bool{
	"reading": true, "practice": true, "review": true, "quiz": true,
}

type ScheduleItemType string

const (
	ScheduleClass    ScheduleItemType = "class"
	ScheduleExam     ScheduleItemType = "exam"
	ScheduleReminder ScheduleItemType = "reminder"
)

// ValidScheduleItemTypes is the canonical set of accepted schedule item types.
var ValidScheduleItemTypes = map[string]bool{
	"class": true, "exam": true, "reminder": true,
}

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// Weekdays lists the seven canonical capitalized day names in Monday-first
// order, the storage format for ScheduleItem.DayOfWeek.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// ValidWeekday reports whether name is one of the seven canonical day names.
func ValidWeekday(name string) bool {
	for _, d := range Weekdays {
		if d == name {
			return true
		}
	}
	return false
}
