package nlp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTime(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"quiz at 2 PM", "2:00 PM"},
		{"quiz at 2pm", "2:00 PM"},
		{"meeting at 10:30 am", "10:30 AM"},
		{"at 2:15 p.m.", "2:15 PM"},
		{"at 9 A.M.", "9:00 AM"},
	}
	for _, tt := range tests {
		got, ok := ExtractTime(tt.message)
		require.True(t, ok, tt.message)
		assert.Equal(t, tt.want, got, tt.message)
	}

	_, ok := ExtractTime("sometime tomorrow")
	assert.False(t, ok)
}

func TestExtractTime_PrefersClockForm(t *testing.T) {
	// "2:30 PM" must not parse as a bare "2 PM".
	got, ok := ExtractTime("between 2:30 PM and later")
	require.True(t, ok)
	assert.Equal(t, "2:30 PM", got)
}

func TestExtractPriority(t *testing.T) {
	assert.Equal(t, "high", ExtractPriority("finish this ASAP"))
	assert.Equal(t, "high", ExtractPriority("it's urgent"))
	assert.Equal(t, "low", ExtractPriority("no rush on this one"))
	assert.Equal(t, "low", ExtractPriority("whenever you can"))
	assert.Equal(t, "medium", ExtractPriority("finish the essay"))
}

func TestExtractPriority_NegatedUrgencyIsLow(t *testing.T) {
	// "not urgent" contains "urgent"; the negated form must win.
	assert.Equal(t, "low", ExtractPriority("add a task to water the plants, not urgent"))
	assert.Equal(t, "high", ExtractPriority("water the plants, urgent"))
}

func TestExtractDurationMinutes(t *testing.T) {
	assert.Equal(t, 90, ExtractDurationMinutes("studied for 90 minutes"))
	assert.Equal(t, 45, ExtractDurationMinutes("a 45 min session"))
	assert.Equal(t, 120, ExtractDurationMinutes("studied for 2 hours"))
	assert.Equal(t, 90, ExtractDurationMinutes("about 1.5 hours"))
	assert.Equal(t, 60, ExtractDurationMinutes("studied Biology"))
}

func TestExtractDurationMinutes_HoursWinOverMinutes(t *testing.T) {
	assert.Equal(t, 120, ExtractDurationMinutes("2 hours, so 120 minutes"))
}

func TestExtractSchedule(t *testing.T) {
	f := ExtractSchedule("Set a reminder for my Math quiz tomorrow at 2 PM", monday)
	assert.Equal(t, "Math quiz", f.Subject)
	assert.Equal(t, "2:00 PM", f.TimeSlot)
	assert.Equal(t, "Tuesday", f.DayName)
	assert.Equal(t, "exam", f.ItemType)
}

func TestExtractSchedule_Defaults(t *testing.T) {
	f := ExtractSchedule("remind me about the club meeting on Friday", monday)
	assert.Equal(t, "Friday", f.DayName)
	assert.Equal(t, "reminder", f.ItemType)
	assert.Empty(t, f.TimeSlot)
}

func TestExtractSchedule_ClassType(t *testing.T) {
	f := ExtractSchedule("schedule my History class on Wednesday at 9 AM", monday)
	assert.Equal(t, "History class", f.Subject)
	assert.Equal(t, "class", f.ItemType)
	assert.Equal(t, "Wednesday", f.DayName)
	assert.Equal(t, "9:00 AM", f.TimeSlot)
}

func TestExtractTask(t *testing.T) {
	f := ExtractTask("add a task to finish my essay by Friday", monday)
	assert.Equal(t, "finish my essay", f.Title)
	require.NotNil(t, f.DueDate)
	assert.Equal(t, time.Friday, f.DueDate.Weekday())
	assert.Equal(t, "medium", f.Priority)
	assert.Equal(t, 1.0, f.EstimatedHours)
}

func TestExtractTask_NeedToPattern(t *testing.T) {
	f := ExtractTask("I need to submit my homework tomorrow, it's urgent", monday)
	assert.Equal(t, "submit my homework", f.Title)
	require.NotNil(t, f.DueDate)
	assert.Equal(t, DateOnly(monday).AddDate(0, 0, 1), *f.DueDate)
	assert.Equal(t, "high", f.Priority)
}

func TestExtractTask_SubjectAndHours(t *testing.T) {
	f := ExtractTask("create a task: read chapter 4 for my Physics class, should take 2 hours", monday)
	assert.Equal(t, "Physics", f.Subject)
	assert.Equal(t, 2.0, f.EstimatedHours)
	assert.Equal(t, "read chapter 4", f.Title)
}

func TestExtractTask_NoTitle(t *testing.T) {
	f := ExtractTask("add a task", monday)
	assert.Empty(t, f.Title)
}

func TestExtractPlan(t *testing.T) {
	f := ExtractPlan("create a study plan for my Chemistry final in 10 days", monday)
	assert.Equal(t, "Chemistry", f.Subject)
	require.NotNil(t, f.ExamDate)
	assert.Equal(t, DateOnly(monday).AddDate(0, 0, 10), *f.ExamDate)
	assert.Equal(t, 2.0, f.HoursPerDay)
	assert.Empty(t, f.Topics)
}

func TestExtractPlan_HoursAndTopics(t *testing.T) {
	f := ExtractPlan("study plan for my Biology exam on 2026-06-12, 3 hours per day, covering cells, photosynthesis, and genetics", monday)
	assert.Equal(t, "Biology", f.Subject)
	require.NotNil(t, f.ExamDate)
	assert.Equal(t, time.Date(2026, 6, 12, 0, 0, 0, 0, time.Local), *f.ExamDate)
	assert.Equal(t, 3.0, f.HoursPerDay)
	assert.Equal(t, []string{"cells", "photosynthesis", "genetics"}, f.Topics)
}

func TestExtractPlan_NoExamDate(t *testing.T) {
	f := ExtractPlan("I need a study plan for my Chemistry final", monday)
	assert.Equal(t, "Chemistry", f.Subject)
	assert.Nil(t, f.ExamDate)
}

func TestExtractSession(t *testing.T) {
	f := ExtractSession("I studied Biology for 90 minutes on photosynthesis", monday)
	assert.Equal(t, "Biology", f.Subject)
	assert.Equal(t, 90, f.DurationMinutes)
	assert.Equal(t, DateOnly(monday), f.Date)
	assert.Equal(t, "photosynthesis", f.Notes)
}

func TestExtractSession_Defaults(t *testing.T) {
	f := ExtractSession("I studied French", monday)
	assert.Equal(t, "French", f.Subject)
	assert.Equal(t, 60, f.DurationMinutes)
	assert.Equal(t, DateOnly(monday), f.Date)
	assert.Empty(t, f.Notes)
}

func TestExtractSession_FutureDateIgnored(t *testing.T) {
	// "Friday" resolves to a future date; sessions are logged in the past.
	f := ExtractSession("I studied Math for an hour on Friday's material", monday)
	assert.Equal(t, DateOnly(monday), f.Date)
}
