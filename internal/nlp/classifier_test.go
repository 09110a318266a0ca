package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Categories(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{"schedule reminder", "Set a reminder for my Math quiz tomorrow at 2 PM", IntentSchedule},
		{"schedule with weekday", "remind me about my dentist appointment on Friday", IntentSchedule},
		{"note summary", "Can you summarize my notes from the biology lecture?", IntentNoteSummary},
		{"note summary british", "summarise my reading notes", IntentNoteSummary},
		{"study plan explicit", "I need a study plan for my Chemistry final", IntentStudyPlan},
		{"study plan via prepare", "help me prepare for my midterm", IntentStudyPlan},
		{"task add", "add a task to finish my essay", IntentTask},
		{"task need to", "I need to submit my homework tomorrow", IntentTask},
		{"session logged", "I studied Biology for 90 minutes", IntentStudySession},
		{"session practiced", "practiced French vocabulary this morning", IntentStudySession},
		{"informational question", "how are you doing?", IntentInformational},
		{"informational motivation", "I feel so unmotivated", IntentInformational},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.message))
		})
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	// "plan" keywords lose to an explicit reminder phrase.
	assert.Equal(t, IntentSchedule,
		Classify("remind me tomorrow to work on my study plan"))

	// A summary request about exam notes beats the plan keywords.
	assert.Equal(t, IntentNoteSummary,
		Classify("summarize my notes so I can plan for the exam"))

	// Session wording with an exam mention stays a session, not a plan.
	assert.Equal(t, IntentStudySession,
		Classify("add a 2 hour study session for my Physics exam"))
}

func TestClassify_PlanWordBoundary(t *testing.T) {
	// "planets" must not trip the plan keyword.
	assert.Equal(t, IntentStudySession, Classify("I studied planets for an hour"))
}

func TestClassify_ScheduleNeedsTemporalPhrase(t *testing.T) {
	// A reminder with no time reference cannot become a schedule item.
	assert.Equal(t, IntentInformational, Classify("remind me about homework"))
	assert.Equal(t, IntentSchedule, Classify("remind me about homework tomorrow"))
}

func TestClassify_EmptyAndNoise(t *testing.T) {
	assert.Equal(t, IntentInformational, Classify(""))
	assert.Equal(t, IntentInformational, Classify("asdf qwerty"))
}
