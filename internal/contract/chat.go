package contract

import "time"

// ChatRequest is one user message submitted to the assistant.
type ChatRequest struct {
	Message string
	Now     *time.Time // reference time for date resolution, nil means time.Now()
}

// CreatedRecordType identifies what kind of record a chat turn persisted.
type CreatedRecordType string

const (
	RecordTask         CreatedRecordType = "task"
	RecordScheduleItem CreatedRecordType = "schedule_item"
	RecordStudySession CreatedRecordType = "study_session"
	RecordStudyPlan    CreatedRecordType = "study_plan"
	RecordNoteSummary  CreatedRecordType = "note_summary"
)

// CreatedRecord describes a record persisted as a side effect of a chat turn.
type CreatedRecord struct {
	Type CreatedRecordType
	ID   string
}

// ChatResponse is the assistant's reply to one chat turn.
type ChatResponse struct {
	Intent        string
	Text          string
	Created       *CreatedRecord // nil when nothing was persisted
	Clarification bool           // true when Text asks for missing details
}
