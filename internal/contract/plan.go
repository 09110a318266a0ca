package contract

import "time"

// PlanRequest holds the inputs for study plan generation.
type PlanRequest struct {
	Subject     string
	ExamDate    time.Time
	HoursPerDay float64
	Topics      []string
	Now         *time.Time // reference date for day numbering, nil means time.Now()
}

// NewPlanRequest creates a PlanRequest with the default study load.
func NewPlanRequest(subject string, examDate time.Time) PlanRequest {
	return PlanRequest{
		Subject:     subject,
		ExamDate:    examDate,
		HoursPerDay: 2,
	}
}

type PlanErrorCode string

const (
	ErrPlanSubjectMissing PlanErrorCode = "SUBJECT_MISSING"
	ErrPlanExamNotFuture  PlanErrorCode = "EXAM_NOT_FUTURE"
	ErrPlanInvalidHours   PlanErrorCode = "INVALID_HOURS"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
