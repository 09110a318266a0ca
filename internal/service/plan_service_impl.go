package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/studybuddy-app/studybuddy/internal/contract"
	"github.com/studybuddy-app/studybuddy/internal/db"
	"github.com/studybuddy-app/studybuddy/internal/domain"
	"github.com/studybuddy-app/studybuddy/internal/nlp"
	"github.com/studybuddy-app/studybuddy/internal/repository"
)

type planService struct {
	plans repository.PlanRepo
	uow   db.UnitOfWork
}

func NewPlanService(plans repository.PlanRepo, uow db.UnitOfWork) PlanService {
	return &planService{plans: plans, uow: uow}
}

// CreateFromRequest generates a study plan for the request and persists the
// whole aggregate in one transaction. A failed write leaves no partial plan.
func (s *planService) CreateFromRequest(ctx context.Context, req contract.PlanRequest) (*domain.StudyPlan, error) {
	if strings.TrimSpace(req.Subject) == "" {
		return nil, &contract.PlanError{Code: contract.ErrPlanSubjectMissing, Message: "plan subject is required"}
	}
	if req.HoursPerDay <= 0 {
		return nil, &contract.PlanError{Code: contract.ErrPlanInvalidHours, Message: "hours per day must be positive"}
	}

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	generated, err := nlp.Synthesize(req.Subject, req.ExamDate, req.HoursPerDay, req.Topics, now)
	if err != nil {
		if errors.Is(err, nlp.ErrExamNotFuture) {
			return nil, &contract.PlanError{Code: contract.ErrPlanExamNotFuture, Message: "exam date must be in the future"}
		}
		return nil, err
	}

	plan := &domain.StudyPlan{
		ID:          uuid.New().String(),
		UserID:      repository.DefaultUserID,
		Subject:     req.Subject,
		ExamDate:    nlp.DateOnly(req.ExamDate),
		HoursPerDay: req.HoursPerDay,
		Topics:      strings.Join(req.Topics, ", "),
		CreatedAt:   now,
	}
	for _, gd := range generated {
		day := &domain.StudyDay{
			ID:         uuid.New().String(),
			PlanID:     plan.ID,
			DayNumber:  gd.DayNumber,
			Date:       gd.Date,
			TotalHours: gd.TotalHours,
		}
		for _, gt := range gd.Tasks {
			day.Tasks = append(day.Tasks, &domain.StudyTask{
				ID:              uuid.New().String(),
				DayID:           day.ID,
				Title:           gt.Title,
				DurationMinutes: gt.DurationMinutes,
				TaskType:        domain.StudyTaskType(gt.TaskType),
				Priority:        domain.Priority(gt.Priority),
			})
		}
		plan.Days = append(plan.Days, day)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)
		if err := txPlans.Create(ctx, plan); err != nil {
			return err
		}
		for _, day := range plan.Days {
			if err := txPlans.CreateDay(ctx, day); err != nil {
				return err
			}
			for _, task := range day.Tasks {
				if err := txPlans.CreateTask(ctx, task); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) GetByID(ctx context.Context, id string) (*domain.StudyPlan, error) {
	return s.plans.GetByID(ctx, id)
}

func (s *planService) List(ctx context.Context) ([]*domain.StudyPlan, error) {
	return s.plans.ListByUser(ctx, repository.DefaultUserID)
}

func (s *planService) SetTaskCompleted(ctx context.Context, taskID string, completed bool) error {
	return s.plans.SetTaskCompleted(ctx, taskID, completed)
}

func (s *planService) Delete(ctx context.Context, id string) error {
	return s.plans.Delete(ctx, id)
}
