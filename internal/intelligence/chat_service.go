package intelligence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/studybuddy-app/studybuddy/internal/contract"
	"github.com/studybuddy-app/studybuddy/internal/domain"
	"github.com/studybuddy-app/studybuddy/internal/llm"
	"github.com/studybuddy-app/studybuddy/internal/nlp"
	"github.com/studybuddy-app/studybuddy/internal/repository"
	"github.com/studybuddy-app/studybuddy/internal/service"
)

// historyWindow is how many prior chat turns are replayed to the chat
// collaborator as conversation context.
const historyWindow = 10

// ChatService is the assistant's single entry point: it classifies a
// message, extracts the fields the intent needs, performs the side effect,
// and composes the reply.
type ChatService interface {
	HandleMessage(ctx context.Context, req contract.ChatRequest) (*contract.ChatResponse, error)
}

type chatService struct {
	tasks     service.TaskService
	classes   service.ClassService
	notes     service.NoteService
	sessions  service.SessionService
	schedule  service.ScheduleService
	plans     service.PlanService
	profile   service.ProfileService
	history   repository.ChatRepo
	summarize SummarizeService
	client    llm.Client // nil when the LLM is disabled
}

// NewChatService wires the chat pipeline. client may be nil; informational
// questions then come from the response bank only.
func NewChatService(
	tasks service.TaskService,
	classes service.ClassService,
	notes service.NoteService,
	sessions service.SessionService,
	schedule service.ScheduleService,
	plans service.PlanService,
	profile service.ProfileService,
	history repository.ChatRepo,
	summarize SummarizeService,
	client llm.Client,
) ChatService {
	return &chatService{
		tasks:     tasks,
		classes:   classes,
		notes:     notes,
		sessions:  sessions,
		schedule:  schedule,
		plans:     plans,
		profile:   profile,
		history:   history,
		summarize: summarize,
		client:    client,
	}
}

func (s *chatService) HandleMessage(ctx context.Context, req contract.ChatRequest) (*contract.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return &contract.ChatResponse{
			Intent:        string(nlp.IntentInformational),
			Text:          "Say something and I'll do my best to help!",
			Clarification: true,
		}, nil
	}

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	s.record(ctx, domain.RoleUser, message, now)

	intent := nlp.Classify(message)
	var resp *contract.ChatResponse
	switch intent {
	case nlp.IntentSchedule:
		resp = s.handleSchedule(ctx, message, now)
	case nlp.IntentNoteSummary:
		resp = s.handleNoteSummary(ctx, message)
	case nlp.IntentStudyPlan:
		resp = s.handleStudyPlan(ctx, message, now)
	case nlp.IntentTask:
		resp = s.handleTask(ctx, message, now)
	case nlp.IntentStudySession:
		resp = s.handleStudySession(ctx, message, now)
	default:
		resp = s.handleInformational(ctx, message, now)
	}
	resp.Intent = string(intent)

	s.record(ctx, domain.RoleAssistant, resp.Text, now)
	return resp, nil
}

// record appends a chat turn to history. History is auxiliary: a write
// failure never fails the turn.
func (s *chatService) record(ctx context.Context, role domain.ChatRole, content string, now time.Time) {
	if s.history == nil {
		return
	}
	_ = s.history.Create(ctx, &domain.ChatMessage{
		ID:        uuid.New().String(),
		UserID:    repository.DefaultUserID,
		Role:      role,
		Content:   content,
		CreatedAt: now,
	})
}

func (s *chatService) handleSchedule(ctx context.Context, message string, now time.Time) *contract.ChatResponse {
	f := nlp.ExtractSchedule(message, now)

	if f.Subject == "" {
		return clarify("What should I set the reminder for?")
	}
	if f.DayName == "" {
		return clarify(fmt.Sprintf("When should I remind you about %s? Tell me a day, like \"tomorrow\" or \"on Friday\".", f.Subject))
	}

	item := &domain.ScheduleItem{
		Subject:       f.Subject,
		TimeSlot:      f.TimeSlot,
		DayOfWeek:     f.DayName,
		Type:          domain.ScheduleItemType(f.ItemType),
		Notifications: true,
	}
	if err := s.schedule.Create(ctx, item); err != nil {
		return saveFailure("reminder", err)
	}

	text := fmt.Sprintf("Got it! I'll remind you about %s on %s", item.Subject, item.DayOfWeek)
	if item.TimeSlot != "" {
		text += " at " + item.TimeSlot
	}
	text += "."
	return &contract.ChatResponse{
		Text:    text,
		Created: &contract.CreatedRecord{Type: contract.RecordScheduleItem, ID: item.ID},
	}
}

func (s *chatService) handleTask(ctx context.Context, message string, now time.Time) *contract.ChatResponse {
	f := nlp.ExtractTask(message, now)

	if f.Title == "" {
		return clarify("What's the task? Try something like \"add a task to finish my essay by Friday\".")
	}

	task := &domain.Task{
		Title:          f.Title,
		Subject:        f.Subject,
		DueDate:        f.DueDate,
		Priority:       domain.Priority(f.Priority),
		EstimatedHours: f.EstimatedHours,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return saveFailure("task", err)
	}

	text := fmt.Sprintf("Added task: %q", task.Title)
	if task.DueDate != nil {
		text += fmt.Sprintf(", due %s", task.DueDate.Format("Monday, Jan 2"))
	}
	if task.Priority != domain.PriorityMedium {
		text += fmt.Sprintf(" (%s priority)", task.Priority)
	}
	text += "."
	return &contract.ChatResponse{
		Text:    text,
		Created: &contract.CreatedRecord{Type: contract.RecordTask, ID: task.ID},
	}
}

func (s *chatService) handleStudyPlan(ctx context.Context, message string, now time.Time) *contract.ChatResponse {
	f := nlp.ExtractPlan(message, now)

	if f.Subject == "" {
		return clarify("What subject is the plan for? Try \"create a study plan for my Biology exam on Friday\".")
	}
	if f.ExamDate == nil {
		return clarify(fmt.Sprintf("When is your %s exam? Give me a date like \"2026-09-15\", \"next Friday\", or \"in 10 days\".", f.Subject))
	}

	req := contract.PlanRequest{
		Subject:     f.Subject,
		ExamDate:    *f.ExamDate,
		HoursPerDay: f.HoursPerDay,
		Topics:      f.Topics,
		Now:         &now,
	}
	plan, err := s.plans.CreateFromRequest(ctx, req)
	if err != nil {
		var planErr *contract.PlanError
		if errors.As(err, &planErr) && planErr.Code == contract.ErrPlanExamNotFuture {
			return clarify(fmt.Sprintf("Your %s exam date needs to be in the future for me to build a plan. When is it?", f.Subject))
		}
		return saveFailure("study plan", err)
	}

	text := fmt.Sprintf("Done! I built a %d-day study plan for %s at %g hours per day, leading up to your exam on %s. Each day has two focused tasks.",
		len(plan.Days), plan.Subject, plan.HoursPerDay, plan.ExamDate.Format("Monday, Jan 2"))
	return &contract.ChatResponse{
		Text:    text,
		Created: &contract.CreatedRecord{Type: contract.RecordStudyPlan, ID: plan.ID},
	}
}

func (s *chatService) handleStudySession(ctx context.Context, message string, now time.Time) *contract.ChatResponse {
	f := nlp.ExtractSession(message, now)

	if f.Subject == "" {
		return clarify("What subject did you study? Try \"I studied Biology for 90 minutes\".")
	}

	session := &domain.StudySession{
		Subject:         f.Subject,
		DurationMinutes: f.DurationMinutes,
		SessionDate:     f.Date,
		Notes:           f.Notes,
	}
	if err := s.sessions.Log(ctx, session); err != nil {
		return saveFailure("study session", err)
	}

	text := fmt.Sprintf("Logged a %d-minute %s session", session.DurationMinutes, session.Subject)
	if session.Notes != "" {
		text += fmt.Sprintf(" on %s", session.Notes)
	}
	text += ". Keep it up!"
	return &contract.ChatResponse{
		Text:    text,
		Created: &contract.CreatedRecord{Type: contract.RecordStudySession, ID: session.ID},
	}
}

func (s *chatService) handleNoteSummary(ctx context.Context, message string) *contract.ChatResponse {
	notes, err := s.notes.List(ctx)
	if err != nil {
		return &contract.ChatResponse{Text: "I couldn't read your notes right now. Please try again."}
	}
	if len(notes) == 0 {
		return &contract.ChatResponse{Text: "You don't have any notes saved yet. Add one with the note command, then ask me again."}
	}

	note := pickNote(message, notes)
	summary, err := s.summarize.Summarize(ctx, note)
	if err != nil {
		return &contract.ChatResponse{Text: fmt.Sprintf("I couldn't summarize %q right now. Please try again.", note.Title)}
	}

	if err := s.notes.SaveSummary(ctx, note.ID, summary.Summary); err != nil {
		return saveFailure("summary", err)
	}

	return &contract.ChatResponse{
		Text:    renderSummary(note, summary),
		Created: &contract.CreatedRecord{Type: contract.RecordNoteSummary, ID: note.ID},
	}
}

// pickNote prefers a note whose title or subject appears in the message,
// falling back to the most recently updated note.
func pickNote(message string, notes []*domain.Note) *domain.Note {
	lower := strings.ToLower(message)
	for _, n := range notes {
		if n.Subject != "" && strings.Contains(lower, strings.ToLower(n.Subject)) {
			return n
		}
	}
	for _, n := range notes {
		if strings.Contains(lower, strings.ToLower(n.Title)) {
			return n
		}
	}
	return notes[0]
}

func renderSummary(note *domain.Note, summary *NoteSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here's a summary of %q:\n\n%s", note.Title, summary.Summary)
	if len(summary.KeyPoints) > 0 {
		b.WriteString("\n\nKey points:")
		for _, p := range summary.KeyPoints {
			b.WriteString("\n- ")
			b.WriteString(p)
		}
	}
	if len(summary.Flashcards) > 0 {
		b.WriteString("\n\nFlashcards:")
		for _, c := range summary.Flashcards {
			fmt.Fprintf(&b, "\nQ: %s\nA: %s", c.Question, c.Answer)
		}
	}
	return b.String()
}

func (s *chatService) handleInformational(ctx context.Context, message string, now time.Time) *contract.ChatResponse {
	snap := s.snapshot(ctx, now)

	if text, ok := InformationalResponse(message, snap, now); ok {
		return &contract.ChatResponse{Text: text}
	}

	if s.client != nil {
		if text, err := s.generateChat(ctx, message, snap.Profile); err == nil {
			return &contract.ChatResponse{Text: text}
		}
	}
	return &contract.ChatResponse{Text: DefaultResponse(snap)}
}

// snapshot gathers the data the response bank needs. Each read is
// independent; a failed read leaves its field empty.
func (s *chatService) snapshot(ctx context.Context, now time.Time) ContextSnapshot {
	var snap ContextSnapshot
	snap.Profile, _ = s.profile.Get(ctx)
	snap.TodayItems, _ = s.schedule.ListByDay(ctx, now.Weekday().String())
	snap.PendingTasks, _ = s.tasks.List(ctx, false)
	if classes, err := s.classes.List(ctx); err == nil {
		snap.ClassCount = len(classes)
	}
	if notes, err := s.notes.List(ctx); err == nil {
		snap.NoteCount = len(notes)
	}
	if plans, err := s.plans.List(ctx); err == nil {
		snap.PlanCount = len(plans)
	}
	return snap
}

func (s *chatService) generateChat(ctx context.Context, message string, profile *domain.UserProfile) (string, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskChat,
		SystemPrompt: chatSystemPrompt(profile),
		UserPrompt:   message,
		History:      s.recentHistory(ctx),
	})
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", llm.ErrInvalidOutput
	}
	return text, nil
}

// recentHistory converts stored chat turns into collaborator messages.
// The just-recorded user turn is excluded so it is not sent twice.
func (s *chatService) recentHistory(ctx context.Context) []llm.Message {
	if s.history == nil {
		return nil
	}
	turns, err := s.history.ListByUser(ctx, repository.DefaultUserID, historyWindow)
	if err != nil {
		return nil
	}
	if n := len(turns); n > 0 && turns[n-1].Role == domain.RoleUser {
		turns = turns[:n-1]
	}
	messages := make([]llm.Message, 0, len(turns))
	for _, t := range turns {
		messages = append(messages, llm.Message{Role: string(t.Role), Content: t.Content})
	}
	return messages
}

func clarify(text string) *contract.ChatResponse {
	return &contract.ChatResponse{Text: text, Clarification: true}
}

func saveFailure(what string, err error) *contract.ChatResponse {
	return &contract.ChatResponse{
		Text: fmt.Sprintf("I understood, but couldn't save the %s: %v. Please try again.", what, err),
	}
}
