package intelligence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/studybuddy-app/studybuddy/internal/contract"
	"github.com/studybuddy-app/studybuddy/internal/domain"
	"github.com/studybuddy-app/studybuddy/internal/nlp"
	"github.com/studybuddy-app/studybuddy/internal/repository"
	"github.com/studybuddy-app/studybuddy/internal/service"
	"github.com/studybuddy-app/studybuddy/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chatNow is a Monday; relative dates in test messages resolve against it.
var chatNow = time.Date(2026, 6, 1, 10, 0, 0, 0, time.Local)

type chatFixture struct {
	chat     ChatService
	tasks    service.TaskService
	notes    service.NoteService
	sessions service.SessionService
	schedule service.ScheduleService
	plans    service.PlanService
	history  repository.ChatRepo
	db       *sql.DB
}

// newChatFixture wires the full pipeline over a real database, with the
// language model disabled.
func newChatFixture(t *testing.T) *chatFixture {
	t.Helper()
	database := testutil.NewTestDB(t)

	taskSvc := service.NewTaskService(repository.NewSQLiteTaskRepo(database))
	classSvc := service.NewClassService(repository.NewSQLiteClassRepo(database))
	noteSvc := service.NewNoteService(repository.NewSQLiteNoteRepo(database))
	sessionSvc := service.NewSessionService(repository.NewSQLiteSessionRepo(database))
	scheduleSvc := service.NewScheduleService(repository.NewSQLiteScheduleRepo(database))
	planSvc := service.NewPlanService(repository.NewSQLitePlanRepo(database), testutil.NewTestUoW(database))
	profileSvc := service.NewProfileService(repository.NewSQLiteUserProfileRepo(database))
	history := repository.NewSQLiteChatRepo(database)

	return &chatFixture{
		chat: NewChatService(
			taskSvc, classSvc, noteSvc, sessionSvc, scheduleSvc, planSvc, profileSvc,
			history, NewSummarizeService(nil), nil,
		),
		tasks:    taskSvc,
		notes:    noteSvc,
		sessions: sessionSvc,
		schedule: scheduleSvc,
		plans:    planSvc,
		history:  history,
		db:       database,
	}
}

func (f *chatFixture) send(t *testing.T, message string) *contract.ChatResponse {
	t.Helper()
	resp, err := f.chat.HandleMessage(context.Background(), contract.ChatRequest{
		Message: message,
		Now:     &chatNow,
	})
	require.NoError(t, err)
	return resp
}

func TestChatService_CreatesTask(t *testing.T) {
	f := newChatFixture(t)

	resp := f.send(t, "add a task to finish my essay by Friday")
	assert.Equal(t, string(nlp.IntentTask), resp.Intent)
	assert.False(t, resp.Clarification)
	require.NotNil(t, resp.Created)
	assert.Equal(t, contract.RecordTask, resp.Created.Type)
	assert.Contains(t, resp.Text, `"finish my essay"`)
	assert.Contains(t, resp.Text, "due Friday, Jun 5")

	task, err := f.tasks.GetByID(context.Background(), resp.Created.ID)
	require.NoError(t, err)
	assert.Equal(t, "finish my essay", task.Title)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2026-06-05", task.DueDate.Format("2006-01-02"))
}

func TestChatService_CreatesScheduleItem(t *testing.T) {
	f := newChatFixture(t)

	resp := f.send(t, "Set a reminder for my Math quiz tomorrow at 2 PM")
	assert.Equal(t, string(nlp.IntentSchedule), resp.Intent)
	require.NotNil(t, resp.Created)
	assert.Equal(t, contract.RecordScheduleItem, resp.Created.Type)
	assert.Contains(t, resp.Text, "Math quiz on Tuesday at 2:00 PM")

	item, err := f.schedule.GetByID(context.Background(), resp.Created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Math quiz", item.Subject)
	assert.Equal(t, "Tuesday", item.DayOfWeek)
	assert.Equal(t, "2:00 PM", item.TimeSlot)
	assert.Equal(t, domain.ScheduleExam, item.Type)
	assert.True(t, item.Notifications)
}

func TestChatService_CreatesStudyPlan(t *testing.T) {
	f := newChatFixture(t)

	resp := f.send(t, "create a study plan for my Biology exam in 10 days")
	assert.Equal(t, string(nlp.IntentStudyPlan), resp.Intent)
	require.NotNil(t, resp.Created)
	assert.Equal(t, contract.RecordStudyPlan, resp.Created.Type)
	assert.Contains(t, resp.Text, "10-day study plan for Biology")

	plan, err := f.plans.GetByID(context.Background(), resp.Created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Biology", plan.Subject)
	require.Len(t, plan.Days, 10)
	for _, d := range plan.Days {
		assert.Len(t, d.Tasks, 2)
	}
}

func TestChatService_LogsStudySession(t *testing.T) {
	f := newChatFixture(t)

	resp := f.send(t, "I studied Biology for 90 minutes")
	assert.Equal(t, string(nlp.IntentStudySession), resp.Intent)
	require.NotNil(t, resp.Created)
	assert.Equal(t, contract.RecordStudySession, resp.Created.Type)
	assert.Contains(t, resp.Text, "90-minute Biology session")

	sess, err := f.sessions.GetByID(context.Background(), resp.Created.ID)
	require.NoError(t, err)
	assert.Equal(t, 90, sess.DurationMinutes)
	assert.Equal(t, "2026-06-01", sess.SessionDate.Format("2006-01-02"))
}

func TestChatService_SummarizesNote(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()

	note := &domain.Note{
		Title:   "Cell biology lecture",
		Subject: "Biology",
		Content: "The cell is the basic unit of life. Mitochondria are the powerhouse of the cell. The nucleus contains genetic material.",
	}
	require.NoError(t, f.notes.Create(ctx, note))

	resp := f.send(t, "summarize my Biology notes")
	assert.Equal(t, string(nlp.IntentNoteSummary), resp.Intent)
	require.NotNil(t, resp.Created)
	assert.Equal(t, contract.RecordNoteSummary, resp.Created.Type)
	assert.Equal(t, note.ID, resp.Created.ID)
	assert.Contains(t, resp.Text, `Here's a summary of "Cell biology lecture"`)

	saved, err := f.notes.GetByID(ctx, note.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.Summary)
}

func TestChatService_SummarizeWithoutNotes(t *testing.T) {
	f := newChatFixture(t)

	resp := f.send(t, "summarize my notes")
	assert.Equal(t, string(nlp.IntentNoteSummary), resp.Intent)
	assert.Nil(t, resp.Created)
	assert.Contains(t, resp.Text, "don't have any notes")
}

func TestChatService_InformationalGreeting(t *testing.T) {
	f := newChatFixture(t)

	resp := f.send(t, "hello")
	assert.Equal(t, string(nlp.IntentInformational), resp.Intent)
	assert.Nil(t, resp.Created)
	assert.Contains(t, resp.Text, "How can I help")
}

func TestChatService_EmptyMessage(t *testing.T) {
	f := newChatFixture(t)

	resp := f.send(t, "   ")
	assert.Equal(t, string(nlp.IntentInformational), resp.Intent)
	assert.True(t, resp.Clarification)
}

func TestChatService_TaskMissingTitleAsksBack(t *testing.T) {
	f := newChatFixture(t)

	resp := f.send(t, "add a task")
	assert.Equal(t, string(nlp.IntentTask), resp.Intent)
	assert.True(t, resp.Clarification)
	assert.Nil(t, resp.Created)

	// No task was persisted.
	tasks, err := f.tasks.List(context.Background(), true)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestChatService_ScheduleMissingDayAsksBack(t *testing.T) {
	f := newChatFixture(t)

	resp := f.send(t, "set a reminder for my dentist appointment at 2 PM")
	assert.Equal(t, string(nlp.IntentSchedule), resp.Intent)
	assert.True(t, resp.Clarification)
	assert.Nil(t, resp.Created)
	assert.Contains(t, resp.Text, "dentist appointment")
}

func TestChatService_ReminderWithoutTimingIsInformational(t *testing.T) {
	f := newChatFixture(t)

	// No day or time phrase, so this cannot become a schedule item.
	resp := f.send(t, "remind me about homework")
	assert.Equal(t, string(nlp.IntentInformational), resp.Intent)
	assert.Nil(t, resp.Created)
}

func TestChatService_RecordsBothTurns(t *testing.T) {
	f := newChatFixture(t)

	resp := f.send(t, "hello")

	turns, err := f.history.ListByUser(context.Background(), repository.DefaultUserID, 0)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, domain.RoleUser, turns[0].Role)
	assert.Equal(t, "hello", turns[0].Content)
	assert.Equal(t, domain.RoleAssistant, turns[1].Role)
	assert.Equal(t, resp.Text, turns[1].Content)
}

func TestChatService_PlanExamInPastAsksBack(t *testing.T) {
	f := newChatFixture(t)

	resp := f.send(t, "create a study plan for my Biology exam on 2025-01-05")
	assert.Equal(t, string(nlp.IntentStudyPlan), resp.Intent)
	assert.True(t, resp.Clarification)
	assert.Nil(t, resp.Created)
}
