package service

import (
	"context"
	"testing"
	"time"

	"github.com/studybuddy-app/studybuddy/internal/domain"
	"github.com/studybuddy-app/studybuddy/internal/repository"
	"github.com/studybuddy-app/studybuddy/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionService(t *testing.T) SessionService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewSessionService(repository.NewSQLiteSessionRepo(database))
}

func TestSessionService_Log_FillsDefaults(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()

	session := &domain.StudySession{Subject: "Biology", DurationMinutes: 45}
	require.NoError(t, svc.Log(ctx, session))

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, repository.DefaultUserID, session.UserID)
	assert.False(t, session.SessionDate.IsZero(), "session date defaults to now")

	fetched, err := svc.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 45, fetched.DurationMinutes)
}

func TestSessionService_Log_RejectsZeroDuration(t *testing.T) {
	svc := newSessionService(t)

	err := svc.Log(context.Background(), &domain.StudySession{Subject: "Biology"})
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
}

func TestSessionService_Log_RejectsEmptySubject(t *testing.T) {
	svc := newSessionService(t)

	err := svc.Log(context.Background(), &domain.StudySession{DurationMinutes: 30})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
}

func TestSessionService_ListRecent(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()

	recent := &domain.StudySession{
		Subject:         "Math",
		DurationMinutes: 60,
		SessionDate:     time.Now().AddDate(0, 0, -2),
	}
	old := &domain.StudySession{
		Subject:         "History",
		DurationMinutes: 60,
		SessionDate:     time.Now().AddDate(0, 0, -30),
	}
	require.NoError(t, svc.Log(ctx, recent))
	require.NoError(t, svc.Log(ctx, old))

	sessions, err := svc.ListRecent(ctx, 7)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Math", sessions[0].Subject)
}
