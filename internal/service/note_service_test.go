package service

import (
	"context"
	"testing"

	"github.com/studybuddy-app/studybuddy/internal/domain"
	"github.com/studybuddy-app/studybuddy/internal/repository"
	"github.com/studybuddy-app/studybuddy/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNoteService(t *testing.T) NoteService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewNoteService(repository.NewSQLiteNoteRepo(database))
}

func TestNoteService_Create_FillsDefaults(t *testing.T) {
	svc := newNoteService(t)
	ctx := context.Background()

	note := &domain.Note{Title: "Cell biology", Content: "The cell is the basic unit of life."}
	require.NoError(t, svc.Create(ctx, note))

	assert.NotEmpty(t, note.ID)
	assert.Equal(t, repository.DefaultUserID, note.UserID)
	assert.False(t, note.CreatedAt.IsZero())

	fetched, err := svc.GetByID(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cell biology", fetched.Title)
	assert.Empty(t, fetched.Summary)
}

func TestNoteService_Create_RejectsEmptyTitle(t *testing.T) {
	svc := newNoteService(t)

	err := svc.Create(context.Background(), &domain.Note{Title: "  ", Content: "text"})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
}

func TestNoteService_SaveSummary(t *testing.T) {
	svc := newNoteService(t)
	ctx := context.Background()

	note := &domain.Note{Title: "Cell biology", Content: "The cell is the basic unit of life."}
	require.NoError(t, svc.Create(ctx, note))

	require.NoError(t, svc.SaveSummary(ctx, note.ID, "Cells are the basic unit of life."))

	fetched, err := svc.GetByID(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cells are the basic unit of life.", fetched.Summary)
	assert.True(t, fetched.UpdatedAt.After(fetched.CreatedAt) || fetched.UpdatedAt.Equal(fetched.CreatedAt))
}

func TestNoteService_SaveSummary_NotFound(t *testing.T) {
	svc := newNoteService(t)

	err := svc.SaveSummary(context.Background(), "nonexistent", "summary")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestNoteService_Delete(t *testing.T) {
	svc := newNoteService(t)
	ctx := context.Background()

	note := &domain.Note{Title: "Scratch", Content: "x"}
	require.NoError(t, svc.Create(ctx, note))
	require.NoError(t, svc.Delete(ctx, note.ID))

	_, err := svc.GetByID(ctx, note.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
