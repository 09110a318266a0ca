package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studybuddy-app/studybuddy/internal/domain"
	"github.com/studybuddy-app/studybuddy/internal/repository"
	"github.com/studybuddy-app/studybuddy/internal/testutil"
)

func seedChat(t *testing.T, repo *repository.SQLiteChatRepo, n int) {
	t.Helper()
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < n; i++ {
		role := domain.RoleUser
		if i%2 == 1 {
			role = domain.RoleAssistant
		}
		msg := &domain.ChatMessage{
			ID:        uuid.New().String(),
			UserID:    repository.DefaultUserID,
			Role:      role,
			Content:   fmt.Sprintf("message %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, repo.Create(ctx, msg))
	}
}

func TestChatRepo_ListByUser_ChronologicalOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteChatRepo(db)
	ctx := context.Background()

	seedChat(t, repo, 4)

	messages, err := repo.ListByUser(ctx, repository.DefaultUserID, 0)
	require.NoError(t, err)
	require.Len(t, messages, 4)
	for i, m := range messages {
		assert.Equal(t, fmt.Sprintf("message %d", i), m.Content)
	}
	assert.Equal(t, domain.RoleUser, messages[0].Role)
	assert.Equal(t, domain.RoleAssistant, messages[1].Role)
}

func TestChatRepo_ListByUser_LimitKeepsMostRecent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteChatRepo(db)
	ctx := context.Background()

	seedChat(t, repo, 6)

	messages, err := repo.ListByUser(ctx, repository.DefaultUserID, 3)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	// The three newest, still oldest first.
	assert.Equal(t, "message 3", messages[0].Content)
	assert.Equal(t, "message 4", messages[1].Content)
	assert.Equal(t, "message 5", messages[2].Content)
}

func TestChatRepo_ListByUser_TiesBreakOnInsertionOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteChatRepo(db)
	ctx := context.Background()

	// Same timestamp for both turns of an exchange.
	now := time.Now()
	for i, content := range []string{"first", "second", "third"} {
		role := domain.RoleUser
		if i%2 == 1 {
			role = domain.RoleAssistant
		}
		require.NoError(t, repo.Create(ctx, &domain.ChatMessage{
			ID:        uuid.New().String(),
			UserID:    repository.DefaultUserID,
			Role:      role,
			Content:   content,
			CreatedAt: now,
		}))
	}

	messages, err := repo.ListByUser(ctx, repository.DefaultUserID, 0)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Content)
	assert.Equal(t, "second", messages[1].Content)
	assert.Equal(t, "third", messages[2].Content)
}

func TestChatRepo_ListByUser_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteChatRepo(db)
	ctx := context.Background()

	messages, err := repo.ListByUser(ctx, repository.DefaultUserID, 10)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestChatRepo_DeleteByUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteChatRepo(db)
	ctx := context.Background()

	seedChat(t, repo, 4)
	require.NoError(t, repo.DeleteByUser(ctx, repository.DefaultUserID))

	messages, err := repo.ListByUser(ctx, repository.DefaultUserID, 0)
	require.NoError(t, err)
	assert.Empty(t, messages)
}
