package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studybuddy-app/studybuddy/internal/domain"
	"github.com/studybuddy-app/studybuddy/internal/repository"
	"github.com/studybuddy-app/studybuddy/internal/testutil"
)

func TestUserProfileRepo_Get_SeededDefaults(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteUserProfileRepo(db)
	ctx := context.Background()

	// Migrations seed the default user row.
	p, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, repository.DefaultUserID, p.ID)
	assert.Empty(t, p.Name)
	assert.Equal(t, 60, p.DefaultSessionMin)
	assert.Equal(t, 2.0, p.DefaultHoursPerDay)
}

func TestUserProfileRepo_Upsert(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteUserProfileRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &domain.UserProfile{
		Name:               "Jordan",
		School:             "State University",
		DefaultSessionMin:  45,
		DefaultHoursPerDay: 3,
	}))

	p, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jordan", p.Name)
	assert.Equal(t, "State University", p.School)
	assert.Equal(t, 45, p.DefaultSessionMin)
	assert.Equal(t, 3.0, p.DefaultHoursPerDay)
}

func TestUserProfileRepo_Upsert_PreservesChildRows(t *testing.T) {
	db := testutil.NewTestDB(t)
	profiles := repository.NewSQLiteUserProfileRepo(db)
	tasks := repository.NewSQLiteTaskRepo(db)
	ctx := context.Background()

	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask("Survivor")))

	// A conflicting upsert must update in place, not delete and
	// reinsert, or the cascade would take the task with it.
	require.NoError(t, profiles.Upsert(ctx, &domain.UserProfile{Name: "Jordan"}))

	list, err := tasks.ListByUser(ctx, repository.DefaultUserID, true)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
