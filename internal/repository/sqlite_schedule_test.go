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

func TestScheduleRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteScheduleRepo(db)
	ctx := context.Background()

	item := testutil.NewTestScheduleItem("Math quiz", "Tuesday",
		testutil.WithItemType(domain.ScheduleExam),
		testutil.WithTimeSlot("2:00 PM"),
	)
	require.NoError(t, repo.Create(ctx, item))

	fetched, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Math quiz", fetched.Subject)
	assert.Equal(t, "Tuesday", fetched.DayOfWeek)
	assert.Equal(t, domain.ScheduleExam, fetched.Type)
	assert.Equal(t, "2:00 PM", fetched.TimeSlot)
	assert.True(t, fetched.Notifications)
}

func TestScheduleRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteScheduleRepo(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "nonexistent")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestScheduleRepo_ListByUser_WeekOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteScheduleRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestScheduleItem("Late week", "Friday")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestScheduleItem("Weekend", "Sunday")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestScheduleItem("Early week", "Monday")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestScheduleItem("Afternoon", "Monday", testutil.WithTimeSlot("3:00 PM"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestScheduleItem("Morning", "Monday", testutil.WithTimeSlot("9:00 AM"))))

	items, err := repo.ListByUser(ctx, repository.DefaultUserID)
	require.NoError(t, err)
	require.Len(t, items, 5)
	// Monday items first, ordered by time slot; Sunday last.
	assert.Equal(t, "Early week", items[0].Subject) // empty slot sorts first
	assert.Equal(t, "Afternoon", items[1].Subject)
	assert.Equal(t, "Morning", items[2].Subject)
	assert.Equal(t, "Late week", items[3].Subject)
	assert.Equal(t, "Weekend", items[4].Subject)
}

func TestScheduleRepo_ListByDay(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteScheduleRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestScheduleItem("History class", "Wednesday")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestScheduleItem("Math quiz", "Friday")))

	items, err := repo.ListByDay(ctx, repository.DefaultUserID, "Wednesday")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "History class", items[0].Subject)

	none, err := repo.ListByDay(ctx, repository.DefaultUserID, "Saturday")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestScheduleRepo_InvalidDayRejected(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteScheduleRepo(db)
	ctx := context.Background()

	item := testutil.NewTestScheduleItem("Bad day", "Someday")
	err := repo.Create(ctx, item)
	assert.Error(t, err, "day_of_week CHECK constraint should reject unknown days")
}

func TestScheduleRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteScheduleRepo(db)
	ctx := context.Background()

	item := testutil.NewTestScheduleItem("Math quiz", "Tuesday")
	require.NoError(t, repo.Create(ctx, item))
	require.NoError(t, repo.Delete(ctx, item.ID))

	_, err := repo.GetByID(ctx, item.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
