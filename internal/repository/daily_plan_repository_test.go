package repository

import (
	"context"
	"testing"

	"github.com/lshigami/studytrack/internal/model"
	"github.com/lshigami/studytrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestDailyPlanRepositoryVersionedUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewDailyPlanRepository(testutil.DB(t))

	plan := &model.DailyPlan{
		DateKey:             "2026-01-13",
		FocusSubject:        "DS",
		MaxPlannedQuestions: 35,
		QuestionIDs:         datatypes.JSONSlice[string]{"A", "B"},
	}
	require.NoError(t, repo.Create(ctx, plan))
	assert.Equal(t, 1, plan.Version)

	first, err := repo.FindByDateKey(ctx, "2026-01-13")
	require.NoError(t, err)
	second, err := repo.FindByDateKey(ctx, "2026-01-13")
	require.NoError(t, err)

	first.AnsweredCount = 1
	first.CorrectCount = 1
	require.NoError(t, repo.Update(ctx, first))
	assert.Equal(t, 2, first.Version)

	second.AnsweredCount = 2
	err = repo.Update(ctx, second)
	assert.ErrorIs(t, err, ErrStaleWrite)
	assert.Equal(t, 1, second.Version)

	stored, err := repo.FindByDateKey(ctx, "2026-01-13")
	require.NoError(t, err)
	assert.Equal(t, 1, stored.AnsweredCount)
	assert.Equal(t, []string{"A", "B"}, []string(stored.QuestionIDs))
}

func TestDailyPlanRepositoryUpdateWritesZeroValues(t *testing.T) {
	ctx := context.Background()
	repo := NewDailyPlanRepository(testutil.DB(t))

	plan := &model.DailyPlan{DateKey: "2026-01-13", FocusSubject: "DS", AnsweredCount: 3, IsComplete: true}
	require.NoError(t, repo.Create(ctx, plan))

	plan.AnsweredCount = 0
	plan.IsComplete = false
	require.NoError(t, repo.Update(ctx, plan))

	stored, err := repo.FindByDateKey(ctx, "2026-01-13")
	require.NoError(t, err)
	assert.Zero(t, stored.AnsweredCount)
	assert.False(t, stored.IsComplete)
}

func TestDailyPlanRepositoryRecentAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewDailyPlanRepository(testutil.DB(t))
	for _, key := range []string{"2026-01-11", "2026-01-13", "2026-01-12"} {
		require.NoError(t, repo.Create(ctx, &model.DailyPlan{DateKey: key}))
	}

	recent, err := repo.FindRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "2026-01-13", recent[0].DateKey)
	assert.Equal(t, "2026-01-12", recent[1].DateKey)

	assert.ErrorIs(t, repo.Create(ctx, &model.DailyPlan{DateKey: "2026-01-11"}), ErrDuplicate)

	require.NoError(t, repo.Delete(ctx, "2026-01-11"))
	assert.ErrorIs(t, repo.Delete(ctx, "2026-01-11"), ErrNotFound)
	_, err = repo.FindByDateKey(ctx, "2026-01-11")
	assert.ErrorIs(t, err, ErrNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}
