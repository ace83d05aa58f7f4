package repository

import (
	"context"
	"testing"
	"time"

	"github.com/lshigami/studytrack/internal/model"
	"github.com/lshigami/studytrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAttempts(t *testing.T, repo AttemptRepository, attempts ...model.Attempt) {
	t.Helper()
	base := time.Date(2026, 1, 13, 8, 0, 0, 0, time.UTC)
	for i := range attempts {
		if attempts[i].Timestamp.IsZero() {
			attempts[i].Timestamp = base.Add(time.Duration(i) * time.Minute)
		}
		require.NoError(t, repo.Create(context.Background(), &attempts[i]))
	}
}

func TestAttemptRepositoryTotals(t *testing.T) {
	ctx := context.Background()
	repo := NewAttemptRepository(testutil.DB(t))
	seedAttempts(t, repo,
		model.Attempt{AttemptID: "a1", QuestionID: "q1", Subject: "DS", Topic: testutil.Ptr("Trees"), IsCorrect: true},
		model.Attempt{AttemptID: "a2", QuestionID: "q2", Subject: "DS", Topic: testutil.Ptr("Trees"), IsCorrect: false},
		model.Attempt{AttemptID: "a3", QuestionID: "q3", Subject: "DS", IsCorrect: true},
		model.Attempt{AttemptID: "a4", QuestionID: "q4", Subject: "DS", Topic: testutil.Ptr(""), IsCorrect: false},
		model.Attempt{AttemptID: "a5", QuestionID: "q5", Subject: "OS", IsCorrect: true},
	)

	bySubject, err := repo.TotalsBySubject(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []AccuracyTotals{
		{Key: "DS", Total: 4, Correct: 2},
		{Key: "OS", Total: 1, Correct: 1},
	}, bySubject)

	byTopic, err := repo.TotalsByTopic(ctx, "DS")
	require.NoError(t, err)
	assert.Equal(t, []AccuracyTotals{
		{Key: "Trees", Total: 2, Correct: 1},
		{Key: "Unknown", Total: 2, Correct: 1},
	}, byTopic)

	none, err := repo.TotalsByTopic(ctx, "Compilers")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAttemptRepositoryOutcomesOrdered(t *testing.T) {
	ctx := context.Background()
	repo := NewAttemptRepository(testutil.DB(t))
	late := time.Date(2026, 1, 14, 9, 0, 0, 0, time.UTC)
	early := time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)
	seedAttempts(t, repo,
		model.Attempt{AttemptID: "late", QuestionID: "q1", Subject: "DS", IsCorrect: true, Timestamp: late},
		model.Attempt{AttemptID: "early", QuestionID: "q2", Subject: "OS", Timestamp: early},
	)

	outcomes, err := repo.Outcomes(ctx)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Equal(t, "OS", outcomes[0].Subject)
	assert.True(t, outcomes[0].Timestamp.Equal(early))
	assert.True(t, outcomes[1].IsCorrect)
}

func TestAttemptRepositoryReassignPlanDateKey(t *testing.T) {
	ctx := context.Background()
	repo := NewAttemptRepository(testutil.DB(t))
	seedAttempts(t, repo,
		model.Attempt{AttemptID: "a1", QuestionID: "q1", Subject: "DS", PlanDateKey: testutil.Ptr("2026-01-14")},
		model.Attempt{AttemptID: "a2", QuestionID: "q2", Subject: "DS", PlanDateKey: testutil.Ptr("2026-01-14")},
		model.Attempt{AttemptID: "a3", QuestionID: "q3", Subject: "DS", PlanDateKey: testutil.Ptr("2026-01-13")},
		model.Attempt{AttemptID: "a4", QuestionID: "q4", Subject: "DS"},
	)

	n, err := repo.ReassignPlanDateKey(ctx, "2026-01-14", "2026-01-13")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	moved, err := repo.FindByPlanDateKey(ctx, "2026-01-13")
	require.NoError(t, err)
	assert.Len(t, moved, 3)

	left, err := repo.FindByPlanDateKey(ctx, "2026-01-14")
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestAttemptRepositoryListAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewAttemptRepository(testutil.DB(t))
	seedAttempts(t, repo,
		model.Attempt{AttemptID: "a1", QuestionID: "q1", Subject: "DS"},
		model.Attempt{AttemptID: "a2", QuestionID: "q1", Subject: "DS"},
		model.Attempt{AttemptID: "a3", QuestionID: "q2", Subject: "OS"},
	)

	ds, err := repo.List(ctx, AttemptFilter{Subject: "DS"})
	require.NoError(t, err)
	require.Len(t, ds, 2)
	assert.Equal(t, "a2", ds[0].AttemptID, "newest first")

	ids, err := repo.AnsweredQuestionIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"q1", "q2"}, ids)

	require.NoError(t, repo.Delete(ctx, "a1"))
	assert.ErrorIs(t, repo.Delete(ctx, "a1"), ErrNotFound)
	_, err = repo.FindByID(ctx, "a1")
	assert.ErrorIs(t, err, ErrNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestAttemptRepositoryDuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := NewAttemptRepository(testutil.DB(t))
	seedAttempts(t, repo, model.Attempt{AttemptID: "a1", QuestionID: "q1", Subject: "DS"})

	err := repo.Create(ctx, &model.Attempt{AttemptID: "a1", QuestionID: "q2", Subject: "DS"})
	assert.ErrorIs(t, err, ErrDuplicate)
}
