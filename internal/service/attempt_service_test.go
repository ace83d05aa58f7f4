package service

import (
	"context"
	"testing"

	"github.com/lshigami/studytrack/internal/dto"
	"github.com/lshigami/studytrack/internal/repository"
	"github.com/lshigami/studytrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAttemptRecomputesPlan(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedPlan(t, "2026-01-13", "q1", "q2")

	resp, err := f.attempts.RecordAttempt(ctx, dto.RecordAttemptRequest{
		QuestionID:     "q1",
		SelectedAnswer: "a",
		IsCorrect:      true,
		TimeSpent:      12,
		Subject:        dsa,
		PlanDateKey:    testutil.Ptr("2026-01-13"),
	})
	require.NoError(t, err)
	assert.Len(t, resp.AttemptID, 36)
	assert.False(t, resp.Timestamp.IsZero())

	plan, err := f.plans.GetPlan(ctx, "2026-01-13")
	require.NoError(t, err)
	assert.Equal(t, 1, plan.AnsweredCount)
	assert.Equal(t, float64(100), plan.Accuracy)

	require.NoError(t, f.attempts.DeleteAttempt(ctx, resp.AttemptID))
	plan, err = f.plans.GetPlan(ctx, "2026-01-13")
	require.NoError(t, err)
	assert.Zero(t, plan.AnsweredCount)

	assert.ErrorIs(t, f.attempts.DeleteAttempt(ctx, resp.AttemptID), ErrNotFound)
}

func TestRecordAttemptWithoutPlan(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	resp, err := f.attempts.RecordAttempt(ctx, dto.RecordAttemptRequest{
		AttemptID:   "client-id",
		QuestionID:  "q1",
		Subject:     dsa,
		PlanDateKey: testutil.Ptr("2026-01-13"),
	})
	require.NoError(t, err)
	assert.Equal(t, "client-id", resp.AttemptID)

	_, err = f.attempts.RecordAttempt(ctx, dto.RecordAttemptRequest{AttemptID: "client-id", QuestionID: "q1", Subject: dsa})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestRecordAttemptValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.attempts.RecordAttempt(ctx, dto.RecordAttemptRequest{Subject: dsa})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = f.attempts.RecordAttempt(ctx, dto.RecordAttemptRequest{QuestionID: "q1", Subject: dsa, TimeSpent: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = f.attempts.RecordAttempt(ctx, dto.RecordAttemptRequest{QuestionID: "q1", Subject: dsa, PlanDateKey: testutil.Ptr("13/01/2026")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListAttemptsAndAnsweredIDs(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	for _, q := range []string{"q1", "q2", "q1"} {
		_, err := f.attempts.RecordAttempt(ctx, dto.RecordAttemptRequest{QuestionID: q, Subject: dsa})
		require.NoError(t, err)
	}
	_, err := f.attempts.RecordAttempt(ctx, dto.RecordAttemptRequest{QuestionID: "q3", Subject: "Operating System"})
	require.NoError(t, err)

	ids, err := f.attempts.AnsweredQuestionIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"q1", "q2", "q3"}, ids)

	list, err := f.attempts.ListAttempts(ctx, repository.AttemptFilter{Subject: dsa})
	require.NoError(t, err)
	assert.Len(t, list, 3)

	list, err = f.attempts.ListAttempts(ctx, repository.AttemptFilter{QuestionID: "q1"})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	got, err := f.attempts.GetAttempt(ctx, list[0].AttemptID)
	require.NoError(t, err)
	assert.Equal(t, "q1", got.QuestionID)
}
