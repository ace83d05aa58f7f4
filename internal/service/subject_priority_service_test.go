package service

import (
	"context"
	"testing"

	"github.com/lshigami/studytrack/internal/dto"
	"github.com/lshigami/studytrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prioritySubjects(ps []dto.SubjectPriorityResponse) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Subject
	}
	return out
}

func TestListPrioritiesBootstrapsFromWeakness(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	for i := 0; i < 4; i++ {
		f.seedAttempt(t, model.Attempt{QuestionID: "q", Subject: dsa, IsCorrect: true})
	}
	f.seedAttempt(t, model.Attempt{QuestionID: "q", Subject: "Compiler Design", IsCorrect: false})

	ps, err := f.priorities.ListPriorities(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Operating System", "Compiler Design", dsa}, prioritySubjects(ps))
	for i, p := range ps {
		assert.Equal(t, i, p.PriorityOrder)
		assert.Equal(t, 1, p.RoundNumber)
		assert.False(t, p.IsCompleted)
	}

	// A second call reads the stored queue instead of re-ranking.
	f.seedAttempt(t, model.Attempt{QuestionID: "q", Subject: "Operating System", IsCorrect: true})
	again, err := f.priorities.ListPriorities(ctx)
	require.NoError(t, err)
	assert.Equal(t, prioritySubjects(ps), prioritySubjects(again))
}

func TestReorderPriorities(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.priorities.ListPriorities(ctx)
	require.NoError(t, err)

	ps, err := f.priorities.Reorder(ctx, []string{dsa, "Compiler Design", "Operating System", "Web Programming"})
	require.NoError(t, err)
	assert.Equal(t, []string{dsa, "Compiler Design", "Operating System", "Web Programming"}, prioritySubjects(ps))
	assert.Equal(t, 3, ps[3].PriorityOrder)
	assert.Equal(t, 1, ps[3].RoundNumber)

	_, err = f.priorities.Reorder(ctx, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = f.priorities.Reorder(ctx, []string{dsa, ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestToggleAndAdvanceRound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.priorities.ListPriorities(ctx)
	require.NoError(t, err)

	p, err := f.priorities.Toggle(ctx, dsa)
	require.NoError(t, err)
	assert.True(t, p.IsCompleted)
	assert.Equal(t, 2, p.Version)

	p, err = f.priorities.Toggle(ctx, dsa)
	require.NoError(t, err)
	assert.False(t, p.IsCompleted)

	_, err = f.priorities.Toggle(ctx, dsa)
	require.NoError(t, err)
	_, err = f.priorities.Toggle(ctx, "Astrology")
	assert.ErrorIs(t, err, ErrNotFound)

	ps, err := f.priorities.AdvanceRound(ctx)
	require.NoError(t, err)
	require.Len(t, ps, 3)
	for _, p := range ps {
		assert.Equal(t, 2, p.RoundNumber)
		assert.False(t, p.IsCompleted)
	}

	ps, err = f.priorities.AdvanceRound(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, ps[0].RoundNumber)
}
