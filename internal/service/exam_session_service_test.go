package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/lshigami/studytrack/internal/dto"
	"github.com/lshigami/studytrack/internal/repository"
	"github.com/lshigami/studytrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewExamSessionService(repository.NewExamSessionRepository(testutil.DB(t)))

	session, err := svc.StartSession(ctx, dto.CreateExamSessionRequest{
		Mode:        "practice",
		Config:      map[string]any{"shuffle": true},
		QuestionIDs: []string{"q1", "q2", "q3"},
		PlanDateKey: testutil.Ptr("2026-01-13"),
	})
	require.NoError(t, err)
	assert.Len(t, session.SessionID, 36)
	assert.Equal(t, true, session.Config["shuffle"])
	assert.Empty(t, session.Answers)

	session, err = svc.SaveProgress(ctx, session.SessionID, dto.SessionProgressRequest{
		CurrentIndex: testutil.Ptr(1),
		Answers:      map[string]any{"q1": "a"},
		TimeSpent:    map[string]any{"q1": 14},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, session.CurrentIndex)
	assert.Equal(t, json.Number("14"), session.TimeSpent["q1"])

	session, err = svc.SaveProgress(ctx, session.SessionID, dto.SessionProgressRequest{
		Answers:  map[string]any{"q2": "c"},
		IsPaused: testutil.Ptr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, session.CurrentIndex)
	assert.Equal(t, map[string]any{"q1": "a", "q2": "c"}, session.Answers)
	assert.True(t, session.IsPaused)

	stored, err := svc.GetSession(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "c", stored.Answers["q2"])
	assert.Equal(t, json.Number("14"), stored.TimeSpent["q1"])

	incomplete, err := svc.ListIncomplete(ctx)
	require.NoError(t, err)
	assert.Len(t, incomplete, 1)

	_, err = svc.SaveProgress(ctx, session.SessionID, dto.SessionProgressRequest{IsComplete: testutil.Ptr(true)})
	require.NoError(t, err)
	incomplete, err = svc.ListIncomplete(ctx)
	require.NoError(t, err)
	assert.Empty(t, incomplete)

	require.NoError(t, svc.DeleteSession(ctx, session.SessionID))
	_, err = svc.GetSession(ctx, session.SessionID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStartSessionValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewExamSessionService(repository.NewExamSessionRepository(testutil.DB(t)))

	_, err := svc.StartSession(ctx, dto.CreateExamSessionRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.StartSession(ctx, dto.CreateExamSessionRequest{Mode: "timed", TimePerQuestion: testutil.Ptr(-5)})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.SaveProgress(ctx, "missing", dto.SessionProgressRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}
