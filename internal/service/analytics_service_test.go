package service

import (
	"context"
	"testing"
	"time"

	"github.com/lshigami/studytrack/internal/model"
	"github.com/lshigami/studytrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSubjectStats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	at := time.Date(2026, 1, 13, 8, 0, 0, 0, time.UTC)
	f.seedAttempt(t, model.Attempt{QuestionID: "q1", Subject: dsa, IsCorrect: true, Timestamp: at})
	f.seedAttempt(t, model.Attempt{QuestionID: "q2", Subject: dsa, IsCorrect: true, Timestamp: at})
	f.seedAttempt(t, model.Attempt{QuestionID: "q3", Subject: dsa, IsCorrect: false, Timestamp: at})
	f.seedAttempt(t, model.Attempt{QuestionID: "q4", Subject: "Astrology", IsCorrect: true, Timestamp: at})

	stats, err := f.analytics.GetSubjectStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, len(f.cfg.Study.Subjects))
	for i, s := range stats {
		assert.Equal(t, f.cfg.Study.Subjects[i], s.Subject)
	}

	ds, ok := stats.Get(dsa)
	require.True(t, ok)
	assert.Equal(t, 3, ds.TotalAttempted)
	assert.Equal(t, 2, ds.CorrectCount)
	assert.Equal(t, 1, ds.WrongCount)
	assert.Equal(t, 66.67, ds.Accuracy)
	assert.Equal(t, StatusModerate, ds.Status)
	require.Len(t, ds.Trend, 1)
	assert.Equal(t, "2026-01-13", ds.Trend[0].Date)

	osStats, ok := stats.Get("Operating System")
	require.True(t, ok)
	assert.Zero(t, osStats.TotalAttempted)
	assert.Zero(t, osStats.Accuracy)
	assert.Equal(t, StatusNotAvailable, osStats.Status)
	assert.Empty(t, osStats.Trend)

	_, ok = stats.Get("Astrology")
	assert.False(t, ok)
}

func TestGetSubjectStatsEmptyStore(t *testing.T) {
	f := newFixture(t)
	stats, err := f.analytics.GetSubjectStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 3)
	for _, s := range stats {
		assert.Equal(t, StatusNotAvailable, s.Status)
	}
}

func TestGetTopicStats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedAttempt(t, model.Attempt{QuestionID: "q1", Subject: dsa, Topic: testutil.Ptr("Trees"), IsCorrect: true})
	f.seedAttempt(t, model.Attempt{QuestionID: "q2", Subject: dsa, Topic: testutil.Ptr("Trees"), IsCorrect: false})
	f.seedAttempt(t, model.Attempt{QuestionID: "q3", Subject: dsa, Topic: testutil.Ptr("Graphs"), IsCorrect: true})
	f.seedAttempt(t, model.Attempt{QuestionID: "q4", Subject: dsa, IsCorrect: false})
	f.seedAttempt(t, model.Attempt{QuestionID: "q5", Subject: "Operating System", Topic: testutil.Ptr("Paging"), IsCorrect: true})

	topics, err := f.analytics.GetTopicStats(ctx, dsa)
	require.NoError(t, err)
	require.Len(t, topics, 3)

	assert.Equal(t, "Graphs", topics[0].Topic)
	assert.Equal(t, float64(100), topics[0].Accuracy)
	assert.Equal(t, StatusExcellent, topics[0].Status)

	assert.Equal(t, "Trees", topics[1].Topic)
	assert.Equal(t, 2, topics[1].TotalAttempted)
	assert.Equal(t, 1, topics[1].WrongCount)
	assert.Equal(t, float64(50), topics[1].Accuracy)
	assert.Equal(t, StatusNeedImprovement, topics[1].Status)

	assert.Equal(t, "Unknown", topics[2].Topic)
	assert.Equal(t, StatusDeadZone, topics[2].Status)

	none, err := f.analytics.GetTopicStats(ctx, "Compiler Design")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = f.analytics.GetTopicStats(ctx, "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetTrend(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	empty, err := f.analytics.GetTrend(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	// 02:00Z is 05:00 in UTC+3, still the previous study day.
	f.seedAttempt(t, model.Attempt{QuestionID: "q1", IsCorrect: true, Timestamp: time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)})
	f.seedAttempt(t, model.Attempt{QuestionID: "q2", IsCorrect: true, Timestamp: time.Date(2026, 1, 13, 2, 0, 0, 0, time.UTC)})
	f.seedAttempt(t, model.Attempt{QuestionID: "q3", IsCorrect: false, Timestamp: time.Date(2026, 1, 13, 4, 30, 0, 0, time.UTC)})

	trend, err := f.analytics.GetTrend(ctx)
	require.NoError(t, err)
	require.Len(t, trend, 2)

	assert.Equal(t, "2026-01-12", trend[0].Date)
	assert.Equal(t, "Jan 12", trend[0].DateDisplay)
	assert.Equal(t, 2, trend[0].Total)
	assert.Equal(t, float64(100), trend[0].Accuracy)

	assert.Equal(t, "2026-01-13", trend[1].Date)
	assert.Equal(t, 3, trend[1].Total)
	assert.Equal(t, 2, trend[1].Correct)
	assert.Equal(t, 66.67, trend[1].Accuracy)
}
