package user

import (
	"net/http"
	"strings"
	"testing"

	"github.com/lshigami/studytrack/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsRoutes(t *testing.T) {
	r := newTestRouter(t)
	for _, correct := range []bool{true, true, false} {
		w := do(t, r, http.MethodPost, "/api/v1/attempts", map[string]any{
			"question_id": "q1", "subject": dsa, "is_correct": correct, "topic": "Trees",
		}, nil)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	var stats map[string]dto.SubjectStats
	w := do(t, r, http.MethodGet, "/api/v1/analytics/subjects", nil, &stats)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, stats, 3)
	assert.True(t, strings.HasPrefix(w.Body.String(), `{"`+dsa+`":`), "keys keep canonical order")
	assert.Equal(t, 66.67, stats[dsa].Accuracy)
	assert.Equal(t, "MODERATE", stats[dsa].Status)
	assert.Equal(t, "N/A", stats["Compiler Design"].Status)

	var topics []dto.TopicStats
	w = do(t, r, http.MethodGet, "/api/v1/analytics/topics?subject="+strings.ReplaceAll(dsa, " ", "%20"), nil, &topics)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, topics, 1)
	assert.Equal(t, "Trees", topics[0].Topic)

	w = do(t, r, http.MethodGet, "/api/v1/analytics/topics", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var trend []dto.TrendPoint
	w = do(t, r, http.MethodGet, "/api/v1/analytics/trend", nil, &trend)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, trend, 1)
	assert.Equal(t, 3, trend[0].Total)
}
