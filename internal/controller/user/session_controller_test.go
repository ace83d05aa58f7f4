package user

import (
	"net/http"
	"testing"

	"github.com/lshigami/studytrack/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoutes(t *testing.T) {
	r := newTestRouter(t)

	var session dto.ExamSessionResponse
	w := do(t, r, http.MethodPost, "/api/v1/sessions", map[string]any{
		"mode":         "practice",
		"question_ids": []string{"q1", "q2"},
	}, &session)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodPatch, "/api/v1/sessions/"+session.SessionID+"/progress", map[string]any{
		"current_index": 1,
		"answers":       map[string]any{"q1": "b"},
	}, &session)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, session.CurrentIndex)
	assert.Equal(t, "b", session.Answers["q1"])

	var incomplete []dto.ExamSessionResponse
	w = do(t, r, http.MethodGet, "/api/v1/sessions/incomplete", nil, &incomplete)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, incomplete, 1)

	w = do(t, r, http.MethodDelete, "/api/v1/sessions/"+session.SessionID, nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, r, http.MethodGet, "/api/v1/sessions/"+session.SessionID, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestThemeRoutes(t *testing.T) {
	r := newTestRouter(t)

	var prefs dto.ThemePreferencesResponse
	w := do(t, r, http.MethodGet, "/api/v1/settings/theme", nil, &prefs)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "light", prefs.FavoriteLightTheme)

	w = do(t, r, http.MethodPut, "/api/v1/settings/theme", map[string]any{"auto_mode": true}, &prefs)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, prefs.AutoMode)
	assert.Equal(t, "dark", prefs.FavoriteDarkTheme)
}
