package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studytrack/config"
	"github.com/lshigami/studytrack/internal/dto"
	"github.com/lshigami/studytrack/internal/model"
	"github.com/lshigami/studytrack/internal/repository"
	"github.com/lshigami/studytrack/internal/service"
	"github.com/lshigami/studytrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminFixture struct {
	router      *gin.Engine
	planRepo    repository.DailyPlanRepository
	attemptRepo repository.AttemptRepository
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.DB(t)
	cfg := &config.Config{Study: config.Study{Subjects: []string{"Operating System"}, MaxPlannedQuestions: 35}}

	questionRepo := repository.NewQuestionRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	planRepo := repository.NewDailyPlanRepository(db)
	analytics := service.NewAnalyticsService(attemptRepo, nil, cfg)
	plans := service.NewDailyPlanService(db, planRepo, attemptRepo, questionRepo, cfg)
	attempts := service.NewAttemptService(attemptRepo, plans, analytics)
	debug := service.NewDebugService(db, repository.NewExamRepository(db), attemptRepo, planRepo)

	r := gin.New()
	NewAdminController(plans, attempts, debug).RegisterRoutes(r.Group("/api/v1"))
	return &adminFixture{router: r, planRepo: planRepo, attemptRepo: attemptRepo}
}

func (f *adminFixture) do(t *testing.T, method, path string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w.Code
}

func (f *adminFixture) seedPlan(t *testing.T, dateKey string, ids ...string) {
	t.Helper()
	require.NoError(t, f.planRepo.Create(context.Background(), &model.DailyPlan{
		DateKey:             dateKey,
		FocusSubject:        "Operating System",
		MaxPlannedQuestions: 35,
		QuestionIDs:         ids,
	}))
}

func TestMergePlansRoute(t *testing.T) {
	f := newAdminFixture(t)
	f.seedPlan(t, "2026-01-12", "A", "B", "C")
	f.seedPlan(t, "2026-01-13", "B", "D")
	require.NoError(t, f.attemptRepo.Create(context.Background(), &model.Attempt{
		AttemptID: "att-b", QuestionID: "B", Subject: "Operating System", IsCorrect: true,
		PlanDateKey: testutil.Ptr("2026-01-12"),
	}))

	var plan dto.DailyPlanResponse
	code := f.do(t, http.MethodPost, "/api/v1/admin/plans/merge", dto.MergePlansRequest{
		SourceDateKey: "2026-01-12",
		TargetDateKey: "2026-01-13",
	}, &plan)
	require.Equal(t, http.StatusOK, code)
	assert.ElementsMatch(t, []string{"A", "B", "C", "D"}, plan.QuestionIDs)
	assert.Equal(t, 1, plan.AnsweredCount)

	var errResp dto.ErrorResponse
	code = f.do(t, http.MethodPost, "/api/v1/admin/plans/merge", dto.MergePlansRequest{
		SourceDateKey: "2026-02-01",
		TargetDateKey: "2026-02-02",
	}, &errResp)
	assert.Equal(t, http.StatusNotFound, code)
	assert.NotEmpty(t, errResp.Details)

	code = f.do(t, http.MethodPost, "/api/v1/admin/plans/merge", dto.MergePlansRequest{
		SourceDateKey: "2026-01-13",
		TargetDateKey: "2026-01-13",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code = f.do(t, http.MethodPost, "/api/v1/admin/plans/merge", map[string]any{}, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCapPlanAndDeleteAttemptRoutes(t *testing.T) {
	f := newAdminFixture(t)
	f.seedPlan(t, "2026-01-13", "q1", "q2")
	require.NoError(t, f.attemptRepo.Create(context.Background(), &model.Attempt{
		AttemptID: "att-1", QuestionID: "q1", Subject: "Operating System",
		PlanDateKey: testutil.Ptr("2026-01-13"),
	}))

	var plan dto.DailyPlanResponse
	code := f.do(t, http.MethodPost, "/api/v1/admin/plans/2026-01-13/cap", nil, &plan)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"q1", "q2"}, plan.QuestionIDs)
	assert.Equal(t, 1, plan.WrongCount)

	code = f.do(t, http.MethodDelete, "/api/v1/admin/attempts/att-1", nil, nil)
	require.Equal(t, http.StatusNoContent, code)
	stored, err := f.planRepo.FindByDateKey(context.Background(), "2026-01-13")
	require.NoError(t, err)
	assert.Zero(t, stored.AnsweredCount)

	code = f.do(t, http.MethodDelete, "/api/v1/admin/attempts/att-1", nil, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code = f.do(t, http.MethodPost, "/api/v1/admin/plans/2026-03-01/cap", nil, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestDebugStatsRoute(t *testing.T) {
	f := newAdminFixture(t)
	f.seedPlan(t, "2026-01-13")

	var stats dto.DebugStatsResponse
	code := f.do(t, http.MethodGet, "/api/v1/admin/debug/stats", nil, &stats)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, stats.Connected)
	assert.EqualValues(t, 1, stats.DailyPlanCount)
	assert.Zero(t, stats.AttemptCount)
}
