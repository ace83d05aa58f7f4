package user

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studytrack/config"
	"github.com/lshigami/studytrack/internal/repository"
	"github.com/lshigami/studytrack/internal/service"
	"github.com/lshigami/studytrack/internal/testutil"
	"github.com/stretchr/testify/require"
)

const dsa = "Data Structures and Algorithms"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.DB(t)
	cfg := &config.Config{Study: config.Study{
		Subjects:            []string{dsa, "Operating System", "Compiler Design"},
		MaxPlannedQuestions: 35,
	}}

	questionRepo := repository.NewQuestionRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	planRepo := repository.NewDailyPlanRepository(db)

	analytics := service.NewAnalyticsService(attemptRepo, nil, cfg)
	plans := service.NewDailyPlanService(db, planRepo, attemptRepo, questionRepo, cfg)
	explain, err := service.NewExplanationService(questionRepo, cfg)
	require.NoError(t, err)

	r := gin.New()
	api := r.Group("/api/v1")
	NewAnalyticsController(analytics).RegisterRoutes(api)
	NewPlanController(plans).RegisterRoutes(api)
	NewPriorityController(service.NewSubjectPriorityService(db, repository.NewSubjectPriorityRepository(db), attemptRepo, cfg)).RegisterRoutes(api)
	NewQuestionController(service.NewQuestionService(questionRepo), explain).RegisterRoutes(api)
	NewExamController(service.NewExamService(repository.NewExamRepository(db))).RegisterRoutes(api)
	NewAttemptController(service.NewAttemptService(attemptRepo, plans, analytics)).RegisterRoutes(api)
	NewSessionController(service.NewExamSessionService(repository.NewExamSessionRepository(db))).RegisterRoutes(api)
	NewSettingsController(service.NewThemeService(repository.NewThemePreferencesRepository(db))).RegisterRoutes(api)
	return r
}

// do sends body as JSON and decodes the response into out when out is
// non-nil.
func do(t *testing.T, r http.Handler, method, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w
}
