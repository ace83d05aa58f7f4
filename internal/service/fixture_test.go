package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/lshigami/studytrack/config"
	"github.com/lshigami/studytrack/internal/model"
	"github.com/lshigami/studytrack/internal/repository"
	"github.com/lshigami/studytrack/internal/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fixture wires the services over one in-memory database without a cache.
type fixture struct {
	db           *gorm.DB
	cfg          *config.Config
	questionRepo repository.QuestionRepository
	attemptRepo  repository.AttemptRepository
	planRepo     repository.DailyPlanRepository
	priorityRepo repository.SubjectPriorityRepository

	analytics  AnalyticsService
	plans      *dailyPlanService
	priorities SubjectPriorityService
	attempts   AttemptService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.DB(t)
	cfg := &config.Config{Study: config.Study{
		Subjects:            []string{"Data Structures and Algorithms", "Operating System", "Compiler Design"},
		MaxPlannedQuestions: model.DefaultMaxPlannedQuestions,
	}}

	f := &fixture{
		db:           db,
		cfg:          cfg,
		questionRepo: repository.NewQuestionRepository(db),
		attemptRepo:  repository.NewAttemptRepository(db),
		planRepo:     repository.NewDailyPlanRepository(db),
		priorityRepo: repository.NewSubjectPriorityRepository(db),
	}
	f.analytics = NewAnalyticsService(f.attemptRepo, nil, cfg)
	f.plans = NewDailyPlanService(db, f.planRepo, f.attemptRepo, f.questionRepo, cfg).(*dailyPlanService)
	f.plans.intn = func(int) int { return 0 }
	f.priorities = NewSubjectPriorityService(db, f.priorityRepo, f.attemptRepo, cfg)
	f.attempts = NewAttemptService(f.attemptRepo, f.plans, f.analytics)
	return f
}

func (f *fixture) seedQuestions(t *testing.T, subject string, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		q := &model.Question{
			QuestionID:    fmt.Sprintf("%s_q%03d", subject[:2], i),
			Question:      fmt.Sprintf("question %d", i),
			Choices:       []string{"a", "b", "c", "d"},
			CorrectAnswer: "a",
			Subject:       subject,
		}
		require.NoError(t, f.questionRepo.Create(context.Background(), q))
		ids = append(ids, q.QuestionID)
	}
	return ids
}

func (f *fixture) seedPlan(t *testing.T, dateKey string, questionIDs ...string) *model.DailyPlan {
	t.Helper()
	plan := &model.DailyPlan{
		DateKey:             dateKey,
		FocusSubject:        "Data Structures and Algorithms",
		MaxPlannedQuestions: model.DefaultMaxPlannedQuestions,
		QuestionIDs:         questionIDs,
	}
	require.NoError(t, f.planRepo.Create(context.Background(), plan))
	return plan
}

func (f *fixture) seedAttempt(t *testing.T, a model.Attempt) {
	t.Helper()
	if a.AttemptID == "" {
		a.AttemptID = uuid.NewString()
	}
	if a.Subject == "" {
		a.Subject = "Data Structures and Algorithms"
	}
	require.NoError(t, f.attemptRepo.Create(context.Background(), &a))
}
