package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/studytrack/config"
	"github.com/lshigami/studytrack/internal/dto"
	"github.com/lshigami/studytrack/internal/model"
	"github.com/lshigami/studytrack/internal/repository"
	"github.com/lshigami/studytrack/internal/studyday"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultRecentPlanDays = 7

type DailyPlanService interface {
	GetOrCreatePlan(ctx context.Context, dateKey string, defaults dto.PlanDefaults) (*dto.DailyPlanResponse, error)
	GetPlan(ctx context.Context, dateKey string) (*dto.DailyPlanResponse, error)
	GetTodayPlan(ctx context.Context) (*dto.TodayPlanResponse, error)
	ListRecentPlans(ctx context.Context, days int) ([]dto.DailyPlanResponse, error)
	RecomputePlan(ctx context.Context, dateKey string) (*dto.DailyPlanResponse, error)
	CompletePlan(ctx context.Context, dateKey string) (*dto.DailyPlanResponse, error)
	MergePlans(ctx context.Context, sourceKey, targetKey string, capped bool) (*dto.DailyPlanResponse, error)
	CapPlan(ctx context.Context, dateKey string) (*dto.DailyPlanResponse, error)
}

type dailyPlanService struct {
	db           *gorm.DB
	planRepo     repository.DailyPlanRepository
	attemptRepo  repository.AttemptRepository
	questionRepo repository.QuestionRepository
	maxQuestions int
	intn         func(int) int
	now          func() time.Time
}

func NewDailyPlanService(
	db *gorm.DB,
	planRepo repository.DailyPlanRepository,
	attemptRepo repository.AttemptRepository,
	questionRepo repository.QuestionRepository,
	cfg *config.Config,
) DailyPlanService {
	maxQuestions := cfg.Study.MaxPlannedQuestions
	if maxQuestions <= 0 {
		maxQuestions = model.DefaultMaxPlannedQuestions
	}
	return &dailyPlanService{
		db:           db,
		planRepo:     planRepo,
		attemptRepo:  attemptRepo,
		questionRepo: questionRepo,
		maxQuestions: maxQuestions,
		intn:         defaultIntN,
		now:          time.Now,
	}
}

// GetOrCreatePlan returns the plan for dateKey, creating it from defaults
// when it does not exist. An existing plan is returned unchanged.
func (s *dailyPlanService) GetOrCreatePlan(ctx context.Context, dateKey string, defaults dto.PlanDefaults) (*dto.DailyPlanResponse, error) {
	if err := validateDayKey(dateKey); err != nil {
		return nil, err
	}

	existing, err := s.planRepo.FindByDateKey(ctx, dateKey)
	if err == nil {
		return toPlanResponse(existing)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, storeError(err, "daily plan "+dateKey)
	}

	subject := strings.TrimSpace(defaults.FocusSubject)
	if subject == "" {
		return nil, invalidInput("focus_subject is required to create a daily plan")
	}

	plan := &model.DailyPlan{
		DateKey:                 dateKey,
		FocusSubject:            subject,
		TotalAvailableInSubject: defaults.TotalAvailableInSubject,
		MaxPlannedQuestions:     defaults.MaxPlannedQuestions,
		QuestionIDs:             datatypes.JSONSlice[string](unionIDs(defaults.QuestionIDs, nil)),
	}
	if plan.MaxPlannedQuestions <= 0 {
		plan.MaxPlannedQuestions = s.maxQuestions
	}

	if len(plan.QuestionIDs) == 0 || plan.TotalAvailableInSubject == 0 {
		ids, err := s.questionRepo.ListIDsBySubject(ctx, subject)
		if err != nil {
			return nil, storeError(err, "questions for "+subject)
		}
		plan.TotalAvailableInSubject = len(ids)
		if len(plan.QuestionIDs) == 0 {
			plan.QuestionIDs = selectPlanQuestions(ids, dateKey, subject, plan.MaxPlannedQuestions)
		}
	}

	quote := strings.TrimSpace(defaults.MotivationalQuote)
	if quote == "" {
		quote, err = s.freshQuote(ctx)
		if err != nil {
			return nil, err
		}
	}
	plan.MotivationalQuote = &quote

	if err := s.planRepo.Create(ctx, plan); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Another request created it first.
			existing, err := s.planRepo.FindByDateKey(ctx, dateKey)
			if err != nil {
				return nil, storeError(err, "daily plan "+dateKey)
			}
			return toPlanResponse(existing)
		}
		log.Error().Err(err).Str("dateKey", dateKey).Msg("DailyPlanService: failed to create plan")
		return nil, storeError(err, "create daily plan "+dateKey)
	}

	log.Info().
		Str("dateKey", dateKey).
		Str("subject", subject).
		Int("questions", len(plan.QuestionIDs)).
		Msg("DailyPlanService: plan created")
	return toPlanResponse(plan)
}

func (s *dailyPlanService) freshQuote(ctx context.Context) (string, error) {
	recent, err := s.planRepo.FindRecent(ctx, recentQuoteWindow)
	if err != nil {
		return "", storeError(err, "recent plans")
	}
	var used []string
	for _, p := range recent {
		if p.MotivationalQuote != nil && strings.TrimSpace(*p.MotivationalQuote) != "" {
			used = append(used, *p.MotivationalQuote)
		}
	}
	return pickQuote(used, s.intn), nil
}

func (s *dailyPlanService) GetPlan(ctx context.Context, dateKey string) (*dto.DailyPlanResponse, error) {
	if err := validateDayKey(dateKey); err != nil {
		return nil, err
	}
	plan, err := s.planRepo.FindByDateKey(ctx, dateKey)
	if err != nil {
		return nil, storeError(err, "daily plan "+dateKey)
	}
	return toPlanResponse(plan)
}

// GetTodayPlan reports the current study day and its plan, if any.
func (s *dailyPlanService) GetTodayPlan(ctx context.Context) (*dto.TodayPlanResponse, error) {
	today := studyday.Key(s.now())
	resp := &dto.TodayPlanResponse{DateKey: today}

	plan, err := s.planRepo.FindByDateKey(ctx, today)
	switch {
	case err == nil:
		resp.Plan, err = toPlanResponse(plan)
		if err != nil {
			return nil, err
		}
	case !errors.Is(err, repository.ErrNotFound):
		return nil, storeError(err, "daily plan "+today)
	}
	return resp, nil
}

func (s *dailyPlanService) ListRecentPlans(ctx context.Context, days int) ([]dto.DailyPlanResponse, error) {
	if days <= 0 {
		days = defaultRecentPlanDays
	}
	plans, err := s.planRepo.FindRecent(ctx, days)
	if err != nil {
		return nil, storeError(err, "recent plans")
	}
	out := make([]dto.DailyPlanResponse, 0, len(plans))
	for i := range plans {
		resp, err := toPlanResponse(&plans[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// RecomputePlan rebuilds the plan's counters from its attempts.
func (s *dailyPlanService) RecomputePlan(ctx context.Context, dateKey string) (*dto.DailyPlanResponse, error) {
	if err := validateDayKey(dateKey); err != nil {
		return nil, err
	}

	var plan *model.DailyPlan
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := s.planRepo.WithTx(tx).FindByDateKey(ctx, dateKey)
		if err != nil {
			return storeError(err, "daily plan "+dateKey)
		}
		if err := s.recompute(ctx, tx, p); err != nil {
			return err
		}
		plan = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPlanResponse(plan)
}

// recompute reconciles plan against its attempts inside tx and saves it
// when any derived field changed.
func (s *dailyPlanService) recompute(ctx context.Context, tx *gorm.DB, plan *model.DailyPlan) error {
	attempts, err := s.attemptRepo.WithTx(tx).FindByPlanDateKey(ctx, plan.DateKey)
	if err != nil {
		return storeError(err, "attempts for plan "+plan.DateKey)
	}
	if !reconcile(plan, attempts) {
		return nil
	}
	if err := s.planRepo.WithTx(tx).Update(ctx, plan); err != nil {
		return storeError(err, "update daily plan "+plan.DateKey)
	}
	return nil
}

// reconcile sets the derived counters of plan from the attempts whose
// question is in the plan and reports whether anything changed.
func reconcile(plan *model.DailyPlan, attempts []model.Attempt) bool {
	inPlan := make(map[string]bool, len(plan.QuestionIDs))
	for _, id := range plan.QuestionIDs {
		inPlan[id] = true
	}

	var answered, correct int
	for _, a := range attempts {
		if !inPlan[a.QuestionID] {
			continue
		}
		answered++
		if a.IsCorrect {
			correct++
		}
	}

	wrong := answered - correct
	accuracy := round2(accuracyPercent(correct, answered))
	complete := answered >= len(plan.QuestionIDs)

	changed := plan.AnsweredCount != answered ||
		plan.CorrectCount != correct ||
		plan.WrongCount != wrong ||
		plan.Accuracy != accuracy ||
		plan.IsComplete != complete

	plan.AnsweredCount = answered
	plan.CorrectCount = correct
	plan.WrongCount = wrong
	plan.Accuracy = accuracy
	plan.IsComplete = complete
	return changed
}

// CompletePlan marks a plan complete by hand. A later recompute derives
// the flag from attempts again.
func (s *dailyPlanService) CompletePlan(ctx context.Context, dateKey string) (*dto.DailyPlanResponse, error) {
	if err := validateDayKey(dateKey); err != nil {
		return nil, err
	}
	plan, err := s.planRepo.FindByDateKey(ctx, dateKey)
	if err != nil {
		return nil, storeError(err, "daily plan "+dateKey)
	}
	if !plan.IsComplete {
		plan.IsComplete = true
		if err := s.planRepo.Update(ctx, plan); err != nil {
			return nil, storeError(err, "update daily plan "+dateKey)
		}
	}
	return toPlanResponse(plan)
}

// MergePlans folds the source plan into the target plan in one
// transaction: attempts move to the target, question sets are unioned
// (optionally capped), the target is recomputed and the source deleted.
func (s *dailyPlanService) MergePlans(ctx context.Context, sourceKey, targetKey string, capped bool) (*dto.DailyPlanResponse, error) {
	if err := validateDayKey(sourceKey); err != nil {
		return nil, err
	}
	if err := validateDayKey(targetKey); err != nil {
		return nil, err
	}
	if sourceKey == targetKey {
		return nil, invalidInput("source and target plans must differ")
	}

	var target *model.DailyPlan
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		planRepo := s.planRepo.WithTx(tx)
		attemptRepo := s.attemptRepo.WithTx(tx)

		source, err := findOptionalPlan(ctx, planRepo, sourceKey)
		if err != nil {
			return err
		}
		target, err = findOptionalPlan(ctx, planRepo, targetKey)
		if err != nil {
			return err
		}
		if source == nil && target == nil {
			return ErrMergeNotFound
		}

		if target == nil {
			target = &model.DailyPlan{
				DateKey:                 targetKey,
				FocusSubject:            source.FocusSubject,
				TotalAvailableInSubject: source.TotalAvailableInSubject,
				MaxPlannedQuestions:     source.MaxPlannedQuestions,
				QuestionIDs:             append(datatypes.JSONSlice[string]{}, source.QuestionIDs...),
				MotivationalQuote:       source.MotivationalQuote,
			}
			if err := planRepo.Create(ctx, target); err != nil {
				return storeError(err, "create daily plan "+targetKey)
			}
		}

		moved, err := attemptRepo.ReassignPlanDateKey(ctx, sourceKey, targetKey)
		if err != nil {
			return storeError(err, "reassign attempts")
		}

		attempts, err := attemptRepo.FindByPlanDateKey(ctx, targetKey)
		if err != nil {
			return storeError(err, "attempts for plan "+targetKey)
		}

		if source != nil {
			target.QuestionIDs = unionIDs(target.QuestionIDs, source.QuestionIDs)
			if capped {
				target.QuestionIDs = capQuestionIDs(answeredIDs(attempts, target.QuestionIDs), target.Cap(), source.QuestionIDs, target.QuestionIDs)
			}
			if target.FocusSubject == "" && source.FocusSubject != "" {
				target.FocusSubject = source.FocusSubject
			}
		}

		reconcile(target, attempts)
		if err := planRepo.Update(ctx, target); err != nil {
			return storeError(err, "update daily plan "+targetKey)
		}

		if source != nil {
			if err := planRepo.Delete(ctx, sourceKey); err != nil {
				return storeError(err, "delete daily plan "+sourceKey)
			}
		}

		log.Info().
			Str("source", sourceKey).
			Str("target", targetKey).
			Int64("attemptsMoved", moved).
			Int("questions", len(target.QuestionIDs)).
			Bool("capped", capped).
			Msg("DailyPlanService: plans merged")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPlanResponse(target)
}

// CapPlan trims a plan's question set to its cap, keeping answered
// questions first, and recomputes it.
func (s *dailyPlanService) CapPlan(ctx context.Context, dateKey string) (*dto.DailyPlanResponse, error) {
	if err := validateDayKey(dateKey); err != nil {
		return nil, err
	}

	var plan *model.DailyPlan
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		planRepo := s.planRepo.WithTx(tx)
		p, err := planRepo.FindByDateKey(ctx, dateKey)
		if err != nil {
			return storeError(err, "daily plan "+dateKey)
		}
		attempts, err := s.attemptRepo.WithTx(tx).FindByPlanDateKey(ctx, dateKey)
		if err != nil {
			return storeError(err, "attempts for plan "+dateKey)
		}

		p.QuestionIDs = capQuestionIDs(answeredIDs(attempts, p.QuestionIDs), p.Cap(), p.QuestionIDs)
		reconcile(p, attempts)
		if err := planRepo.Update(ctx, p); err != nil {
			return storeError(err, "update daily plan "+dateKey)
		}
		plan = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPlanResponse(plan)
}

func findOptionalPlan(ctx context.Context, repo repository.DailyPlanRepository, dateKey string) (*model.DailyPlan, error) {
	plan, err := repo.FindByDateKey(ctx, dateKey)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError(err, "daily plan "+dateKey)
	}
	return plan, nil
}

// answeredIDs lists the distinct ids of planIDs that have an attempt, in
// order of first attempt.
func answeredIDs(attempts []model.Attempt, planIDs []string) []string {
	inPlan := make(map[string]bool, len(planIDs))
	for _, id := range planIDs {
		inPlan[id] = true
	}
	ids := make([]string, 0, len(attempts))
	for _, a := range attempts {
		if inPlan[a.QuestionID] {
			ids = append(ids, a.QuestionID)
		}
	}
	return unionIDs(ids, nil)
}

func validateDayKey(key string) error {
	if _, err := studyday.Parse(key); err != nil {
		return invalidInput("%v", err)
	}
	return nil
}

func toPlanResponse(plan *model.DailyPlan) (*dto.DailyPlanResponse, error) {
	var resp dto.DailyPlanResponse
	if err := copier.Copy(&resp, plan); err != nil {
		return nil, err
	}
	if resp.QuestionIDs == nil {
		resp.QuestionIDs = []string{}
	}
	return &resp, nil
}
