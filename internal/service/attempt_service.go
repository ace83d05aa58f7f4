package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/studytrack/internal/dto"
	"github.com/lshigami/studytrack/internal/model"
	"github.com/lshigami/studytrack/internal/repository"
	"github.com/rs/zerolog/log"
)

type AttemptService interface {
	RecordAttempt(ctx context.Context, req dto.RecordAttemptRequest) (*dto.AttemptResponse, error)
	GetAttempt(ctx context.Context, id string) (*dto.AttemptResponse, error)
	ListAttempts(ctx context.Context, filter repository.AttemptFilter) ([]dto.AttemptResponse, error)
	AnsweredQuestionIDs(ctx context.Context) ([]string, error)
	DeleteAttempt(ctx context.Context, id string) error
}

type attemptService struct {
	attemptRepo repository.AttemptRepository
	planSvc     DailyPlanService
	analytics   AnalyticsService
}

func NewAttemptService(
	attemptRepo repository.AttemptRepository,
	planSvc DailyPlanService,
	analytics AnalyticsService,
) AttemptService {
	return &attemptService{
		attemptRepo: attemptRepo,
		planSvc:     planSvc,
		analytics:   analytics,
	}
}

// RecordAttempt stores one answer. When the attempt belongs to a daily
// plan, that plan's counters are recomputed.
func (s *attemptService) RecordAttempt(ctx context.Context, req dto.RecordAttemptRequest) (*dto.AttemptResponse, error) {
	if strings.TrimSpace(req.QuestionID) == "" || strings.TrimSpace(req.Subject) == "" {
		return nil, invalidInput("question_id and subject are required")
	}
	if req.TimeSpent < 0 {
		return nil, invalidInput("time_spent must not be negative")
	}
	if req.PlanDateKey != nil && *req.PlanDateKey == "" {
		req.PlanDateKey = nil
	}
	if req.PlanDateKey != nil {
		if err := validateDayKey(*req.PlanDateKey); err != nil {
			return nil, err
		}
	}

	var attempt model.Attempt
	if err := copier.Copy(&attempt, &req); err != nil {
		return nil, err
	}
	if attempt.AttemptID == "" {
		attempt.AttemptID = uuid.NewString()
	}

	if err := s.attemptRepo.Create(ctx, &attempt); err != nil {
		log.Error().Err(err).Str("questionId", req.QuestionID).Msg("AttemptService: failed to create attempt")
		return nil, storeError(err, "attempt "+attempt.AttemptID)
	}

	s.afterChange(ctx, attempt.PlanDateKey)

	var resp dto.AttemptResponse
	if err := copier.Copy(&resp, &attempt); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *attemptService) GetAttempt(ctx context.Context, id string) (*dto.AttemptResponse, error) {
	attempt, err := s.attemptRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "attempt "+id)
	}
	var resp dto.AttemptResponse
	if err := copier.Copy(&resp, attempt); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *attemptService) ListAttempts(ctx context.Context, filter repository.AttemptFilter) ([]dto.AttemptResponse, error) {
	attempts, err := s.attemptRepo.List(ctx, filter)
	if err != nil {
		return nil, storeError(err, "attempts")
	}
	out := make([]dto.AttemptResponse, 0, len(attempts))
	if err := copier.Copy(&out, &attempts); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *attemptService) AnsweredQuestionIDs(ctx context.Context) ([]string, error) {
	ids, err := s.attemptRepo.AnsweredQuestionIDs(ctx)
	if err != nil {
		return nil, storeError(err, "answered question ids")
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (s *attemptService) DeleteAttempt(ctx context.Context, id string) error {
	attempt, err := s.attemptRepo.FindByID(ctx, id)
	if err != nil {
		return storeError(err, "attempt "+id)
	}
	if err := s.attemptRepo.Delete(ctx, id); err != nil {
		return storeError(err, "delete attempt "+id)
	}
	log.Info().Str("attemptId", id).Msg("AttemptService: attempt deleted")
	s.afterChange(ctx, attempt.PlanDateKey)
	return nil
}

// afterChange refreshes everything derived from attempts. Failures are
// logged; the attempt write itself has already succeeded.
func (s *attemptService) afterChange(ctx context.Context, planDateKey *string) {
	s.analytics.Invalidate(ctx)
	if planDateKey == nil {
		return
	}
	if _, err := s.planSvc.RecomputePlan(ctx, *planDateKey); err != nil && !errors.Is(err, ErrNotFound) {
		log.Warn().Err(err).Str("dateKey", *planDateKey).Msg("AttemptService: plan recompute after attempt change failed")
	}
}
