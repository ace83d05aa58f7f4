package service

import (
	"context"
	"time"

	"github.com/lshigami/studytrack/internal/dto"
	"github.com/lshigami/studytrack/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type DebugService interface {
	Stats(ctx context.Context) (*dto.DebugStatsResponse, error)
}

type debugService struct {
	db          *gorm.DB
	examRepo    repository.ExamRepository
	attemptRepo repository.AttemptRepository
	planRepo    repository.DailyPlanRepository
}

func NewDebugService(
	db *gorm.DB,
	examRepo repository.ExamRepository,
	attemptRepo repository.AttemptRepository,
	planRepo repository.DailyPlanRepository,
) DebugService {
	return &debugService{db: db, examRepo: examRepo, attemptRepo: attemptRepo, planRepo: planRepo}
}

// Stats reports row counts. A failed ping is reported as Connected=false
// rather than an error.
func (s *debugService) Stats(ctx context.Context) (*dto.DebugStatsResponse, error) {
	resp := &dto.DebugStatsResponse{Timestamp: time.Now().UTC()}

	sqlDB, err := s.db.DB()
	if err != nil || sqlDB.PingContext(ctx) != nil {
		log.Warn().Err(err).Msg("DebugService: database not reachable")
		return resp, nil
	}
	resp.Connected = true

	if resp.ExamCount, err = s.examRepo.Count(ctx); err != nil {
		return nil, storeError(err, "count exams")
	}
	if resp.AttemptCount, err = s.attemptRepo.Count(ctx); err != nil {
		return nil, storeError(err, "count attempts")
	}
	if resp.DailyPlanCount, err = s.planRepo.Count(ctx); err != nil {
		return nil, storeError(err, "count daily plans")
	}
	return resp, nil
}
