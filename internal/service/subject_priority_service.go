package service

import (
	"context"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/studytrack/config"
	"github.com/lshigami/studytrack/internal/dto"
	"github.com/lshigami/studytrack/internal/model"
	"github.com/lshigami/studytrack/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type SubjectPriorityService interface {
	ListPriorities(ctx context.Context) ([]dto.SubjectPriorityResponse, error)
	Reorder(ctx context.Context, order []string) ([]dto.SubjectPriorityResponse, error)
	Toggle(ctx context.Context, subject string) (*dto.SubjectPriorityResponse, error)
	AdvanceRound(ctx context.Context) ([]dto.SubjectPriorityResponse, error)
}

type subjectPriorityService struct {
	db           *gorm.DB
	priorityRepo repository.SubjectPriorityRepository
	attemptRepo  repository.AttemptRepository
	subjects     []string
}

func NewSubjectPriorityService(
	db *gorm.DB,
	priorityRepo repository.SubjectPriorityRepository,
	attemptRepo repository.AttemptRepository,
	cfg *config.Config,
) SubjectPriorityService {
	return &subjectPriorityService{
		db:           db,
		priorityRepo: priorityRepo,
		attemptRepo:  attemptRepo,
		subjects:     cfg.Study.Subjects,
	}
}

// ListPriorities returns the study queue. On first use the queue is
// seeded from the weakness ranking, weakest subject first.
func (s *subjectPriorityService) ListPriorities(ctx context.Context) ([]dto.SubjectPriorityResponse, error) {
	var priorities []model.SubjectPriority
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.priorityRepo.WithTx(tx)
		existing, err := repo.FindAll(ctx)
		if err != nil {
			return storeError(err, "subject priorities")
		}
		if len(existing) > 0 {
			priorities = existing
			return nil
		}

		totals, err := s.attemptRepo.WithTx(tx).TotalsBySubject(ctx)
		if err != nil {
			return storeError(err, "subject totals")
		}
		ranked := RankSubjects(s.subjects, totals)
		seed := make([]model.SubjectPriority, 0, len(ranked))
		for i, r := range ranked {
			seed = append(seed, model.SubjectPriority{
				Subject:       r.Subject,
				PriorityOrder: i,
				RoundNumber:   1,
			})
		}
		if err := repo.CreateBatch(ctx, seed); err != nil {
			return storeError(err, "seed subject priorities")
		}
		log.Info().Int("subjects", len(seed)).Msg("SubjectPriorityService: priorities bootstrapped from weakness ranking")
		priorities = seed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPriorityResponses(priorities)
}

// Reorder sets each named subject's priority to its index in order.
// Subjects without a record are created in round 1.
func (s *subjectPriorityService) Reorder(ctx context.Context, order []string) ([]dto.SubjectPriorityResponse, error) {
	if len(order) == 0 {
		return nil, invalidInput("order array required")
	}

	var priorities []model.SubjectPriority
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.priorityRepo.WithTx(tx)
		existing, err := repo.FindAll(ctx)
		if err != nil {
			return storeError(err, "subject priorities")
		}
		bySubject := make(map[string]*model.SubjectPriority, len(existing))
		for i := range existing {
			bySubject[existing[i].Subject] = &existing[i]
		}

		for i, raw := range order {
			subject := strings.TrimSpace(raw)
			if subject == "" {
				return invalidInput("order[%d] is empty", i)
			}
			p, ok := bySubject[subject]
			if !ok {
				p = &model.SubjectPriority{Subject: subject, PriorityOrder: i, RoundNumber: 1}
				if err := repo.Create(ctx, p); err != nil {
					return storeError(err, "create priority "+subject)
				}
				bySubject[subject] = p
				continue
			}
			if p.PriorityOrder == i {
				continue
			}
			p.PriorityOrder = i
			if err := repo.Update(ctx, p); err != nil {
				return storeError(err, "update priority "+subject)
			}
		}

		priorities, err = repo.FindAll(ctx)
		if err != nil {
			return storeError(err, "subject priorities")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPriorityResponses(priorities)
}

func (s *subjectPriorityService) Toggle(ctx context.Context, subject string) (*dto.SubjectPriorityResponse, error) {
	p, err := s.priorityRepo.FindBySubject(ctx, subject)
	if err != nil {
		return nil, storeError(err, "subject priority "+subject)
	}
	p.IsCompleted = !p.IsCompleted
	if err := s.priorityRepo.Update(ctx, p); err != nil {
		return nil, storeError(err, "update priority "+subject)
	}

	var resp dto.SubjectPriorityResponse
	if err := copier.Copy(&resp, p); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AdvanceRound starts a new pass over every subject: completion is
// cleared and all records move to one past the highest current round.
func (s *subjectPriorityService) AdvanceRound(ctx context.Context) ([]dto.SubjectPriorityResponse, error) {
	var priorities []model.SubjectPriority
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.priorityRepo.WithTx(tx)
		existing, err := repo.FindAll(ctx)
		if err != nil {
			return storeError(err, "subject priorities")
		}

		maxRound := 1
		for _, p := range existing {
			if p.RoundNumber > maxRound {
				maxRound = p.RoundNumber
			}
		}
		next := maxRound + 1

		for i := range existing {
			existing[i].IsCompleted = false
			existing[i].RoundNumber = next
			if err := repo.Update(ctx, &existing[i]); err != nil {
				return storeError(err, "update priority "+existing[i].Subject)
			}
		}
		log.Info().Int("round", next).Int("subjects", len(existing)).Msg("SubjectPriorityService: advanced to next round")
		priorities = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPriorityResponses(priorities)
}

func toPriorityResponses(priorities []model.SubjectPriority) ([]dto.SubjectPriorityResponse, error) {
	out := make([]dto.SubjectPriorityResponse, 0, len(priorities))
	if err := copier.Copy(&out, &priorities); err != nil {
		return nil, err
	}
	return out, nil
}
