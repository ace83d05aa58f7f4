package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/studytrack/internal/dto"
	"github.com/lshigami/studytrack/internal/model"
	"github.com/lshigami/studytrack/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type QuestionService interface {
	CreateQuestion(ctx context.Context, req dto.QuestionRequest) (*dto.QuestionResponse, error)
	BulkCreateQuestions(ctx context.Context, reqs []dto.QuestionRequest) (*dto.BulkCreateQuestionsResponse, error)
	GetQuestion(ctx context.Context, id string) (*dto.QuestionResponse, error)
	GetQuestionsByIDs(ctx context.Context, ids []string) ([]dto.QuestionResponse, error)
	ListQuestions(ctx context.Context, filter repository.QuestionFilter) ([]dto.QuestionResponse, error)
	UpdateQuestion(ctx context.Context, id string, req dto.QuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(ctx context.Context, id string) error
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

// newID returns prefix followed by 16 random hex digits.
func newID(prefix string) string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return prefix + hex.EncodeToString(b)
}

func questionFromRequest(req dto.QuestionRequest) (*model.Question, error) {
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Subject) == "" || req.CorrectAnswer == "" {
		return nil, invalidInput("question, correct_answer and subject are required")
	}
	q := &model.Question{
		QuestionID:    req.QuestionID,
		Question:      req.Question,
		Choices:       datatypes.JSONSlice[string](req.Choices),
		CorrectAnswer: req.CorrectAnswer,
		Subject:       strings.TrimSpace(req.Subject),
		Topic:         req.Topic,
		Explanation:   req.Explanation,
	}
	if q.Choices == nil {
		q.Choices = datatypes.JSONSlice[string]{}
	}
	if q.QuestionID == "" {
		q.QuestionID = newID("q_")
	}
	return q, nil
}

func (s *questionService) CreateQuestion(ctx context.Context, req dto.QuestionRequest) (*dto.QuestionResponse, error) {
	q, err := questionFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, q); err != nil {
		log.Error().Err(err).Str("questionId", q.QuestionID).Msg("QuestionService: failed to create question")
		return nil, storeError(err, "question "+q.QuestionID)
	}
	return toQuestionResponse(q)
}

// BulkCreateQuestions creates each question independently and reports
// failures per item instead of aborting the batch.
func (s *questionService) BulkCreateQuestions(ctx context.Context, reqs []dto.QuestionRequest) (*dto.BulkCreateQuestionsResponse, error) {
	if len(reqs) == 0 {
		return nil, invalidInput("questions array required")
	}
	resp := &dto.BulkCreateQuestionsResponse{Created: []dto.QuestionResponse{}}
	for i, req := range reqs {
		q, err := questionFromRequest(req)
		if err == nil {
			err = s.repo.Create(ctx, q)
			if err != nil {
				err = storeError(err, "question "+q.QuestionID)
			}
		}
		if err != nil {
			resp.Errors = append(resp.Errors, dto.BulkItemError{Index: i, Error: err.Error()})
			continue
		}
		created, err := toQuestionResponse(q)
		if err != nil {
			return nil, err
		}
		resp.Created = append(resp.Created, *created)
	}
	log.Info().Int("created", len(resp.Created)).Int("failed", len(resp.Errors)).Msg("QuestionService: bulk create finished")
	return resp, nil
}

func (s *questionService) GetQuestion(ctx context.Context, id string) (*dto.QuestionResponse, error) {
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "question "+id)
	}
	return toQuestionResponse(q)
}

func (s *questionService) GetQuestionsByIDs(ctx context.Context, ids []string) ([]dto.QuestionResponse, error) {
	questions, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, storeError(err, "questions")
	}
	return toQuestionResponses(questions)
}

func (s *questionService) ListQuestions(ctx context.Context, filter repository.QuestionFilter) ([]dto.QuestionResponse, error) {
	questions, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, storeError(err, "questions")
	}
	return toQuestionResponses(questions)
}

func (s *questionService) UpdateQuestion(ctx context.Context, id string, req dto.QuestionRequest) (*dto.QuestionResponse, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "question "+id)
	}
	req.QuestionID = id
	q, err := questionFromRequest(req)
	if err != nil {
		return nil, err
	}
	q.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, q); err != nil {
		return nil, storeError(err, "update question "+id)
	}
	return toQuestionResponse(q)
}

func (s *questionService) DeleteQuestion(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "question "+id)
	}
	return nil
}

func toQuestionResponse(q *model.Question) (*dto.QuestionResponse, error) {
	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, q); err != nil {
		return nil, err
	}
	return &resp, nil
}

func toQuestionResponses(questions []model.Question) ([]dto.QuestionResponse, error) {
	out := make([]dto.QuestionResponse, 0, len(questions))
	if err := copier.Copy(&out, &questions); err != nil {
		return nil, err
	}
	return out, nil
}
