package service

import (
	"context"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/studytrack/internal/dto"
	"github.com/lshigami/studytrack/internal/model"
	"github.com/lshigami/studytrack/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type ExamService interface {
	CreateExam(ctx context.Context, req dto.CreateExamRequest) (*dto.ExamResponse, error)
	GetExam(ctx context.Context, id string) (*dto.ExamResponse, error)
	ListExams(ctx context.Context) ([]dto.ExamResponse, error)
	DeleteExam(ctx context.Context, id string) error
}

type examService struct {
	examRepo repository.ExamRepository
}

func NewExamService(examRepo repository.ExamRepository) ExamService {
	return &examService{examRepo: examRepo}
}

func (s *examService) CreateExam(ctx context.Context, req dto.CreateExamRequest) (*dto.ExamResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, invalidInput("title is required")
	}
	exam := &model.Exam{
		ExamID:      newID("exam_"),
		Title:       title,
		QuestionIDs: datatypes.JSONSlice[string](unionIDs(req.QuestionIDs, nil)),
	}
	if err := s.examRepo.Create(ctx, exam); err != nil {
		log.Error().Err(err).Str("title", title).Msg("ExamService: failed to create exam")
		return nil, storeError(err, "exam "+exam.ExamID)
	}
	return toExamResponse(exam)
}

func (s *examService) GetExam(ctx context.Context, id string) (*dto.ExamResponse, error) {
	exam, err := s.examRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "exam "+id)
	}
	return toExamResponse(exam)
}

func (s *examService) ListExams(ctx context.Context) ([]dto.ExamResponse, error) {
	exams, err := s.examRepo.FindAll(ctx)
	if err != nil {
		return nil, storeError(err, "exams")
	}
	out := make([]dto.ExamResponse, 0, len(exams))
	for i := range exams {
		resp, err := toExamResponse(&exams[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (s *examService) DeleteExam(ctx context.Context, id string) error {
	if err := s.examRepo.Delete(ctx, id); err != nil {
		return storeError(err, "exam "+id)
	}
	return nil
}

func toExamResponse(exam *model.Exam) (*dto.ExamResponse, error) {
	var resp dto.ExamResponse
	if err := copier.Copy(&resp, exam); err != nil {
		return nil, err
	}
	if resp.QuestionIDs == nil {
		resp.QuestionIDs = []string{}
	}
	return &resp, nil
}
