package service

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/studytrack/internal/dto"
	"github.com/lshigami/studytrack/internal/model"
	"github.com/lshigami/studytrack/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type ExamSessionService interface {
	StartSession(ctx context.Context, req dto.CreateExamSessionRequest) (*dto.ExamSessionResponse, error)
	GetSession(ctx context.Context, id string) (*dto.ExamSessionResponse, error)
	ListIncomplete(ctx context.Context) ([]dto.ExamSessionResponse, error)
	SaveProgress(ctx context.Context, id string, req dto.SessionProgressRequest) (*dto.ExamSessionResponse, error)
	DeleteSession(ctx context.Context, id string) error
}

type examSessionService struct {
	sessionRepo repository.ExamSessionRepository
}

func NewExamSessionService(sessionRepo repository.ExamSessionRepository) ExamSessionService {
	return &examSessionService{sessionRepo: sessionRepo}
}

func (s *examSessionService) StartSession(ctx context.Context, req dto.CreateExamSessionRequest) (*dto.ExamSessionResponse, error) {
	mode := strings.TrimSpace(req.Mode)
	if mode == "" {
		return nil, invalidInput("mode is required")
	}
	if req.TimePerQuestion != nil && *req.TimePerQuestion < 0 {
		return nil, invalidInput("time_per_question must not be negative")
	}
	if req.PlanDateKey != nil && *req.PlanDateKey != "" {
		if err := validateDayKey(*req.PlanDateKey); err != nil {
			return nil, err
		}
	}

	session := &model.ExamSession{
		SessionID:       req.SessionID,
		ExamID:          req.ExamID,
		Mode:            mode,
		Config:          datatypes.JSONMap(req.Config),
		QuestionIDs:     datatypes.JSONSlice[string](unionIDs(req.QuestionIDs, nil)),
		Answers:         datatypes.JSONMap{},
		TimeSpent:       datatypes.JSONMap{},
		TimePerQuestion: req.TimePerQuestion,
		PlanDateKey:     req.PlanDateKey,
	}
	if session.SessionID == "" {
		session.SessionID = uuid.NewString()
	}
	if session.Config == nil {
		session.Config = datatypes.JSONMap{}
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		log.Error().Err(err).Str("mode", mode).Msg("ExamSessionService: failed to create session")
		return nil, storeError(err, "session "+session.SessionID)
	}
	log.Info().Str("sessionId", session.SessionID).Int("questions", len(session.QuestionIDs)).Msg("ExamSessionService: session started")
	return toSessionResponse(session)
}

func (s *examSessionService) GetSession(ctx context.Context, id string) (*dto.ExamSessionResponse, error) {
	session, err := s.sessionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "session "+id)
	}
	return toSessionResponse(session)
}

func (s *examSessionService) ListIncomplete(ctx context.Context) ([]dto.ExamSessionResponse, error) {
	sessions, err := s.sessionRepo.FindIncomplete(ctx)
	if err != nil {
		return nil, storeError(err, "incomplete sessions")
	}
	out := make([]dto.ExamSessionResponse, 0, len(sessions))
	for i := range sessions {
		resp, err := toSessionResponse(&sessions[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// SaveProgress applies the non-nil fields of req. Answers and time spent
// are merged key by key into what the session already holds.
func (s *examSessionService) SaveProgress(ctx context.Context, id string, req dto.SessionProgressRequest) (*dto.ExamSessionResponse, error) {
	session, err := s.sessionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "session "+id)
	}

	if req.CurrentIndex != nil {
		if *req.CurrentIndex < 0 {
			return nil, invalidInput("current_index must not be negative")
		}
		session.CurrentIndex = *req.CurrentIndex
	}
	session.Answers = mergeJSONMap(session.Answers, req.Answers)
	session.TimeSpent = mergeJSONMap(session.TimeSpent, req.TimeSpent)
	if req.IsComplete != nil {
		session.IsComplete = *req.IsComplete
	}
	if req.IsPaused != nil {
		session.IsPaused = *req.IsPaused
	}

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, storeError(err, "update session "+id)
	}
	return toSessionResponse(session)
}

func (s *examSessionService) DeleteSession(ctx context.Context, id string) error {
	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		return storeError(err, "session "+id)
	}
	return nil
}

func mergeJSONMap(dst datatypes.JSONMap, src map[string]any) datatypes.JSONMap {
	if dst == nil {
		dst = datatypes.JSONMap{}
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func toSessionResponse(session *model.ExamSession) (*dto.ExamSessionResponse, error) {
	var resp dto.ExamSessionResponse
	if err := copier.Copy(&resp, session); err != nil {
		return nil, err
	}
	for _, f := range []struct {
		dst *map[string]any
		src datatypes.JSONMap
	}{
		{&resp.Config, session.Config},
		{&resp.Answers, session.Answers},
		{&resp.TimeSpent, session.TimeSpent},
	} {
		m, err := normalizeJSONMap(f.src)
		if err != nil {
			return nil, err
		}
		*f.dst = m
	}
	if resp.QuestionIDs == nil {
		resp.QuestionIDs = []string{}
	}
	return &resp, nil
}

// normalizeJSONMap decodes m the way datatypes.JSONMap.Scan does, so numbers
// are json.Number whether or not the session was reloaded from the store.
func normalizeJSONMap(m datatypes.JSONMap) (map[string]any, error) {
	out := map[string]any{}
	if len(m) == 0 {
		return out, nil
	}
	raw, err := json.Marshal(map[string]any(m))
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
