package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/studytrack/config"
	"github.com/lshigami/studytrack/internal/dto"
	"github.com/lshigami/studytrack/internal/model"
	"github.com/lshigami/studytrack/internal/repository"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-flash"

type ExplanationService interface {
	Explain(ctx context.Context, questionID string) (*dto.ExplanationResponse, error)
}

// contentGenerator is the part of *genai.GenerativeModel the service uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type explanationService struct {
	questionRepo repository.QuestionRepository
	model        contentGenerator
}

// NewExplanationService returns a service that answers ErrUnavailable
// when no Gemini API key is configured.
func NewExplanationService(questionRepo repository.QuestionRepository, cfg *config.Config) (ExplanationService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Question explanations are disabled.")
		return &explanationService{questionRepo: questionRepo}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	name := cfg.GeminiModel
	if name == "" {
		name = defaultGeminiModel
	}
	return &explanationService{questionRepo: questionRepo, model: client.GenerativeModel(name)}, nil
}

func (s *explanationService) Explain(ctx context.Context, questionID string) (*dto.ExplanationResponse, error) {
	if s.model == nil {
		return nil, fmt.Errorf("%w: explanation assistant is not configured", ErrUnavailable)
	}
	q, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		return nil, storeError(err, "question "+questionID)
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(explanationPrompt(q)))
	if err != nil {
		log.Error().Err(err).Str("questionId", questionID).Msg("ExplanationService: Gemini API error")
		return nil, fmt.Errorf("%w: gemini: %v", ErrUnavailable, err)
	}
	text := responseText(resp)
	if text == "" {
		log.Warn().Str("questionId", questionID).Msg("ExplanationService: Gemini returned no content")
		return nil, fmt.Errorf("%w: gemini returned no content", ErrUnavailable)
	}
	return &dto.ExplanationResponse{QuestionID: q.QuestionID, Explanation: text}, nil
}

func explanationPrompt(q *model.Question) string {
	var b strings.Builder
	b.WriteString("You are a patient tutor helping a student review a multiple-choice question.\n")
	b.WriteString("Explain in Markdown why the correct answer is right and why each other choice is wrong.\n")
	b.WriteString("Keep it short: a one-line summary, then one bullet per choice.\n\n")
	fmt.Fprintf(&b, "Subject: %s\n", q.Subject)
	if q.Topic != nil && *q.Topic != "" {
		fmt.Fprintf(&b, "Topic: %s\n", *q.Topic)
	}
	b.WriteString("\nQuestion:\n---\n")
	b.WriteString(q.Question)
	b.WriteString("\n---\n\nChoices:\n")
	for i, c := range q.Choices {
		fmt.Fprintf(&b, "%c. %s\n", 'A'+rune(i%26), c)
	}
	fmt.Fprintf(&b, "\nCorrect answer: %s\n", q.CorrectAnswer)
	if q.Explanation != nil && *q.Explanation != "" {
		b.WriteString("\nReference explanation (may be terse):\n")
		b.WriteString(*q.Explanation)
		b.WriteString("\n")
	}
	return b.String()
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(b.String())
}
