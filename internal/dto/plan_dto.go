package dto

import "time"

type DailyPlanResponse struct {
	DateKey                 string    `json:"date_key"`
	FocusSubject            string    `json:"focus_subject"`
	TotalAvailableInSubject int       `json:"total_available_in_subject"`
	MaxPlannedQuestions     int       `json:"max_planned_questions"`
	QuestionIDs             []string  `json:"question_ids"`
	AnsweredCount           int       `json:"answered_count"`
	CorrectCount            int       `json:"correct_count"`
	WrongCount              int       `json:"wrong_count"`
	Accuracy                float64   `json:"accuracy"`
	IsComplete              bool      `json:"is_complete"`
	MotivationalQuote       *string   `json:"motivational_quote,omitempty"`
	Version                 int       `json:"version"`
	CreatedAt               time.Time `json:"created_at"`
	LastUpdated             time.Time `json:"last_updated"`
}

// PlanDefaults seeds a plan that does not exist yet. Only FocusSubject is
// required; an empty QuestionIDs lets the server pick the day's questions.
type PlanDefaults struct {
	FocusSubject            string   `json:"focus_subject"`
	TotalAvailableInSubject int      `json:"total_available_in_subject"`
	MaxPlannedQuestions     int      `json:"max_planned_questions"`
	QuestionIDs             []string `json:"question_ids"`
	MotivationalQuote       string   `json:"motivational_quote"`
}

type CreatePlanRequest struct {
	DateKey string `json:"date_key" binding:"required"`
	PlanDefaults
}

type TodayPlanResponse struct {
	DateKey string             `json:"date_key"`
	Plan    *DailyPlanResponse `json:"plan"`
}

type MergePlansRequest struct {
	SourceDateKey string `json:"source_date_key" binding:"required"`
	TargetDateKey string `json:"target_date_key" binding:"required"`
	Cap           bool   `json:"cap"`
}
