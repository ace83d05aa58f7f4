package dto

import "time"

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type QuestionResponse struct {
	QuestionID    string    `json:"question_id"`
	Question      string    `json:"question"`
	Choices       []string  `json:"choices"`
	CorrectAnswer string    `json:"correct_answer"`
	Subject       string    `json:"subject"`
	Topic         *string   `json:"topic,omitempty"`
	Explanation   *string   `json:"explanation,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BulkCreateQuestionsResponse reports created questions and, per failed
// item, its index in the request and the reason.
type BulkCreateQuestionsResponse struct {
	Created []QuestionResponse `json:"created"`
	Errors  []BulkItemError    `json:"errors,omitempty"`
}

type BulkItemError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

type ExplanationResponse struct {
	QuestionID  string `json:"question_id"`
	Explanation string `json:"explanation"`
}

type ExamResponse struct {
	ExamID      string    `json:"exam_id"`
	Title       string    `json:"title"`
	QuestionIDs []string  `json:"question_ids"`
	CreatedAt   time.Time `json:"created_at"`
}

type AttemptResponse struct {
	AttemptID      string    `json:"attempt_id"`
	QuestionID     string    `json:"question_id"`
	SelectedAnswer string    `json:"selected_answer"`
	IsCorrect      bool      `json:"is_correct"`
	TimeSpent      int       `json:"time_spent"`
	Subject        string    `json:"subject"`
	Topic          *string   `json:"topic,omitempty"`
	ExamID         *string   `json:"exam_id,omitempty"`
	Mode           *string   `json:"mode,omitempty"`
	PlanDateKey    *string   `json:"plan_date_key,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

type ExamSessionResponse struct {
	SessionID       string         `json:"session_id"`
	ExamID          *string        `json:"exam_id,omitempty"`
	Mode            string         `json:"mode"`
	Config          map[string]any `json:"config"`
	CurrentIndex    int            `json:"current_index"`
	QuestionIDs     []string       `json:"question_ids"`
	Answers         map[string]any `json:"answers"`
	TimeSpent       map[string]any `json:"time_spent"`
	IsComplete      bool           `json:"is_complete"`
	IsPaused        bool           `json:"is_paused"`
	TimePerQuestion *int           `json:"time_per_question,omitempty"`
	PlanDateKey     *string        `json:"plan_date_key,omitempty"`
	StartedAt       time.Time      `json:"started_at"`
	LastUpdated     time.Time      `json:"last_updated"`
}

type ThemePreferencesResponse struct {
	FavoriteLightTheme string `json:"favorite_light_theme"`
	FavoriteDarkTheme  string `json:"favorite_dark_theme"`
	AutoMode           bool   `json:"auto_mode"`
}
