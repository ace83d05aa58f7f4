package dto

type QuestionRequest struct {
	QuestionID    string   `json:"question_id"`
	Question      string   `json:"question" binding:"required"`
	Choices       []string `json:"choices"`
	CorrectAnswer string   `json:"correct_answer" binding:"required"`
	Subject       string   `json:"subject" binding:"required"`
	Topic         *string  `json:"topic"`
	Explanation   *string  `json:"explanation"`
}

// BulkQuestionsRequest either fetches questions by id or creates many.
type BulkQuestionsRequest struct {
	IDs       []string          `json:"ids"`
	Questions []QuestionRequest `json:"questions"`
}

type CreateExamRequest struct {
	Title       string   `json:"title" binding:"required"`
	QuestionIDs []string `json:"question_ids"`
}

type RecordAttemptRequest struct {
	AttemptID      string  `json:"attempt_id"`
	QuestionID     string  `json:"question_id" binding:"required"`
	SelectedAnswer string  `json:"selected_answer"`
	IsCorrect      bool    `json:"is_correct"`
	TimeSpent      int     `json:"time_spent" binding:"min=0"`
	Subject        string  `json:"subject" binding:"required"`
	Topic          *string `json:"topic"`
	ExamID         *string `json:"exam_id"`
	Mode           *string `json:"mode"`
	PlanDateKey    *string `json:"plan_date_key"`
}

type CreateExamSessionRequest struct {
	SessionID       string         `json:"session_id"`
	ExamID          *string        `json:"exam_id"`
	Mode            string         `json:"mode" binding:"required"`
	Config          map[string]any `json:"config"`
	QuestionIDs     []string       `json:"question_ids"`
	TimePerQuestion *int           `json:"time_per_question"`
	PlanDateKey     *string        `json:"plan_date_key"`
}

// SessionProgressRequest is a partial update; nil fields are left as is.
type SessionProgressRequest struct {
	CurrentIndex *int           `json:"current_index"`
	Answers      map[string]any `json:"answers"`
	TimeSpent    map[string]any `json:"time_spent"`
	IsComplete   *bool          `json:"is_complete"`
	IsPaused     *bool          `json:"is_paused"`
}

type UpdateThemePreferencesRequest struct {
	FavoriteLightTheme *string `json:"favorite_light_theme"`
	FavoriteDarkTheme  *string `json:"favorite_dark_theme"`
	AutoMode           *bool   `json:"auto_mode"`
}
