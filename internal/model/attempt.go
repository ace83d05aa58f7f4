package model

import "time"

// Attempt is one recorded answer. Rows are written once; only PlanDateKey
// is ever rewritten, when two daily plans are merged.
type Attempt struct {
	AttemptID      string    `gorm:"primaryKey;size:255" json:"attempt_id"`
	QuestionID     string    `gorm:"size:255;not null;index" json:"question_id"`
	SelectedAnswer string    `gorm:"size:255" json:"selected_answer"`
	IsCorrect      bool      `gorm:"not null" json:"is_correct"`
	TimeSpent      int       `gorm:"not null;default:0" json:"time_spent"`
	Subject        string    `gorm:"size:255;not null;index;index:idx_attempts_subject_topic,priority:1" json:"subject"`
	Topic          *string   `gorm:"size:255;index:idx_attempts_subject_topic,priority:2" json:"topic,omitempty"`
	ExamID         *string   `gorm:"size:255" json:"exam_id,omitempty"`
	Mode           *string   `gorm:"size:50" json:"mode,omitempty"`
	PlanDateKey    *string   `gorm:"size:50;index" json:"plan_date_key,omitempty"`
	Timestamp      time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}
