package model

import (
	"time"

	"gorm.io/datatypes"
)

type ExamSession struct {
	SessionID       string                      `gorm:"primaryKey;size:255" json:"session_id"`
	ExamID          *string                     `gorm:"size:255" json:"exam_id,omitempty"`
	Mode            string                      `gorm:"size:50;not null" json:"mode"`
	Config          datatypes.JSONMap           `json:"config"`
	CurrentIndex    int                         `gorm:"not null;default:0" json:"current_index"`
	QuestionIDs     datatypes.JSONSlice[string] `json:"question_ids"`
	Answers         datatypes.JSONMap           `json:"answers"`
	TimeSpent       datatypes.JSONMap           `json:"time_spent"`
	IsComplete      bool                        `gorm:"not null;default:false;index" json:"is_complete"`
	IsPaused        bool                        `gorm:"not null;default:false" json:"is_paused"`
	TimePerQuestion *int                        `json:"time_per_question,omitempty"`
	PlanDateKey     *string                     `gorm:"size:50" json:"plan_date_key,omitempty"`
	StartedAt       time.Time                   `gorm:"autoCreateTime" json:"started_at"`
	LastUpdated     time.Time                   `gorm:"autoUpdateTime" json:"last_updated"`
}
