package model

import (
	"time"

	"gorm.io/datatypes"
)

type Question struct {
	QuestionID    string                      `gorm:"primaryKey;size:255" json:"question_id"`
	Question      string                      `gorm:"type:text;not null" json:"question"`
	Choices       datatypes.JSONSlice[string] `json:"choices"`
	CorrectAnswer string                      `gorm:"size:255;not null" json:"correct_answer"`
	Subject       string                      `gorm:"size:255;not null;index" json:"subject"`
	Topic         *string                     `gorm:"size:255;index" json:"topic,omitempty"`
	Explanation   *string                     `gorm:"type:text" json:"explanation,omitempty"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}
