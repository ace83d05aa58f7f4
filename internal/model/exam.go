package model

import (
	"time"

	"gorm.io/datatypes"
)

type Exam struct {
	ExamID      string                      `gorm:"primaryKey;size:255" json:"exam_id"`
	Title       string                      `gorm:"size:255;not null" json:"title"`
	QuestionIDs datatypes.JSONSlice[string] `json:"question_ids"`
	CreatedAt   time.Time                   `gorm:"index" json:"created_at"`
}
