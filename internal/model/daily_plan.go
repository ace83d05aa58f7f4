package model

import (
	"time"

	"gorm.io/datatypes"
)

// DefaultMaxPlannedQuestions caps the question set of a new daily plan.
const DefaultMaxPlannedQuestions = 35

// DailyPlan is the question set and progress for one study day. The
// counters and IsComplete are derived from attempts and are only written
// by plan recomputation.
type DailyPlan struct {
	DateKey                 string                      `gorm:"primaryKey;size:50" json:"date_key"`
	FocusSubject            string                      `gorm:"size:255" json:"focus_subject"`
	TotalAvailableInSubject int                         `gorm:"not null;default:0" json:"total_available_in_subject"`
	MaxPlannedQuestions     int                         `gorm:"not null;default:35" json:"max_planned_questions"`
	QuestionIDs             datatypes.JSONSlice[string] `json:"question_ids"`
	AnsweredCount           int                         `gorm:"not null;default:0" json:"answered_count"`
	CorrectCount            int                         `gorm:"not null;default:0" json:"correct_count"`
	WrongCount              int                         `gorm:"not null;default:0" json:"wrong_count"`
	Accuracy                float64                     `gorm:"not null;default:0" json:"accuracy"`
	IsComplete              bool                        `gorm:"not null;default:false" json:"is_complete"`
	MotivationalQuote       *string                     `gorm:"type:text" json:"motivational_quote,omitempty"`
	Version                 int                         `gorm:"not null;default:1" json:"version"`
	CreatedAt               time.Time                   `json:"created_at"`
	LastUpdated             time.Time                   `gorm:"autoUpdateTime" json:"last_updated"`
}

// Cap returns the question limit of the plan.
func (p *DailyPlan) Cap() int {
	if p.MaxPlannedQuestions <= 0 {
		return DefaultMaxPlannedQuestions
	}
	return p.MaxPlannedQuestions
}
