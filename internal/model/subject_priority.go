package model

import "time"

type SubjectPriority struct {
	Subject       string    `gorm:"primaryKey;size:255" json:"subject"`
	PriorityOrder int       `gorm:"not null;default:0;index" json:"priority_order"`
	IsCompleted   bool      `gorm:"not null;default:false" json:"is_completed"`
	RoundNumber   int       `gorm:"not null;default:1" json:"round_number"`
	Version       int       `gorm:"not null;default:1" json:"version"`
	UpdatedAt     time.Time `json:"updated_at"`
}
