package dto

import "time"

type DebugStatsResponse struct {
	Connected      bool      `json:"connected"`
	ExamCount      int64     `json:"exam_count"`
	AttemptCount   int64     `json:"attempt_count"`
	DailyPlanCount int64     `json:"daily_plan_count"`
	Timestamp      time.Time `json:"timestamp"`
}
