package dto

import (
	"bytes"
	"encoding/json"
)

type SubjectStats struct {
	Subject        string       `json:"subject"`
	TotalAttempted int          `json:"total_attempted"`
	CorrectCount   int          `json:"correct_count"`
	WrongCount     int          `json:"wrong_count"`
	Accuracy       float64      `json:"accuracy"`
	Status         string       `json:"status"`
	Trend          []TrendPoint `json:"trend"`
}

// SubjectStatsMap is keyed by subject and keeps the canonical subject
// order when rendered as a JSON object.
type SubjectStatsMap []SubjectStats

func (m SubjectStatsMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.Subject)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the stats for subject.
func (m SubjectStatsMap) Get(subject string) (SubjectStats, bool) {
	for _, s := range m {
		if s.Subject == subject {
			return s, true
		}
	}
	return SubjectStats{}, false
}

type TopicStats struct {
	Topic          string  `json:"topic"`
	TotalAttempted int     `json:"total_attempted"`
	CorrectCount   int     `json:"correct_count"`
	WrongCount     int     `json:"wrong_count"`
	Accuracy       float64 `json:"accuracy"`
	Status         string  `json:"status"`
}

// TrendPoint carries cumulative totals up to and including Date.
type TrendPoint struct {
	Date        string  `json:"date"`
	DateDisplay string  `json:"date_display"`
	Accuracy    float64 `json:"accuracy"`
	Correct     int     `json:"correct"`
	Total       int     `json:"total"`
}
