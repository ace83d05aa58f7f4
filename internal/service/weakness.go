package service

import (
	"math"
	"sort"

	"github.com/lshigami/studytrack/internal/repository"
)

// Status labels for an accuracy percentage.
const (
	StatusExcellent               = "EXCELLENT"
	StatusVeryGood                = "VERY_GOOD"
	StatusGood                    = "GOOD"
	StatusModerate                = "MODERATE"
	StatusNeedImprovement         = "NEED_IMPROVEMENT"
	StatusNeedImprovementVeryMuch = "NEED_IMPROVEMENT_VERY_MUCH"
	StatusDeadZone                = "DEAD_ZONE"
	StatusNotAvailable            = "N/A"
)

// UnattemptedScore is the weakness score of a subject nobody has practised.
const UnattemptedScore = 1000.0

// CalculateStatus labels an accuracy percentage in [0, 100].
func CalculateStatus(accuracy float64) string {
	switch {
	case accuracy >= 90:
		return StatusExcellent
	case accuracy >= 80:
		return StatusVeryGood
	case accuracy >= 70:
		return StatusGood
	case accuracy >= 60:
		return StatusModerate
	case accuracy >= 50:
		return StatusNeedImprovement
	case accuracy >= 30:
		return StatusNeedImprovementVeryMuch
	default:
		return StatusDeadZone
	}
}

// WeaknessScore ranks how urgently a subject needs study:
// (100 - accuracy) * ln(1 + total). Higher is weaker.
func WeaknessScore(total, correct int) float64 {
	if total == 0 {
		return UnattemptedScore
	}
	return (100 - accuracyPercent(correct, total)) * math.Log1p(float64(total))
}

// SubjectScore is one subject's attempt totals and weakness score.
type SubjectScore struct {
	Subject string
	Total   int
	Correct int
	Score   float64
}

// RankSubjects scores every subject and sorts weakest first. Equal scores
// keep the order of subjects.
func RankSubjects(subjects []string, totals []repository.AccuracyTotals) []SubjectScore {
	bySubject := make(map[string]repository.AccuracyTotals, len(totals))
	for _, t := range totals {
		bySubject[t.Key] = t
	}

	ranked := make([]SubjectScore, 0, len(subjects))
	for _, subject := range subjects {
		t := bySubject[subject]
		ranked = append(ranked, SubjectScore{
			Subject: subject,
			Total:   t.Total,
			Correct: t.Correct,
			Score:   WeaknessScore(t.Total, t.Correct),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

func accuracyPercent(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
