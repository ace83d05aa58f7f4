package repository

import (
	"context"
	"time"

	"github.com/lshigami/studytrack/internal/model"
	"gorm.io/gorm"
)

type AttemptFilter struct {
	Subject    string
	Topic      string
	QuestionID string
}

// AccuracyTotals is an attempt count and correct count for one group.
type AccuracyTotals struct {
	Key     string `gorm:"column:group_key"`
	Total   int
	Correct int
}

// Outcome is the slice of an attempt the trend needs.
type Outcome struct {
	Subject   string
	IsCorrect bool
	Timestamp time.Time
}

type AttemptRepository interface {
	WithTx(tx *gorm.DB) AttemptRepository
	Create(ctx context.Context, attempt *model.Attempt) error
	FindByID(ctx context.Context, id string) (*model.Attempt, error)
	List(ctx context.Context, filter AttemptFilter) ([]model.Attempt, error)
	FindByPlanDateKey(ctx context.Context, dateKey string) ([]model.Attempt, error)
	AnsweredQuestionIDs(ctx context.Context) ([]string, error)
	TotalsBySubject(ctx context.Context) ([]AccuracyTotals, error)
	TotalsByTopic(ctx context.Context, subject string) ([]AccuracyTotals, error)
	Outcomes(ctx context.Context) ([]Outcome, error)
	ReassignPlanDateKey(ctx context.Context, from, to string) (int64, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) WithTx(tx *gorm.DB) AttemptRepository {
	return &attemptRepository{db: tx}
}

func (r *attemptRepository) Create(ctx context.Context, attempt *model.Attempt) error {
	return translate(r.db.WithContext(ctx).Create(attempt).Error)
}

func (r *attemptRepository) FindByID(ctx context.Context, id string) (*model.Attempt, error) {
	var attempt model.Attempt
	if err := r.db.WithContext(ctx).Where("attempt_id = ?", id).First(&attempt).Error; err != nil {
		return nil, translate(err)
	}
	return &attempt, nil
}

// List returns matching attempts, newest first.
func (r *attemptRepository) List(ctx context.Context, filter AttemptFilter) ([]model.Attempt, error) {
	var attempts []model.Attempt
	q := r.db.WithContext(ctx)
	if filter.Subject != "" {
		q = q.Where("subject = ?", filter.Subject)
	}
	if filter.Topic != "" {
		q = q.Where("topic = ?", filter.Topic)
	}
	if filter.QuestionID != "" {
		q = q.Where("question_id = ?", filter.QuestionID)
	}
	if err := q.Order("timestamp DESC").Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

// FindByPlanDateKey returns the attempts tied to a daily plan, oldest first.
func (r *attemptRepository) FindByPlanDateKey(ctx context.Context, dateKey string) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.WithContext(ctx).
		Where("plan_date_key = ?", dateKey).
		Order("timestamp ASC").Order("attempt_id ASC").
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *attemptRepository) AnsweredQuestionIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.Attempt{}).
		Distinct("question_id").
		Order("question_id ASC").
		Pluck("question_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

const correctSum = "SUM(CASE WHEN is_correct THEN 1 ELSE 0 END)"

func (r *attemptRepository) TotalsBySubject(ctx context.Context) ([]AccuracyTotals, error) {
	var rows []AccuracyTotals
	err := r.db.WithContext(ctx).Model(&model.Attempt{}).
		Select("subject AS group_key, COUNT(*) AS total, " + correctSum + " AS correct").
		Group("subject").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// TotalsByTopic groups a subject's attempts by topic. A missing or empty
// topic is reported under "Unknown".
func (r *attemptRepository) TotalsByTopic(ctx context.Context, subject string) ([]AccuracyTotals, error) {
	var rows []AccuracyTotals
	topic := "COALESCE(NULLIF(topic, ''), 'Unknown')"
	err := r.db.WithContext(ctx).Model(&model.Attempt{}).
		Select(topic+" AS group_key, COUNT(*) AS total, "+correctSum+" AS correct").
		Where("subject = ?", subject).
		Group(topic).
		Order("group_key ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Outcomes returns subject, correctness and time of every attempt, oldest first.
func (r *attemptRepository) Outcomes(ctx context.Context) ([]Outcome, error) {
	var rows []Outcome
	err := r.db.WithContext(ctx).Model(&model.Attempt{}).
		Select("subject, is_correct, timestamp").
		Order("timestamp ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ReassignPlanDateKey moves every attempt of one plan onto another in a
// single UPDATE statement.
func (r *attemptRepository) ReassignPlanDateKey(ctx context.Context, from, to string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Attempt{}).
		Where("plan_date_key = ?", from).
		Update("plan_date_key", to)
	return res.RowsAffected, res.Error
}

func (r *attemptRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("attempt_id = ?", id).Delete(&model.Attempt{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *attemptRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Attempt{}).Count(&n).Error
	return n, err
}
