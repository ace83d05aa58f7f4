package repository

import (
	"context"

	"github.com/lshigami/studytrack/internal/model"
	"gorm.io/gorm"
)

type DailyPlanRepository interface {
	WithTx(tx *gorm.DB) DailyPlanRepository
	Create(ctx context.Context, plan *model.DailyPlan) error
	FindByDateKey(ctx context.Context, dateKey string) (*model.DailyPlan, error)
	FindRecent(ctx context.Context, limit int) ([]model.DailyPlan, error)
	Update(ctx context.Context, plan *model.DailyPlan) error
	Delete(ctx context.Context, dateKey string) error
	Count(ctx context.Context) (int64, error)
}

type dailyPlanRepository struct {
	db *gorm.DB
}

func NewDailyPlanRepository(db *gorm.DB) DailyPlanRepository {
	return &dailyPlanRepository{db: db}
}

func (r *dailyPlanRepository) WithTx(tx *gorm.DB) DailyPlanRepository {
	return &dailyPlanRepository{db: tx}
}

func (r *dailyPlanRepository) Create(ctx context.Context, plan *model.DailyPlan) error {
	if plan.Version == 0 {
		plan.Version = 1
	}
	return translate(r.db.WithContext(ctx).Create(plan).Error)
}

func (r *dailyPlanRepository) FindByDateKey(ctx context.Context, dateKey string) (*model.DailyPlan, error) {
	var plan model.DailyPlan
	if err := r.db.WithContext(ctx).Where("date_key = ?", dateKey).First(&plan).Error; err != nil {
		return nil, translate(err)
	}
	return &plan, nil
}

// FindRecent returns up to limit plans, latest day first.
func (r *dailyPlanRepository) FindRecent(ctx context.Context, limit int) ([]model.DailyPlan, error) {
	var plans []model.DailyPlan
	err := r.db.WithContext(ctx).Order("date_key DESC").Limit(limit).Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// Update writes every column of plan if the stored version still matches
// plan.Version, then bumps the version. A lost race yields ErrStaleWrite.
func (r *dailyPlanRepository) Update(ctx context.Context, plan *model.DailyPlan) error {
	expected := plan.Version
	plan.Version = expected + 1
	res := r.db.WithContext(ctx).Model(plan).
		Where("version = ?", expected).
		Select("*").Omit("created_at").
		Updates(plan)
	if res.Error != nil {
		plan.Version = expected
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		plan.Version = expected
		return ErrStaleWrite
	}
	return nil
}

func (r *dailyPlanRepository) Delete(ctx context.Context, dateKey string) error {
	res := r.db.WithContext(ctx).Where("date_key = ?", dateKey).Delete(&model.DailyPlan{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *dailyPlanRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.DailyPlan{}).Count(&n).Error
	return n, err
}
