package repository

import (
	"context"

	"github.com/lshigami/studytrack/internal/model"
	"gorm.io/gorm"
)

type ExamRepository interface {
	Create(ctx context.Context, exam *model.Exam) error
	FindByID(ctx context.Context, id string) (*model.Exam, error)
	FindAll(ctx context.Context) ([]model.Exam, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) Create(ctx context.Context, exam *model.Exam) error {
	return translate(r.db.WithContext(ctx).Create(exam).Error)
}

func (r *examRepository) FindByID(ctx context.Context, id string) (*model.Exam, error) {
	var exam model.Exam
	if err := r.db.WithContext(ctx).Where("exam_id = ?", id).First(&exam).Error; err != nil {
		return nil, translate(err)
	}
	return &exam, nil
}

func (r *examRepository) FindAll(ctx context.Context) ([]model.Exam, error) {
	var exams []model.Exam
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&exams).Error; err != nil {
		return nil, err
	}
	return exams, nil
}

func (r *examRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("exam_id = ?", id).Delete(&model.Exam{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *examRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Exam{}).Count(&n).Error
	return n, err
}
