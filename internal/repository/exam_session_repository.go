package repository

import (
	"context"

	"github.com/lshigami/studytrack/internal/model"
	"gorm.io/gorm"
)

type ExamSessionRepository interface {
	Create(ctx context.Context, session *model.ExamSession) error
	Update(ctx context.Context, session *model.ExamSession) error
	FindByID(ctx context.Context, id string) (*model.ExamSession, error)
	FindIncomplete(ctx context.Context) ([]model.ExamSession, error)
	Delete(ctx context.Context, id string) error
}

type examSessionRepository struct {
	db *gorm.DB
}

func NewExamSessionRepository(db *gorm.DB) ExamSessionRepository {
	return &examSessionRepository{db: db}
}

func (r *examSessionRepository) Create(ctx context.Context, session *model.ExamSession) error {
	return translate(r.db.WithContext(ctx).Create(session).Error)
}

func (r *examSessionRepository) Update(ctx context.Context, session *model.ExamSession) error {
	res := r.db.WithContext(ctx).Model(session).Select("*").Omit("started_at").Updates(session)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *examSessionRepository) FindByID(ctx context.Context, id string) (*model.ExamSession, error) {
	var session model.ExamSession
	if err := r.db.WithContext(ctx).Where("session_id = ?", id).First(&session).Error; err != nil {
		return nil, translate(err)
	}
	return &session, nil
}

func (r *examSessionRepository) FindIncomplete(ctx context.Context) ([]model.ExamSession, error) {
	var sessions []model.ExamSession
	err := r.db.WithContext(ctx).
		Where("is_complete = ?", false).
		Order("last_updated DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *examSessionRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("session_id = ?", id).Delete(&model.ExamSession{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
