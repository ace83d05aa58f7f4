package repository

import (
	"context"

	"github.com/lshigami/studytrack/internal/model"
	"gorm.io/gorm"
)

type QuestionFilter struct {
	Subject string
	Topic   string
}

type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id string) (*model.Question, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.Question, error)
	List(ctx context.Context, filter QuestionFilter) ([]model.Question, error)
	ListIDsBySubject(ctx context.Context, subject string) ([]string, error)
	Update(ctx context.Context, question *model.Question) error
	Delete(ctx context.Context, id string) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return translate(r.db.WithContext(ctx).Create(question).Error)
}

func (r *questionRepository) FindByID(ctx context.Context, id string) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).Where("question_id = ?", id).First(&question).Error; err != nil {
		return nil, translate(err)
	}
	return &question, nil
}

func (r *questionRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Question, error) {
	var questions []model.Question
	if len(ids) == 0 {
		return questions, nil
	}
	if err := r.db.WithContext(ctx).Where("question_id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) List(ctx context.Context, filter QuestionFilter) ([]model.Question, error) {
	var questions []model.Question
	q := r.db.WithContext(ctx)
	if filter.Subject != "" {
		q = q.Where("subject = ?", filter.Subject)
	}
	if filter.Topic != "" {
		q = q.Where("topic = ?", filter.Topic)
	}
	if err := q.Order("question_id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// ListIDsBySubject returns the subject's question ids in a stable order, so
// seeded plan selection is reproducible.
func (r *questionRepository) ListIDsBySubject(ctx context.Context, subject string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.Question{}).
		Where("subject = ?", subject).
		Order("question_id ASC").
		Pluck("question_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *questionRepository) Update(ctx context.Context, question *model.Question) error {
	res := r.db.WithContext(ctx).Model(question).Select("*").Omit("created_at").Updates(question)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *questionRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("question_id = ?", id).Delete(&model.Question{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
