package repository

import (
	"context"

	"github.com/lshigami/studytrack/internal/model"
	"gorm.io/gorm"
)

type SubjectPriorityRepository interface {
	WithTx(tx *gorm.DB) SubjectPriorityRepository
	FindAll(ctx context.Context) ([]model.SubjectPriority, error)
	FindBySubject(ctx context.Context, subject string) (*model.SubjectPriority, error)
	Create(ctx context.Context, priority *model.SubjectPriority) error
	CreateBatch(ctx context.Context, priorities []model.SubjectPriority) error
	Update(ctx context.Context, priority *model.SubjectPriority) error
}

type subjectPriorityRepository struct {
	db *gorm.DB
}

func NewSubjectPriorityRepository(db *gorm.DB) SubjectPriorityRepository {
	return &subjectPriorityRepository{db: db}
}

func (r *subjectPriorityRepository) WithTx(tx *gorm.DB) SubjectPriorityRepository {
	return &subjectPriorityRepository{db: tx}
}

// FindAll returns every record in study order.
func (r *subjectPriorityRepository) FindAll(ctx context.Context) ([]model.SubjectPriority, error) {
	var priorities []model.SubjectPriority
	err := r.db.WithContext(ctx).
		Order("priority_order ASC").Order("subject ASC").
		Find(&priorities).Error
	if err != nil {
		return nil, err
	}
	return priorities, nil
}

func (r *subjectPriorityRepository) FindBySubject(ctx context.Context, subject string) (*model.SubjectPriority, error) {
	var priority model.SubjectPriority
	if err := r.db.WithContext(ctx).Where("subject = ?", subject).First(&priority).Error; err != nil {
		return nil, translate(err)
	}
	return &priority, nil
}

func (r *subjectPriorityRepository) Create(ctx context.Context, priority *model.SubjectPriority) error {
	prepareNew(priority)
	return translate(r.db.WithContext(ctx).Create(priority).Error)
}

func (r *subjectPriorityRepository) CreateBatch(ctx context.Context, priorities []model.SubjectPriority) error {
	if len(priorities) == 0 {
		return nil
	}
	for i := range priorities {
		prepareNew(&priorities[i])
	}
	return translate(r.db.WithContext(ctx).Create(&priorities).Error)
}

// Update is a versioned write, see dailyPlanRepository.Update.
func (r *subjectPriorityRepository) Update(ctx context.Context, priority *model.SubjectPriority) error {
	expected := priority.Version
	priority.Version = expected + 1
	res := r.db.WithContext(ctx).Model(priority).
		Where("version = ?", expected).
		Select("*").
		Updates(priority)
	if res.Error != nil {
		priority.Version = expected
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		priority.Version = expected
		return ErrStaleWrite
	}
	return nil
}

func prepareNew(p *model.SubjectPriority) {
	if p.Version == 0 {
		p.Version = 1
	}
	if p.RoundNumber < 1 {
		p.RoundNumber = 1
	}
}
