package repository

import (
	"context"
	"errors"

	"github.com/lshigami/survey-core/internal/model"
	"gorm.io/gorm"
)

type QuestionAttributeRepository interface {
	// Find returns nil without error when the attribute is not set.
	Find(ctx context.Context, qid uint, attribute string) (*model.QuestionAttribute, error)
	Save(ctx context.Context, attr *model.QuestionAttribute) error
}

type questionAttributeRepository struct {
	db *gorm.DB
}

func NewQuestionAttributeRepository(db *gorm.DB) QuestionAttributeRepository {
	return &questionAttributeRepository{db: db}
}

func (r *questionAttributeRepository) Find(ctx context.Context, qid uint, attribute string) (*model.QuestionAttribute, error) {
	var attr model.QuestionAttribute
	err := r.db.WithContext(ctx).Where("qid = ? AND attribute = ?", qid, attribute).First(&attr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attr, nil
}

func (r *questionAttributeRepository) Save(ctx context.Context, attr *model.QuestionAttribute) error {
	return r.db.WithContext(ctx).Save(attr).Error
}
