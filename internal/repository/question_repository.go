package repository

import (
	"context"

	"github.com/lshigami/survey-core/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, qid uint) (*model.Question, error)
	// FindBySurveyID returns top-level questions and sub-questions of a survey.
	FindBySurveyID(ctx context.Context, sid uint) ([]model.Question, error)
	CountTopLevel(ctx context.Context, sid uint) (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *questionRepository) FindByID(ctx context.Context, qid uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, qid).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindBySurveyID(ctx context.Context, sid uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.WithContext(ctx).
		Where("sid = ?", sid).
		Order("question_order ASC").
		Order("qid ASC").
		Find(&questions).Error
	return questions, err
}

func (r *questionRepository) CountTopLevel(ctx context.Context, sid uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Question{}).Where("sid = ? AND parent_qid = 0", sid).Count(&count).Error
	return count, err
}
