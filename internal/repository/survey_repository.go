package repository

import (
	"context"

	"github.com/lshigami/survey-core/internal/model"
	"gorm.io/gorm"
)

type SurveyRepository interface {
	Create(ctx context.Context, survey *model.Survey) error
	FindByID(ctx context.Context, sid uint) (*model.Survey, error)
	FindGroups(ctx context.Context, sid uint) ([]model.QuestionGroup, error)
	AutoNumberStart(ctx context.Context, sid uint) (int, error)
	SetActive(ctx context.Context, sid uint, active bool) error
}

type surveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

func (r *surveyRepository) Create(ctx context.Context, survey *model.Survey) error {
	return r.db.WithContext(ctx).Create(survey).Error
}

func (r *surveyRepository) FindByID(ctx context.Context, sid uint) (*model.Survey, error) {
	var survey model.Survey
	if err := r.db.WithContext(ctx).First(&survey, sid).Error; err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepository) FindGroups(ctx context.Context, sid uint) ([]model.QuestionGroup, error) {
	var groups []model.QuestionGroup
	err := r.db.WithContext(ctx).Where("sid = ?", sid).Order("group_order ASC").Order("gid ASC").Find(&groups).Error
	return groups, err
}

// AutoNumberStart reads the column directly so a value written after the survey was loaded is honoured.
func (r *surveyRepository) AutoNumberStart(ctx context.Context, sid uint) (int, error) {
	var start int
	err := r.db.WithContext(ctx).Model(&model.Survey{}).Select("autonumber_start").Where("sid = ?", sid).Scan(&start).Error
	return start, err
}

func (r *surveyRepository) SetActive(ctx context.Context, sid uint, active bool) error {
	return r.db.WithContext(ctx).Model(&model.Survey{}).Where("sid = ?", sid).Update("active", active).Error
}
