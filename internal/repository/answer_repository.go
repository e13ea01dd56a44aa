package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/survey-core/internal/model"
	"gorm.io/gorm"
)

var (
	ErrDuplicateAnswerCode = model.ErrDuplicateAnswerCode
	ErrInvalidAnswerCode   = model.ErrInvalidAnswerCode
)

// AnswerStatisticsRow is an answer flattened with one of its localizations.
type AnswerStatisticsRow struct {
	AID             uint   `json:"aid" gorm:"column:aid"`
	QID             uint   `json:"qid" gorm:"column:qid"`
	Code            string `json:"code" gorm:"column:code"`
	SortOrder       int    `json:"sort_order" gorm:"column:sortorder"`
	AssessmentValue int    `json:"assessment_value" gorm:"column:assessment_value"`
	ScaleID         int    `json:"scale_id" gorm:"column:scale_id"`
	Answer          string `json:"answer" gorm:"column:answer"`
	Language        string `json:"language" gorm:"column:language"`
}

type AnswerRepository interface {
	Create(ctx context.Context, answer *model.Answer) error
	Update(ctx context.Context, answer *model.Answer) error
	FindByID(ctx context.Context, aid uint) (*model.Answer, error)
	FindByQuestionID(ctx context.Context, qid uint) ([]model.Answer, error)
	CountByQuestionID(ctx context.Context, qid uint) (int64, error)
	GetAnswerFromCode(ctx context.Context, qid uint, code, language string, scaleID int) (string, bool, error)
	FindWithInsertansTags(ctx context.Context, newSID, oldSID uint) ([]model.Answer, error)
	UpdateSortOrder(ctx context.Context, qid uint) error
	UpdateFields(ctx context.Context, fields map[string]interface{}, query interface{}, args ...interface{}) (int64, error)
	UpdateL10nText(ctx context.Context, l10nID uint, text string) error
	FindForStatistics(ctx context.Context, qid uint) ([]model.Answer, error)
	FindWithTextForStatistics(ctx context.Context, qid uint, language string) ([]AnswerStatisticsRow, error)
}

type answerRepository struct {
	db    *gorm.DB
	cache *AnswerTextCache
}

func NewAnswerRepository(db *gorm.DB, cache *AnswerTextCache) AnswerRepository {
	if cache == nil {
		cache = NewAnswerTextCache()
	}
	return &answerRepository{db: db, cache: cache}
}

func (r *answerRepository) Create(ctx context.Context, answer *model.Answer) error {
	if err := r.db.WithContext(ctx).Create(answer).Error; err != nil {
		return err
	}
	r.cache.InvalidateQuestion(answer.QID)
	return nil
}

func (r *answerRepository) Update(ctx context.Context, answer *model.Answer) error {
	// The question may change on update, so both the old and new entries are dropped.
	previous, loaded := answer.LoadedQID()
	if err := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(answer).Error; err != nil {
		return err
	}
	if loaded {
		r.cache.InvalidateQuestion(previous)
	}
	r.cache.InvalidateQuestion(answer.QID)
	return nil
}

func (r *answerRepository) FindByID(ctx context.Context, aid uint) (*model.Answer, error) {
	var answer model.Answer
	if err := r.db.WithContext(ctx).Preload("AnswerL10ns").First(&answer, aid).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) FindByQuestionID(ctx context.Context, qid uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.WithContext(ctx).
		Preload("AnswerL10ns").
		Where("qid = ?", qid).
		Order("code ASC").
		Find(&answers).Error
	return answers, err
}

func (r *answerRepository) CountByQuestionID(ctx context.Context, qid uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Answer{}).Where("qid = ?", qid).Count(&count).Error
	return count, err
}

func (r *answerRepository) GetAnswerFromCode(ctx context.Context, qid uint, code, language string, scaleID int) (string, bool, error) {
	if text, ok := r.cache.Get(qid, code, language, scaleID); ok {
		return text, true, nil
	}

	var answer model.Answer
	err := r.db.WithContext(ctx).
		Preload("AnswerL10ns", "language = ?", language).
		Where("qid = ? AND code = ? AND scale_id = ?", qid, code, scaleID).
		First(&answer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	text, ok := answer.Localized(language)
	if !ok {
		return "", false, nil
	}
	r.cache.Put(qid, code, language, scaleID, text)
	return text, true, nil
}

func (r *answerRepository) FindWithInsertansTags(ctx context.Context, newSID, oldSID uint) ([]model.Answer, error) {
	pattern := fmt.Sprintf("%%{INSERTANS::%dX%%", oldSID)

	var answers []model.Answer
	err := r.db.WithContext(ctx).
		Joins("JOIN questions ON questions.qid = answers.qid").
		Where("questions.sid = ?", newSID).
		Where("EXISTS (SELECT 1 FROM answer_l10ns WHERE answer_l10ns.aid = answers.aid AND answer_l10ns.answer LIKE ?)", pattern).
		Preload("AnswerL10ns", "answer LIKE ?", pattern).
		Preload("Question").
		Order("answers.aid ASC").
		Find(&answers).Error
	return answers, err
}

func (r *answerRepository) UpdateSortOrder(ctx context.Context, qid uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var answers []model.Answer
		if err := tx.Where("qid = ?", qid).Order("sortorder ASC").Order("aid ASC").Find(&answers).Error; err != nil {
			return err
		}
		for position := range answers {
			if err := tx.Model(&answers[position]).Update("sortorder", position).Error; err != nil {
				return fmt.Errorf("failed to update sort order of answer %d: %w", answers[position].AID, err)
			}
		}
		return nil
	})
	return err
}

func (r *answerRepository) UpdateFields(ctx context.Context, fields map[string]interface{}, query interface{}, args ...interface{}) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Answer{})
	if query != nil {
		tx = tx.Where(query, args...)
	} else {
		tx = tx.Where("1 = 1")
	}
	// bulk column writes bypass the per-answer save hooks
	res := tx.UpdateColumns(fields)
	if res.Error != nil {
		return 0, res.Error
	}
	r.cache.Reset()
	return res.RowsAffected, nil
}

func (r *answerRepository) UpdateL10nText(ctx context.Context, l10nID uint, text string) error {
	if err := r.db.WithContext(ctx).Model(&model.AnswerL10n{}).Where("id = ?", l10nID).Update("answer", text).Error; err != nil {
		return err
	}
	r.cache.Reset()
	return nil
}

func (r *answerRepository) FindForStatistics(ctx context.Context, qid uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.WithContext(ctx).
		Where("qid = ?", qid).
		Order("scale_id ASC").
		Order("sortorder ASC").
		Find(&answers).Error
	return answers, err
}

func (r *answerRepository) FindWithTextForStatistics(ctx context.Context, qid uint, language string) ([]AnswerStatisticsRow, error) {
	var rows []AnswerStatisticsRow
	err := r.db.WithContext(ctx).
		Table("answers").
		Select("answers.aid, answers.qid, answers.code, answers.sortorder, answers.assessment_value, answers.scale_id, answer_l10ns.answer, answer_l10ns.language").
		Joins("JOIN answer_l10ns ON answer_l10ns.aid = answers.aid").
		Where("answers.qid = ? AND answer_l10ns.language = ?", qid, language).
		Order("answers.scale_id ASC").
		Order("answers.sortorder ASC").
		Scan(&rows).Error
	return rows, err
}
