package model

import (
	"errors"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
)

var (
	// ErrDuplicateAnswerCode is returned when (qid, code, scale_id) already belongs to another answer.
	ErrDuplicateAnswerCode = errors.New("answer codes must be unique by question")
	// ErrInvalidAnswerCode is returned for codes outside 1..5 characters.
	ErrInvalidAnswerCode = errors.New("answer code must be between 1 and 5 characters")
)

type Answer struct {
	AID             uint         `gorm:"column:aid;primarykey" json:"aid"`
	QID             uint         `json:"qid" gorm:"column:qid;not null;uniqueIndex:idx_answers_key"`
	Code            string       `json:"code" gorm:"size:5;not null;uniqueIndex:idx_answers_key"`
	SortOrder       int          `json:"sort_order" gorm:"column:sortorder;not null;default:0"`
	AssessmentValue int          `json:"assessment_value" gorm:"not null;default:0"`
	ScaleID         int          `json:"scale_id" gorm:"column:scale_id;not null;default:0;uniqueIndex:idx_answers_key"`
	Question        *Question    `json:"question,omitempty" gorm:"foreignKey:QID;references:QID"`
	AnswerL10ns     []AnswerL10n `json:"answer_l10ns,omitempty" gorm:"foreignKey:AID;references:AID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`

	// key as last loaded from the database
	loaded     bool
	oldQID     uint
	oldCode    string
	oldScaleID int
}

type AnswerL10n struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	AID       uint      `json:"aid" gorm:"column:aid;not null;index"`
	Answer    string    `json:"answer" gorm:"type:text"`
	Language  string    `json:"language" gorm:"size:20;not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Localized returns the answer text for a language.
func (a *Answer) Localized(language string) (string, bool) {
	for _, l := range a.AnswerL10ns {
		if l.Language == language {
			return l.Answer, true
		}
	}
	return "", false
}

// KeyChanged reports whether (qid, code, scale_id) differs from the loaded row.
// Answers that were never loaded always report true.
func (a *Answer) KeyChanged() bool {
	if !a.loaded {
		return true
	}
	return a.Code != a.oldCode || a.QID != a.oldQID || a.ScaleID != a.oldScaleID
}

// LoadedQID is the question id the answer had when it was last loaded or saved.
func (a *Answer) LoadedQID() (uint, bool) {
	return a.oldQID, a.loaded
}

func (a *Answer) AfterFind(tx *gorm.DB) error {
	a.remember()
	return nil
}

func (a *Answer) AfterSave(tx *gorm.DB) error {
	a.remember()
	return nil
}

func (a *Answer) BeforeSave(tx *gorm.DB) error {
	if n := utf8.RuneCountInString(a.Code); n < 1 || n > 5 {
		return ErrInvalidAnswerCode
	}
	if !a.KeyChanged() {
		return nil
	}

	query := tx.Session(&gorm.Session{NewDB: true}).
		Model(&Answer{}).
		Where("code = ? AND qid = ? AND scale_id = ?", a.Code, a.QID, a.ScaleID)
	if a.AID != 0 {
		query = query.Where("aid <> ?", a.AID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateAnswerCode
	}
	return nil
}

func (a *Answer) remember() {
	a.loaded = true
	a.oldQID = a.QID
	a.oldCode = a.Code
	a.oldScaleID = a.ScaleID
}
