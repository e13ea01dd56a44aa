package model

import "time"

// Question type codes.
const (
	QTypeArray5Point          = "A"
	QTypeArray10Point         = "B"
	QTypeArrayYesUncertainNo  = "C"
	QTypeDate                 = "D"
	QTypeArrayIncreaseSame    = "E"
	QTypeArray                = "F"
	QTypeGenderDropdown       = "G"
	QTypeArrayByColumn        = "H"
	QTypeLanguage             = "I"
	QTypeMultipleNumerical    = "K"
	QTypeListRadio            = "L"
	QTypeMultipleChoice       = "M"
	QTypeNumerical            = "N"
	QTypeListWithComment      = "O"
	QTypeMultipleWithComments = "P"
	QTypeMultipleShortText    = "Q"
	QTypeRanking              = "R"
	QTypeShortFreeText        = "S"
	QTypeLongFreeText         = "T"
	QTypeHugeFreeText         = "U"
	QTypeBoilerplate          = "X"
	QTypeYesNo                = "Y"
	QType5PointChoice         = "5"
	QTypeDualScaleArray       = "1"
	QTypeListDropdown         = "!"
	QTypeArrayNumbers         = ":"
	QTypeArrayTexts           = ";"
	QTypeFileUpload           = "|"
	QTypeEquation             = "*"
)

type Question struct {
	QID           uint      `gorm:"column:qid;primarykey" json:"qid"`
	ParentQID     uint      `json:"parent_qid" gorm:"column:parent_qid;not null;default:0;index"` // 0 for top-level questions
	SID           uint      `json:"sid" gorm:"column:sid;not null;index"`
	GID           uint      `json:"gid" gorm:"column:gid;not null;index"`
	Type          string    `json:"type" gorm:"size:1;not null;default:'T'"`
	Title         string    `json:"title" gorm:"size:20;not null"`
	QuestionOrder int       `json:"question_order" gorm:"not null;default:0"`
	ScaleID       int       `json:"scale_id" gorm:"column:scale_id;not null;default:0"`
	Other         bool      `json:"other" gorm:"not null;default:false"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AttributeMaxSubquestions limits the number of ranked items of a ranking question.
const AttributeMaxSubquestions = "max_subquestions"

type QuestionAttribute struct {
	QAID      uint      `gorm:"column:qaid;primarykey" json:"qaid"`
	QID       uint      `json:"qid" gorm:"column:qid;not null;index"`
	Attribute string    `json:"attribute" gorm:"size:50;not null"`
	Value     string    `json:"value" gorm:"type:text"`
	Language  *string   `json:"language,omitempty" gorm:"size:20"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
