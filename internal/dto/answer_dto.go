package dto

import "time"

type AnswerL10nDTO struct {
	Language string `json:"language" binding:"required,max=20"`
	Answer   string `json:"answer"`
}

// AnswerCreateDTO creates an answer option under a question.
type AnswerCreateDTO struct {
	Code            string          `json:"code" binding:"required,min=1,max=5"`
	SortOrder       int             `json:"sort_order"`
	AssessmentValue int             `json:"assessment_value"`
	ScaleID         int             `json:"scale_id" binding:"min=0"`
	L10ns           []AnswerL10nDTO `json:"l10ns" binding:"dive"`
}

// AnswerUpdateDTO replaces the editable fields of an answer. Nil fields are left unchanged.
type AnswerUpdateDTO struct {
	QID             *uint           `json:"qid"`
	Code            *string         `json:"code" binding:"omitempty,min=1,max=5"`
	SortOrder       *int            `json:"sort_order"`
	AssessmentValue *int            `json:"assessment_value"`
	ScaleID         *int            `json:"scale_id" binding:"omitempty,min=0"`
	L10ns           []AnswerL10nDTO `json:"l10ns" binding:"dive"`
}

type AnswerL10nResponseDTO struct {
	ID       uint   `json:"id"`
	Language string `json:"language"`
	Answer   string `json:"answer"`
}

type AnswerResponseDTO struct {
	AID             uint                    `json:"aid"`
	QID             uint                    `json:"qid"`
	Code            string                  `json:"code"`
	SortOrder       int                     `json:"sort_order"`
	AssessmentValue int                     `json:"assessment_value"`
	ScaleID         int                     `json:"scale_id"`
	AnswerL10ns     []AnswerL10nResponseDTO `json:"l10ns,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

type AnswerTextResponseDTO struct {
	QID      uint   `json:"qid"`
	Code     string `json:"code"`
	Language string `json:"language"`
	ScaleID  int    `json:"scale_id"`
	Answer   string `json:"answer"`
}

type AnswerStatisticsRowDTO struct {
	AID             uint   `json:"aid"`
	QID             uint   `json:"qid"`
	Code            string `json:"code"`
	SortOrder       int    `json:"sort_order"`
	AssessmentValue int    `json:"assessment_value"`
	ScaleID         int    `json:"scale_id"`
	Answer          string `json:"answer"`
	Language        string `json:"language"`
}
