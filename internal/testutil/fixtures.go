package testutil

import (
	"context"
	"testing"

	"github.com/lshigami/survey-core/internal/model"
	"gorm.io/gorm"
)

func SeedSurvey(tb testing.TB, ctx context.Context, db *gorm.DB, s model.Survey) *model.Survey {
	tb.Helper()
	if s.Language == "" {
		s.Language = "en"
	}
	if err := db.WithContext(ctx).Create(&s).Error; err != nil {
		tb.Fatalf("seed survey: %v", err)
	}
	return &s
}

func SeedGroup(tb testing.TB, ctx context.Context, db *gorm.DB, sid uint, order int) *model.QuestionGroup {
	tb.Helper()
	g := &model.QuestionGroup{SID: sid, GroupOrder: order}
	if err := db.WithContext(ctx).Create(g).Error; err != nil {
		tb.Fatalf("seed group: %v", err)
	}
	return g
}

func SeedQuestion(tb testing.TB, ctx context.Context, db *gorm.DB, q model.Question) *model.Question {
	tb.Helper()
	if q.Title == "" {
		q.Title = "Q"
	}
	if err := db.WithContext(ctx).Create(&q).Error; err != nil {
		tb.Fatalf("seed question: %v", err)
	}
	return &q
}

// SeedAnswer creates an answer with an English text equal to its code.
func SeedAnswer(tb testing.TB, ctx context.Context, db *gorm.DB, qid uint, code string, sortOrder, scaleID int) *model.Answer {
	tb.Helper()
	a := &model.Answer{
		QID:         qid,
		Code:        code,
		SortOrder:   sortOrder,
		ScaleID:     scaleID,
		AnswerL10ns: []model.AnswerL10n{{Language: "en", Answer: code}},
	}
	if err := db.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed answer %s: %v", code, err)
	}
	return a
}
