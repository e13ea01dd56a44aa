package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/survey-core/internal/dto"
	"github.com/lshigami/survey-core/internal/model"
	"github.com/lshigami/survey-core/internal/repository"
	"github.com/lshigami/survey-core/internal/testutil"
	"gorm.io/gorm"
)

func newAnswerService(t *testing.T) (AnswerService, *gorm.DB, *model.Question) {
	t.Helper()
	ctx := context.Background()
	db := testutil.DB(t)
	survey := testutil.SeedSurvey(t, ctx, db, model.Survey{SID: 500})
	q := testutil.SeedQuestion(t, ctx, db, model.Question{SID: survey.SID, GID: 1, Type: model.QTypeListRadio})
	svc := NewAnswerService(
		repository.NewAnswerRepository(db, repository.NewAnswerTextCache()),
		repository.NewQuestionRepository(db),
	)
	return svc, db, q
}

func TestCreateAndGetAnswer(t *testing.T) {
	ctx := context.Background()
	svc, _, q := newAnswerService(t)

	created, err := svc.CreateAnswer(ctx, q.QID, dto.AnswerCreateDTO{
		Code:            "A1",
		SortOrder:       2,
		AssessmentValue: 5,
		L10ns:           []dto.AnswerL10nDTO{{Language: "en", Answer: "Yes"}, {Language: "de", Answer: "Ja"}},
	})
	if err != nil {
		t.Fatalf("CreateAnswer: %v", err)
	}
	if created.AID == 0 || created.QID != q.QID || created.AssessmentValue != 5 || len(created.AnswerL10ns) != 2 {
		t.Fatalf("CreateAnswer: got %+v", created)
	}

	got, err := svc.GetAnswer(ctx, created.AID)
	if err != nil {
		t.Fatalf("GetAnswer: %v", err)
	}
	if got.Code != "A1" || got.SortOrder != 2 {
		t.Fatalf("GetAnswer: got %+v", got)
	}

	text, err := svc.GetAnswerText(ctx, q.QID, "A1", "de", 0)
	if err != nil {
		t.Fatalf("GetAnswerText: %v", err)
	}
	if text.Answer != "Ja" {
		t.Fatalf("GetAnswerText: got %q", text.Answer)
	}
}

func TestCreateAnswerErrors(t *testing.T) {
	ctx := context.Background()
	svc, _, q := newAnswerService(t)

	if _, err := svc.CreateAnswer(ctx, 9999, dto.AnswerCreateDTO{Code: "A1"}); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("unknown question: got %v", err)
	}
	if _, err := svc.CreateAnswer(ctx, q.QID, dto.AnswerCreateDTO{Code: "A1"}); err != nil {
		t.Fatalf("CreateAnswer: %v", err)
	}
	if _, err := svc.CreateAnswer(ctx, q.QID, dto.AnswerCreateDTO{Code: "A1"}); !errors.Is(err, repository.ErrDuplicateAnswerCode) {
		t.Fatalf("duplicate: got %v", err)
	}
	if _, err := svc.GetAnswer(ctx, 9999); !errors.Is(err, ErrAnswerNotFound) {
		t.Fatalf("GetAnswer unknown: got %v", err)
	}
	if _, err := svc.GetAnswerText(ctx, q.QID, "A1", "en", 0); !errors.Is(err, ErrAnswerNotFound) {
		t.Fatalf("GetAnswerText without text: got %v", err)
	}
}

func TestUpdateAnswer(t *testing.T) {
	ctx := context.Background()
	svc, _, q := newAnswerService(t)

	created, err := svc.CreateAnswer(ctx, q.QID, dto.AnswerCreateDTO{
		Code:  "A1",
		L10ns: []dto.AnswerL10nDTO{{Language: "en", Answer: "Yes"}},
	})
	if err != nil {
		t.Fatalf("CreateAnswer: %v", err)
	}
	if _, err := svc.GetAnswerText(ctx, q.QID, "A1", "en", 0); err != nil {
		t.Fatalf("GetAnswerText: %v", err)
	}

	code := "Y"
	updated, err := svc.UpdateAnswer(ctx, created.AID, dto.AnswerUpdateDTO{
		Code:  &code,
		L10ns: []dto.AnswerL10nDTO{{Language: "en", Answer: "Yes!"}, {Language: "fr", Answer: "Oui"}},
	})
	if err != nil {
		t.Fatalf("UpdateAnswer: %v", err)
	}
	if updated.Code != "Y" || len(updated.AnswerL10ns) != 2 {
		t.Fatalf("UpdateAnswer: got %+v", updated)
	}

	if _, err := svc.GetAnswerText(ctx, q.QID, "A1", "en", 0); !errors.Is(err, ErrAnswerNotFound) {
		t.Fatalf("old code still resolves: %v", err)
	}
	text, err := svc.GetAnswerText(ctx, q.QID, "Y", "en", 0)
	if err != nil || text.Answer != "Yes!" {
		t.Fatalf("GetAnswerText: %+v %v", text, err)
	}

	missing := uint(9999)
	if _, err := svc.UpdateAnswer(ctx, created.AID, dto.AnswerUpdateDTO{QID: &missing}); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("move to unknown question: got %v", err)
	}
}

func TestNormalizeSortOrderAndStatistics(t *testing.T) {
	ctx := context.Background()
	svc, db, q := newAnswerService(t)
	testutil.SeedAnswer(t, ctx, db, q.QID, "B", 7, 0)
	testutil.SeedAnswer(t, ctx, db, q.QID, "A", 9, 0)

	answers, err := svc.NormalizeSortOrder(ctx, q.QID)
	if err != nil {
		t.Fatalf("NormalizeSortOrder: %v", err)
	}
	order := map[string]int{}
	for _, a := range answers {
		order[a.Code] = a.SortOrder
	}
	if order["B"] != 0 || order["A"] != 1 {
		t.Fatalf("NormalizeSortOrder: got %v", order)
	}

	rows, err := svc.StatisticsRows(ctx, q.QID, "")
	if err != nil {
		t.Fatalf("StatisticsRows: %v", err)
	}
	if len(rows) != 2 || rows[0].Code != "B" || rows[0].Answer != "" {
		t.Fatalf("StatisticsRows without language: %+v", rows)
	}

	rows, err = svc.StatisticsRows(ctx, q.QID, "en")
	if err != nil {
		t.Fatalf("StatisticsRows: %v", err)
	}
	if len(rows) != 2 || rows[1].Code != "A" || rows[1].Answer != "A" || rows[1].Language != "en" {
		t.Fatalf("StatisticsRows en: %+v", rows)
	}
}

func TestRemapInsertansTags(t *testing.T) {
	ctx := context.Background()
	svc, db, q := newAnswerService(t)

	if _, err := svc.CreateAnswer(ctx, q.QID, dto.AnswerCreateDTO{
		Code: "A1",
		L10ns: []dto.AnswerL10nDTO{
			{Language: "en", Answer: "As in {INSERTANS::400X1X2} and {INSERTANS::400X1X3}"},
			{Language: "de", Answer: "Ohne"},
		},
	}); err != nil {
		t.Fatalf("CreateAnswer: %v", err)
	}

	refs, err := svc.FindInsertansReferences(ctx, q.SID, 400)
	if err != nil {
		t.Fatalf("FindInsertansReferences: %v", err)
	}
	if len(refs) != 1 {
		t.Fatalf("FindInsertansReferences: got %d", len(refs))
	}

	updated, err := svc.RemapInsertansTags(ctx, q.SID, 400)
	if err != nil {
		t.Fatalf("RemapInsertansTags: %v", err)
	}
	if updated != 1 {
		t.Fatalf("RemapInsertansTags: updated %d, want 1", updated)
	}

	var l10n model.AnswerL10n
	if err := db.Where("language = ?", "en").First(&l10n).Error; err != nil {
		t.Fatalf("load l10n: %v", err)
	}
	if l10n.Answer != "As in {INSERTANS::500X1X2} and {INSERTANS::500X1X3}" {
		t.Fatalf("remapped text: %q", l10n.Answer)
	}

	refs, err = svc.FindInsertansReferences(ctx, q.SID, 400)
	if err != nil || len(refs) != 0 {
		t.Fatalf("references left after remap: %d %v", len(refs), err)
	}
}
