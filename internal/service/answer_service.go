package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/survey-core/internal/dto"
	"github.com/lshigami/survey-core/internal/model"
	"github.com/lshigami/survey-core/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrAnswerNotFound   = errors.New("answer not found")
)

type AnswerService interface {
	CreateAnswer(ctx context.Context, qid uint, req dto.AnswerCreateDTO) (*dto.AnswerResponseDTO, error)
	UpdateAnswer(ctx context.Context, aid uint, req dto.AnswerUpdateDTO) (*dto.AnswerResponseDTO, error)
	GetAnswer(ctx context.Context, aid uint) (*dto.AnswerResponseDTO, error)
	ListAnswers(ctx context.Context, qid uint) ([]dto.AnswerResponseDTO, error)
	GetAnswerText(ctx context.Context, qid uint, code, language string, scaleID int) (*dto.AnswerTextResponseDTO, error)
	NormalizeSortOrder(ctx context.Context, qid uint) ([]dto.AnswerResponseDTO, error)
	FindInsertansReferences(ctx context.Context, newSID, oldSID uint) ([]dto.AnswerResponseDTO, error)
	RemapInsertansTags(ctx context.Context, newSID, oldSID uint) (int, error)
	StatisticsRows(ctx context.Context, qid uint, language string) ([]dto.AnswerStatisticsRowDTO, error)
}

type answerService struct {
	answerRepo   repository.AnswerRepository
	questionRepo repository.QuestionRepository
}

func NewAnswerService(answerRepo repository.AnswerRepository, questionRepo repository.QuestionRepository) AnswerService {
	return &answerService{answerRepo: answerRepo, questionRepo: questionRepo}
}

func (s *answerService) CreateAnswer(ctx context.Context, qid uint, req dto.AnswerCreateDTO) (*dto.AnswerResponseDTO, error) {
	if _, err := s.questionRepo.FindByID(ctx, qid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("error loading question %d: %w", qid, err)
	}

	answer := model.Answer{
		QID:             qid,
		Code:            req.Code,
		SortOrder:       req.SortOrder,
		AssessmentValue: req.AssessmentValue,
		ScaleID:         req.ScaleID,
	}
	for _, l := range req.L10ns {
		answer.AnswerL10ns = append(answer.AnswerL10ns, model.AnswerL10n{Language: l.Language, Answer: l.Answer})
	}

	if err := s.answerRepo.Create(ctx, &answer); err != nil {
		if !errors.Is(err, repository.ErrDuplicateAnswerCode) && !errors.Is(err, repository.ErrInvalidAnswerCode) {
			log.Error().Err(err).Uint("questionID", qid).Str("code", req.Code).Msg("Failed to create answer")
		}
		return nil, err
	}
	return toAnswerResponse(&answer)
}

func (s *answerService) UpdateAnswer(ctx context.Context, aid uint, req dto.AnswerUpdateDTO) (*dto.AnswerResponseDTO, error) {
	answer, err := s.loadAnswer(ctx, aid)
	if err != nil {
		return nil, err
	}

	if req.QID != nil && *req.QID != answer.QID {
		if _, err := s.questionRepo.FindByID(ctx, *req.QID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrQuestionNotFound
			}
			return nil, fmt.Errorf("error loading question %d: %w", *req.QID, err)
		}
		answer.QID = *req.QID
	}
	if req.Code != nil {
		answer.Code = *req.Code
	}
	if req.SortOrder != nil {
		answer.SortOrder = *req.SortOrder
	}
	if req.AssessmentValue != nil {
		answer.AssessmentValue = *req.AssessmentValue
	}
	if req.ScaleID != nil {
		answer.ScaleID = *req.ScaleID
	}
	for _, l := range req.L10ns {
		setLocalized(answer, l.Language, l.Answer)
	}

	if err := s.answerRepo.Update(ctx, answer); err != nil {
		if !errors.Is(err, repository.ErrDuplicateAnswerCode) && !errors.Is(err, repository.ErrInvalidAnswerCode) {
			log.Error().Err(err).Uint("answerID", aid).Msg("Failed to update answer")
		}
		return nil, err
	}
	return toAnswerResponse(answer)
}

func (s *answerService) GetAnswer(ctx context.Context, aid uint) (*dto.AnswerResponseDTO, error) {
	answer, err := s.loadAnswer(ctx, aid)
	if err != nil {
		return nil, err
	}
	return toAnswerResponse(answer)
}

func (s *answerService) ListAnswers(ctx context.Context, qid uint) ([]dto.AnswerResponseDTO, error) {
	answers, err := s.answerRepo.FindByQuestionID(ctx, qid)
	if err != nil {
		return nil, fmt.Errorf("error fetching answers of question %d: %w", qid, err)
	}
	return toAnswerResponses(answers)
}

func (s *answerService) GetAnswerText(ctx context.Context, qid uint, code, language string, scaleID int) (*dto.AnswerTextResponseDTO, error) {
	text, ok, err := s.answerRepo.GetAnswerFromCode(ctx, qid, code, language, scaleID)
	if err != nil {
		return nil, fmt.Errorf("error looking up answer %s of question %d: %w", code, qid, err)
	}
	if !ok {
		return nil, ErrAnswerNotFound
	}
	return &dto.AnswerTextResponseDTO{QID: qid, Code: code, Language: language, ScaleID: scaleID, Answer: text}, nil
}

func (s *answerService) NormalizeSortOrder(ctx context.Context, qid uint) ([]dto.AnswerResponseDTO, error) {
	if err := s.answerRepo.UpdateSortOrder(ctx, qid); err != nil {
		log.Error().Err(err).Uint("questionID", qid).Msg("Failed to normalize answer sort order")
		return nil, err
	}
	return s.ListAnswers(ctx, qid)
}

func (s *answerService) FindInsertansReferences(ctx context.Context, newSID, oldSID uint) ([]dto.AnswerResponseDTO, error) {
	answers, err := s.answerRepo.FindWithInsertansTags(ctx, newSID, oldSID)
	if err != nil {
		return nil, fmt.Errorf("error searching INSERTANS references to survey %d: %w", oldSID, err)
	}
	return toAnswerResponses(answers)
}

// RemapInsertansTags rewrites {INSERTANS::<oldSID>X...} references in the answers of a copied
// survey so they point at the copy. It returns the number of texts changed.
func (s *answerService) RemapInsertansTags(ctx context.Context, newSID, oldSID uint) (int, error) {
	answers, err := s.answerRepo.FindWithInsertansTags(ctx, newSID, oldSID)
	if err != nil {
		return 0, fmt.Errorf("error searching INSERTANS references to survey %d: %w", oldSID, err)
	}

	from := fmt.Sprintf("{INSERTANS::%dX", oldSID)
	to := fmt.Sprintf("{INSERTANS::%dX", newSID)
	updated := 0
	for _, a := range answers {
		for _, l := range a.AnswerL10ns {
			if !strings.Contains(l.Answer, from) {
				continue
			}
			if err := s.answerRepo.UpdateL10nText(ctx, l.ID, strings.ReplaceAll(l.Answer, from, to)); err != nil {
				return updated, fmt.Errorf("error rewriting answer text %d: %w", l.ID, err)
			}
			updated++
		}
	}
	log.Info().Uint("surveyID", newSID).Uint("oldSurveyID", oldSID).Int("updated", updated).Msg("INSERTANS references remapped")
	return updated, nil
}

func (s *answerService) StatisticsRows(ctx context.Context, qid uint, language string) ([]dto.AnswerStatisticsRowDTO, error) {
	var resp []dto.AnswerStatisticsRowDTO
	if language == "" {
		answers, err := s.answerRepo.FindForStatistics(ctx, qid)
		if err != nil {
			return nil, fmt.Errorf("error fetching statistics answers of question %d: %w", qid, err)
		}
		if err := copier.Copy(&resp, &answers); err != nil {
			return nil, fmt.Errorf("error preparing statistics rows: %w", err)
		}
		return resp, nil
	}

	rows, err := s.answerRepo.FindWithTextForStatistics(ctx, qid, language)
	if err != nil {
		return nil, fmt.Errorf("error fetching statistics answers of question %d: %w", qid, err)
	}
	if err := copier.Copy(&resp, &rows); err != nil {
		return nil, fmt.Errorf("error preparing statistics rows: %w", err)
	}
	return resp, nil
}

func (s *answerService) loadAnswer(ctx context.Context, aid uint) (*model.Answer, error) {
	answer, err := s.answerRepo.FindByID(ctx, aid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAnswerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error loading answer %d: %w", aid, err)
	}
	return answer, nil
}

func setLocalized(answer *model.Answer, language, text string) {
	for i := range answer.AnswerL10ns {
		if answer.AnswerL10ns[i].Language == language {
			answer.AnswerL10ns[i].Answer = text
			return
		}
	}
	answer.AnswerL10ns = append(answer.AnswerL10ns, model.AnswerL10n{AID: answer.AID, Language: language, Answer: text})
}

func toAnswerResponse(answer *model.Answer) (*dto.AnswerResponseDTO, error) {
	var resp dto.AnswerResponseDTO
	if err := copier.Copy(&resp, answer); err != nil {
		log.Error().Err(err).Msg("Failed to copy Answer model to AnswerResponseDTO")
		return nil, fmt.Errorf("error preparing answer response: %w", err)
	}
	return &resp, nil
}

func toAnswerResponses(answers []model.Answer) ([]dto.AnswerResponseDTO, error) {
	resp := make([]dto.AnswerResponseDTO, 0, len(answers))
	if err := copier.Copy(&resp, &answers); err != nil {
		log.Error().Err(err).Msg("Failed to copy Answer models to AnswerResponseDTO")
		return nil, fmt.Errorf("error preparing answer list: %w", err)
	}
	return resp, nil
}
