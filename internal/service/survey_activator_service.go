package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/lshigami/survey-core/internal/dto"
	"github.com/lshigami/survey-core/internal/fieldmap"
	"github.com/lshigami/survey-core/internal/flash"
	"github.com/lshigami/survey-core/internal/model"
	"github.com/lshigami/survey-core/internal/plugin"
	"github.com/lshigami/survey-core/internal/repository"
	"github.com/lshigami/survey-core/internal/schema"
	"github.com/lshigami/survey-core/internal/uploads"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrSurveyNotFound      = errors.New("survey not found")
	ErrSurveyAlreadyActive = errors.New("survey is already active")
)

// ActivationError is returned when activation fails after tables started being created.
type ActivationError struct {
	Code string
	Err  error
}

func (e *ActivationError) Error() string {
	return fmt.Sprintf("activation failed (%s): %v", e.Code, e.Err)
}

func (e *ActivationError) Unwrap() error {
	return e.Err
}

type ActivateOptions struct {
	// Simulate stops after planning the responses table and returns the plan.
	Simulate bool
	// Flash receives messages meant for the user. Nil discards them.
	Flash flash.Sink
}

type SurveyActivatorService interface {
	Activate(ctx context.Context, sid uint, opts ActivateOptions) (*dto.ActivationResult, error)
}

// ActivatorSettings holds the configuration the activator needs.
type ActivatorSettings struct {
	// Debug exposes raw DDL errors instead of the generic error code.
	Debug bool
}

type surveyActivatorService struct {
	surveyRepo   repository.SurveyRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	attrRepo     repository.QuestionAttributeRepository
	schema       *schema.Builder
	plugins      *plugin.Manager
	uploads      *uploads.Provisioner
	settings     ActivatorSettings
}

func NewSurveyActivatorService(
	surveyRepo repository.SurveyRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	attrRepo repository.QuestionAttributeRepository,
	schemaBuilder *schema.Builder,
	plugins *plugin.Manager,
	provisioner *uploads.Provisioner,
	settings ActivatorSettings,
) SurveyActivatorService {
	return &surveyActivatorService{
		surveyRepo:   surveyRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		attrRepo:     attrRepo,
		schema:       schemaBuilder,
		plugins:      plugins,
		uploads:      provisioner,
		settings:     settings,
	}
}

// responsesPlan is the outcome of planning the responses table.
type responsesPlan struct {
	input          fieldmap.Input
	fields         []fieldmap.Field
	definition     *schema.TableDefinition
	needsUploadDir bool
}

func (s *surveyActivatorService) Activate(ctx context.Context, sid uint, opts ActivateOptions) (*dto.ActivationResult, error) {
	sink := opts.Flash
	if sink == nil {
		sink = flash.Discard
	}

	survey, err := s.surveyRepo.FindByID(ctx, sid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSurveyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error loading survey %d: %w", sid, err)
	}
	if survey.Active && !opts.Simulate {
		return nil, ErrSurveyAlreadyActive
	}

	event := plugin.NewEvent(plugin.EventBeforeSurveyActivate)
	event.Set(plugin.ParamSurveyID, survey.SID)
	event.Set(plugin.ParamSimulate, opts.Simulate)
	s.plugins.Dispatch(ctx, event)

	if !showEventMessages(event, sink) {
		log.Info().Uint("surveyID", sid).Msg("Activation rejected by plugin")
		return &dto.ActivationResult{Error: dto.ActivationErrorPlugin}, nil
	}

	plan, err := s.prepareResponsesTable(ctx, survey)
	if err != nil {
		return nil, err
	}

	if opts.Simulate {
		return &dto.ActivationResult{
			DBEngine: s.schema.Dialect().Name(),
			DBType:   s.schema.DriverName(),
			Fields:   plan.definition.Columns(),
		}, nil
	}

	if code := s.createResponsesTable(ctx, survey, plan); code != "" {
		return &dto.ActivationResult{Error: code}, nil
	}

	if err := s.createTimingsTable(ctx, survey, plan); err != nil {
		log.Error().Err(err).Uint("surveyID", sid).Msg("Timings table creation failed")
		return &dto.ActivationResult{Error: dto.ActivationErrorTimingsTable}, err
	}

	if err := s.surveyRepo.SetActive(ctx, sid, true); err != nil {
		return nil, fmt.Errorf("error activating survey %d: %w", sid, err)
	}
	log.Info().Uint("surveyID", sid).Int("columns", plan.definition.Len()).Msg("Survey activated")

	result := &dto.ActivationResult{
		Status:         dto.ActivationStatusOK,
		PluginFeedback: event.Feedback(),
	}
	if plan.needsUploadDir {
		if err := s.uploads.EnsureSurveyDir(sid); err != nil {
			log.Warn().Err(err).Uint("surveyID", sid).Msg("Could not create survey upload directory")
			sink.Add(flash.LevelWarning, "The survey upload directory could not be created.")
			result.Warning = dto.ActivationWarningNoUploadDir
		}
	}
	return result, nil
}

// showEventMessages flashes the plugin message and reports whether activation may continue.
func showEventMessages(event *plugin.Event, sink flash.Sink) bool {
	message := event.GetString(plugin.ParamMessage)
	if event.Rejected() {
		sink.Add(flash.LevelError, message)
		return false
	}
	if message != "" {
		sink.Add(flash.LevelInfo, message)
	}
	return true
}

func (s *surveyActivatorService) prepareResponsesTable(ctx context.Context, survey *model.Survey) (*responsesPlan, error) {
	groups, err := s.surveyRepo.FindGroups(ctx, survey.SID)
	if err != nil {
		return nil, fmt.Errorf("error loading groups of survey %d: %w", survey.SID, err)
	}
	questions, err := s.questionRepo.FindBySurveyID(ctx, survey.SID)
	if err != nil {
		return nil, fmt.Errorf("error loading questions of survey %d: %w", survey.SID, err)
	}

	rankingItems := make(map[uint]int)
	for _, q := range questions {
		if q.ParentQID != 0 || q.Type != model.QTypeRanking {
			continue
		}
		count, err := s.answerRepo.CountByQuestionID(ctx, q.QID)
		if err != nil {
			return nil, fmt.Errorf("error counting answers of question %d: %w", q.QID, err)
		}
		rankingItems[q.QID] = int(count)
	}

	plan := &responsesPlan{
		input: fieldmap.Input{
			Survey:       survey,
			Groups:       groups,
			Questions:    questions,
			RankingItems: rankingItems,
		},
	}
	plan.fields = fieldmap.Build(plan.input)

	if err := s.prepareTableDefinition(ctx, survey, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// prepareTableDefinition maps every field to its column type.
func (s *surveyActivatorService) prepareTableDefinition(ctx context.Context, survey *model.Survey, plan *responsesPlan) error {
	def := schema.NewTableDefinition()
	healed := make(map[uint]bool)

	for _, f := range plan.fields {
		switch f.Kind {
		case fieldmap.KindIPAddress:
			if !survey.IPAddr {
				continue
			}
		case fieldmap.KindURL:
			if !survey.RefURL {
				continue
			}
		case fieldmap.QuestionKind(model.QTypeFileUpload):
			plan.needsUploadDir = true
		case fieldmap.QuestionKind(model.QTypeRanking):
			if !healed[f.QID] {
				if err := s.fixRankingMaxSubquestions(ctx, f.QID, plan.input.RankingItems[f.QID]); err != nil {
					return err
				}
				healed[f.QID] = true
			}
		}
		def.Set(f.Name, schema.ColumnTypeFor(f.Kind))
	}

	if !survey.Anonymized && !def.Has("token") {
		def.Set("token", schema.TokenColumn)
	}
	plan.definition = def
	return nil
}

// fixRankingMaxSubquestions sets max_subquestions to the answer count when it is missing or below 1.
func (s *surveyActivatorService) fixRankingMaxSubquestions(ctx context.Context, qid uint, answerCount int) error {
	attr, err := s.attrRepo.Find(ctx, qid, model.AttributeMaxSubquestions)
	if err != nil {
		return fmt.Errorf("error loading %s of question %d: %w", model.AttributeMaxSubquestions, qid, err)
	}

	value := strconv.Itoa(answerCount)
	switch {
	case attr == nil:
		attr = &model.QuestionAttribute{QID: qid, Attribute: model.AttributeMaxSubquestions, Value: value}
	case atoi(attr.Value) < 1:
		attr.Value = value
	default:
		return nil
	}

	if err := s.attrRepo.Save(ctx, attr); err != nil {
		return fmt.Errorf("error saving %s of question %d: %w", model.AttributeMaxSubquestions, qid, err)
	}
	log.Info().Uint("questionID", qid).Str("value", value).Msg("Ranking question max_subquestions repaired")
	return nil
}

// atoi parses a leading integer the lenient way attribute values are stored; garbage is 0.
func atoi(raw string) int {
	raw = strings.TrimSpace(raw)
	end := 0
	if end < len(raw) && (raw[end] == '-' || raw[end] == '+') {
		end++
	}
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(raw[:end])
	if err != nil {
		return 0
	}
	return n
}

// createResponsesTable returns an error code, or "" on success.
func (s *surveyActivatorService) createResponsesTable(ctx context.Context, survey *model.Survey, plan *responsesPlan) string {
	table := survey.ResponsesTableName()
	if err := s.schema.CreateTable(ctx, table, plan.definition); err != nil {
		log.Error().Err(err).Uint("surveyID", survey.SID).Str("table", table).Msg("Responses table creation failed")
		if s.settings.Debug {
			return err.Error()
		}
		return dto.ActivationErrorSurveyTable
	}

	if plan.definition.Has("token") {
		index := fmt.Sprintf("idx_survey_token_%d_%s", survey.SID, strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
		if err := s.schema.CreateIndex(ctx, index, table, "token"); err != nil {
			log.Debug().Err(err).Str("table", table).Msg("Token index not created")
		}
	}

	s.createResponsesTableKeys(ctx, survey)
	return ""
}

// createResponsesTableKeys applies the survey's auto-number start. Failures are logged only.
func (s *surveyActivatorService) createResponsesTableKeys(ctx context.Context, survey *model.Survey) {
	start, err := s.surveyRepo.AutoNumberStart(ctx, survey.SID)
	if err != nil {
		log.Warn().Err(err).Uint("surveyID", survey.SID).Msg("Could not read autonumber_start")
		return
	}
	if start <= 0 {
		return
	}
	if err := s.schema.SetAutoNumberStart(ctx, survey.ResponsesTableName(), start); err != nil {
		log.Warn().Err(err).Uint("surveyID", survey.SID).Int("start", start).Str("dialect", s.schema.Dialect().Name()).Msg("Could not set auto-number start")
	}
}

func (s *surveyActivatorService) createTimingsTable(ctx context.Context, survey *model.Survey, plan *responsesPlan) error {
	if !survey.SaveTimings {
		return nil
	}

	def := schema.NewTableDefinition()
	idType, ok := plan.definition.Get("id")
	if !ok {
		idType = schema.PK
	}
	def.Set("id", idType)
	for _, f := range fieldmap.BuildTimings(plan.input) {
		def.Set(f.Name, schema.ColumnTypeFor(f.Kind))
	}

	if err := s.schema.CreateTable(ctx, survey.TimingsTableName(), def); err != nil {
		return &ActivationError{Code: dto.ActivationErrorTimingsTable, Err: err}
	}
	return nil
}
