package dto

import (
	"github.com/lshigami/survey-core/internal/flash"
	"github.com/lshigami/survey-core/internal/plugin"
	"github.com/lshigami/survey-core/internal/schema"
)

// Activation error and warning codes.
const (
	ActivationStatusOK           = "OK"
	ActivationErrorPlugin        = "plugin"
	ActivationErrorSurveyTable   = "surveytablecreation"
	ActivationErrorTimingsTable  = "timingstablecreation"
	ActivationWarningNoUploadDir = "nouploadsurveydir"
)

// ActivationResult is returned by survey activation. Exactly one of Status, Error or the
// simulation fields (DBEngine, DBType, Fields) is meaningful.
type ActivationResult struct {
	Status         string            `json:"status,omitempty"`
	Error          string            `json:"error,omitempty"`
	Warning        string            `json:"warning,omitempty"`
	PluginFeedback []plugin.Feedback `json:"pluginFeedback,omitempty"`
	DBEngine       string            `json:"dbengine,omitempty"`
	DBType         string            `json:"dbtype,omitempty"`
	Fields         []schema.Column   `json:"fields,omitempty"`
}

// ActivationResponseDTO wraps the result with the messages flashed during activation.
type ActivationResponseDTO struct {
	SurveyID  uint              `json:"survey_id"`
	Simulated bool              `json:"simulated"`
	Result    *ActivationResult `json:"result"`
	Messages  []flash.Message   `json:"messages,omitempty"`
}

type InsertansRemapDTO struct {
	OldSurveyID uint `json:"old_survey_id" binding:"required,gt=0"`
}

type InsertansRemapResponseDTO struct {
	SurveyID    uint `json:"survey_id"`
	OldSurveyID uint `json:"old_survey_id"`
	Updated     int  `json:"updated"`
}
