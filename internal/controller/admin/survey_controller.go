package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/survey-core/internal/controller"
	"github.com/lshigami/survey-core/internal/dto"
	"github.com/lshigami/survey-core/internal/flash"
	"github.com/lshigami/survey-core/internal/service"
	"github.com/rs/zerolog/log"
)

type SurveyController struct {
	activator     service.SurveyActivatorService
	answerService service.AnswerService
}

func NewSurveyController(activator service.SurveyActivatorService, answerService service.AnswerService) *SurveyController {
	return &SurveyController{activator: activator, answerService: answerService}
}

// ActivateSurvey godoc
// @Summary (Admin) Activate a survey
// @Description Creates the responses table (and the timings table when timings are saved) and marks the survey active.
// @Description With simulate=true nothing is created; the planned columns are returned instead.
// @Tags Admin - Surveys
// @Produce json
// @Param survey_id path int true "Survey ID"
// @Param simulate query bool false "Only plan the responses table"
// @Success 200 {object} dto.ActivationResponseDTO "Activation succeeded, or simulation plan"
// @Failure 400 {object} dto.ErrorResponse "Invalid Survey ID format"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Failure 409 {object} dto.ErrorResponse "Survey already active"
// @Failure 422 {object} dto.ActivationResponseDTO "Activation refused or table creation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/surveys/{survey_id}/activate [post]
func (c *SurveyController) ActivateSurvey(ctx *gin.Context) {
	sid, ok := controller.ParseID(ctx, "survey_id", "Survey")
	if !ok {
		return
	}
	simulate, _ := strconv.ParseBool(ctx.Query("simulate"))

	messages := flash.NewBag()
	result, err := c.activator.Activate(ctx.Request.Context(), sid, service.ActivateOptions{Simulate: simulate, Flash: messages})
	if result == nil {
		log.Error().Err(err).Uint("surveyID", sid).Msg("Admin ActivateSurvey: Service error")
		controller.AbortWithError(ctx, "Failed to activate survey", err)
		return
	}

	resp := dto.ActivationResponseDTO{
		SurveyID:  sid,
		Simulated: simulate,
		Result:    result,
		Messages:  messages.Messages(),
	}
	if result.Error != "" {
		log.Warn().Err(err).Uint("surveyID", sid).Str("code", result.Error).Msg("Admin ActivateSurvey: Activation failed")
		ctx.JSON(http.StatusUnprocessableEntity, resp)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RemapInsertans godoc
// @Summary (Admin) Remap INSERTANS references of a copied survey
// @Description Rewrites {INSERTANS::<old>X...} tags in answer texts of the survey to point at the survey itself.
// @Tags Admin - Surveys
// @Accept json
// @Produce json
// @Param survey_id path int true "Survey ID (the copy)"
// @Param remap body dto.InsertansRemapDTO true "Survey the answers were copied from"
// @Success 200 {object} dto.InsertansRemapResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/surveys/{survey_id}/insertans-remap [post]
func (c *SurveyController) RemapInsertans(ctx *gin.Context) {
	sid, ok := controller.ParseID(ctx, "survey_id", "Survey")
	if !ok {
		return
	}
	var req dto.InsertansRemapDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin RemapInsertans: Failed to bind JSON")
		controller.BindError(ctx, err)
		return
	}

	updated, err := c.answerService.RemapInsertansTags(ctx.Request.Context(), sid, req.OldSurveyID)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", sid).Msg("Admin RemapInsertans: Service error")
		controller.AbortWithError(ctx, "Failed to remap INSERTANS references", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.InsertansRemapResponseDTO{SurveyID: sid, OldSurveyID: req.OldSurveyID, Updated: updated})
}
