package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/survey-core/internal/controller"
	"github.com/lshigami/survey-core/internal/dto"
	"github.com/lshigami/survey-core/internal/service"
	"github.com/rs/zerolog/log"
)

type AnswerController struct {
	answerService service.AnswerService
}

func NewAnswerController(answerService service.AnswerService) *AnswerController {
	return &AnswerController{answerService: answerService}
}

// CreateAnswer godoc
// @Summary (Admin) Add an answer option to a question
// @Tags Admin - Answers
// @Accept json
// @Produce json
// @Param question_id path int true "Question ID"
// @Param answer body dto.AnswerCreateDTO true "Answer data"
// @Success 201 {object} dto.AnswerResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 409 {object} dto.ErrorResponse "Answer code already used for this question and scale"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/{question_id}/answers [post]
func (c *AnswerController) CreateAnswer(ctx *gin.Context) {
	qid, ok := controller.ParseID(ctx, "question_id", "Question")
	if !ok {
		return
	}
	var req dto.AnswerCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateAnswer: Failed to bind JSON")
		controller.BindError(ctx, err)
		return
	}

	resp, err := c.answerService.CreateAnswer(ctx.Request.Context(), qid, req)
	if err != nil {
		controller.AbortWithError(ctx, "Failed to create answer", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// UpdateAnswer godoc
// @Summary (Admin) Update an answer option
// @Description Only the fields present in the body are changed. Localizations are upserted by language.
// @Tags Admin - Answers
// @Accept json
// @Produce json
// @Param answer_id path int true "Answer ID"
// @Param answer body dto.AnswerUpdateDTO true "Fields to change"
// @Success 200 {object} dto.AnswerResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Answer or question not found"
// @Failure 409 {object} dto.ErrorResponse "Answer code already used for this question and scale"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/answers/{answer_id} [put]
func (c *AnswerController) UpdateAnswer(ctx *gin.Context) {
	aid, ok := controller.ParseID(ctx, "answer_id", "Answer")
	if !ok {
		return
	}
	var req dto.AnswerUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin UpdateAnswer: Failed to bind JSON")
		controller.BindError(ctx, err)
		return
	}

	resp, err := c.answerService.UpdateAnswer(ctx.Request.Context(), aid, req)
	if err != nil {
		controller.AbortWithError(ctx, "Failed to update answer", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// NormalizeSortOrder godoc
// @Summary (Admin) Renumber the answers of a question
// @Description Sort orders become 0..N-1 following the current order (ties broken by answer ID).
// @Tags Admin - Answers
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {array} dto.AnswerResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Question ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/{question_id}/answers/normalize-order [post]
func (c *AnswerController) NormalizeSortOrder(ctx *gin.Context) {
	qid, ok := controller.ParseID(ctx, "question_id", "Question")
	if !ok {
		return
	}
	answers, err := c.answerService.NormalizeSortOrder(ctx.Request.Context(), qid)
	if err != nil {
		controller.AbortWithError(ctx, "Failed to normalize sort order", err)
		return
	}
	ctx.JSON(http.StatusOK, answers)
}

// GetStatistics godoc
// @Summary (Admin) Answer rows for statistics
// @Description Without lang the rows carry no text. With lang each row is joined with that localization.
// @Tags Admin - Answers
// @Produce json
// @Param question_id path int true "Question ID"
// @Param lang query string false "Language code"
// @Success 200 {array} dto.AnswerStatisticsRowDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Question ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/{question_id}/answers/statistics [get]
func (c *AnswerController) GetStatistics(ctx *gin.Context) {
	qid, ok := controller.ParseID(ctx, "question_id", "Question")
	if !ok {
		return
	}
	rows, err := c.answerService.StatisticsRows(ctx.Request.Context(), qid, ctx.Query("lang"))
	if err != nil {
		controller.AbortWithError(ctx, "Failed to load statistics rows", err)
		return
	}
	if rows == nil {
		rows = []dto.AnswerStatisticsRowDTO{}
	}
	ctx.JSON(http.StatusOK, rows)
}
