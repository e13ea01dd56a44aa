package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/survey-core/internal/controller"
	"github.com/lshigami/survey-core/internal/dto"
	"github.com/lshigami/survey-core/internal/service"
)

type AnswerController struct {
	answerService service.AnswerService
}

func NewAnswerController(answerService service.AnswerService) *AnswerController {
	return &AnswerController{answerService: answerService}
}

// ListAnswers godoc
// @Summary List the answers of a question
// @Tags Answers
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {array} dto.AnswerResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Question ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/{question_id}/answers [get]
func (c *AnswerController) ListAnswers(ctx *gin.Context) {
	qid, ok := controller.ParseID(ctx, "question_id", "Question")
	if !ok {
		return
	}
	answers, err := c.answerService.ListAnswers(ctx.Request.Context(), qid)
	if err != nil {
		controller.AbortWithError(ctx, "Failed to retrieve answers", err)
		return
	}
	ctx.JSON(http.StatusOK, answers)
}

// GetAnswer godoc
// @Summary Get an answer with its localizations
// @Tags Answers
// @Produce json
// @Param answer_id path int true "Answer ID"
// @Success 200 {object} dto.AnswerResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Answer ID format"
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /answers/{answer_id} [get]
func (c *AnswerController) GetAnswer(ctx *gin.Context) {
	aid, ok := controller.ParseID(ctx, "answer_id", "Answer")
	if !ok {
		return
	}
	answer, err := c.answerService.GetAnswer(ctx.Request.Context(), aid)
	if err != nil {
		controller.AbortWithError(ctx, "Failed to retrieve answer", err)
		return
	}
	ctx.JSON(http.StatusOK, answer)
}

// GetAnswerText godoc
// @Summary Resolve an answer code to its text
// @Tags Answers
// @Produce json
// @Param question_id path int true "Question ID"
// @Param code path string true "Answer code"
// @Param lang query string true "Language code"
// @Param scale_id query int false "Scale (0 or 1)"
// @Success 200 {object} dto.AnswerTextResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters"
// @Failure 404 {object} dto.ErrorResponse "No answer text for this code and language"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/{question_id}/answers/{code}/text [get]
func (c *AnswerController) GetAnswerText(ctx *gin.Context) {
	qid, ok := controller.ParseID(ctx, "question_id", "Question")
	if !ok {
		return
	}
	lang := ctx.Query("lang")
	if lang == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Query parameter lang is required"})
		return
	}
	scaleID := 0
	if raw := ctx.Query("scale_id"); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil || val < 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid scale_id"})
			return
		}
		scaleID = val
	}

	text, err := c.answerService.GetAnswerText(ctx.Request.Context(), qid, ctx.Param("code"), lang, scaleID)
	if err != nil {
		controller.AbortWithError(ctx, "Failed to resolve answer text", err)
		return
	}
	ctx.JSON(http.StatusOK, text)
}
