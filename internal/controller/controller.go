package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/survey-core/internal/dto"
	"github.com/lshigami/survey-core/internal/repository"
	"github.com/lshigami/survey-core/internal/service"
)

// ParseID reads a numeric path parameter. On failure it writes a 400 and returns false.
func ParseID(ctx *gin.Context, name, label string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + label + " ID format"})
		return 0, false
	}
	return uint(id), true
}

// StatusFor maps service errors onto HTTP status codes.
func StatusFor(err error) int {
	var activationErr *service.ActivationError
	switch {
	case errors.Is(err, service.ErrSurveyNotFound),
		errors.Is(err, service.ErrQuestionNotFound),
		errors.Is(err, service.ErrAnswerNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrSurveyAlreadyActive),
		errors.Is(err, repository.ErrDuplicateAnswerCode):
		return http.StatusConflict
	case errors.Is(err, repository.ErrInvalidAnswerCode):
		return http.StatusBadRequest
	case errors.As(err, &activationErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithError writes err as a dto.ErrorResponse with the status from StatusFor.
func AbortWithError(ctx *gin.Context, message string, err error) {
	ctx.JSON(StatusFor(err), dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
}

// BindError writes the 400 returned for request bodies that fail binding.
func BindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
}
