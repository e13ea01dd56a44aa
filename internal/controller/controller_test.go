package controller

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lshigami/survey-core/internal/repository"
	"github.com/lshigami/survey-core/internal/service"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{service.ErrSurveyNotFound, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", service.ErrAnswerNotFound), http.StatusNotFound},
		{service.ErrQuestionNotFound, http.StatusNotFound},
		{service.ErrSurveyAlreadyActive, http.StatusConflict},
		{repository.ErrDuplicateAnswerCode, http.StatusConflict},
		{repository.ErrInvalidAnswerCode, http.StatusBadRequest},
		{&service.ActivationError{Code: "timingstablecreation", Err: errors.New("boom")}, http.StatusUnprocessableEntity},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := StatusFor(tc.err); got != tc.want {
			t.Errorf("StatusFor(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
