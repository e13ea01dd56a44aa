package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/survey-core/internal/dto"
	"github.com/lshigami/survey-core/internal/flash"
	"github.com/lshigami/survey-core/internal/service"
)

type stubActivator struct {
	result *dto.ActivationResult
	err    error
	got    service.ActivateOptions
}

func (s *stubActivator) Activate(_ context.Context, _ uint, opts service.ActivateOptions) (*dto.ActivationResult, error) {
	s.got = opts
	if opts.Flash != nil {
		opts.Flash.Add(flash.LevelInfo, "checked")
	}
	return s.result, s.err
}

type stubAnswerService struct {
	service.AnswerService
	updated int
}

func (s *stubAnswerService) RemapInsertansTags(context.Context, uint, uint) (int, error) {
	return s.updated, nil
}

func newRouter(activator service.SurveyActivatorService, answers service.AnswerService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	c := NewSurveyController(activator, answers)
	r.POST("/admin/surveys/:survey_id/activate", c.ActivateSurvey)
	r.POST("/admin/surveys/:survey_id/insertans-remap", c.RemapInsertans)
	return r
}

func TestActivateSurveyStatuses(t *testing.T) {
	cases := []struct {
		name     string
		path     string
		stub     *stubActivator
		want     int
		simulate bool
	}{
		{"ok", "/admin/surveys/1/activate", &stubActivator{result: &dto.ActivationResult{Status: dto.ActivationStatusOK}}, http.StatusOK, false},
		{"simulate", "/admin/surveys/1/activate?simulate=true", &stubActivator{result: &dto.ActivationResult{DBEngine: "sqlite"}}, http.StatusOK, true},
		{"plugin", "/admin/surveys/1/activate", &stubActivator{result: &dto.ActivationResult{Error: dto.ActivationErrorPlugin}}, http.StatusUnprocessableEntity, false},
		{"not found", "/admin/surveys/1/activate", &stubActivator{err: service.ErrSurveyNotFound}, http.StatusNotFound, false},
		{"active", "/admin/surveys/1/activate", &stubActivator{err: service.ErrSurveyAlreadyActive}, http.StatusConflict, false},
		{"bad id", "/admin/surveys/abc/activate", &stubActivator{}, http.StatusBadRequest, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(tc.stub, &stubAnswerService{})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, tc.path, nil))

			if w.Code != tc.want {
				t.Fatalf("status: got %d, want %d (%s)", w.Code, tc.want, w.Body.String())
			}
			if tc.stub.got.Simulate != tc.simulate {
				t.Fatalf("simulate: got %v", tc.stub.got.Simulate)
			}
			if tc.stub.result == nil || w.Code == http.StatusBadRequest {
				return
			}
			var resp dto.ActivationResponseDTO
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.SurveyID != 1 || resp.Result == nil || len(resp.Messages) != 1 {
				t.Fatalf("response: %+v", resp)
			}
		})
	}
}

func TestRemapInsertans(t *testing.T) {
	r := newRouter(&stubActivator{}, &stubAnswerService{updated: 3})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/surveys/9/insertans-remap", strings.NewReader(`{"old_survey_id": 4}`)))
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d (%s)", w.Code, w.Body.String())
	}
	var resp dto.InsertansRemapResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp != (dto.InsertansRemapResponseDTO{SurveyID: 9, OldSurveyID: 4, Updated: 3}) {
		t.Fatalf("response: %+v", resp)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/surveys/9/insertans-remap", strings.NewReader(`{}`)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing old_survey_id: got %d", w.Code)
	}
}
