package plugin

import (
	"context"
	"fmt"
)

// QuestionCounter reports how many top-level questions a survey has.
type QuestionCounter interface {
	CountTopLevel(ctx context.Context, sid uint) (int64, error)
}

// RequireQuestions refuses to activate surveys without questions.
type RequireQuestions struct {
	Questions QuestionCounter
}

func (p *RequireQuestions) Name() string { return "RequireQuestions" }

func (p *RequireQuestions) Register(m *Manager) {
	m.Subscribe(p.Name(), EventBeforeSurveyActivate, p.beforeSurveyActivate)
}

func (p *RequireQuestions) beforeSurveyActivate(ctx context.Context, e *Event) {
	sid := e.GetUint(ParamSurveyID)
	count, err := p.Questions.CountTopLevel(ctx, sid)
	if err != nil {
		e.Reject(fmt.Sprintf("Could not count the questions of survey %d.", sid))
		return
	}
	if count == 0 {
		e.Reject(fmt.Sprintf("Survey %d has no questions and cannot be activated.", sid))
		return
	}
	e.AddFeedback(p.Name(), fmt.Sprintf("%d questions checked", count))
}

// ActivationNotice attaches a fixed informational message to every activation.
type ActivationNotice struct {
	Message string
}

func (p *ActivationNotice) Name() string { return "ActivationNotice" }

func (p *ActivationNotice) Register(m *Manager) {
	m.Subscribe(p.Name(), EventBeforeSurveyActivate, func(_ context.Context, e *Event) {
		if simulate, _ := e.GetBool(ParamSimulate); simulate {
			return
		}
		e.Notify(p.Message)
	})
}
