package plugin

import "sync"

// Event names dispatched by the core.
const (
	EventBeforeSurveyActivate = "beforeSurveyActivate"
)

// Well-known event parameters.
const (
	ParamSurveyID       = "surveyId"
	ParamSimulate       = "simulate"
	ParamSuccess        = "success"
	ParamMessage        = "message"
	ParamPluginFeedback = "pluginFeedback"
)

// Feedback is a message left by a plugin for the caller.
type Feedback struct {
	Plugin  string `json:"plugin"`
	Message string `json:"message"`
}

// Event carries parameters to subscribed handlers and collects their answers.
type Event struct {
	name string

	mu     sync.RWMutex
	params map[string]interface{}
}

func NewEvent(name string) *Event {
	return &Event{name: name, params: make(map[string]interface{})}
}

func (e *Event) Name() string {
	return e.name
}

func (e *Event) Set(key string, value interface{}) {
	e.mu.Lock()
	e.params[key] = value
	e.mu.Unlock()
}

func (e *Event) Get(key string) (interface{}, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.params[key]
	return v, ok
}

func (e *Event) GetString(key string) string {
	v, _ := e.Get(key)
	s, _ := v.(string)
	return s
}

// GetBool returns the value and whether it was set as a bool.
func (e *Event) GetBool(key string) (bool, bool) {
	v, ok := e.Get(key)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

func (e *Event) GetUint(key string) uint {
	v, _ := e.Get(key)
	u, _ := v.(uint)
	return u
}

// Reject marks the event as failed with a message shown to the user.
func (e *Event) Reject(message string) {
	e.Set(ParamSuccess, false)
	e.Set(ParamMessage, message)
}

// Notify records a non-fatal message.
func (e *Event) Notify(message string) {
	e.Set(ParamMessage, message)
}

// Rejected reports whether a handler explicitly set success to false.
func (e *Event) Rejected() bool {
	success, ok := e.GetBool(ParamSuccess)
	return ok && !success
}

func (e *Event) AddFeedback(plugin, message string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	list, _ := e.params[ParamPluginFeedback].([]Feedback)
	e.params[ParamPluginFeedback] = append(list, Feedback{Plugin: plugin, Message: message})
}

func (e *Event) Feedback() []Feedback {
	v, _ := e.Get(ParamPluginFeedback)
	list, _ := v.([]Feedback)
	return list
}
