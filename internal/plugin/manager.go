package plugin

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Handler reacts to a dispatched event.
type Handler func(ctx context.Context, e *Event)

// Plugin subscribes handlers on a Manager.
type Plugin interface {
	Name() string
	Register(m *Manager)
}

type subscription struct {
	plugin  string
	handler Handler
}

// Manager dispatches events to subscribed handlers in registration order.
type Manager struct {
	subscriptions map[string][]subscription
}

func NewManager(plugins ...Plugin) *Manager {
	m := &Manager{subscriptions: make(map[string][]subscription)}
	for _, p := range plugins {
		if p == nil {
			continue
		}
		p.Register(m)
		log.Info().Str("plugin", p.Name()).Msg("Plugin registered")
	}
	return m
}

func (m *Manager) Subscribe(plugin, event string, handler Handler) {
	m.subscriptions[event] = append(m.subscriptions[event], subscription{plugin: plugin, handler: handler})
}

// Dispatch runs every handler subscribed to the event, stopping after the first rejection.
func (m *Manager) Dispatch(ctx context.Context, e *Event) {
	for _, sub := range m.subscriptions[e.Name()] {
		sub.handler(ctx, e)
		if e.Rejected() {
			log.Info().Str("plugin", sub.plugin).Str("event", e.Name()).Str("message", e.GetString(ParamMessage)).Msg("Event rejected by plugin")
			return
		}
	}
}

func (m *Manager) Subscribers(event string) int {
	return len(m.subscriptions[event])
}
