// Package flash collects user-facing messages produced while handling one request.
package flash

import "sync"

type Level string

const (
	LevelError   Level = "error"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

type Message struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

type Sink interface {
	Add(level Level, text string)
}

// Bag is a request-scoped Sink.
type Bag struct {
	mu       sync.Mutex
	messages []Message
}

func NewBag() *Bag {
	return &Bag{}
}

func (b *Bag) Add(level Level, text string) {
	b.mu.Lock()
	b.messages = append(b.messages, Message{Level: level, Text: text})
	b.mu.Unlock()
}

func (b *Bag) Messages() []Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Message, len(b.messages))
	copy(out, b.messages)
	return out
}

// Discard drops every message.
var Discard Sink = discard{}

type discard struct{}

func (discard) Add(Level, string) {}
