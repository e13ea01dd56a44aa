package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestSetLevel(t *testing.T) {
	Init()
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	SetLevel("DEBUG")
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Fatalf("SetLevel(DEBUG): got %s", zerolog.GlobalLevel())
	}
	SetLevel("nonsense")
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Fatalf("unknown level changed the level to %s", zerolog.GlobalLevel())
	}
	SetLevel("")
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Fatalf("empty level changed the level to %s", zerolog.GlobalLevel())
	}
}
