package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init sets up the global zerolog logger. Call it before anything logs.
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if pretty := strings.TrimSpace(os.Getenv("LOG_PRETTY")); pretty != "" && pretty != "0" && pretty != "false" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}

// SetLevel applies a textual level ("debug", "info", ...). Unknown values keep the current level.
func SetLevel(level string) {
	if level == "" {
		return
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		log.Warn().Err(err).Str("level", level).Msg("Unknown log level, keeping current")
		return
	}
	zerolog.SetGlobalLevel(lvl)
}
