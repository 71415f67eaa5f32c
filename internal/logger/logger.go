package logger

import (
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var once sync.Once
var Log zerolog.Logger

// stderr keeps stdout free for the console
func configureLogger() {
	customTimeFormat := "2006-01-02T15:04:05.000Z07:00"
	zerolog.TimeFieldFormat = customTimeFormat

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: customTimeFormat,
	}

	Log = zerolog.New(output).With().Timestamp().Logger()
}

// GetLoggerConfigured returns the shared logger and sets the global level.
// Unlike GetLogger the level is applied on every call, so a test can silence
// a package whose logger was already created at init time.
func GetLoggerConfigured(level zerolog.Level) *zerolog.Logger {
	once.Do(configureLogger)
	zerolog.SetGlobalLevel(level)
	return &Log
}

func GetLogger() *zerolog.Logger {
	once.Do(configureLogger)
	return &Log
}

// ParseLevel accepts zerolog level names ("debug", "info", ...). Empty text
// means info.
func ParseLevel(text string) (zerolog.Level, error) {
	text = strings.TrimSpace(strings.ToLower(text))
	if text == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(text)
}
