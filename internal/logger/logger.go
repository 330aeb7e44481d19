package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the service logger: pretty console output in development,
// structured JSON everywhere else.
func New(env string) zerolog.Logger {
	if env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
