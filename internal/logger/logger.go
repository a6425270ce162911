package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the application logger. Development gets a console writer,
// anything else emits plain JSON lines.
func New(environment string) zerolog.Logger {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if environment == "development" {
		consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
		return zerolog.New(consoleWriter).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
