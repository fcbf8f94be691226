package logger

import (
	"hotel/config"
	"hotel/shared/constant"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs a console logger at trace level. It runs before the
// configuration is loaded so config loading itself can log.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies the configured level and, in production, switches to
// structured JSON output tagged with the app name.
func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || cfg.Server.LogLevel == "" {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Server.Env == constant.ServerEnvProduction {
		log.Logger = New(os.Stdout, cfg.App.Name)
	}
}

// New returns a JSON logger writing to w.
func New(w io.Writer, app string) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Str("app", app).Logger()
}
