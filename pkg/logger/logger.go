// Package logger arma el logger zerolog del proceso: consola legible en
// desarrollo, JSON en cualquier otro entorno.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger del proceso.
type Config struct {
	Env      string // development activa la salida de consola
	Level    string // debug, info, warn, error; otro valor cae en info
	Servicio string // nombre del binario, estampado en cada línea
}

// Logger envuelve zerolog para fijar formato y campos comunes.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger y lo deja también como logger global de zerolog,
// para las librerías que escriben por esa vía.
func New(cfg Config) *Logger {
	var out io.Writer = os.Stderr
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}

	nivel, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || nivel == zerolog.NoLevel {
		nivel = zerolog.InfoLevel
	}

	ctx := zerolog.New(out).Level(nivel).With().Timestamp()
	if cfg.Servicio != "" {
		ctx = ctx.Str("servicio", cfg.Servicio)
	}
	zl := ctx.Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With crea un sublogger con campos fijos.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}
