package logging

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var current atomic.Pointer[zerolog.Logger]

func init() {
	l := zerolog.New(io.Discard)
	current.Store(&l)
}

func apply(cfg Config) {
	var out io.Writer = os.Stderr
	if !cfg.Bypass {
		out = consoleWriter(cfg)
	}
	ctx := zerolog.New(out).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	l := ctx.Logger()
	zerolog.SetGlobalLevel(cfg.Level)
	current.Store(&l)
}

func consoleWriter(cfg Config) zerolog.ConsoleWriter {
	w := zerolog.ConsoleWriter{
		Out:        colorable.NewColorableStderr(),
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}
	if !cfg.Timestamp {
		w.PartsExclude = []string{zerolog.TimestampFieldName}
	}
	return w
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Logger returns the configured logger for structured call sites.
func Logger() *zerolog.Logger {
	return current.Load()
}

func Debugf(format string, args ...any) { Logger().Debug().Msg(fmt.Sprintf(format, args...)) }
func Infof(format string, args ...any)  { Logger().Info().Msg(fmt.Sprintf(format, args...)) }
func Warnf(format string, args ...any)  { Logger().Warn().Msg(fmt.Sprintf(format, args...)) }

// Logf writes regardless of level; used for test narration.
func Logf(format string, args ...any) { Logger().Log().Msg(fmt.Sprintf(format, args...)) }
