package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/gogpu/improc"
)

// newLogger returns a console logger at info level. Colors are used only
// when w is a terminal.
func newLogger(w io.Writer) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(w),
	}
	return zerolog.New(cw).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()
}

// enableDebug lowers the CLI log level and routes the library's slog
// records to w.
func (o *options) enableDebug(w io.Writer) {
	o.logger = o.logger.Level(zerolog.DebugLevel)
	improc.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
