// Package logging provides the slog based logger used by the commands. It
// satisfies the deadtime.Logger interface.
package logging

import (
	"io"
	"log/slog"
)

type Logger struct {
	InfoLog  *slog.Logger
	ErrorLog *slog.Logger
}

// New sends info and warning messages to out with the bracketed text format
// and errors to errOut as JSON.
func New(out io.Writer, errOut io.Writer) Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	return Logger{
		InfoLog:  slog.New(NewHandler(out, opts)),
		ErrorLog: slog.New(slog.NewJSONHandler(errOut, opts)),
	}
}

func (l Logger) Info(message string, module string) {
	l.InfoLog.Info(message, "module", module)
}

func (l Logger) Warning(message string, module string) {
	l.InfoLog.Warn(message, "module", module)
}

func (l Logger) Error(message string) {
	l.ErrorLog.Error(message)
}
