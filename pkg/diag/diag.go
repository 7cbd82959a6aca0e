// Package diag is the one-way diagnostics channel for user-visible
// warnings and errors (non-manifold geometry, write failures). Messages
// are fire-and-forget: nothing in the library ever reads them back.
//
// The default handler writes through charmbracelet/log. Callers embed
// the library in a GUI or test harness by installing their own handler.
package diag

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// Level classifies a diagnostic message.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

// Handler consumes one formatted diagnostic message.
type Handler func(level Level, msg string)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "adze"})

// handler is the installed sink. Single-writer within one compile
// cycle; not safe for concurrent replacement.
var handler Handler = logHandler

func logHandler(level Level, msg string) {
	switch level {
	case LevelWarning:
		logger.Warn(msg)
	case LevelError:
		logger.Error(msg)
	default:
		logger.Info(msg)
	}
}

// SetHandler installs h as the diagnostic sink and returns the previous
// handler. Passing nil restores the default logging handler.
func SetHandler(h Handler) Handler {
	prev := handler
	if h == nil {
		h = logHandler
	}
	handler = h
	return prev
}

// Infof emits an informational message.
func Infof(format string, args ...interface{}) {
	handler(LevelInfo, fmt.Sprintf(format, args...))
}

// Warnf emits a warning.
func Warnf(format string, args ...interface{}) {
	handler(LevelWarning, fmt.Sprintf(format, args...))
}

// Errorf emits an error message. It does not abort anything; recovery
// decisions stay with the caller.
func Errorf(format string, args ...interface{}) {
	handler(LevelError, fmt.Sprintf(format, args...))
}
