package jsonlog

import (
	"io"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// Level defines the minimum severity a Logger will write.
type Level int8

const (
	LevelInfo Level = iota
	LevelError
	LevelFatal
	LevelOff
)

// Logger wraps a zerolog.Logger behind the small Print* surface the rest of
// the application uses.
type Logger struct {
	log      zerolog.Logger
	minLevel Level
}

func New(out io.Writer, minLevel Level) *Logger {
	return &Logger{
		log:      zerolog.New(out).With().Timestamp().Logger(),
		minLevel: minLevel,
	}
}

func (l *Logger) PrintInfo(message string, properties map[string]string) {
	if l.minLevel > LevelInfo {
		return
	}
	l.event(l.log.Info(), properties).Msg(message)
}

func (l *Logger) PrintError(err error, properties map[string]string) {
	if l.minLevel > LevelError {
		return
	}
	l.event(l.log.Error(), properties).
		Str("trace", string(debug.Stack())).
		Msg(err.Error())
}

func (l *Logger) PrintFatal(err error, properties map[string]string) {
	if l.minLevel > LevelFatal {
		return
	}
	l.event(l.log.Error(), properties).
		Str("trace", string(debug.Stack())).
		Msg(err.Error())
	os.Exit(1)
}

func (l *Logger) event(e *zerolog.Event, properties map[string]string) *zerolog.Event {
	for key, value := range properties {
		e = e.Str(key, value)
	}
	return e
}

// Write lets the Logger stand in for the http.Server error log.
func (l *Logger) Write(message []byte) (int, error) {
	if l.minLevel <= LevelError {
		l.log.Error().Msg(string(message))
	}
	return len(message), nil
}
