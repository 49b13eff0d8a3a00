package logging

import (
	"log"
	"os"
	"strings"
	"sync/atomic"
)

type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

var current atomic.Int32

func init() {
	current.Store(int32(LevelInfo))
}

// InitFromEnv sets the log level based on LOG_LEVEL (debug|info|error).
func InitFromEnv() {
	SetLevel(ParseLevel(os.Getenv("LOG_LEVEL")))
}

// ParseLevel maps a level name to a Level. Unknown names mean info.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "error":
		return LevelError
	case "debug":
		return LevelDebug
	default:
		return LevelInfo
	}
}

func SetLevel(l Level) {
	current.Store(int32(l))
}

func CurrentLevel() Level {
	return Level(current.Load())
}

// Logger prefixes every line with a component tag such as "[create-db]".
type Logger struct {
	prefix string
	out    *log.Logger
}

// New returns a Logger writing to the standard logger's output.
func New(component string) *Logger {
	return &Logger{prefix: "[" + component + "] ", out: log.Default()}
}

// WithOutput returns a copy of l that writes to out.
func (l *Logger) WithOutput(out *log.Logger) *Logger {
	return &Logger{prefix: l.prefix, out: out}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if CurrentLevel() <= LevelDebug {
		l.out.Printf(l.prefix+format, args...)
	}
}

func (l *Logger) Infof(format string, args ...interface{}) {
	if CurrentLevel() <= LevelInfo {
		l.out.Printf(l.prefix+format, args...)
	}
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.out.Printf(l.prefix+format, args...)
}

func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.out.Fatalf(l.prefix+format, args...)
}
