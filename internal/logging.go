package internal

// Leveled logging for the access layer. Messages are diagnostics for
// developers, not part of the public API.

import (
	"fmt"
	"log"
	"os"
)

type LogLevel int

const (
	LevelError LogLevel = iota // something went wrong, execution continues
	LevelWarn                  // suspicious, but not necessarily an error
	LevelInfo                  // informational only

	// Production code by default only shows warnings and above.
	LogLevelDefault = LevelWarn

	levelMin = LevelError
	levelMax = LevelInfo
)

var levelToPrefix = []string{
	"ERROR ",
	"WARN ",
	"INFO ",
}

type Logger struct {
	logLevel LogLevel
	logger   *log.Logger
}

func NewLogger() *Logger {
	return &Logger{
		logLevel: LogLevelDefault,
		logger:   log.New(os.Stderr, "", log.LstdFlags),
	}
}

func (l *Logger) LogLevel() LogLevel {
	return l.logLevel
}

// SetLogLevel returns the old level.
func (l *Logger) SetLogLevel(level LogLevel) LogLevel {
	if level < levelMin || level > levelMax {
		panic("trying to set invalid log level")
	}
	old := l.logLevel
	l.logLevel = level
	return old
}

func (l *Logger) output(level LogLevel, s string) {
	if level > l.logLevel {
		return
	}
	l.logger.Output(2, levelToPrefix[level]+s)
}

func (l *Logger) Info(v ...any)                 { l.output(LevelInfo, fmt.Sprintln(v...)) }
func (l *Logger) Infof(format string, v ...any) { l.output(LevelInfo, fmt.Sprintf(format, v...)) }

func (l *Logger) Warn(v ...any)                 { l.output(LevelWarn, fmt.Sprintln(v...)) }
func (l *Logger) Warnf(format string, v ...any) { l.output(LevelWarn, fmt.Sprintf(format, v...)) }

func (l *Logger) Error(v ...any)                 { l.output(LevelError, fmt.Sprintln(v...)) }
func (l *Logger) Errorf(format string, v ...any) { l.output(LevelError, fmt.Sprintf(format, v...)) }
