package grid

import (
	"errors"
	"fmt"

	"github.com/batchatco/go-thrower"

	"github.com/luhan93/nctoolbox/internal"
)

var (
	// ErrIndexOutOfRange is returned when a resolved index falls outside the
	// variable's shape, a range runs backwards, or a stride is less than one.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrRankMismatch is returned when more index expressions are supplied
	// than the variable has dimensions, or a section has the wrong rank.
	ErrRankMismatch = errors.New("rank mismatch")

	// ErrAxisShapeMismatch is returned when a coordinate variable's shape
	// cannot be aligned against the data variable's shape.
	ErrAxisShapeMismatch = errors.New("axis shape does not align")

	// ErrBadExpression is returned for index expression strings that
	// don't parse.
	ErrBadExpression = errors.New("malformed index expression")
)

var logger = internal.NewLogger()

// SetLogLevel sets the logging level to the given level, and returns the
// old level. This is for internal debugging use. The lowest level is 0
// (errors only) and the highest level is 2 (errors, warnings and info).
func SetLogLevel(level int) int {
	switch level {
	case 0:
		return int(logger.SetLogLevel(internal.LevelError))
	case 1:
		return int(logger.SetLogLevel(internal.LevelWarn))
	default:
		return int(logger.SetLogLevel(internal.LevelInfo))
	}
}

// failf logs the diagnostic and throws kind wrapped with it, so callers can
// test the kind with errors.Is and still see the variable and dimension.
func failf(kind error, format string, v ...any) {
	message := fmt.Sprintf(format, v...)
	logger.Error(message)
	thrower.Throw(fmt.Errorf("%s: %w", message, kind))
}
