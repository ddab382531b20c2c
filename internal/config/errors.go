package config

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per kind of configuration failure. Every error
// returned by Parse unwraps to exactly one of them.
var (
	ErrMalformed       = errors.New("malformed input data")
	ErrNotPositive     = errors.New("the specified value must be a positive integer")
	ErrBoardSize       = errors.New("invalid board size")
	ErrMovesCount      = errors.New("invalid moves count")
	ErrFiguresCount    = errors.New("invalid figures count")
	ErrObjectiveColor  = errors.New("invalid objective color")
	ErrObjectiveCount  = errors.New("invalid objective count")
	ErrObjectivesTotal = errors.New("invalid objectives total count")
)

var errorCodes = map[error]string{
	ErrMalformed:       "MALFORMED_INPUT",
	ErrNotPositive:     "NOT_POSITIVE_INTEGER",
	ErrBoardSize:       "INVALID_BOARD_SIZE",
	ErrMovesCount:      "INVALID_MOVES_COUNT",
	ErrFiguresCount:    "INVALID_FIGURES_COUNT",
	ErrObjectiveColor:  "INVALID_OBJECTIVE_COLOR",
	ErrObjectiveCount:  "INVALID_OBJECTIVE_COUNT",
	ErrObjectivesTotal: "INVALID_OBJECTIVES_TOTAL",
}

// ValidationError describes why a level document was rejected.
type ValidationError struct {
	Code    string
	Message string
	Err     error // one of the sentinels above
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(kind error, format string, args ...any) *ValidationError {
	return &ValidationError{
		Code:    errorCodes[kind],
		Message: fmt.Sprintf(format, args...),
		Err:     kind,
	}
}
