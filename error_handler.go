package esparse

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

// Error describes a syntax error found while scanning or parsing. It carries
// enough positional information to point at the offending source text.
// Name is always "SyntaxError" so the error list round-trips to the shape
// ESTree tooling expects.
type Error struct {
	// Name identifies the error class; always "SyntaxError".
	Name string

	// Index is the rune offset of the error in the source.
	Index int

	// Line is the 1-based line number.
	Line int

	// Column is the 1-based column number.
	Column int

	// Description is the human-readable message without position info.
	Description string
}

// Error returns the formatted message, mirroring the
// "Line N: description" shape of the reference implementation.
func (e *Error) Error() string {
	return fmt.Sprintf("Line %d: %s", e.Line, e.Description)
}

// errorHandler is the central sink for syntax errors. In the default strict
// mode the first error aborts the parse; in tolerant mode errors accumulate
// in Errors and parsing continues.
type errorHandler struct {
	Errors   []*Error
	Tolerant bool
}

func newErrorHandler() *errorHandler {
	return &errorHandler{}
}

func (h *errorHandler) recordError(err *Error) {
	h.Errors = append(h.Errors, err)
}

// tolerate records err when tolerant, otherwise panics with it. The panic is
// recovered at the public entry points.
func (h *errorHandler) tolerate(err *Error) {
	if h.Tolerant {
		h.recordError(err)
	} else {
		panic(err)
	}
}

func (h *errorHandler) createError(index, line, col int, description string) *Error {
	return &Error{
		Name:        "SyntaxError",
		Index:       index,
		Line:        line,
		Column:      col,
		Description: description,
	}
}

func (h *errorHandler) throwError(index, line, col int, description string) {
	panic(h.createError(index, line, col, description))
}

func (h *errorHandler) tolerateError(index, line, col int, description string) {
	err := h.createError(index, line, col, description)
	if h.Tolerant {
		h.recordError(err)
	} else {
		panic(err)
	}
}

// combined folds the recorded errors into a single error value, nil when
// none were recorded.
func (h *errorHandler) combined() error {
	var err error
	for _, e := range h.Errors {
		err = multierr.Append(err, e)
	}
	return err
}

// formatMessage substitutes %0, %1, ... placeholders with values.
func formatMessage(message string, values ...interface{}) string {
	for i, v := range values {
		message = strings.ReplaceAll(message, "%"+strconv.Itoa(i), fmt.Sprintf("%v", v))
	}
	return message
}
