// Package errors provides coded errors for the surfaces the CLI has to
// classify: configuration problems, parse failures, filesystem errors and
// dry runs that would change files.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorCode classifies an Error.
type ErrorCode string

// Error codes.
const (
	CodeConfig          ErrorCode = "CONFIG"
	CodeParse           ErrorCode = "PARSE"
	CodeIO              ErrorCode = "IO"
	CodeChangesDetected ErrorCode = "CHANGES_DETECTED"
	CodeNotFound        ErrorCode = "NOT_FOUND"
	CodeInternal        ErrorCode = "INTERNAL"
)

// Context keys.
const (
	CtxPath   = "path"
	CtxRule   = "rule"
	CtxOption = "option"
)

// Error is an error carrying a code and optional context.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
	Context map[string]string
}

// WithContext records a key/value pair and returns the receiver.
func (e *Error) WithContext(key, value string) *Error {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}

	e.Context[key] = value

	return e
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}

	return msg + formatContext(e.Context)
}

func formatContext(ctx map[string]string) string {
	if len(ctx) == 0 {
		return ""
	}

	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+ctx[k])
	}

	return " (" + strings.Join(pairs, ", ") + ")"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns a coded error.
func New(code ErrorCode, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// Newf returns a coded error with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns a coded error around err.
func Wrap(err error, code ErrorCode, msg string) *Error {
	return &Error{Code: code, Message: msg, Err: err}
}

// AddContext attaches context to err. A coded error gets it directly. When
// the coded error sits deeper in the chain, err is wrapped so the context
// shows in its message and the code is still found. Uncoded errors are
// wrapped as internal errors.
func AddContext(err error, key, value string) error {
	switch e := err.(type) {
	case *Error:
		return e.WithContext(key, value)
	case *contextError:
		e.context[key] = value

		return e
	}

	var e *Error
	if errors.As(err, &e) {
		return &contextError{err: err, context: map[string]string{key: value}}
	}

	return Wrap(err, CodeInternal, "wrapped error").WithContext(key, value)
}

// contextError adds context to a chain that already holds a coded error.
type contextError struct {
	err     error
	context map[string]string
}

func (e *contextError) Error() string {
	return e.err.Error() + formatContext(e.context)
}

func (e *contextError) Unwrap() error {
	return e.err
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}

	return false
}

// CodeOf returns the code of err, or "" when it has none.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return ""
}
