// Package apperr wraps raw failures into categorized, severity-tagged error
// values that drive retry decisions and user-facing messaging.
package apperr

import "fmt"

type Category string

const (
	CategoryUnknown        Category = "unknown"
	CategoryNetwork        Category = "network"
	CategoryAuthentication Category = "authentication"
	CategoryServer         Category = "server"
	CategoryClient         Category = "client"
)

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// Error is an error with classification context. It is constructed once at
// the failure site and never mutated afterwards.
type Error struct {
	Message     string
	Category    Category
	Severity    Severity
	StatusCode  int // 0 when unknown
	Retryable   bool
	UserMessage string
	Cause       error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Options for New. Zero values select the defaults: category UNKNOWN,
// severity ERROR, retryable true, user message derived from the error.
type Options struct {
	Category    Category
	Severity    Severity
	StatusCode  int
	Retryable   *bool
	UserMessage string
	Cause       error
}

// Retry is a convenience for Options.Retryable.
func Retry(v bool) *bool { return &v }

func New(message string, opts Options) *Error {
	e := &Error{
		Message:    message,
		Category:   opts.Category,
		Severity:   opts.Severity,
		StatusCode: opts.StatusCode,
		Retryable:  true,
		Cause:      opts.Cause,
	}
	if e.Category == "" {
		e.Category = CategoryUnknown
	}
	if e.Severity == "" {
		e.Severity = SeverityError
	}
	if opts.Retryable != nil {
		e.Retryable = *opts.Retryable
	}
	e.UserMessage = opts.UserMessage
	if e.UserMessage == "" {
		e.UserMessage = UserMessage(e)
	}
	return e
}
