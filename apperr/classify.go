package apperr

import (
	"errors"
	"strings"

	"github.com/negadras/summarizer-go/online"
)

// Classifier categorizes plain errors. The message-substring matching is a
// compatibility shim for a backend that does not yet return structured error
// codes; call sites only ever see Categorize/Retryable, so the matching can
// be replaced without touching them.
//
// The zero value treats the device as online.
type Classifier struct {
	Net online.Checker
}

func (c Classifier) online() bool {
	if c.Net == nil {
		return true
	}
	return c.Net.Online()
}

// Categorize returns the error's own category when it carries one, and
// otherwise pattern-matches the lower-cased message. An offline device forces
// NETWORK regardless of message content.
func (c Classifier) Categorize(err error) Category {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Category != "" {
		return appErr.Category
	}

	msg := strings.ToLower(err.Error())

	// Precedence matters: connectivity first, then auth, server, client.
	switch {
	case !c.online(),
		strings.Contains(msg, "network"),
		strings.Contains(msg, "fetch"),
		strings.Contains(msg, "offline"):
		return CategoryNetwork
	case strings.Contains(msg, "unauthorized"),
		strings.Contains(msg, "authentication"),
		strings.Contains(msg, "401"):
		return CategoryAuthentication
	case strings.Contains(msg, "server"),
		strings.Contains(msg, "500"),
		strings.Contains(msg, "502"),
		strings.Contains(msg, "503"):
		return CategoryServer
	case strings.Contains(msg, "invalid"),
		strings.Contains(msg, "validation"),
		strings.Contains(msg, "required"),
		strings.Contains(msg, "400"):
		return CategoryClient
	default:
		return CategoryUnknown
	}
}

// Retryable honors an explicit flag on *Error; otherwise only NETWORK and
// SERVER failures are worth retrying.
func (c Classifier) Retryable(err error) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Retryable
	}
	cat := c.Categorize(err)
	return cat == CategoryNetwork || cat == CategoryServer
}

// UserMessage resolves the user-facing string for err, in precedence order:
// explicit user message, category canned message, message-substring canned
// message, generic fallback.
func UserMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		if appErr.UserMessage != "" {
			return appErr.UserMessage
		}
		switch appErr.Category {
		case CategoryNetwork:
			return "Network connection issue. Please check your internet connection and try again."
		case CategoryAuthentication:
			return "Your session has expired. Please log in again."
		case CategoryServer:
			return "The server encountered an error. Our team has been notified and is working on it."
		case CategoryClient:
			return "There was an issue with your request. Please try again."
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "network"), strings.Contains(msg, "fetch"):
		return "Network connection issue. Please check your internet connection and try again."
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "timed out"):
		return "The request timed out. Please try again."
	case strings.Contains(msg, "unauthorized"), strings.Contains(msg, "authentication"), strings.Contains(msg, "401"):
		return "Your session has expired. Please log in again."
	case strings.Contains(msg, "forbidden"), strings.Contains(msg, "403"):
		return "You don't have permission to perform this action."
	case strings.Contains(msg, "not found"), strings.Contains(msg, "404"):
		return "The requested resource was not found."
	case strings.Contains(msg, "server"), strings.Contains(msg, "500"):
		return "The server encountered an error. Our team has been notified and is working on it."
	default:
		return "Something went wrong. Please try again later."
	}
}
