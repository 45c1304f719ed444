package apperr

import (
	"errors"
	"testing"

	"github.com/negadras/summarizer-go/online"
)

func TestCategorize(t *testing.T) {
	onlineClass := Classifier{Net: online.Always{}}

	tests := []struct {
		err    error
		expect Category
	}{
		{errors.New("Failed to fetch"), CategoryNetwork},
		{errors.New("network unreachable"), CategoryNetwork},
		{errors.New("device is offline"), CategoryNetwork},
		{errors.New("401 Unauthorized"), CategoryAuthentication},
		{errors.New("authentication required"), CategoryAuthentication},
		{errors.New("500 Internal Server Error"), CategoryServer},
		{errors.New("502 Bad Gateway"), CategoryServer},
		{errors.New("validation failed: title required"), CategoryClient},
		{errors.New("invalid parameter"), CategoryClient},
		{errors.New("something odd happened"), CategoryUnknown},
	}
	for _, tt := range tests {
		if got := onlineClass.Categorize(tt.err); got != tt.expect {
			t.Errorf("Categorize(%q) = %v, want %v", tt.err, got, tt.expect)
		}
	}
}

func TestCategorizeOfflineForcesNetwork(t *testing.T) {
	offlineClass := Classifier{Net: online.Func(func() bool { return false })}
	if got := offlineClass.Categorize(errors.New("401 Unauthorized")); got != CategoryNetwork {
		t.Fatalf("offline categorization = %v, want network", got)
	}
}

func TestCategorizeHonorsExistingCategory(t *testing.T) {
	c := Classifier{}
	err := New("boom", Options{Category: CategoryServer})
	if got := c.Categorize(err); got != CategoryServer {
		t.Fatalf("Categorize on *Error = %v", got)
	}
	// Wrapped *Error is still recovered.
	wrapped := &Error{Message: "outer", Cause: err, Category: CategoryClient}
	if got := c.Categorize(wrapped); got != CategoryClient {
		t.Fatalf("Categorize on wrapping *Error = %v", got)
	}
}

func TestRetryable(t *testing.T) {
	c := Classifier{}

	if !c.Retryable(errors.New("network blip")) {
		t.Fatal("network errors retry")
	}
	if !c.Retryable(errors.New("500 server error")) {
		t.Fatal("server errors retry")
	}
	if c.Retryable(errors.New("validation failed")) {
		t.Fatal("client errors do not retry")
	}

	// The explicit flag always wins over the category.
	if c.Retryable(New("network down", Options{Category: CategoryNetwork, Retryable: Retry(false)})) {
		t.Fatal("explicit retryable=false ignored")
	}
	if !c.Retryable(New("weird", Options{Category: CategoryUnknown})) {
		t.Fatal("New defaults retryable=true")
	}
}

func TestUserMessagePrecedence(t *testing.T) {
	// Explicit user message wins.
	e := New("x", Options{Category: CategoryServer, UserMessage: "custom"})
	if got := UserMessage(e); got != "custom" {
		t.Fatalf("explicit user message: %q", got)
	}

	// Category canned message next.
	e = New("x", Options{Category: CategoryAuthentication})
	if got := UserMessage(e); got != "Your session has expired. Please log in again." {
		t.Fatalf("category message: %q", got)
	}

	// Substring canned messages for plain errors.
	cases := map[string]string{
		"request timed out":   "The request timed out. Please try again.",
		"403 Forbidden":       "You don't have permission to perform this action.",
		"resource not found":  "The requested resource was not found.",
		"totally mysterious":  "Something went wrong. Please try again later.",
	}
	for msg, want := range cases {
		if got := UserMessage(errors.New(msg)); got != want {
			t.Errorf("UserMessage(%q) = %q, want %q", msg, got, want)
		}
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	e := New("wrapper", Options{Cause: cause})
	if !errors.Is(e, cause) {
		t.Fatal("errors.Is through *Error")
	}
	if e.Error() != "wrapper: root cause" {
		t.Fatalf("Error() = %q", e.Error())
	}
}
