package apperr

import (
	"context"
	"log/slog"
	"time"

	"github.com/negadras/summarizer-go/session"
	"github.com/negadras/summarizer-go/toast"
)

// DefaultRedirectDelay is how long a session-expired toast stays visible
// before the login redirect fires.
const DefaultRedirectDelay = 1500 * time.Millisecond

// Handler centralizes error reporting: structured logging, user-facing
// toasts, and the session-expiry side effect (token clear + login redirect)
// for AUTHENTICATION failures.
//
// All collaborators are optional; a zero Handler only classifies.
type Handler struct {
	Class    Classifier
	Log      *slog.Logger
	Notify   toast.Notifier
	Sessions *session.Store

	// RedirectToLogin is scheduled RedirectDelay after an AUTHENTICATION
	// failure, giving the toast time to be seen.
	RedirectToLogin func()
	RedirectDelay   time.Duration
}

type HandleOptions struct {
	Context string // call-site label for logs, e.g. "summaries.list"
	Silent  bool   // suppress the toast, keep the log
	OnRetry func()
}

func (h *Handler) Handle(err error, opts HandleOptions) {
	if err == nil {
		return
	}
	category := h.Class.Categorize(err)
	userMsg := UserMessage(err)

	if h.Log != nil {
		ctxLabel := opts.Context
		if ctxLabel == "" {
			ctxLabel = "app"
		}
		h.Log.Error("request failed",
			"context", ctxLabel,
			"category", string(category),
			"err", err)
	}

	if !opts.Silent && h.Notify != nil {
		n := toast.Notification{
			Title:       "Error",
			Description: userMsg,
			Variant:     toast.VariantDestructive,
		}
		if category == CategoryAuthentication {
			n.Title = "Session Expired"
		}
		if opts.OnRetry != nil && h.Class.Retryable(err) {
			n.Action = &toast.Action{Label: "Retry", Do: opts.OnRetry}
		}
		h.Notify.Notify(n)
	}

	// Expired sessions force re-authentication. The redirect is delayed so
	// the toast is visible first.
	if category == CategoryAuthentication {
		if h.Sessions != nil {
			_ = h.Sessions.ClearToken(context.Background())
		}
		if h.RedirectToLogin != nil {
			delay := h.RedirectDelay
			if delay <= 0 {
				delay = DefaultRedirectDelay
			}
			time.AfterFunc(delay, h.RedirectToLogin)
		}
	}
}
