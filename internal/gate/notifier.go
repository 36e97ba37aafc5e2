package gate

import (
	"context"

	slogctx "github.com/veqryn/slog-context"
)

// Notifier is the user-facing notice surface. The dashboard shows these as
// transient toasts; headless deployments log them.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

type LogNotifier struct{}

var _ = Notifier(LogNotifier{})

func (LogNotifier) Notify(ctx context.Context, message string) {
	slogctx.Info(ctx, "User notice", "message", message)
}
