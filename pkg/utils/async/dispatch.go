package async

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controltower/pkg/utils/errutil"
	"github.com/secmon-lab/controltower/pkg/utils/logging"
)

// Dispatch runs task in a new goroutine detached from the caller's
// cancellation. The logger and Sentry hub of ctx are carried over. Errors and
// panics are logged and reported, never propagated.
func Dispatch(ctx context.Context, name string, task func(ctx context.Context) error) <-chan struct{} {
	bgCtx := logging.With(context.Background(), logging.From(ctx).With("task", name))
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		bgCtx = sentry.SetHubOnContext(bgCtx, hub.Clone())
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				err := goerr.New(fmt.Sprintf("panic in async task: %v", r), goerr.V("task", name))
				_ = errutil.Handle(bgCtx, err, "async task panicked")
			}
		}()

		if err := task(bgCtx); err != nil {
			_ = errutil.Handle(bgCtx, err, "async task failed")
		}
	}()

	return done
}
