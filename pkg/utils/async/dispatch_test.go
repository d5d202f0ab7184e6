package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/controltower/pkg/utils/async"
)

func wait(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task did not finish")
	}
}

func TestDispatch_DetachesFromCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var taskErr error
	done := async.Dispatch(ctx, "detached", func(ctx context.Context) error {
		taskErr = ctx.Err()
		return nil
	})
	wait(t, done)
	gt.NoError(t, taskErr)
}

func TestDispatch_SurvivesErrorsAndPanics(t *testing.T) {
	wait(t, async.Dispatch(context.Background(), "failing", func(ctx context.Context) error {
		return errors.New("boom")
	}))
	wait(t, async.Dispatch(context.Background(), "panicking", func(ctx context.Context) error {
		panic("unexpected")
	}))
}
