package worker

import "context"

// RefreshOnce runs a single refresh cycle for testing
func (w *SeedRefreshWorker) RefreshOnce(ctx context.Context) error {
	return w.refresh(ctx)
}
