package review

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"
)

// RunContinuous repeats refresh, scan and review of unreviewed pull requests,
// waiting interval between cycles. Cancellation of ctx is observed before each
// cycle and while waiting; a review in progress always runs to completion.
// It returns nil on cancellation and an error when a cycle fails fatally.
func (o *Orchestrator) RunContinuous(ctx context.Context, interval time.Duration) error {
	o.logger.Info("starting continuous review", "interval", interval)

	for {
		if ctx.Err() != nil {
			o.logger.Info("stopping continuous review")
			return nil
		}

		if err := o.cycle(ctx); err != nil {
			o.logger.Error("error in continuous review", "error", err)
			return err
		}

		o.logger.Info("waiting until next scan", "interval", interval)
		if err := o.sleep(ctx, interval); err != nil {
			o.logger.Info("stopping continuous review")
			return nil
		}
	}
}

func (o *Orchestrator) cycle(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("panic in review cycle", "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic in review cycle: %v", r)
		}
	}()

	// In-flight work is never interrupted; only the loop boundaries observe ctx.
	work := context.WithoutCancel(ctx)

	if err := o.RefreshRepositories(work); err != nil {
		return err
	}

	prs := o.Scan(work)
	o.logger.Info("found open PRs", "count", len(prs))

	for _, pr := range prs {
		if o.ledger.HasReviewed(pr.Key()) {
			continue
		}
		// Failures are already logged and leave the PR eligible for the next cycle.
		_, _ = o.ReviewOne(work, pr.Repo, pr.Number)
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
