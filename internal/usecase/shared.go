// Package usecase contains application use cases.
package usecase

import (
	"fmt"

	"github.com/tarunark/weekplan/internal/domain"
)

// flushWarn persists the aggregate and downgrades a failed write to a
// non-fatal warning. The mutated in-memory aggregate stays authoritative,
// so callers should report the returned error and continue.
func flushWarn(store domain.StoreRepository, agg *domain.Aggregate, logger domain.Logger, taskID string) error {
	err := store.Flush(agg)
	if err != nil && logger != nil {
		logger.Warn(taskID, "store", fmt.Sprintf("flush failed: %v", err))
	}
	return err
}

// loadCurrent loads the aggregate and advances the archival lifecycle,
// persisting only when a task actually changed state. A failed persist of
// the lifecycle advance is logged and otherwise ignored; the advanced
// in-memory state is still returned.
func loadCurrent(store domain.StoreRepository, policy domain.LifecyclePolicy, clock domain.Clock, logger domain.Logger) (*domain.Aggregate, error) {
	agg, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}
	if agg.AdvanceLifecycle(policy, clock.Now()) {
		_ = flushWarn(store, agg, logger, "")
	}
	return agg, nil
}
