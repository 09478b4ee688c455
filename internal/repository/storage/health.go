package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

var ErrStorageUnavailable = errors.New("storage unavailable")

// Checker is a storage that can tell whether it is still reachable.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// Watch - checks every storage once per interval until ctx is canceled.
// A storage failing maxFailures checks in a row ends the watch with
// ErrStorageUnavailable; a passing check resets its count.
func Watch(ctx context.Context, logger *slog.Logger, interval time.Duration, maxFailures int, checkers ...Checker) error {
	log := logger.With("component", "storage_watch")

	failures := make([]int, len(checkers))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		for i, checker := range checkers {
			checkCtx, cancel := context.WithTimeout(ctx, interval)
			err := checker.Check(checkCtx)
			cancel()

			if ctx.Err() != nil {
				return nil
			}

			if err == nil {
				if failures[i] > 0 {
					log.Info("storage recovered", "storage", checker.Name())
				}
				failures[i] = 0
				continue
			}

			failures[i]++
			log.Warn("storage check failed", "storage", checker.Name(), "failures", failures[i], "error", err)

			if failures[i] >= maxFailures {
				return fmt.Errorf("%w: %s: %w", ErrStorageUnavailable, checker.Name(), err)
			}
		}
	}
}
