package engine

import (
	"context"
	"time"
)

// ScanDelay is the fixed artificial pause before a built-in record is
// returned, simulating an archive scan. The original deployment used
// 800ms; tests substitute a fake Sleeper.
const ScanDelay = 800 * time.Millisecond

// Clock supplies wall-clock time for generated record ids and vault
// timestamps. Abstracted so tests are deterministic.
type Clock interface {
	Now() time.Time
}

// Sleeper performs the scan-delay pause. The real implementation
// honors context cancellation; tests use a recording fake.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// SystemClock reads time.Now.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// RealSleeper blocks for the requested duration or until the context
// is cancelled, whichever comes first.
type RealSleeper struct{}

// Sleep implements Sleeper.
func (RealSleeper) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
