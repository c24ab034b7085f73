// Package sim provides the demo collaborator set: authentication, OCR,
// reply generation and billing backed by canned data behind artificial
// delays. Every implementation satisfies the corresponding interface in
// internal/model so a real backend can be swapped in without touching the
// store.
package sim

import (
	"context"
	"math/rand"
	"time"
)

// Delays configures the artificial latency of each simulated call.
// A zero value disables delays entirely, which is what tests use.
type Delays struct {
	Login    time.Duration
	Signup   time.Duration
	OCR      time.Duration
	Reply    time.Duration
	Purchase time.Duration
}

// sleep waits for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// newRand returns the shared pick source for canned data. Callers may
// override with a seeded source for determinism.
func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
