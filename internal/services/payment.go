package services

import (
	"math/rand"
	"sync"
	"time"
)

// PaymentDecider decides the outcome of a simulated renewal payment.
// It returns true on success. The lifecycle manager takes it as a
// dependency so tests can force either branch.
type PaymentDecider func() bool

// RandomPaymentDecider fails with the given probability. rng may be
// nil for a time-seeded source.
func RandomPaymentDecider(failureRate float64, rng *rand.Rand) PaymentDecider {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	var mu sync.Mutex
	return func() bool {
		mu.Lock()
		defer mu.Unlock()
		return rng.Float64() >= failureRate
	}
}

// AlwaysApprove is a decider that never fails, for tests and local use.
func AlwaysApprove() bool { return true }

// AlwaysDecline is a decider that always fails, for tests.
func AlwaysDecline() bool { return false }
