package services

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// AnswerGenerator produces an answer for a question. Implementations
// stand in for the external model; the allocator treats them as a
// black box with externally configured latency.
type AnswerGenerator interface {
	Generate(ctx context.Context, question string) (answer string, tokensUsed int, err error)
}

var cannedAnswers = []string{
	"That's a great question! Based on my knowledge, here's what I can tell you...",
	"I understand your question. Let me provide you with a comprehensive answer...",
	"Thanks for asking! Here's my response to your inquiry...",
	"That's an interesting topic. Allow me to explain...",
}

// SimulatedGenerator is the stand-in model: a fixed artificial delay,
// a canned answer, and a token count in [50, 150).
type SimulatedGenerator struct {
	delay time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedGenerator builds a generator with the given latency.
// rng may be nil, in which case a time-seeded source is used; tests
// pass a seeded source to pin the chosen answer and token count.
func NewSimulatedGenerator(delay time.Duration, rng *rand.Rand) *SimulatedGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SimulatedGenerator{delay: delay, rng: rng}
}

func (g *SimulatedGenerator) Generate(ctx context.Context, question string) (string, int, error) {
	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", 0, ctx.Err()
	case <-timer.C:
	}

	g.mu.Lock()
	answer := cannedAnswers[g.rng.Intn(len(cannedAnswers))]
	tokensUsed := g.rng.Intn(100) + 50
	g.mu.Unlock()

	return fmt.Sprintf("%s [This is a mocked response for: %q]", answer, question), tokensUsed, nil
}
