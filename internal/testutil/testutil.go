// Package testutil provides deterministic substitutes for the engine's
// clock, sleeper, and generative backend, shared by tests across
// packages.
package testutil

import (
	"context"
	"sync"
	"time"
)

// FixedClock returns a constant time from Now.
type FixedClock struct {
	Time time.Time
}

// Now implements engine.Clock.
func (c FixedClock) Now() time.Time { return c.Time }

// SteppingClock returns strictly increasing times, advancing by Step on
// every Now call. Useful when consecutive ids must differ.
type SteppingClock struct {
	mu   sync.Mutex
	next time.Time
	step time.Duration
}

// NewSteppingClock creates a clock starting at start, advancing by step.
func NewSteppingClock(start time.Time, step time.Duration) *SteppingClock {
	return &SteppingClock{next: start, step: step}
}

// Now implements engine.Clock.
func (c *SteppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.next
	c.next = c.next.Add(c.step)
	return t
}

// RecordingSleeper records requested sleep durations without blocking.
type RecordingSleeper struct {
	mu       sync.Mutex
	Slept    []time.Duration
	FailWith error // returned instead of sleeping, when set
}

// Sleep implements engine.Sleeper.
func (s *RecordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}
	s.Slept = append(s.Slept, d)
	return nil
}

// Calls returns how many sleeps were requested.
func (s *RecordingSleeper) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Slept)
}

// ScriptedGenerator replays canned responses in order. Each call
// consumes one script entry; calls past the end return Err (or an
// exhausted error when Err is nil).
type ScriptedGenerator struct {
	mu        sync.Mutex
	Responses [][]byte
	Err       error // returned for every call when set
	Prompts   []string
	Schemas   []map[string]any
}

// GenerateJSON implements engine.Generator.
func (g *ScriptedGenerator) GenerateJSON(ctx context.Context, prompt string, schema map[string]any) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Prompts = append(g.Prompts, prompt)
	g.Schemas = append(g.Schemas, schema)
	if g.Err != nil {
		return nil, g.Err
	}
	if len(g.Responses) == 0 {
		return nil, context.Canceled
	}
	next := g.Responses[0]
	g.Responses = g.Responses[1:]
	return next, nil
}

// CallCount returns how many generate calls were made.
func (g *ScriptedGenerator) CallCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.Prompts)
}

// BlockingGenerator blocks until released, then delegates to Inner.
// Used to simulate a slow upstream for stale-response tests.
type BlockingGenerator struct {
	Inner   *ScriptedGenerator
	Release chan struct{}
}

// GenerateJSON implements engine.Generator.
func (g *BlockingGenerator) GenerateJSON(ctx context.Context, prompt string, schema map[string]any) ([]byte, error) {
	select {
	case <-g.Release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return g.Inner.GenerateJSON(ctx, prompt, schema)
}
