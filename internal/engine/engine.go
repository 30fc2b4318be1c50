package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/gemini"
	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/principle"
)

// Generator is the pluggable generative backend: given a prompt and a
// required output schema, return text expected to parse as JSON
// matching that schema, or fail. gemini.Client satisfies this; tests
// substitute scripted fakes.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string, schema map[string]any) ([]byte, error)
}

// Engine resolves queries into principle records and synthesizes
// blueprints. One Engine serves the whole process; it holds no
// per-request state.
type Engine struct {
	generator Generator
	clock     Clock
	sleeper   Sleeper
	log       *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock substitutes the wall clock (tests).
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithSleeper substitutes the scan-delay sleeper (tests).
func WithSleeper(s Sleeper) Option {
	return func(e *Engine) { e.sleeper = s }
}

// WithLogger attaches a logger. Default is a nop.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// New creates an Engine backed by the given generator.
func New(generator Generator, opts ...Option) *Engine {
	e := &Engine{
		generator: generator,
		clock:     SystemClock{},
		sleeper:   RealSleeper{},
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var lowercaser = cases.Lower(language.Und)

// Normalize produces the lookup key for a query: surrounding
// whitespace trimmed, then Unicode-lowercased. This normalized form is
// used ONLY for built-in matching; the generative path always receives
// the raw query.
func Normalize(query string) string {
	return lowercaser.String(strings.TrimSpace(query))
}

// Resolve returns the principle record for a free-text query.
//
// Built-in hits return the curated record verbatim after ScanDelay,
// deterministically and without any network call. Everything else goes
// to the generative backend; its output is schema-check decoded and
// given a fresh unique id. Failures surface as *ResolveError with code
// NO_MATCH (no content upstream) or UPSTREAM_FAILURE (anything else).
func (e *Engine) Resolve(ctx context.Context, query string) (principle.Record, error) {
	key := Normalize(query)

	if rec, ok := principle.Builtin(key); ok {
		e.log.Debug("builtin match", zap.String("key", key), zap.String("id", rec.ID))
		if err := e.sleeper.Sleep(ctx, ScanDelay); err != nil {
			return principle.Record{}, err
		}
		return rec, nil
	}

	e.log.Debug("delegating to generative backend", zap.String("query", query))
	raw, err := e.generator.GenerateJSON(ctx, PrinciplePrompt(query), RecordSchema())
	if err != nil {
		if errors.Is(err, gemini.ErrNoContent) {
			return principle.Record{}, &ResolveError{
				Code:    ErrCodeNoMatch,
				Message: "no principle could be retrieved for this query",
				Query:   query,
				Err:     err,
			}
		}
		return principle.Record{}, &ResolveError{
			Code:    ErrCodeUpstreamFailure,
			Message: "generative backend call failed",
			Query:   query,
			Err:     err,
		}
	}

	rec, err := principle.DecodeRecord(raw)
	if err != nil {
		e.log.Warn("upstream output rejected", zap.String("query", query), zap.Error(err))
		return principle.Record{}, &ResolveError{
			Code:    ErrCodeUpstreamFailure,
			Message: "generative output failed validation",
			Query:   query,
			Err:     err,
		}
	}

	rec.ID = e.newRecordID()
	return rec, nil
}

// SynthesizeBlueprint turns the three blueprint inputs into a purpose
// statement and execution steps. All three inputs must be non-empty.
// Every failure surfaces as an ENGINE_FAILURE wrapping the cause.
func (e *Engine) SynthesizeBlueprint(ctx context.Context, burden, hand, history string) (principle.Blueprint, error) {
	if strings.TrimSpace(burden) == "" || strings.TrimSpace(hand) == "" || strings.TrimSpace(history) == "" {
		return principle.Blueprint{}, &ResolveError{
			Code:    ErrCodeEngineFailure,
			Message: "burden, hand, and history are all required",
		}
	}

	raw, err := e.generator.GenerateJSON(ctx, BlueprintPrompt(burden, hand, history), BlueprintSchema())
	if err != nil {
		return principle.Blueprint{}, &ResolveError{
			Code:    ErrCodeEngineFailure,
			Message: "blueprint generation failed",
			Err:     err,
		}
	}

	bp, err := principle.DecodeBlueprint(raw)
	if err != nil {
		e.log.Warn("blueprint output rejected", zap.Error(err))
		return principle.Blueprint{}, &ResolveError{
			Code:    ErrCodeEngineFailure,
			Message: "blueprint output failed validation",
			Err:     err,
		}
	}
	return bp, nil
}

// newRecordID synthesizes an id for a generated record: wall-clock
// milliseconds plus a random suffix. Repeated queries for the same
// text never collide but also never dedupe.
func (e *Engine) newRecordID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("ai-%d-%s", e.clock.Now().UnixMilli(), suffix)
}
