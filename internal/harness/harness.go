package harness

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/engine"
	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/gemini"
	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/principle"
	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/store"
	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/testutil"
)

// fixedNow anchors every scenario clock so traces and vault timestamps
// never depend on the wall clock.
var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// TraceEvent is one observable step outcome.
type TraceEvent struct {
	Seq        int      `json:"seq"`
	Op         string   `json:"op"`
	Name       string   `json:"name,omitempty"`
	Query      string   `json:"query,omitempty"`
	RecordID   string   `json:"record_id,omitempty"`
	Category   string   `json:"category,omitempty"`
	PlanSteps  int      `json:"plan_steps,omitempty"`
	Questions  int      `json:"questions,omitempty"`
	Scriptures int      `json:"scriptures,omitempty"`
	ErrorCode  string   `json:"error_code,omitempty"`
	Step       int      `json:"step,omitempty"`
	Done       *bool    `json:"done,omitempty"`
	Steps      []int    `json:"steps,omitempty"`
	Keys       []string `json:"keys,omitempty"`
	Actions    int      `json:"actions,omitempty"`
	Unlocked   int      `json:"unlocked,omitempty"`
	Mastery    int      `json:"mastery,omitempty"`
}

// Result is a completed scenario execution.
type Result struct {
	Trace []TraceEvent

	// Sleeps counts scan delays requested by builtin resolutions.
	Sleeps int
}

// scriptedCall is one queued generative backend outcome.
type scriptedCall struct {
	response []byte
	err      error
}

// queueGenerator feeds scripted outcomes to the engine, one per call.
type queueGenerator struct {
	mu    sync.Mutex
	queue []scriptedCall
}

func (g *queueGenerator) push(call scriptedCall) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.queue = append(g.queue, call)
}

func (g *queueGenerator) GenerateJSON(ctx context.Context, prompt string, schema map[string]any) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.queue) == 0 {
		return nil, errors.New("unscripted generative call")
	}
	next := g.queue[0]
	g.queue = g.queue[1:]
	return next.response, next.err
}

// Run executes a scenario against a fresh temp store and a
// deterministic engine, returning the trace.
func Run(t *testing.T, sc *Scenario) (*Result, error) {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), "scenario.db"))
	if err != nil {
		return nil, err
	}
	t.Cleanup(func() { s.Close() })

	gen := &queueGenerator{}
	sleeper := &testutil.RecordingSleeper{}
	eng := engine.New(gen,
		engine.WithClock(testutil.FixedClock{Time: fixedNow}),
		engine.WithSleeper(sleeper),
	)

	ctx := context.Background()
	result := &Result{}

	for i, step := range sc.Steps {
		event := TraceEvent{Seq: i + 1}
		switch {
		case step.Resolve != nil:
			runResolveStep(ctx, eng, s, gen, step.Resolve, &event)
		case step.Toggle != nil:
			runToggleStep(ctx, s, step.Toggle, &event)
		case step.Stats:
			runStatsStep(ctx, s, &event)
		case step.Commission != nil:
			runCommissionStep(ctx, s, step.Commission, &event)
		case step.Export:
			runExportStep(ctx, s, &event)
		case step.Import != "":
			runImportStep(ctx, s, step.Import, &event)
		default:
			return nil, fmt.Errorf("scenario %s: step %d sets no action", sc.Name, i+1)
		}
		result.Trace = append(result.Trace, event)
	}

	result.Sleeps = sleeper.Calls()
	return result, nil
}

func runResolveStep(ctx context.Context, eng *engine.Engine, s *store.Store, gen *queueGenerator, step *ResolveStep, event *TraceEvent) {
	event.Op = "resolve"
	event.Query = step.Query

	switch step.Fail {
	case "no_content":
		gen.push(scriptedCall{err: gemini.ErrNoContent})
	case "transport":
		gen.push(scriptedCall{err: errors.New("connection refused")})
	case "":
		if step.Respond != "" {
			gen.push(scriptedCall{response: []byte(step.Respond)})
		}
	}

	record, err := eng.Resolve(ctx, step.Query)
	if err != nil {
		var re *engine.ResolveError
		if errors.As(err, &re) {
			event.ErrorCode = string(re.Code)
		} else {
			event.ErrorCode = "UNKNOWN"
		}
		return
	}

	if principle.IsBuiltinID(record.ID) {
		event.RecordID = record.ID
	} else {
		// Generated ids carry a random suffix; mask for determinism.
		event.RecordID = "generated"
	}
	event.Category = record.Category
	event.PlanSteps = len(record.ActionPlan)
	event.Questions = len(record.RelatedQuestions)
	event.Scriptures = len(record.AdditionalScriptures)

	item := principle.VaultEntry(record, step.Query, fixedNow)
	if _, err := s.AppendVault(ctx, item); err != nil {
		event.ErrorCode = "STORAGE_UNAVAILABLE"
	}
}

func runToggleStep(ctx context.Context, s *store.Store, step *ToggleStep, event *TraceEvent) {
	event.Op = "toggle"
	event.RecordID = step.Record
	event.Step = step.Step

	steps, done, err := s.ToggleProgress(ctx, step.Record, step.Step-1)
	if err != nil {
		event.ErrorCode = "STORAGE_UNAVAILABLE"
		return
	}
	event.Done = &done
	for _, st := range steps {
		event.Steps = append(event.Steps, st+1)
	}
}

func runStatsStep(ctx context.Context, s *store.Store, event *TraceEvent) {
	event.Op = "stats"

	stats, err := s.LoadStats(ctx)
	if err != nil {
		event.ErrorCode = "STORAGE_UNAVAILABLE"
		return
	}
	event.Actions = stats.Actions
	event.Unlocked = stats.Unlocked
	event.Mastery = stats.Mastery
}

func runCommissionStep(ctx context.Context, s *store.Store, step *CommissionStep, event *TraceEvent) {
	event.Op = "commission"
	event.Name = step.Name

	if _, err := s.Commission(ctx, step.Name, step.Title, fixedNow); err != nil {
		if store.IsProfileExists(err) {
			event.ErrorCode = string(store.ErrCodeProfileExists)
		} else {
			event.ErrorCode = "STORAGE_UNAVAILABLE"
		}
	}
}

func runExportStep(ctx context.Context, s *store.Store, event *TraceEvent) {
	event.Op = "export"

	snap, err := s.ExportSnapshot(ctx, fixedNow)
	if err != nil {
		event.ErrorCode = "STORAGE_UNAVAILABLE"
		return
	}

	var keys []string
	if len(snap.Profile) > 0 {
		keys = append(keys, "profile")
	}
	if len(snap.Vault) > 0 {
		keys = append(keys, "vault")
	}
	if snap.Stats != "" {
		keys = append(keys, "stats")
	}
	for key := range snap.Details {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	event.Keys = keys
}

func runImportStep(ctx context.Context, s *store.Store, doc string, event *TraceEvent) {
	event.Op = "import"

	if err := s.ImportSnapshot(ctx, json.RawMessage(doc)); err != nil {
		if store.IsInvalidFormat(err) {
			event.ErrorCode = string(store.ErrCodeInvalidFormat)
		} else {
			event.ErrorCode = "STORAGE_UNAVAILABLE"
		}
	}
}
