package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario: a named, linear flow of
// steps executed against a fresh store and engine.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Steps is the flow to execute, in order.
	Steps []Step `yaml:"steps"`
}

// Step is one scenario action. Exactly one field should be set.
type Step struct {
	Resolve    *ResolveStep    `yaml:"resolve,omitempty"`
	Toggle     *ToggleStep     `yaml:"toggle,omitempty"`
	Stats      bool            `yaml:"stats,omitempty"`
	Commission *CommissionStep `yaml:"commission,omitempty"`
	Export     bool            `yaml:"export,omitempty"`
	Import     string          `yaml:"import,omitempty"`
}

// ResolveStep resolves a query. For non-builtin queries, Respond
// scripts the generative backend's JSON output and Fail scripts its
// failure mode ("no_content" or "transport").
type ResolveStep struct {
	Query   string `yaml:"query"`
	Respond string `yaml:"respond,omitempty"`
	Fail    string `yaml:"fail,omitempty"`
}

// ToggleStep toggles one action plan step. Step is 1-based.
type ToggleStep struct {
	Record string `yaml:"record"`
	Step   int    `yaml:"step"`
}

// CommissionStep creates the profile singleton.
type CommissionStep struct {
	Name  string `yaml:"name"`
	Title string `yaml:"title"`
}

// LoadScenario reads and validates one scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if sc.Name == "" {
		return nil, fmt.Errorf("scenario %s: missing name", path)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s: no steps", path)
	}
	return &sc, nil
}

// LoadScenarioDir loads every .yaml scenario under dir, sorted by
// filename for stable ordering.
func LoadScenarioDir(dir string) ([]*Scenario, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	scenarios := make([]*Scenario, 0, len(matches))
	for _, path := range matches {
		sc, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}
