// Package harness executes YAML-described scenarios against a real
// store and a deterministic engine, producing trace snapshots that are
// compared against golden files.
//
// A scenario is a linear list of steps: resolve a query (optionally
// scripting the generative backend's response or failure), toggle
// progress, commission a profile, read stats, export, import. Each step
// appends one trace event; the full trace is the scenario's observable
// behavior.
//
// Determinism: the engine runs with a fixed clock and a recording
// sleeper, and generated record ids are masked in traces since their
// random suffix is not reproducible.
package harness
