// SPDX-License-Identifier: MIT

// Package coo: functional configuration for the multiply pipeline.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.

package coo

import "runtime"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateInputs toggles precondition checks on pipeline entry:
	// operand nil/shape validation always runs; under this flag Multiply
	// additionally verifies the right operand's row-grouped storage and
	// fails with ErrRowsNotGrouped instead of producing garbage.
	DefaultValidateInputs = true

	// DefaultDefensiveSort controls whether Multiply regroups an
	// ungrouped right operand (into a private copy) rather than failing.
	// Off by default: the fast path mirrors the storage precondition and
	// never re-sorts.
	DefaultDefensiveSort = false

	// DefaultMaxIntermediate caps the intermediate product count.
	// Zero means "limited only by the index type's range".
	DefaultMaxIntermediate = 0

	// DefaultParallelism is the MultiplyMany concurrency limit.
	// Zero means "resolve to runtime.GOMAXPROCS(0) at call time".
	DefaultParallelism = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxIntermediateInvalid = "coo: WithMaxIntermediate: cap must be non-negative"
	panicParallelismInvalid     = "coo: WithParallelism: workers must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. It is intentionally unexported-field-only to prevent external
// mutation; public entry points accept ...Option and resolve them via
// gatherOptions.
type Options struct {
	validateInputs  bool // DefaultValidateInputs
	defensiveSort   bool // DefaultDefensiveSort
	maxIntermediate int  // DefaultMaxIntermediate; 0 ⇒ index-type limit only
	parallelism     int  // DefaultParallelism; 0 ⇒ GOMAXPROCS at call time
}

// ---------- Constructors (WithX) ----------

// WithValidateInputs enables precondition validation (the default):
// Multiply checks the right operand's row grouping up front and fails
// fast with ErrRowsNotGrouped.
//
// Complexity: the check itself is O(nnz) at pipeline entry.
func WithValidateInputs() Option {
	return func(o *Options) { o.validateInputs = true }
}

// WithNoValidateInputs disables the row-grouping precondition check.
// The caller then owns the precondition: feeding an ungrouped right
// operand without WithDefensiveSort yields unspecified output.
// Use only when the operand's grouping is guaranteed by construction
// (e.g. it came out of this pipeline, FromDense, or SortByRowColumn).
func WithNoValidateInputs() Option {
	return func(o *Options) { o.validateInputs = false }
}

// WithDefensiveSort makes Multiply regroup an ungrouped right operand
// into a private, stably row-sorted copy instead of failing. The input
// matrix is never mutated. Grouped operands skip the copy entirely.
//
// Complexity: O(nnz log nnz) for the regroup when it triggers.
func WithDefensiveSort() Option {
	return func(o *Options) { o.defensiveSort = true }
}

// WithMaxIntermediate caps the intermediate product count of Multiply
// (the expansion can be quadratically larger than either operand).
// When the computed size exceeds the cap the call fails with ErrTooLarge
// before allocating the intermediate buffers. Zero restores the default
// (index-type limit only).
//
// Panics with a stable message when n is negative.
func WithMaxIntermediate(n int) Option {
	if n < 0 {
		panic(panicMaxIntermediateInvalid)
	}

	return func(o *Options) { o.maxIntermediate = n }
}

// WithParallelism sets the concurrency limit used by MultiplyMany.
// Each multiplication still runs as a single sequential pipeline;
// parallelism applies across independent jobs only.
//
// Panics with a stable message when n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic(panicParallelismInvalid)
	}

	return func(o *Options) { o.parallelism = n }
}

// --------------------------- Option Resolution ---------------------------

// NewOptions resolves option setters against documented defaults.
// Pure function; stable for a given sequence of opts (last-writer-wins).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry used by every facade.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateInputs:  DefaultValidateInputs,
		defensiveSort:   DefaultDefensiveSort,
		maxIntermediate: DefaultMaxIntermediate,
		parallelism:     DefaultParallelism,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// effectiveParallelism resolves the deferred "0 ⇒ GOMAXPROCS" default.
func (o Options) effectiveParallelism() int {
	if o.parallelism > 0 {
		return o.parallelism
	}

	return runtime.GOMAXPROCS(0)
}
