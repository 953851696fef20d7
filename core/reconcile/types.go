package reconcile

import (
	"context"
	"time"
)

// Source is one named set of keys taking part in a reconciliation.
// The order of sources passed to the engine is significant: it decides which
// source a missing key is filled from.
type Source struct {
	// Name identifies the source (e.g., a style directory name).
	Name string

	// Keys is the set of keys present in the source.
	Keys map[string]struct{}
}

// NewSource builds a Source from a list of keys.
func NewSource(name string, keys []string) Source {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return Source{Name: name, Keys: set}
}

// Result is the reconciliation output for a single key.
type Result struct {
	// Key is the reconciled key (e.g., a filename).
	Key string `json:"key" yaml:"key"`

	// Present lists the sources holding the key, in source order.
	Present []string `json:"present" yaml:"present"`

	// Missing lists the sources lacking the key, in source order.
	Missing []string `json:"missing" yaml:"missing"`
}

// Complete reports whether every source holds the key.
func (r Result) Complete() bool {
	return len(r.Missing) == 0
}

// ActionType represents the type of planned action.
type ActionType string

const (
	// ActionFill copies a key from one source into another source lacking it.
	ActionFill ActionType = "fill"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type" yaml:"type"`

	// Key is the entity identifier.
	Key string `json:"key" yaml:"key"`

	// From is the source the key is taken from.
	From string `json:"from" yaml:"from"`

	// To is the source receiving the key.
	To string `json:"to" yaml:"to"`
}

// Plan contains reconciliation results and planned actions.
type Plan struct {
	// Results contains per-key reconciliation data.
	Results []Result `json:"results" yaml:"results"`

	// Actions contains planned fill operations.
	Actions []Action `json:"actions" yaml:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary" yaml:"summary"`
}

// PlanSummary provides aggregate statistics for a reconcile plan.
type PlanSummary struct {
	// Sources is the number of sources reconciled.
	Sources int `json:"sources" yaml:"sources"`

	// TotalKeys is the size of the union of all keys.
	TotalKeys int `json:"total_keys" yaml:"total_keys"`

	// Incomplete counts keys missing from at least one source.
	Incomplete int `json:"incomplete" yaml:"incomplete"`

	// FillActions counts planned fill actions.
	FillActions int `json:"fill_actions" yaml:"fill_actions"`
}

// Options controls plan execution.
type Options struct {
	// DryRun prevents execution of any action if true.
	DryRun bool
}

// Filler executes fill actions. Implementations copy the key's payload from
// action.From into action.To.
type Filler interface {
	Fill(ctx context.Context, action Action) error
}

// FillerFunc adapts a function to the Filler interface.
type FillerFunc func(ctx context.Context, action Action) error

// Fill calls f.
func (f FillerFunc) Fill(ctx context.Context, action Action) error {
	return f(ctx, action)
}

// Snapshot holds a cached set of sources.
type Snapshot struct {
	// Sources is the cached source list.
	Sources []Source

	// Built is the timestamp when this snapshot was built.
	Built time.Time

	// TTL is the time-to-live for this snapshot.
	TTL time.Duration
}
