package curation

import (
	"sort"

	"icon-curator/core/reconcile"
)

// OutputEntry describes one file of the output tree.
type OutputEntry struct {
	Style  string `json:"style" yaml:"style"`
	File   string `json:"file" yaml:"file"`
	Icon   string `json:"icon" yaml:"icon"`
	Size   int    `json:"size" yaml:"size"`
	Source string `json:"source" yaml:"source"`
	// FilledFrom names the style directory the content was copied from by the
	// cross-fill stage. It is empty for files written by the copy engine.
	FilledFrom string `json:"filled_from,omitempty" yaml:"filled_from,omitempty"`
}

// CopyResult summarizes the copy engine stage.
type CopyResult struct {
	CreatedDirs []string      `json:"created_dirs" yaml:"created_dirs"`
	ReusedDirs  []string      `json:"reused_dirs" yaml:"reused_dirs"`
	Entries     []OutputEntry `json:"entries" yaml:"-"`
}

// CrossFillResult summarizes the cross-fill stage.
type CrossFillResult struct {
	Mode     ReconcileMode   `json:"mode" yaml:"mode"`
	Plan     *reconcile.Plan `json:"plan" yaml:"-"`
	Executed int             `json:"executed" yaml:"executed"`
	Entries  []OutputEntry   `json:"entries" yaml:"-"`
}

// Gaps lists the planned fills that were not executed.
func (r *CrossFillResult) Gaps() []reconcile.Action {
	if r == nil || r.Plan == nil || r.Executed == len(r.Plan.Actions) {
		return nil
	}
	return r.Plan.Actions[r.Executed:]
}

// Report is the outcome of a run.
type Report struct {
	RunID        string           `json:"run_id"`
	Source       string           `json:"source"`
	Output       string           `json:"output"`
	Inventory    *Inventory       `json:"inventory"`
	Curated      CuratedSet       `json:"-"`
	CountByStyle map[string]int   `json:"count_by_style"`
	Copy         *CopyResult      `json:"copy,omitempty"`
	CrossFill    *CrossFillResult `json:"cross_fill,omitempty"`
	Staged       bool             `json:"staged"`
	DryRun       bool             `json:"dry_run"`
}

// Entries returns every output file of the run, sorted by style then file.
func (r *Report) Entries() []OutputEntry {
	var entries []OutputEntry
	if r.Copy != nil {
		entries = append(entries, r.Copy.Entries...)
	}
	if r.CrossFill != nil {
		entries = append(entries, r.CrossFill.Entries...)
	}
	sortEntries(entries)
	return entries
}

func sortEntries(entries []OutputEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Style != entries[j].Style {
			return entries[i].Style < entries[j].Style
		}
		return entries[i].File < entries[j].File
	})
}
