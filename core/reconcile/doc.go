// Package reconcile provides a generic system for reconciling several named key sets
// so that every set ends up holding the union of all keys.
//
// The curation pipeline uses it to equalize the filename sets of the per-style output
// directories, and the catalog uses its cache to serve directory listings.
//
// # Architecture
//
// 1. Engine: builds the union of keys from all sources and reports, per key, which
// sources hold it and which lack it.
//
// 2. Plan: turns the results into fill actions. A missing key is always taken from the
// first source (in the order given) that holds it, and actions are ordered as a
// sequential pairwise fill would perform them.
//
// 3. Apply: executes fill actions through a caller-supplied Filler, stopping at the
// first error. DryRun plans without executing.
//
// 4. Cache: TTL-based snapshot cache with singleflight stampede protection.
//
// # Usage Example
//
//	sources := []reconcile.Source{
//	    reconcile.NewSource("filled", []string{"add.svg"}),
//	    reconcile.NewSource("regular", []string{"add.svg", "beta.svg"}),
//	}
//	plan := reconcile.BuildPlan(sources)
//	executed, err := reconcile.ApplyPlan(ctx, plan, filler, reconcile.Options{})
package reconcile
