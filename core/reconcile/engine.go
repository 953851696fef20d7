package reconcile

import (
	"sort"
)

// ReconcileAll computes the union of keys across all sources and reports, for each
// key, which sources hold it and which lack it. Results are sorted by key.
func ReconcileAll(sources []Source) []Result {
	union := buildUnion(sources)

	keys := make([]string, 0, len(union))
	for key := range union {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	results := make([]Result, 0, len(keys))
	for _, key := range keys {
		results = append(results, buildResult(key, sources))
	}
	return results
}

// buildUnion creates a union of all keys from every source.
func buildUnion(sources []Source) map[string]struct{} {
	union := make(map[string]struct{})
	for _, src := range sources {
		for key := range src.Keys {
			union[key] = struct{}{}
		}
	}
	return union
}

// buildResult creates a Result for a single key.
func buildResult(key string, sources []Source) Result {
	result := Result{
		Key:     key,
		Present: []string{},
		Missing: []string{},
	}
	for _, src := range sources {
		if _, ok := src.Keys[key]; ok {
			result.Present = append(result.Present, src.Name)
		} else {
			result.Missing = append(result.Missing, src.Name)
		}
	}
	return result
}

// Union returns the sorted union of all keys.
func Union(sources []Source) []string {
	union := buildUnion(sources)
	keys := make([]string, 0, len(union))
	for key := range union {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
