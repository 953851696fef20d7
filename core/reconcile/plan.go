package reconcile

import (
	"context"
	"fmt"
	"sort"
)

// BuildPlan reconciles the sources and plans one fill action for every (key, source)
// pair where the source lacks the key.
//
// The plan reproduces a sequential pairwise fill: sources are visited in order, and
// each one pushes the keys it holds into every other source still lacking them. A
// missing key is therefore always taken from the first source that originally held
// it. Actions are ordered the same way: by donor source, then receiving source, then key.
func BuildPlan(sources []Source) *Plan {
	results := ReconcileAll(sources)

	order := make(map[string]int, len(sources))
	for i, src := range sources {
		order[src.Name] = i
	}

	summary := PlanSummary{
		Sources:   len(sources),
		TotalKeys: len(results),
	}
	var actions []Action

	for _, result := range results {
		if result.Complete() {
			continue
		}
		summary.Incomplete++

		from := result.Present[0]
		for _, to := range result.Missing {
			actions = append(actions, Action{
				Type: ActionFill,
				Key:  result.Key,
				From: from,
				To:   to,
			})
		}
	}

	sort.SliceStable(actions, func(i, j int) bool {
		a, b := actions[i], actions[j]
		if order[a.From] != order[b.From] {
			return order[a.From] < order[b.From]
		}
		if order[a.To] != order[b.To] {
			return order[a.To] < order[b.To]
		}
		return a.Key < b.Key
	})
	summary.FillActions = len(actions)

	return &Plan{
		Results: results,
		Actions: actions,
		Summary: summary,
	}
}

// ApplyPlan executes the actions in a plan in order and stops at the first failure.
// It returns the number of actions executed. Nothing runs when opts.DryRun is set.
func ApplyPlan(ctx context.Context, plan *Plan, filler Filler, opts Options) (executed int, err error) {
	if opts.DryRun {
		return 0, nil
	}

	for _, action := range plan.Actions {
		if err := ctx.Err(); err != nil {
			return executed, err
		}

		switch action.Type {
		case ActionFill:
			if err := filler.Fill(ctx, action); err != nil {
				return executed, fmt.Errorf("failed to fill %s from %s into %s: %w", action.Key, action.From, action.To, err)
			}
			executed++
		default:
			return executed, fmt.Errorf("unknown action type %q", action.Type)
		}
	}

	return executed, nil
}
