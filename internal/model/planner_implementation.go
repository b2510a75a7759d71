package model

import (
	"context"

	"github.com/samber/lo"

	"courseplanner/internal/search"
)

type gapMinimizingPlanner struct {
	options PlannerOptions
}

func (p *gapMinimizingPlanner) BestPlan(ctx context.Context, candidates []Candidate) SearchResult {
	// Verify the shift filter left every subject schedulable before spending
	// any time enumerating
	for _, candidate := range candidates {
		if len(candidate.Groups) == 0 {
			return failureResult(&Failure{
				Kind:    NoGroupsInShift,
				Subject: candidate.Subject.Id,
			})
		}
	}

	radixes := lo.Map(candidates, func(candidate Candidate, _ int) int {
		return len(candidate.Groups)
	})
	indexer := search.NewIndexer(radixes)

	var best search.Outcome
	var found, complete bool
	if p.options.Workers > 1 {
		// Workers decode enumeration indices independently, so the reduction
		// order cannot influence the (cost, index) minimum
		best, found, complete = search.Minimize(ctx, indexer.Size(), p.options.Workers, func(index uint64) (int, bool) {
			plan := newPlan(candidates, indexer.Choices(index, make([]int, len(radixes))))
			if plan == nil {
				return 0, false
			}
			return GapCost(plan.Slots()), true
		})
	} else {
		best, found, complete = minimizeWithOdometer(ctx, candidates, radixes)
	}

	if !found {
		return failureResult(&Failure{Kind: NoFeasiblePlan})
	}

	plan := newPlan(candidates, indexer.Choices(best.Index, nil))
	return SearchResult{Plan: plan, Cost: best.Cost, Partial: !complete}
}

// Number of tuples between cancellation checks on the serial path
const cancellationCheckInterval = 1024

func minimizeWithOdometer(ctx context.Context, candidates []Candidate, radixes []int) (best search.Outcome, found, complete bool) {
	odometer := search.NewOdometer(radixes)
	sinceCheck := 0
	for !odometer.Done() {
		if sinceCheck++; sinceCheck >= cancellationCheckInterval {
			sinceCheck = 0
			select {
			case <-ctx.Done():
				return best, found, false
			default:
			}
		}

		if plan := newPlan(candidates, odometer.Current()); plan != nil {
			outcome := search.Outcome{Index: odometer.Index(), Cost: GapCost(plan.Slots())}
			if !found || outcome.Less(best) {
				best = outcome
				found = true
			}
		}

		if !odometer.Advance() {
			break
		}
	}
	return best, found, true
}
