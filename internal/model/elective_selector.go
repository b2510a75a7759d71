package model

import (
	"context"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"courseplanner/internal/search"
)

func (p *gapMinimizingPlanner) BestPlanWithElectives(ctx context.Context, mandatory, electives []Candidate, k int) SearchResult {
	if failure := validateElectiveRequest(mandatory, electives, k); failure != nil {
		return failureResult(failure)
	}

	//** Rank electives by flexibility, ties broken by catalog order
	ranked := make([]Candidate, len(electives))
	copy(ranked, electives)
	slices.SortStableFunc(ranked, func(a, b Candidate) int {
		return b.Flexibility() - a.Flexibility()
	})

	//** Prune to the most flexible electives
	// This bounds the subset search and is a documented approximation: group
	// count ignores how a group's slots interact with the fixed mandatory
	// classes, so pruning can lose optimality but never validity
	if len(ranked) > p.options.TopFlexible {
		ranked = ranked[:p.options.TopFlexible]
	}
	if len(ranked) < k {
		return failureResult(&Failure{
			Kind:      InsufficientElectives,
			Requested: k,
			Available: len(ranked),
		})
	}

	//** Search every size-k subset of the pruned electives
	var best SearchResult
	found, partial, complete := false, false, true
	for _, subset := range search.Combinations(len(ranked), k) {
		select {
		case <-ctx.Done():
			complete = false
		default:
		}
		if !complete {
			break
		}

		combined := make([]Candidate, 0, len(mandatory)+k)
		combined = append(combined, mandatory...)
		for _, i := range subset {
			combined = append(combined, ranked[i])
		}

		result := p.BestPlan(ctx, combined)
		if !result.Feasible() {
			// Precondition failures are the caller's, not this subset's
			if result.Failure.Kind == NoGroupsInShift {
				return result
			}
			continue
		}

		partial = partial || result.Partial
		// Strict comparison keeps the first-found minimum: subsets are visited
		// in enumeration order
		if !found || result.Cost < best.Cost {
			best = result
			found = true
		}
	}

	if !found {
		return failureResult(&Failure{Kind: NoFeasiblePlan})
	}
	best.Partial = partial || !complete
	return best
}

func validateElectiveRequest(mandatory, electives []Candidate, k int) *Failure {
	if k <= 0 {
		return &Failure{
			Kind:      InvalidRequest,
			Requested: k,
			Detail:    fmt.Sprintf("elective count must be positive, got %d", k),
		}
	}
	if k > len(electives) {
		return &Failure{
			Kind:      InvalidRequest,
			Requested: k,
			Available: len(electives),
			Detail:    fmt.Sprintf("elective count %d exceeds the %d electives in the catalog", k, len(electives)),
		}
	}

	mandatoryIds := lo.SliceToMap(mandatory, func(candidate Candidate) (string, struct{}) {
		return candidate.Subject.Id, struct{}{}
	})
	duplicate, isDuplicate := lo.Find(electives, func(candidate Candidate) bool {
		_, ok := mandatoryIds[candidate.Subject.Id]
		return ok
	})
	if isDuplicate {
		return &Failure{
			Kind:    InvalidRequest,
			Subject: duplicate.Subject.Id,
			Detail:  fmt.Sprintf("subject %q requested as both mandatory and elective", duplicate.Subject.Id),
		}
	}

	return nil
}
