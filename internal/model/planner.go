package model

import (
	"context"
	"runtime"
)

// DefaultTopFlexible bounds how many ranked electives survive pruning
const DefaultTopFlexible = 8

// Planner is the schedule-search engine: a pure function of its inputs that
// retains no state across invocations and is safe for concurrent callers.
type Planner interface {
	// Returns the minimum-gap-cost conflict-free assignment of one group per
	// candidate, enumerating the cartesian product of the group lists
	BestPlan(ctx context.Context, candidates []Candidate) SearchResult

	// Returns the best feasible plan over every size-k subset of the most
	// flexible electives combined with the mandatory candidates
	BestPlanWithElectives(ctx context.Context, mandatory, electives []Candidate, k int) SearchResult
}

type PlannerOptions struct {
	// TopFlexible prunes the elective ranking; zero means DefaultTopFlexible.
	// Pruning trades global optimality for a bounded subset search.
	TopFlexible int
	// Workers bounds parallel tuple evaluation; 1 forces serial enumeration
	// and zero means one worker per CPU. Results are identical either way.
	Workers int
}

func NewPlanner(options PlannerOptions) Planner {
	if options.TopFlexible <= 0 {
		options.TopFlexible = DefaultTopFlexible
	}
	if options.Workers <= 0 {
		options.Workers = runtime.NumCPU()
	}
	return &gapMinimizingPlanner{options: options}
}
