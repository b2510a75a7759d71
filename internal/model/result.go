package model

import "fmt"

type FailureKind uint8

const (
	// A required subject has zero groups matching the requested shift
	NoGroupsInShift FailureKind = iota
	// Fewer electives survive pruning than the requested count
	InsufficientElectives
	// The request itself is malformed (k out of range, duplicate subjects)
	InvalidRequest
	// Search exhausted (or was cancelled) without a conflict-free combination
	NoFeasiblePlan
)

var failureKindNames = map[FailureKind]string{
	NoGroupsInShift:       "NO_GROUPS_IN_SHIFT",
	InsufficientElectives: "INSUFFICIENT_ELECTIVES",
	InvalidRequest:        "INVALID_REQUEST",
	NoFeasiblePlan:        "NO_FEASIBLE_PLAN",
}

func (k FailureKind) String() string {
	if name, ok := failureKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("FailureKind(%d)", uint8(k))
}

// Failure is a first-class search outcome, not an exception: expected failure
// kinds are returned on the SearchResult and callers branch on Kind. It still
// implements error so the edges can log it directly.
type Failure struct {
	Kind      FailureKind
	Subject   string // offending subject, for NoGroupsInShift
	Shift     Shift  // requested shift, for NoGroupsInShift
	Requested int    // requested elective count
	Available int    // electives actually available
	Detail    string // free-form context for InvalidRequest
}

func (f *Failure) Error() string {
	switch f.Kind {
	case NoGroupsInShift:
		return fmt.Sprintf("%v: subject %q has no groups in shift %v", f.Kind, f.Subject, f.Shift)
	case InsufficientElectives:
		return fmt.Sprintf("%v: requested %d electives but only %d are available", f.Kind, f.Requested, f.Available)
	case InvalidRequest:
		return fmt.Sprintf("%v: %v", f.Kind, f.Detail)
	default:
		return f.Kind.String()
	}
}

// SearchResult is the outcome of a single search invocation: either a best
// conflict-free plan with its gap cost, or a structured failure. Partial marks
// a feasible plan found before the caller cancelled the search.
type SearchResult struct {
	Plan    *Plan
	Cost    int
	Partial bool
	Failure *Failure
}

func (r SearchResult) Feasible() bool {
	return r.Failure == nil
}

func failureResult(failure *Failure) SearchResult {
	return SearchResult{Failure: failure}
}
