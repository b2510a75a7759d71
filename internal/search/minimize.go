package search

import (
	"context"
)

// Outcome is the evaluation result of a single enumeration index.
type Outcome struct {
	Index uint64
	Cost  int
}

// Less reports whether outcome a beats outcome b under the (cost, index)
// lexicographic order. Reducing under this order keeps results reproducible
// regardless of worker scheduling.
func (a Outcome) Less(b Outcome) bool {
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}
	return a.Index < b.Index
}

// Number of evaluations between context checks
const checkInterval = 1024

type workerReport struct {
	best     Outcome
	found    bool
	complete bool
}

// Minimize evaluates every index in [0, total) and returns the feasible
// outcome minimizing (cost, index). evaluate must be pure with respect to its
// index and safe for concurrent use. When ctx is cancelled mid-enumeration the
// best outcome found so far is returned with complete == false.
func Minimize(ctx context.Context, total uint64, workers int, evaluate func(index uint64) (cost int, feasible bool)) (best Outcome, found, complete bool) {
	if workers <= 1 || total < checkInterval {
		return minimizeSerial(ctx, 0, total, 1, evaluate)
	}

	if uint64(workers) > total {
		workers = int(total)
	}

	// Evaluate strided index ranges on different goroutines and reduce their
	// local bests under the (cost, index) order
	reports := make(chan workerReport)
	for worker := 0; worker < workers; worker++ {
		go func(worker int) {
			localBest, localFound, localComplete := minimizeSerial(ctx, uint64(worker), total, uint64(workers), evaluate)
			reports <- workerReport{best: localBest, found: localFound, complete: localComplete}
		}(worker)
	}

	complete = true
	collected := 0
	for report := range reports {
		if report.found && (!found || report.best.Less(best)) {
			best = report.best
			found = true
		}
		complete = complete && report.complete

		// Check whether all workers have reported to properly close the channel
		if collected++; collected == workers {
			close(reports)
		}
	}

	return best, found, complete
}

func minimizeSerial(ctx context.Context, start, total, stride uint64, evaluate func(index uint64) (cost int, feasible bool)) (best Outcome, found, complete bool) {
	sinceCheck := 0
	for index := start; index < total; index += stride {
		if sinceCheck++; sinceCheck >= checkInterval {
			sinceCheck = 0
			select {
			case <-ctx.Done():
				return best, found, false
			default:
			}
		}

		cost, feasible := evaluate(index)
		if !feasible {
			continue
		}

		outcome := Outcome{Index: index, Cost: cost}
		if !found || outcome.Less(best) {
			best = outcome
			found = true
		}
	}
	return best, found, true
}
