package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"

	"courseplanner/internal/csvio"
	"courseplanner/internal/model"
)

// The source timetable app caps a semester load at seven subjects
const maxSubjects = 7

var (
	validModes  = []string{"manual", "smart"}
	validShifts = []string{"mixed", "morning", "afternoon"}
)

type outputSlot struct {
	Day   string `json:"day"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type outputAssignment struct {
	Subject string       `json:"subject"`
	Group   string       `json:"group"`
	Room    string       `json:"room"`
	Slots   []outputSlot `json:"slots"`
}

type output struct {
	Cost        int                `json:"cost"`
	Partial     bool               `json:"partial"`
	Assignments []outputAssignment `json:"assignments"`
}

func main() {
	// Define arguments
	filePtr := flag.String("file", "", "Path to the catalog file (.csv or .json)")
	shiftPtr := flag.String("shift", "mixed", "Shift filter. Allowed values are: \"mixed\", \"morning\", \"afternoon\", where \"mixed\" is the default")
	subjectsPtr := flag.String("subjects", "", "Comma-separated ids of the mandatory subjects to schedule")
	electivesPtr := flag.String("electives", "", "Comma-separated ids of manually chosen electives (manual mode only)")
	modePtr := flag.String("mode", "manual", `Elective selection mode. Allowed values are:
- "manual" (electives are the ones listed in -electives) and
- "smart" (the engine picks the -k electives that fit best), where "manual" is the default`)
	kPtr := flag.Int("k", 1, "How many electives to pick in smart mode, where 1 is the default")
	topNPtr := flag.Int("topn", model.DefaultTopFlexible, "How many of the most flexible electives the smart search considers")
	workersPtr := flag.Int("workers", 0, "Parallel evaluation workers; 0 uses one per CPU and 1 forces serial search")
	timeoutPtr := flag.Duration("timeout", 0, "Abort the search after this duration, keeping the best plan found so far")
	outPtr := flag.String("out", "", "Path to the file where the JSON result will be written; if empty, it'll be written into the Standard Output")
	csvOutPtr := flag.String("csvout", "", "Optional path for a CSV export of the chosen plan")
	flag.Parse()
	mode := strings.ToLower(*modePtr)
	shiftStr := strings.ToLower(*shiftPtr)

	// Validate arguments
	if !slices.Contains(validModes, mode) {
		log.Fatalf("%v is not a valid mode", mode)
	} else if !slices.Contains(validShifts, shiftStr) {
		log.Fatalf("%v is not a valid shift", shiftStr)
	} else if *filePtr == "" {
		log.Fatal("a catalog file must be specified")
	}
	shift, err := model.ParseShift(shiftStr)
	if err != nil {
		log.Fatalf("cannot parse shift: %v", err)
	}

	// Extract catalog
	subjects, err := loadCatalog(*filePtr)
	if err != nil {
		log.Fatalf("cannot load catalog: %v", err)
	}
	byId := lo.SliceToMap(subjects, func(subject model.Subject) (string, model.Subject) {
		return subject.Id, subject
	})

	mandatoryIds := splitIds(*subjectsPtr)
	electiveIds := splitIds(*electivesPtr)

	totalRequested := len(mandatoryIds) + len(electiveIds)
	if mode == "smart" {
		totalRequested = len(mandatoryIds) + *kPtr
	}
	if totalRequested == 0 {
		log.Fatal("at least one subject must be requested")
	} else if totalRequested > maxSubjects {
		log.Fatalf("%d subjects requested, the maximum is %d", totalRequested, maxSubjects)
	}

	// Initialize engine
	planner := model.NewPlanner(model.PlannerOptions{
		TopFlexible: *topNPtr,
		Workers:     *workersPtr,
	})

	ctx := context.Background()
	if *timeoutPtr > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeoutPtr)
		defer cancel()
	}

	var result model.SearchResult
	if mode == "manual" {
		requested, err := resolveSubjects(byId, append(mandatoryIds, electiveIds...))
		if err != nil {
			log.Fatal(err)
		}
		candidates, failure := model.BuildCandidates(requested, shift)
		if failure != nil {
			log.Fatal(failure)
		}
		result = planner.BestPlan(ctx, candidates)
	} else {
		mandatory, err := resolveSubjects(byId, mandatoryIds)
		if err != nil {
			log.Fatal(err)
		}
		candidates, failure := model.BuildCandidates(mandatory, shift)
		if failure != nil {
			log.Fatal(failure)
		}
		electives := electiveCandidates(subjects, mandatoryIds, shift)
		result = planner.BestPlanWithElectives(ctx, candidates, electives, *kPtr)
	}

	if !result.Feasible() {
		log.Fatal(result.Failure)
	}

	// Marshal result into json
	resultJson, err := json.Marshal(buildOutput(result))
	if err != nil {
		log.Fatalf("an error occurred while building output json: %v", err)
	}

	if *outPtr == "" {
		fmt.Println(string(resultJson))
	} else if err := os.WriteFile(*outPtr, resultJson, 0666); err != nil {
		log.Fatalf("an error occurred while writing to the output file: %v", err)
	}

	if *csvOutPtr != "" {
		if err := csvio.ExportPlan(result.Plan, *csvOutPtr); err != nil {
			log.Fatalf("an error occurred while exporting the plan: %v", err)
		}
	}

	if result.Partial {
		log.Printf("search timed out after %v: result is the best plan found so far", *timeoutPtr)
	}
}

func loadCatalog(file string) ([]model.Subject, error) {
	switch {
	case strings.HasSuffix(file, ".csv"):
		return csvio.LoadCatalog(file)
	case strings.HasSuffix(file, ".json"):
		input, err := model.InputFromJson(file)
		if err != nil {
			return nil, err
		}
		return input.GetSubjects()
	default:
		return nil, fmt.Errorf("unsupported catalog format: %v", file)
	}
}

func splitIds(list string) []string {
	return lo.Filter(
		lo.Map(strings.Split(list, ","), func(id string, _ int) string { return strings.TrimSpace(id) }),
		func(id string, _ int) bool { return id != "" },
	)
}

func resolveSubjects(byId map[string]model.Subject, ids []string) ([]model.Subject, error) {
	missing := lo.Filter(ids, func(id string, _ int) bool {
		_, ok := byId[id]
		return !ok
	})
	if len(missing) > 0 {
		return nil, fmt.Errorf("subjects not found in the catalog: %v", strings.Join(missing, ", "))
	}
	return lo.Map(ids, func(id string, _ int) model.Subject { return byId[id] }), nil
}

// electiveCandidates collects the catalog's electives that still offer groups
// under the shift. Electives without groups are left out rather than reported:
// nothing requires them yet.
func electiveCandidates(subjects []model.Subject, mandatoryIds []string, shift model.Shift) []model.Candidate {
	candidates := make([]model.Candidate, 0)
	for _, subject := range subjects {
		if !subject.Elective() || slices.Contains(mandatoryIds, subject.Id) {
			continue
		}
		candidate, failure := model.NewCandidate(subject, shift)
		if failure != nil {
			continue
		}
		candidates = append(candidates, candidate)
	}
	return candidates
}

func buildOutput(result model.SearchResult) output {
	return output{
		Cost:    result.Cost,
		Partial: result.Partial,
		Assignments: lo.Map(result.Plan.Assignments, func(assignment model.Assignment, _ int) outputAssignment {
			return outputAssignment{
				Subject: assignment.Subject,
				Group:   assignment.Group.Id,
				Room:    assignment.Group.Room,
				Slots: lo.Map(assignment.Group.Slots, func(slot model.TimeSlot, _ int) outputSlot {
					return outputSlot{Day: slot.Day.String(), Start: slot.Start, End: slot.End}
				}),
			}
		}),
	}
}
