package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"courseplanner/internal/model"
)

const seed = 42

type BenchmarkResult struct {
	Subjects         int
	GroupsPerSubject int
	Electives        int
	Mode             string
	Workers          int
	Duration         int64
	Cost             int
	Feasible         bool
}

func main() {
	scenarios := getScenarios()
	workerCounts := []int{1, runtime.NumCPU()}
	results := make([]BenchmarkResult, 0, len(scenarios)*len(workerCounts)*2)

	for _, scenario := range scenarios {
		catalog := syntheticCatalog(scenario.subjects, scenario.groups, scenario.electives, seed)
		for _, workers := range workerCounts {
			fmt.Printf("Benchmarking %v subjects, %v groups each, %v electives with %v worker(s)\n",
				scenario.subjects, scenario.groups, scenario.electives, workers)

			results = append(results, measure(catalog, scenario, "manual", workers))
			results = append(results, measure(catalog, scenario, "smart", workers))
		}
	}

	toCsv(results)
}

type scenario struct {
	subjects  int
	groups    int
	electives int
}

func getScenarios() []scenario {
	return []scenario{
		{subjects: 3, groups: 2, electives: 4},
		{subjects: 4, groups: 3, electives: 6},
		{subjects: 5, groups: 4, electives: 8},
		{subjects: 6, groups: 4, electives: 10},
		{subjects: 7, groups: 5, electives: 12},
	}
}

func measure(catalog []model.Subject, s scenario, mode string, workers int) BenchmarkResult {
	mandatory := make([]model.Subject, 0, s.subjects)
	electives := make([]model.Candidate, 0, s.electives)
	for _, subject := range catalog {
		if subject.Elective() {
			if candidate, failure := model.NewCandidate(subject, model.ShiftMixed); failure == nil {
				electives = append(electives, candidate)
			}
			continue
		}
		mandatory = append(mandatory, subject)
	}

	candidates, failure := model.BuildCandidates(mandatory, model.ShiftMixed)
	if failure != nil {
		log.Fatalf("synthetic catalog rejected: %v", failure)
	}

	planner := model.NewPlanner(model.PlannerOptions{Workers: workers})

	start := time.Now()
	var result model.SearchResult
	if mode == "manual" {
		result = planner.BestPlan(context.Background(), candidates)
	} else {
		result = planner.BestPlanWithElectives(context.Background(), candidates, electives, 2)
	}
	duration := time.Since(start).Milliseconds()

	return BenchmarkResult{
		Subjects:         s.subjects,
		GroupsPerSubject: s.groups,
		Electives:        s.electives,
		Mode:             mode,
		Workers:          workers,
		Duration:         duration,
		Cost:             result.Cost,
		Feasible:         result.Feasible(),
	}
}

// syntheticCatalog builds a reproducible catalog: mandatory subjects with the
// requested number of groups plus electives with one to five groups each.
// Slots land on a 90-minute grid between 07:00 and 20:30.
func syntheticCatalog(subjects, groups, electives int, seed int64) []model.Subject {
	random := rand.New(rand.NewSource(seed))
	catalog := make([]model.Subject, 0, subjects+electives)

	for i := 0; i < subjects; i++ {
		catalog = append(catalog, model.Subject{
			Id:        fmt.Sprintf("SUB%02d", i),
			Name:      fmt.Sprintf("Subject %d", i),
			Semester:  1,
			Mandatory: true,
			Groups:    syntheticGroups(random, groups),
		})
	}

	for i := 0; i < electives; i++ {
		catalog = append(catalog, model.Subject{
			Id:       fmt.Sprintf("OPT%02d", i),
			Name:     fmt.Sprintf("Elective %d", i),
			Semester: model.ElectiveSemester,
			Groups:   syntheticGroups(random, random.Intn(5)+1),
		})
	}

	return catalog
}

func syntheticGroups(random *rand.Rand, count int) []model.Group {
	groups := make([]model.Group, 0, count)
	for i := 0; i < count; i++ {
		shift := model.ShiftMorning
		if random.Intn(2) == 1 {
			shift = model.ShiftAfternoon
		}

		slots := make([]model.TimeSlot, 0, 2)
		for s := 0; s < 2; s++ {
			start := 7*60 + 90*random.Intn(9)
			slots = append(slots, model.TimeSlot{
				Day:   model.Day(random.Intn(6)),
				Start: start,
				End:   start + 90,
			})
		}

		groups = append(groups, model.Group{
			Id:    fmt.Sprintf("G%d", i+1),
			Shift: shift,
			Room:  fmt.Sprintf("R%02d", random.Intn(20)),
			Slots: slots,
		})
	}
	return groups
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create("benchmark_results.csv")
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Subjects", "GroupsPerSubject", "Electives", "Mode", "Workers", "Duration(ms)", "Cost", "Feasible"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			fmt.Sprintf("%d", result.Subjects),
			fmt.Sprintf("%d", result.GroupsPerSubject),
			fmt.Sprintf("%d", result.Electives),
			result.Mode,
			fmt.Sprintf("%d", result.Workers),
			fmt.Sprintf("%d", result.Duration),
			fmt.Sprintf("%d", result.Cost),
			fmt.Sprintf("%v", result.Feasible),
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}
