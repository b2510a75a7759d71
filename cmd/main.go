package main

import (
	"context"
	"fmt"
	"log"
	"slices"

	"courseplanner/internal/csvio"
	"courseplanner/internal/model"
)

func main() {
	const File string = "../test/catalog.csv"

	subjects, err := csvio.LoadCatalog(File)
	if err != nil {
		log.Fatalf("cannot load catalog: %v", err)
	}

	mandatory := make([]model.Subject, 0)
	for _, subject := range subjects {
		if subject.Semester == 3 {
			mandatory = append(mandatory, subject)
		}
	}

	candidates, failure := model.BuildCandidates(mandatory, model.ShiftMorning)
	// candidates, failure := model.BuildCandidates(mandatory, model.ShiftMixed)
	if failure != nil {
		log.Fatal(failure)
	}

	electives := make([]model.Candidate, 0)
	for _, subject := range subjects {
		if !subject.Elective() {
			continue
		}
		if candidate, failure := model.NewCandidate(subject, model.ShiftMorning); failure == nil {
			electives = append(electives, candidate)
		}
	}

	planner := model.NewPlanner(model.PlannerOptions{})
	// planner := model.NewPlanner(model.PlannerOptions{Workers: 1})

	result := planner.BestPlanWithElectives(context.Background(), candidates, electives, 2)
	// result := planner.BestPlan(context.Background(), candidates)
	if !result.Feasible() {
		log.Fatal(result.Failure)
	}

	slots := result.Plan.Slots()
	slices.SortFunc(slots, func(a, b model.TimeSlot) int {
		if a.Day != b.Day {
			return int(a.Day) - int(b.Day)
		}
		return a.Start - b.Start
	})

	for _, slot := range slots {
		fmt.Println(slot)
	}

	fmt.Printf("Gap cost: %v minutes\n", result.Cost)
}
