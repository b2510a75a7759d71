package model

// Assignment binds one subject to its chosen group.
type Assignment struct {
	Subject string
	Group   Group
}

// Plan is a complete, conflict-free assignment of groups to subjects. Plans
// are only constructed through newPlan, so any Plan handed to a caller already
// holds the no-overlap invariant.
type Plan struct {
	Assignments []Assignment
}

// Group looks up the chosen group for a subject.
func (p Plan) Group(subject string) (Group, bool) {
	for _, assignment := range p.Assignments {
		if assignment.Subject == subject {
			return assignment.Group, true
		}
	}
	return Group{}, false
}

// Slots collects every scheduled time slot across the plan's groups.
func (p Plan) Slots() []TimeSlot {
	slots := make([]TimeSlot, 0, len(p.Assignments)*2)
	for _, assignment := range p.Assignments {
		slots = append(slots, assignment.Group.Slots...)
	}
	return slots
}

// newPlan assembles a plan from one group choice per candidate, rejecting on
// the first pairwise conflict. A nil return is a discarded tuple, not an error.
func newPlan(candidates []Candidate, choices []int) *Plan {
	chosen := make([]Group, len(candidates))
	for i, candidate := range candidates {
		chosen[i] = candidate.Groups[choices[i]]

		// Short-circuit against the groups already accepted
		for j := 0; j < i; j++ {
			if HasConflict(chosen[i].Slots, chosen[j].Slots) {
				return nil
			}
		}
	}

	assignments := make([]Assignment, len(candidates))
	for i, candidate := range candidates {
		assignments[i] = Assignment{Subject: candidate.Subject.Id, Group: chosen[i]}
	}
	return &Plan{Assignments: assignments}
}
