package model

import "github.com/samber/lo"

// Candidate pairs a subject with the groups it can still be assigned to under
// the requested shift. An empty group list is a reportable precondition
// failure, never a silent skip.
type Candidate struct {
	Subject Subject
	Groups  []Group
}

// Flexibility is the elective-ranking heuristic: a subject with more offered
// groups is more likely to combine conflict-free with a fixed schedule.
func (c Candidate) Flexibility() int {
	return len(c.Groups)
}

// NewCandidate restricts the subject's groups to the requested shift.
func NewCandidate(subject Subject, shift Shift) (Candidate, *Failure) {
	groups := lo.Filter(subject.Groups, func(group Group, _ int) bool {
		return group.Shift.Matches(shift)
	})

	if len(groups) == 0 {
		return Candidate{}, &Failure{
			Kind:    NoGroupsInShift,
			Subject: subject.Id,
			Shift:   shift,
		}
	}

	return Candidate{Subject: subject, Groups: groups}, nil
}

// BuildCandidates restricts every subject to the requested shift, failing fast
// on the first subject left without groups.
func BuildCandidates(subjects []Subject, shift Shift) ([]Candidate, *Failure) {
	candidates := make([]Candidate, 0, len(subjects))
	for _, subject := range subjects {
		candidate, failure := NewCandidate(subject, shift)
		if failure != nil {
			return nil, failure
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}
