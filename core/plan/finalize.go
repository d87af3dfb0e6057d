package plan

import (
	"strings"

	"github.com/leofalp/agentplan/core/validate"
)

// admissible reports whether c survives the artifact filters.
func admissible(c candidate) bool {
	name := stripQuotes(c.Name)
	if validate.IsSuiteAggregate(name) {
		return false
	}
	if c.state == numberRejected {
		return false
	}
	return validate.IsValidName(name)
}

// filter keeps the admissible candidates, in order.
func filter(cands []candidate) []candidate {
	var out []candidate
	for _, c := range cands {
		if admissible(c) {
			out = append(out, c)
		}
	}
	return out
}

// finalize filters cands again, resolves numbers and fills defaults.
//
// Explicit numbers are kept unless an earlier candidate already claimed the
// same number, in which case the later one is dropped. Candidates without a
// number take their 1-based position, moved up to the next free number when
// that position is taken. No stage emits such candidates today.
func finalize(cands []candidate) []Proposal {
	cands = filter(cands)

	used := make(map[int]bool, len(cands))
	kept := cands[:0:0]
	for _, c := range cands {
		if c.state == numberResolved {
			if used[c.Number] {
				continue
			}
			used[c.Number] = true
		}
		kept = append(kept, c)
	}

	out := make([]Proposal, 0, len(kept))
	for i, c := range kept {
		p := c.Proposal
		if c.state == numberUnset {
			n := i + 1
			for used[n] {
				n++
			}
			used[n] = true
			p.Number = n
		}
		out = append(out, fill(p))
	}
	return out
}

// fill applies field defaults to a proposal.
func fill(p Proposal) Proposal {
	p.Name = stripQuotes(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.Rationale = strings.TrimSpace(p.Rationale)

	if p.Rationale == "" && p.Description != "" {
		p.Rationale = strings.TrimSpace(strings.SplitN(p.Description, "\n", 2)[0])
	}
	if p.Description == "" {
		p.Description = p.Rationale
	}
	if p.KeyActions == nil {
		p.KeyActions = []string{}
	}
	if strings.TrimSpace(p.EstimatedTime) == "" {
		p.EstimatedTime = UnknownEstimate
	}
	if strings.TrimSpace(p.Kind) == "" {
		p.Kind = DefaultKind
	}
	return p
}
