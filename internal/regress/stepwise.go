package regress

import "github.com/rentlens/rentlens/internal/dataset"

// RemovalStep records one backward-elimination step.
type RemovalStep struct {
	Term      string
	AIC       float64 // AIC after the removal
	Remaining int     // terms left after the removal
}

// Selection is the result of a backward elimination run: the surviving
// formula, its refit model, and the trace of removals for reproducibility.
type Selection struct {
	Start    Formula
	StartAIC float64
	Final    Formula
	Model    *Model
	Trace    []RemovalStep
}

// Backward greedily removes the single term whose removal lowers AIC the
// most, until no removal lowers it. Ties with the current model keep the
// larger model; the result is deterministic for a fixed formula and
// dataset.
func Backward(full Formula, ds *dataset.Dataset) (*Selection, error) {
	current, err := Fit(full, ds)
	if err != nil {
		return nil, err
	}
	sel := &Selection{Start: full, StartAIC: current.AIC}

	for len(current.Formula.Terms) > 0 {
		var best *Model
		bestTerm := ""
		for _, term := range current.Formula.Terms {
			cand, err := Fit(current.Formula.Without(term), ds)
			if err != nil {
				return nil, err
			}
			if best == nil || cand.AIC < best.AIC {
				best = cand
				bestTerm = term
			}
		}
		if best == nil || best.AIC >= current.AIC {
			break
		}
		current = best
		sel.Trace = append(sel.Trace, RemovalStep{
			Term:      bestTerm,
			AIC:       best.AIC,
			Remaining: len(best.Formula.Terms),
		})
	}

	sel.Final = current.Formula
	sel.Model = current
	return sel, nil
}
