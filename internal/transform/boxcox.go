// Package transform evaluates response transformations for a regression
// formula. It reports the full Box-Cox likelihood profile and leaves the
// choice of λ to the caller: a marginal likelihood gain over a plain log
// transform is a judgment call, not something to automate.
package transform

import (
	"fmt"
	"math"
	"strings"

	"github.com/rentlens/rentlens/internal/dataset"
	"github.com/rentlens/rentlens/internal/regress"
)

// Grid is the λ range to profile.
type Grid struct {
	Min   float64
	Max   float64
	Steps int
}

// DefaultGrid covers the usual [-2, 2] window.
func DefaultGrid() Grid { return Grid{Min: -2, Max: 2, Steps: 41} }

// Profile is the Box-Cox profile log-likelihood over a λ grid. λ = 0 is
// the log transform.
type Profile struct {
	Formula regress.Formula
	Lambdas []float64
	LogLik  []float64
}

// ProfileLogLikelihood fits the formula's predictors against the Box-Cox
// transformed response at each λ of the grid. The response must be
// strictly positive.
func ProfileLogLikelihood(f regress.Formula, ds *dataset.Dataset, grid Grid) (*Profile, error) {
	if grid.Steps < 2 || grid.Max <= grid.Min {
		return nil, fmt.Errorf("invalid lambda grid [%g, %g] with %d steps", grid.Min, grid.Max, grid.Steps)
	}
	y, ok := ds.Numeric(f.Response)
	if !ok {
		return nil, fmt.Errorf("response column %q not in dataset", f.Response)
	}
	var sumLog float64
	for _, v := range y {
		if v <= 0 {
			return nil, fmt.Errorf("box-cox requires a positive response, got %g", v)
		}
		sumLog += math.Log(v)
	}

	n := float64(ds.N())
	p := &Profile{Formula: f}
	step := (grid.Max - grid.Min) / float64(grid.Steps-1)
	for i := 0; i < grid.Steps; i++ {
		lambda := grid.Min + float64(i)*step
		g := f
		g.Transform = regress.BoxCox
		g.Lambda = lambda
		m, err := regress.Fit(g, ds)
		if err != nil {
			return nil, fmt.Errorf("fit at lambda %g: %w", lambda, err)
		}
		ll := -n/2*math.Log(m.RSS/n) + (lambda-1)*sumLog
		p.Lambdas = append(p.Lambdas, lambda)
		p.LogLik = append(p.LogLik, ll)
	}
	return p, nil
}

// ArgMax returns the λ with the highest profile log-likelihood. Callers
// remain free to prefer a simpler transform nearby.
func (p *Profile) ArgMax() (lambda, loglik float64) {
	best := 0
	for i := range p.LogLik {
		if p.LogLik[i] > p.LogLik[best] {
			best = i
		}
	}
	return p.Lambdas[best], p.LogLik[best]
}

// Markdown renders the profile curve as a table plus its maximizer.
func (p *Profile) Markdown() string {
	var b strings.Builder
	b.WriteString("[BOX-COX PROFILE]\n")
	b.WriteString(fmt.Sprintf("Formula: %s\n\n", p.Formula))
	b.WriteString("| lambda | log-likelihood |\n| --- | --- |\n")
	for i := range p.Lambdas {
		b.WriteString(fmt.Sprintf("| %.3f | %.3f |\n", p.Lambdas[i], p.LogLik[i]))
	}
	l, ll := p.ArgMax()
	b.WriteString(fmt.Sprintf("\nMaximizer: lambda %.3f (log-likelihood %.3f). ", l, ll))
	b.WriteString("Pick the transform yourself; lambda 0 is plain log.\n")
	return b.String()
}
