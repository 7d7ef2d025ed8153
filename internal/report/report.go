// Package report turns a fitted log-response model into an interpretable
// coefficient table: percent-change effects with confidence intervals,
// ranked by magnitude.
package report

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/rentlens/rentlens/internal/regress"
)

// Entry is one predictor's effect, on both the log and percent scale.
type Entry struct {
	Term     string
	Estimate float64
	StdErr   float64
	PValue   float64
	// confidence interval on the coefficient scale
	Low  float64
	High float64
	// percent-change interpretation of a log-scale coefficient
	PctChange float64
	PctLow    float64
	PctHigh   float64
}

// Report is a ranked coefficient report for a single model.
type Report struct {
	ID          string
	GeneratedAt time.Time
	Formula     string
	N           int
	R2          float64
	AdjR2       float64
	Level       float64 // confidence level, e.g. 0.95
	Intercept   regress.Coefficient
	Entries     []Entry // sorted by |PctChange| descending
}

// PercentChange converts a log-scale coefficient to the percent change in
// the untransformed response: 100·(e^β − 1).
func PercentChange(beta float64) float64 {
	return 100 * (math.Exp(beta) - 1)
}

// New builds a report from a fitted model at the given confidence level.
// Intervals use the normal approximation: estimate ± z·SE.
func New(m *regress.Model, level float64) *Report {
	z := distuv.UnitNormal.Quantile(1 - (1-level)/2)
	r := &Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now(),
		Formula:     m.Formula.String(),
		N:           m.N,
		R2:          m.R2,
		AdjR2:       m.AdjR2,
		Level:       level,
	}
	for _, c := range m.Coefficients {
		if c.Name == "(Intercept)" {
			r.Intercept = c
			continue
		}
		e := Entry{
			Term:     c.Name,
			Estimate: c.Estimate,
			StdErr:   c.StdErr,
			PValue:   c.PValue,
			Low:      c.Estimate - z*c.StdErr,
			High:     c.Estimate + z*c.StdErr,
		}
		e.PctChange = PercentChange(e.Estimate)
		e.PctLow = PercentChange(e.Low)
		e.PctHigh = PercentChange(e.High)
		r.Entries = append(r.Entries, e)
	}
	sort.Slice(r.Entries, func(i, j int) bool {
		ai, aj := math.Abs(r.Entries[i].PctChange), math.Abs(r.Entries[j].PctChange)
		if ai == aj {
			return r.Entries[i].Term < r.Entries[j].Term
		}
		return ai > aj
	})
	return r
}

// Markdown renders the ranked percent-change table.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[COEFFICIENT REPORT]\n")
	b.WriteString(fmt.Sprintf("Run: %s (%s)\n", r.ID, r.GeneratedAt.Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("Formula: %s\n", r.Formula))
	b.WriteString(fmt.Sprintf("Observations: %d, R² %.4f (adjusted %.4f)\n", r.N, r.R2, r.AdjR2))
	b.WriteString(fmt.Sprintf("Intercept: %.6g (SE %.4g)\n\n", r.Intercept.Estimate, r.Intercept.StdErr))

	ci := int(r.Level * 100)
	b.WriteString(fmt.Sprintf("| term | %% change | %d%% CI | p |\n", ci))
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, e := range r.Entries {
		b.WriteString(fmt.Sprintf("| %s | %+.2f%% | [%+.2f%%, %+.2f%%] | %.4g |\n",
			e.Term, e.PctChange, e.PctLow, e.PctHigh, e.PValue))
	}
	return b.String()
}
