package report

import (
	"math"
	"strings"
	"testing"

	"github.com/rentlens/rentlens/internal/dataset"
	"github.com/rentlens/rentlens/internal/regress"
)

func TestPercentChangeInvertsLog(t *testing.T) {
	if got := PercentChange(0); got != 0 {
		t.Errorf("PercentChange(0) = %v, want 0", got)
	}
	if got := PercentChange(math.Log(1.1)); math.Abs(got-10) > 1e-9 {
		t.Errorf("PercentChange(ln 1.1) = %v, want 10", got)
	}
	if got := PercentChange(math.Log(0.5)); math.Abs(got+50) > 1e-9 {
		t.Errorf("PercentChange(ln 0.5) = %v, want -50", got)
	}
}

func fitLogModel(t *testing.T) *regress.Model {
	t.Helper()
	n := 60
	x1 := make([]float64, n)
	x2 := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		fi := float64(i)
		x1[i] = fi / 10
		x2[i] = math.Sin(2.3 * fi)
		y[i] = math.Exp(0.5 + 0.2*x1[i] + 0.03*x2[i] + 0.05*math.Sin(9*fi))
	}
	ds := dataset.New(n, map[string][]float64{"y": y, "x1": x1, "x2": x2}, nil)
	m, err := regress.Fit(regress.Formula{Response: "y", Transform: regress.Log, Terms: []string{"x1", "x2"}}, ds)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	return m
}

func TestNewRanksByMagnitudeAndSkipsIntercept(t *testing.T) {
	m := fitLogModel(t)
	r := New(m, 0.95)

	if r.ID == "" {
		t.Error("report must carry a run ID")
	}
	if len(r.Entries) != 2 {
		t.Fatalf("got %d entries, want 2 (intercept excluded)", len(r.Entries))
	}
	for _, e := range r.Entries {
		if e.Term == "(Intercept)" {
			t.Error("intercept leaked into the ranked table")
		}
	}
	if math.Abs(r.Entries[0].PctChange) < math.Abs(r.Entries[1].PctChange) {
		t.Errorf("entries not ranked by |%% change|: %v then %v",
			r.Entries[0].PctChange, r.Entries[1].PctChange)
	}
}

func TestConfidenceIntervalUsesNormalQuantile(t *testing.T) {
	m := fitLogModel(t)
	r := New(m, 0.95)
	const z = 1.9599639845400545
	for _, e := range r.Entries {
		if math.Abs((e.High-e.Estimate)-z*e.StdErr) > 1e-9 {
			t.Errorf("%s: upper CI offset %v, want %v", e.Term, e.High-e.Estimate, z*e.StdErr)
		}
		if math.Abs((e.Estimate-e.Low)-z*e.StdErr) > 1e-9 {
			t.Errorf("%s: lower CI offset %v, want %v", e.Term, e.Estimate-e.Low, z*e.StdErr)
		}
		if e.PctLow > e.PctChange || e.PctChange > e.PctHigh {
			t.Errorf("%s: percent interval [%v, %v] does not bracket %v",
				e.Term, e.PctLow, e.PctHigh, e.PctChange)
		}
	}
}

func TestMarkdownMentionsEveryTerm(t *testing.T) {
	m := fitLogModel(t)
	md := New(m, 0.95).Markdown()
	for _, want := range []string{"[COEFFICIENT REPORT]", "x1", "x2", "95% CI"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}
