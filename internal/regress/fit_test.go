package regress

import (
	"errors"
	"math"
	"testing"

	"github.com/rentlens/rentlens/internal/dataset"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestFitRecoversExactLinearModel(t *testing.T) {
	n := 100
	sqfeet := make([]float64, n)
	price := make([]float64, n)
	for i := 0; i < n; i++ {
		sqfeet[i] = 400 + 17*float64(i)
		price[i] = 500 + 0.5*sqfeet[i]
	}
	ds := dataset.New(n, map[string][]float64{"price": price, "sqfeet": sqfeet}, nil)

	m, err := Fit(Formula{Response: "price", Terms: []string{"sqfeet"}}, ds)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if len(m.Coefficients) != 2 {
		t.Fatalf("got %d coefficients, want 2", len(m.Coefficients))
	}
	if !almostEqual(m.Coefficients[0].Estimate, 500, 1e-6) {
		t.Errorf("intercept = %v, want 500", m.Coefficients[0].Estimate)
	}
	if !almostEqual(m.Coefficients[1].Estimate, 0.5, 1e-9) {
		t.Errorf("slope = %v, want 0.5", m.Coefficients[1].Estimate)
	}
	if !almostEqual(m.R2, 1, 1e-9) {
		t.Errorf("R2 = %v, want 1", m.R2)
	}
}

func TestDummyEncodingDropsReferenceLevel(t *testing.T) {
	values := []string{"apartment", "house", "condo", "house", "apartment", "condo", "house", "apartment"}
	f := dataset.NewFactor("type", values, "apartment")
	y := []float64{1, 2, 3, 2.5, 1.2, 3.1, 2.2, 0.9}
	ds := dataset.New(len(y), map[string][]float64{"y": y}, []*dataset.Factor{f})

	m, err := Fit(Formula{Response: "y", Terms: []string{"type"}}, ds)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	// 3 observed levels -> intercept + 2 dummies
	if len(m.Coefficients) != 3 {
		t.Fatalf("got %d coefficients, want 3", len(m.Coefficients))
	}
	for _, c := range m.Coefficients[1:] {
		if c.Name != "type=condo" && c.Name != "type=house" {
			t.Errorf("unexpected dummy %q; reference level must be dropped", c.Name)
		}
	}
}

func TestSingleLevelFactorIsExcluded(t *testing.T) {
	n := 12
	x := make([]float64, n)
	y := make([]float64, n)
	levels := make([]string, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i)
		y[i] = 3 + 2*x[i] + math.Sin(float64(i))
		levels[i] = "house"
	}
	f := dataset.NewFactor("type", levels, "")
	ds := dataset.New(n, map[string][]float64{"y": y, "x": x}, []*dataset.Factor{f})

	m, err := Fit(Formula{Response: "y", Terms: []string{"x", "type"}}, ds)
	if err != nil {
		t.Fatalf("Fit with constant factor: %v", err)
	}
	if len(m.Coefficients) != 2 {
		t.Fatalf("got %d coefficients, want 2 (constant factor contributes none)", len(m.Coefficients))
	}
}

func TestFitSingularDesign(t *testing.T) {
	n := 20
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i)
		y[i] = 1 + x[i]
	}
	dup := make([]float64, n)
	copy(dup, x)
	ds := dataset.New(n, map[string][]float64{"y": y, "x": x, "x2": dup}, nil)

	_, err := Fit(Formula{Response: "y", Terms: []string{"x", "x2"}}, ds)
	var sde *SingularDesignError
	if !errors.As(err, &sde) {
		t.Fatalf("err = %v, want *SingularDesignError", err)
	}
}

func TestAdjustedR2AndAIC(t *testing.T) {
	n := 40
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i)
		y[i] = 5 + 0.3*x[i] + math.Sin(2.7*float64(i))
	}
	ds := dataset.New(n, map[string][]float64{"y": y, "x": x}, nil)
	m, err := Fit(Formula{Response: "y", Terms: []string{"x"}}, ds)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	p := len(m.Coefficients)
	wantAdj := 1 - (1-m.R2)*float64(n-1)/float64(n-p)
	if !almostEqual(m.AdjR2, wantAdj, 1e-12) {
		t.Errorf("AdjR2 = %v, want %v", m.AdjR2, wantAdj)
	}
	wantAIC := float64(n)*math.Log(m.RSS/float64(n)) + 2*float64(p)
	if !almostEqual(m.AIC, wantAIC, 1e-9) {
		t.Errorf("AIC = %v, want %v", m.AIC, wantAIC)
	}
	if m.ResidualDF != n-p {
		t.Errorf("ResidualDF = %d, want %d", m.ResidualDF, n-p)
	}
}

func TestLogTransformRequiresPositiveResponse(t *testing.T) {
	ds := dataset.New(3, map[string][]float64{"y": {1, -2, 3}, "x": {1, 2, 3}}, nil)
	_, err := Fit(Formula{Response: "y", Transform: Log, Terms: []string{"x"}}, ds)
	if err == nil {
		t.Fatal("expected error for non-positive response under log transform")
	}
}
