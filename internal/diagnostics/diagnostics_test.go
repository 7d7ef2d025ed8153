package diagnostics

import (
	"math"
	"testing"

	"github.com/rentlens/rentlens/internal/dataset"
	"github.com/rentlens/rentlens/internal/regress"
)

func fitLinear(t *testing.T, x, y []float64) *regress.Model {
	t.Helper()
	ds := dataset.New(len(y), map[string][]float64{"y": y, "x": x}, nil)
	m, err := regress.Fit(regress.Formula{Response: "y", Terms: []string{"x"}}, ds)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	return m
}

func TestCooksDistanceFlagsOutlier(t *testing.T) {
	n := 30
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i)
		y[i] = 1 + 2*x[i] + 0.1*math.Sin(float64(i))
	}
	// corrupt the highest-leverage observation
	y[n-1] += 40

	m := fitLinear(t, x, y)
	inf := NewEngine(nil).CooksDistance(m)

	if got, want := inf.Threshold, 4.0/float64(n); got != want {
		t.Fatalf("threshold = %v, want %v", got, want)
	}
	for i, d := range inf.Distances {
		if d < 0 {
			t.Fatalf("negative Cook's distance %v at %d", d, i)
		}
	}
	flagged := false
	for _, i := range inf.Flagged {
		if i == n-1 {
			flagged = true
		}
	}
	if !flagged {
		t.Fatalf("corrupted observation not flagged; flagged = %v", inf.Flagged)
	}
	if len(inf.Distances) != n {
		t.Fatalf("got %d distances, want %d", len(inf.Distances), n)
	}
}

func TestBreuschPaganDetectsHeteroscedasticity(t *testing.T) {
	n := 80
	x := make([]float64, n)
	hetero := make([]float64, n)
	homo := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = 1 + float64(i)
		sign := 1.0
		if i%2 == 1 {
			sign = -1
		}
		// residual magnitude grows with x in the heteroscedastic series
		hetero[i] = 5 + 2*x[i] + sign*0.4*x[i]
		homo[i] = 5 + 2*x[i] + sign*2
	}

	engine := NewEngine(nil)

	mh := fitLinear(t, x, hetero)
	resH, err := engine.BreuschPagan(mh)
	if err != nil {
		t.Fatalf("BreuschPagan: %v", err)
	}
	if resH.PValue > 0.01 {
		t.Errorf("heteroscedastic series: p = %v, want < 0.01", resH.PValue)
	}
	if resH.DF != 1 {
		t.Errorf("df = %d, want 1", resH.DF)
	}

	mc := fitLinear(t, x, homo)
	resC, err := engine.BreuschPagan(mc)
	if err != nil {
		t.Fatalf("BreuschPagan: %v", err)
	}
	if resC.PValue < 0.1 {
		t.Errorf("constant-variance series: p = %v, want > 0.1", resC.PValue)
	}
}

func TestBreuschPaganInterceptOnlyModel(t *testing.T) {
	// backward elimination can strip every term; the test must refuse the
	// degenerate model instead of panicking on zero degrees of freedom
	n := 20
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = 10 + math.Sin(float64(i))
	}
	ds := dataset.New(n, map[string][]float64{"y": y}, nil)
	m, err := regress.Fit(regress.Formula{Response: "y"}, ds)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if _, err := NewEngine(nil).BreuschPagan(m); err == nil {
		t.Fatal("expected error for an intercept-only model")
	}
}

func TestVIFOrthogonalAndCollinear(t *testing.T) {
	n := 50
	x1 := make([]float64, n)
	x2 := make([]float64, n)
	near := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		fi := float64(i)
		x1[i] = math.Sin(2 * math.Pi * fi / float64(n))
		x2[i] = math.Cos(2 * math.Pi * fi / float64(n)) // orthogonal to x1
		near[i] = x1[i] + 0.01*math.Sin(17*fi)          // nearly duplicates x1
		y[i] = 1 + x1[i] + x2[i] + 0.05*math.Sin(5*fi)
	}

	engine := NewEngine(nil)

	dsOrtho := dataset.New(n, map[string][]float64{"y": y, "x1": x1, "x2": x2}, nil)
	m, err := regress.Fit(regress.Formula{Response: "y", Terms: []string{"x1", "x2"}}, dsOrtho)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	scores, err := engine.VIF(m)
	if err != nil {
		t.Fatalf("VIF: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("got %d scores, want 2", len(scores))
	}
	for _, s := range scores {
		if s.VIF > 1.5 || s.Concerning {
			t.Errorf("orthogonal predictor %s: VIF %v, want ~1", s.Name, s.VIF)
		}
	}

	dsColl := dataset.New(n, map[string][]float64{"y": y, "x1": x1, "near": near}, nil)
	mc, err := regress.Fit(regress.Formula{Response: "y", Terms: []string{"x1", "near"}}, dsColl)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	collScores, err := engine.VIF(mc)
	if err != nil {
		t.Fatalf("VIF: %v", err)
	}
	for _, s := range collScores {
		if !s.Concerning {
			t.Errorf("near-collinear predictor %s: VIF %v not flagged", s.Name, s.VIF)
		}
	}
}
