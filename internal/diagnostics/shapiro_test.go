package diagnostics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

// normalScores returns a perfectly normal-shaped sample of size n.
func normalScores(n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = distuv.UnitNormal.Quantile((float64(i) + 0.5) / float64(n))
	}
	return out
}

func TestShapiroWilkNormalSample(t *testing.T) {
	for _, n := range []int{10, 50, 200} {
		res, err := ShapiroWilk(normalScores(n))
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if res.Statistic < 0.95 || res.Statistic > 1 {
			t.Errorf("n=%d: W = %v, want near 1", n, res.Statistic)
		}
		if res.PValue < 0.3 {
			t.Errorf("n=%d: p = %v for a normal-shaped sample, want large", n, res.PValue)
		}
	}
}

func TestShapiroWilkSkewedSample(t *testing.T) {
	scores := normalScores(50)
	skewed := make([]float64, len(scores))
	for i, z := range scores {
		skewed[i] = math.Exp(z) // lognormal shape
	}
	res, err := ShapiroWilk(skewed)
	if err != nil {
		t.Fatalf("ShapiroWilk: %v", err)
	}
	normal, _ := ShapiroWilk(scores)
	if res.Statistic >= normal.Statistic {
		t.Errorf("skewed W %v not below normal W %v", res.Statistic, normal.Statistic)
	}
	if res.PValue > 0.01 {
		t.Errorf("skewed sample: p = %v, want < 0.01", res.PValue)
	}
}

func TestShapiroWilkRejectsBadInput(t *testing.T) {
	if _, err := ShapiroWilk([]float64{1, 2}); err == nil {
		t.Error("expected error for n < 3")
	}
	if _, err := ShapiroWilk([]float64{3, 3, 3, 3}); err == nil {
		t.Error("expected error for zero-range sample")
	}
}
