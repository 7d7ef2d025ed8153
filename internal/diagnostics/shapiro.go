package diagnostics

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ShapiroWilk tests the null hypothesis that the sample is normally
// distributed, following Royston's AS R94 approximation. Valid for sample
// sizes between 3 and 5000.
func ShapiroWilk(sample []float64) (TestResult, error) {
	n := len(sample)
	if n < 3 || n > 5000 {
		return TestResult{}, fmt.Errorf("shapiro-wilk: sample size %d outside [3, 5000]", n)
	}
	x := make([]float64, n)
	copy(x, sample)
	sort.Float64s(x)
	if x[n-1]-x[0] <= 0 {
		return TestResult{}, fmt.Errorf("shapiro-wilk: sample has zero range")
	}

	// expected normal order statistics (Blom scores)
	m := make([]float64, n)
	var ssm float64
	for i := 0; i < n; i++ {
		m[i] = distuv.UnitNormal.Quantile((float64(i+1) - 0.375) / (float64(n) + 0.25))
		ssm += m[i] * m[i]
	}

	a := make([]float64, n)
	switch {
	case n == 3:
		a[0] = -math.Sqrt(0.5)
		a[2] = math.Sqrt(0.5)
	default:
		rsn := 1 / math.Sqrt(float64(n))
		cn := m[n-1] / math.Sqrt(ssm)
		an := poly([]float64{cn, 0.221157, -0.147981, -2.071190, 4.434685, -2.706056}, rsn)
		var phi float64
		if n > 5 {
			cn1 := m[n-2] / math.Sqrt(ssm)
			an1 := poly([]float64{cn1, 0.042981, -0.293762, -1.752461, 5.682633, -3.582633}, rsn)
			phi = (ssm - 2*m[n-1]*m[n-1] - 2*m[n-2]*m[n-2]) / (1 - 2*an*an - 2*an1*an1)
			a[n-1], a[0] = an, -an
			a[n-2], a[1] = an1, -an1
			for i := 2; i < n-2; i++ {
				a[i] = m[i] / math.Sqrt(phi)
			}
		} else {
			phi = (ssm - 2*m[n-1]*m[n-1]) / (1 - 2*an*an)
			a[n-1], a[0] = an, -an
			for i := 1; i < n-1; i++ {
				a[i] = m[i] / math.Sqrt(phi)
			}
		}
	}

	mean := stat.Mean(x, nil)
	var num, den float64
	for i := 0; i < n; i++ {
		num += a[i] * x[i]
		d := x[i] - mean
		den += d * d
	}
	w := num * num / den
	if w > 1 {
		w = 1
	}

	var p float64
	switch {
	case n == 3:
		p = 6 / math.Pi * (math.Asin(math.Sqrt(w)) - math.Asin(math.Sqrt(0.75)))
		p = math.Min(math.Max(p, 0), 1)
	case n <= 11:
		fn := float64(n)
		g := -2.273 + 0.459*fn
		mu := poly([]float64{0.5440, -0.39978, 0.025054, -0.0006714}, fn)
		sigma := math.Exp(poly([]float64{1.3822, -0.77857, 0.062767, -0.0020322}, fn))
		z := (-math.Log(g-math.Log(1-w)) - mu) / sigma
		p = distuv.UnitNormal.Survival(z)
	default:
		lnn := math.Log(float64(n))
		mu := poly([]float64{-1.5861, -0.31082, -0.083751, 0.0038915}, lnn)
		sigma := math.Exp(poly([]float64{-0.4803, -0.082676, 0.0030302}, lnn))
		z := (math.Log(1-w) - mu) / sigma
		p = distuv.UnitNormal.Survival(z)
	}

	return TestResult{Name: "Shapiro-Wilk", Statistic: w, PValue: p}, nil
}

// poly evaluates c[0] + c[1]x + c[2]x² + ... (Horner form).
func poly(c []float64, x float64) float64 {
	out := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		out = out*x + c[i]
	}
	return out
}
