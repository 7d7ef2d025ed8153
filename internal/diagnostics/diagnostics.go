// Package diagnostics checks fitted regression models: influence,
// heteroscedasticity, residual normality, and collinearity. Results carry
// statistics and p-values only; interpretation is left to the caller.
package diagnostics

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/rentlens/rentlens/internal/regress"
)

// VIFThreshold is the advisory collinearity flag level.
const VIFThreshold = 5.0

// Engine runs model diagnostics. The logger traces intermediate values at
// debug level.
type Engine struct {
	log *zap.Logger
}

// NewEngine returns an engine; a nil logger is replaced by a no-op one.
func NewEngine(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{log: log}
}

// TestResult is a named statistic and p-value pair.
type TestResult struct {
	Name      string
	Statistic float64
	PValue    float64
	DF        int
}

// Influence holds per-observation Cook's distances. Observations above
// Threshold (4/n) are flagged, never removed.
type Influence struct {
	Distances []float64
	Threshold float64
	Flagged   []int
}

// VIFScore is the variance inflation factor of one design column.
type VIFScore struct {
	Name       string
	VIF        float64
	Concerning bool
}

// CooksDistance computes leverage-weighted influence for every observation
// of the model.
func (e *Engine) CooksDistance(m *regress.Model) Influence {
	n := m.N
	p := float64(m.NumCoef())
	res := m.Residuals()
	lev := m.Leverage()

	inf := Influence{
		Distances: make([]float64, n),
		Threshold: 4 / float64(n),
	}
	for i := 0; i < n; i++ {
		h := lev[i]
		denom := p * m.Sigma2 * (1 - h) * (1 - h)
		if denom <= 0 {
			inf.Distances[i] = math.Inf(1)
		} else {
			inf.Distances[i] = res[i] * res[i] * h / denom
		}
		if inf.Distances[i] > inf.Threshold {
			inf.Flagged = append(inf.Flagged, i)
		}
	}
	e.log.Debug("cooks distance computed",
		zap.Int("observations", n),
		zap.Float64("threshold", inf.Threshold),
		zap.Int("flagged", len(inf.Flagged)))
	return inf
}

// BreuschPagan tests the null of constant residual variance by regressing
// squared residuals on the model's own design. The LM statistic n·R² is
// chi-squared with p−1 degrees of freedom.
func (e *Engine) BreuschPagan(m *regress.Model) (TestResult, error) {
	df := m.NumCoef() - 1
	if df == 0 {
		return TestResult{}, fmt.Errorf("breusch-pagan: intercept-only model has no predictors to test variance against")
	}
	res := m.Residuals()
	sq := make([]float64, len(res))
	for i, r := range res {
		sq[i] = r * r
	}
	r2, err := regress.RSquared(m.Design(), sq)
	if err != nil {
		return TestResult{}, fmt.Errorf("auxiliary regression: %w", err)
	}
	lm := float64(m.N) * r2
	dist := distuv.ChiSquared{K: float64(df)}
	out := TestResult{Name: "Breusch-Pagan", Statistic: lm, PValue: dist.Survival(lm), DF: df}
	e.log.Debug("breusch-pagan", zap.Float64("lm", lm), zap.Int("df", df), zap.Float64("p", out.PValue))
	return out, nil
}

// ResidualNormality runs a Shapiro-Wilk test on the model residuals.
func (e *Engine) ResidualNormality(m *regress.Model) (TestResult, error) {
	out, err := ShapiroWilk(m.Residuals())
	if err != nil {
		return TestResult{}, err
	}
	e.log.Debug("shapiro-wilk", zap.Float64("w", out.Statistic), zap.Float64("p", out.PValue))
	return out, nil
}

// VIF computes a variance inflation factor for every non-intercept design
// column by regressing it on the remaining columns. Scores above
// VIFThreshold are flagged as concerning; nothing fails.
func (e *Engine) VIF(m *regress.Model) ([]VIFScore, error) {
	x := m.Design()
	n, p := x.Dims()
	if p < 3 {
		// a single predictor cannot be collinear with anything
		return nil, nil
	}
	scores := make([]VIFScore, 0, p-1)
	for j := 1; j < p; j++ {
		other := mat.NewDense(n, p-1, nil)
		target := make([]float64, n)
		for i := 0; i < n; i++ {
			target[i] = x.At(i, j)
			col := 0
			for k := 0; k < p; k++ {
				if k == j {
					continue
				}
				other.Set(i, col, x.At(i, k))
				col++
			}
		}
		r2, err := regress.RSquared(other, target)
		if err != nil {
			return nil, fmt.Errorf("vif for %s: %w", m.Coefficients[j].Name, err)
		}
		v := math.Inf(1)
		if r2 < 1 {
			v = 1 / (1 - r2)
		}
		scores = append(scores, VIFScore{
			Name:       m.Coefficients[j].Name,
			VIF:        v,
			Concerning: v > VIFThreshold,
		})
	}
	return scores, nil
}

// Results bundles a full diagnostic pass over one model.
type Results struct {
	Influence    Influence
	BreuschPagan TestResult
	ShapiroWilk  TestResult
	VIF          []VIFScore
}

// Run executes every diagnostic against the model.
func (e *Engine) Run(m *regress.Model) (*Results, error) {
	out := &Results{Influence: e.CooksDistance(m)}
	var err error
	if out.BreuschPagan, err = e.BreuschPagan(m); err != nil {
		return nil, err
	}
	if out.ShapiroWilk, err = e.ResidualNormality(m); err != nil {
		return nil, err
	}
	if out.VIF, err = e.VIF(m); err != nil {
		return nil, err
	}
	return out, nil
}

// Markdown renders the diagnostic pass.
func (r *Results) Markdown() string {
	var b strings.Builder
	b.WriteString("[DIAGNOSTICS]\n")
	b.WriteString(fmt.Sprintf("Cook's distance: %d/%d observations above %.4g\n",
		len(r.Influence.Flagged), len(r.Influence.Distances), r.Influence.Threshold))
	b.WriteString(fmt.Sprintf("%s: statistic %.4f, df %d, p %.4g\n",
		r.BreuschPagan.Name, r.BreuschPagan.Statistic, r.BreuschPagan.DF, r.BreuschPagan.PValue))
	b.WriteString(fmt.Sprintf("%s: W %.4f, p %.4g\n",
		r.ShapiroWilk.Name, r.ShapiroWilk.Statistic, r.ShapiroWilk.PValue))
	if len(r.VIF) > 0 {
		b.WriteString("\n[COLLINEARITY]\n")
		for _, v := range r.VIF {
			flag := ""
			if v.Concerning {
				flag = "  <- above threshold"
			}
			b.WriteString(fmt.Sprintf("- %s: VIF %.2f%s\n", v.Name, v.VIF, flag))
		}
	}
	return b.String()
}
