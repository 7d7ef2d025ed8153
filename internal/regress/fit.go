package regress

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/rentlens/rentlens/internal/dataset"
)

// Coefficient is one fitted term of a model.
type Coefficient struct {
	Name     string
	Estimate float64
	StdErr   float64
	TValue   float64
	PValue   float64
}

// Model is an immutable ordinary least-squares fit. All fields are fixed at
// Fit time; there is no refitting state.
type Model struct {
	Formula      Formula
	N            int
	Coefficients []Coefficient
	R2           float64
	AdjR2        float64
	ResidualDF   int
	RSS          float64
	Sigma2       float64
	AIC          float64

	fitted    []float64
	residuals []float64
	leverage  []float64
	design    *mat.Dense
	response  []float64
}

// Fitted returns the fitted values, one per observation.
func (m *Model) Fitted() []float64 { return m.fitted }

// Residuals returns observed minus fitted values.
func (m *Model) Residuals() []float64 { return m.residuals }

// Leverage returns the hat-matrix diagonal.
func (m *Model) Leverage() []float64 { return m.leverage }

// Design exposes the expanded design matrix (intercept included) for
// auxiliary regressions. Callers must not mutate it.
func (m *Model) Design() *mat.Dense { return m.design }

// Response returns the (transformed) response vector the model was fit to.
func (m *Model) Response() []float64 { return m.response }

// NumCoef returns the number of fitted coefficients, intercept included.
func (m *Model) NumCoef() int { return len(m.Coefficients) }

// Fit estimates the formula on the dataset by ordinary least squares.
// A rank-deficient design yields a *SingularDesignError.
func Fit(f Formula, ds *dataset.Dataset) (*Model, error) {
	x, y, names, err := buildDesign(f, ds)
	if err != nil {
		return nil, err
	}
	n, p := x.Dims()
	if n <= p {
		return nil, &SingularDesignError{Formula: f.String(), Reason: "more coefficients than observations"}
	}

	beta, xtxInv, err := solveOLS(x, y)
	if err != nil {
		return nil, &SingularDesignError{Formula: f.String(), Reason: err.Error()}
	}

	m := &Model{
		Formula:  f,
		N:        n,
		design:   x,
		response: y,
	}

	var fittedVec mat.VecDense
	fittedVec.MulVec(x, beta)
	m.fitted = make([]float64, n)
	m.residuals = make([]float64, n)
	ybar := stat.Mean(y, nil)
	var rss, tss float64
	for i := 0; i < n; i++ {
		m.fitted[i] = fittedVec.AtVec(i)
		e := y[i] - m.fitted[i]
		m.residuals[i] = e
		rss += e * e
		d := y[i] - ybar
		tss += d * d
	}
	m.RSS = rss
	if tss > 0 {
		m.R2 = 1 - rss/tss
	}
	m.ResidualDF = n - p
	m.AdjR2 = 1 - (1-m.R2)*float64(n-1)/float64(m.ResidualDF)
	m.Sigma2 = rss / float64(m.ResidualDF)
	m.AIC = float64(n)*math.Log(rss/float64(n)) + 2*float64(p)

	// leverage h_i = x_i' (X'X)^{-1} x_i
	m.leverage = make([]float64, n)
	xi := mat.NewVecDense(p, nil)
	var tmp mat.VecDense
	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			xi.SetVec(j, x.At(i, j))
		}
		tmp.MulVec(xtxInv, xi)
		m.leverage[i] = mat.Dot(xi, &tmp)
	}

	tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(m.ResidualDF)}
	m.Coefficients = make([]Coefficient, p)
	for j := 0; j < p; j++ {
		c := Coefficient{Name: names[j], Estimate: beta.AtVec(j)}
		c.StdErr = math.Sqrt(m.Sigma2 * xtxInv.At(j, j))
		if c.StdErr > 0 {
			c.TValue = c.Estimate / c.StdErr
			c.PValue = 2 * tdist.Survival(math.Abs(c.TValue))
		} else {
			// exact fit: residual variance is zero
			c.TValue = math.Inf(1)
			if c.Estimate < 0 {
				c.TValue = math.Inf(-1)
			}
			c.PValue = 0
		}
		m.Coefficients[j] = c
	}
	return m, nil
}

// solveOLS returns the coefficient vector and (X'X)^{-1} via a Cholesky
// factorization. Factorization failure means the normal equations are
// singular.
func solveOLS(x *mat.Dense, y []float64) (*mat.VecDense, *mat.SymDense, error) {
	_, p := x.Dims()
	var xtx mat.Dense
	xtx.Mul(x.T(), x)
	sym := mat.NewSymDense(p, nil)
	for i := 0; i < p; i++ {
		for j := i; j < p; j++ {
			sym.SetSym(i, j, xtx.At(i, j))
		}
	}
	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, nil, errNotPositiveDefinite
	}
	var xty mat.VecDense
	xty.MulVec(x.T(), mat.NewVecDense(len(y), y))
	beta := mat.NewVecDense(p, nil)
	if err := chol.SolveVecTo(beta, &xty); err != nil {
		return nil, nil, err
	}
	inv := mat.NewSymDense(p, nil)
	if err := chol.InverseTo(inv); err != nil {
		return nil, nil, err
	}
	return beta, inv, nil
}

// RSquared fits y on the columns of x (assumed to include an intercept
// column) and returns the coefficient of determination. Used by
// heteroscedasticity and collinearity diagnostics.
func RSquared(x *mat.Dense, y []float64) (float64, error) {
	beta, _, err := solveOLS(x, y)
	if err != nil {
		return 0, err
	}
	var fitted mat.VecDense
	fitted.MulVec(x, beta)
	ybar := stat.Mean(y, nil)
	var rss, tss float64
	for i, v := range y {
		e := v - fitted.AtVec(i)
		rss += e * e
		d := v - ybar
		tss += d * d
	}
	if tss == 0 {
		return 0, nil
	}
	return 1 - rss/tss, nil
}
