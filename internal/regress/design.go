package regress

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/rentlens/rentlens/internal/dataset"
)

const interceptName = "(Intercept)"

// buildDesign expands a formula into a dense design matrix with an
// intercept column, the transformed response vector, and one name per
// coefficient column.
//
// Factor terms are reference-level encoded over the levels actually
// observed: k observed levels contribute k−1 dummy columns. A factor with a
// single observed level carries no information and contributes none. The
// baseline is the declared reference level when observed, otherwise the
// first observed level.
func buildDesign(f Formula, ds *dataset.Dataset) (x *mat.Dense, y []float64, names []string, err error) {
	n := ds.N()
	if n == 0 {
		return nil, nil, nil, fmt.Errorf("empty dataset")
	}

	resp, ok := ds.Numeric(f.Response)
	if !ok {
		return nil, nil, nil, fmt.Errorf("response column %q not in dataset", f.Response)
	}
	y = make([]float64, n)
	for i, v := range resp {
		y[i], err = f.apply(v)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("transform response: %w", err)
		}
	}

	type column struct {
		name string
		fill func(i int) float64
	}
	cols := []column{{name: interceptName, fill: func(int) float64 { return 1 }}}

	for _, term := range f.Terms {
		if num, ok := ds.Numeric(term); ok {
			col := num
			cols = append(cols, column{name: term, fill: func(i int) float64 { return col[i] }})
			continue
		}
		fac, ok := ds.Fac(term)
		if !ok {
			return nil, nil, nil, fmt.Errorf("term %q not in dataset", term)
		}
		counts := fac.Counts()
		baseline := -1
		for code, c := range counts {
			if c > 0 {
				baseline = code
				break
			}
		}
		// declared reference wins when observed
		if counts[0] > 0 {
			baseline = 0
		}
		for code, c := range counts {
			if c == 0 || code == baseline {
				continue
			}
			code := code
			fc := fac
			cols = append(cols, column{
				name: fmt.Sprintf("%s=%s", term, fac.Levels()[code]),
				fill: func(i int) float64 {
					if fc.Code(i) == code {
						return 1
					}
					return 0
				},
			})
		}
	}

	x = mat.NewDense(n, len(cols), nil)
	names = make([]string, len(cols))
	for j, c := range cols {
		names[j] = c.name
		for i := 0; i < n; i++ {
			x.Set(i, j, c.fill(i))
		}
	}
	return x, y, names, nil
}
